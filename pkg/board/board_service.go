package board

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/RaihanAdityaP/savora-web-sub000/domain"
	"github.com/RaihanAdityaP/savora-web-sub000/entities"
	"github.com/RaihanAdityaP/savora-web-sub000/pkg/rating"
	"github.com/RaihanAdityaP/savora-web-sub000/pkg/recipe"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	BoardService interface {
		GetBoards(ctx context.Context, userID string) ([]domain.BoardResponse, error)
		CreateBoard(ctx context.Context, req domain.CreateBoardRequest, userID string) (domain.BoardResponse, error)
		RenameBoard(ctx context.Context, boardID string, req domain.RenameBoardRequest, userID string) error
		DeleteBoard(ctx context.Context, boardID, userID string) error
		GetBoardRecipes(ctx context.Context, boardID, userID string, page int) ([]domain.RecipeSummary, int64, error)
		ToggleMembership(ctx context.Context, boardID string, req domain.ToggleMembershipRequest, userID string) (domain.ToggleMembershipResponse, error)
	}

	boardService struct {
		boardRepository  BoardRepository
		recipeRepository recipe.RecipeRepository
		ratingRepository rating.RatingRepository
	}
)

func NewBoardService(
	boardRepository BoardRepository,
	recipeRepository recipe.RecipeRepository,
	ratingRepository rating.RatingRepository,
) BoardService {
	return &boardService{
		boardRepository:  boardRepository,
		recipeRepository: recipeRepository,
		ratingRepository: ratingRepository,
	}
}

func (s *boardService) GetBoards(ctx context.Context, userID string) ([]domain.BoardResponse, error) {
	boards, err := s.boardRepository.GetBoardsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.BoardResponse, 0, len(boards))
	for _, b := range boards {
		count, err := s.boardRepository.CountBoardRecipes(ctx, b.ID.String())
		if err != nil {
			log.Printf("board recipe count for %s failed: %v", b.ID, err)
		}
		responses = append(responses, toBoardResponse(b, count))
	}
	return responses, nil
}

func (s *boardService) CreateBoard(ctx context.Context, req domain.CreateBoardRequest, userID string) (domain.BoardResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.BoardResponse{}, domain.ErrParseUUID
	}

	board := &entities.RecipeBoard{
		ID:          uuid.New(),
		UserID:      userUUID,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.boardRepository.CreateBoard(ctx, board); err != nil {
		return domain.BoardResponse{}, err
	}
	return toBoardResponse(board, 0), nil
}

func (s *boardService) RenameBoard(ctx context.Context, boardID string, req domain.RenameBoardRequest, userID string) error {
	board, err := s.ownedBoard(ctx, boardID, userID)
	if err != nil {
		return err
	}

	board.Name = req.Name
	board.Description = req.Description
	return s.boardRepository.UpdateBoard(ctx, board)
}

// DeleteBoard removes membership rows before the board itself so a failure
// midway never leaves rows pointing at a missing board.
func (s *boardService) DeleteBoard(ctx context.Context, boardID, userID string) error {
	if _, err := s.ownedBoard(ctx, boardID, userID); err != nil {
		return err
	}

	if err := s.boardRepository.DeleteMembershipsByBoard(ctx, boardID); err != nil {
		return err
	}
	return s.boardRepository.DeleteBoard(ctx, boardID)
}

func (s *boardService) GetBoardRecipes(ctx context.Context, boardID, userID string, page int) ([]domain.RecipeSummary, int64, error) {
	if page < 1 {
		page = 1
	}

	if _, err := s.ownedBoard(ctx, boardID, userID); err != nil {
		return nil, 0, err
	}

	total, err := s.boardRepository.CountBoardRecipes(ctx, boardID)
	if err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * domain.RecipePageSize
	recipes, err := s.boardRepository.GetBoardRecipes(ctx, boardID, offset, domain.RecipePageSize)
	if err != nil {
		return nil, 0, err
	}

	return recipe.BuildSummaries(ctx, s.ratingRepository, recipes), total, nil
}

// ToggleMembership deletes the membership row first; when nothing was there
// to delete, the recipe gets added instead. Two toggles in a row restore the
// original state.
func (s *boardService) ToggleMembership(ctx context.Context, boardID string, req domain.ToggleMembershipRequest, userID string) (domain.ToggleMembershipResponse, error) {
	board, err := s.ownedBoard(ctx, boardID, userID)
	if err != nil {
		return domain.ToggleMembershipResponse{}, err
	}

	recipeUUID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return domain.ToggleMembershipResponse{}, domain.ErrParseUUID
	}
	if _, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ToggleMembershipResponse{}, domain.ErrRecipeNotFound
		}
		return domain.ToggleMembershipResponse{}, err
	}

	removed, err := s.boardRepository.DeleteMembership(ctx, boardID, req.RecipeID)
	if err != nil {
		return domain.ToggleMembershipResponse{}, err
	}
	if removed {
		if err := s.boardRepository.AdjustUserBookmarkCount(ctx, userID, -1); err != nil {
			log.Printf("bookmark counter update failed: %v", err)
		}
		return domain.ToggleMembershipResponse{Saved: false}, nil
	}

	membership := &entities.BoardRecipe{
		ID:       uuid.New(),
		BoardID:  board.ID,
		RecipeID: recipeUUID,
		AddedAt:  time.Now(),
	}
	if err := s.boardRepository.CreateMembership(ctx, membership); err != nil {
		return domain.ToggleMembershipResponse{}, err
	}
	if err := s.boardRepository.AdjustUserBookmarkCount(ctx, userID, 1); err != nil {
		log.Printf("bookmark counter update failed: %v", err)
	}
	return domain.ToggleMembershipResponse{Saved: true}, nil
}

func (s *boardService) ownedBoard(ctx context.Context, boardID, userID string) (*entities.RecipeBoard, error) {
	board, err := s.boardRepository.GetBoardByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBoardNotFound
		}
		return nil, err
	}
	if board.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedBoardAccess
	}
	return board, nil
}

func toBoardResponse(b *entities.RecipeBoard, count int64) domain.BoardResponse {
	return domain.BoardResponse{
		ID:          b.ID.String(),
		Name:        b.Name,
		Description: b.Description,
		RecipeCount: count,
		CreatedAt:   b.CreatedAt,
	}
}
