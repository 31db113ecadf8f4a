package comment

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/RaihanAdityaP/savora-web-sub000/domain"
	"github.com/RaihanAdityaP/savora-web-sub000/entities"
	"github.com/RaihanAdityaP/savora-web-sub000/pkg/notification"
	"github.com/RaihanAdityaP/savora-web-sub000/pkg/recipe"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CommentService interface {
		GetComments(ctx context.Context, recipeID string, page int) ([]domain.CommentResponse, int64, error)
		CreateComment(ctx context.Context, recipeID string, req domain.CreateCommentRequest, userID string) (domain.CommentResponse, error)
		UpdateComment(ctx context.Context, commentID string, req domain.UpdateCommentRequest, userID string) error
		DeleteComment(ctx context.Context, commentID, userID, role string) error
	}

	commentService struct {
		commentRepository      CommentRepository
		recipeRepository       recipe.RecipeRepository
		notificationRepository notification.NotificationRepository
	}
)

func NewCommentService(
	commentRepository CommentRepository,
	recipeRepository recipe.RecipeRepository,
	notificationRepository notification.NotificationRepository,
) CommentService {
	return &commentService{
		commentRepository:      commentRepository,
		recipeRepository:       recipeRepository,
		notificationRepository: notificationRepository,
	}
}

func (s *commentService) GetComments(ctx context.Context, recipeID string, page int) ([]domain.CommentResponse, int64, error) {
	if page < 1 {
		page = 1
	}

	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, domain.ErrRecipeNotFound
		}
		return nil, 0, err
	}

	comments, total, err := s.commentRepository.GetCommentsByRecipe(ctx, recipeID, page, domain.RecipePageSize)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]domain.CommentResponse, 0, len(comments))
	for _, c := range comments {
		responses = append(responses, toCommentResponse(c))
	}
	return responses, total, nil
}

func (s *commentService) CreateComment(ctx context.Context, recipeID string, req domain.CreateCommentRequest, userID string) (domain.CommentResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CommentResponse{}, domain.ErrParseUUID
	}

	rec, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CommentResponse{}, domain.ErrRecipeNotFound
		}
		return domain.CommentResponse{}, err
	}

	comment := &entities.Comment{
		ID:       uuid.New(),
		RecipeID: rec.ID,
		UserID:   userUUID,
		Content:  req.Content,
	}
	if err := s.commentRepository.CreateComment(ctx, comment); err != nil {
		return domain.CommentResponse{}, err
	}

	// The recipe author hears about new comments; the comment itself is
	// already committed, so a notification failure only gets logged.
	if rec.UserID != userUUID {
		notif := &entities.Notification{
			UserID:     rec.UserID,
			ActorID:    userUUID,
			Type:       domain.NotificationNewComment,
			EntityID:   rec.ID,
			EntityType: "recipe",
			Message:    fmt.Sprintf("New comment on your recipe %q", rec.Title),
		}
		if err := s.notificationRepository.CreateNotification(ctx, notif); err != nil {
			log.Printf("comment notification failed: %v", err)
		}
	}

	created, err := s.commentRepository.GetCommentByID(ctx, comment.ID.String())
	if err != nil {
		return domain.CommentResponse{}, err
	}
	return toCommentResponse(created), nil
}

func (s *commentService) UpdateComment(ctx context.Context, commentID string, req domain.UpdateCommentRequest, userID string) error {
	comment, err := s.commentRepository.GetCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCommentNotFound
		}
		return err
	}

	// Only the author may edit; admins can delete but not rewrite.
	if comment.UserID.String() != userID {
		return domain.ErrUnauthorizedCommentAccess
	}

	comment.Content = req.Content
	return s.commentRepository.UpdateComment(ctx, comment)
}

func (s *commentService) DeleteComment(ctx context.Context, commentID, userID, role string) error {
	comment, err := s.commentRepository.GetCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCommentNotFound
		}
		return err
	}

	if comment.UserID.String() != userID && role != domain.RoleAdmin {
		return domain.ErrUnauthorizedCommentAccess
	}

	return s.commentRepository.DeleteComment(ctx, commentID)
}

func toCommentResponse(c *entities.Comment) domain.CommentResponse {
	response := domain.CommentResponse{
		ID:        c.ID.String(),
		RecipeID:  c.RecipeID.String(),
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	if c.User != nil {
		response.Author = domain.AuthorInfo{
			ID:          c.User.ID.String(),
			Username:    c.User.Username,
			DisplayName: c.User.DisplayName,
			AvatarURL:   c.User.AvatarURL,
		}
	}
	return response
}
