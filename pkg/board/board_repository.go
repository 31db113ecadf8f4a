package board

import (
	"context"

	"github.com/RaihanAdityaP/savora-web-sub000/entities"
	"gorm.io/gorm"
)

type (
	BoardRepository interface {
		CreateBoard(ctx context.Context, board *entities.RecipeBoard) error
		GetBoardByID(ctx context.Context, id string) (*entities.RecipeBoard, error)
		GetBoardsByUser(ctx context.Context, userID string) ([]*entities.RecipeBoard, error)
		UpdateBoard(ctx context.Context, board *entities.RecipeBoard) error
		DeleteBoard(ctx context.Context, id string) error

		CountBoardRecipes(ctx context.Context, boardID string) (int64, error)
		GetBoardRecipes(ctx context.Context, boardID string, offset, limit int) ([]*entities.Recipe, error)
		DeleteMembership(ctx context.Context, boardID, recipeID string) (bool, error)
		CreateMembership(ctx context.Context, membership *entities.BoardRecipe) error
		DeleteMembershipsByBoard(ctx context.Context, boardID string) error
		AdjustUserBookmarkCount(ctx context.Context, userID string, delta int) error
	}

	boardRepository struct {
		db *gorm.DB
	}
)

func NewBoardRepository(db *gorm.DB) BoardRepository {
	return &boardRepository{db: db}
}

func (r *boardRepository) CreateBoard(ctx context.Context, board *entities.RecipeBoard) error {
	return r.db.WithContext(ctx).Create(board).Error
}

func (r *boardRepository) GetBoardByID(ctx context.Context, id string) (*entities.RecipeBoard, error) {
	var board entities.RecipeBoard
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&board).Error; err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *boardRepository) GetBoardsByUser(ctx context.Context, userID string) ([]*entities.RecipeBoard, error) {
	var boards []*entities.RecipeBoard
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

func (r *boardRepository) UpdateBoard(ctx context.Context, board *entities.RecipeBoard) error {
	return r.db.WithContext(ctx).Save(board).Error
}

func (r *boardRepository) DeleteBoard(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.RecipeBoard{}).Error
}

func (r *boardRepository) CountBoardRecipes(ctx context.Context, boardID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entities.BoardRecipe{}).
		Where("board_id = ?", boardID).
		Count(&count).Error
	return count, err
}

func (r *boardRepository) GetBoardRecipes(ctx context.Context, boardID string, offset, limit int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	err := r.db.WithContext(ctx).
		Joins("JOIN board_recipes ON board_recipes.recipe_id = recipes.id").
		Where("board_recipes.board_id = ?", boardID).
		Preload("User").
		Preload("Tags").
		Order("board_recipes.added_at desc").
		Offset(offset).
		Limit(limit).
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// DeleteMembership reports whether a row existed, so the caller can decide
// between removing and adding without a prior existence query.
func (r *boardRepository) DeleteMembership(ctx context.Context, boardID, recipeID string) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("board_id = ? AND recipe_id = ?", boardID, recipeID).
		Delete(&entities.BoardRecipe{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *boardRepository) CreateMembership(ctx context.Context, membership *entities.BoardRecipe) error {
	return r.db.WithContext(ctx).Create(membership).Error
}

func (r *boardRepository) DeleteMembershipsByBoard(ctx context.Context, boardID string) error {
	return r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Delete(&entities.BoardRecipe{}).Error
}

func (r *boardRepository) AdjustUserBookmarkCount(ctx context.Context, userID string, delta int) error {
	return r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ?", userID).
		UpdateColumn("bookmark_count", gorm.Expr("bookmark_count + ?", delta)).Error
}
