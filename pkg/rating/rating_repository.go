package rating

import (
	"context"

	"github.com/RaihanAdityaP/savora-web-sub000/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	RatingRepository interface {
		UpsertRating(ctx context.Context, rating *entities.Rating) error
		GetRatingsByRecipe(ctx context.Context, recipeID string) ([]*entities.Rating, error)
		GetUserRating(ctx context.Context, recipeID, userID string) (*entities.Rating, error)
	}

	ratingRepository struct {
		db *gorm.DB
	}
)

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// UpsertRating writes the (recipe, user) row in a single statement so two
// concurrent submissions by the same user cannot race into two rows.
func (r *ratingRepository) UpsertRating(ctx context.Context, rating *entities.Rating) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "recipe_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(rating).Error
}

func (r *ratingRepository) GetRatingsByRecipe(ctx context.Context, recipeID string) ([]*entities.Rating, error) {
	var ratings []*entities.Rating
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *ratingRepository) GetUserRating(ctx context.Context, recipeID, userID string) (*entities.Rating, error) {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return nil, err
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, err
	}

	var rating entities.Rating
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ? AND user_id = ?", recipeUUID, userUUID).
		First(&rating).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}
