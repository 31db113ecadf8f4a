package rating

import (
	"context"

	"github.com/RaihanAdityaP/savora-web-sub000/domain"
	"github.com/RaihanAdityaP/savora-web-sub000/entities"
	"github.com/google/uuid"
)

type (
	RatingService interface {
		Submit(ctx context.Context, recipeID, userID string, value int) error
		Average(ctx context.Context, recipeID string) (domain.RatingSummary, error)
	}

	ratingService struct {
		ratingRepository RatingRepository
	}
)

func NewRatingService(ratingRepository RatingRepository) RatingService {
	return &ratingService{ratingRepository: ratingRepository}
}

func (s *ratingService) Submit(ctx context.Context, recipeID, userID string, value int) error {
	if value < 1 || value > 5 {
		return domain.ErrInvalidRatingValue
	}

	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.ErrParseUUID
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	rating := &entities.Rating{
		ID:       uuid.New(),
		RecipeID: recipeUUID,
		UserID:   userUUID,
		Value:    value,
	}
	return s.ratingRepository.UpsertRating(ctx, rating)
}

// Average computes the arithmetic mean on read. The mean is never stored.
func (s *ratingService) Average(ctx context.Context, recipeID string) (domain.RatingSummary, error) {
	ratings, err := s.ratingRepository.GetRatingsByRecipe(ctx, recipeID)
	if err != nil {
		return domain.RatingSummary{}, err
	}
	return Summarize(ratings), nil
}

// Summarize folds rating rows into the computed-on-read aggregate. Average is
// nil when no rows exist.
func Summarize(ratings []*entities.Rating) domain.RatingSummary {
	if len(ratings) == 0 {
		return domain.RatingSummary{Count: 0}
	}

	sum := 0
	for _, r := range ratings {
		sum += r.Value
	}
	avg := float64(sum) / float64(len(ratings))
	return domain.RatingSummary{Average: &avg, Count: len(ratings)}
}
