package domain

import "errors"

var (
	MessageSuccessSubmitRating = "rating submitted successfully"
	MessageFailedSubmitRating  = "failed to submit rating"

	ErrInvalidRatingValue = errors.New("rating must be between 1 and 5")
)

type (
	SubmitRatingRequest struct {
		Value int `json:"value" validate:"required,min=1,max=5"`
	}

	// RatingSummary is the computed-on-read aggregate for a recipe. Average
	// is nil when no ratings exist.
	RatingSummary struct {
		Average *float64 `json:"average,omitempty"`
		Count   int      `json:"count"`
	}
)
