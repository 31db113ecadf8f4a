package domain

import (
	"errors"
	"os"
)

const (
	RoleUser    = "user"
	RolePremium = "premium"
	RoleAdmin   = "admin"

	RecipeStatusPending  = "pending"
	RecipeStatusApproved = "approved"
	RecipeStatusRejected = "rejected"

	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"

	SortPopularity = "popularity"
	SortNewest     = "newest"
	SortRating     = "rating"

	// RecipePageSize is the fixed window used by feed and search listings.
	RecipePageSize = 12
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"
	MessageFailedUnauthorized   = "unauthorized"
	MessageFailedForbidden      = "forbidden"
	MessageFailedBanned         = "account banned"
	MesaageUserNotAllowed       = "user not allowed"

	JwtSecret = os.Getenv("JWT_SECRET")

	ErrParseUUID      = errors.New("failed to parse UUID")
	ErrUserNotAllowed = errors.New("user not allowed")
	ErrForbidden      = errors.New("admin access required")
	ErrTokenNotFound  = errors.New("failed to token not found")
	ErrTokenMissing   = errors.New("authorization header missing")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenInvalid   = errors.New("token invalid")
)
