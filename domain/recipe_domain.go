package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe submitted for review"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessUploadMedia     = "media uploaded successfully"
	MessageSuccessGetTags         = "success get tags"
	MessageSuccessGetCategories   = "success get categories"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedUploadMedia     = "failed to upload media"
	MessageFailedSearchRecipes   = "search failed"
	MessageFailedGetTags         = "failed to get tags"
	MessageFailedGetCategories   = "failed to get categories"

	ErrRecipeNotFound           = errors.New("recipe not found")
	ErrUnauthorizedRecipeAccess = errors.New("unauthorized access to recipe")
	ErrRecipeNotPublishable     = errors.New("recipe needs at least one ingredient and one step")
	ErrInvalidDifficulty        = errors.New("invalid difficulty level")
	ErrFollowedOnlyNeedsAuth    = errors.New("followed-only filter requires authentication")
)

type (
	CreateRecipeRequest struct {
		Title           string   `json:"title" validate:"required,max=150"`
		Description     string   `json:"description" validate:"omitempty,max=2000"`
		CategoryID      string   `json:"category_id" validate:"required,uuid"`
		DifficultyLevel string   `json:"difficulty_level" validate:"required,oneof=easy medium hard"`
		CookTimeMinutes int      `json:"cook_time_minutes" validate:"required,min=1"`
		Servings        int      `json:"servings" validate:"required,min=1"`
		Calories        int      `json:"calories" validate:"omitempty,min=0"`
		Ingredients     []string `json:"ingredients" validate:"required,min=1,dive,required"`
		Steps           []string `json:"steps" validate:"required,min=1,dive,required"`
		Tags            []string `json:"tags" validate:"omitempty,dive,required"`
	}

	UpdateRecipeRequest struct {
		Title           string   `json:"title" validate:"omitempty,max=150"`
		Description     string   `json:"description" validate:"omitempty,max=2000"`
		CategoryID      string   `json:"category_id" validate:"omitempty,uuid"`
		DifficultyLevel string   `json:"difficulty_level" validate:"omitempty,oneof=easy medium hard"`
		CookTimeMinutes int      `json:"cook_time_minutes" validate:"omitempty,min=1"`
		Servings        int      `json:"servings" validate:"omitempty,min=1"`
		Calories        int      `json:"calories" validate:"omitempty,min=0"`
		Ingredients     []string `json:"ingredients" validate:"omitempty,min=1,dive,required"`
		Steps           []string `json:"steps" validate:"omitempty,min=1,dive,required"`
		Tags            []string `json:"tags" validate:"omitempty,dive,required"`
	}

	UploadRecipeMediaRequest struct {
		Image *multipart.FileHeader `json:"image" form:"image" validate:"omitempty"`
		Video *multipart.FileHeader `json:"video" form:"video" validate:"omitempty"`
	}

	// SearchRecipesRequest carries the feed/search filters. Page is 1-based,
	// the window size is always RecipePageSize.
	SearchRecipesRequest struct {
		Query        string `json:"query"`
		CategoryID   string `json:"category_id" validate:"omitempty,uuid"`
		TagID        string `json:"tag_id" validate:"omitempty,uuid"`
		FollowedOnly bool   `json:"followed_only"`
		Sort         string `json:"sort" validate:"omitempty,oneof=popularity newest rating"`
		Page         int    `json:"page" validate:"omitempty,min=1"`
	}

	RecipeSummary struct {
		ID              string     `json:"id"`
		Title           string     `json:"title"`
		Description     string     `json:"description"`
		ImageURL        string     `json:"image_url,omitempty"`
		DifficultyLevel string     `json:"difficulty_level"`
		CookTimeMinutes int        `json:"cook_time_minutes"`
		Views           int64      `json:"views"`
		AverageRating   *float64   `json:"average_rating,omitempty"`
		RatingCount     int        `json:"rating_count"`
		Author          AuthorInfo `json:"author"`
		CreatedAt       time.Time  `json:"created_at"`
	}

	AuthorInfo struct {
		ID          string `json:"id"`
		Username    string `json:"username"`
		DisplayName string `json:"display_name"`
		AvatarURL   string `json:"avatar_url,omitempty"`
	}

	SearchRecipesResponse struct {
		Recipes    []RecipeSummary `json:"recipes"`
		Pagination Pagination      `json:"pagination"`
	}

	Pagination struct {
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		Total      int64 `json:"total"`
		TotalPages int64 `json:"total_pages"`
	}

	RecipeDetailResponse struct {
		RecipeSummary
		CategoryID  string    `json:"category_id"`
		Category    string    `json:"category"`
		Servings    int       `json:"servings"`
		Calories    int       `json:"calories"`
		Ingredients []string  `json:"ingredients"`
		Steps       []string  `json:"steps"`
		VideoURL    string    `json:"video_url,omitempty"`
		Tags        []TagInfo `json:"tags"`
		Status      string    `json:"status"`
	}

	TagInfo struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	CategoryInfo struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Slug string `json:"slug"`
	}
)
