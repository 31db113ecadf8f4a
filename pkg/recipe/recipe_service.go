package recipe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/RaihanAdityaP/savora-web-sub000/domain"
	"github.com/RaihanAdityaP/savora-web-sub000/entities"
	"github.com/RaihanAdityaP/savora-web-sub000/internal/utils/storage"
	"github.com/RaihanAdityaP/savora-web-sub000/pkg/follow"
	"github.com/RaihanAdityaP/savora-web-sub000/pkg/rating"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		SearchRecipes(ctx context.Context, req domain.SearchRecipesRequest, callerID string) (domain.SearchRecipesResponse, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeDetailResponse, error)
		GetRecipeDetail(ctx context.Context, recipeID, viewerID, viewerRole string) (domain.RecipeDetailResponse, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, userID, role string) error
		DeleteRecipe(ctx context.Context, recipeID, userID, role string) error
		UploadMedia(ctx context.Context, recipeID string, req domain.UploadRecipeMediaRequest, userID string) (domain.RecipeDetailResponse, error)
		GetRecipesByAuthor(ctx context.Context, authorID, viewerID, viewerRole string, page int) ([]domain.RecipeSummary, int64, error)
		GetTags(ctx context.Context) ([]domain.TagInfo, error)
		GetCategories(ctx context.Context) ([]domain.CategoryInfo, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		ratingRepository rating.RatingRepository
		followRepository follow.FollowRepository
		s3               storage.AwsS3
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	ratingRepository rating.RatingRepository,
	followRepository follow.FollowRepository,
	s3 storage.AwsS3,
) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		ratingRepository: ratingRepository,
		followRepository: followRepository,
		s3:               s3,
	}
}

// SearchRecipes produces one page of the feed or search listing. The count
// and the page query are separate round trips over the same predicate, so
// the reported total can reflect a different instant than the returned page.
func (s *recipeService) SearchRecipes(ctx context.Context, req domain.SearchRecipesRequest, callerID string) (domain.SearchRecipesResponse, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	sortKey := req.Sort
	if sortKey == "" {
		sortKey = domain.SortNewest
	}

	filter := SearchFilter{
		Query:      req.Query,
		CategoryID: req.CategoryID,
	}

	if req.FollowedOnly {
		if callerID == "" {
			return domain.SearchRecipesResponse{}, domain.ErrFollowedOnlyNeedsAuth
		}
		followedIDs, err := s.followRepository.GetFollowingIDs(ctx, callerID)
		if err != nil {
			log.Printf("resolve follow edges failed: %v", err)
			return domain.SearchRecipesResponse{}, err
		}
		// Nobody followed means nothing can match; skip the main query
		// entirely instead of issuing an unconstrained one.
		if len(followedIDs) == 0 {
			return emptyPage(page), nil
		}
		filter.AuthorIDs = followedIDs
	}

	total, err := s.recipeRepository.CountApproved(ctx, filter)
	if err != nil {
		log.Printf("search count failed: %v", err)
		return domain.SearchRecipesResponse{}, err
	}

	offset := (page - 1) * domain.RecipePageSize
	recipes, err := s.recipeRepository.FindApproved(ctx, filter, sortKey, offset, domain.RecipePageSize)
	if err != nil {
		log.Printf("search page query failed: %v", err)
		return domain.SearchRecipesResponse{}, err
	}

	// The tag relation cannot be constrained in the page query, so the tag
	// filter runs against the already-paginated window. A filtered page may
	// hold fewer than RecipePageSize items while total still counts every
	// match without the tag predicate.
	if req.TagID != "" {
		recipes = filterByTag(recipes, req.TagID)
	}

	summaries := s.attachRatings(ctx, recipes)

	// Rating order exists only within the returned window; the server-side
	// placeholder order decided which recipes made the page.
	if sortKey == domain.SortRating {
		sort.SliceStable(summaries, func(i, j int) bool {
			return ratingOrDefault(summaries[i]) > ratingOrDefault(summaries[j])
		})
	}

	return domain.SearchRecipesResponse{
		Recipes: summaries,
		Pagination: domain.Pagination{
			Page:       page,
			Limit:      domain.RecipePageSize,
			Total:      total,
			TotalPages: (total + int64(domain.RecipePageSize) - 1) / int64(domain.RecipePageSize),
		},
	}, nil
}

func emptyPage(page int) domain.SearchRecipesResponse {
	return domain.SearchRecipesResponse{
		Recipes: []domain.RecipeSummary{},
		Pagination: domain.Pagination{
			Page:       page,
			Limit:      domain.RecipePageSize,
			Total:      0,
			TotalPages: 0,
		},
	}
}

func filterByTag(recipes []*entities.Recipe, tagID string) []*entities.Recipe {
	filtered := make([]*entities.Recipe, 0, len(recipes))
	for _, rec := range recipes {
		for _, tag := range rec.Tags {
			if tag.ID.String() == tagID {
				filtered = append(filtered, rec)
				break
			}
		}
	}
	return filtered
}

func (s *recipeService) attachRatings(ctx context.Context, recipes []*entities.Recipe) []domain.RecipeSummary {
	return BuildSummaries(ctx, s.ratingRepository, recipes)
}

// BuildSummaries maps a page of recipes to summaries, fanning out one rating
// fetch per recipe. A failed fetch degrades that recipe to "no rating"
// instead of failing the page.
func BuildSummaries(ctx context.Context, ratingRepository rating.RatingRepository, recipes []*entities.Recipe) []domain.RecipeSummary {
	summaries := make([]domain.RecipeSummary, len(recipes))

	var wg sync.WaitGroup
	for i, rec := range recipes {
		wg.Add(1)
		go func(i int, rec *entities.Recipe) {
			defer wg.Done()

			summary := toRecipeSummary(rec)
			ratings, err := ratingRepository.GetRatingsByRecipe(ctx, rec.ID.String())
			if err != nil {
				log.Printf("rating fetch for recipe %s failed: %v", rec.ID, err)
			} else {
				agg := rating.Summarize(ratings)
				summary.AverageRating = agg.Average
				summary.RatingCount = agg.Count
			}
			summaries[i] = summary
		}(i, rec)
	}
	wg.Wait()

	return summaries
}

func ratingOrDefault(s domain.RecipeSummary) float64 {
	if s.AverageRating == nil {
		return 0
	}
	return *s.AverageRating
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeDetailResponse, error) {
	if len(req.Ingredients) == 0 || len(req.Steps) == 0 {
		return domain.RecipeDetailResponse{}, domain.ErrRecipeNotPublishable
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeDetailResponse{}, domain.ErrParseUUID
	}
	categoryUUID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return domain.RecipeDetailResponse{}, domain.ErrParseUUID
	}

	if _, err := s.recipeRepository.GetCategoryByID(ctx, req.CategoryID); err != nil {
		return domain.RecipeDetailResponse{}, fmt.Errorf("category lookup: %w", err)
	}

	ingredients, err := json.Marshal(req.Ingredients)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	steps, err := json.Marshal(req.Steps)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	recipe := &entities.Recipe{
		ID:              uuid.New(),
		UserID:          userUUID,
		Title:           req.Title,
		Description:     req.Description,
		CategoryID:      categoryUUID,
		DifficultyLevel: req.DifficultyLevel,
		CookTimeMinutes: req.CookTimeMinutes,
		Servings:        req.Servings,
		Calories:        req.Calories,
		Ingredients:     datatypes.JSON(ingredients),
		Steps:           datatypes.JSON(steps),
		Status:          domain.RecipeStatusPending,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	if len(req.Tags) > 0 {
		if err := s.recipeRepository.ReplaceRecipeTags(ctx, recipe.ID.String(), req.Tags); err != nil {
			log.Printf("tag links for recipe %s failed: %v", recipe.ID, err)
		}
	}

	if err := s.recipeRepository.AdjustAuthorRecipeCount(ctx, userID, 1); err != nil {
		log.Printf("recipe counter update failed: %v", err)
	}

	created, err := s.recipeRepository.GetRecipeByID(ctx, recipe.ID.String())
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	return s.toRecipeDetail(ctx, created), nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID, viewerID, viewerRole string) (domain.RecipeDetailResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetailResponse{}, err
	}

	// Unapproved recipes stay private to their author and admins.
	if recipe.Status != domain.RecipeStatusApproved {
		if viewerID != recipe.UserID.String() && viewerRole != domain.RoleAdmin {
			return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
		}
	}

	if err := s.recipeRepository.IncrementViews(ctx, recipeID); err != nil {
		log.Printf("view counter update failed: %v", err)
	}

	return s.toRecipeDetail(ctx, recipe), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, userID, role string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if recipe.UserID.String() != userID && role != domain.RoleAdmin {
		return domain.ErrUnauthorizedRecipeAccess
	}

	if req.Title != "" {
		recipe.Title = req.Title
	}
	if req.Description != "" {
		recipe.Description = req.Description
	}
	if req.CategoryID != "" {
		categoryUUID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return domain.ErrParseUUID
		}
		if _, err := s.recipeRepository.GetCategoryByID(ctx, req.CategoryID); err != nil {
			return fmt.Errorf("category lookup: %w", err)
		}
		recipe.CategoryID = categoryUUID
	}
	if req.DifficultyLevel != "" {
		recipe.DifficultyLevel = req.DifficultyLevel
	}
	if req.CookTimeMinutes > 0 {
		recipe.CookTimeMinutes = req.CookTimeMinutes
	}
	if req.Servings > 0 {
		recipe.Servings = req.Servings
	}
	if req.Calories > 0 {
		recipe.Calories = req.Calories
	}
	if len(req.Ingredients) > 0 {
		ingredients, err := json.Marshal(req.Ingredients)
		if err != nil {
			return err
		}
		recipe.Ingredients = datatypes.JSON(ingredients)
	}
	if len(req.Steps) > 0 {
		steps, err := json.Marshal(req.Steps)
		if err != nil {
			return err
		}
		recipe.Steps = datatypes.JSON(steps)
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return err
	}

	if req.Tags != nil {
		if err := s.recipeRepository.ReplaceRecipeTags(ctx, recipeID, req.Tags); err != nil {
			log.Printf("tag links for recipe %s failed: %v", recipeID, err)
		}
	}

	return nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID, userID, role string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if recipe.UserID.String() != userID && role != domain.RoleAdmin {
		return domain.ErrUnauthorizedRecipeAccess
	}

	if recipe.ImageURL != "" {
		if objectKey := s.s3.GetObjectKeyFromLink(recipe.ImageURL); objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}
	if recipe.VideoURL != "" {
		if objectKey := s.s3.GetObjectKeyFromLink(recipe.VideoURL); objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	if err := s.recipeRepository.DeleteRecipeDependents(ctx, recipeID); err != nil {
		log.Printf("dependent cleanup for recipe %s failed: %v", recipeID, err)
	}

	if err := s.recipeRepository.DeleteRecipe(ctx, recipeID); err != nil {
		return err
	}

	if err := s.recipeRepository.AdjustAuthorRecipeCount(ctx, recipe.UserID.String(), -1); err != nil {
		log.Printf("recipe counter update failed: %v", err)
	}

	return nil
}

func (s *recipeService) UploadMedia(ctx context.Context, recipeID string, req domain.UploadRecipeMediaRequest, userID string) (domain.RecipeDetailResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetailResponse{}, err
	}

	if recipe.UserID.String() != userID {
		return domain.RecipeDetailResponse{}, domain.ErrUnauthorizedRecipeAccess
	}

	if req.Image != nil {
		fileName := fmt.Sprintf("recipe-%s", recipe.ID.String())
		var objectKey string
		var uploadErr error

		if recipe.ImageURL != "" {
			existingKey := s.s3.GetObjectKeyFromLink(recipe.ImageURL)
			if existingKey != "" {
				objectKey, uploadErr = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
			} else {
				objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "recipes", storage.AllowImage...)
			}
		} else {
			objectKey, uploadErr = s.s3.UploadFile(fileName, req.Image, "recipes", storage.AllowImage...)
		}
		if uploadErr != nil {
			return domain.RecipeDetailResponse{}, uploadErr
		}
		recipe.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	if req.Video != nil {
		fileName := fmt.Sprintf("recipe-video-%s", recipe.ID.String())
		objectKey, uploadErr := s.s3.UploadFile(fileName, req.Video, "recipe-videos", storage.AllowVideo...)
		if uploadErr != nil {
			return domain.RecipeDetailResponse{}, uploadErr
		}
		recipe.VideoURL = s.s3.GetPublicLinkKey(objectKey)
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	return s.toRecipeDetail(ctx, recipe), nil
}

func (s *recipeService) GetRecipesByAuthor(ctx context.Context, authorID, viewerID, viewerRole string, page int) ([]domain.RecipeSummary, int64, error) {
	if page < 1 {
		page = 1
	}
	includeUnapproved := viewerID == authorID || viewerRole == domain.RoleAdmin

	recipes, count, err := s.recipeRepository.GetRecipesByAuthor(ctx, authorID, includeUnapproved, page, domain.RecipePageSize)
	if err != nil {
		return nil, 0, err
	}

	return s.attachRatings(ctx, recipes), count, nil
}

func (s *recipeService) GetTags(ctx context.Context) ([]domain.TagInfo, error) {
	tags, err := s.recipeRepository.GetApprovedTags(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]domain.TagInfo, 0, len(tags))
	for _, t := range tags {
		infos = append(infos, domain.TagInfo{ID: t.ID.String(), Name: t.Name})
	}
	return infos, nil
}

func (s *recipeService) GetCategories(ctx context.Context) ([]domain.CategoryInfo, error) {
	categories, err := s.recipeRepository.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]domain.CategoryInfo, 0, len(categories))
	for _, c := range categories {
		infos = append(infos, domain.CategoryInfo{ID: c.ID.String(), Name: c.Name, Slug: c.Slug})
	}
	return infos, nil
}

func toRecipeSummary(rec *entities.Recipe) domain.RecipeSummary {
	summary := domain.RecipeSummary{
		ID:              rec.ID.String(),
		Title:           rec.Title,
		Description:     rec.Description,
		ImageURL:        rec.ImageURL,
		DifficultyLevel: rec.DifficultyLevel,
		CookTimeMinutes: rec.CookTimeMinutes,
		Views:           rec.Views,
		CreatedAt:       rec.CreatedAt,
	}
	if rec.User != nil {
		summary.Author = domain.AuthorInfo{
			ID:          rec.User.ID.String(),
			Username:    rec.User.Username,
			DisplayName: rec.User.DisplayName,
			AvatarURL:   rec.User.AvatarURL,
		}
	}
	return summary
}

func (s *recipeService) toRecipeDetail(ctx context.Context, rec *entities.Recipe) domain.RecipeDetailResponse {
	detail := domain.RecipeDetailResponse{
		RecipeSummary: toRecipeSummary(rec),
		CategoryID:    rec.CategoryID.String(),
		Servings:      rec.Servings,
		Calories:      rec.Calories,
		VideoURL:      rec.VideoURL,
		Status:        rec.Status,
	}

	if rec.Category != nil {
		detail.Category = rec.Category.Name
	}

	var ingredients []string
	if err := json.Unmarshal(rec.Ingredients, &ingredients); err == nil {
		detail.Ingredients = ingredients
	}
	var steps []string
	if err := json.Unmarshal(rec.Steps, &steps); err == nil {
		detail.Steps = steps
	}

	detail.Tags = make([]domain.TagInfo, 0, len(rec.Tags))
	for _, t := range rec.Tags {
		detail.Tags = append(detail.Tags, domain.TagInfo{ID: t.ID.String(), Name: t.Name})
	}

	ratings, err := s.ratingRepository.GetRatingsByRecipe(ctx, rec.ID.String())
	if err != nil {
		log.Printf("rating fetch for recipe %s failed: %v", rec.ID, err)
	} else {
		agg := rating.Summarize(ratings)
		detail.AverageRating = agg.Average
		detail.RatingCount = agg.Count
	}

	return detail
}
