package recipe

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/RaihanAdityaP/savora-web-sub000/domain"
	"github.com/RaihanAdityaP/savora-web-sub000/entities"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRecipeRepository is a mock implementation of RecipeRepository.
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRecipeRepository) DeleteRecipeDependents(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRecipeRepository) CountApproved(ctx context.Context, filter SearchFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecipeRepository) FindApproved(ctx context.Context, filter SearchFilter, sort string, offset, limit int) ([]*entities.Recipe, error) {
	args := m.Called(ctx, filter, sort, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) GetRecipesByAuthor(ctx context.Context, authorID string, includeUnapproved bool, page, limit int) ([]*entities.Recipe, int64, error) {
	args := m.Called(ctx, authorID, includeUnapproved, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entities.Recipe), args.Get(1).(int64), args.Error(2)
}

func (m *MockRecipeRepository) GetRecipesByStatus(ctx context.Context, status string, page, limit int) ([]*entities.Recipe, int64, error) {
	args := m.Called(ctx, status, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entities.Recipe), args.Get(1).(int64), args.Error(2)
}

func (m *MockRecipeRepository) IncrementViews(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRecipeRepository) AdjustAuthorRecipeCount(ctx context.Context, authorID string, delta int) error {
	args := m.Called(ctx, authorID, delta)
	return args.Error(0)
}

func (m *MockRecipeRepository) ReplaceRecipeTags(ctx context.Context, recipeID string, tagNames []string) error {
	args := m.Called(ctx, recipeID, tagNames)
	return args.Error(0)
}

func (m *MockRecipeRepository) GetApprovedTags(ctx context.Context) ([]*entities.Tag, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Tag), args.Error(1)
}

func (m *MockRecipeRepository) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Category), args.Error(1)
}

func (m *MockRecipeRepository) GetCategoryByID(ctx context.Context, id string) (*entities.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Category), args.Error(1)
}

// MockRatingRepository is a mock implementation of rating.RatingRepository.
type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) UpsertRating(ctx context.Context, rating *entities.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *MockRatingRepository) GetRatingsByRecipe(ctx context.Context, recipeID string) ([]*entities.Rating, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Rating), args.Error(1)
}

func (m *MockRatingRepository) GetUserRating(ctx context.Context, recipeID, userID string) (*entities.Rating, error) {
	args := m.Called(ctx, recipeID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Rating), args.Error(1)
}

// MockFollowRepository is a mock implementation of follow.FollowRepository.
type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) CreateFollow(ctx context.Context, followerID, followingID string) error {
	args := m.Called(ctx, followerID, followingID)
	return args.Error(0)
}

func (m *MockFollowRepository) DeleteFollow(ctx context.Context, followerID, followingID string) (bool, error) {
	args := m.Called(ctx, followerID, followingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) IsFollowing(ctx context.Context, followerID, followingID string) (bool, error) {
	args := m.Called(ctx, followerID, followingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFollowRepository) GetFollowingIDs(ctx context.Context, followerID string) ([]string, error) {
	args := m.Called(ctx, followerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockFollowRepository) GetFollowers(ctx context.Context, userID string, page, limit int) ([]*entities.User, int64, error) {
	args := m.Called(ctx, userID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entities.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockFollowRepository) GetFollowing(ctx context.Context, userID string, page, limit int) ([]*entities.User, int64, error) {
	args := m.Called(ctx, userID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entities.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockFollowRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockFollowRepository) AdjustUserCounter(ctx context.Context, userID, column string, delta int) error {
	args := m.Called(ctx, userID, column, delta)
	return args.Error(0)
}

// MockAwsS3 is a mock implementation of storage.AwsS3.
type MockAwsS3 struct {
	mock.Mock
}

func (m *MockAwsS3) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedExt ...string) (string, error) {
	args := m.Called(fileName, file, folder, allowedExt)
	return args.String(0), args.Error(1)
}

func (m *MockAwsS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowedExt ...string) (string, error) {
	args := m.Called(objectKey, file, allowedExt)
	return args.String(0), args.Error(1)
}

func (m *MockAwsS3) DeleteFile(objectKey string) error {
	args := m.Called(objectKey)
	return args.Error(0)
}

func (m *MockAwsS3) GetPublicLinkKey(objectKey string) string {
	args := m.Called(objectKey)
	return args.String(0)
}

func (m *MockAwsS3) GetObjectKeyFromLink(link string) string {
	args := m.Called(link)
	return args.String(0)
}

func newTestService() (*MockRecipeRepository, *MockRatingRepository, *MockFollowRepository, RecipeService) {
	recipeRepo := new(MockRecipeRepository)
	ratingRepo := new(MockRatingRepository)
	followRepo := new(MockFollowRepository)
	svc := NewRecipeService(recipeRepo, ratingRepo, followRepo, new(MockAwsS3))
	return recipeRepo, ratingRepo, followRepo, svc
}

func approvedRecipe(title string, tagIDs ...uuid.UUID) *entities.Recipe {
	rec := &entities.Recipe{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Title:  title,
		Status: domain.RecipeStatusApproved,
	}
	for _, tagID := range tagIDs {
		rec.Tags = append(rec.Tags, &entities.Tag{ID: tagID, Name: "tag"})
	}
	return rec
}

func ratings(values ...int) []*entities.Rating {
	out := make([]*entities.Rating, 0, len(values))
	for _, v := range values {
		out = append(out, &entities.Rating{ID: uuid.New(), Value: v})
	}
	return out
}

func TestSearchRecipes_EmptyFollowSetShortCircuits(t *testing.T) {
	recipeRepo, _, followRepo, svc := newTestService()
	callerID := uuid.New().String()

	followRepo.On("GetFollowingIDs", mock.Anything, callerID).Return([]string{}, nil)

	res, err := svc.SearchRecipes(context.Background(), domain.SearchRecipesRequest{
		FollowedOnly: true,
		Page:         3,
	}, callerID)

	assert.NoError(t, err)
	assert.Empty(t, res.Recipes)
	assert.Equal(t, int64(0), res.Pagination.Total)
	assert.Equal(t, 3, res.Pagination.Page)
	// no count or page query should have been issued
	recipeRepo.AssertNotCalled(t, "CountApproved", mock.Anything, mock.Anything)
	recipeRepo.AssertNotCalled(t, "FindApproved", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSearchRecipes_FollowedOnlyWithoutAuth(t *testing.T) {
	_, _, _, svc := newTestService()

	_, err := svc.SearchRecipes(context.Background(), domain.SearchRecipesRequest{
		FollowedOnly: true,
	}, "")

	assert.ErrorIs(t, err, domain.ErrFollowedOnlyNeedsAuth)
}

func TestSearchRecipes_PageWindow(t *testing.T) {
	recipeRepo, ratingRepo, _, svc := newTestService()

	pageItems := []*entities.Recipe{approvedRecipe("alpha")}
	recipeRepo.On("CountApproved", mock.Anything, mock.Anything).Return(int64(25), nil)
	recipeRepo.On("FindApproved", mock.Anything, mock.Anything, domain.SortNewest, 12, 12).
		Return(pageItems, nil)
	ratingRepo.On("GetRatingsByRecipe", mock.Anything, mock.Anything).Return(ratings(), nil)

	res, err := svc.SearchRecipes(context.Background(), domain.SearchRecipesRequest{
		Sort: domain.SortNewest,
		Page: 2,
	}, "")

	assert.NoError(t, err)
	assert.Equal(t, int64(25), res.Pagination.Total)
	assert.Equal(t, int64(3), res.Pagination.TotalPages)
	assert.Equal(t, 12, res.Pagination.Limit)
	recipeRepo.AssertExpectations(t)
}

func TestSearchRecipes_TagFilterShrinksPage(t *testing.T) {
	recipeRepo, ratingRepo, _, svc := newTestService()
	wantedTag := uuid.New()

	pageItems := []*entities.Recipe{
		approvedRecipe("with tag", wantedTag),
		approvedRecipe("without tag"),
		approvedRecipe("other tag", uuid.New()),
	}
	recipeRepo.On("CountApproved", mock.Anything, mock.Anything).Return(int64(3), nil)
	recipeRepo.On("FindApproved", mock.Anything, mock.Anything, domain.SortNewest, 0, 12).
		Return(pageItems, nil)
	ratingRepo.On("GetRatingsByRecipe", mock.Anything, mock.Anything).Return(ratings(), nil)

	res, err := svc.SearchRecipes(context.Background(), domain.SearchRecipesRequest{
		TagID: wantedTag.String(),
		Sort:  domain.SortNewest,
		Page:  1,
	}, "")

	assert.NoError(t, err)
	assert.Len(t, res.Recipes, 1)
	assert.Equal(t, "with tag", res.Recipes[0].Title)
	// total still counts every match without the tag predicate
	assert.Equal(t, int64(3), res.Pagination.Total)
}

func TestSearchRecipes_RatingSortReordersWithinPage(t *testing.T) {
	recipeRepo, ratingRepo, _, svc := newTestService()

	low := approvedRecipe("low")
	high := approvedRecipe("high")
	unrated := approvedRecipe("unrated")
	recipeRepo.On("CountApproved", mock.Anything, mock.Anything).Return(int64(3), nil)
	recipeRepo.On("FindApproved", mock.Anything, mock.Anything, domain.SortRating, 0, 12).
		Return([]*entities.Recipe{low, high, unrated}, nil)
	ratingRepo.On("GetRatingsByRecipe", mock.Anything, low.ID.String()).Return(ratings(2, 3), nil)
	ratingRepo.On("GetRatingsByRecipe", mock.Anything, high.ID.String()).Return(ratings(4, 5, 3), nil)
	ratingRepo.On("GetRatingsByRecipe", mock.Anything, unrated.ID.String()).Return(ratings(), nil)

	res, err := svc.SearchRecipes(context.Background(), domain.SearchRecipesRequest{
		Sort: domain.SortRating,
		Page: 1,
	}, "")

	assert.NoError(t, err)
	assert.Equal(t, "high", res.Recipes[0].Title)
	assert.Equal(t, "low", res.Recipes[1].Title)
	// missing average sorts as zero, so unrated lands last
	assert.Equal(t, "unrated", res.Recipes[2].Title)
	assert.InDelta(t, 4.0, *res.Recipes[0].AverageRating, 0.001)
	assert.Nil(t, res.Recipes[2].AverageRating)
}

func TestSearchRecipes_RatingFetchFailureDegrades(t *testing.T) {
	recipeRepo, ratingRepo, _, svc := newTestService()

	rated := approvedRecipe("rated")
	broken := approvedRecipe("broken")
	recipeRepo.On("CountApproved", mock.Anything, mock.Anything).Return(int64(2), nil)
	recipeRepo.On("FindApproved", mock.Anything, mock.Anything, domain.SortNewest, 0, 12).
		Return([]*entities.Recipe{rated, broken}, nil)
	ratingRepo.On("GetRatingsByRecipe", mock.Anything, rated.ID.String()).Return(ratings(5), nil)
	ratingRepo.On("GetRatingsByRecipe", mock.Anything, broken.ID.String()).
		Return(nil, errors.New("connection refused"))

	res, err := svc.SearchRecipes(context.Background(), domain.SearchRecipesRequest{
		Sort: domain.SortNewest,
		Page: 1,
	}, "")

	assert.NoError(t, err)
	assert.Len(t, res.Recipes, 2)
	assert.NotNil(t, res.Recipes[0].AverageRating)
	assert.Nil(t, res.Recipes[1].AverageRating)
	assert.Equal(t, 0, res.Recipes[1].RatingCount)
}

func TestSearchRecipes_FollowedOnlyConstrainsAuthors(t *testing.T) {
	recipeRepo, ratingRepo, followRepo, svc := newTestService()
	callerID := uuid.New().String()
	followedIDs := []string{uuid.New().String(), uuid.New().String()}

	followRepo.On("GetFollowingIDs", mock.Anything, callerID).Return(followedIDs, nil)
	recipeRepo.On("CountApproved", mock.Anything, mock.MatchedBy(func(f SearchFilter) bool {
		return len(f.AuthorIDs) == 2
	})).Return(int64(1), nil)
	recipeRepo.On("FindApproved", mock.Anything, mock.MatchedBy(func(f SearchFilter) bool {
		return len(f.AuthorIDs) == 2
	}), domain.SortNewest, 0, 12).Return([]*entities.Recipe{approvedRecipe("followed feed")}, nil)
	ratingRepo.On("GetRatingsByRecipe", mock.Anything, mock.Anything).Return(ratings(), nil)

	res, err := svc.SearchRecipes(context.Background(), domain.SearchRecipesRequest{
		FollowedOnly: true,
		Sort:         domain.SortNewest,
		Page:         1,
	}, callerID)

	assert.NoError(t, err)
	assert.Len(t, res.Recipes, 1)
	recipeRepo.AssertExpectations(t)
}

func TestCreateRecipe_StartsPending(t *testing.T) {
	recipeRepo, ratingRepo, _, svc := newTestService()
	userID := uuid.New()
	categoryID := uuid.New()

	recipeRepo.On("GetCategoryByID", mock.Anything, categoryID.String()).
		Return(&entities.Category{ID: categoryID, Name: "Dessert"}, nil)
	recipeRepo.On("CreateRecipe", mock.Anything, mock.MatchedBy(func(r *entities.Recipe) bool {
		return r.Status == domain.RecipeStatusPending
	})).Return(nil)
	recipeRepo.On("AdjustAuthorRecipeCount", mock.Anything, userID.String(), 1).Return(nil)
	recipeRepo.On("GetRecipeByID", mock.Anything, mock.Anything).
		Return(&entities.Recipe{ID: uuid.New(), UserID: userID, CategoryID: categoryID, Title: "Pie", Status: domain.RecipeStatusPending}, nil)
	ratingRepo.On("GetRatingsByRecipe", mock.Anything, mock.Anything).Return(ratings(), nil)

	res, err := svc.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Title:           "Pie",
		CategoryID:      categoryID.String(),
		DifficultyLevel: domain.DifficultyEasy,
		CookTimeMinutes: 40,
		Servings:        4,
		Ingredients:     []string{"apples", "flour"},
		Steps:           []string{"mix", "bake"},
	}, userID.String())

	assert.NoError(t, err)
	assert.Equal(t, domain.RecipeStatusPending, res.Status)
	recipeRepo.AssertExpectations(t)
}

func TestCreateRecipe_RequiresIngredientsAndSteps(t *testing.T) {
	_, _, _, svc := newTestService()

	_, err := svc.CreateRecipe(context.Background(), domain.CreateRecipeRequest{
		Title:       "Empty",
		CategoryID:  uuid.New().String(),
		Ingredients: []string{},
		Steps:       []string{"bake"},
	}, uuid.New().String())

	assert.ErrorIs(t, err, domain.ErrRecipeNotPublishable)
}

func TestGetRecipeDetail_HidesPendingFromStrangers(t *testing.T) {
	recipeRepo, _, _, svc := newTestService()
	rec := approvedRecipe("secret")
	rec.Status = domain.RecipeStatusPending

	recipeRepo.On("GetRecipeByID", mock.Anything, rec.ID.String()).Return(rec, nil)

	_, err := svc.GetRecipeDetail(context.Background(), rec.ID.String(), uuid.New().String(), domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	recipeRepo.AssertNotCalled(t, "IncrementViews", mock.Anything, mock.Anything)
}

func TestGetRecipeDetail_OwnerSeesPendingAndViewsBump(t *testing.T) {
	recipeRepo, ratingRepo, _, svc := newTestService()
	rec := approvedRecipe("mine")
	rec.Status = domain.RecipeStatusPending

	recipeRepo.On("GetRecipeByID", mock.Anything, rec.ID.String()).Return(rec, nil)
	recipeRepo.On("IncrementViews", mock.Anything, rec.ID.String()).Return(nil)
	ratingRepo.On("GetRatingsByRecipe", mock.Anything, rec.ID.String()).Return(ratings(), nil)

	res, err := svc.GetRecipeDetail(context.Background(), rec.ID.String(), rec.UserID.String(), domain.RoleUser)
	assert.NoError(t, err)
	assert.Equal(t, domain.RecipeStatusPending, res.Status)
	recipeRepo.AssertExpectations(t)
}

func TestDeleteRecipe_RejectsNonOwner(t *testing.T) {
	recipeRepo, _, _, svc := newTestService()
	rec := approvedRecipe("not yours")

	recipeRepo.On("GetRecipeByID", mock.Anything, rec.ID.String()).Return(rec, nil)

	err := svc.DeleteRecipe(context.Background(), rec.ID.String(), uuid.New().String(), domain.RoleUser)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedRecipeAccess)
	recipeRepo.AssertNotCalled(t, "DeleteRecipe", mock.Anything, mock.Anything)
}

func TestDeleteRecipe_AdminOverridesOwnership(t *testing.T) {
	recipeRepo, _, _, svc := newTestService()
	rec := approvedRecipe("flagged")

	recipeRepo.On("GetRecipeByID", mock.Anything, rec.ID.String()).Return(rec, nil)
	recipeRepo.On("DeleteRecipeDependents", mock.Anything, rec.ID.String()).Return(nil)
	recipeRepo.On("DeleteRecipe", mock.Anything, rec.ID.String()).Return(nil)
	recipeRepo.On("AdjustAuthorRecipeCount", mock.Anything, rec.UserID.String(), -1).Return(nil)

	err := svc.DeleteRecipe(context.Background(), rec.ID.String(), uuid.New().String(), domain.RoleAdmin)
	assert.NoError(t, err)
	recipeRepo.AssertExpectations(t)
}
