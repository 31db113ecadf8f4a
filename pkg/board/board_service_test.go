package board

import (
	"context"
	"testing"

	"github.com/RaihanAdityaP/savora-web-sub000/domain"
	"github.com/RaihanAdityaP/savora-web-sub000/entities"
	"github.com/RaihanAdityaP/savora-web-sub000/pkg/recipe"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockBoardRepository is a mock implementation of BoardRepository.
type MockBoardRepository struct {
	mock.Mock
}

func (m *MockBoardRepository) CreateBoard(ctx context.Context, board *entities.RecipeBoard) error {
	args := m.Called(ctx, board)
	return args.Error(0)
}

func (m *MockBoardRepository) GetBoardByID(ctx context.Context, id string) (*entities.RecipeBoard, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.RecipeBoard), args.Error(1)
}

func (m *MockBoardRepository) GetBoardsByUser(ctx context.Context, userID string) ([]*entities.RecipeBoard, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.RecipeBoard), args.Error(1)
}

func (m *MockBoardRepository) UpdateBoard(ctx context.Context, board *entities.RecipeBoard) error {
	args := m.Called(ctx, board)
	return args.Error(0)
}

func (m *MockBoardRepository) DeleteBoard(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBoardRepository) CountBoardRecipes(ctx context.Context, boardID string) (int64, error) {
	args := m.Called(ctx, boardID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBoardRepository) GetBoardRecipes(ctx context.Context, boardID string, offset, limit int) ([]*entities.Recipe, error) {
	args := m.Called(ctx, boardID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Recipe), args.Error(1)
}

func (m *MockBoardRepository) DeleteMembership(ctx context.Context, boardID, recipeID string) (bool, error) {
	args := m.Called(ctx, boardID, recipeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBoardRepository) CreateMembership(ctx context.Context, membership *entities.BoardRecipe) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MockBoardRepository) DeleteMembershipsByBoard(ctx context.Context, boardID string) error {
	args := m.Called(ctx, boardID)
	return args.Error(0)
}

func (m *MockBoardRepository) AdjustUserBookmarkCount(ctx context.Context, userID string, delta int) error {
	args := m.Called(ctx, userID, delta)
	return args.Error(0)
}

// MockRecipeRepository is a mock implementation of recipe.RecipeRepository.
type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) CreateRecipe(ctx context.Context, rec *entities.Recipe) error {
	return m.Called(ctx, rec).Error(0)
}

func (m *MockRecipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) UpdateRecipe(ctx context.Context, rec *entities.Recipe) error {
	return m.Called(ctx, rec).Error(0)
}

func (m *MockRecipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRecipeRepository) DeleteRecipeDependents(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRecipeRepository) CountApproved(ctx context.Context, filter recipe.SearchFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecipeRepository) FindApproved(ctx context.Context, filter recipe.SearchFilter, sort string, offset, limit int) ([]*entities.Recipe, error) {
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
	return m.Called(ctx, id).Error(0)
}

func (m *MockRecipeRepository) AdjustAuthorRecipeCount(ctx context.Context, authorID string, delta int) error {
	return m.Called(ctx, authorID, delta).Error(0)
}

func (m *MockRecipeRepository) ReplaceRecipeTags(ctx context.Context, recipeID string, tagNames []string) error {
	return m.Called(ctx, recipeID, tagNames).Error(0)
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

func (m *MockRatingRepository) UpsertRating(ctx context.Context, r *entities.Rating) error {
	return m.Called(ctx, r).Error(0)
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

func newBoardFixture() (*MockBoardRepository, *MockRecipeRepository, BoardService, *entities.RecipeBoard) {
	boardRepo := new(MockBoardRepository)
	recipeRepo := new(MockRecipeRepository)
	svc := NewBoardService(boardRepo, recipeRepo, new(MockRatingRepository))
	owner := uuid.New()
	b := &entities.RecipeBoard{ID: uuid.New(), UserID: owner, Name: "Weeknight"}
	return boardRepo, recipeRepo, svc, b
}

func TestToggleMembership_AddsWhenAbsent(t *testing.T) {
	boardRepo, recipeRepo, svc, b := newBoardFixture()
	recipeID := uuid.New()

	boardRepo.On("GetBoardByID", mock.Anything, b.ID.String()).Return(b, nil)
	recipeRepo.On("GetRecipeByID", mock.Anything, recipeID.String()).
		Return(&entities.Recipe{ID: recipeID, Status: domain.RecipeStatusApproved}, nil)
	boardRepo.On("DeleteMembership", mock.Anything, b.ID.String(), recipeID.String()).Return(false, nil)
	boardRepo.On("CreateMembership", mock.Anything, mock.MatchedBy(func(mb *entities.BoardRecipe) bool {
		return mb.BoardID == b.ID && mb.RecipeID == recipeID
	})).Return(nil)
	boardRepo.On("AdjustUserBookmarkCount", mock.Anything, b.UserID.String(), 1).Return(nil)

	res, err := svc.ToggleMembership(context.Background(), b.ID.String(),
		domain.ToggleMembershipRequest{RecipeID: recipeID.String()}, b.UserID.String())

	assert.NoError(t, err)
	assert.True(t, res.Saved)
	boardRepo.AssertExpectations(t)
}

func TestToggleMembership_RemovesWhenPresent(t *testing.T) {
	boardRepo, recipeRepo, svc, b := newBoardFixture()
	recipeID := uuid.New()

	boardRepo.On("GetBoardByID", mock.Anything, b.ID.String()).Return(b, nil)
	recipeRepo.On("GetRecipeByID", mock.Anything, recipeID.String()).
		Return(&entities.Recipe{ID: recipeID, Status: domain.RecipeStatusApproved}, nil)
	boardRepo.On("DeleteMembership", mock.Anything, b.ID.String(), recipeID.String()).Return(true, nil)
	boardRepo.On("AdjustUserBookmarkCount", mock.Anything, b.UserID.String(), -1).Return(nil)

	res, err := svc.ToggleMembership(context.Background(), b.ID.String(),
		domain.ToggleMembershipRequest{RecipeID: recipeID.String()}, b.UserID.String())

	assert.NoError(t, err)
	assert.False(t, res.Saved)
	boardRepo.AssertNotCalled(t, "CreateMembership", mock.Anything, mock.Anything)
}

func TestToggleMembership_RejectsForeignBoard(t *testing.T) {
	boardRepo, _, svc, b := newBoardFixture()

	boardRepo.On("GetBoardByID", mock.Anything, b.ID.String()).Return(b, nil)

	_, err := svc.ToggleMembership(context.Background(), b.ID.String(),
		domain.ToggleMembershipRequest{RecipeID: uuid.New().String()}, uuid.New().String())

	assert.ErrorIs(t, err, domain.ErrUnauthorizedBoardAccess)
}

func TestDeleteBoard_RemovesMembershipsFirst(t *testing.T) {
	boardRepo, _, svc, b := newBoardFixture()

	var order []string
	boardRepo.On("GetBoardByID", mock.Anything, b.ID.String()).Return(b, nil)
	boardRepo.On("DeleteMembershipsByBoard", mock.Anything, b.ID.String()).
		Run(func(mock.Arguments) { order = append(order, "memberships") }).Return(nil)
	boardRepo.On("DeleteBoard", mock.Anything, b.ID.String()).
		Run(func(mock.Arguments) { order = append(order, "board") }).Return(nil)

	err := svc.DeleteBoard(context.Background(), b.ID.String(), b.UserID.String())

	assert.NoError(t, err)
	assert.Equal(t, []string{"memberships", "board"}, order)
}
