package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/RaihanAdityaP/savora-web-sub000/domain"
	"github.com/RaihanAdityaP/savora-web-sub000/entities"
	"github.com/RaihanAdityaP/savora-web-sub000/pkg/recipe"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAdminRepository is a mock implementation of AdminRepository.
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) CreateActivityLog(ctx context.Context, entry *entities.ActivityLog) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockAdminRepository) GetActivityLogs(ctx context.Context, page, limit int) ([]*entities.ActivityLog, int64, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entities.ActivityLog), args.Get(1).(int64), args.Error(2)
}

// MockUserRepository is a mock implementation of user.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, u *entities.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, u *entities.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) CheckUsernameExists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) GetUsers(ctx context.Context, page, limit int) ([]*entities.User, int64, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entities.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) AdjustCounter(ctx context.Context, userID, column string, delta int) error {
	return m.Called(ctx, userID, column, delta).Error(0)
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

// MockNotificationRepository is a mock implementation of notification.NotificationRepository.
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) CreateNotification(ctx context.Context, n *entities.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotificationRepository) GetNotifications(ctx context.Context, userID string, page, limit int) ([]*entities.Notification, int64, error) {
	args := m.Called(ctx, userID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entities.Notification), args.Get(1).(int64), args.Error(2)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, id, userID string) (bool, error) {
	args := m.Called(ctx, id, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockNotificationRepository) DeleteNotification(ctx context.Context, id, userID string) (bool, error) {
	args := m.Called(ctx, id, userID)
	return args.Bool(0), args.Error(1)
}

// MockBanStore is a mock implementation of cache.BanStore.
type MockBanStore struct {
	mock.Mock
}

func (m *MockBanStore) MarkBanned(ctx context.Context, userID, reason string, ttl time.Duration) error {
	return m.Called(ctx, userID, reason, ttl).Error(0)
}

func (m *MockBanStore) BanReason(ctx context.Context, userID string) (string, bool) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Bool(1)
}

func (m *MockBanStore) ClearBan(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type adminFixture struct {
	adminRepo  *MockAdminRepository
	userRepo   *MockUserRepository
	recipeRepo *MockRecipeRepository
	notifRepo  *MockNotificationRepository
	banStore   *MockBanStore
	svc        AdminService
}

func newAdminFixture() *adminFixture {
	f := &adminFixture{
		adminRepo:  new(MockAdminRepository),
		userRepo:   new(MockUserRepository),
		recipeRepo: new(MockRecipeRepository),
		notifRepo:  new(MockNotificationRepository),
		banStore:   new(MockBanStore),
	}
	f.svc = NewAdminService(f.adminRepo, f.userRepo, f.recipeRepo, new(MockRatingRepository), f.notifRepo, f.banStore)
	return f
}

func TestApproveRecipe_SetsVerdictAndNotifiesAuthor(t *testing.T) {
	f := newAdminFixture()
	adminID := uuid.New()
	author := uuid.New()
	rec := &entities.Recipe{ID: uuid.New(), UserID: author, Title: "Rendang", Status: domain.RecipeStatusPending}

	f.recipeRepo.On("GetRecipeByID", mock.Anything, rec.ID.String()).Return(rec, nil)
	f.recipeRepo.On("UpdateRecipe", mock.Anything, mock.MatchedBy(func(r *entities.Recipe) bool {
		return r.Status == domain.RecipeStatusApproved && r.ModeratedBy != nil && *r.ModeratedBy == adminID && r.ModeratedAt != nil
	})).Return(nil)
	f.adminRepo.On("CreateActivityLog", mock.Anything, mock.MatchedBy(func(e *entities.ActivityLog) bool {
		return e.Action == "approve_recipe" && e.EntityID == rec.ID
	})).Return(nil)
	f.notifRepo.On("CreateNotification", mock.Anything, mock.MatchedBy(func(n *entities.Notification) bool {
		return n.UserID == author && n.Type == domain.NotificationRecipeModerated
	})).Return(nil)

	err := f.svc.ApproveRecipe(context.Background(), rec.ID.String(), adminID.String(), domain.ModerateRecipeRequest{})

	assert.NoError(t, err)
	f.recipeRepo.AssertExpectations(t)
	f.notifRepo.AssertExpectations(t)
}

func TestModerateRecipe_RejectsNonPending(t *testing.T) {
	f := newAdminFixture()
	rec := &entities.Recipe{ID: uuid.New(), Status: domain.RecipeStatusApproved}

	f.recipeRepo.On("GetRecipeByID", mock.Anything, rec.ID.String()).Return(rec, nil)

	err := f.svc.RejectRecipe(context.Background(), rec.ID.String(), uuid.New().String(), domain.ModerateRecipeRequest{})

	assert.ErrorIs(t, err, domain.ErrRecipeNotPending)
	f.recipeRepo.AssertNotCalled(t, "UpdateRecipe", mock.Anything, mock.Anything)
}

func TestModerateRecipe_AuditFailureDoesNotRollBackVerdict(t *testing.T) {
	f := newAdminFixture()
	rec := &entities.Recipe{ID: uuid.New(), UserID: uuid.New(), Title: "Soto", Status: domain.RecipeStatusPending}

	f.recipeRepo.On("GetRecipeByID", mock.Anything, rec.ID.String()).Return(rec, nil)
	f.recipeRepo.On("UpdateRecipe", mock.Anything, mock.Anything).Return(nil)
	f.adminRepo.On("CreateActivityLog", mock.Anything, mock.Anything).Return(errors.New("insert failed"))
	f.notifRepo.On("CreateNotification", mock.Anything, mock.Anything).Return(nil)

	err := f.svc.ApproveRecipe(context.Background(), rec.ID.String(), uuid.New().String(), domain.ModerateRecipeRequest{})

	assert.NoError(t, err)
}

func TestBanUser_RejectsAdminTarget(t *testing.T) {
	f := newAdminFixture()
	target := &entities.User{ID: uuid.New(), Role: domain.RoleAdmin}

	f.userRepo.On("GetUserByID", mock.Anything, target.ID.String()).Return(target, nil)

	err := f.svc.BanUser(context.Background(), target.ID.String(), uuid.New().String(), domain.BanUserRequest{Reason: "spam"})

	assert.ErrorIs(t, err, domain.ErrCannotBanAdmin)
	f.userRepo.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
}

func TestBanUser_RejectsAlreadyBanned(t *testing.T) {
	f := newAdminFixture()
	target := &entities.User{ID: uuid.New(), Role: domain.RoleUser, IsBanned: true}

	f.userRepo.On("GetUserByID", mock.Anything, target.ID.String()).Return(target, nil)

	err := f.svc.BanUser(context.Background(), target.ID.String(), uuid.New().String(), domain.BanUserRequest{Reason: "spam"})

	assert.ErrorIs(t, err, domain.ErrUserAlreadyBanned)
}

func TestBanUser_SetsMarkerOutlivingTokens(t *testing.T) {
	f := newAdminFixture()
	adminID := uuid.New()
	target := &entities.User{ID: uuid.New(), Role: domain.RoleUser}

	f.userRepo.On("GetUserByID", mock.Anything, target.ID.String()).Return(target, nil)
	f.userRepo.On("UpdateUser", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
		return u.IsBanned && u.BanReason == "harassment" && u.BannedBy != nil && *u.BannedBy == adminID
	})).Return(nil)
	f.banStore.On("MarkBanned", mock.Anything, target.ID.String(), "harassment", banMarkerTTL).Return(nil)
	f.adminRepo.On("CreateActivityLog", mock.Anything, mock.Anything).Return(nil)

	err := f.svc.BanUser(context.Background(), target.ID.String(), adminID.String(), domain.BanUserRequest{Reason: "harassment"})

	assert.NoError(t, err)
	assert.Greater(t, banMarkerTTL, 24*time.Hour)
	f.banStore.AssertExpectations(t)
}

func TestUnbanUser_ClearsMarker(t *testing.T) {
	f := newAdminFixture()
	now := time.Now()
	by := uuid.New()
	target := &entities.User{ID: uuid.New(), Role: domain.RoleUser, IsBanned: true, BanReason: "spam", BannedAt: &now, BannedBy: &by}

	f.userRepo.On("GetUserByID", mock.Anything, target.ID.String()).Return(target, nil)
	f.userRepo.On("UpdateUser", mock.Anything, mock.MatchedBy(func(u *entities.User) bool {
		return !u.IsBanned && u.BanReason == "" && u.BannedAt == nil && u.BannedBy == nil
	})).Return(nil)
	f.banStore.On("ClearBan", mock.Anything, target.ID.String()).Return(nil)
	f.adminRepo.On("CreateActivityLog", mock.Anything, mock.Anything).Return(nil)

	err := f.svc.UnbanUser(context.Background(), target.ID.String(), uuid.New().String())

	assert.NoError(t, err)
	f.banStore.AssertExpectations(t)
}

func TestUnbanUser_RejectsNotBanned(t *testing.T) {
	f := newAdminFixture()
	target := &entities.User{ID: uuid.New(), Role: domain.RoleUser}

	f.userRepo.On("GetUserByID", mock.Anything, target.ID.String()).Return(target, nil)

	err := f.svc.UnbanUser(context.Background(), target.ID.String(), uuid.New().String())

	assert.ErrorIs(t, err, domain.ErrUserNotBanned)
	f.banStore.AssertNotCalled(t, "ClearBan", mock.Anything, mock.Anything)
}
