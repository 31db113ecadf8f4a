package follow

import (
	"context"
	"errors"
	"testing"

	"github.com/RaihanAdityaP/savora-web-sub000/domain"
	"github.com/RaihanAdityaP/savora-web-sub000/entities"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockFollowRepository is a mock implementation of FollowRepository.
type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) CreateFollow(ctx context.Context, followerID, followingID string) error {
	return m.Called(ctx, followerID, followingID).Error(0)
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
	return m.Called(ctx, userID, column, delta).Error(0)
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

func TestFollow_RejectsSelfFollow(t *testing.T) {
	followRepo := new(MockFollowRepository)
	svc := NewFollowService(followRepo, new(MockNotificationRepository))
	id := uuid.New().String()

	err := svc.Follow(context.Background(), id, id)

	assert.ErrorIs(t, err, domain.ErrSelfFollow)
	followRepo.AssertNotCalled(t, "CreateFollow", mock.Anything, mock.Anything, mock.Anything)
}

func TestFollow_RejectsDuplicate(t *testing.T) {
	followRepo := new(MockFollowRepository)
	svc := NewFollowService(followRepo, new(MockNotificationRepository))
	follower := uuid.New().String()
	target := uuid.New()

	followRepo.On("GetUserByID", mock.Anything, target.String()).
		Return(&entities.User{ID: target}, nil)
	followRepo.On("IsFollowing", mock.Anything, follower, target.String()).Return(true, nil)

	err := svc.Follow(context.Background(), follower, target.String())

	assert.ErrorIs(t, err, domain.ErrAlreadyFollowing)
	followRepo.AssertNotCalled(t, "CreateFollow", mock.Anything, mock.Anything, mock.Anything)
}

func TestFollow_UpdatesCountersAndNotifies(t *testing.T) {
	followRepo := new(MockFollowRepository)
	notifRepo := new(MockNotificationRepository)
	svc := NewFollowService(followRepo, notifRepo)
	follower := uuid.New()
	target := uuid.New()

	followRepo.On("GetUserByID", mock.Anything, target.String()).
		Return(&entities.User{ID: target}, nil)
	followRepo.On("IsFollowing", mock.Anything, follower.String(), target.String()).Return(false, nil)
	followRepo.On("CreateFollow", mock.Anything, follower.String(), target.String()).Return(nil)
	followRepo.On("AdjustUserCounter", mock.Anything, target.String(), "follower_count", 1).Return(nil)
	followRepo.On("AdjustUserCounter", mock.Anything, follower.String(), "following_count", 1).Return(nil)
	notifRepo.On("CreateNotification", mock.Anything, mock.MatchedBy(func(n *entities.Notification) bool {
		return n.UserID == target && n.ActorID == follower && n.Type == domain.NotificationNewFollower
	})).Return(nil)

	err := svc.Follow(context.Background(), follower.String(), target.String())

	assert.NoError(t, err)
	followRepo.AssertExpectations(t)
	notifRepo.AssertExpectations(t)
}

func TestFollow_NotificationFailureDoesNotFailFollow(t *testing.T) {
	followRepo := new(MockFollowRepository)
	notifRepo := new(MockNotificationRepository)
	svc := NewFollowService(followRepo, notifRepo)
	follower := uuid.New()
	target := uuid.New()

	followRepo.On("GetUserByID", mock.Anything, target.String()).
		Return(&entities.User{ID: target}, nil)
	followRepo.On("IsFollowing", mock.Anything, follower.String(), target.String()).Return(false, nil)
	followRepo.On("CreateFollow", mock.Anything, follower.String(), target.String()).Return(nil)
	followRepo.On("AdjustUserCounter", mock.Anything, mock.Anything, mock.Anything, 1).Return(nil)
	notifRepo.On("CreateNotification", mock.Anything, mock.Anything).Return(errors.New("insert failed"))

	err := svc.Follow(context.Background(), follower.String(), target.String())

	assert.NoError(t, err)
}

func TestUnfollow_NotFollowing(t *testing.T) {
	followRepo := new(MockFollowRepository)
	svc := NewFollowService(followRepo, new(MockNotificationRepository))
	follower := uuid.New().String()
	target := uuid.New().String()

	followRepo.On("DeleteFollow", mock.Anything, follower, target).Return(false, nil)

	err := svc.Unfollow(context.Background(), follower, target)

	assert.ErrorIs(t, err, domain.ErrNotFollowing)
	followRepo.AssertNotCalled(t, "AdjustUserCounter", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUnfollow_DecrementsCounters(t *testing.T) {
	followRepo := new(MockFollowRepository)
	svc := NewFollowService(followRepo, new(MockNotificationRepository))
	follower := uuid.New().String()
	target := uuid.New().String()

	followRepo.On("DeleteFollow", mock.Anything, follower, target).Return(true, nil)
	followRepo.On("AdjustUserCounter", mock.Anything, target, "follower_count", -1).Return(nil)
	followRepo.On("AdjustUserCounter", mock.Anything, follower, "following_count", -1).Return(nil)

	err := svc.Unfollow(context.Background(), follower, target)

	assert.NoError(t, err)
	followRepo.AssertExpectations(t)
}
