package follow

import (
	"context"
	"time"

	"github.com/RaihanAdityaP/savora-web-sub000/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FollowRepository interface {
		CreateFollow(ctx context.Context, followerID, followingID string) error
		DeleteFollow(ctx context.Context, followerID, followingID string) (bool, error)
		IsFollowing(ctx context.Context, followerID, followingID string) (bool, error)
		GetFollowingIDs(ctx context.Context, followerID string) ([]string, error)
		GetFollowers(ctx context.Context, userID string, page, limit int) ([]*entities.User, int64, error)
		GetFollowing(ctx context.Context, userID string, page, limit int) ([]*entities.User, int64, error)
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		AdjustUserCounter(ctx context.Context, userID, column string, delta int) error
	}

	followRepository struct {
		db *gorm.DB
	}
)

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) CreateFollow(ctx context.Context, followerID, followingID string) error {
	followerUUID, err := uuid.Parse(followerID)
	if err != nil {
		return err
	}
	followingUUID, err := uuid.Parse(followingID)
	if err != nil {
		return err
	}

	edge := entities.Follow{
		ID:          uuid.New(),
		FollowerID:  followerUUID,
		FollowingID: followingUUID,
		CreatedAt:   time.Now(),
	}
	return r.db.WithContext(ctx).Create(&edge).Error
}

// DeleteFollow removes the edge and reports whether one existed.
func (r *followRepository) DeleteFollow(ctx context.Context, followerID, followingID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&entities.Follow{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *followRepository) IsFollowing(ctx context.Context, followerID, followingID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *followRepository) GetFollowingIDs(ctx context.Context, followerID string) ([]string, error) {
	var ids []string
	if err := r.db.WithContext(ctx).Model(&entities.Follow{}).
		Where("follower_id = ?", followerID).
		Pluck("following_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *followRepository) GetFollowers(ctx context.Context, userID string, page, limit int) ([]*entities.User, int64, error) {
	var users []*entities.User
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.User{}).
		Joins("JOIN follows ON users.id = follows.follower_id").
		Where("follows.following_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.User{}).
		Joins("JOIN follows ON users.id = follows.follower_id").
		Where("follows.following_id = ?", userID).
		Offset(offset).
		Limit(limit).
		Order("follows.created_at desc").
		Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, count, nil
}

func (r *followRepository) GetFollowing(ctx context.Context, userID string, page, limit int) ([]*entities.User, int64, error) {
	var users []*entities.User
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.User{}).
		Joins("JOIN follows ON users.id = follows.following_id").
		Where("follows.follower_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).Model(&entities.User{}).
		Joins("JOIN follows ON users.id = follows.following_id").
		Where("follows.follower_id = ?", userID).
		Offset(offset).
		Limit(limit).
		Order("follows.created_at desc").
		Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, count, nil
}

func (r *followRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// AdjustUserCounter refreshes a cached follower/following count. The count is
// not maintained atomically with the edge write and may drift.
func (r *followRepository) AdjustUserCounter(ctx context.Context, userID, column string, delta int) error {
	if column != "follower_count" && column != "following_count" {
		return gorm.ErrInvalidField
	}
	return r.db.WithContext(ctx).Model(&entities.User{}).
		Where("id = ?", userID).
		UpdateColumn(column, gorm.Expr(column+" + ?", delta)).Error
}
