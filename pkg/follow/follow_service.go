package follow

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/RaihanAdityaP/savora-web-sub000/domain"
	"github.com/RaihanAdityaP/savora-web-sub000/entities"
	"github.com/RaihanAdityaP/savora-web-sub000/pkg/notification"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FollowService interface {
		Follow(ctx context.Context, followerID, targetID string) error
		Unfollow(ctx context.Context, followerID, targetID string) error
		GetFollowers(ctx context.Context, userID string, page, limit int) ([]domain.AuthorInfo, int64, error)
		GetFollowing(ctx context.Context, userID string, page, limit int) ([]domain.AuthorInfo, int64, error)
	}

	followService struct {
		followRepository       FollowRepository
		notificationRepository notification.NotificationRepository
	}
)

func NewFollowService(
	followRepository FollowRepository,
	notificationRepository notification.NotificationRepository,
) FollowService {
	return &followService{
		followRepository:       followRepository,
		notificationRepository: notificationRepository,
	}
}

func (s *followService) Follow(ctx context.Context, followerID, targetID string) error {
	if followerID == targetID {
		return domain.ErrSelfFollow
	}

	target, err := s.followRepository.GetUserByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	following, err := s.followRepository.IsFollowing(ctx, followerID, targetID)
	if err != nil {
		return err
	}
	if following {
		return domain.ErrAlreadyFollowing
	}

	if err := s.followRepository.CreateFollow(ctx, followerID, targetID); err != nil {
		return err
	}

	s.adjustCounters(ctx, followerID, targetID, 1)

	if followerUUID, err := uuid.Parse(followerID); err == nil {
		notif := &entities.Notification{
			ID:         uuid.New(),
			UserID:     target.ID,
			ActorID:    followerUUID,
			Type:       domain.NotificationNewFollower,
			EntityID:   followerUUID,
			EntityType: "user",
			Message:    "started following you",
		}
		if err := s.notificationRepository.CreateNotification(ctx, notif); err != nil {
			log.Printf("follow notification failed: %v", err)
		}
	}

	return nil
}

func (s *followService) Unfollow(ctx context.Context, followerID, targetID string) error {
	removed, err := s.followRepository.DeleteFollow(ctx, followerID, targetID)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrNotFollowing
	}

	s.adjustCounters(ctx, followerID, targetID, -1)
	return nil
}

func (s *followService) adjustCounters(ctx context.Context, followerID, targetID string, delta int) {
	if err := s.followRepository.AdjustUserCounter(ctx, targetID, "follower_count", delta); err != nil {
		log.Printf("follower counter update failed: %v", err)
	}
	if err := s.followRepository.AdjustUserCounter(ctx, followerID, "following_count", delta); err != nil {
		log.Printf("following counter update failed: %v", err)
	}
}

func (s *followService) GetFollowers(ctx context.Context, userID string, page, limit int) ([]domain.AuthorInfo, int64, error) {
	users, count, err := s.followRepository.GetFollowers(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("get followers: %w", err)
	}
	return toAuthorInfos(users), count, nil
}

func (s *followService) GetFollowing(ctx context.Context, userID string, page, limit int) ([]domain.AuthorInfo, int64, error) {
	users, count, err := s.followRepository.GetFollowing(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("get following: %w", err)
	}
	return toAuthorInfos(users), count, nil
}

func toAuthorInfos(users []*entities.User) []domain.AuthorInfo {
	infos := make([]domain.AuthorInfo, 0, len(users))
	for _, u := range users {
		infos = append(infos, domain.AuthorInfo{
			ID:          u.ID.String(),
			Username:    u.Username,
			DisplayName: u.DisplayName,
			AvatarURL:   u.AvatarURL,
		})
	}
	return infos
}
