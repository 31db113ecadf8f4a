package notification

import (
	"context"

	"github.com/RaihanAdityaP/savora-web-sub000/domain"
)

type (
	NotificationService interface {
		GetNotifications(ctx context.Context, userID string, page, limit int) ([]domain.NotificationResponse, int64, int64, error)
		MarkRead(ctx context.Context, id, userID string) error
		MarkAllRead(ctx context.Context, userID string) error
		DeleteNotification(ctx context.Context, id, userID string) error
	}

	notificationService struct {
		notificationRepository NotificationRepository
	}
)

func NewNotificationService(notificationRepository NotificationRepository) NotificationService {
	return &notificationService{notificationRepository: notificationRepository}
}

func (s *notificationService) GetNotifications(ctx context.Context, userID string, page, limit int) ([]domain.NotificationResponse, int64, int64, error) {
	notifications, count, err := s.notificationRepository.GetNotifications(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, 0, err
	}

	unread, err := s.notificationRepository.CountUnread(ctx, userID)
	if err != nil {
		return nil, 0, 0, err
	}

	response := make([]domain.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		response = append(response, domain.NotificationResponse{
			ID:         n.ID.String(),
			Type:       n.Type,
			EntityID:   n.EntityID.String(),
			EntityType: n.EntityType,
			Message:    n.Message,
			IsRead:     n.IsRead,
			CreatedAt:  n.CreatedAt,
		})
	}

	return response, count, unread, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id, userID string) error {
	found, err := s.notificationRepository.MarkRead(ctx, id, userID)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotificationNotFound
	}
	return nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) error {
	return s.notificationRepository.MarkAllRead(ctx, userID)
}

func (s *notificationService) DeleteNotification(ctx context.Context, id, userID string) error {
	found, err := s.notificationRepository.DeleteNotification(ctx, id, userID)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotificationNotFound
	}
	return nil
}
