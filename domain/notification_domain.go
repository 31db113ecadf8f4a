package domain

import (
	"errors"
	"time"
)

const (
	NotificationNewFollower     = "new_follower"
	NotificationNewComment      = "new_comment"
	NotificationRecipeModerated = "recipe_moderated"
)

var (
	MessageSuccessGetNotifications = "success get notifications"
	MessageSuccessMarkRead         = "notification marked as read"
	MessageSuccessMarkAllRead      = "all notifications marked as read"
	MessageSuccessDeleteNotif      = "notification deleted successfully"

	MessageFailedGetNotifications = "failed to get notifications"
	MessageFailedMarkRead         = "failed to mark notification as read"
	MessageFailedMarkAllRead      = "failed to mark notifications as read"
	MessageFailedDeleteNotif      = "failed to delete notification"

	ErrNotificationNotFound = errors.New("notification not found")
)

type NotificationResponse struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	EntityID   string    `json:"entity_id"`
	EntityType string    `json:"entity_type"`
	Message    string    `json:"message"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}
