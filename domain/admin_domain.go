package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessApproveRecipe   = "recipe approved"
	MessageSuccessRejectRecipe    = "recipe rejected"
	MessageSuccessBanUser         = "user banned"
	MessageSuccessUnbanUser       = "user unbanned"
	MessageSuccessGetQueue        = "success get moderation queue"
	MessageSuccessGetActivityLogs = "success get activity logs"
	MessageSuccessGetUsers        = "success get users"

	MessageFailedApproveRecipe   = "failed to approve recipe"
	MessageFailedRejectRecipe    = "failed to reject recipe"
	MessageFailedBanUser         = "failed to ban user"
	MessageFailedUnbanUser       = "failed to unban user"
	MessageFailedGetQueue        = "failed to get moderation queue"
	MessageFailedGetActivityLogs = "failed to get activity logs"
	MessageFailedGetUsers        = "failed to get users"

	ErrRecipeNotPending = errors.New("recipe is not pending review")
	ErrUserAlreadyBanned = errors.New("user is already banned")
	ErrUserNotBanned     = errors.New("user is not banned")
	ErrCannotBanAdmin    = errors.New("cannot ban an admin account")
)

type (
	ModerateRecipeRequest struct {
		Note string `json:"note" validate:"omitempty,max=500"`
	}

	BanUserRequest struct {
		Reason string `json:"reason" validate:"required,max=500"`
	}

	ActivityLogResponse struct {
		ID         string    `json:"id"`
		AdminID    string    `json:"admin_id"`
		Action     string    `json:"action"`
		EntityID   string    `json:"entity_id"`
		EntityType string    `json:"entity_type"`
		Details    string    `json:"details,omitempty"`
		CreatedAt  time.Time `json:"created_at"`
	}

	AdminUserResponse struct {
		ID          string     `json:"id"`
		Username    string     `json:"username"`
		Email       string     `json:"email"`
		Role        string     `json:"role"`
		IsBanned    bool       `json:"is_banned"`
		BanReason   string     `json:"ban_reason,omitempty"`
		BannedAt    *time.Time `json:"banned_at,omitempty"`
		RecipeCount int        `json:"recipe_count"`
		CreatedAt   time.Time  `json:"created_at"`
	}
)
