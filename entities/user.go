package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Username    string    `gorm:"uniqueIndex" json:"username"`
	DisplayName string    `json:"display_name"`
	Email       string    `gorm:"uniqueIndex" json:"email"`
	Password    string    `json:"-"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
	Bio         string    `gorm:"type:text" json:"bio,omitempty"`
	Role        string    `gorm:"default:user" json:"role"`
	Verified    bool      `gorm:"default:false" json:"verified"`

	IsBanned  bool       `gorm:"default:false" json:"is_banned"`
	BanReason string     `json:"ban_reason,omitempty"`
	BannedAt  *time.Time `gorm:"type:timestamp" json:"banned_at,omitempty"`
	BannedBy  *uuid.UUID `gorm:"type:uuid" json:"banned_by,omitempty"`

	// Cached cardinalities of the underlying join tables. Maintained
	// best-effort, may drift from the true counts.
	RecipeCount    int `gorm:"default:0" json:"recipe_count"`
	BookmarkCount  int `gorm:"default:0" json:"bookmark_count"`
	FollowerCount  int `gorm:"default:0" json:"follower_count"`
	FollowingCount int `gorm:"default:0" json:"following_count"`

	Timestamp
}

type Follow struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FollowerID  uuid.UUID `gorm:"type:uuid;index:idx_follow_pair,unique" json:"follower_id"`
	FollowingID uuid.UUID `gorm:"type:uuid;index:idx_follow_pair,unique" json:"following_id"`
	CreatedAt   time.Time `gorm:"type:timestamp" json:"created_at"`

	Follower  *User `gorm:"foreignKey:FollowerID"`
	Following *User `gorm:"foreignKey:FollowingID"`
}

type Notification struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	ActorID    uuid.UUID `gorm:"type:uuid" json:"actor_id"`
	Type       string    `json:"type"` // new_follower, new_comment, recipe_moderated
	EntityID   uuid.UUID `gorm:"type:uuid" json:"entity_id"`
	EntityType string    `json:"entity_type"` // recipe, user, comment
	Message    string    `gorm:"type:text" json:"message"`
	IsRead     bool      `gorm:"default:false" json:"is_read"`
	CreatedAt  time.Time `gorm:"type:timestamp" json:"created_at"`

	User  *User `gorm:"foreignKey:UserID"`
	Actor *User `gorm:"foreignKey:ActorID"`
}
