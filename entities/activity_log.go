package entities

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLog is an append-only audit record of admin actions.
type ActivityLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	AdminID    uuid.UUID `gorm:"type:uuid;index" json:"admin_id"`
	Action     string    `json:"action"` // approve_recipe, reject_recipe, ban_user, unban_user, delete_recipe, delete_comment
	EntityID   uuid.UUID `gorm:"type:uuid" json:"entity_id"`
	EntityType string    `json:"entity_type"`
	Details    string    `gorm:"type:text" json:"details,omitempty"`
	CreatedAt  time.Time `gorm:"type:timestamp" json:"created_at"`

	Admin *User `gorm:"foreignKey:AdminID"`
}
