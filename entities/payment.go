package entities

import (
	"github.com/google/uuid"
)

type PaymentTransaction struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrderID string    `gorm:"uniqueIndex" json:"order_id"`
	UserID  uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Amount  int64     `json:"amount"`
	Status  string    `gorm:"default:pending" json:"status"` // pending, settlement, expire, cancel

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
