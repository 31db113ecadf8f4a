package entities

import (
	"time"

	"github.com/google/uuid"
)

type RecipeBoard struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Name        string    `json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

type BoardRecipe struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	BoardID  uuid.UUID `gorm:"type:uuid;index:idx_board_recipe_pair,unique" json:"board_id"`
	RecipeID uuid.UUID `gorm:"type:uuid;index:idx_board_recipe_pair,unique" json:"recipe_id"`
	AddedAt  time.Time `gorm:"type:timestamp" json:"added_at"`

	Board  *RecipeBoard `gorm:"foreignKey:BoardID"`
	Recipe *Recipe      `gorm:"foreignKey:RecipeID"`
}
