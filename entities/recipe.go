package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Recipe struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID      `gorm:"type:uuid;index" json:"user_id"`
	Title           string         `json:"title"`
	Description     string         `gorm:"type:text" json:"description"`
	CategoryID      uuid.UUID      `gorm:"type:uuid;index" json:"category_id"`
	DifficultyLevel string         `json:"difficulty_level"` // easy, medium, hard
	CookTimeMinutes int            `json:"cook_time_minutes"`
	Servings        int            `json:"servings"`
	Calories        int            `json:"calories"`
	Ingredients     datatypes.JSON `json:"ingredients"`
	Steps           datatypes.JSON `json:"steps"`
	ImageURL        string         `json:"image_url,omitempty"`
	VideoURL        string         `json:"video_url,omitempty"`
	Views           int64          `gorm:"default:0" json:"views"`

	Status      string     `gorm:"default:pending;index" json:"status"` // pending, approved, rejected
	ModeratedBy *uuid.UUID `gorm:"type:uuid" json:"moderated_by,omitempty"`
	ModeratedAt *time.Time `gorm:"type:timestamp" json:"moderated_at,omitempty"`

	User     *User     `gorm:"foreignKey:UserID"`
	Category *Category `gorm:"foreignKey:CategoryID"`
	Tags     []*Tag    `gorm:"many2many:recipe_tags"`
	Timestamp
}

type Category struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name string    `gorm:"uniqueIndex" json:"name"`
	Slug string    `gorm:"uniqueIndex" json:"slug"`
}

type Tag struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name       string    `gorm:"uniqueIndex" json:"name"`
	UsageCount int       `gorm:"default:0" json:"usage_count"`
	IsApproved bool      `gorm:"default:false" json:"is_approved"`
	Timestamp
}

type RecipeTag struct {
	RecipeID uuid.UUID `gorm:"type:uuid;primaryKey" json:"recipe_id"`
	TagID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"tag_id"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	Tag    *Tag    `gorm:"foreignKey:TagID"`
}

type Rating struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID uuid.UUID `gorm:"type:uuid;index:idx_rating_pair,unique" json:"recipe_id"`
	UserID   uuid.UUID `gorm:"type:uuid;index:idx_rating_pair,unique" json:"user_id"`
	Value    int       `gorm:"check:value >= 1 AND value <= 5" json:"value"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	User   *User   `gorm:"foreignKey:UserID"`
	Timestamp
}

type Comment struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID uuid.UUID `gorm:"type:uuid;index" json:"recipe_id"`
	UserID   uuid.UUID `gorm:"type:uuid" json:"user_id"`
	Content  string    `gorm:"type:text" json:"content"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	User   *User   `gorm:"foreignKey:UserID"`
	Timestamp
}
