package migration

import (
	"fmt"
	"log"

	"github.com/RaihanAdityaP/savora-web-sub000/entities"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []any{
		&entities.User{},
		&entities.Follow{},
		&entities.Notification{},
		&entities.Category{},
		&entities.Tag{},
		&entities.Recipe{},
		&entities.RecipeTag{},
		&entities.Rating{},
		&entities.Comment{},
		&entities.RecipeBoard{},
		&entities.BoardRecipe{},
		&entities.ActivityLog{},
		&entities.PaymentTransaction{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			log.Fatalf("Error migrating database: %v", err)
			return err
		}
	}

	seedCategories(db)

	fmt.Println("Database migration complete")
	return nil
}

func seedCategories(db *gorm.DB) {
	categories := []entities.Category{
		{Name: "Appetizer", Slug: "appetizer"},
		{Name: "Main Course", Slug: "main-course"},
		{Name: "Dessert", Slug: "dessert"},
		{Name: "Beverage", Slug: "beverage"},
		{Name: "Snack", Slug: "snack"},
		{Name: "Breakfast", Slug: "breakfast"},
		{Name: "Soup", Slug: "soup"},
		{Name: "Salad", Slug: "salad"},
	}
	for _, category := range categories {
		db.Where(entities.Category{Slug: category.Slug}).FirstOrCreate(&category)
	}
}
