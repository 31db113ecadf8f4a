package recipe

import (
	"context"

	"github.com/RaihanAdityaP/savora-web-sub000/domain"
	"github.com/RaihanAdityaP/savora-web-sub000/entities"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SearchFilter is the server-side predicate shared by the count and the page
// query. The tag filter is deliberately absent: tags hang off a many-to-many
// join the page query cannot constrain, so they are applied to the fetched
// page afterwards.
type SearchFilter struct {
	Query      string
	CategoryID string
	AuthorIDs  []string
}

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		DeleteRecipe(ctx context.Context, id string) error
		DeleteRecipeDependents(ctx context.Context, id string) error
		CountApproved(ctx context.Context, filter SearchFilter) (int64, error)
		FindApproved(ctx context.Context, filter SearchFilter, sort string, offset, limit int) ([]*entities.Recipe, error)
		GetRecipesByAuthor(ctx context.Context, authorID string, includeUnapproved bool, page, limit int) ([]*entities.Recipe, int64, error)
		GetRecipesByStatus(ctx context.Context, status string, page, limit int) ([]*entities.Recipe, int64, error)
		IncrementViews(ctx context.Context, id string) error
		AdjustAuthorRecipeCount(ctx context.Context, authorID string, delta int) error

		ReplaceRecipeTags(ctx context.Context, recipeID string, tagNames []string) error
		GetApprovedTags(ctx context.Context) ([]*entities.Tag, error)
		GetCategories(ctx context.Context) ([]*entities.Category, error)
		GetCategoryByID(ctx context.Context, id string) (*entities.Category, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Category").
		Preload("Tags").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Omit("Tags", "User", "Category").Save(recipe).Error
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Recipe{}).Error
}

// DeleteRecipeDependents clears ratings, comments, tag links and board
// memberships for a recipe. Each delete is its own statement; a failure
// partway leaves the remainder orphaned.
func (r *recipeRepository) DeleteRecipeDependents(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("recipe_id = ?", id).Delete(&entities.Rating{}).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Where("recipe_id = ?", id).Delete(&entities.Comment{}).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Where("recipe_id = ?", id).Delete(&entities.RecipeTag{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Where("recipe_id = ?", id).Delete(&entities.BoardRecipe{}).Error
}

func (r *recipeRepository) applyFilter(query *gorm.DB, filter SearchFilter) *gorm.DB {
	query = query.Where("status = ?", domain.RecipeStatusApproved)

	if filter.Query != "" {
		query = query.Where("title ILIKE ?", "%"+filter.Query+"%")
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if len(filter.AuthorIDs) > 0 {
		query = query.Where("user_id IN ?", filter.AuthorIDs)
	}
	return query
}

func (r *recipeRepository) CountApproved(ctx context.Context, filter SearchFilter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&entities.Recipe{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *recipeRepository) FindApproved(ctx context.Context, filter SearchFilter, sort string, offset, limit int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe

	var order string
	switch sort {
	case domain.SortPopularity:
		order = "views desc"
	default:
		// Rating has no column to order by server-side; newest ordering
		// stands in until the in-memory pass.
		order = "created_at desc"
	}

	query := r.applyFilter(r.db.WithContext(ctx).Model(&entities.Recipe{}), filter)
	if err := query.
		Preload("User").
		Preload("Tags").
		Order(order).
		Offset(offset).
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, err
	}

	return recipes, nil
}

func (r *recipeRepository) GetRecipesByAuthor(ctx context.Context, authorID string, includeUnapproved bool, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Recipe{}).Where("user_id = ?", authorID)
	if !includeUnapproved {
		query = query.Where("status = ?", domain.RecipeStatusApproved)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("User").
		Offset(offset).
		Limit(limit).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) GetRecipesByStatus(ctx context.Context, status string, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Recipe{}).Where("status = ?", status)

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("User").
		Offset(offset).
		Limit(limit).
		Order("created_at asc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) IncrementViews(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Model(&entities.Recipe{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (r *recipeRepository) AdjustAuthorRecipeCount(ctx context.Context, authorID string, delta int) error {
	return r.db.WithContext(ctx).Model(&entities.User{}).
		Where("id = ?", authorID).
		UpdateColumn("recipe_count", gorm.Expr("recipe_count + ?", delta)).Error
}

// ReplaceRecipeTags drops every existing tag link, then inserts the new set
// one row at a time. The sequence is not transactional; a crash partway
// leaves a partial tag set.
func (r *recipeRepository) ReplaceRecipeTags(ctx context.Context, recipeID string, tagNames []string) error {
	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeUUID).
		Delete(&entities.RecipeTag{}).Error; err != nil {
		return err
	}

	for _, name := range tagNames {
		var tag entities.Tag
		err := r.db.WithContext(ctx).Where("name = ?", name).First(&tag).Error
		if err != nil {
			if err != gorm.ErrRecordNotFound {
				return err
			}
			tag = entities.Tag{ID: uuid.New(), Name: name}
			if err := r.db.WithContext(ctx).Create(&tag).Error; err != nil {
				return err
			}
		}

		link := entities.RecipeTag{RecipeID: recipeUUID, TagID: tag.ID}
		if err := r.db.WithContext(ctx).Create(&link).Error; err != nil {
			return err
		}

		// Usage counter is a denormalized cache and may drift.
		_ = r.db.WithContext(ctx).Model(&entities.Tag{}).
			Where("id = ?", tag.ID).
			UpdateColumn("usage_count", gorm.Expr("usage_count + 1")).Error
	}

	return nil
}

func (r *recipeRepository) GetApprovedTags(ctx context.Context) ([]*entities.Tag, error) {
	var tags []*entities.Tag
	if err := r.db.WithContext(ctx).
		Where("is_approved = ?", true).
		Order("usage_count desc").
		Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *recipeRepository) GetCategories(ctx context.Context) ([]*entities.Category, error) {
	var categories []*entities.Category
	if err := r.db.WithContext(ctx).Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *recipeRepository) GetCategoryByID(ctx context.Context, id string) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}
