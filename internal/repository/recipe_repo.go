package repository

import (
	"context"
	"errors"

	"github.com/widal001/meal-planner-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipeRepository defines persistence operations for Recipe. Reads resolve
// the ingredient → food chain so callers always see food names.
type RecipeRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*model.Recipe, error)
	List(ctx context.Context, offset, limit int) ([]model.Recipe, int64, error)
	Create(ctx context.Context, tx *gorm.DB, r *model.Recipe) error
	Update(ctx context.Context, r *model.Recipe, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	DB() *gorm.DB
}

type recipeRepository struct {
	CRUD[model.Recipe]
}

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{CRUD: NewCRUD[model.Recipe](db)}
}

// Get shadows the generic lookup to preload ingredients and their foods.
func (r *recipeRepository) Get(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	var recipe model.Recipe
	err := r.db.WithContext(ctx).
		Preload("Ingredients.Food").
		First(&recipe, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) List(ctx context.Context, offset, limit int) ([]model.Recipe, int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Recipe{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var recipes []model.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients.Food").
		Order("created_at desc, id").
		Offset(offset).
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}
	return recipes, count, nil
}
