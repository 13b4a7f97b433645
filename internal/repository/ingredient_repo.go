package repository

import (
	"context"

	"github.com/widal001/meal-planner-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IngredientRepository defines persistence operations for Ingredient.
// Ingredients are insert-only from the API's perspective; rows disappear via
// the FK cascades on their parent Food or Recipe.
type IngredientRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*model.Ingredient, error)
	Create(ctx context.Context, tx *gorm.DB, ing *model.Ingredient) error
	Count(ctx context.Context) (int64, error)
	CountByRecipe(ctx context.Context, recipeID uuid.UUID) (int64, error)
	DB() *gorm.DB
}

type ingredientRepository struct {
	Base[model.Ingredient]
}

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{Base: NewBase[model.Ingredient](db)}
}

func (r *ingredientRepository) CountByRecipe(ctx context.Context, recipeID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.Ingredient{}).
		Where("recipe_id = ?", recipeID).
		Count(&n).Error
	return n, err
}
