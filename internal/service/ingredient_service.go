package service

import (
	"context"

	"github.com/widal001/meal-planner-api/internal/dto"
	"github.com/widal001/meal-planner-api/internal/model"
	"github.com/widal001/meal-planner-api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IngredientService creates ingredients, resolving or lazily creating the
// parent food first.
type IngredientService interface {
	// Create stages a new ingredient for the given recipe in the caller's
	// transaction; with tx == nil it commits immediately. The returned record
	// has its Food relation populated.
	Create(ctx context.Context, tx *gorm.DB, recipeID uuid.UUID, req dto.RecipeIngredientRequest) (*model.Ingredient, error)
}

type ingredientService struct {
	repo  repository.IngredientRepository
	foods FoodService
}

func NewIngredientService(repo repository.IngredientRepository, foods FoodService) IngredientService {
	return &ingredientService{repo: repo, foods: foods}
}

func (s *ingredientService) Create(ctx context.Context, tx *gorm.DB, recipeID uuid.UUID, req dto.RecipeIngredientRequest) (*model.Ingredient, error) {
	food, err := s.foods.GetOrCreate(ctx, tx, req.Food)
	if err != nil {
		return nil, err
	}

	ing := &model.Ingredient{
		ID:       uuid.New(),
		FoodID:   food.ID,
		RecipeID: recipeID,
		Amount:   req.Amount,
		Unit:     req.Unit,
	}
	if err := s.repo.Create(ctx, tx, ing); err != nil {
		return nil, err
	}

	// Attach after the insert so GORM does not try to re-save the relation.
	ing.Food = food
	return ing, nil
}
