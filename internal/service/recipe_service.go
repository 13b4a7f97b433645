package service

import (
	"context"

	"github.com/widal001/meal-planner-api/internal/dto"
	"github.com/widal001/meal-planner-api/internal/model"
	"github.com/widal001/meal-planner-api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipeService handles the business logic for reading and creating recipes.
// Lookups that find nothing return a nil response, not an error; the handler
// decides how absence maps onto the wire.
type RecipeService interface {
	Create(ctx context.Context, req dto.CreateRecipeRequest) (*dto.RecipeResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.RecipeResponse, error)
	List(ctx context.Context, filter dto.RecipeFilter) (*dto.RecipeListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateRecipeRequest) (*dto.RecipeResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type recipeService struct {
	repo        repository.RecipeRepository
	ingredients IngredientService
}

func NewRecipeService(repo repository.RecipeRepository, ingredients IngredientService) RecipeService {
	return &recipeService{repo: repo, ingredients: ingredients}
}

// mapRecipe converts a model (with ingredients and foods resolved) to a DTO.
func mapRecipe(r *model.Recipe) *dto.RecipeResponse {
	resp := &dto.RecipeResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Ingredients: make([]dto.IngredientResponse, 0, len(r.Ingredients)),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	for _, ing := range r.Ingredients {
		foodName := ""
		if ing.Food != nil {
			foodName = ing.Food.Name
		}
		resp.Ingredients = append(resp.Ingredients, dto.IngredientResponse{
			ID:     ing.ID,
			Food:   foodName,
			FoodID: ing.FoodID,
			Amount: ing.Amount,
			Unit:   ing.Unit,
		})
	}
	return resp
}

// ─── Create ──────────────────────────────────────────────────────────────────
// One transaction for the whole graph:
//  1. BEGIN TX: insert recipe
//  2. per ingredient: find-or-create food by name, insert ingredient
//  3. COMMIT — if any step fails, nothing is persisted
//
// Repeated food names within one payload resolve to the same staged row
// because the food lookup reads through the open transaction.

func (s *recipeService) Create(ctx context.Context, req dto.CreateRecipeRequest) (*dto.RecipeResponse, error) {
	recipe := &model.Recipe{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.Create(ctx, tx, recipe); err != nil {
			return err
		}
		for _, ingReq := range req.Ingredients {
			ing, err := s.ingredients.Create(ctx, tx, recipe.ID, ingReq)
			if err != nil {
				return err
			}
			recipe.Ingredients = append(recipe.Ingredients, *ing)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	// Reload to pick up the server-assigned timestamps.
	full, err := s.repo.Get(ctx, recipe.ID)
	if err != nil {
		return nil, err
	}
	if full == nil {
		full = recipe
	}
	return mapRecipe(full), nil
}

func (s *recipeService) Get(ctx context.Context, id uuid.UUID) (*dto.RecipeResponse, error) {
	recipe, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, nil
	}
	return mapRecipe(recipe), nil
}

func (s *recipeService) List(ctx context.Context, filter dto.RecipeFilter) (*dto.RecipeListResponse, error) {
	page, size := filter.Page, filter.Size
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 20
	}

	recipes, count, err := s.repo.List(ctx, (page-1)*size, size)
	if err != nil {
		return nil, err
	}

	items := make([]dto.RecipeResponse, 0, len(recipes))
	for i := range recipes {
		items = append(items, *mapRecipe(&recipes[i]))
	}
	return &dto.RecipeListResponse{
		Items:      items,
		Page:       page,
		Size:       size,
		Total:      count,
		TotalPages: (count + int64(size) - 1) / int64(size),
	}, nil
}

// Update applies only the fields present in the request, then returns the
// refreshed recipe. A missing recipe yields (nil, nil).
func (s *recipeService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateRecipeRequest) (*dto.RecipeResponse, error) {
	recipe, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, nil
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if len(fields) > 0 {
		if err := s.repo.Update(ctx, recipe, fields); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, id)
}

// Delete removes the recipe and, via the FK cascade, all of its ingredients.
// Referenced foods are left untouched. Deleting an unknown id is a no-op.
func (s *recipeService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
