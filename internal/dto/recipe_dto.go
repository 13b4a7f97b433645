package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RecipeIngredientRequest struct {
	Food   string          `json:"food"   validate:"required,min=1,max=120"`
	Amount decimal.Decimal `json:"amount" validate:"required,gt=0"`
	Unit   string          `json:"unit"   validate:"required,min=1,max=40"`
}

type CreateRecipeRequest struct {
	Name        string                    `json:"name"        validate:"required,min=1,max=200"`
	Description string                    `json:"description" validate:"required"`
	Ingredients []RecipeIngredientRequest `json:"ingredients" validate:"required,min=1,dive"`
}

type UpdateRecipeRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=1,max=200"`
	Description *string `json:"description"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type RecipeFilter struct {
	Page int `form:"page,default=1"  validate:"min=1"`
	Size int `form:"size,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type IngredientResponse struct {
	ID     uuid.UUID       `json:"id"`
	Food   string          `json:"food"`
	FoodID uuid.UUID       `json:"food_id"`
	Amount decimal.Decimal `json:"amount"`
	Unit   string          `json:"unit"`
}

type RecipeResponse struct {
	ID          uuid.UUID            `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Ingredients []IngredientResponse `json:"ingredients"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

type RecipeListResponse struct {
	Items      []RecipeResponse `json:"items"`
	Page       int              `json:"page"`
	Size       int              `json:"size"`
	Total      int64            `json:"total"`
	TotalPages int64            `json:"total_pages"`
}
