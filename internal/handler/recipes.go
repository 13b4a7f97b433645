package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/widal001/meal-planner-api/internal/apierror"
	"github.com/widal001/meal-planner-api/internal/dto"
	"github.com/widal001/meal-planner-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RecipesHandler serves the /recipes endpoints.
type RecipesHandler struct {
	svc      service.RecipeService
	rdb      *redis.Client // nil disables the detail cache (unit tests)
	cacheTTL time.Duration
}

func NewRecipesHandler(svc service.RecipeService, rdb *redis.Client, cacheTTL time.Duration) *RecipesHandler {
	return &RecipesHandler{svc: svc, rdb: rdb, cacheTTL: cacheTTL}
}

// List godoc
// @Summary List recipes with their resolved ingredient food names
// @Tags recipes
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size (max 100)"
// @Success 200 {object} dto.RecipeListResponse
// @Router /recipes/ [get]
func (h *RecipesHandler) List(c *gin.Context) {
	var filter dto.RecipeFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid pagination parameters"))
		return
	}
	if err := validate.Struct(filter); err != nil {
		c.JSON(http.StatusUnprocessableEntity, apierror.New("Invalid pagination parameters"))
		return
	}

	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.Error(err) //nolint:errcheck // collected by the error-handler middleware
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to list recipes"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Create godoc
// @Summary Create a recipe with its ingredients in one transaction
// @Tags recipes
// @Accept json
// @Produce json
// @Param payload body dto.CreateRecipeRequest true "Recipe to create"
// @Success 201 {object} dto.RecipeResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /recipes/ [post]
func (h *RecipesHandler) Create(c *gin.Context) {
	var req dto.CreateRecipeRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		// Constraint violations and other storage failures have no dedicated
		// client mapping; the transaction has already been rolled back.
		c.Error(err) //nolint:errcheck
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to create recipe"))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Get godoc
// @Summary Get recipe details by id
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe id (uuid)"
// @Success 200 {object} dto.RecipeResponse
// @Failure 404 {object} apierror.APIError
// @Router /recipes/{id} [get]
func (h *RecipesHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Invalid recipe id"))
		return
	}

	ctx := c.Request.Context()
	cacheKey := "recipe:" + id.String()

	// Best-effort read-through cache on the detail lookup.
	if h.rdb != nil {
		if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var resp dto.RecipeResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	resp, err := h.svc.Get(ctx, id)
	if err != nil {
		c.Error(err) //nolint:errcheck
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to fetch recipe"))
		return
	}
	if resp == nil {
		c.JSON(http.StatusNotFound, apierror.New("Recipe not found"))
		return
	}

	if h.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = h.rdb.Set(context.Background(), cacheKey, b, h.cacheTTL).Err()
		}
	}
	c.JSON(http.StatusOK, resp)
}
