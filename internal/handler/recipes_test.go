package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/widal001/meal-planner-api/internal/dto"
	"github.com/widal001/meal-planner-api/internal/handler"
	"github.com/widal001/meal-planner-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRecipeService returns canned responses so the handler's status-code
// mapping can be tested without a database.
type fakeRecipeService struct {
	createErr error
	known     map[uuid.UUID]*dto.RecipeResponse
}

func (f *fakeRecipeService) Create(_ context.Context, req dto.CreateRecipeRequest) (*dto.RecipeResponse, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	resp := &dto.RecipeResponse{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
	}
	for _, ing := range req.Ingredients {
		resp.Ingredients = append(resp.Ingredients, dto.IngredientResponse{
			ID:     uuid.New(),
			Food:   ing.Food,
			FoodID: uuid.New(),
			Amount: ing.Amount,
			Unit:   ing.Unit,
		})
	}
	return resp, nil
}

func (f *fakeRecipeService) Get(_ context.Context, id uuid.UUID) (*dto.RecipeResponse, error) {
	return f.known[id], nil
}

func (f *fakeRecipeService) List(_ context.Context, filter dto.RecipeFilter) (*dto.RecipeListResponse, error) {
	items := make([]dto.RecipeResponse, 0, len(f.known))
	for _, r := range f.known {
		items = append(items, *r)
	}
	return &dto.RecipeListResponse{
		Items: items,
		Page:  filter.Page,
		Size:  filter.Size,
		Total: int64(len(items)),
	}, nil
}

func (f *fakeRecipeService) Update(_ context.Context, id uuid.UUID, _ dto.UpdateRecipeRequest) (*dto.RecipeResponse, error) {
	return f.known[id], nil
}

func (f *fakeRecipeService) Delete(_ context.Context, _ uuid.UUID) error { return nil }

var _ service.RecipeService = (*fakeRecipeService)(nil)

func newTestRouter(svc service.RecipeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewRecipesHandler(svc, nil, 0)
	recipes := r.Group("/recipes")
	recipes.GET("/", h.List)
	recipes.POST("/", h.Create)
	recipes.GET("/:id", h.Get)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const validPayload = `{
	"name": "Test",
	"description": "d",
	"ingredients": [
		{"food": "Onion", "amount": 2, "unit": "each"},
		{"food": "Salt", "amount": 0.5, "unit": "tsp"}
	]
}`

func TestCreateRecipe_Returns201(t *testing.T) {
	r := newTestRouter(&fakeRecipeService{})

	w := doJSON(t, r, http.MethodPost, "/recipes/", validPayload)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RecipeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Test", resp.Name)
	assert.Len(t, resp.Ingredients, 2)
}

func TestCreateRecipe_MissingFieldsReturns422(t *testing.T) {
	r := newTestRouter(&fakeRecipeService{})

	w := doJSON(t, r, http.MethodPost, "/recipes/", `{"name": "X"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "detail")
	assert.Contains(t, body, "fields")
}

func TestCreateRecipe_EmptyIngredientsReturns422(t *testing.T) {
	r := newTestRouter(&fakeRecipeService{})

	w := doJSON(t, r, http.MethodPost, "/recipes/",
		`{"name": "X", "description": "d", "ingredients": []}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreateRecipe_NonPositiveAmountReturns422(t *testing.T) {
	r := newTestRouter(&fakeRecipeService{})

	w := doJSON(t, r, http.MethodPost, "/recipes/",
		`{"name": "X", "description": "d", "ingredients": [{"food": "Onion", "amount": 0, "unit": "each"}]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreateRecipe_MalformedJSONReturns400(t *testing.T) {
	r := newTestRouter(&fakeRecipeService{})

	w := doJSON(t, r, http.MethodPost, "/recipes/", `{"name": `)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRecipe_ServiceErrorReturns500(t *testing.T) {
	r := newTestRouter(&fakeRecipeService{createErr: assert.AnError})

	w := doJSON(t, r, http.MethodPost, "/recipes/", validPayload)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetRecipe_UnknownIDReturns404(t *testing.T) {
	r := newTestRouter(&fakeRecipeService{known: map[uuid.UUID]*dto.RecipeResponse{}})

	w := doJSON(t, r, http.MethodGet, "/recipes/"+uuid.NewString(), "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail": "Recipe not found"}`, w.Body.String())
}

func TestGetRecipe_MalformedIDReturns400(t *testing.T) {
	r := newTestRouter(&fakeRecipeService{})

	w := doJSON(t, r, http.MethodGet, "/recipes/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRecipe_KnownIDReturns200(t *testing.T) {
	id := uuid.New()
	r := newTestRouter(&fakeRecipeService{known: map[uuid.UUID]*dto.RecipeResponse{
		id: {ID: id, Name: "Stew", Description: "hearty"},
	}})

	w := doJSON(t, r, http.MethodGet, "/recipes/"+id.String(), "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.RecipeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Stew", resp.Name)
}

func TestListRecipes_Returns200WithDefaults(t *testing.T) {
	r := newTestRouter(&fakeRecipeService{})

	w := doJSON(t, r, http.MethodGet, "/recipes/", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.RecipeListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 20, resp.Size)
}

func TestListRecipes_RejectsOversizedPage(t *testing.T) {
	r := newTestRouter(&fakeRecipeService{})

	w := doJSON(t, r, http.MethodGet, "/recipes/?size=500", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
