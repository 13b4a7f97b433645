package repository

import (
	"context"

	"github.com/widal001/meal-planner-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FoodRepository defines persistence operations for Food.
type FoodRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*model.Food, error)
	FindByName(ctx context.Context, tx *gorm.DB, name string) (*model.Food, error)
	Create(ctx context.Context, tx *gorm.DB, f *model.Food) error
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DB() *gorm.DB
}

type foodRepository struct {
	CRUD[model.Food]
}

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{CRUD: NewCRUD[model.Food](db)}
}

// FindByName does an exact match — no case folding or trimming. It reads
// through the caller's transaction so foods staged earlier in the same
// request are found and not duplicated.
func (r *foodRepository) FindByName(ctx context.Context, tx *gorm.DB, name string) (*model.Food, error) {
	return r.First(ctx, tx, "name = ?", name)
}
