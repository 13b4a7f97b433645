package service

import (
	"context"

	"github.com/widal001/meal-planner-api/internal/model"
	"github.com/widal001/meal-planner-api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FoodService handles lookup and lazy creation of foods.
type FoodService interface {
	GetByName(ctx context.Context, name string) (*model.Food, error)
	// GetOrCreate returns the food with the given exact name, creating it
	// (empty kind) inside the caller's transaction when it does not exist.
	// With tx == nil the new food is committed immediately.
	GetOrCreate(ctx context.Context, tx *gorm.DB, name string) (*model.Food, error)
}

type foodService struct {
	repo repository.FoodRepository
}

func NewFoodService(repo repository.FoodRepository) FoodService {
	return &foodService{repo: repo}
}

func (s *foodService) GetByName(ctx context.Context, name string) (*model.Food, error) {
	return s.repo.FindByName(ctx, nil, name)
}

func (s *foodService) GetOrCreate(ctx context.Context, tx *gorm.DB, name string) (*model.Food, error) {
	existing, err := s.repo.FindByName(ctx, tx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	food := &model.Food{ID: uuid.New(), Name: name}
	if err := s.repo.Create(ctx, tx, food); err != nil {
		return nil, err
	}
	return food, nil
}
