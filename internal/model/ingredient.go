package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Ingredient joins exactly one Food to exactly one Recipe. Both foreign keys
// are NOT NULL, so an ingredient cannot outlive either parent; inserts with a
// missing parent fail at the constraint.
type Ingredient struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	FoodID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"food_id"`
	RecipeID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"recipe_id"`
	Amount    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Unit      string          `gorm:"not null" json:"unit"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	Food   *Food   `gorm:"foreignKey:FoodID" json:"food,omitempty"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"-"`
}

func (Ingredient) TableName() string { return "ingredients" }

func (i *Ingredient) BeforeCreate(*gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
