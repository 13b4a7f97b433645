package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Food is a dimensional record referenced by recipe ingredients.
// Name is the dedup key for get-or-create but carries NO unique index:
// two concurrent requests creating ingredients for the same new name can
// both insert a row. Accepted and documented rather than silently fixed.
type Food struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"index;not null" json:"name"`
	Kind      string    `gorm:"not null;default:''" json:"kind"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Deleting a Food removes every ingredient that references it, in
	// every recipe — a cross-recipe cascade.
	Ingredients []Ingredient `gorm:"foreignKey:FoodID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Food) TableName() string { return "foods" }

func (f *Food) BeforeCreate(*gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
