package models

import (
	"time"

	"github.com/google/uuid"
)

// LogDB represents one diary entry: a quantity of a food eaten on a date.
type LogDB struct {
	LogID         uuid.UUID `json:"id" db:"log_id"`
	UserID        uuid.UUID `json:"user_id" db:"user_id"`
	FoodID        uuid.UUID `json:"food_id" db:"food_id"`
	QuantityGrams float64   `json:"quantity_grams" db:"quantity_grams"`
	Date          string    `json:"date" db:"date"`           // YYYY-MM-DD
	LoggedAt      time.Time `json:"logged_at" db:"logged_at"` // instant of logging
}

// LogWithFood is a diary entry joined with its food; Food is nil when the food is gone.
type LogWithFood struct {
	LogDB
	Food *FoodDB `json:"food"`
}
