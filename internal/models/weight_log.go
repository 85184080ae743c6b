package models

import "github.com/google/uuid"

// WeightLogDB represents one body weight observation; at most one per user and date.
type WeightLogDB struct {
	WeightLogID uuid.UUID `json:"id" db:"weight_log_id"`
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	WeightKg    float64   `json:"weight" db:"weight_kg"`
	Date        string    `json:"date" db:"date"`
}
