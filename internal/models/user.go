package models

import (
	"time"

	"github.com/google/uuid"
)

// GoalType is the user's overall direction.
type GoalType string

const (
	GoalWeightLoss GoalType = "weight_loss"
	GoalMuscleGain GoalType = "muscle_gain"
)

// Valid reports whether the goal type is known.
func (g GoalType) Valid() bool {
	return g == GoalWeightLoss || g == GoalMuscleGain
}

// UserDB represents a user record in the database
type UserDB struct {
	UserID          uuid.UUID `json:"id" db:"user_id"`                          // Primary key
	IdentityKey     string    `json:"identity_key" db:"identity_key"`           // Opaque key issued by the identity provider
	Goal            GoalType  `json:"goal" db:"goal"`                           // weight_loss or muscle_gain
	CurrentWeightKg float64   `json:"current_weight_kg" db:"current_weight_kg"` // Latest known body weight
	HeightCm        float64   `json:"height_cm" db:"height_cm"`                 // Latest known height
	CreatedAt       time.Time `json:"created_at" db:"created_at"`               // Creation timestamp
}

// UserDefaults are applied when a user is provisioned for the first time.
type UserDefaults struct {
	Goal            GoalType
	CurrentWeightKg float64
	HeightCm        float64
}

// DefaultUserDefaults returns the provisioning defaults.
func DefaultUserDefaults() UserDefaults {
	return UserDefaults{
		Goal:            GoalWeightLoss,
		CurrentWeightKg: 70,
		HeightCm:        170,
	}
}
