package models

import (
	"time"

	"github.com/google/uuid"
)

// Sex selects the sex constant of the basal metabolic rate formula.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// ActivityLevel selects the TDEE multiplier.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// GoalsDB represents the stored biometric inputs and computed targets of a user.
type GoalsDB struct {
	GoalsID            uuid.UUID     `json:"id" db:"goals_id"`
	UserID             uuid.UUID     `json:"user_id" db:"user_id"`
	Age                int           `json:"age" db:"age"`
	WeightKg           float64       `json:"weight" db:"weight_kg"`
	HeightCm           float64       `json:"height" db:"height_cm"`
	Sex                Sex           `json:"sex" db:"sex"`
	ActivityLevel      ActivityLevel `json:"activity_level" db:"activity_level"`
	TDEE               float64       `json:"tdee" db:"tdee"`
	CaloriesTarget     int           `json:"calories_target" db:"calories_target"`
	ProteinTargetGrams int           `json:"protein_target_grams" db:"protein_target_grams"`
	CarbsTargetGrams   int           `json:"carbs_target_grams" db:"carbs_target_grams"`
	FatTargetGrams     int           `json:"fat_target_grams" db:"fat_target_grams"`
	UpdatedAt          time.Time     `json:"updated_at" db:"updated_at"`
}

// ProfileInput is a full biometric profile submission.
type ProfileInput struct {
	Age           int           `json:"age"`
	WeightKg      float64       `json:"weight"`
	HeightCm      float64       `json:"height"`
	Sex           Sex           `json:"sex"`
	ActivityLevel ActivityLevel `json:"activity_level"`
}
