package models

import "github.com/google/uuid"

// FoodDB represents a catalog entry; nutrients are per 100 g.
type FoodDB struct {
	FoodID          uuid.UUID `json:"id" db:"food_id"`
	Name            string    `json:"name" db:"name"`
	CaloriesPer100g float64   `json:"calories_per_100g" db:"calories_per_100g"`
	ProteinPer100g  float64   `json:"protein_per_100g" db:"protein_per_100g"`
	CarbsPer100g    float64   `json:"carbs_per_100g" db:"carbs_per_100g"`
	FatPer100g      float64   `json:"fat_per_100g" db:"fat_per_100g"`
	FiberPer100g    *float64  `json:"fiber_per_100g,omitempty" db:"fiber_per_100g"`
}

// FoodCandidate is a food-shaped value that may be promoted into the catalog.
type FoodCandidate struct {
	Name            string   `json:"name"`
	CaloriesPer100g float64  `json:"calories_per_100g"`
	ProteinPer100g  float64  `json:"protein_per_100g"`
	CarbsPer100g    float64  `json:"carbs_per_100g"`
	FatPer100g      float64  `json:"fat_per_100g"`
	FiberPer100g    *float64 `json:"fiber_per_100g,omitempty"`
}

// FoodSource identifies where an external candidate came from.
type FoodSource string

const (
	SourceUSDA          FoodSource = "USDA"
	SourceOpenFoodFacts FoodSource = "Open Food Facts"
)

// ExternalFoodCandidate is a normalized search hit from an external food database.
type ExternalFoodCandidate struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	CaloriesPer100g float64    `json:"calories_per_100g"`
	ProteinPer100g  float64    `json:"protein_per_100g"`
	CarbsPer100g    float64    `json:"carbs_per_100g"`
	FatPer100g      float64    `json:"fat_per_100g"`
	FiberPer100g    *float64   `json:"fiber_per_100g,omitempty"`
	Source          FoodSource `json:"source"`
}

// Candidate converts the search hit into a catalog candidate.
func (c ExternalFoodCandidate) Candidate() FoodCandidate {
	return FoodCandidate{
		Name:            c.Name,
		CaloriesPer100g: c.CaloriesPer100g,
		ProteinPer100g:  c.ProteinPer100g,
		CarbsPer100g:    c.CarbsPer100g,
		FatPer100g:      c.FatPer100g,
		FiberPer100g:    c.FiberPer100g,
	}
}
