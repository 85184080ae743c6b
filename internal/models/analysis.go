package models

import "github.com/google/uuid"

// AnalyzedFood is one food recognized on a meal photo, with per-100g estimates.
type AnalyzedFood struct {
	Name                     string     `json:"name"`
	Description              string     `json:"description"`
	EstimatedCaloriesPer100g float64    `json:"estimated_calories_per_100g"`
	EstimatedProteinPer100g  float64    `json:"estimated_protein_per_100g"`
	EstimatedCarbsPer100g    float64    `json:"estimated_carbs_per_100g"`
	EstimatedFatPer100g      float64    `json:"estimated_fat_per_100g"`
	Confidence               int        `json:"confidence"`        // 0-100
	FoodID                   *uuid.UUID `json:"food_id,omitempty"` // set when imported into the catalog
}

// Candidate converts the estimate into a catalog candidate.
func (f AnalyzedFood) Candidate() FoodCandidate {
	return FoodCandidate{
		Name:            f.Name,
		CaloriesPer100g: f.EstimatedCaloriesPer100g,
		ProteinPer100g:  f.EstimatedProteinPer100g,
		CarbsPer100g:    f.EstimatedCarbsPer100g,
		FatPer100g:      f.EstimatedFatPer100g,
	}
}

// AnalysisResult is the outcome of a meal photo analysis.
type AnalysisResult struct {
	Foods    []AnalyzedFood `json:"foods"`
	Summary  string         `json:"summary"`
	Provider string         `json:"provider"`
	PhotoKey string         `json:"photo_key,omitempty"`
}
