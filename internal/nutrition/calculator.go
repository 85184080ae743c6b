// Package nutrition holds the pure nutrition math: TDEE and macro targets,
// input validation and per-day macro aggregation.
package nutrition

import (
	"math"

	"github.com/sbilibin2017/insighteats/internal/models"
)

// Macro split of the calorie target and energy density of each macro.
const (
	proteinShare = 0.30
	fatShare     = 0.25

	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

// activityMultipliers maps activity levels to their TDEE multiplier.
var activityMultipliers = map[models.ActivityLevel]float64{
	models.ActivitySedentary:  1.2,
	models.ActivityLight:      1.375,
	models.ActivityModerate:   1.55,
	models.ActivityActive:     1.725,
	models.ActivityVeryActive: 1.9,
}

// BiometricInput is everything the calculator needs.
type BiometricInput struct {
	Age           int
	WeightKg      float64
	HeightCm      float64
	Sex           models.Sex
	ActivityLevel models.ActivityLevel
}

// Targets are the calculator outputs.
type Targets struct {
	TDEE               float64 `json:"tdee"`
	CaloriesTarget     int     `json:"calories_target"`
	ProteinTargetGrams int     `json:"protein_target_grams"`
	CarbsTargetGrams   int     `json:"carbs_target_grams"`
	FatTargetGrams     int     `json:"fat_target_grams"`
}

// ActivityMultiplier returns the multiplier for level; unknown levels fall back to sedentary.
func ActivityMultiplier(level models.ActivityLevel) float64 {
	if m, ok := activityMultipliers[level]; ok {
		return m
	}
	return activityMultipliers[models.ActivitySedentary]
}

// BasalMetabolicRate computes BMR with the Mifflin-St Jeor equation.
func BasalMetabolicRate(in BiometricInput) float64 {
	bmr := 10*in.WeightKg + 6.25*in.HeightCm - 5*float64(in.Age)
	if in.Sex == models.SexMale {
		return bmr + 5
	}
	return bmr - 161
}

// Calculate derives TDEE and daily targets. Macros are rounded independently,
// so their calories may differ from CaloriesTarget by a few kcal.
func Calculate(in BiometricInput) Targets {
	tdee := BasalMetabolicRate(in) * ActivityMultiplier(in.ActivityLevel)
	target := math.Round(tdee)

	proteinCalories := target * proteinShare
	fatCalories := target * fatShare
	carbsCalories := target - proteinCalories - fatCalories

	return Targets{
		TDEE:               tdee,
		CaloriesTarget:     int(target),
		ProteinTargetGrams: int(math.Round(proteinCalories / kcalPerGramProtein)),
		CarbsTargetGrams:   int(math.Round(carbsCalories / kcalPerGramCarbs)),
		FatTargetGrams:     int(math.Round(fatCalories / kcalPerGramFat)),
	}
}

// InputFromGoals rebuilds calculator input from stored goals with a new weight.
func InputFromGoals(g *models.GoalsDB, weightKg float64) BiometricInput {
	return BiometricInput{
		Age:           g.Age,
		WeightKg:      weightKg,
		HeightCm:      g.HeightCm,
		Sex:           g.Sex,
		ActivityLevel: g.ActivityLevel,
	}
}

// InputFromProfile converts a profile submission into calculator input.
func InputFromProfile(p models.ProfileInput) BiometricInput {
	return BiometricInput{
		Age:           p.Age,
		WeightKg:      p.WeightKg,
		HeightCm:      p.HeightCm,
		Sex:           p.Sex,
		ActivityLevel: p.ActivityLevel,
	}
}
