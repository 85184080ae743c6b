package nutrition

import "github.com/sbilibin2017/insighteats/internal/models"

// Contribution returns the nutrients of quantityGrams of food. Missing fiber counts as zero.
func Contribution(food models.FoodDB, quantityGrams float64) models.MacroSummary {
	factor := quantityGrams / 100

	var fiber float64
	if food.FiberPer100g != nil {
		fiber = *food.FiberPer100g * factor
	}

	return models.MacroSummary{
		Calories: food.CaloriesPer100g * factor,
		Protein:  food.ProteinPer100g * factor,
		Carbs:    food.CarbsPer100g * factor,
		Fat:      food.FatPer100g * factor,
		Fiber:    fiber,
	}
}

// Sum totals the entries. Entries without a resolved food are skipped.
func Sum(entries []models.LogWithFood) models.MacroSummary {
	var total models.MacroSummary
	for _, e := range entries {
		if e.Food == nil {
			continue
		}
		total = total.Add(Contribution(*e.Food, e.QuantityGrams))
	}
	return total
}
