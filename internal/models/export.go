package models

// ExportKind selects one CSV view of the export.
type ExportKind string

const (
	ExportLogs           ExportKind = "logs"
	ExportWeightLogs     ExportKind = "weightLogs"
	ExportDailySummaries ExportKind = "dailySummaries"
)

// ExportLog is a diary entry flattened for export.
type ExportLog struct {
	Date          string  `json:"date"`
	FoodName      string  `json:"food_name"`
	QuantityGrams float64 `json:"quantity_grams"`
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbs         float64 `json:"carbs"`
	Fat           float64 `json:"fat"`
	Fiber         float64 `json:"fiber"`
}

// ExportWeightLog is a weight observation flattened for export.
type ExportWeightLog struct {
	Date     string  `json:"date"`
	WeightKg float64 `json:"weight"`
}

// ExportDailySummary is a per-day nutrient total.
type ExportDailySummary struct {
	Date string `json:"date"`
	MacroSummary
}

// ExportData is the complete export of a user's diary.
type ExportData struct {
	Logs           []ExportLog          `json:"logs"`
	WeightLogs     []ExportWeightLog    `json:"weightLogs"`
	DailySummaries []ExportDailySummary `json:"dailySummaries"`
}
