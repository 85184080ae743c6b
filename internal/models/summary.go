package models

// MacroSummary holds nutrient totals for a day.
type MacroSummary struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

// Add accumulates another summary.
func (s MacroSummary) Add(other MacroSummary) MacroSummary {
	return MacroSummary{
		Calories: s.Calories + other.Calories,
		Protein:  s.Protein + other.Protein,
		Carbs:    s.Carbs + other.Carbs,
		Fat:      s.Fat + other.Fat,
		Fiber:    s.Fiber + other.Fiber,
	}
}
