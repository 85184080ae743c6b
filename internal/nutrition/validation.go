package nutrition

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/sbilibin2017/insighteats/internal/models"
)

// Accepted input ranges.
const (
	MinAge           = 10
	MaxAge           = 100
	MaxWeightKg      = 500
	MaxHeightCm      = 260
	MaxQuantityGrams = 10000

	// DateLayout is the calendar-day format used for log and weight dates.
	DateLayout = "2006-01-02"
)

// ValidationError reports the first offending input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

func finitePositive(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// ValidateBiometrics checks a full profile submission.
func ValidateBiometrics(in BiometricInput) error {
	if in.Age < MinAge || in.Age > MaxAge {
		return invalid("age", "must be between %d and %d", MinAge, MaxAge)
	}
	if err := ValidateWeight(in.WeightKg); err != nil {
		return err
	}
	if !finitePositive(in.HeightCm) || in.HeightCm > MaxHeightCm {
		return invalid("height", "must be greater than 0 and at most %d cm", MaxHeightCm)
	}
	if in.Sex != models.SexMale && in.Sex != models.SexFemale {
		return invalid("sex", "must be male or female")
	}
	if _, ok := activityMultipliers[in.ActivityLevel]; !ok {
		return invalid("activity_level", "unknown activity level %q", in.ActivityLevel)
	}
	return nil
}

// ValidateWeight checks a body weight in kilograms.
func ValidateWeight(weightKg float64) error {
	if !finitePositive(weightKg) || weightKg > MaxWeightKg {
		return invalid("weight", "must be greater than 0 and at most %d kg", MaxWeightKg)
	}
	return nil
}

// ValidateQuantity checks a logged food quantity in grams.
func ValidateQuantity(grams float64) error {
	if !finitePositive(grams) || grams > MaxQuantityGrams {
		return invalid("quantity", "must be greater than 0 and at most %d g", MaxQuantityGrams)
	}
	return nil
}

// ValidateCandidate checks a food candidate before it enters the catalog.
func ValidateCandidate(c models.FoodCandidate) error {
	if strings.TrimSpace(c.Name) == "" {
		return invalid("name", "must not be empty")
	}
	values := []struct {
		field string
		v     float64
	}{
		{"calories_per_100g", c.CaloriesPer100g},
		{"protein_per_100g", c.ProteinPer100g},
		{"carbs_per_100g", c.CarbsPer100g},
		{"fat_per_100g", c.FatPer100g},
	}
	if c.FiberPer100g != nil {
		values = append(values, struct {
			field string
			v     float64
		}{"fiber_per_100g", *c.FiberPer100g})
	}
	for _, v := range values {
		if math.IsNaN(v.v) || math.IsInf(v.v, 0) || v.v < 0 {
			return invalid(v.field, "must be a non-negative number")
		}
	}
	return nil
}

// ValidateDate checks a YYYY-MM-DD calendar date.
func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return invalid("date", "must be formatted as YYYY-MM-DD")
	}
	return nil
}

// DateKey formats t as a calendar date in loc.
func DateKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(DateLayout)
}
