package models

// Event operations published to the event stream.
const (
	EventFoodLogged   = "food_logged"
	EventLogDeleted   = "log_deleted"
	EventWeightLogged = "weight_logged"
	EventGoalsUpdated = "goals_updated"
)

// NutritionEvent represents a diary mutation published after it has been applied.
type NutritionEvent struct {
	EventID   string  `json:"event_id"`  // EventID is a unique identifier for the event.
	Timestamp int64   `json:"timestamp"` // Timestamp is the Unix timestamp (in seconds) when the mutation happened.
	UserID    string  `json:"user_id"`   // UserID is the owner of the mutated record.
	Operation string  `json:"operation"` // Operation is one of the Event* constants.
	Date      string  `json:"date"`      // Date is the calendar day the mutation belongs to.
	Value     float64 `json:"value"`     // Value is grams logged, kilograms weighed or calories targeted.
}
