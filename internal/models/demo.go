package models

// DemoResult reports what demo generation inserted.
type DemoResult struct {
	FoodsAdded      int `json:"foods_added"`
	WeightLogsAdded int `json:"weight_logs_added"`
	DailyLogsAdded  int `json:"daily_logs_added"`
}

// DemoClearResult reports what demo clearing removed.
type DemoClearResult struct {
	LogsRemoved       int64 `json:"logs_removed"`
	WeightLogsRemoved int64 `json:"weight_logs_removed"`
	GoalsRemoved      int64 `json:"goals_removed"`
}

// DemoStatus reports how much data the caller currently has.
type DemoStatus struct {
	HasDemoData    bool `json:"has_demo_data"`
	LogCount       int  `json:"log_count"`
	WeightLogCount int  `json:"weight_log_count"`
	FoodCount      int  `json:"food_count"`
}
