package services

import (
	"context"
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"github.com/sbilibin2017/insighteats/internal/logger"
	"github.com/sbilibin2017/insighteats/internal/models"
	"github.com/sbilibin2017/insighteats/internal/nutrition"
)

var (
	logsCSVHeader           = []string{"Date", "Food Name", "Quantity (g)", "Calories", "Protein (g)", "Carbs (g)", "Fat (g)", "Fiber (g)"}
	weightLogsCSVHeader     = []string{"Date", "Weight (kg)"}
	dailySummariesCSVHeader = []string{"Date", "Calories", "Protein (g)", "Carbs (g)", "Fat (g)", "Fiber (g)"}
)

// ExportService assembles a user's diary for download.
type ExportService struct {
	users   UserReader
	foods   FoodStore
	logs    LogStore
	weights WeightLogStore
}

// NewExportService creates a new ExportService.
func NewExportService(users UserReader, foods FoodStore, logs LogStore, weights WeightLogStore) *ExportService {
	return &ExportService{users: users, foods: foods, logs: logs, weights: weights}
}

// Export returns every diary entry, weight observation and per-day total of
// the caller, oldest first. Entries whose food no longer exists are left out.
func (s *ExportService) Export(ctx context.Context, identityKey string) (*models.ExportData, error) {
	user, err := resolveUser(ctx, s.users, identityKey)
	if err != nil {
		return nil, err
	}

	logs, err := s.logs.ListByUser(ctx, user.UserID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list logs", "user_id", user.UserID, "error", err)
		return nil, err
	}

	entries, err := joinFoods(ctx, s.foods, logs)
	if err != nil {
		return nil, err
	}

	weights, err := s.weights.ListByUser(ctx, user.UserID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list weight logs", "user_id", user.UserID, "error", err)
		return nil, err
	}

	data := &models.ExportData{
		Logs:           make([]models.ExportLog, 0, len(entries)),
		WeightLogs:     make([]models.ExportWeightLog, 0, len(weights)),
		DailySummaries: []models.ExportDailySummary{},
	}

	byDate := make(map[string][]models.LogWithFood)
	for _, e := range entries {
		if e.Food == nil {
			continue
		}
		c := nutrition.Contribution(*e.Food, e.QuantityGrams)
		data.Logs = append(data.Logs, models.ExportLog{
			Date:          e.Date,
			FoodName:      e.Food.Name,
			QuantityGrams: e.QuantityGrams,
			Calories:      c.Calories,
			Protein:       c.Protein,
			Carbs:         c.Carbs,
			Fat:           c.Fat,
			Fiber:         c.Fiber,
		})
		byDate[e.Date] = append(byDate[e.Date], e)
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	for _, d := range dates {
		data.DailySummaries = append(data.DailySummaries, models.ExportDailySummary{
			Date:         d,
			MacroSummary: nutrition.Sum(byDate[d]),
		})
	}

	for _, w := range weights {
		data.WeightLogs = append(data.WeightLogs, models.ExportWeightLog{Date: w.Date, WeightKg: w.WeightKg})
	}

	return data, nil
}

// WriteCSV writes one view of data as CSV.
func WriteCSV(w io.Writer, data *models.ExportData, kind models.ExportKind) error {
	var rows [][]string

	switch kind {
	case models.ExportLogs:
		rows = append(rows, logsCSVHeader)
		for _, l := range data.Logs {
			rows = append(rows, []string{
				l.Date,
				l.FoodName,
				formatPlain(l.QuantityGrams),
				formatFixed(l.Calories, 1),
				formatFixed(l.Protein, 1),
				formatFixed(l.Carbs, 1),
				formatFixed(l.Fat, 1),
				formatFixed(l.Fiber, 1),
			})
		}
	case models.ExportWeightLogs:
		rows = append(rows, weightLogsCSVHeader)
		for _, wl := range data.WeightLogs {
			rows = append(rows, []string{wl.Date, formatPlain(wl.WeightKg)})
		}
	case models.ExportDailySummaries:
		rows = append(rows, dailySummariesCSVHeader)
		for _, s := range data.DailySummaries {
			rows = append(rows, []string{
				s.Date,
				formatFixed(s.Calories, 0),
				formatFixed(s.Protein, 1),
				formatFixed(s.Carbs, 1),
				formatFixed(s.Fat, 1),
				formatFixed(s.Fiber, 1),
			})
		}
	default:
		return &ValidationError{Field: "type", Message: "must be logs, weightLogs or dailySummaries"}
	}

	writer := csv.NewWriter(w)
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	return writer.Error()
}

func formatFixed(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

func formatPlain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
