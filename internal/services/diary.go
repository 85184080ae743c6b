package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/insighteats/internal/logger"
	"github.com/sbilibin2017/insighteats/internal/models"
	"github.com/sbilibin2017/insighteats/internal/nutrition"
)

// DiaryService manages diary entries and per-day nutrient summaries.
type DiaryService struct {
	users  UserReader
	foods  FoodStore
	logs   LogStore
	events EventPublisher
	cal    Calendar
}

// NewDiaryService creates a new DiaryService.
func NewDiaryService(users UserReader, foods FoodStore, logs LogStore, events EventPublisher, cal Calendar) *DiaryService {
	return &DiaryService{users: users, foods: foods, logs: logs, events: events, cal: cal}
}

// AddLog records quantityGrams of a catalog food eaten today.
func (s *DiaryService) AddLog(ctx context.Context, identityKey string, foodID uuid.UUID, quantityGrams float64) (*models.LogDB, error) {
	if err := requireIdentity(identityKey); err != nil {
		return nil, err
	}
	if err := nutrition.ValidateQuantity(quantityGrams); err != nil {
		return nil, err
	}

	user, err := resolveUser(ctx, s.users, identityKey)
	if err != nil {
		return nil, err
	}

	food, err := s.foods.GetByID(ctx, foodID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get food", "food_id", foodID, "error", err)
		return nil, err
	}
	if food == nil {
		return nil, ErrFoodNotFound
	}

	log := &models.LogDB{
		LogID:         uuid.New(),
		UserID:        user.UserID,
		FoodID:        food.FoodID,
		QuantityGrams: quantityGrams,
		Date:          s.cal.Today(),
		LoggedAt:      s.cal.Now(),
	}
	if err := s.logs.Create(ctx, log); err != nil {
		logger.FromContext(ctx).Errorw("failed to create log", "user_id", user.UserID, "food_id", foodID, "error", err)
		return nil, err
	}

	publish(ctx, s.events, newEvent(s.cal, user.UserID, models.EventFoodLogged, log.Date, quantityGrams))

	return log, nil
}

// DeleteLog removes one of the caller's diary entries.
func (s *DiaryService) DeleteLog(ctx context.Context, identityKey string, logID uuid.UUID) error {
	user, err := resolveUser(ctx, s.users, identityKey)
	if err != nil {
		return err
	}

	log, err := s.logs.GetByID(ctx, logID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get log", "log_id", logID, "error", err)
		return err
	}
	if log == nil {
		return ErrLogNotFound
	}
	if log.UserID != user.UserID {
		logger.FromContext(ctx).Warnw("refused to delete foreign log", "log_id", logID, "user_id", user.UserID)
		return ErrNotOwner
	}

	if err := s.logs.Delete(ctx, logID); err != nil {
		logger.FromContext(ctx).Errorw("failed to delete log", "log_id", logID, "error", err)
		return err
	}

	publish(ctx, s.events, newEvent(s.cal, user.UserID, models.EventLogDeleted, log.Date, log.QuantityGrams))

	return nil
}

// ListToday returns today's entries, newest first, each joined with its food.
// Food is nil for entries whose food no longer exists.
func (s *DiaryService) ListToday(ctx context.Context, identityKey string) ([]models.LogWithFood, error) {
	user, err := resolveUser(ctx, s.users, identityKey)
	if err != nil {
		return nil, err
	}
	return s.entriesForDate(ctx, user, s.cal.Today())
}

// SummaryToday totals today's nutrients.
func (s *DiaryService) SummaryToday(ctx context.Context, identityKey string) (models.MacroSummary, error) {
	return s.SummaryForDate(ctx, identityKey, s.cal.Today())
}

// SummaryForDate totals the nutrients logged on date (YYYY-MM-DD). Entries
// whose food cannot be resolved are skipped.
func (s *DiaryService) SummaryForDate(ctx context.Context, identityKey, date string) (models.MacroSummary, error) {
	if err := requireIdentity(identityKey); err != nil {
		return models.MacroSummary{}, err
	}
	if err := nutrition.ValidateDate(date); err != nil {
		return models.MacroSummary{}, err
	}

	user, err := resolveUser(ctx, s.users, identityKey)
	if err != nil {
		return models.MacroSummary{}, err
	}

	entries, err := s.entriesForDate(ctx, user, date)
	if err != nil {
		return models.MacroSummary{}, err
	}
	return nutrition.Sum(entries), nil
}

func (s *DiaryService) entriesForDate(ctx context.Context, user *models.UserDB, date string) ([]models.LogWithFood, error) {
	logs, err := s.logs.ListByUserAndDate(ctx, user.UserID, date)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list logs", "user_id", user.UserID, "date", date, "error", err)
		return nil, err
	}
	return joinFoods(ctx, s.foods, logs)
}

// joinFoods resolves the foods of logs in one batched read.
func joinFoods(ctx context.Context, foods FoodStore, logs []models.LogDB) ([]models.LogWithFood, error) {
	entries := make([]models.LogWithFood, 0, len(logs))
	if len(logs) == 0 {
		return entries, nil
	}

	seen := make(map[uuid.UUID]struct{}, len(logs))
	ids := make([]uuid.UUID, 0, len(logs))
	for _, l := range logs {
		if _, ok := seen[l.FoodID]; !ok {
			seen[l.FoodID] = struct{}{}
			ids = append(ids, l.FoodID)
		}
	}

	byID, err := foods.GetByIDs(ctx, ids)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to resolve foods", "count", len(ids), "error", err)
		return nil, err
	}

	for _, l := range logs {
		entry := models.LogWithFood{LogDB: l}
		if food, ok := byID[l.FoodID]; ok {
			entry.Food = &food
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
