package services

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/insighteats/internal/logger"
	"github.com/sbilibin2017/insighteats/internal/models"
	"github.com/sbilibin2017/insighteats/internal/nutrition"
)

func fiberPtr(v float64) *float64 { return &v }

var demoFoods = []models.FoodCandidate{
	{Name: "Chicken Breast", CaloriesPer100g: 165, ProteinPer100g: 31, CarbsPer100g: 0, FatPer100g: 3.6, FiberPer100g: fiberPtr(0)},
	{Name: "Brown Rice", CaloriesPer100g: 112, ProteinPer100g: 2.6, CarbsPer100g: 23, FatPer100g: 0.9, FiberPer100g: fiberPtr(1.8)},
	{Name: "Broccoli", CaloriesPer100g: 34, ProteinPer100g: 2.8, CarbsPer100g: 7, FatPer100g: 0.4, FiberPer100g: fiberPtr(2.6)},
	{Name: "Salmon", CaloriesPer100g: 208, ProteinPer100g: 20, CarbsPer100g: 0, FatPer100g: 13, FiberPer100g: fiberPtr(0)},
	{Name: "Greek Yogurt", CaloriesPer100g: 59, ProteinPer100g: 10, CarbsPer100g: 3.6, FatPer100g: 0.4, FiberPer100g: fiberPtr(0)},
	{Name: "Oatmeal", CaloriesPer100g: 68, ProteinPer100g: 2.4, CarbsPer100g: 12, FatPer100g: 1.4, FiberPer100g: fiberPtr(1.7)},
	{Name: "Banana", CaloriesPer100g: 89, ProteinPer100g: 1.1, CarbsPer100g: 23, FatPer100g: 0.3, FiberPer100g: fiberPtr(2.6)},
	{Name: "Almonds", CaloriesPer100g: 579, ProteinPer100g: 21, CarbsPer100g: 22, FatPer100g: 50, FiberPer100g: fiberPtr(12.5)},
	{Name: "Eggs", CaloriesPer100g: 155, ProteinPer100g: 13, CarbsPer100g: 1.1, FatPer100g: 11, FiberPer100g: fiberPtr(0)},
	{Name: "Spinach", CaloriesPer100g: 23, ProteinPer100g: 2.9, CarbsPer100g: 3.6, FatPer100g: 0.4, FiberPer100g: fiberPtr(2.2)},
	{Name: "Avocado", CaloriesPer100g: 160, ProteinPer100g: 2, CarbsPer100g: 9, FatPer100g: 15, FiberPer100g: fiberPtr(7)},
	{Name: "Quinoa", CaloriesPer100g: 120, ProteinPer100g: 4.4, CarbsPer100g: 21, FatPer100g: 1.9, FiberPer100g: fiberPtr(2.8)},
	{Name: "Blueberries", CaloriesPer100g: 57, ProteinPer100g: 0.7, CarbsPer100g: 14, FatPer100g: 0.3, FiberPer100g: fiberPtr(2.4)},
	{Name: "Sweet Potato", CaloriesPer100g: 86, ProteinPer100g: 1.6, CarbsPer100g: 20, FatPer100g: 0.1, FiberPer100g: fiberPtr(3)},
	{Name: "Turkey Breast", CaloriesPer100g: 135, ProteinPer100g: 30, CarbsPer100g: 0, FatPer100g: 1, FiberPer100g: fiberPtr(0)},
}

type demoMeal struct {
	food  int // index into demoFoods
	grams float64
}

// demoMealPatterns holds one day of meals each, oldest day first; the last one is today.
var demoMealPatterns = [][]demoMeal{
	{{6, 120}, {5, 200}},
	{{0, 150}, {1, 180}, {2, 100}},
	{{8, 100}, {10, 80}},
	{{3, 120}, {11, 150}, {9, 80}},
	{{4, 200}, {12, 100}},
	{{14, 150}, {13, 200}, {2, 120}},
	{{0, 140}, {1, 160}, {10, 60}, {7, 20}},
}

// Demo weight history shape.
const (
	demoWeightDays     = 30
	demoBaseWeightKg   = 75
	demoDailyTrendKg   = 0.05
	demoJitterRangeKg  = 0.5
	demoFirstMealHour  = 8
	demoMealHourSpread = 12
)

// demoUserDefaults are used when the demo caller has no user yet.
var demoUserDefaults = models.UserDefaults{
	Goal:            models.GoalWeightLoss,
	CurrentWeightKg: 73.5,
	HeightCm:        175,
}

// demoProfile is saved as goals when the demo caller has none.
var demoProfile = models.ProfileInput{
	Age:           30,
	WeightKg:      73.5,
	HeightCm:      175,
	Sex:           models.SexMale,
	ActivityLevel: models.ActivityModerate,
}

// DemoService seeds and clears sample data for the caller.
type DemoService struct {
	users   UserReader
	writer  UserWriter
	foods   FoodStore
	logs    LogStore
	weights WeightLogStore
	goals   GoalsStore
	cal     Calendar

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewDemoService creates a new DemoService; rnd drives weight jitter and meal times.
func NewDemoService(
	users UserReader,
	writer UserWriter,
	foods FoodStore,
	logs LogStore,
	weights WeightLogStore,
	goals GoalsStore,
	cal Calendar,
	rnd *rand.Rand,
) *DemoService {
	return &DemoService{
		users:   users,
		writer:  writer,
		foods:   foods,
		logs:    logs,
		weights: weights,
		goals:   goals,
		cal:     cal,
		rnd:     rnd,
	}
}

// Generate replaces the global catalog with the sample foods and the caller's
// logs and weights with 30 days of weight history and 7 days of meals. Goals
// are created only when the caller has none. The caller is provisioned if needed.
func (s *DemoService) Generate(ctx context.Context, identityKey string) (*models.DemoResult, error) {
	if err := requireIdentity(identityKey); err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)

	user, err := s.writer.Ensure(ctx, identityKey, demoUserDefaults)
	if err != nil {
		log.Errorw("failed to ensure demo user", "identity_key", identityKey, "error", err)
		return nil, err
	}

	if _, err := s.foods.DeleteAll(ctx); err != nil {
		log.Errorw("failed to clear foods", "error", err)
		return nil, err
	}
	if _, err := s.logs.DeleteByUser(ctx, user.UserID); err != nil {
		log.Errorw("failed to clear logs", "user_id", user.UserID, "error", err)
		return nil, err
	}
	if _, err := s.weights.DeleteByUser(ctx, user.UserID); err != nil {
		log.Errorw("failed to clear weight logs", "user_id", user.UserID, "error", err)
		return nil, err
	}

	foodIDs := make([]uuid.UUID, 0, len(demoFoods))
	for _, f := range demoFoods {
		id, err := s.foods.Create(ctx, f)
		if err != nil {
			log.Errorw("failed to create demo food", "name", f.Name, "error", err)
			return nil, err
		}
		foodIDs = append(foodIDs, id)
	}

	s.mu.Lock()
	weights := s.weightHistory()
	meals := s.mealLogs(user.UserID, foodIDs)
	s.mu.Unlock()

	for _, w := range weights {
		if err := s.weights.Upsert(ctx, user.UserID, w.Date, w.WeightKg); err != nil {
			log.Errorw("failed to create demo weight", "user_id", user.UserID, "date", w.Date, "error", err)
			return nil, err
		}
	}

	for i := range meals {
		if err := s.logs.Create(ctx, &meals[i]); err != nil {
			log.Errorw("failed to create demo log", "user_id", user.UserID, "date", meals[i].Date, "error", err)
			return nil, err
		}
	}

	goals, err := s.goals.GetByUserID(ctx, user.UserID)
	if err != nil {
		log.Errorw("failed to get goals", "user_id", user.UserID, "error", err)
		return nil, err
	}
	if goals == nil {
		targets := nutrition.Calculate(nutrition.InputFromProfile(demoProfile))
		if err := s.goals.Upsert(ctx, &models.GoalsDB{
			GoalsID:            uuid.New(),
			UserID:             user.UserID,
			Age:                demoProfile.Age,
			WeightKg:           demoProfile.WeightKg,
			HeightCm:           demoProfile.HeightCm,
			Sex:                demoProfile.Sex,
			ActivityLevel:      demoProfile.ActivityLevel,
			TDEE:               targets.TDEE,
			CaloriesTarget:     targets.CaloriesTarget,
			ProteinTargetGrams: targets.ProteinTargetGrams,
			CarbsTargetGrams:   targets.CarbsTargetGrams,
			FatTargetGrams:     targets.FatTargetGrams,
			UpdatedAt:          s.cal.Now(),
		}); err != nil {
			log.Errorw("failed to create demo goals", "user_id", user.UserID, "error", err)
			return nil, err
		}
	}

	log.Infow("demo data generated", "user_id", user.UserID, "foods", len(foodIDs), "weights", len(weights), "logs", len(meals))

	return &models.DemoResult{
		FoodsAdded:      len(foodIDs),
		WeightLogsAdded: len(weights),
		DailyLogsAdded:  len(meals),
	}, nil
}

// weightHistory must be called with s.mu held.
func (s *DemoService) weightHistory() []models.WeightLogDB {
	history := make([]models.WeightLogDB, 0, demoWeightDays)
	for i := demoWeightDays - 1; i >= 0; i-- {
		jitter := (s.rnd.Float64() - 0.5) * demoJitterRangeKg
		weight := demoBaseWeightKg - float64(i)*demoDailyTrendKg + jitter
		history = append(history, models.WeightLogDB{
			WeightKg: math.Round(weight*10) / 10,
			Date:     s.cal.DaysAgo(i),
		})
	}
	return history
}

// mealLogs must be called with s.mu held.
func (s *DemoService) mealLogs(userID uuid.UUID, foodIDs []uuid.UUID) []models.LogDB {
	now := s.cal.Now()
	days := len(demoMealPatterns)

	var logs []models.LogDB
	for day := days - 1; day >= 0; day-- {
		d := now.AddDate(0, 0, -day)
		for _, meal := range demoMealPatterns[days-1-day] {
			loggedAt := time.Date(d.Year(), d.Month(), d.Day(),
				demoFirstMealHour+s.rnd.Intn(demoMealHourSpread), s.rnd.Intn(60), 0, 0, d.Location())
			logs = append(logs, models.LogDB{
				LogID:         uuid.New(),
				UserID:        userID,
				FoodID:        foodIDs[meal.food],
				QuantityGrams: meal.grams,
				Date:          s.cal.DaysAgo(day),
				LoggedAt:      loggedAt,
			})
		}
	}
	return logs
}

// Clear removes the caller's logs, weights and goals. The catalog is kept.
func (s *DemoService) Clear(ctx context.Context, identityKey string) (*models.DemoClearResult, error) {
	user, err := resolveUser(ctx, s.users, identityKey)
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	var result models.DemoClearResult

	if result.LogsRemoved, err = s.logs.DeleteByUser(ctx, user.UserID); err != nil {
		log.Errorw("failed to clear logs", "user_id", user.UserID, "error", err)
		return nil, err
	}
	if result.WeightLogsRemoved, err = s.weights.DeleteByUser(ctx, user.UserID); err != nil {
		log.Errorw("failed to clear weight logs", "user_id", user.UserID, "error", err)
		return nil, err
	}
	if result.GoalsRemoved, err = s.goals.DeleteByUserID(ctx, user.UserID); err != nil {
		log.Errorw("failed to clear goals", "user_id", user.UserID, "error", err)
		return nil, err
	}
	return &result, nil
}

// Status reports how much data the caller has. Unknown callers have none.
func (s *DemoService) Status(ctx context.Context, identityKey string) (*models.DemoStatus, error) {
	if err := requireIdentity(identityKey); err != nil {
		return &models.DemoStatus{}, nil
	}

	user, err := s.users.GetByIdentityKey(ctx, identityKey)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get user", "identity_key", identityKey, "error", err)
		return nil, err
	}
	if user == nil {
		return &models.DemoStatus{}, nil
	}

	logCount, err := s.logs.CountByUser(ctx, user.UserID)
	if err != nil {
		return nil, err
	}
	weightCount, err := s.weights.CountByUser(ctx, user.UserID)
	if err != nil {
		return nil, err
	}
	foodCount, err := s.foods.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &models.DemoStatus{
		HasDemoData:    logCount > 0 || weightCount > 0,
		LogCount:       logCount,
		WeightLogCount: weightCount,
		FoodCount:      foodCount,
	}, nil
}
