package services

import (
	"context"

	"github.com/sbilibin2017/insighteats/internal/logger"
	"github.com/sbilibin2017/insighteats/internal/models"
	"github.com/sbilibin2017/insighteats/internal/nutrition"
)

// WeightHistoryLimit is the number of observations returned by WeightHistory.
const WeightHistoryLimit = 30

// WeightService records body weight and keeps goals in step with it.
type WeightService struct {
	users   UserReader
	bodies  UserWriter
	goals   GoalsStore
	weights WeightLogStore
	events  EventPublisher
	cal     Calendar
}

// NewWeightService creates a new WeightService.
func NewWeightService(
	users UserReader,
	bodies UserWriter,
	goals GoalsStore,
	weights WeightLogStore,
	events EventPublisher,
	cal Calendar,
) *WeightService {
	return &WeightService{
		users:   users,
		bodies:  bodies,
		goals:   goals,
		weights: weights,
		events:  events,
		cal:     cal,
	}
}

// LogWeight records today's weight and the user's current weight. When the
// user has goals, targets are recomputed from the new weight and the stored
// age, height, sex and activity level; the updated goals are returned.
// Without goals it returns nil goals and no error.
func (s *WeightService) LogWeight(ctx context.Context, identityKey string, weightKg float64) (*models.GoalsDB, error) {
	if err := requireIdentity(identityKey); err != nil {
		return nil, err
	}
	if err := nutrition.ValidateWeight(weightKg); err != nil {
		return nil, err
	}

	user, err := resolveUser(ctx, s.users, identityKey)
	if err != nil {
		return nil, err
	}

	today := s.cal.Today()

	if err := s.weights.Upsert(ctx, user.UserID, today, weightKg); err != nil {
		logger.FromContext(ctx).Errorw("failed to log weight", "user_id", user.UserID, "date", today, "error", err)
		return nil, err
	}

	if err := s.bodies.UpdateCurrentWeight(ctx, user.UserID, weightKg); err != nil {
		logger.FromContext(ctx).Errorw("failed to update current weight", "user_id", user.UserID, "error", err)
		return nil, err
	}

	goals, err := s.goals.GetByUserID(ctx, user.UserID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get goals", "user_id", user.UserID, "error", err)
		return nil, err
	}

	if goals != nil {
		targets := nutrition.Calculate(nutrition.InputFromGoals(goals, weightKg))
		now := s.cal.Now()

		if err := s.goals.UpdateWeightAndTargets(ctx, user.UserID, weightKg, targets, now); err != nil {
			logger.FromContext(ctx).Errorw("failed to update goals", "user_id", user.UserID, "error", err)
			return nil, err
		}

		goals.WeightKg = weightKg
		goals.TDEE = targets.TDEE
		goals.CaloriesTarget = targets.CaloriesTarget
		goals.ProteinTargetGrams = targets.ProteinTargetGrams
		goals.CarbsTargetGrams = targets.CarbsTargetGrams
		goals.FatTargetGrams = targets.FatTargetGrams
		goals.UpdatedAt = now
	}

	publish(ctx, s.events, newEvent(s.cal, user.UserID, models.EventWeightLogged, today, weightKg))

	return goals, nil
}

// WeightHistory returns the newest observations, oldest first.
func (s *WeightService) WeightHistory(ctx context.Context, identityKey string) ([]models.WeightLogDB, error) {
	user, err := resolveUser(ctx, s.users, identityKey)
	if err != nil {
		return nil, err
	}

	recent, err := s.weights.ListRecent(ctx, user.UserID, WeightHistoryLimit)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list weight history", "user_id", user.UserID, "error", err)
		return nil, err
	}

	history := make([]models.WeightLogDB, len(recent))
	for i, w := range recent {
		history[len(recent)-1-i] = w
	}
	return history, nil
}
