package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/insighteats/internal/logger"
	"github.com/sbilibin2017/insighteats/internal/models"
	"github.com/sbilibin2017/insighteats/internal/nutrition"
)

// GoalsService saves biometric profiles and reads computed targets.
type GoalsService struct {
	users   UserReader
	bodies  UserWriter
	goals   GoalsStore
	weights WeightLogStore
	events  EventPublisher
	cal     Calendar
}

// NewGoalsService creates a new GoalsService.
func NewGoalsService(
	users UserReader,
	bodies UserWriter,
	goals GoalsStore,
	weights WeightLogStore,
	events EventPublisher,
	cal Calendar,
) *GoalsService {
	return &GoalsService{
		users:   users,
		bodies:  bodies,
		goals:   goals,
		weights: weights,
		events:  events,
		cal:     cal,
	}
}

// SaveProfile validates the profile, computes targets and stores goals, the
// user's body measurements and today's weight. The writes share the request
// transaction, so they land together or not at all.
func (s *GoalsService) SaveProfile(ctx context.Context, identityKey string, profile models.ProfileInput) (*nutrition.Targets, error) {
	if err := requireIdentity(identityKey); err != nil {
		return nil, err
	}

	input := nutrition.InputFromProfile(profile)
	if err := nutrition.ValidateBiometrics(input); err != nil {
		return nil, err
	}

	user, err := resolveUser(ctx, s.users, identityKey)
	if err != nil {
		return nil, err
	}

	targets := nutrition.Calculate(input)
	now := s.cal.Now()
	today := s.cal.Today()

	goals := &models.GoalsDB{
		GoalsID:            uuid.New(),
		UserID:             user.UserID,
		Age:                profile.Age,
		WeightKg:           profile.WeightKg,
		HeightCm:           profile.HeightCm,
		Sex:                profile.Sex,
		ActivityLevel:      profile.ActivityLevel,
		TDEE:               targets.TDEE,
		CaloriesTarget:     targets.CaloriesTarget,
		ProteinTargetGrams: targets.ProteinTargetGrams,
		CarbsTargetGrams:   targets.CarbsTargetGrams,
		FatTargetGrams:     targets.FatTargetGrams,
		UpdatedAt:          now,
	}
	if err := s.goals.Upsert(ctx, goals); err != nil {
		logger.FromContext(ctx).Errorw("failed to save goals", "user_id", user.UserID, "error", err)
		return nil, err
	}

	if err := s.bodies.UpdateBody(ctx, user.UserID, profile.WeightKg, profile.HeightCm); err != nil {
		logger.FromContext(ctx).Errorw("failed to update user body", "user_id", user.UserID, "error", err)
		return nil, err
	}

	if err := s.weights.Upsert(ctx, user.UserID, today, profile.WeightKg); err != nil {
		logger.FromContext(ctx).Errorw("failed to log weight", "user_id", user.UserID, "date", today, "error", err)
		return nil, err
	}

	publish(ctx, s.events, newEvent(s.cal, user.UserID, models.EventGoalsUpdated, today, float64(targets.CaloriesTarget)))

	return &targets, nil
}

// GetGoals returns the caller's goals, or nil when none were saved.
func (s *GoalsService) GetGoals(ctx context.Context, identityKey string) (*models.GoalsDB, error) {
	user, err := resolveUser(ctx, s.users, identityKey)
	if err != nil {
		return nil, err
	}

	goals, err := s.goals.GetByUserID(ctx, user.UserID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get goals", "user_id", user.UserID, "error", err)
		return nil, err
	}
	return goals, nil
}
