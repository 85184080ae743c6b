package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/insighteats/internal/models"
	"github.com/sbilibin2017/insighteats/internal/nutrition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightService_LogWeight_RecomputesGoals(t *testing.T) {
	ctx := context.Background()
	user := &models.UserDB{UserID: uuid.New(), IdentityKey: "user_1"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newGoalsMocks(ctrl)
	svc := NewWeightService(m.users, m.bodies, m.goals, m.weights, m.events, fixedCalendar())

	stored := &models.GoalsDB{
		GoalsID:       uuid.New(),
		UserID:        user.UserID,
		Age:           30,
		WeightKg:      80,
		HeightCm:      175,
		Sex:           models.SexMale,
		ActivityLevel: models.ActivityModerate,
	}
	expected := nutrition.Calculate(nutrition.BiometricInput{
		Age: 30, WeightKg: 73.5, HeightCm: 175, Sex: models.SexMale, ActivityLevel: models.ActivityModerate,
	})

	gomock.InOrder(
		m.users.EXPECT().GetByIdentityKey(ctx, "user_1").Return(user, nil),
		m.weights.EXPECT().Upsert(ctx, user.UserID, "2024-03-15", 73.5).Return(nil),
		m.bodies.EXPECT().UpdateCurrentWeight(ctx, user.UserID, 73.5).Return(nil),
		m.goals.EXPECT().GetByUserID(ctx, user.UserID).Return(stored, nil),
		m.goals.EXPECT().UpdateWeightAndTargets(ctx, user.UserID, 73.5, expected, fixedNow).Return(nil),
		m.events.EXPECT().Publish(ctx, gomock.Any()),
	)

	goals, err := svc.LogWeight(ctx, "user_1", 73.5)
	require.NoError(t, err)
	require.NotNil(t, goals)

	// Weight-only submission must land on the same targets as a full profile save.
	full := nutrition.Calculate(nutrition.InputFromProfile(referenceProfile))
	assert.Equal(t, 73.5, goals.WeightKg)
	assert.Equal(t, full.CaloriesTarget, goals.CaloriesTarget)
	assert.Equal(t, full.ProteinTargetGrams, goals.ProteinTargetGrams)
	assert.Equal(t, full.CarbsTargetGrams, goals.CarbsTargetGrams)
	assert.Equal(t, full.FatTargetGrams, goals.FatTargetGrams)
	assert.Equal(t, 30, goals.Age)
	assert.Equal(t, models.ActivityModerate, goals.ActivityLevel)
}

func TestWeightService_LogWeight_WithoutGoals(t *testing.T) {
	ctx := context.Background()
	user := &models.UserDB{UserID: uuid.New(), IdentityKey: "user_1"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newGoalsMocks(ctrl)
	svc := NewWeightService(m.users, m.bodies, m.goals, m.weights, m.events, fixedCalendar())

	m.users.EXPECT().GetByIdentityKey(ctx, "user_1").Return(user, nil)
	m.weights.EXPECT().Upsert(ctx, user.UserID, "2024-03-15", 80.2).Return(nil)
	m.bodies.EXPECT().UpdateCurrentWeight(ctx, user.UserID, 80.2).Return(nil)
	m.goals.EXPECT().GetByUserID(ctx, user.UserID).Return(nil, nil)
	m.events.EXPECT().Publish(ctx, gomock.Any()).Do(func(_ context.Context, e models.NutritionEvent) {
		assert.Equal(t, models.EventWeightLogged, e.Operation)
		assert.Equal(t, "2024-03-15", e.Date)
		assert.Equal(t, 80.2, e.Value)
	})

	goals, err := svc.LogWeight(ctx, "user_1", 80.2)
	assert.NoError(t, err)
	assert.Nil(t, goals)
}

func TestWeightService_LogWeight_Errors(t *testing.T) {
	ctx := context.Background()
	user := &models.UserDB{UserID: uuid.New(), IdentityKey: "user_1"}

	t.Run("invalid weight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newGoalsMocks(ctrl)
		svc := NewWeightService(m.users, m.bodies, m.goals, m.weights, m.events, fixedCalendar())

		for _, w := range []float64{0, -1, 501} {
			_, err := svc.LogWeight(ctx, "user_1", w)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "weight", verr.Field)
		}
	})

	t.Run("user not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newGoalsMocks(ctrl)
		svc := NewWeightService(m.users, m.bodies, m.goals, m.weights, m.events, fixedCalendar())

		m.users.EXPECT().GetByIdentityKey(ctx, "ghost").Return(nil, nil)

		_, err := svc.LogWeight(ctx, "ghost", 70)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("goals update fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := newGoalsMocks(ctrl)
		svc := NewWeightService(m.users, m.bodies, m.goals, m.weights, m.events, fixedCalendar())

		m.users.EXPECT().GetByIdentityKey(ctx, "user_1").Return(user, nil)
		m.weights.EXPECT().Upsert(ctx, user.UserID, "2024-03-15", 70.0).Return(nil)
		m.bodies.EXPECT().UpdateCurrentWeight(ctx, user.UserID, 70.0).Return(nil)
		m.goals.EXPECT().GetByUserID(ctx, user.UserID).Return(&models.GoalsDB{Age: 40, HeightCm: 160, Sex: models.SexFemale}, nil)
		m.goals.EXPECT().UpdateWeightAndTargets(ctx, user.UserID, 70.0, gomock.Any(), fixedNow).Return(errors.New("db down"))

		goals, err := svc.LogWeight(ctx, "user_1", 70)
		assert.Nil(t, goals)
		assert.EqualError(t, err, "db down")
	})
}

func TestWeightService_WeightHistory(t *testing.T) {
	ctx := context.Background()
	user := &models.UserDB{UserID: uuid.New(), IdentityKey: "user_1"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newGoalsMocks(ctrl)
	svc := NewWeightService(m.users, m.bodies, m.goals, m.weights, m.events, fixedCalendar())

	newestFirst := []models.WeightLogDB{
		{UserID: user.UserID, Date: "2024-03-15", WeightKg: 74},
		{UserID: user.UserID, Date: "2024-03-14", WeightKg: 74.2},
		{UserID: user.UserID, Date: "2024-03-12", WeightKg: 74.6},
	}
	m.users.EXPECT().GetByIdentityKey(ctx, "user_1").Return(user, nil)
	m.weights.EXPECT().ListRecent(ctx, user.UserID, WeightHistoryLimit).Return(newestFirst, nil)

	history, err := svc.WeightHistory(ctx, "user_1")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "2024-03-12", history[0].Date)
	assert.Equal(t, "2024-03-15", history[2].Date)
}
