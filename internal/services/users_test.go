package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/insighteats/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_EnsureUser(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockUserReader(ctrl)
	writer := NewMockUserWriter(ctrl)
	svc := NewUserService(reader, writer, models.DefaultUserDefaults())

	user := &models.UserDB{UserID: uuid.New(), IdentityKey: "user_1", Goal: models.GoalWeightLoss, CurrentWeightKg: 70, HeightCm: 170}
	writer.EXPECT().Ensure(ctx, "user_1", models.DefaultUserDefaults()).Return(user, nil)

	got, err := svc.EnsureUser(ctx, "user_1")
	require.NoError(t, err)
	assert.Equal(t, user, got)

	_, err = svc.EnsureUser(ctx, "  ")
	assert.ErrorIs(t, err, ErrUnauthenticated)

	writer.EXPECT().Ensure(ctx, "user_2", gomock.Any()).Return(nil, errors.New("db down"))
	_, err = svc.EnsureUser(ctx, "user_2")
	assert.EqualError(t, err, "db down")
}

func TestUserService_CurrentUser(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockUserReader(ctrl)
	svc := NewUserService(reader, NewMockUserWriter(ctrl), models.DefaultUserDefaults())

	user := &models.UserDB{UserID: uuid.New(), IdentityKey: "user_1"}
	reader.EXPECT().GetByIdentityKey(ctx, "user_1").Return(user, nil)
	reader.EXPECT().GetByIdentityKey(ctx, "ghost").Return(nil, nil)

	got, err := svc.CurrentUser(ctx, "user_1")
	require.NoError(t, err)
	assert.Equal(t, user, got)

	_, err = svc.CurrentUser(ctx, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.CurrentUser(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
