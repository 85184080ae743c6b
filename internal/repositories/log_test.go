package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/insighteats/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogRepository(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	ctx := context.Background()
	users := NewUserRepository(db, nil)
	alice, err := users.Ensure(ctx, "alice", models.DefaultUserDefaults())
	require.NoError(t, err)
	bob, err := users.Ensure(ctx, "bob", models.DefaultUserDefaults())
	require.NoError(t, err)

	repo := NewLogRepository(db, nil)
	foodID := uuid.New()
	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	entries := []*models.LogDB{
		{UserID: alice.UserID, FoodID: foodID, QuantityGrams: 100, Date: "2024-05-01", LoggedAt: base},
		{UserID: alice.UserID, FoodID: foodID, QuantityGrams: 150, Date: "2024-05-01", LoggedAt: base.Add(4 * time.Hour)},
		{UserID: alice.UserID, FoodID: foodID, QuantityGrams: 50, Date: "2024-04-30", LoggedAt: base.Add(-20 * time.Hour)},
		{UserID: bob.UserID, FoodID: foodID, QuantityGrams: 300, Date: "2024-05-01", LoggedAt: base},
	}
	for _, e := range entries {
		require.NoError(t, repo.Create(ctx, e))
		assert.NotEqual(t, uuid.Nil, e.LogID)
	}

	t.Run("by user and date newest first", func(t *testing.T) {
		logs, err := repo.ListByUserAndDate(ctx, alice.UserID, "2024-05-01")
		require.NoError(t, err)
		require.Len(t, logs, 2)
		assert.Equal(t, 150.0, logs[0].QuantityGrams)
		assert.Equal(t, 100.0, logs[1].QuantityGrams)
		assert.Equal(t, "2024-05-01", logs[0].Date)
	})

	t.Run("by user chronological", func(t *testing.T) {
		logs, err := repo.ListByUser(ctx, alice.UserID)
		require.NoError(t, err)
		require.Len(t, logs, 3)
		assert.Equal(t, "2024-04-30", logs[0].Date)
	})

	t.Run("get and delete", func(t *testing.T) {
		got, err := repo.GetByID(ctx, entries[3].LogID)
		require.NoError(t, err)
		assert.Equal(t, bob.UserID, got.UserID)

		require.NoError(t, repo.Delete(ctx, entries[3].LogID))
		gone, err := repo.GetByID(ctx, entries[3].LogID)
		assert.NoError(t, err)
		assert.Nil(t, gone)
	})

	t.Run("count and delete by user", func(t *testing.T) {
		n, err := repo.CountByUser(ctx, alice.UserID)
		require.NoError(t, err)
		assert.Equal(t, 3, n)

		removed, err := repo.DeleteByUser(ctx, alice.UserID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), removed)
	})
}
