package repositories

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/insighteats/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_GetByIdentityKey_Mock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserRepository(sqlx.NewDb(db, "pgx"), nil)
	ctx := context.Background()
	userID := uuid.New()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"user_id", "identity_key", "goal", "current_weight_kg", "height_cm", "created_at"}).
			AddRow(userID.String(), "user_1", "muscle_gain", 80.0, 182.0, time.Now())
		mock.ExpectQuery("SELECT (.+) FROM users WHERE identity_key = \\$1").
			WithArgs("user_1").
			WillReturnRows(rows)

		user, err := repo.GetByIdentityKey(ctx, "user_1")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, userID, user.UserID)
		assert.Equal(t, models.GoalMuscleGain, user.Goal)
		assert.Equal(t, 80.0, user.CurrentWeightKg)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE identity_key = \\$1").
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

		user, err := repo.GetByIdentityKey(ctx, "ghost")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users").
			WillReturnError(errors.New("connection reset"))

		user, err := repo.GetByIdentityKey(ctx, "user_1")
		assert.Error(t, err)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UsesContextTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "pgx")
	mock.ExpectBegin()
	tx, err := sqlxDB.Beginx()
	require.NoError(t, err)

	txGetter := func(ctx context.Context) *sqlx.Tx { return tx }
	repo := NewUserRepository(sqlxDB, txGetter)

	userID := uuid.New()
	mock.ExpectExec("UPDATE users SET current_weight_kg = \\$2 WHERE user_id = \\$1").
		WithArgs(userID, 72.5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.UpdateCurrentWeight(context.Background(), userID, 72.5))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Ensure(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	repo := NewUserRepository(db, nil)
	ctx := context.Background()

	created, err := repo.Ensure(ctx, "user_ensure", models.DefaultUserDefaults())
	require.NoError(t, err)
	assert.Equal(t, models.GoalWeightLoss, created.Goal)
	assert.Equal(t, 70.0, created.CurrentWeightKg)
	assert.Equal(t, 170.0, created.HeightCm)

	// second call returns the existing row untouched
	again, err := repo.Ensure(ctx, "user_ensure", models.UserDefaults{Goal: models.GoalMuscleGain, CurrentWeightKg: 99, HeightCm: 199})
	require.NoError(t, err)
	assert.Equal(t, created.UserID, again.UserID)
	assert.Equal(t, models.GoalWeightLoss, again.Goal)

	require.NoError(t, repo.UpdateBody(ctx, created.UserID, 75, 180))
	got, err := repo.GetByIdentityKey(ctx, "user_ensure")
	require.NoError(t, err)
	assert.Equal(t, 75.0, got.CurrentWeightKg)
	assert.Equal(t, 180.0, got.HeightCm)
}

func TestUserRepository_Ensure_Concurrent(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	repo := NewUserRepository(db, nil)
	ctx := context.Background()

	const n = 10
	ids := make([]uuid.UUID, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u, err := repo.Ensure(ctx, "user_race", models.DefaultUserDefaults())
			assert.NoError(t, err)
			if u != nil {
				ids[i] = u.UserID
			}
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}

	var count int
	require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM users WHERE identity_key = 'user_race'`))
	assert.Equal(t, 1, count)
}
