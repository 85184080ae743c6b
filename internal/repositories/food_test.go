package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/insighteats/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoodRepository_GetByIDs_Mock(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewFoodRepository(sqlx.NewDb(db, "pgx"), nil)
	ctx := context.Background()

	t.Run("empty input skips the query", func(t *testing.T) {
		foods, err := repo.GetByIDs(ctx, nil)
		assert.NoError(t, err)
		assert.Empty(t, foods)
	})

	t.Run("batched read", func(t *testing.T) {
		a, b := uuid.New(), uuid.New()
		rows := sqlmock.NewRows([]string{"food_id", "name", "calories_per_100g", "protein_per_100g", "carbs_per_100g", "fat_per_100g", "fiber_per_100g"}).
			AddRow(a.String(), "Banana", 89.0, 1.1, 23.0, 0.3, 2.6)
		mock.ExpectQuery("SELECT (.+) FROM foods WHERE food_id IN \\(\\$1, \\$2\\)").
			WithArgs(a, b).
			WillReturnRows(rows)

		foods, err := repo.GetByIDs(ctx, []uuid.UUID{a, b})
		require.NoError(t, err)
		assert.Len(t, foods, 1)
		assert.Equal(t, "Banana", foods[a].Name)
		require.NotNil(t, foods[a].FiberPer100g)
		assert.Equal(t, 2.6, *foods[a].FiberPer100g)
		_, ok := foods[b]
		assert.False(t, ok)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFoodRepository(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	repo := NewFoodRepository(db, nil)
	ctx := context.Background()
	fiber := 2.4

	firstID, err := repo.Create(ctx, models.FoodCandidate{Name: "Oatmeal", CaloriesPer100g: 68, ProteinPer100g: 2.4, CarbsPer100g: 12, FatPer100g: 1.4, FiberPer100g: &fiber})
	require.NoError(t, err)
	_, err = repo.Create(ctx, models.FoodCandidate{Name: "Oatmeal", CaloriesPer100g: 999})
	require.NoError(t, err)
	appleID, err := repo.Create(ctx, models.FoodCandidate{Name: "Apple", CaloriesPer100g: 52, ProteinPer100g: 0.3, CarbsPer100g: 14, FatPer100g: 0.2})
	require.NoError(t, err)

	t.Run("name lookup returns the first row", func(t *testing.T) {
		food, err := repo.GetByName(ctx, "Oatmeal")
		require.NoError(t, err)
		require.NotNil(t, food)
		assert.Equal(t, firstID, food.FoodID)
		assert.Equal(t, 68.0, food.CaloriesPer100g)
		require.NotNil(t, food.FiberPer100g)
		assert.Equal(t, fiber, *food.FiberPer100g)
	})

	t.Run("name lookup is exact", func(t *testing.T) {
		food, err := repo.GetByName(ctx, "oatmeal")
		assert.NoError(t, err)
		assert.Nil(t, food)
	})

	t.Run("by id", func(t *testing.T) {
		food, err := repo.GetByID(ctx, appleID)
		require.NoError(t, err)
		assert.Equal(t, "Apple", food.Name)
		assert.Nil(t, food.FiberPer100g)

		missing, err := repo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("list ordered by name", func(t *testing.T) {
		foods, err := repo.List(ctx, 2)
		require.NoError(t, err)
		require.Len(t, foods, 2)
		assert.Equal(t, "Apple", foods[0].Name)
		assert.Equal(t, "Oatmeal", foods[1].Name)

		all, err := repo.List(ctx, 0)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("batched ids", func(t *testing.T) {
		foods, err := repo.GetByIDs(ctx, []uuid.UUID{firstID, appleID, uuid.New()})
		require.NoError(t, err)
		assert.Len(t, foods, 2)
	})

	t.Run("count and delete all", func(t *testing.T) {
		n, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, n)

		deleted, err := repo.DeleteAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), deleted)
	})
}
