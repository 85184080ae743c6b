package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/insighteats/internal/models"
)

const foodColumns = `food_id, name, calories_per_100g, protein_per_100g, carbs_per_100g, fat_per_100g, fiber_per_100g`

// FoodRepository stores the global food catalog.
type FoodRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewFoodRepository(db *sqlx.DB, txGetter TxGetter) *FoodRepository {
	return &FoodRepository{db: db, txGetter: txGetter}
}

func (r *FoodRepository) getOne(ctx context.Context, query string, args ...any) (*models.FoodDB, error) {
	var food models.FoodDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &food, query, args...)

	logQuery(ctx, query, args, food, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &food, nil
}

// GetByName returns the oldest food with exactly this name, or nil.
func (r *FoodRepository) GetByName(ctx context.Context, name string) (*models.FoodDB, error) {
	const query = `
		SELECT ` + foodColumns + `
		FROM foods
		WHERE name = $1
		ORDER BY created_at
		LIMIT 1
	`
	return r.getOne(ctx, query, name)
}

// GetByID returns the food, or nil when it does not exist.
func (r *FoodRepository) GetByID(ctx context.Context, foodID uuid.UUID) (*models.FoodDB, error) {
	const query = `
		SELECT ` + foodColumns + `
		FROM foods
		WHERE food_id = $1
	`
	return r.getOne(ctx, query, foodID)
}

// GetByIDs resolves many foods in one read. Unknown ids are absent from the result.
func (r *FoodRepository) GetByIDs(ctx context.Context, foodIDs []uuid.UUID) (map[uuid.UUID]models.FoodDB, error) {
	foods := make(map[uuid.UUID]models.FoodDB, len(foodIDs))
	if len(foodIDs) == 0 {
		return foods, nil
	}

	ex := executor(ctx, r.db, r.txGetter)

	query, args, err := sqlx.In(`SELECT `+foodColumns+` FROM foods WHERE food_id IN (?)`, foodIDs)
	if err != nil {
		return nil, err
	}
	query = ex.Rebind(query)

	var rows []models.FoodDB
	err = sqlx.SelectContext(ctx, ex, &rows, query, args...)

	logQuery(ctx, query, args, len(rows), err)

	if err != nil {
		return nil, err
	}
	for _, f := range rows {
		foods[f.FoodID] = f
	}
	return foods, nil
}

// Create inserts a new catalog entry and returns its id.
func (r *FoodRepository) Create(ctx context.Context, candidate models.FoodCandidate) (uuid.UUID, error) {
	const query = `
		INSERT INTO foods (` + foodColumns + `, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
	`
	foodID := uuid.New()
	args := []any{
		foodID, candidate.Name, candidate.CaloriesPer100g, candidate.ProteinPer100g,
		candidate.CarbsPer100g, candidate.FatPer100g, candidate.FiberPer100g,
	}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logQuery(ctx, query, args, rowsAffected(res), err)

	if err != nil {
		return uuid.Nil, err
	}
	return foodID, nil
}

// List returns foods ordered by name; limit <= 0 returns the whole catalog.
func (r *FoodRepository) List(ctx context.Context, limit int) ([]models.FoodDB, error) {
	query := `SELECT ` + foodColumns + ` FROM foods ORDER BY name, created_at`
	var args []any
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	foods := []models.FoodDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &foods, query, args...)

	logQuery(ctx, query, args, len(foods), err)

	if err != nil {
		return nil, err
	}
	return foods, nil
}

// Count returns the catalog size.
func (r *FoodRepository) Count(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM foods`

	var n int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &n, query)

	logQuery(ctx, query, nil, n, err)

	return n, err
}

// DeleteAll empties the catalog.
func (r *FoodRepository) DeleteAll(ctx context.Context) (int64, error) {
	const query = `DELETE FROM foods`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query)
	n := rowsAffected(res)

	logQuery(ctx, query, nil, n, err)

	return n, err
}
