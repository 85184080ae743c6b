package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/insighteats/internal/models"
)

// UserRepository stores users keyed by identity provider key.
type UserRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserRepository(db *sqlx.DB, txGetter TxGetter) *UserRepository {
	return &UserRepository{db: db, txGetter: txGetter}
}

// GetByIdentityKey returns the user for key, or nil when there is none.
func (r *UserRepository) GetByIdentityKey(ctx context.Context, identityKey string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, identity_key, goal, current_weight_kg, height_cm, created_at
		FROM users
		WHERE identity_key = $1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, identityKey)

	logQuery(ctx, query, []any{identityKey}, user, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Ensure returns the user for key, creating it with defaults when missing.
// Concurrent first calls for the same key converge on one row.
func (r *UserRepository) Ensure(ctx context.Context, identityKey string, defaults models.UserDefaults) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (user_id, identity_key, goal, current_weight_kg, height_cm, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (identity_key) DO UPDATE SET identity_key = EXCLUDED.identity_key
		RETURNING user_id, identity_key, goal, current_weight_kg, height_cm, created_at
	`
	args := []any{uuid.New(), identityKey, string(defaults.Goal), defaults.CurrentWeightKg, defaults.HeightCm}

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, args...)

	logQuery(ctx, query, args, user, err)

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateBody overwrites the user's current weight and height.
func (r *UserRepository) UpdateBody(ctx context.Context, userID uuid.UUID, weightKg, heightCm float64) error {
	const query = `
		UPDATE users
		SET current_weight_kg = $2, height_cm = $3
		WHERE user_id = $1
	`
	args := []any{userID, weightKg, heightCm}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logQuery(ctx, query, args, rowsAffected(res), err)

	return err
}

// UpdateCurrentWeight overwrites the user's current weight.
func (r *UserRepository) UpdateCurrentWeight(ctx context.Context, userID uuid.UUID, weightKg float64) error {
	const query = `
		UPDATE users
		SET current_weight_kg = $2
		WHERE user_id = $1
	`
	args := []any{userID, weightKg}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logQuery(ctx, query, args, rowsAffected(res), err)

	return err
}
