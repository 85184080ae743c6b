package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/insighteats/internal/models"
)

const weightLogColumns = `weight_log_id, user_id, weight_kg, to_char(date, 'YYYY-MM-DD') AS date`

// WeightLogRepository stores one weight observation per user and date.
type WeightLogRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewWeightLogRepository(db *sqlx.DB, txGetter TxGetter) *WeightLogRepository {
	return &WeightLogRepository{db: db, txGetter: txGetter}
}

func (r *WeightLogRepository) list(ctx context.Context, query string, args ...any) ([]models.WeightLogDB, error) {
	weights := []models.WeightLogDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &weights, query, args...)

	logQuery(ctx, query, args, len(weights), err)

	if err != nil {
		return nil, err
	}
	return weights, nil
}

// Upsert records the weight for (user, date); a later observation on the same date wins.
func (r *WeightLogRepository) Upsert(ctx context.Context, userID uuid.UUID, date string, weightKg float64) error {
	const query = `
		INSERT INTO weight_logs (weight_log_id, user_id, weight_kg, date)
		VALUES ($1, $2, $3, $4::date)
		ON CONFLICT (user_id, date)
		DO UPDATE SET weight_kg = EXCLUDED.weight_kg
	`
	args := []any{uuid.New(), userID, weightKg, date}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logQuery(ctx, query, args, rowsAffected(res), err)

	return err
}

// ListRecent returns up to limit observations, newest first.
func (r *WeightLogRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.WeightLogDB, error) {
	const query = `
		SELECT ` + weightLogColumns + `
		FROM weight_logs
		WHERE user_id = $1
		ORDER BY date DESC
		LIMIT $2
	`
	return r.list(ctx, query, userID, limit)
}

// ListByUser returns every observation in chronological order.
func (r *WeightLogRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.WeightLogDB, error) {
	const query = `
		SELECT ` + weightLogColumns + `
		FROM weight_logs
		WHERE user_id = $1
		ORDER BY date
	`
	return r.list(ctx, query, userID)
}

// DeleteByUser removes all of the user's observations.
func (r *WeightLogRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	const query = `DELETE FROM weight_logs WHERE user_id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID)
	n := rowsAffected(res)

	logQuery(ctx, query, []any{userID}, n, err)

	return n, err
}

// CountByUser returns how many observations the user has.
func (r *WeightLogRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	const query = `SELECT COUNT(*) FROM weight_logs WHERE user_id = $1`

	var n int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &n, query, userID)

	logQuery(ctx, query, []any{userID}, n, err)

	return n, err
}
