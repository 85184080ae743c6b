package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/insighteats/internal/models"
)

const logColumns = `log_id, user_id, food_id, quantity_grams, to_char(date, 'YYYY-MM-DD') AS date, logged_at`

// LogRepository stores diary entries.
type LogRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewLogRepository(db *sqlx.DB, txGetter TxGetter) *LogRepository {
	return &LogRepository{db: db, txGetter: txGetter}
}

func (r *LogRepository) list(ctx context.Context, query string, args ...any) ([]models.LogDB, error) {
	logs := []models.LogDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &logs, query, args...)

	logQuery(ctx, query, args, len(logs), err)

	if err != nil {
		return nil, err
	}
	return logs, nil
}

// Create inserts a diary entry.
func (r *LogRepository) Create(ctx context.Context, log *models.LogDB) error {
	const query = `
		INSERT INTO logs (log_id, user_id, food_id, quantity_grams, date, logged_at)
		VALUES ($1, $2, $3, $4, $5::date, $6)
	`
	if log.LogID == uuid.Nil {
		log.LogID = uuid.New()
	}
	args := []any{log.LogID, log.UserID, log.FoodID, log.QuantityGrams, log.Date, log.LoggedAt}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logQuery(ctx, query, args, rowsAffected(res), err)

	return err
}

// ListByUserAndDate returns the user's entries for date, newest first.
func (r *LogRepository) ListByUserAndDate(ctx context.Context, userID uuid.UUID, date string) ([]models.LogDB, error) {
	const query = `
		SELECT ` + logColumns + `
		FROM logs
		WHERE user_id = $1 AND date = $2::date
		ORDER BY logged_at DESC
	`
	return r.list(ctx, query, userID, date)
}

// ListByUser returns all of the user's entries in chronological order.
func (r *LogRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.LogDB, error) {
	const query = `
		SELECT ` + logColumns + `
		FROM logs
		WHERE user_id = $1
		ORDER BY date, logged_at
	`
	return r.list(ctx, query, userID)
}

// GetByID returns the entry, or nil when it does not exist.
func (r *LogRepository) GetByID(ctx context.Context, logID uuid.UUID) (*models.LogDB, error) {
	const query = `
		SELECT ` + logColumns + `
		FROM logs
		WHERE log_id = $1
	`

	var log models.LogDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &log, query, logID)

	logQuery(ctx, query, []any{logID}, log, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// Delete removes one entry.
func (r *LogRepository) Delete(ctx context.Context, logID uuid.UUID) error {
	const query = `DELETE FROM logs WHERE log_id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, logID)

	logQuery(ctx, query, []any{logID}, rowsAffected(res), err)

	return err
}

// DeleteByUser removes all of the user's entries.
func (r *LogRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	const query = `DELETE FROM logs WHERE user_id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID)
	n := rowsAffected(res)

	logQuery(ctx, query, []any{userID}, n, err)

	return n, err
}

// CountByUser returns how many entries the user has.
func (r *LogRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	const query = `SELECT COUNT(*) FROM logs WHERE user_id = $1`

	var n int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &n, query, userID)

	logQuery(ctx, query, []any{userID}, n, err)

	return n, err
}
