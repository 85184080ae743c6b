package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/insighteats/internal/models"
	"github.com/sbilibin2017/insighteats/internal/nutrition"
)

// GoalsRepository stores at most one goals row per user.
type GoalsRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewGoalsRepository(db *sqlx.DB, txGetter TxGetter) *GoalsRepository {
	return &GoalsRepository{db: db, txGetter: txGetter}
}

// GetByUserID returns the user's goals, or nil when none were set.
func (r *GoalsRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.GoalsDB, error) {
	const query = `
		SELECT goals_id, user_id, age, weight_kg, height_cm, sex, activity_level, tdee,
		       calories_target, protein_target_grams, carbs_target_grams, fat_target_grams, updated_at
		FROM goals
		WHERE user_id = $1
	`

	var goals models.GoalsDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &goals, query, userID)

	logQuery(ctx, query, []any{userID}, goals, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &goals, nil
}

// Upsert creates the user's goals or replaces every field of the existing row.
func (r *GoalsRepository) Upsert(ctx context.Context, goals *models.GoalsDB) error {
	const query = `
		INSERT INTO goals (
			goals_id, user_id, age, weight_kg, height_cm, sex, activity_level, tdee,
			calories_target, protein_target_grams, carbs_target_grams, fat_target_grams, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (user_id) DO UPDATE SET
			age = EXCLUDED.age,
			weight_kg = EXCLUDED.weight_kg,
			height_cm = EXCLUDED.height_cm,
			sex = EXCLUDED.sex,
			activity_level = EXCLUDED.activity_level,
			tdee = EXCLUDED.tdee,
			calories_target = EXCLUDED.calories_target,
			protein_target_grams = EXCLUDED.protein_target_grams,
			carbs_target_grams = EXCLUDED.carbs_target_grams,
			fat_target_grams = EXCLUDED.fat_target_grams,
			updated_at = EXCLUDED.updated_at
	`

	goalsID := goals.GoalsID
	if goalsID == uuid.Nil {
		goalsID = uuid.New()
	}
	args := []any{
		goalsID, goals.UserID, goals.Age, goals.WeightKg, goals.HeightCm,
		string(goals.Sex), string(goals.ActivityLevel), goals.TDEE,
		goals.CaloriesTarget, goals.ProteinTargetGrams, goals.CarbsTargetGrams, goals.FatTargetGrams,
		goals.UpdatedAt,
	}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logQuery(ctx, query, args, rowsAffected(res), err)

	return err
}

// UpdateWeightAndTargets overwrites the weight and computed fields, keeping the other inputs.
func (r *GoalsRepository) UpdateWeightAndTargets(ctx context.Context, userID uuid.UUID, weightKg float64, targets nutrition.Targets, updatedAt time.Time) error {
	const query = `
		UPDATE goals
		SET weight_kg = $2,
		    tdee = $3,
		    calories_target = $4,
		    protein_target_grams = $5,
		    carbs_target_grams = $6,
		    fat_target_grams = $7,
		    updated_at = $8
		WHERE user_id = $1
	`
	args := []any{
		userID, weightKg, targets.TDEE, targets.CaloriesTarget,
		targets.ProteinTargetGrams, targets.CarbsTargetGrams, targets.FatTargetGrams, updatedAt,
	}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logQuery(ctx, query, args, rowsAffected(res), err)

	return err
}

// DeleteByUserID removes the user's goals.
func (r *GoalsRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	const query = `DELETE FROM goals WHERE user_id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID)
	n := rowsAffected(res)

	logQuery(ctx, query, []any{userID}, n, err)

	return n, err
}
