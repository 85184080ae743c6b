package services

//go:generate mockgen -source=stores.go -destination=stores_mock.go -package=services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/insighteats/internal/models"
	"github.com/sbilibin2017/insighteats/internal/nutrition"
)

// UserReader looks users up by identity key.
type UserReader interface {
	GetByIdentityKey(ctx context.Context, identityKey string) (*models.UserDB, error) // Returns nil when there is no such user
}

// UserWriter provisions users and keeps their body measurements current.
type UserWriter interface {
	Ensure(ctx context.Context, identityKey string, defaults models.UserDefaults) (*models.UserDB, error) // Get-or-create
	UpdateBody(ctx context.Context, userID uuid.UUID, weightKg, heightCm float64) error                   // Sets weight and height
	UpdateCurrentWeight(ctx context.Context, userID uuid.UUID, weightKg float64) error                    // Sets weight only
}

// GoalsStore persists the single goals row of a user.
type GoalsStore interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.GoalsDB, error)
	Upsert(ctx context.Context, goals *models.GoalsDB) error
	UpdateWeightAndTargets(ctx context.Context, userID uuid.UUID, weightKg float64, targets nutrition.Targets, updatedAt time.Time) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}

// WeightLogStore persists weight observations, one per user and date.
type WeightLogStore interface {
	Upsert(ctx context.Context, userID uuid.UUID, date string, weightKg float64) error
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.WeightLogDB, error) // Newest first
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.WeightLogDB, error)            // Oldest first
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

// FoodStore persists the global food catalog.
type FoodStore interface {
	GetByName(ctx context.Context, name string) (*models.FoodDB, error)
	GetByID(ctx context.Context, foodID uuid.UUID) (*models.FoodDB, error)
	GetByIDs(ctx context.Context, foodIDs []uuid.UUID) (map[uuid.UUID]models.FoodDB, error)
	Create(ctx context.Context, candidate models.FoodCandidate) (uuid.UUID, error)
	List(ctx context.Context, limit int) ([]models.FoodDB, error) // limit <= 0 lists everything
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// LogStore persists diary entries.
type LogStore interface {
	Create(ctx context.Context, log *models.LogDB) error
	ListByUserAndDate(ctx context.Context, userID uuid.UUID, date string) ([]models.LogDB, error) // Newest first
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.LogDB, error)                     // Oldest first
	GetByID(ctx context.Context, logID uuid.UUID) (*models.LogDB, error)
	Delete(ctx context.Context, logID uuid.UUID) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}
