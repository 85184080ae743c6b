package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sbilibin2017/insighteats/internal/logger"
	"github.com/sbilibin2017/insighteats/internal/models"
	"github.com/sbilibin2017/insighteats/internal/nutrition"
)

var (
	// ErrUnauthenticated is returned when the caller carries no identity.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrUserNotFound is returned when the identity has no provisioned user.
	ErrUserNotFound = errors.New("user not found")
	// ErrLogNotFound is returned when a diary entry does not exist.
	ErrLogNotFound = errors.New("log not found")
	// ErrFoodNotFound is returned when a food does not exist in the catalog.
	ErrFoodNotFound = errors.New("food not found")
	// ErrNotOwner is returned when the caller mutates another user's record.
	ErrNotOwner = errors.New("record belongs to another user")
	// ErrAnalysisUnavailable is returned when no vision provider is configured.
	ErrAnalysisUnavailable = errors.New("food analysis is not configured")
)

// ValidationError reports the first invalid input field.
type ValidationError = nutrition.ValidationError

func requireIdentity(identityKey string) error {
	if strings.TrimSpace(identityKey) == "" {
		return ErrUnauthenticated
	}
	return nil
}

// resolveUser maps the caller identity to its user row without provisioning it.
func resolveUser(ctx context.Context, users UserReader, identityKey string) (*models.UserDB, error) {
	if err := requireIdentity(identityKey); err != nil {
		return nil, err
	}

	user, err := users.GetByIdentityKey(ctx, identityKey)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get user", "identity_key", identityKey, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
