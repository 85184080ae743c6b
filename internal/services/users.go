package services

import (
	"context"

	"github.com/sbilibin2017/insighteats/internal/logger"
	"github.com/sbilibin2017/insighteats/internal/models"
)

// UserService provisions and reads users.
type UserService struct {
	reader   UserReader
	writer   UserWriter
	defaults models.UserDefaults
}

// NewUserService creates a new UserService.
func NewUserService(reader UserReader, writer UserWriter, defaults models.UserDefaults) *UserService {
	return &UserService{reader: reader, writer: writer, defaults: defaults}
}

// EnsureUser returns the caller's user, creating it with defaults on first use.
func (s *UserService) EnsureUser(ctx context.Context, identityKey string) (*models.UserDB, error) {
	if err := requireIdentity(identityKey); err != nil {
		return nil, err
	}

	user, err := s.writer.Ensure(ctx, identityKey, s.defaults)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to ensure user", "identity_key", identityKey, "error", err)
		return nil, err
	}
	return user, nil
}

// CurrentUser returns the caller's user without provisioning it.
func (s *UserService) CurrentUser(ctx context.Context, identityKey string) (*models.UserDB, error) {
	return resolveUser(ctx, s.reader, identityKey)
}
