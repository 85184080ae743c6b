package handlers

//go:generate mockgen -source=users.go -destination=users_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/insighteats/internal/models"
)

// UserEnsurer provisions the caller.
type UserEnsurer interface {
	EnsureUser(ctx context.Context, identityKey string) (*models.UserDB, error)
}

// CurrentUserGetter reads the caller.
type CurrentUserGetter interface {
	CurrentUser(ctx context.Context, identityKey string) (*models.UserDB, error)
}

// NewEnsureUserHandler returns an HTTP handler that provisions the caller on first use.
// @Summary Provision current user
// @Description Returns the caller's user, creating it with default goal, weight and height when missing.
// @Tags users
// @Produce json
// @Success 200 {object} models.UserDB
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /users/me [post]
// @Security BearerAuth
func NewEnsureUserHandler(svc UserEnsurer, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFromRequest(w, r, tokener)
		if !ok {
			return
		}

		user, err := svc.EnsureUser(r.Context(), identity)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// NewCurrentUserHandler returns an HTTP handler that reads the caller's user.
// @Summary Get current user
// @Tags users
// @Produce json
// @Success 200 {object} models.UserDB
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/me [get]
// @Security BearerAuth
func NewCurrentUserHandler(svc CurrentUserGetter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFromRequest(w, r, tokener)
		if !ok {
			return
		}

		user, err := svc.CurrentUser(r.Context(), identity)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}
