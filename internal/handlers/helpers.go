package handlers

//go:generate mockgen -source=helpers.go -destination=helpers_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/insighteats/internal/jwt"
	"github.com/sbilibin2017/insighteats/internal/logger"
	"github.com/sbilibin2017/insighteats/internal/services"
)

// Tokener extracts the caller identity from a request.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// identityFromRequest returns the caller's identity key, or answers 401 and returns false.
func identityFromRequest(w http.ResponseWriter, r *http.Request, tokener Tokener) (string, bool) {
	ctx := r.Context()

	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get token from request", "error", err)
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return "", false
	}

	claims, err := tokener.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get claims from token", "error", err)
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return "", false
	}

	return claims.IdentityKey(), true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeServiceError maps service errors onto HTTP statuses.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	var verr *services.ValidationError

	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Error())
	case errors.Is(err, services.ErrUnauthenticated):
		writeError(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, services.ErrNotOwner):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrLogNotFound),
		errors.Is(err, services.ErrFoodNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrAnalysisUnavailable):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	default:
		logger.FromContext(ctx).Errorw("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromContext(r.Context()).Warnw("failed to decode request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// NewHealthHandler returns a liveness probe handler.
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
