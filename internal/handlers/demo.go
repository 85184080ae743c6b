package handlers

//go:generate mockgen -source=demo.go -destination=demo_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/insighteats/internal/models"
)

// DemoManager seeds and clears demonstration data.
type DemoManager interface {
	Generate(ctx context.Context, identityKey string) (*models.DemoResult, error)
	Clear(ctx context.Context, identityKey string) (*models.DemoClearResult, error)
	Status(ctx context.Context, identityKey string) (*models.DemoStatus, error)
}

// NewGenerateDemoHandler returns an HTTP handler that replaces the caller's diary with demo data.
// @Summary Generate demo data
// @Description Replaces the shared catalog and the caller's diary and weight history with a week of sample data.
// @Tags demo
// @Produce json
// @Success 200 {object} models.DemoResult
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /demo [post]
// @Security BearerAuth
func NewGenerateDemoHandler(svc DemoManager, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFromRequest(w, r, tokener)
		if !ok {
			return
		}

		result, err := svc.Generate(r.Context(), identity)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

// NewClearDemoHandler returns an HTTP handler removing the caller's diary, weight history and goals.
// @Summary Clear demo data
// @Tags demo
// @Produce json
// @Success 200 {object} models.DemoClearResult
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /demo [delete]
// @Security BearerAuth
func NewClearDemoHandler(svc DemoManager, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFromRequest(w, r, tokener)
		if !ok {
			return
		}

		result, err := svc.Clear(r.Context(), identity)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

// NewDemoStatusHandler returns an HTTP handler reporting how much data the caller has.
// @Summary Demo data status
// @Tags demo
// @Produce json
// @Success 200 {object} models.DemoStatus
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /demo/status [get]
// @Security BearerAuth
func NewDemoStatusHandler(svc DemoManager, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFromRequest(w, r, tokener)
		if !ok {
			return
		}

		status, err := svc.Status(r.Context(), identity)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}
		writeJSON(w, http.StatusOK, status)
	}
}
