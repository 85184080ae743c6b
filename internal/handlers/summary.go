package handlers

//go:generate mockgen -source=summary.go -destination=summary_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/insighteats/internal/models"
)

// SummaryReader computes per-day nutrient totals.
type SummaryReader interface {
	SummaryToday(ctx context.Context, identityKey string) (models.MacroSummary, error)
	SummaryForDate(ctx context.Context, identityKey, date string) (models.MacroSummary, error)
}

// NewTodaySummaryHandler returns an HTTP handler with today's nutrient totals.
// @Summary Today's totals
// @Tags summary
// @Produce json
// @Success 200 {object} models.MacroSummary
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /summary/today [get]
// @Security BearerAuth
func NewTodaySummaryHandler(svc SummaryReader, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFromRequest(w, r, tokener)
		if !ok {
			return
		}

		summary, err := svc.SummaryToday(r.Context(), identity)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}
		writeJSON(w, http.StatusOK, summary)
	}
}

// NewDateSummaryHandler returns an HTTP handler with the nutrient totals of a given day.
// @Summary Totals for a date
// @Tags summary
// @Produce json
// @Param date path string true "Date, YYYY-MM-DD"
// @Success 200 {object} models.MacroSummary
// @Failure 400 {object} handlers.ErrorResponse "Invalid date"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /summary/{date} [get]
// @Security BearerAuth
func NewDateSummaryHandler(svc SummaryReader, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFromRequest(w, r, tokener)
		if !ok {
			return
		}

		summary, err := svc.SummaryForDate(r.Context(), identity, chi.URLParam(r, "date"))
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}
		writeJSON(w, http.StatusOK, summary)
	}
}
