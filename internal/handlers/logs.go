package handlers

//go:generate mockgen -source=logs.go -destination=logs_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/insighteats/internal/models"
)

// LogAdder records a diary entry.
type LogAdder interface {
	AddLog(ctx context.Context, identityKey string, foodID uuid.UUID, quantityGrams float64) (*models.LogDB, error)
}

// LogDeleter removes a diary entry.
type LogDeleter interface {
	DeleteLog(ctx context.Context, identityKey string, logID uuid.UUID) error
}

// TodayLogsLister lists today's diary entries.
type TodayLogsLister interface {
	ListToday(ctx context.Context, identityKey string) ([]models.LogWithFood, error)
}

// AddLogRequest is the body of a diary entry submission
// swagger:model AddLogRequest
type AddLogRequest struct {
	// Catalog food id
	// required: true
	FoodID uuid.UUID `json:"food_id"`
	// Eaten quantity in grams
	// required: true
	// default: 150
	QuantityGrams float64 `json:"quantity_grams"`
}

// NewAddLogHandler returns an HTTP handler recording a diary entry for today.
// @Summary Add diary entry
// @Tags logs
// @Accept json
// @Produce json
// @Param request body handlers.AddLogRequest true "Entry"
// @Success 201 {object} models.LogDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid quantity"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Food or user not found"
// @Router /logs [post]
// @Security BearerAuth
func NewAddLogHandler(svc LogAdder, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFromRequest(w, r, tokener)
		if !ok {
			return
		}

		var req AddLogRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		entry, err := svc.AddLog(r.Context(), identity, req.FoodID, req.QuantityGrams)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}
		writeJSON(w, http.StatusCreated, entry)
	}
}

// NewTodayLogsHandler returns an HTTP handler listing today's diary entries with their foods.
// @Summary Today's diary
// @Tags logs
// @Produce json
// @Success 200 {array} models.LogWithFood
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /logs/today [get]
// @Security BearerAuth
func NewTodayLogsHandler(svc TodayLogsLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFromRequest(w, r, tokener)
		if !ok {
			return
		}

		entries, err := svc.ListToday(r.Context(), identity)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}
		writeJSON(w, http.StatusOK, entries)
	}
}

// NewDeleteLogHandler returns an HTTP handler removing one of the caller's diary entries.
// @Summary Delete diary entry
// @Tags logs
// @Param logID path string true "Log id"
// @Success 204
// @Failure 400 {object} handlers.ErrorResponse "Invalid log id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Entry belongs to another user"
// @Failure 404 {object} handlers.ErrorResponse "Entry not found"
// @Router /logs/{logID} [delete]
// @Security BearerAuth
func NewDeleteLogHandler(svc LogDeleter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFromRequest(w, r, tokener)
		if !ok {
			return
		}

		logID, err := uuid.Parse(chi.URLParam(r, "logID"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid log id")
			return
		}

		if err := svc.DeleteLog(r.Context(), identity, logID); err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
