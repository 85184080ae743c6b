package handlers

//go:generate mockgen -source=weight.go -destination=weight_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/insighteats/internal/models"
)

// WeightLogger records body weight.
type WeightLogger interface {
	LogWeight(ctx context.Context, identityKey string, weightKg float64) (*models.GoalsDB, error)
}

// WeightHistoryGetter reads recent weight observations.
type WeightHistoryGetter interface {
	WeightHistory(ctx context.Context, identityKey string) ([]models.WeightLogDB, error)
}

// LogWeightRequest is the body of a weight submission
// swagger:model LogWeightRequest
type LogWeightRequest struct {
	// Body weight in kilograms
	// required: true
	// default: 73.5
	Weight float64 `json:"weight"`
}

// NewLogWeightHandler returns an HTTP handler that records today's weight.
// @Summary Log weight
// @Description Records today's weight and recomputes goals from it when the caller has goals.
// @Tags weight
// @Accept json
// @Produce json
// @Param request body handlers.LogWeightRequest true "Weight"
// @Success 200 {object} handlers.GoalsResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid weight"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /weight [post]
// @Security BearerAuth
func NewLogWeightHandler(svc WeightLogger, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFromRequest(w, r, tokener)
		if !ok {
			return
		}

		var req LogWeightRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		goals, err := svc.LogWeight(r.Context(), identity, req.Weight)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}
		writeJSON(w, http.StatusOK, GoalsResponse{Goals: goals})
	}
}

// NewWeightHistoryHandler returns an HTTP handler listing the last 30 observations, oldest first.
// @Summary Weight history
// @Tags weight
// @Produce json
// @Success 200 {array} models.WeightLogDB
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /weight/history [get]
// @Security BearerAuth
func NewWeightHistoryHandler(svc WeightHistoryGetter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFromRequest(w, r, tokener)
		if !ok {
			return
		}

		history, err := svc.WeightHistory(r.Context(), identity)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}
		writeJSON(w, http.StatusOK, history)
	}
}
