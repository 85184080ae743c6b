package handlers

//go:generate mockgen -source=goals.go -destination=goals_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/insighteats/internal/models"
	"github.com/sbilibin2017/insighteats/internal/nutrition"
)

// ProfileSaver stores a biometric profile.
type ProfileSaver interface {
	SaveProfile(ctx context.Context, identityKey string, profile models.ProfileInput) (*nutrition.Targets, error)
}

// GoalsGetter reads stored goals.
type GoalsGetter interface {
	GetGoals(ctx context.Context, identityKey string) (*models.GoalsDB, error)
}

// GoalsResponse wraps the caller's goals; Goals is null until a profile is saved
// swagger:model GoalsResponse
type GoalsResponse struct {
	Goals *models.GoalsDB `json:"goals"`
}

// NewSaveProfileHandler returns an HTTP handler that saves the caller's profile.
// @Summary Save biometric profile
// @Description Validates the profile, computes TDEE and macro targets, stores goals and logs today's weight.
// @Tags goals
// @Accept json
// @Produce json
// @Param request body models.ProfileInput true "Profile"
// @Success 200 {object} nutrition.Targets
// @Failure 400 {object} handlers.ErrorResponse "Invalid profile"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /goals [post]
// @Security BearerAuth
func NewSaveProfileHandler(svc ProfileSaver, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFromRequest(w, r, tokener)
		if !ok {
			return
		}

		var req models.ProfileInput
		if !decodeJSON(w, r, &req) {
			return
		}

		targets, err := svc.SaveProfile(r.Context(), identity, req)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}
		writeJSON(w, http.StatusOK, targets)
	}
}

// NewGetGoalsHandler returns an HTTP handler that reads the caller's goals.
// @Summary Get goals
// @Tags goals
// @Produce json
// @Success 200 {object} handlers.GoalsResponse
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /goals [get]
// @Security BearerAuth
func NewGetGoalsHandler(svc GoalsGetter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFromRequest(w, r, tokener)
		if !ok {
			return
		}

		goals, err := svc.GetGoals(r.Context(), identity)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}
		writeJSON(w, http.StatusOK, GoalsResponse{Goals: goals})
	}
}
