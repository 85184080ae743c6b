package handlers

//go:generate mockgen -source=foods.go -destination=foods_mock.go -package=handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/sbilibin2017/insighteats/internal/models"
)

// FoodSearcher lists catalog foods.
type FoodSearcher interface {
	Search(ctx context.Context, term string, limit int) ([]models.FoodDB, error)
}

// FoodCreator adds a food to the catalog, or returns the existing one with the same name.
type FoodCreator interface {
	ResolveOrCreate(ctx context.Context, candidate models.FoodCandidate) (uuid.UUID, error)
}

// ExternalFoodFinder searches external food databases.
type ExternalFoodFinder interface {
	SearchExternal(ctx context.Context, term string) ([]models.ExternalFoodCandidate, error)
}

// FoodImageFinder looks up an illustrative image for a food name.
type FoodImageFinder interface {
	FindImage(ctx context.Context, name string) (string, error)
}

// CreateFoodResponse carries the id of the created or existing catalog food
// swagger:model CreateFoodResponse
type CreateFoodResponse struct {
	ID uuid.UUID `json:"id"`
}

// FoodImageResponse carries an image url; empty when none was found
// swagger:model FoodImageResponse
type FoodImageResponse struct {
	URL string `json:"url"`
}

// NewSearchFoodsHandler returns an HTTP handler searching the catalog by name.
// @Summary Search catalog
// @Description Case-insensitive substring search over the food catalog. Without q returns the catalog ordered by name.
// @Tags foods
// @Produce json
// @Param q query string false "Search term"
// @Param limit query int false "Maximum results (default 10, max 50)"
// @Success 200 {array} models.FoodDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid limit"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /foods [get]
// @Security BearerAuth
func NewSearchFoodsHandler(svc FoodSearcher, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := identityFromRequest(w, r, tokener); !ok {
			return
		}

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
				return
			}
			limit = n
		}

		foods, err := svc.Search(r.Context(), r.URL.Query().Get("q"), limit)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}
		writeJSON(w, http.StatusOK, foods)
	}
}

// NewCreateFoodHandler returns an HTTP handler adding a food to the catalog.
// @Summary Add food to catalog
// @Description Creates a catalog food; when a food with the same name exists its id is returned instead.
// @Tags foods
// @Accept json
// @Produce json
// @Param request body models.FoodCandidate true "Food"
// @Success 201 {object} handlers.CreateFoodResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid food"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /foods [post]
// @Security BearerAuth
func NewCreateFoodHandler(svc FoodCreator, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := identityFromRequest(w, r, tokener); !ok {
			return
		}

		var req models.FoodCandidate
		if !decodeJSON(w, r, &req) {
			return
		}

		id, err := svc.ResolveOrCreate(r.Context(), req)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}
		writeJSON(w, http.StatusCreated, CreateFoodResponse{ID: id})
	}
}

// NewSearchExternalFoodsHandler returns an HTTP handler searching USDA and Open Food Facts.
// @Summary Search external food databases
// @Description Queries USDA FoodData Central and Open Food Facts concurrently. Terms shorter than 3 characters return an empty list.
// @Tags foods
// @Produce json
// @Param q query string true "Search term"
// @Success 200 {array} models.ExternalFoodCandidate
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /foods/external [get]
// @Security BearerAuth
func NewSearchExternalFoodsHandler(svc ExternalFoodFinder, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := identityFromRequest(w, r, tokener); !ok {
			return
		}

		foods, err := svc.SearchExternal(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}
		writeJSON(w, http.StatusOK, foods)
	}
}

// NewFoodImageHandler returns an HTTP handler looking up a food image.
// @Summary Find food image
// @Tags foods
// @Produce json
// @Param name query string true "Food name"
// @Success 200 {object} handlers.FoodImageResponse
// @Failure 400 {object} handlers.ErrorResponse "Missing name"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /foods/image [get]
// @Security BearerAuth
func NewFoodImageHandler(svc FoodImageFinder, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := identityFromRequest(w, r, tokener); !ok {
			return
		}

		name := r.URL.Query().Get("name")
		if name == "" {
			writeError(w, http.StatusBadRequest, "name is required")
			return
		}

		url, err := svc.FindImage(r.Context(), name)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}
		writeJSON(w, http.StatusOK, FoodImageResponse{URL: url})
	}
}
