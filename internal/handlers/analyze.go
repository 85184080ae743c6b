package handlers

//go:generate mockgen -source=analyze.go -destination=analyze_mock.go -package=handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/sbilibin2017/insighteats/internal/logger"
	"github.com/sbilibin2017/insighteats/internal/models"
	"github.com/sbilibin2017/insighteats/internal/services"
)

// multipart framing allowance on top of the photo itself
const multipartOverhead = 1 << 20

// PhotoAnalyzer recognizes foods on a meal photo.
type PhotoAnalyzer interface {
	AnalyzePhoto(ctx context.Context, identityKey string, image []byte, contentType string, importFoods bool) (*models.AnalysisResult, error)
}

// NewAnalyzePhotoHandler returns an HTTP handler analyzing an uploaded meal photo.
// @Summary Analyze meal photo
// @Description Stores the photo and asks the configured vision provider which foods it shows, with per-100g estimates.
// @Description With import=true every valid estimate is added to the catalog and carries its food id.
// @Tags analysis
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Meal photo, up to 10 MB"
// @Param import query bool false "Import recognized foods into the catalog"
// @Success 200 {object} models.AnalysisResult
// @Failure 400 {object} handlers.ErrorResponse "Missing or oversized image"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 503 {object} handlers.ErrorResponse "No vision provider configured"
// @Router /analyze [post]
// @Security BearerAuth
func NewAnalyzePhotoHandler(svc PhotoAnalyzer, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFromRequest(w, r, tokener)
		if !ok {
			return
		}
		ctx := r.Context()

		r.Body = http.MaxBytesReader(w, r.Body, services.MaxPhotoBytes+multipartOverhead)
		file, header, err := r.FormFile("image")
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeError(w, http.StatusBadRequest, "image exceeds 10 MB")
				return
			}
			logger.FromContext(ctx).Warnw("failed to read image form field", "error", err)
			writeError(w, http.StatusBadRequest, "image is required")
			return
		}
		defer file.Close()

		image, err := io.ReadAll(file)
		if err != nil {
			logger.FromContext(ctx).Warnw("failed to read image", "error", err)
			writeError(w, http.StatusBadRequest, "failed to read image")
			return
		}

		contentType := header.Header.Get("Content-Type")
		if contentType == "" || contentType == "application/octet-stream" {
			contentType = http.DetectContentType(image)
		}

		result, err := svc.AnalyzePhoto(ctx, identity, image, contentType, r.URL.Query().Get("import") == "true")
		if err != nil {
			writeServiceError(ctx, w, err)
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}
