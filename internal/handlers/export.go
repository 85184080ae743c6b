package handlers

//go:generate mockgen -source=export.go -destination=export_mock.go -package=handlers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/sbilibin2017/insighteats/internal/models"
	"github.com/sbilibin2017/insighteats/internal/services"
)

// Exporter assembles the caller's diary for download.
type Exporter interface {
	Export(ctx context.Context, identityKey string) (*models.ExportData, error)
}

// NewExportHandler returns an HTTP handler downloading the caller's diary as JSON.
// @Summary Export diary as JSON
// @Tags export
// @Produce json
// @Success 200 {object} models.ExportData
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /export [get]
// @Security BearerAuth
func NewExportHandler(svc Exporter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFromRequest(w, r, tokener)
		if !ok {
			return
		}

		data, err := svc.Export(r.Context(), identity)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		w.Header().Set("Content-Disposition", `attachment; filename="insighteats-export.json"`)
		writeJSON(w, http.StatusOK, data)
	}
}

// NewExportCSVHandler returns an HTTP handler downloading one view of the caller's diary as CSV.
// @Summary Export diary as CSV
// @Tags export
// @Produce text/csv
// @Param type query string true "logs, weightLogs or dailySummaries"
// @Success 200 {string} string "CSV document"
// @Failure 400 {object} handlers.ErrorResponse "Unknown export type"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /export/csv [get]
// @Security BearerAuth
func NewExportCSVHandler(svc Exporter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFromRequest(w, r, tokener)
		if !ok {
			return
		}

		kind := models.ExportKind(r.URL.Query().Get("type"))
		switch kind {
		case models.ExportLogs, models.ExportWeightLogs, models.ExportDailySummaries:
		default:
			writeError(w, http.StatusBadRequest, "type must be one of logs, weightLogs, dailySummaries")
			return
		}

		data, err := svc.Export(r.Context(), identity)
		if err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		var buf bytes.Buffer
		if err := services.WriteCSV(&buf, data, kind); err != nil {
			writeServiceError(r.Context(), w, err)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="insighteats-%s.csv"`, kind))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(buf.Bytes())
	}
}
