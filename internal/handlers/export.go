package handlers

//go:generate mockgen -source=export.go -destination=export_mock.go -package=handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-expense-tracker/internal/facades"
	"github.com/sbilibin2017/gw-expense-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
	"github.com/sbilibin2017/gw-expense-tracker/internal/services"
)

// Exporter renders a whole ledger as a downloadable file.
type Exporter interface {
	Export(ctx context.Context, ownerID uuid.UUID, kind models.Kind, format services.Format) (*services.ExportFile, error)
}

// NewExportHandler returns an HTTP handler downloading the ledger.
// @Summary Export transactions
// @Description Downloads every owned row as CSV, xlsx or PDF
// @Tags export
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce application/pdf
// @Param kind path string true "expenses or income"
// @Param format path string true "csv, excel or pdf"
// @Success 200 {file} file
// @Failure 404 {string} string "Unknown format"
// @Failure 503 {string} string "PDF rendering not configured"
// @Router /{kind}/export/{format} [get]
func NewExportHandler(kind models.Kind, svc Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			http.Redirect(w, r, middlewares.LoginPath, http.StatusFound)
			return
		}

		file, err := svc.Export(r.Context(), user.UserID, kind, services.Format(chi.URLParam(r, "format")))
		switch {
		case err == nil:
		case errors.Is(err, services.ErrUnknownFormat):
			http.NotFound(w, r)
			return
		case errors.Is(err, facades.ErrPDFNotConfigured):
			http.Error(w, "PDF export is not available", http.StatusServiceUnavailable)
			return
		default:
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", file.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
		w.Header().Set("Content-Length", strconv.Itoa(len(file.Data)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(file.Data)
	}
}

// RegisterExportHandler registers the export route of one ledger
func RegisterExportHandler(r chi.Router, kind models.Kind, h http.HandlerFunc) {
	r.Get("/"+kind.Path()+"/export/{format}", h)
}
