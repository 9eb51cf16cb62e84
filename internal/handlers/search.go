package handlers

//go:generate mockgen -source=search.go -destination=search_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-expense-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
	"github.com/shopspring/decimal"
)

// LedgerSearcher finds owned rows by free text.
type LedgerSearcher interface {
	Search(ctx context.Context, ownerID uuid.UUID, kind models.Kind, text string) ([]models.TransactionDB, error)
}

// CategorySummarizer sums owned rows per category.
type CategorySummarizer interface {
	CategorySummary(ctx context.Context, ownerID uuid.UUID, kind models.Kind) (map[string]decimal.Decimal, error)
}

// NewSearchHandler returns an HTTP handler searching the ledger.
// @Summary Search transactions
// @Description Matches amount or date prefixes and description or category substrings
// @Tags ledger
// @Accept json
// @Produce json
// @Param kind path string true "expenses or income"
// @Param request body models.SearchRequest true "Search text"
// @Success 200 {array} models.TransactionDB
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /{kind}/search [post]
func NewSearchHandler(kind models.Kind, svc LedgerSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
			return
		}

		var req models.SearchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
			return
		}

		rows, err := svc.Search(r.Context(), user.UserID, kind, req.SearchText)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
			return
		}
		if rows == nil {
			rows = []models.TransactionDB{}
		}

		writeJSON(w, http.StatusOK, rows)
	}
}

// NewCategorySummaryHandler returns an HTTP handler with per-category sums of the last 180 days.
// The payload key is expense_category_data for expenses and income_source_data for income.
// @Summary Category summary
// @Tags ledger
// @Produce json
// @Param kind path string true "expenses or income"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} models.ErrorResponse
// @Router /{kind}/category-summary [get]
func NewCategorySummaryHandler(kind models.Kind, svc CategorySummarizer) http.HandlerFunc {
	key := "expense_category_data"
	if kind == models.KindIncome {
		key = "income_source_data"
	}

	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
			return
		}

		sums, err := svc.CategorySummary(r.Context(), user.UserID, kind)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
			return
		}

		data := make(map[string]float64, len(sums))
		for category, sum := range sums {
			data[category] = sum.InexactFloat64()
		}

		writeJSON(w, http.StatusOK, map[string]map[string]float64{key: data})
	}
}

// RegisterSearchHandlers registers the JSON routes of one ledger
func RegisterSearchHandlers(r chi.Router, kind models.Kind, search, summary http.HandlerFunc) {
	prefix := "/" + kind.Path()
	r.Post(prefix+"/search", search)
	r.Get(prefix+"/category-summary", summary)
}
