package handlers

//go:generate mockgen -source=ledger.go -destination=ledger_mock.go -package=handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
	"github.com/sbilibin2017/gw-expense-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
	"github.com/sbilibin2017/gw-expense-tracker/internal/services"
	"github.com/sbilibin2017/gw-expense-tracker/internal/sessions"
)

const (
	ledgerIndexPage = "pages/ledger/index.html"
	ledgerFormPage  = "pages/ledger/form.html"
	ledgerStatsPage = "pages/ledger/stats.html"
)

// LedgerPager returns one page of a ledger.
type LedgerPager interface {
	Page(ctx context.Context, ownerID uuid.UUID, kind models.Kind, page int) (*models.TransactionPage, error)
}

// CurrencyGetter returns the user's display currency.
type CurrencyGetter interface {
	Currency(ctx context.Context, userID uuid.UUID) (string, error)
}

// TransactionCreator validates and stores new transactions.
type TransactionCreator interface {
	Categories(ctx context.Context, kind models.Kind) ([]models.CategoryDB, error)
	Create(ctx context.Context, ownerID uuid.UUID, kind models.Kind, form models.TransactionForm) (*models.TransactionDB, error)
}

// TransactionEditor loads and replaces owned transactions.
type TransactionEditor interface {
	Categories(ctx context.Context, kind models.Kind) ([]models.CategoryDB, error)
	Get(ctx context.Context, ownerID uuid.UUID, kind models.Kind, id int64) (*models.TransactionDB, error)
	Update(ctx context.Context, ownerID uuid.UUID, kind models.Kind, id int64, form models.TransactionForm) (*models.TransactionDB, error)
}

// TransactionDeleter removes owned transactions.
type TransactionDeleter interface {
	Delete(ctx context.Context, ownerID uuid.UUID, kind models.Kind, id int64) error
}

// LedgerIndexData is the model of the ledger listing page.
type LedgerIndexData struct {
	Kind     models.Kind
	Page     *models.TransactionPage
	Currency string
}

// LedgerFormData is the model of the add and edit pages.
type LedgerFormData struct {
	Kind       models.Kind
	ID         int64
	Action     string
	Form       models.TransactionForm
	Categories []models.CategoryDB
}

// LedgerStatsData is the model of the summary chart page.
type LedgerStatsData struct {
	Kind models.Kind
}

// NewLedgerIndexHandler returns an HTTP handler listing a page of the ledger.
// @Summary List transactions
// @Description Shows one page of ten transactions, newest first
// @Tags ledger
// @Produce html
// @Param kind path string true "expenses or income"
// @Param page query int false "Page number"
// @Success 200 {string} string "Ledger page"
// @Router /{kind} [get]
func NewLedgerIndexHandler(kind models.Kind, svc LedgerPager, prefs CurrencyGetter, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			http.Redirect(w, r, middlewares.LoginPath, http.StatusFound)
			return
		}

		pageNum, err := strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil {
			pageNum = 1
		}

		txPage, err := svc.Page(r.Context(), user.UserID, kind, pageNum)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		currency, err := prefs.Currency(r.Context(), user.UserID)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		render(w, r, renderer, page{
			name:  ledgerIndexPage,
			title: kind.Title(),
			data:  LedgerIndexData{Kind: kind, Page: txPage, Currency: currency},
		})
	}
}

// NewAddTransactionPageHandler renders the empty add form.
func NewAddTransactionPageHandler(kind models.Kind, svc TransactionCreator, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := svc.Categories(r.Context(), kind)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		render(w, r, renderer, page{
			name:  ledgerFormPage,
			title: "Add " + kind.Title(),
			data: LedgerFormData{
				Kind:       kind,
				Action:     "/" + kind.Path() + "/add",
				Categories: categories,
			},
		})
	}
}

// NewAddTransactionHandler returns an HTTP handler storing a new transaction.
// @Summary Add a transaction
// @Tags ledger
// @Accept x-www-form-urlencoded
// @Produce html
// @Param kind path string true "expenses or income"
// @Param amount formData string true "Positive amount"
// @Param description formData string true "Description"
// @Param category formData string true "Category or source from the lookup list"
// @Param date formData string false "YYYY-MM-DD, today when blank"
// @Success 302 {string} string "Redirect to the ledger"
// @Failure 400 {string} string "Form with the failed check"
// @Router /{kind}/add [post]
func NewAddTransactionHandler(kind models.Kind, svc TransactionCreator, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			http.Redirect(w, r, middlewares.LoginPath, http.StatusFound)
			return
		}

		form := transactionForm(r)
		_, err := svc.Create(r.Context(), user.UserID, kind, form)
		if err == nil {
			redirectWithFlash(w, r, "/"+kind.Path(), sessions.LevelSuccess, noticesFor(kind).created)
			return
		}

		renderFormError(w, r, renderer, svc, kind, err, LedgerFormData{
			Kind:   kind,
			Action: "/" + kind.Path() + "/add",
			Form:   form,
		}, "Add "+kind.Title())
	}
}

// NewEditTransactionPageHandler renders the edit form of an owned transaction.
func NewEditTransactionPageHandler(kind models.Kind, svc TransactionEditor, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		id, ok := transactionID(r)
		if user == nil || !ok {
			http.NotFound(w, r)
			return
		}

		txn, err := svc.Get(r.Context(), user.UserID, kind, id)
		if errors.Is(err, services.ErrTransactionNotFound) {
			http.NotFound(w, r)
			return
		}
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		categories, err := svc.Categories(r.Context(), kind)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		render(w, r, renderer, page{
			name:  ledgerFormPage,
			title: "Edit " + kind.Title(),
			data: LedgerFormData{
				Kind:   kind,
				ID:     id,
				Action: fmt.Sprintf("/%s/%d/edit", kind.Path(), id),
				Form: models.TransactionForm{
					Amount:      txn.AmountString(),
					Description: txn.Description,
					Date:        txn.DateString(),
					Category:    txn.Category,
				},
				Categories: categories,
			},
		})
	}
}

// NewEditTransactionHandler returns an HTTP handler replacing an owned transaction.
// @Summary Edit a transaction
// @Tags ledger
// @Accept x-www-form-urlencoded
// @Produce html
// @Param kind path string true "expenses or income"
// @Param id path int true "Transaction id"
// @Param amount formData string true "Positive amount"
// @Param description formData string true "Description"
// @Param category formData string true "Category or source from the lookup list"
// @Param date formData string false "YYYY-MM-DD, today when blank"
// @Success 302 {string} string "Redirect to the ledger"
// @Failure 400 {string} string "Form with the failed check"
// @Failure 404 {string} string "Not owned or missing"
// @Router /{kind}/{id}/edit [post]
func NewEditTransactionHandler(kind models.Kind, svc TransactionEditor, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		id, ok := transactionID(r)
		if user == nil || !ok {
			http.NotFound(w, r)
			return
		}

		form := transactionForm(r)
		_, err := svc.Update(r.Context(), user.UserID, kind, id, form)
		if err == nil {
			redirectWithFlash(w, r, "/"+kind.Path(), sessions.LevelSuccess, noticesFor(kind).updated)
			return
		}
		if errors.Is(err, services.ErrTransactionNotFound) {
			http.NotFound(w, r)
			return
		}

		renderFormError(w, r, renderer, svc, kind, err, LedgerFormData{
			Kind:   kind,
			ID:     id,
			Action: fmt.Sprintf("/%s/%d/edit", kind.Path(), id),
			Form:   form,
		}, "Edit "+kind.Title())
	}
}

// NewDeleteTransactionHandler returns an HTTP handler deleting an owned transaction.
// @Summary Delete a transaction
// @Tags ledger
// @Param kind path string true "expenses or income"
// @Param id path int true "Transaction id"
// @Success 302 {string} string "Redirect to the ledger"
// @Failure 404 {string} string "Not owned or missing"
// @Router /{kind}/{id}/delete [post]
func NewDeleteTransactionHandler(kind models.Kind, svc TransactionDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		id, ok := transactionID(r)
		if user == nil || !ok {
			http.NotFound(w, r)
			return
		}

		err := svc.Delete(r.Context(), user.UserID, kind, id)
		switch {
		case err == nil:
			redirectWithFlash(w, r, "/"+kind.Path(), sessions.LevelSuccess, noticesFor(kind).deleted)
		case errors.Is(err, services.ErrTransactionNotFound):
			http.NotFound(w, r)
		default:
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}
}

// NewStatsPageHandler renders the category summary chart page.
func NewStatsPageHandler(kind models.Kind, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, r, renderer, page{
			name:  ledgerStatsPage,
			title: kind.Title() + " summary",
			data:  LedgerStatsData{Kind: kind},
		})
	}
}

// LedgerHandlers groups the page handlers of one ledger.
type LedgerHandlers struct {
	Index    http.HandlerFunc
	AddPage  http.HandlerFunc
	Add      http.HandlerFunc
	EditPage http.HandlerFunc
	Edit     http.HandlerFunc
	Delete   http.HandlerFunc
	Stats    http.HandlerFunc
}

// RegisterLedgerHandlers registers the page routes of one ledger
func RegisterLedgerHandlers(r chi.Router, kind models.Kind, h LedgerHandlers) {
	prefix := "/" + kind.Path()
	r.Get(prefix, h.Index)
	r.Get(prefix+"/add", h.AddPage)
	r.Post(prefix+"/add", h.Add)
	r.Get(prefix+"/{id}/edit", h.EditPage)
	r.Post(prefix+"/{id}/edit", h.Edit)
	r.Post(prefix+"/{id}/delete", h.Delete)
	r.Get(prefix+"/stats", h.Stats)
}

// renderFormError re-renders the add or edit form with the notice matching err.
func renderFormError(w http.ResponseWriter, r *http.Request, renderer Renderer, svc categoryLister, kind models.Kind, err error, data LedgerFormData, title string) {
	var message string
	switch {
	case errors.Is(err, services.ErrAmountRequired):
		message = msgAmountRequired
	case errors.Is(err, services.ErrDescriptionRequired):
		message = msgDescriptionNeeded
	case errors.Is(err, services.ErrInvalidAmount):
		message = msgAmountInvalid
	case errors.Is(err, services.ErrInvalidDate):
		message = msgDateInvalid
	case errors.Is(err, services.ErrInvalidCategory):
		message = fmt.Sprintf(msgCategoryInvalid, lowerLabel(kind))
	default:
		logger.Log.Errorw("failed to save transaction", "kind", kind, "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	categories, err := svc.Categories(r.Context(), kind)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	data.Categories = categories

	render(w, r, renderer, page{
		status:  http.StatusBadRequest,
		name:    ledgerFormPage,
		title:   title,
		data:    data,
		notices: []sessions.Flash{notice(sessions.LevelError, message)},
	})
}

func transactionForm(r *http.Request) models.TransactionForm {
	return models.TransactionForm{
		Amount:      r.PostFormValue("amount"),
		Description: r.PostFormValue("description"),
		Date:        r.PostFormValue("date"),
		Category:    r.PostFormValue("category"),
	}
}

func transactionID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

func noticesFor(kind models.Kind) ledgerNotices {
	if kind == models.KindIncome {
		return incomeNotices
	}
	return expenseNotices
}

func lowerLabel(kind models.Kind) string {
	if kind == models.KindIncome {
		return "source"
	}
	return "category"
}
