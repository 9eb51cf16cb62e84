package handlers

//go:generate mockgen -source=preferences.go -destination=preferences_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-expense-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
	"github.com/sbilibin2017/gw-expense-tracker/internal/services"
	"github.com/sbilibin2017/gw-expense-tracker/internal/sessions"
)

const preferencesPage = "pages/preferences/index.html"

// PreferenceManager reads and stores the display currency.
type PreferenceManager interface {
	Currency(ctx context.Context, userID uuid.UUID) (string, error)
	SetCurrency(ctx context.Context, userID uuid.UUID, currency string) error
}

// PreferencesData is the model of the preferences page.
type PreferencesData struct {
	Currencies []string
	Current    string
}

// NewPreferencesPageHandler renders the currency choice.
func NewPreferencesPageHandler(svc PreferenceManager, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			http.Redirect(w, r, middlewares.LoginPath, http.StatusFound)
			return
		}

		current, err := svc.Currency(r.Context(), user.UserID)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		render(w, r, renderer, page{
			name:  preferencesPage,
			title: "Preferences",
			data:  PreferencesData{Currencies: models.Currencies, Current: current},
		})
	}
}

// NewSavePreferencesHandler returns an HTTP handler storing the currency choice.
// @Summary Save preferences
// @Tags preferences
// @Accept x-www-form-urlencoded
// @Param currency formData string true "Currency label from the list"
// @Success 302 {string} string "Redirect to preferences"
// @Failure 400 {string} string "Unknown currency"
// @Router /preferences [post]
func NewSavePreferencesHandler(svc PreferenceManager, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middlewares.UserFromContext(r.Context())
		if user == nil {
			http.Redirect(w, r, middlewares.LoginPath, http.StatusFound)
			return
		}

		currency := r.PostFormValue("currency")
		err := svc.SetCurrency(r.Context(), user.UserID, currency)
		switch {
		case err == nil:
			redirectWithFlash(w, r, "/preferences", sessions.LevelSuccess, msgPreferencesSaved)
		case errors.Is(err, services.ErrUnknownCurrency):
			render(w, r, renderer, page{
				status:  http.StatusBadRequest,
				name:    preferencesPage,
				title:   "Preferences",
				data:    PreferencesData{Currencies: models.Currencies, Current: currency},
				notices: []sessions.Flash{notice(sessions.LevelError, msgCurrencyInvalid)},
			})
		default:
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}
}

// RegisterPreferencesHandlers registers the preferences routes
func RegisterPreferencesHandlers(r chi.Router, get, post http.HandlerFunc) {
	r.Get("/preferences", get)
	r.Post("/preferences", post)
}
