package handlers

//go:generate mockgen -source=activate.go -destination=activate_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
	"github.com/sbilibin2017/gw-expense-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-expense-tracker/internal/services"
	"github.com/sbilibin2017/gw-expense-tracker/internal/sessions"
)

// Activator defines the interface that the activation service must implement.
type Activator interface {
	Activate(ctx context.Context, uidb64, token string) error
}

// NewActivateHandler returns an HTTP handler for the emailed activation link.
// Every outcome ends on the login page.
// @Summary Activate an account
// @Description Verifies the emailed link and activates the account
// @Tags authentication
// @Param uidb64 path string true "Encoded user id"
// @Param token path string true "Activation token"
// @Success 302 {string} string "Redirect to login"
// @Router /authentication/activate/{uidb64}/{token} [get]
func NewActivateHandler(svc Activator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := svc.Activate(r.Context(), chi.URLParam(r, "uidb64"), chi.URLParam(r, "token"))
		switch {
		case err == nil:
			redirectWithFlash(w, r, middlewares.LoginPath, sessions.LevelSuccess, msgActivated)
		case errors.Is(err, services.ErrTokenInvalid):
			redirectWithFlash(w, r, middlewares.LoginPath, sessions.LevelError, msgAlreadyActivated)
		case errors.Is(err, services.ErrLinkMalformed),
			errors.Is(err, services.ErrUserNotFound),
			errors.Is(err, services.ErrUserAlreadyActive):
			http.Redirect(w, r, middlewares.LoginPath, http.StatusFound)
		default:
			logger.Log.Errorw("activation failed", "err", err)
			http.Redirect(w, r, middlewares.LoginPath, http.StatusFound)
		}
	}
}

// RegisterActivateHandler registers the activation route
func RegisterActivateHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/authentication/activate/{uidb64}/{token}", h)
}
