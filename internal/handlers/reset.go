package handlers

//go:generate mockgen -source=reset.go -destination=reset_mock.go -package=handlers

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

const (
	resetRequestPath = "/authentication/request-reset-link"
	resetRequestPage = "pages/auth/reset-password.html"
	setPasswordPage  = "pages/auth/set-new-password.html"
)

// ResetRequester defines the interface that starts a password reset.
type ResetRequester interface {
	RequestPasswordReset(ctx context.Context, email string) error
}

// PasswordResetter defines the interface that finishes a password reset.
type PasswordResetter interface {
	CheckResetLink(ctx context.Context, uidb64, token string) error
	CompletePasswordReset(ctx context.Context, uidb64, password, confirm string) error
}

// ResetRequestForm is the reset request input echoed back after a failed attempt.
type ResetRequestForm struct {
	Email string
}

// SetPasswordForm carries the link parameters through the new password form.
type SetPasswordForm struct {
	UIDB64 string
	Token  string
}

// NewResetRequestPageHandler renders the reset request form.
func NewResetRequestPageHandler(renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, r, renderer, page{name: resetRequestPage, title: "Reset password", data: ResetRequestForm{}})
	}
}

// NewResetRequestHandler returns an HTTP handler that emails a reset link.
// @Summary Request a password reset link
// @Tags authentication
// @Accept x-www-form-urlencoded
// @Produce html
// @Param email formData string true "Email"
// @Success 200 {string} string "Reset page with a success notice"
// @Failure 400 {string} string "Invalid email"
// @Failure 404 {string} string "No account with this email"
// @Router /authentication/request-reset-link [post]
func NewResetRequestHandler(svc ResetRequester, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form := ResetRequestForm{Email: r.PostFormValue("email")}

		err := svc.RequestPasswordReset(r.Context(), form.Email)
		p := page{name: resetRequestPage, title: "Reset password", data: form}
		switch {
		case err == nil:
			p.data = ResetRequestForm{}
			p.notices = []sessions.Flash{notice(sessions.LevelSuccess, msgResetSent)}
		case errors.Is(err, services.ErrInvalidEmail):
			p.status = http.StatusBadRequest
			p.notices = []sessions.Flash{notice(sessions.LevelError, msgResetBadEmail)}
		case errors.Is(err, services.ErrEmailNotFound):
			p.status = http.StatusNotFound
			p.notices = []sessions.Flash{notice(sessions.LevelError, msgResetNoSuchEmail)}
		default:
			logger.Log.Errorw("internal server error", "err", err)
			p.status = http.StatusInternalServerError
			p.notices = []sessions.Flash{notice(sessions.LevelError, msgSomethingWrong)}
		}
		render(w, r, renderer, p)
	}
}

// NewSetPasswordPageHandler checks the emailed link and renders the new password form.
// Links whose id cannot be resolved still get the form.
// @Summary Open a password reset link
// @Tags authentication
// @Produce html
// @Param uidb64 path string true "Encoded user id"
// @Param token path string true "Reset token"
// @Success 200 {string} string "New password form"
// @Success 302 {string} string "Redirect to the reset request page when the token is invalid"
// @Router /authentication/set-new-password/{uidb64}/{token} [get]
func NewSetPasswordPageHandler(svc PasswordResetter, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form := SetPasswordForm{UIDB64: chi.URLParam(r, "uidb64"), Token: chi.URLParam(r, "token")}

		err := svc.CheckResetLink(r.Context(), form.UIDB64, form.Token)
		switch {
		case errors.Is(err, services.ErrTokenInvalid):
			redirectWithFlash(w, r, resetRequestPath, sessions.LevelInfo, msgResetLinkInvalid)
			return
		case err != nil && !errors.Is(err, services.ErrLinkMalformed) && !errors.Is(err, services.ErrUserNotFound):
			logger.Log.Errorw("failed to check reset link", "err", err)
		}

		render(w, r, renderer, page{name: setPasswordPage, title: "Set a new password", data: form})
	}
}

// NewSetPasswordHandler returns an HTTP handler storing the new password.
// @Summary Set a new password
// @Tags authentication
// @Accept x-www-form-urlencoded
// @Produce html
// @Param uidb64 path string true "Encoded user id"
// @Param token path string true "Reset token"
// @Param password formData string true "New password"
// @Param password2 formData string true "Confirmation"
// @Success 302 {string} string "Redirect to login"
// @Failure 400 {string} string "Form with the failed check"
// @Router /authentication/set-new-password/{uidb64}/{token} [post]
func NewSetPasswordHandler(svc PasswordResetter, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form := SetPasswordForm{UIDB64: chi.URLParam(r, "uidb64"), Token: chi.URLParam(r, "token")}

		err := svc.CompletePasswordReset(r.Context(), form.UIDB64, r.PostFormValue("password"), r.PostFormValue("password2"))
		if err == nil {
			redirectWithFlash(w, r, middlewares.LoginPath, sessions.LevelSuccess, msgPasswordSet)
			return
		}

		p := page{status: http.StatusBadRequest, name: setPasswordPage, title: "Set a new password", data: form}
		switch {
		case errors.Is(err, services.ErrPasswordTooShort):
			p.notices = []sessions.Flash{notice(sessions.LevelError, msgResetTooShort)}
		case errors.Is(err, services.ErrPasswordMismatch):
			p.notices = []sessions.Flash{notice(sessions.LevelError, msgResetMismatch)}
		default:
			logger.Log.Infow("password reset failed", "err", err)
			p.notices = []sessions.Flash{notice(sessions.LevelInfo, msgSomethingWrong)}
		}
		render(w, r, renderer, p)
	}
}

// RegisterResetHandlers registers the password reset routes
func RegisterResetHandlers(r chi.Router, requestGet, requestPost, setGet, setPost http.HandlerFunc) {
	r.Get(resetRequestPath, requestGet)
	r.Post(resetRequestPath, requestPost)
	r.Get("/authentication/set-new-password/{uidb64}/{token}", setGet)
	r.Post("/authentication/set-new-password/{uidb64}/{token}", setPost)
}
