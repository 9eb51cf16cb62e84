package handlers

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
	"github.com/sbilibin2017/gw-expense-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
	"github.com/sbilibin2017/gw-expense-tracker/internal/services"
	"github.com/sbilibin2017/gw-expense-tracker/internal/sessions"
)

const loginPage = "pages/auth/login.html"

// Authenticator defines the interface that the login service must implement.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*models.UserDB, error)
}

// SessionRenewer moves a session to a fresh id.
type SessionRenewer interface {
	Renew(sess *sessions.Session)
}

// LoginForm is the login input echoed back after a failed attempt.
type LoginForm struct {
	Username string
}

// NewLoginPageHandler renders the login form.
func NewLoginPageHandler(renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, r, renderer, page{name: loginPage, title: "Login", data: LoginForm{}})
	}
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Checks credentials and binds the session to the user
// @Tags authentication
// @Accept x-www-form-urlencoded
// @Produce html
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 302 {string} string "Redirect to the expenses page"
// @Failure 400 {string} string "Missing username or password"
// @Failure 401 {string} string "Invalid credentials or inactive account"
// @Router /authentication/login [post]
func NewLoginHandler(svc Authenticator, renewer SessionRenewer, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form := LoginForm{Username: r.PostFormValue("username")}

		user, err := svc.Authenticate(r.Context(), form.Username, r.PostFormValue("password"))
		if err == nil {
			if sess := sessions.FromContext(r.Context()); sess != nil {
				renewer.Renew(sess)
				sess.SetUser(user.UserID.String())
			}
			logger.Log.Infow("user logged in", "user_id", user.UserID)
			redirectWithFlash(w, r, "/expenses", sessions.LevelSuccess, fmt.Sprintf(msgWelcome, user.Username))
			return
		}

		var (
			status  int
			message string
		)
		switch {
		case errors.Is(err, services.ErrMissingCredentials):
			status, message = http.StatusBadRequest, msgMissingLogin
		case errors.Is(err, services.ErrInvalidCredentials):
			status, message = http.StatusUnauthorized, msgBadCredentials
		case errors.Is(err, services.ErrUserInactive):
			status, message = http.StatusUnauthorized, msgInactive
		default:
			logger.Log.Errorw("internal server error", "err", err)
			status, message = http.StatusInternalServerError, msgSomethingWrong
		}

		render(w, r, renderer, page{
			status:  status,
			name:    loginPage,
			title:   "Login",
			data:    form,
			notices: []sessions.Flash{notice(sessions.LevelError, message)},
		})
	}
}

// NewLogoutHandler returns an HTTP handler ending the session.
// @Summary User logout
// @Tags authentication
// @Success 302 {string} string "Redirect to login"
// @Router /authentication/logout [post]
func NewLogoutHandler(renewer SessionRenewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sess := sessions.FromContext(r.Context()); sess != nil {
			sess.Clear()
			renewer.Renew(sess)
		}
		redirectWithFlash(w, r, middlewares.LoginPath, sessions.LevelSuccess, msgLoggedOut)
	}
}

// RegisterLoginHandlers registers the login and logout routes
func RegisterLoginHandlers(r chi.Router, get, post, logout http.HandlerFunc) {
	r.Get("/authentication/login", get)
	r.Post("/authentication/login", post)
	r.Post("/authentication/logout", logout)
}
