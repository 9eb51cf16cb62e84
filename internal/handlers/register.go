package handlers

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
	"github.com/sbilibin2017/gw-expense-tracker/internal/services"
	"github.com/sbilibin2017/gw-expense-tracker/internal/sessions"
)

const registerPage = "pages/auth/register.html"

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, in services.RegisterInput) error
}

// RegisterForm is the registration input echoed back after a failed attempt.
type RegisterForm struct {
	Username string
	Email    string
}

// NewRegisterPageHandler renders the empty registration form.
func NewRegisterPageHandler(renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, r, renderer, page{name: registerPage, title: "Register", data: RegisterForm{}})
	}
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a user
// @Description Creates an inactive account and emails an activation link
// @Tags authentication
// @Accept x-www-form-urlencoded
// @Produce html
// @Param username formData string true "Username"
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Success 200 {string} string "Registration page with a success notice"
// @Failure 400 {string} string "Registration page with the first failed check"
// @Failure 409 {string} string "Username or email already taken"
// @Router /authentication/register [post]
func NewRegisterHandler(svc Registerer, renderer Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form := RegisterForm{
			Username: r.PostFormValue("username"),
			Email:    r.PostFormValue("email"),
		}

		err := svc.Register(r.Context(), services.RegisterInput{
			Username: form.Username,
			Email:    form.Email,
			Password: r.PostFormValue("password"),
		})
		if err == nil {
			render(w, r, renderer, page{
				name:    registerPage,
				title:   "Register",
				data:    RegisterForm{},
				notices: []sessions.Flash{notice(sessions.LevelSuccess, msgRegistered)},
			})
			return
		}

		status := http.StatusBadRequest
		var message string
		switch {
		case errors.Is(err, services.ErrInvalidUsername):
			message = msgUsernameInvalid
		case errors.Is(err, services.ErrUsernameTaken):
			status, message = http.StatusConflict, msgUsernameTaken
		case errors.Is(err, services.ErrInvalidEmail):
			message = msgEmailInvalid
		case errors.Is(err, services.ErrEmailTaken):
			status, message = http.StatusConflict, msgEmailTaken
		case errors.Is(err, services.ErrPasswordTooShort):
			message = msgRegisterTooShort
		default:
			logger.Log.Errorw("internal server error", "err", err)
			status, message = http.StatusInternalServerError, msgSomethingWrong
		}

		render(w, r, renderer, page{
			status:  status,
			name:    registerPage,
			title:   "Register",
			data:    form,
			notices: []sessions.Flash{notice(sessions.LevelError, message)},
		})
	}
}

// RegisterRegisterHandlers registers the registration routes
func RegisterRegisterHandlers(r chi.Router, get, post http.HandlerFunc) {
	r.Get("/authentication/register", get)
	r.Post("/authentication/register", post)
}
