package handlers

//go:generate mockgen -source=validate.go -destination=validate_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
	"github.com/sbilibin2017/gw-expense-tracker/internal/services"
)

// UsernameValidator checks a username before registration.
type UsernameValidator interface {
	ValidateUsername(ctx context.Context, username string) error
}

// EmailValidator checks an email before registration.
type EmailValidator interface {
	ValidateEmail(ctx context.Context, email string) error
}

// UsernameValidationResponse is the answer of the username check
// swagger:model UsernameValidationResponse
type UsernameValidationResponse struct {
	// example: true
	UsernameValid bool `json:"username_valid,omitempty"`
	// example: Username is already in use, please try another choice.
	UsernameError string `json:"username_error,omitempty"`
}

// EmailValidationResponse is the answer of the email check
// swagger:model EmailValidationResponse
type EmailValidationResponse struct {
	// example: true
	EmailValid bool `json:"email_valid,omitempty"`
	// example: Email is in use. Please use another one.
	EmailError string `json:"email_error,omitempty"`
}

// NewValidateUsernameHandler returns an HTTP handler checking username format and availability.
// @Summary Validate username
// @Description Checks that the username is alphanumeric and not taken
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body models.UsernameRequest true "Username"
// @Success 200 {object} handlers.UsernameValidationResponse
// @Failure 400 {object} handlers.UsernameValidationResponse "Not alphanumeric"
// @Failure 409 {object} handlers.UsernameValidationResponse "Already taken"
// @Failure 500 {object} models.ErrorResponse
// @Router /authentication/validate-username [post]
func NewValidateUsernameHandler(svc UsernameValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.UsernameRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
			return
		}

		err := svc.ValidateUsername(r.Context(), req.Username)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, UsernameValidationResponse{UsernameValid: true})
		case errors.Is(err, services.ErrInvalidUsername):
			writeJSON(w, http.StatusBadRequest, UsernameValidationResponse{UsernameError: msgUsernameInvalid})
		case errors.Is(err, services.ErrUsernameTaken):
			writeJSON(w, http.StatusConflict, UsernameValidationResponse{UsernameError: msgUsernameTaken})
		default:
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
		}
	}
}

// NewValidateEmailHandler returns an HTTP handler checking email syntax and availability.
// @Summary Validate email
// @Description Checks that the email is well formed and not taken
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body models.EmailRequest true "Email"
// @Success 200 {object} handlers.EmailValidationResponse
// @Failure 400 {object} handlers.EmailValidationResponse "Invalid email"
// @Failure 409 {object} handlers.EmailValidationResponse "Already taken"
// @Failure 500 {object} models.ErrorResponse
// @Router /authentication/validate-email [post]
func NewValidateEmailHandler(svc EmailValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.EmailRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
			return
		}

		err := svc.ValidateEmail(r.Context(), req.Email)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, EmailValidationResponse{EmailValid: true})
		case errors.Is(err, services.ErrInvalidEmail):
			writeJSON(w, http.StatusBadRequest, EmailValidationResponse{EmailError: msgEmailInvalid})
		case errors.Is(err, services.ErrEmailTaken):
			writeJSON(w, http.StatusConflict, EmailValidationResponse{EmailError: msgEmailTaken})
		default:
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
		}
	}
}

// RegisterValidateHandlers registers the registration form checks
func RegisterValidateHandlers(r chi.Router, username, email http.HandlerFunc) {
	r.Post("/authentication/validate-username", username)
	r.Post("/authentication/validate-email", email)
}
