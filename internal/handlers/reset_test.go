package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-expense-tracker/internal/services"
	"github.com/stretchr/testify/assert"
)

func newResetRouter(t *testing.T, requester ResetRequester, resetter PasswordResetter) chi.Router {
	engine := newTestEngine(t)
	r := chi.NewRouter()
	RegisterResetHandlers(r,
		NewResetRequestPageHandler(engine),
		NewResetRequestHandler(requester, engine),
		NewSetPasswordPageHandler(resetter, engine),
		NewSetPasswordHandler(resetter, engine),
	)
	return r
}

func TestResetRequestHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRequester := NewMockResetRequester(ctrl)
	r := newResetRouter(t, mockRequester, NewMockPasswordResetter(ctrl))

	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedText string
	}{
		{name: "sent", err: nil, expectedCode: http.StatusOK, expectedText: "We have sent you an email to reset your password!"},
		{name: "invalid email", err: services.ErrInvalidEmail, expectedCode: http.StatusBadRequest, expectedText: "Please enter a valid email"},
		{name: "unknown email", err: services.ErrEmailNotFound, expectedCode: http.StatusNotFound, expectedText: "This email address does not exist. Please try another email."},
		{name: "internal error", err: errors.New("db error"), expectedCode: http.StatusInternalServerError, expectedText: "Something went wrong. Please try again!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRequester.EXPECT().RequestPasswordReset(gomock.Any(), "bob@example.com").Return(tt.err)

			req, _ := newFormRequest("/authentication/request-reset-link", url.Values{"email": {"bob@example.com"}}, nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectedText)
		})
	}
}

func TestResetRequestPageHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := newResetRouter(t, NewMockResetRequester(ctrl), NewMockPasswordResetter(ctrl))

	req, _ := newRequest(http.MethodGet, "/authentication/request-reset-link", nil, nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Send reset link")
}

func TestSetPasswordPageHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResetter := NewMockPasswordResetter(ctrl)
	r := newResetRouter(t, NewMockResetRequester(ctrl), mockResetter)

	tests := []struct {
		name     string
		err      error
		showForm bool
	}{
		{name: "valid link", err: nil, showForm: true},
		{name: "malformed id still shows form", err: services.ErrLinkMalformed, showForm: true},
		{name: "unknown user still shows form", err: services.ErrUserNotFound, showForm: true},
		{name: "invalid token", err: services.ErrTokenInvalid, showForm: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockResetter.EXPECT().CheckResetLink(gomock.Any(), "dWlk", "tok-en").Return(tt.err)

			req, sess := newRequest(http.MethodGet, "/authentication/set-new-password/dWlk/tok-en", nil, nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			if tt.showForm {
				assert.Equal(t, http.StatusOK, rr.Code)
				assert.Contains(t, rr.Body.String(), `action="/authentication/set-new-password/dWlk/tok-en"`)
				return
			}
			assert.Equal(t, http.StatusFound, rr.Code)
			assert.Equal(t, "/authentication/request-reset-link", rr.Header().Get("Location"))
			assert.Equal(t, []string{"Password link is invalid. Please request a new link."}, flashMessages(sess))
		})
	}
}

func TestSetPasswordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockResetter := NewMockPasswordResetter(ctrl)
	r := newResetRouter(t, NewMockResetRequester(ctrl), mockResetter)

	t.Run("success", func(t *testing.T) {
		mockResetter.EXPECT().CompletePasswordReset(gomock.Any(), "dWlk", "newpass1", "newpass1").Return(nil)

		req, sess := newFormRequest("/authentication/set-new-password/dWlk/tok-en",
			url.Values{"password": {"newpass1"}, "password2": {"newpass1"}}, nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "/authentication/login", rr.Header().Get("Location"))
		assert.Equal(t, []string{"Password was set successfully!"}, flashMessages(sess))
	})

	tests := []struct {
		name         string
		err          error
		expectedText string
	}{
		{name: "too short", err: services.ErrPasswordTooShort, expectedText: "Password is too short. Please use more than 6 characters."},
		{name: "mismatch", err: services.ErrPasswordMismatch, expectedText: "Password mismatch. Please try again."},
		{name: "decode failure", err: fmt.Errorf("%w: %v", services.ErrPasswordResetFailed, services.ErrLinkMalformed), expectedText: "Something went wrong. Please try again!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockResetter.EXPECT().CompletePasswordReset(gomock.Any(), "dWlk", "abc", "abd").Return(tt.err)

			req, _ := newFormRequest("/authentication/set-new-password/dWlk/tok-en",
				url.Values{"password": {"abc"}, "password2": {"abd"}}, nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			body := rr.Body.String()
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Contains(t, body, tt.expectedText)
			assert.True(t, strings.Contains(body, `action="/authentication/set-new-password/dWlk/tok-en"`))
		})
	}
}
