package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-expense-tracker/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestValidateHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsername := NewMockUsernameValidator(ctrl)
	mockEmail := NewMockEmailValidator(ctrl)

	r := chi.NewRouter()
	RegisterValidateHandlers(r, NewValidateUsernameHandler(mockUsername), NewValidateEmailHandler(mockEmail))

	tests := []struct {
		name         string
		path         string
		body         string
		mockSetup    func()
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name: "username valid",
			path: "/authentication/validate-username",
			body: `{"username":"alice"}`,
			mockSetup: func() {
				mockUsername.EXPECT().ValidateUsername(gomock.Any(), "alice").Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]any{"username_valid": true},
		},
		{
			name: "username not alphanumeric",
			path: "/authentication/validate-username",
			body: `{"username":"al ice"}`,
			mockSetup: func() {
				mockUsername.EXPECT().ValidateUsername(gomock.Any(), "al ice").Return(services.ErrInvalidUsername)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"username_error": "Username should only contain alphanumeric characters."},
		},
		{
			name: "username taken",
			path: "/authentication/validate-username",
			body: `{"username":"bob"}`,
			mockSetup: func() {
				mockUsername.EXPECT().ValidateUsername(gomock.Any(), "bob").Return(services.ErrUsernameTaken)
			},
			expectedCode: http.StatusConflict,
			expectedBody: map[string]any{"username_error": "Username is already in use, please try another choice."},
		},
		{
			name: "username lookup fails",
			path: "/authentication/validate-username",
			body: `{"username":"bob"}`,
			mockSetup: func() {
				mockUsername.EXPECT().ValidateUsername(gomock.Any(), "bob").Return(errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]any{"error": "Internal server error"},
		},
		{
			name:         "username invalid json",
			path:         "/authentication/validate-username",
			body:         `{bad`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"error": "invalid request body"},
		},
		{
			name: "email valid",
			path: "/authentication/validate-email",
			body: `{"email":"a@example.com"}`,
			mockSetup: func() {
				mockEmail.EXPECT().ValidateEmail(gomock.Any(), "a@example.com").Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]any{"email_valid": true},
		},
		{
			name: "email invalid",
			path: "/authentication/validate-email",
			body: `{"email":"nope"}`,
			mockSetup: func() {
				mockEmail.EXPECT().ValidateEmail(gomock.Any(), "nope").Return(services.ErrInvalidEmail)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"email_error": "Email is invalid."},
		},
		{
			name: "email taken",
			path: "/authentication/validate-email",
			body: `{"email":"b@example.com"}`,
			mockSetup: func() {
				mockEmail.EXPECT().ValidateEmail(gomock.Any(), "b@example.com").Return(services.ErrEmailTaken)
			},
			expectedCode: http.StatusConflict,
			expectedBody: map[string]any{"email_error": "Email is in use. Please use another one."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var got map[string]any
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
			assert.Equal(t, tt.expectedBody, got)
		})
	}
}
