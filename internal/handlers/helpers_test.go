package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-expense-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
	"github.com/sbilibin2017/gw-expense-tracker/internal/sessions"
	"github.com/sbilibin2017/gw-expense-tracker/internal/view"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *view.Engine {
	t.Helper()
	engine, err := view.NewEngine()
	require.NoError(t, err)
	return engine
}

var testUser = &models.UserDB{
	UserID:   uuid.MustParse("6f1d1b3e-8f43-4a43-9d61-2f8c2d0e0a11"),
	Username: "alice",
	Email:    "alice@example.com",
	IsActive: true,
}

// newRequest builds a request carrying a session and, when user is set, an authenticated user.
func newRequest(method, target string, body io.Reader, user *models.UserDB) (*http.Request, *sessions.Session) {
	req := httptest.NewRequest(method, target, body)
	sess := &sessions.Session{ID: "test-session"}
	ctx := sessions.WithSession(req.Context(), sess)
	if user != nil {
		sess.SetUser(user.UserID.String())
		ctx = middlewares.WithUser(ctx, user)
	}
	return req.WithContext(ctx), sess
}

func newFormRequest(target string, values url.Values, user *models.UserDB) (*http.Request, *sessions.Session) {
	req, sess := newRequest(http.MethodPost, target, strings.NewReader(values.Encode()), user)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req, sess
}

func flashMessages(sess *sessions.Session) []string {
	var out []string
	for _, f := range sess.PopFlashes() {
		out = append(out, f.Message)
	}
	return out
}
