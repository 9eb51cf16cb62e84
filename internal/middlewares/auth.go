package middlewares

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
	"github.com/sbilibin2017/gw-expense-tracker/internal/sessions"
)

// LoginPath is where anonymous visitors of protected pages are sent.
const LoginPath = "/authentication/login"

// UserGetter defines the minimal interface needed by the middleware
type UserGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

type userKey struct{}

// AuthMiddleware requires a session bound to an active user and stores that user in the context.
// Anonymous visitors are redirected to the login page.
func AuthMiddleware(users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			sess := sessions.FromContext(ctx)
			if sess == nil || sess.User() == "" {
				http.Redirect(w, r, LoginPath, http.StatusFound)
				return
			}

			userID, err := uuid.Parse(sess.User())
			if err != nil {
				logger.Log.Errorw("authorization failed", "session_id", sess.ID, "err", err)
				sess.Clear()
				http.Redirect(w, r, LoginPath, http.StatusFound)
				return
			}

			user, err := users.GetByID(ctx, userID)
			if err != nil {
				logger.Log.Errorw("failed to load session user", "user_id", userID, "err", err)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			if user == nil || !user.IsActive {
				logger.Log.Infow("session user gone or inactive", "user_id", userID)
				sess.Clear()
				http.Redirect(w, r, LoginPath, http.StatusFound)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(ctx, user)))
		})
	}
}

// WithUser stores the authenticated user in the context.
func WithUser(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// UserFromContext retrieves the authenticated user. Returns nil if not present.
func UserFromContext(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userKey{}).(*models.UserDB)
	return user
}
