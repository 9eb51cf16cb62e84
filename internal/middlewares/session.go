package middlewares

//go:generate mockgen -source=session.go -destination=session_mock.go -package=middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
	"github.com/sbilibin2017/gw-expense-tracker/internal/sessions"
)

// SessionStore loads and persists request sessions.
type SessionStore interface {
	Load(ctx context.Context, r *http.Request) (*sessions.Session, error)
	Commit(ctx context.Context, w http.ResponseWriter, sess *sessions.Session) error
}

// SessionMiddleware loads the session into the request context and commits it
// right before the response header is written.
func SessionMiddleware(store SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			sess, err := store.Load(ctx, r)
			if err != nil {
				logger.Log.Errorw("failed to load session", "error", err)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			ctx = sessions.WithSession(ctx, sess)

			wrapped := &commitWriter{
				ResponseWriter: w,
				ctx:            ctx,
				sess:           sess,
				store:          store,
			}

			next.ServeHTTP(wrapped, r.WithContext(ctx))

			// Handlers that never write still have their session saved.
			wrapped.commit()
		})
	}
}

type commitWriter struct {
	http.ResponseWriter
	ctx           context.Context
	sess          *sessions.Session
	store         SessionStore
	headerWritten bool
}

func (w *commitWriter) commit() {
	if w.headerWritten {
		return
	}
	w.headerWritten = true
	if err := w.store.Commit(w.ctx, w.ResponseWriter, w.sess); err != nil {
		logger.Log.Errorw("failed to commit session", "session_id", w.sess.ID, "error", err)
	}
}

func (w *commitWriter) WriteHeader(statusCode int) {
	w.commit()
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *commitWriter) Write(data []byte) (int, error) {
	w.commit()
	return w.ResponseWriter.Write(data)
}
