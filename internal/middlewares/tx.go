package middlewares

import (
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
	"github.com/sbilibin2017/gw-expense-tracker/internal/sessions"
)

// TxMiddleware wraps an HTTP handler with a database transaction.
// The transaction ends right before the status line goes out: a 5xx status rolls it back,
// anything else commits it. A failed commit replaces the response with a 500.
// A panic before the response started rolls the transaction back.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.Beginx()
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			ctx := setTxToContext(r.Context(), tx)
			r = r.WithContext(ctx)

			tw := &txWriter{ResponseWriter: w, tx: tx, ctx: ctx}

			defer func() {
				if rec := recover(); rec != nil {
					if !tw.finished {
						tw.finished = true
						tx.Rollback()
					}
					panic(rec)
				}
			}()

			next.ServeHTTP(tw, r)

			// Handlers that never write still end their transaction.
			tw.finish(http.StatusOK)
		})
	}
}

// txWriter ends the transaction on the first WriteHeader or Write.
type txWriter struct {
	http.ResponseWriter
	tx       *sqlx.Tx
	ctx      context.Context
	finished bool
	failed   bool
}

// finish rolls back or commits according to status and reports whether the
// handler's response may still be sent.
func (w *txWriter) finish(status int) bool {
	if w.finished {
		return !w.failed
	}
	w.finished = true

	if status >= http.StatusInternalServerError {
		if err := w.tx.Rollback(); err != nil {
			logger.Log.Errorw("failed to rollback transaction", "error", err)
		}
		return true
	}

	if err := w.tx.Commit(); err != nil {
		logger.Log.Errorw("failed to commit transaction", "error", err)
		w.failed = true
		// Notices queued by the handler describe a write that did not happen.
		if sess := sessions.FromContext(w.ctx); sess != nil {
			sess.PopFlashes()
		}
		w.Header().Del("Location")
		http.Error(w.ResponseWriter, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return false
	}
	return true
}

func (w *txWriter) WriteHeader(statusCode int) {
	if w.finish(statusCode) {
		w.ResponseWriter.WriteHeader(statusCode)
	}
}

func (w *txWriter) Write(data []byte) (int, error) {
	if !w.finish(http.StatusOK) {
		return len(data), nil
	}
	return w.ResponseWriter.Write(data)
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}
