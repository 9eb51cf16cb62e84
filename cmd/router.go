package main

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/gw-expense-tracker/internal/handlers"
	"github.com/sbilibin2017/gw-expense-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
	"github.com/sbilibin2017/gw-expense-tracker/web"
)

// Requests per window allowed on the authentication routes, per client IP.
const (
	authRateLimit  = 30
	authRateWindow = time.Minute
)

type sessionStore interface {
	middlewares.SessionStore
	handlers.SessionRenewer
}

type authService interface {
	handlers.UsernameValidator
	handlers.EmailValidator
	handlers.Registerer
	handlers.Activator
	handlers.Authenticator
	handlers.ResetRequester
	handlers.PasswordResetter
}

type ledgerService interface {
	handlers.LedgerPager
	handlers.TransactionCreator
	handlers.TransactionEditor
	handlers.TransactionDeleter
	handlers.LedgerSearcher
	handlers.CategorySummarizer
}

type routerDeps struct {
	production  bool
	db          *sqlx.DB
	sessions    sessionStore
	users       middlewares.UserGetter
	auth        authService
	ledger      ledgerService
	exports     handlers.Exporter
	preferences handlers.PreferenceManager
	renderer    handlers.Renderer
	swaggerURL  string
}

// newRouter wires every route of the site.
func newRouter(d routerDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.SecureHeaders(d.production))

	static, _ := fs.Sub(web.Static, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(d.swaggerURL)))

	r.Group(func(r chi.Router) {
		r.Use(middlewares.SessionMiddleware(d.sessions))

		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			http.Redirect(w, req, "/"+models.KindExpense.Path(), http.StatusFound)
		})

		// Public authentication routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.RateLimit(authRateLimit, authRateWindow))

			handlers.RegisterValidateHandlers(r,
				handlers.NewValidateUsernameHandler(d.auth),
				handlers.NewValidateEmailHandler(d.auth),
			)
			handlers.RegisterRegisterHandlers(r,
				handlers.NewRegisterPageHandler(d.renderer),
				handlers.NewRegisterHandler(d.auth, d.renderer),
			)
			handlers.RegisterActivateHandler(r, handlers.NewActivateHandler(d.auth))
			handlers.RegisterLoginHandlers(r,
				handlers.NewLoginPageHandler(d.renderer),
				handlers.NewLoginHandler(d.auth, d.sessions, d.renderer),
				handlers.NewLogoutHandler(d.sessions),
			)
			handlers.RegisterResetHandlers(r,
				handlers.NewResetRequestPageHandler(d.renderer),
				handlers.NewResetRequestHandler(d.auth, d.renderer),
				handlers.NewSetPasswordPageHandler(d.auth, d.renderer),
				handlers.NewSetPasswordHandler(d.auth, d.renderer),
			)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(d.users))
			r.Use(middlewares.TxMiddleware(d.db))

			for _, kind := range []models.Kind{models.KindExpense, models.KindIncome} {
				handlers.RegisterLedgerHandlers(r, kind, handlers.LedgerHandlers{
					Index:    handlers.NewLedgerIndexHandler(kind, d.ledger, d.preferences, d.renderer),
					AddPage:  handlers.NewAddTransactionPageHandler(kind, d.ledger, d.renderer),
					Add:      handlers.NewAddTransactionHandler(kind, d.ledger, d.renderer),
					EditPage: handlers.NewEditTransactionPageHandler(kind, d.ledger, d.renderer),
					Edit:     handlers.NewEditTransactionHandler(kind, d.ledger, d.renderer),
					Delete:   handlers.NewDeleteTransactionHandler(kind, d.ledger),
					Stats:    handlers.NewStatsPageHandler(kind, d.renderer),
				})
				handlers.RegisterSearchHandlers(r, kind,
					handlers.NewSearchHandler(kind, d.ledger),
					handlers.NewCategorySummaryHandler(kind, d.ledger),
				)
				handlers.RegisterExportHandler(r, kind, handlers.NewExportHandler(kind, d.exports))
			}

			handlers.RegisterPreferencesHandlers(r,
				handlers.NewPreferencesPageHandler(d.preferences, d.renderer),
				handlers.NewSavePreferencesHandler(d.preferences, d.renderer),
			)
		})
	})

	return r
}
