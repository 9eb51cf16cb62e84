package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-expense-tracker/internal/logger"
	"github.com/sbilibin2017/gw-expense-tracker/internal/middlewares"
	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
	"github.com/sbilibin2017/gw-expense-tracker/internal/sessions"
	"github.com/sbilibin2017/gw-expense-tracker/internal/view"
)

// Renderer renders server-side HTML pages.
type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, data view.TemplateData) error
}

// categoryLister is satisfied by the add and edit services.
type categoryLister interface {
	Categories(ctx context.Context, kind models.Kind) ([]models.CategoryDB, error)
}

// page describes one rendered response.
type page struct {
	status  int
	name    string
	title   string
	data    any
	notices []sessions.Flash
}

// render shows queued session notices followed by the page's own notices.
func render(w http.ResponseWriter, r *http.Request, renderer Renderer, p page) {
	var flashes []sessions.Flash
	if sess := sessions.FromContext(r.Context()); sess != nil {
		flashes = sess.PopFlashes()
	}
	flashes = append(flashes, p.notices...)

	status := p.status
	if status == 0 {
		status = http.StatusOK
	}

	err := renderer.Render(w, status, p.name, view.TemplateData{
		Title:       p.title,
		Flashes:     flashes,
		User:        middlewares.UserFromContext(r.Context()),
		CurrentPath: r.URL.Path,
		Data:        p.data,
	})
	if err != nil {
		logger.Log.Errorw("failed to render page", "template", p.name, "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// redirectWithFlash queues a notice for the next page and redirects.
func redirectWithFlash(w http.ResponseWriter, r *http.Request, url, level, message string) {
	if sess := sessions.FromContext(r.Context()); sess != nil && message != "" {
		sess.AddFlash(level, message)
	}
	http.Redirect(w, r, url, http.StatusFound)
}

func notice(level, message string) sessions.Flash {
	return sessions.Flash{Level: level, Message: message}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}
