package view

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/sbilibin2017/gw-expense-tracker/internal/models"
	"github.com/sbilibin2017/gw-expense-tracker/internal/sessions"
	"github.com/sbilibin2017/gw-expense-tracker/web"
)

// Engine renders HTML templates.
type Engine struct {
	pages map[string]*template.Template
}

// TemplateData contains values shared across templates.
type TemplateData struct {
	Title       string
	Flashes     []sessions.Flash
	User        *models.UserDB
	CurrentPath string
	Data        any
}

var funcMap = template.FuncMap{
	"alertClass": func(level string) string {
		if level == sessions.LevelError {
			return "danger"
		}
		return level
	},
	"add": func(a, b int) int { return a + b },
	"hasPrefix": strings.HasPrefix,
}

// NewEngine parses the layout once per page so every page can define its own content block.
func NewEngine() (*Engine, error) {
	return newEngine(web.Templates)
}

func newEngine(fsys fs.FS) (*Engine, error) {
	base, err := template.New("root").Funcs(funcMap).ParseFS(fsys, "templates/layouts/*.html")
	if err != nil {
		return nil, err
	}

	pages := make(map[string]*template.Template)
	err = fs.WalkDir(fsys, "templates/pages", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || path.Ext(p) != ".html" {
			return err
		}
		tpl, err := base.Clone()
		if err != nil {
			return err
		}
		if _, err := tpl.ParseFS(fsys, p); err != nil {
			return err
		}
		pages[strings.TrimPrefix(p, "templates/")] = tpl
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Engine{pages: pages}, nil
}

// Render executes the named page with TemplateData.
// Nothing is written when the template fails, so callers can still answer with an error.
func (e *Engine) Render(w http.ResponseWriter, status int, name string, data TemplateData) error {
	if e == nil {
		return fmt.Errorf("template engine not initialised")
	}
	tpl, ok := e.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}

	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, "base", data); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
