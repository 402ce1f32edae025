package main

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"securiwisetraining.co.uk/web/internal/format"
	mw "securiwisetraining.co.uk/web/internal/middleware"
	"securiwisetraining.co.uk/web/internal/observability"
)

func (a *app) funcMap() template.FuncMap {
	return template.FuncMap{
		"now":    time.Now,
		"t":      a.i18n.T,
		"number": format.Number,
		// JSON-LD documents are marshalled server side
		"jsonld": func(s string) template.JS { return template.JS(s) },
		"dict":   dict,
	}
}

// dict builds a map from alternating keys and values so partials can take several arguments.
func dict(kv ...any) (map[string]any, error) {
	if len(kv)%2 != 0 {
		return nil, fmt.Errorf("dict: odd number of arguments")
	}
	m := make(map[string]any, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		k, ok := kv[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", kv[i])
		}
		m[k] = kv[i+1]
	}
	return m, nil
}

// parseTemplates discovers and parses every .tmpl file under the templates dir.
// ParseGlob doesn't support **.
func (a *app) parseTemplates() (*template.Template, error) {
	var files []string
	if err := filepath.WalkDir(a.cfg.TemplatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", a.cfg.TemplatesDir)
	}
	return template.New("_root").Funcs(a.funcMap()).ParseFiles(files...)
}

// templates returns the cached set, or a fresh parse in dev mode.
func (a *app) templates() (*template.Template, error) {
	if a.cfg.Dev {
		return a.parseTemplates()
	}
	if a.tmpl == nil {
		return nil, fmt.Errorf("templates not initialized")
	}
	return a.tmpl, nil
}

// render executes a page or fragment template. Output is buffered so a template error never
// leaves a half-written response.
func (a *app) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	t, err := a.templates()
	if err != nil {
		observability.FromContext(r.Context()).Error("template parse", zap.Error(err))
		mw.WriteError(w, r, http.StatusInternalServerError, "template parse error")
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		observability.FromContext(r.Context()).Error("template exec", zap.String("template", name), zap.Error(err))
		mw.WriteError(w, r, http.StatusInternalServerError, "template exec error")
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
