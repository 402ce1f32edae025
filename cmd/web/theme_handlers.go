package main

import (
	"encoding/json"
	"net/http"

	mw "securiwisetraining.co.uk/web/internal/middleware"
)

// ThemeToggleHandler flips the stored colour scheme. htmx clients apply it from the
// themeChanged event; plain form posts go back where they came from.
func (a *app) ThemeToggleHandler(w http.ResponseWriter, r *http.Request) {
	next := mw.ThemeOf(r.Context()).Toggle()
	mw.SetTheme(w, next, a.cfg.IsProd())
	if !mw.IsHTMX(r.Context()) {
		http.Redirect(w, r, backTo(r), http.StatusSeeOther)
		return
	}
	trigger, _ := json.Marshal(map[string]any{
		"themeChanged": map[string]string{"theme": string(next)},
	})
	w.Header().Set("HX-Trigger", string(trigger))
	w.WriteHeader(http.StatusNoContent)
}

// backTo returns the same-site page that posted the form, or the home page.
func backTo(r *http.Request) string {
	ref := r.Referer()
	if ref == "" {
		return "/"
	}
	if u, err := r.URL.Parse(ref); err == nil && u.Host == r.Host && u.Path != "" {
		return u.RequestURI()
	}
	return "/"
}
