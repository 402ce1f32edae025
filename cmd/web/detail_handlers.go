package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"securiwisetraining.co.uk/web/internal/detail"
	handlersPkg "securiwisetraining.co.uk/web/internal/handlers"
	mw "securiwisetraining.co.uk/web/internal/middleware"
	"securiwisetraining.co.uk/web/internal/observability"
)

// DetailOpenHandler opens the detail overlay for {key}. Unknown keys leave the overlay as it was:
// htmx is told not to swap anything.
func (a *app) DetailOpenHandler(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	v := a.restore(r)
	if err := v.open(key); err != nil {
		if !errors.Is(err, detail.ErrNotFound) {
			observability.FromContext(r.Context()).Error("detail open", zap.String("key", key), zap.Error(err))
			mw.WriteError(w, r, http.StatusInternalServerError, "detail unavailable")
			return
		}
		a.metrics.DetailLookups.WithLabelValues("miss").Inc()
		observability.FromContext(r.Context()).Debug("detail miss", zap.String("key", key))
		if mw.IsHTMX(r.Context()) {
			w.Header().Set("HX-Reswap", "none")
		}
		mw.WriteError(w, r, http.StatusNotFound, "unknown detail")
		return
	}
	if !mw.IsHTMX(r.Context()) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	a.renderModal(w, r, v)
}

// DetailCloseHandler dismisses the overlay. Closing an already closed overlay is fine.
func (a *app) DetailCloseHandler(w http.ResponseWriter, r *http.Request) {
	v := a.restore(r)
	v.close()
	if !mw.IsHTMX(r.Context()) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	a.renderModal(w, r, v)
}

func (a *app) renderModal(w http.ResponseWriter, r *http.Request, v *visitor) {
	data := map[string]any{
		"Lang":      a.lang(r),
		"CSRFToken": mw.CSRFToken(r),
		"Detail":    handlersPkg.BuildDetail(v.detail),
	}
	a.render(w, r, "frag_detail_modal", data)
}
