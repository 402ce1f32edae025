package main

import (
	"net/http"
	"net/url"

	mw "securiwisetraining.co.uk/web/internal/middleware"
)

// CoverageHandler checks a postcode against the advertised areas.
func (a *app) CoverageHandler(w http.ResponseWriter, r *http.Request) {
	postcode := r.URL.Query().Get("postcode")
	if !mw.IsHTMX(r.Context()) {
		http.Redirect(w, r, "/?"+url.Values{"postcode": {postcode}}.Encode()+"#coverage", http.StatusSeeOther)
		return
	}
	data := map[string]any{
		"Lang":   a.lang(r),
		"Result": a.coverage.Check(postcode),
	}
	a.render(w, r, "frag_coverage_result", data)
}
