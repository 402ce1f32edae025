package middleware

import (
	"net/http"
)

// HTMX marks requests coming from htmx so handlers can answer with fragments.
func HTMX(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is := r.Header.Get("HX-Request") == "true"
		if is {
			// fragments and full pages share URLs
			w.Header().Add("Vary", "HX-Request")
		}
		next.ServeHTTP(w, r.WithContext(WithHTMX(r.Context(), is)))
	})
}
