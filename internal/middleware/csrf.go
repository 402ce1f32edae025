package middleware

import (
	"crypto/subtle"
	"net/http"
)

// CSRFFormField is the hidden input name plain HTML forms carry the token in.
const CSRFFormField = "csrf_token"

// CSRFHeader is sent by htmx on every request via hx-headers.
const CSRFHeader = "X-CSRF-Token"

// CSRF verifies that unsafe requests carry the session token in the header or form field.
// Must run after Sessions.Middleware.
func CSRF(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := GetSession(r)
		if s.CSRFToken == "" {
			s.CSRFToken = newCSRFToken(r)
			s.MarkDirty()
		}
		if !isSafeMethod(r.Method) {
			got := r.Header.Get(CSRFHeader)
			if got == "" {
				got = r.PostFormValue(CSRFFormField)
			}
			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(s.CSRFToken)) != 1 {
				WriteError(w, r, http.StatusForbidden, "invalid CSRF token")
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

// CSRFToken returns the token templates should embed.
func CSRFToken(r *http.Request) string { return GetSession(r).CSRFToken }

func isSafeMethod(m string) bool {
	switch m {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	default:
		return false
	}
}
