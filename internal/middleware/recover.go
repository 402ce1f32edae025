package middleware

import (
	"net/http"

	"go.uber.org/zap"

	"securiwisetraining.co.uk/web/internal/observability"
)

// Recoverer turns a handler panic into a 500 and logs it with the stack.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			observability.FromContext(r.Context()).Error("panic recovered",
				zap.Any("panic", rec),
				zap.Stack("stack"),
			)
			WriteError(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		}()
		next.ServeHTTP(w, r)
	})
}
