package middleware

import (
	"context"
	"net/http"
	"time"
)

// ThemeCookieName stores the visitor's colour scheme.
const ThemeCookieName = "sw_theme"

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func parseTheme(v string) Theme {
	if Theme(v) == ThemeDark {
		return ThemeDark
	}
	return ThemeLight
}

// ThemeFromCookie resolves the theme cookie onto the request context. Anything other than
// "dark" is light.
func ThemeFromCookie(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t := ThemeLight
		if c, err := r.Cookie(ThemeCookieName); err == nil {
			t = parseTheme(c.Value)
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKeyTheme, t)))
	})
}

// ThemeOf returns the theme resolved for this request.
func ThemeOf(ctx context.Context) Theme {
	if t, ok := ctx.Value(ctxKeyTheme).(Theme); ok {
		return t
	}
	return ThemeLight
}

// SetTheme persists t for a year. The cookie is readable by script so the page can switch
// without a reload.
func SetTheme(w http.ResponseWriter, t Theme, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     ThemeCookieName,
		Value:    string(t),
		Path:     "/",
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(365 * 24 * time.Hour),
	})
}
