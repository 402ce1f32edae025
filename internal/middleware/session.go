package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"securiwisetraining.co.uk/web/internal/observability"
)

// SessionCookieName is the cookie holding the signed visitor state.
const SessionCookieName = "SECURIWISE_SESSION"

const sessionMaxAge = 30 * 24 * time.Hour

// SessionData is the per-visitor state persisted in the signed cookie. It carries the two filter
// selections, the CPD search text and the detail panel that is open, so every request can rebuild
// the page exactly as the visitor left it.
type SessionData struct {
	ID         string    `json:"id"`
	CSRFToken  string    `json:"csrf,omitempty"`
	CourseTag  string    `json:"course,omitempty"`
	CPDTag     string    `json:"cpd,omitempty"`
	CPDQuery   string    `json:"q,omitempty"`
	OpenDetail string    `json:"open,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	// not serialized
	dirty bool
}

// MarkDirty flags the session for writing before the response goes out.
func (s *SessionData) MarkDirty() { s.dirty = true; s.UpdatedAt = time.Now().UTC() }

// Dirty reports whether the session changed during this request.
func (s *SessionData) Dirty() bool { return s.dirty }

// Sessions encodes and decodes SessionData with gorilla/securecookie.
type Sessions struct {
	codec     *securecookie.SecureCookie
	secure    bool
	ephemeral bool
	failures  prometheus.Counter
}

// NewSessions builds the codec. An empty hashKey yields a process-ephemeral key, so visitor state
// does not survive restarts. blockKey may be empty to sign without encrypting.
func NewSessions(hashKey, blockKey []byte, secure bool) *Sessions {
	ephemeral := len(hashKey) == 0
	if ephemeral {
		hashKey = securecookie.GenerateRandomKey(32)
	}
	if len(blockKey) == 0 {
		blockKey = nil
	}
	codec := securecookie.New(hashKey, blockKey)
	codec.SetSerializer(securecookie.JSONEncoder{})
	codec.MaxAge(int(sessionMaxAge.Seconds()))
	return &Sessions{codec: codec, secure: secure, ephemeral: ephemeral}
}

// CountFailures makes the sessions increment c whenever a cookie cannot be encoded.
func (s *Sessions) CountFailures(c prometheus.Counter) { s.failures = c }

// Ephemeral reports whether the signing key was generated at startup.
func (s *Sessions) Ephemeral() bool { return s.ephemeral }

// Middleware loads or initializes the session, stores it on the request context and writes the
// cookie just before the first byte of the response when it is new or changed.
func (s *Sessions) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sd, fromCookie := s.read(r)
		if sd.ID == "" {
			now := time.Now().UTC()
			sd = &SessionData{
				ID:        uuid.NewString(),
				CSRFToken: newCSRFToken(r),
				CreatedAt: now,
				UpdatedAt: now,
				dirty:     true,
			}
		}
		rw := NewResponseRecorder(w)
		rw.SetBeforeWrite(func(w http.ResponseWriter) {
			if sd.dirty || !fromCookie {
				s.write(w, r, sd)
			}
		})
		next.ServeHTTP(rw, r.WithContext(context.WithValue(r.Context(), ctxKeySession, sd)))
		// HEAD and empty 200s never trigger the hook
		if !rw.Wrote() && (sd.dirty || !fromCookie) {
			s.write(w, r, sd)
		}
	})
}

// GetSession returns the session attached by Sessions.Middleware, or a detached empty one.
func GetSession(r *http.Request) *SessionData {
	if sd, ok := r.Context().Value(ctxKeySession).(*SessionData); ok && sd != nil {
		return sd
	}
	return &SessionData{}
}

func (s *Sessions) read(r *http.Request) (*SessionData, bool) {
	c, err := r.Cookie(SessionCookieName)
	if err != nil || c.Value == "" {
		return &SessionData{}, false
	}
	var sd SessionData
	if err := s.codec.Decode(SessionCookieName, c.Value, &sd); err != nil {
		return &SessionData{}, false
	}
	return &sd, true
}

func (s *Sessions) write(w http.ResponseWriter, r *http.Request, sd *SessionData) {
	val, err := s.codec.Encode(SessionCookieName, sd)
	if err != nil {
		// the previous cookie stays in place
		observability.FromContext(r.Context()).Error("session: encode failed",
			zap.String("session_id", sd.ID), zap.Error(err))
		if s.failures != nil {
			s.failures.Inc()
		}
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    val,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(sessionMaxAge),
	})
	sd.dirty = false
}

func newCSRFToken(r *http.Request) string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		observability.FromContext(r.Context()).Error("session: csrf token generation failed", zap.Error(err))
		return uuid.NewString()
	}
	return hex.EncodeToString(b)
}
