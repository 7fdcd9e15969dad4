// internal/app/system/auth/auth.go
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dalemusser/adminconsole/internal/app/adminapi"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Session keys                                                                |
*─────────────────────────────────────────────────────────────────────────────*/

// TokenKey is the session value key holding the Admin API bearer token.
const TokenKey = "adminToken"

// LoginPath is where signed-out browsers are sent.
const LoginPath = "/login"

/*─────────────────────────────────────────────────────────────────────────────*
| Session                                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

// Session is the signed-in state injected into the request context.
// A Session always carries a non-empty Token.
type Session struct {
	Token     string
	AdminName string
}

type ctxKey string

const sessionCtxKey ctxKey = "adminSession"

// CurrentSession returns the session loaded by LoadSession, if any.
func CurrentSession(r *http.Request) (*Session, bool) {
	s, ok := r.Context().Value(sessionCtxKey).(*Session)
	if !ok || s == nil || s.Token == "" {
		return nil, false
	}
	return s, true
}

// Token returns the bearer token of the current session.
func Token(r *http.Request) (string, bool) {
	s, ok := CurrentSession(r)
	if !ok {
		return "", false
	}
	return s.Token, true
}

// WithTestSession injects a session carrying token into r, bypassing the
// cookie. Intended for handler tests.
func WithTestSession(r *http.Request, token string) *http.Request {
	return withSession(r, newSession(token))
}

func withSession(r *http.Request, s *Session) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), sessionCtxKey, s))
}

func newSession(token string) *Session {
	name := adminapi.DisplayName(token)
	if name == "" {
		name = "Admin"
	}
	return &Session{Token: token, AdminName: name}
}

/*─────────────────────────────────────────────────────────────────────────────*
| SessionManager                                                              |
*─────────────────────────────────────────────────────────────────────────────*/

// SessionManager owns the session cookie. It is the only writer of the
// token: SignIn on login success, SignOut on logout or a 401.
type SessionManager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewSessionManager builds the cookie store. secure marks cookies Secure
// and SameSite=None; in local development over http use secure=false.
func NewSessionManager(sessionKey, name, domain string, maxAge time.Duration, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if sessionKey == "" {
		return nil, errors.New("session key is empty; provide ≥32 random chars")
	}
	if name == "" {
		return nil, errors.New("session name is empty")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	}
	store.Options = opts

	logger.Info("session store initialized",
		zap.String("name", name),
		zap.Bool("secure", secure),
		zap.String("domain", domain),
		zap.Duration("max_age", maxAge))

	return &SessionManager{store: store, name: name, log: logger}, nil
}

// Name returns the session cookie name.
func (sm *SessionManager) Name() string { return sm.name }

// GetSession decodes the session cookie. On a decode error the returned
// session is still usable (it is a fresh, empty one).
func (sm *SessionManager) GetSession(r *http.Request) (*sessions.Session, error) {
	return sm.store.Get(r, sm.name)
}

// SignIn stores token in the session cookie.
func (sm *SessionManager) SignIn(w http.ResponseWriter, r *http.Request, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("sign in: empty token")
	}
	sess, err := sm.GetSession(r)
	if err != nil {
		sm.log.Debug("replacing undecodable session cookie", zap.Error(err))
	}
	sess.Values[TokenKey] = token
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("sign in: save session: %w", err)
	}
	return nil
}

// SignOut deletes the session cookie.
func (sm *SessionManager) SignOut(w http.ResponseWriter, r *http.Request) error {
	sess, err := sm.GetSession(r)
	if err != nil {
		sm.log.Debug("session decode failed during sign out", zap.Error(err))
	}
	delete(sess.Values, TokenKey)

	// The deletion cookie has to match the original store settings.
	if opts := sm.store.Options; opts != nil {
		sess.Options.Domain = opts.Domain
		sess.Options.Path = opts.Path
		sess.Options.Secure = opts.Secure
		sess.Options.HttpOnly = opts.HttpOnly
		sess.Options.SameSite = opts.SameSite
	}
	sess.Options.MaxAge = -1

	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("sign out: save session: %w", err)
	}
	return nil
}

// LoadSession injects the Session into the request context when the cookie
// carries a token.
func (sm *SessionManager) LoadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := sm.GetSession(r)
		if err != nil {
			sm.log.Debug("ignoring undecodable session cookie", zap.Error(err))
			next.ServeHTTP(w, r)
			return
		}
		if token, _ := sess.Values[TokenKey].(string); token != "" {
			r = withSession(r, newSession(token))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSignedIn lets the request through only when a session is loaded.
func (sm *SessionManager) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentSession(r); ok {
			next.ServeHTTP(w, r)
			return
		}
		RedirectToLogin(w, r, url.Values{"return": {currentURI(r)}})
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| Redirects                                                                   |
*─────────────────────────────────────────────────────────────────────────────*/

// RedirectToLogin sends the client to the login view.
//   - HTMX: HX-Redirect (full page navigation, no partial swap) + 401
//   - HTML: 303 redirect
//   - API:  plain 401
func RedirectToLogin(w http.ResponseWriter, r *http.Request, q url.Values) {
	dest := LoginPath
	if len(q) > 0 {
		dest += "?" + q.Encode()
	}

	if IsHTMX(r) {
		w.Header().Set("HX-Redirect", dest)
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if wantsHTML(r) {
		http.Redirect(w, r, dest, http.StatusSeeOther)
		return
	}
	http.Error(w, "unauthorized", http.StatusUnauthorized)
}

// Redirect navigates to dest, using HX-Redirect for htmx requests.
func Redirect(w http.ResponseWriter, r *http.Request, dest string) {
	if IsHTMX(r) {
		w.Header().Set("HX-Redirect", dest)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

// IsHTMX reports whether r was issued by htmx.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

func wantsHTML(r *http.Request) bool {
	if IsHTMX(r) {
		return true
	}
	accept := r.Header.Get("Accept")
	return accept == "" || strings.Contains(accept, "text/html") || strings.Contains(accept, "*/*")
}

func currentURI(r *http.Request) string {
	u := *r.URL
	return u.RequestURI()
}
