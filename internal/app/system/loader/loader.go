// Package loader implements the load cycle shared by every dashboard section:
// the panel shows a loading placeholder, htmx requests the section's data
// fragment, and the fragment handler performs exactly one authenticated Admin
// API call whose outcome is either a rendered table or an inline error.
//
// A 401 from the Admin API ends the session: the cookie is cleared and the
// browser is sent to the login view. Any other failure (transport, non-success
// envelope, undecodable payload) renders "Error loading <items>" in place of
// the placeholder. Nothing is retried.
package loader

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/dalemusser/adminconsole/internal/app/adminapi"
	"github.com/dalemusser/adminconsole/internal/app/system/auditlog"
	"github.com/dalemusser/adminconsole/internal/app/system/auth"
	"github.com/dalemusser/adminconsole/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// ErrorSnippet is the shared template rendered for failed loads.
const ErrorSnippet = "load_error"

// ErrorData is the view model of ErrorSnippet.
type ErrorData struct {
	Message string
}

// Loader carries the collaborators of the load cycle.
type Loader struct {
	Sessions *auth.SessionManager
	Audit    *auditlog.Logger
	Log      *zap.Logger

	// RenderError writes the inline error fragment. Defaults to the
	// load_error snippet registered by this package.
	RenderError func(w http.ResponseWriter, r *http.Request, msg string)
}

// New builds a Loader that renders errors with the load_error snippet.
func New(sm *auth.SessionManager, audit *auditlog.Logger, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		Sessions:    sm,
		Audit:       audit,
		Log:         logger,
		RenderError: renderErrorSnippet,
	}
}

func renderErrorSnippet(w http.ResponseWriter, r *http.Request, msg string) {
	templates.RenderSnippet(w, ErrorSnippet, ErrorData{Message: msg})
}

// Call is one authenticated Admin API request.
type Call[T any] func(ctx context.Context, token string) (T, error)

// Fetch runs call with the session's token. It returns the value and true
// when the caller should render it; on false the response has already been
// written (redirect or inline error) or intentionally left empty because the
// client abandoned the request.
//
// items names the records for the error message ("users" → "Error loading
// users").
func Fetch[T any](l *Loader, w http.ResponseWriter, r *http.Request, items string, call Call[T]) (T, bool) {
	var zero T

	token, ok := auth.Token(r)
	if !ok {
		auth.RedirectToLogin(w, r, nil)
		return zero, false
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	v, err := call(ctx, token)
	if err == nil {
		return v, true
	}

	switch {
	case errors.Is(err, adminapi.ErrUnauthorized):
		l.Expire(w, r, items)

	case r.Context().Err() != nil:
		// Superseded (hx-sync replace) or the browser went away.
		l.Log.Debug("section load abandoned by client",
			zap.String("items", items),
			zap.Error(err))

	default:
		l.Log.Warn("section load failed",
			zap.String("items", items),
			zap.String("path", r.URL.Path),
			zap.Bool("transient", adminapi.IsTransient(err)),
			zap.Error(err))
		l.Error(w, r, "Error loading "+items)
	}
	return zero, false
}

// Error writes msg as the inline error fragment. The status stays 200 so
// htmx swaps it into the target.
func (l *Loader) Error(w http.ResponseWriter, r *http.Request, msg string) {
	render := l.RenderError
	if render == nil {
		render = renderErrorSnippet
	}
	render(w, r, msg)
}

// Expire ends the session after the Admin API rejected its token and sends
// the browser to the login view.
func (l *Loader) Expire(w http.ResponseWriter, r *http.Request, items string) {
	admin := ""
	if s, ok := auth.CurrentSession(r); ok {
		admin = s.AdminName
	}
	if l.Sessions != nil {
		if err := l.Sessions.SignOut(w, r); err != nil {
			l.Log.Error("clear expired session", zap.Error(err))
		}
	}
	l.Audit.SessionExpired(r, admin, items)
	auth.RedirectToLogin(w, r, url.Values{"expired": {"1"}})
}
