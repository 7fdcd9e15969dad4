// internal/app/features/login/handler.go
package login

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dalemusser/adminconsole/internal/app/adminapi"
	"github.com/dalemusser/adminconsole/internal/app/system/auditlog"
	"github.com/dalemusser/adminconsole/internal/app/system/auth"
	"github.com/dalemusser/adminconsole/internal/app/system/navigation"
	"github.com/dalemusser/adminconsole/internal/app/system/ratelimit"
	"github.com/dalemusser/adminconsole/internal/app/system/timeouts"
	"github.com/dalemusser/adminconsole/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Messages shown on the login form.
const (
	msgMissingFields = "Please enter your username and password."
	msgThrottled     = "Too many login attempts. Please wait and try again."
	msgRejected      = "Login failed"
	msgUnavailable   = "Login failed. Please try again."
	msgExpired       = "Your session has expired. Please sign in again."
)

// Authenticator exchanges admin credentials for a bearer token.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, error)
}

type Handler struct {
	API        Authenticator
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	Limiter    *ratelimit.LoginLimiter
	AuditLog   *auditlog.Logger

	render func(w http.ResponseWriter, r *http.Request, data loginFormData)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Template-data                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

type loginFormData struct {
	viewdata.BaseVM
	Error     string
	Notice    string
	Username  string // what the admin typed, redisplayed after a failure
	ReturnURL string
}

func NewHandler(
	api Authenticator,
	sessionMgr *auth.SessionManager,
	limiter *ratelimit.LoginLimiter,
	audit *auditlog.Logger,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		API:        api,
		Log:        logger,
		SessionMgr: sessionMgr,
		Limiter:    limiter,
		AuditLog:   audit,
		render:     renderLogin,
	}
}

func renderLogin(w http.ResponseWriter, r *http.Request, data loginFormData) {
	templates.Render(w, r, "login", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /login                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	// A stored token skips the form.
	if _, ok := auth.CurrentSession(r); ok {
		auth.Redirect(w, r, navigation.SafeBackURL(r, navigation.DashboardReturn))
		return
	}

	data := loginFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Sign in"),
		ReturnURL: query.Get(r, "return"),
	}
	if query.Get(r, "expired") == "1" {
		data.Notice = msgExpired
	}
	h.render(w, r, data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /login                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Log.Warn("login: parse form failed", zap.Error(err))
		h.renderFormWithError(w, r, msgUnavailable, "")
		return
	}

	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		h.renderFormWithError(w, r, msgMissingFields, username)
		return
	}

	if h.Limiter != nil && !h.Limiter.Check(r, username) {
		h.AuditLog.LoginThrottled(r, username)
		h.Log.Warn("login rate limited",
			zap.String("ip", h.Limiter.ClientIP(r)),
			zap.String("username", username))
		h.renderFormWithError(w, r, msgThrottled, username)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	token, err := h.API.Login(ctx, username, password)
	if err != nil {
		msg := loginErrorMessage(err)
		h.AuditLog.LoginFailure(r, username, msg)
		h.Log.Info("login failed",
			zap.String("username", username),
			zap.Bool("transient", adminapi.IsTransient(err)),
			zap.Error(err))
		h.renderFormWithError(w, r, msg, username)
		return
	}

	if err := h.SessionMgr.SignIn(w, r, token); err != nil {
		h.Log.Error("login: store session", zap.Error(err))
		h.renderFormWithError(w, r, msgUnavailable, username)
		return
	}
	if h.Limiter != nil {
		h.Limiter.Succeeded(username)
	}
	h.AuditLog.LoginSuccess(r, username)

	auth.Redirect(w, r, navigation.SafeBackURL(r, navigation.DashboardReturn))
}

// loginErrorMessage maps a failed Login call to the text shown on the form.
// The server's own message wins; a rejection without one reads "Login
// failed"; transport trouble and unreadable answers ask the admin to retry.
func loginErrorMessage(err error) string {
	if msg, ok := adminapi.MessageOf(err); ok {
		return msg
	}
	var apiErr *adminapi.APIError
	if errors.As(err, &apiErr) && apiErr.Status < http.StatusInternalServerError {
		return msgRejected
	}
	return msgUnavailable
}

/*─────────────────────────────────────────────────────────────────────────────*
| helper: render the form with an error                                       |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) renderFormWithError(w http.ResponseWriter, r *http.Request, msg, username string) {
	// From POST, "return" will be in the form; from GET, we might rely on the query.
	ret := strings.TrimSpace(r.FormValue("return"))
	if ret == "" {
		ret = query.Get(r, "return")
	}

	h.render(w, r, loginFormData{
		BaseVM:    viewdata.NewBaseVM(r, "Sign in"),
		Error:     msg,
		Username:  username,
		ReturnURL: ret,
	})
}
