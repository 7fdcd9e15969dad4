// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"github.com/dalemusser/adminconsole/internal/app/system/auditlog"
	"github.com/dalemusser/adminconsole/internal/app/system/auth"
	"go.uber.org/zap"
)

type Handler struct {
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	Audit      *auditlog.Logger
}

func NewHandler(sessionMgr *auth.SessionManager, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Log:        logger,
		SessionMgr: sessionMgr,
		Audit:      audit,
	}
}

// ServeLogout handles POST /logout. The token is only forgotten by
// this app; the Admin API has no logout endpoint to call.
func (h *Handler) ServeLogout(w http.ResponseWriter, r *http.Request) {
	admin := ""
	if s, ok := auth.CurrentSession(r); ok {
		admin = s.AdminName
	}

	if err := h.SessionMgr.SignOut(w, r); err != nil {
		h.Log.Error("logout: save session", zap.Error(err))
	}
	h.Audit.Logout(r, admin)

	auth.Redirect(w, r, auth.LoginPath)
}
