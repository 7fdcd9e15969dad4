package home

import (
	"net/http"

	"github.com/dalemusser/adminconsole/internal/app/system/auth"
	"go.uber.org/zap"
)

// Handler serves the landing route. There is no landing page: the root only
// decides between the login view and the dashboard.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{
		Log: logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.CurrentSession(r); ok {
		auth.Redirect(w, r, "/dashboard")
		return
	}
	auth.Redirect(w, r, auth.LoginPath)
}
