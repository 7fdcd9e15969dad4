// internal/app/features/transactions/routes.go
package transactions

import (
	"github.com/dalemusser/adminconsole/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the transactions section (typically at "/transactions").
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Get("/panel", h.ServePanel)
		pr.Get("/table", h.ServeTable)
	})
	return r
}
