// internal/app/features/users/routes.go
package users

import (
	"github.com/dalemusser/adminconsole/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the users section (typically at "/users").
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Get("/panel", h.ServePanel)
		pr.Get("/table", h.ServeTable)
	})
	return r
}

// ByDateRoutes mounts the users-by-date section (typically at
// "/users-by-date").
func ByDateRoutes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Get("/panel", h.ServeByDatePanel)
		pr.Get("/table", h.ServeByDateTable)
	})
	return r
}
