// internal/app/features/logout/routes.go
package logout

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts /logout. Only POST is served so the CSRF token guards it.
// Signing out is allowed without a loaded session so a stale or undecodable
// cookie can always be cleared.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.ServeLogout)
	return r
}
