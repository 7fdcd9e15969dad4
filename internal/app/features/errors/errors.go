// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/adminconsole/internal/app/system/auth"
	"github.com/dalemusser/adminconsole/internal/app/system/loader"
	"github.com/dalemusser/adminconsole/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// pageData is the basic view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Message string
	BackURL string
}

// Handler is the errors feature handler.
// No backend needed; it just renders templates.
type Handler struct {
	Log *zap.Logger
}

// NewHandler constructs an errors Handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// NotFound renders the not-found page. htmx requests get the inline error
// snippet instead so a stray fragment request never swaps a full page in.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.Log.Debug("not found",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)

	if auth.IsHTMX(r) {
		templates.RenderSnippet(w, loader.ErrorSnippet, loader.ErrorData{Message: "Not found"})
		return
	}

	back := "/login"
	if _, ok := auth.CurrentSession(r); ok {
		back = "/dashboard"
	}
	templates.Render(w, r, "error_not_found", pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Not found"),
		Message: "The page you are looking for does not exist.",
		BackURL: back,
	})
}
