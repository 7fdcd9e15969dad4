// internal/app/features/creatorpasses/list.go
package creatorpasses

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/dalemusser/adminconsole/internal/app/adminapi"
	"github.com/dalemusser/adminconsole/internal/app/system/loader"
	"github.com/dalemusser/adminconsole/internal/app/system/section"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
)

// ServePanel handles GET /creator-passes/panel.
func (h *Handler) ServePanel(w http.ResponseWriter, r *http.Request) {
	search := strings.TrimSpace(query.Get(r, "search"))
	templates.RenderSnippet(w, "creator_passes_panel", panelData{
		Search:  search,
		Results: loader.NewPlaceholder(section.CreatorPasses.TablePath(), url.Values{"search": {search}}, section.CreatorPasses.Items()),
	})
}

// ServeTable handles GET /creator-passes/table[?search=].
func (h *Handler) ServeTable(w http.ResponseWriter, r *http.Request) {
	search := strings.TrimSpace(query.Get(r, "search"))

	list, ok := loader.Fetch(h.Loader, w, r, section.CreatorPasses.Items(),
		func(ctx context.Context, token string) ([]adminapi.CreatorPass, error) {
			return h.API.CreatorPasses(ctx, token, search)
		})
	if !ok {
		return
	}
	templates.RenderSnippet(w, "creator_passes_table", BuildTable(list, section.CreatorPasses.EmptyMessage(), search))
}
