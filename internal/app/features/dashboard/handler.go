// internal/app/features/dashboard/handler.go
package dashboard

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dalemusser/adminconsole/internal/app/adminapi"
	"github.com/dalemusser/adminconsole/internal/app/system/loader"
	"github.com/dalemusser/adminconsole/internal/app/system/section"
	"github.com/dalemusser/adminconsole/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// StatsPath is the URL of the headline counters fragment.
const StatsPath = "/dashboard/stats"

// workspaceTarget is the id of the element holding the tab bar and the
// active section; tab clicks swap only this part of the page.
const workspaceTarget = "workspace"

// filterKeys are the query parameters a section panel understands. They are
// passed through from the page URL so a bookmarked filter survives reload.
var filterKeys = []string{"search", "date", "timeframe"}

// StatsAPI fetches the headline counters.
type StatsAPI interface {
	Stats(ctx context.Context, token string) (adminapi.Stats, error)
}

type Handler struct {
	API    StatsAPI
	Loader *loader.Loader
	Log    *zap.Logger
}

func NewHandler(api StatsAPI, ld *loader.Loader, logger *zap.Logger) *Handler {
	return &Handler{
		API:    api,
		Loader: ld,
		Log:    logger,
	}
}

type workspaceData struct {
	Tabs   []section.Tab
	Active section.Section
	Panel  loader.Placeholder
}

type dashboardData struct {
	viewdata.BaseVM
	workspaceData
	Stats loader.Placeholder
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /dashboard?section=                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeDashboard renders the shell: stats placeholder, tab bar and the active
// section's panel placeholder. An unknown section falls back to users.
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	ws := buildWorkspace(r)

	if r.Header.Get("HX-Request") != "" && r.Header.Get("HX-Target") == workspaceTarget {
		templates.RenderSnippet(w, "dashboard_workspace", ws)
		return
	}

	templates.Render(w, r, "dashboard", dashboardData{
		BaseVM:        viewdata.NewBaseVM(r, ws.Active.Title()),
		workspaceData: ws,
		Stats:         loader.NewPlaceholder(StatsPath, nil, "stats"),
	})
}

func buildWorkspace(r *http.Request) workspaceData {
	active, _ := section.Parse(query.Get(r, "section"))

	filters := url.Values{}
	for _, k := range filterKeys {
		if v := query.Get(r, k); v != "" {
			filters.Set(k, v)
		}
	}

	return workspaceData{
		Tabs:   section.Tabs(active),
		Active: active,
		Panel:  loader.NewPlaceholder(active.PanelPath(), filters, active.Items()),
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /dashboard/stats                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeStats fetches the headline counters and renders the four cards.
func (h *Handler) ServeStats(w http.ResponseWriter, r *http.Request) {
	stats, ok := loader.Fetch(h.Loader, w, r, "stats", h.API.Stats)
	if !ok {
		return
	}
	templates.RenderSnippet(w, "dashboard_stats", BuildStats(stats))
}
