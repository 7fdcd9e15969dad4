// internal/app/features/overview/overview.go
package overview

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dalemusser/adminconsole/internal/app/adminapi"
	"github.com/dalemusser/adminconsole/internal/app/system/loader"
	"github.com/dalemusser/adminconsole/internal/app/system/section"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// timeframe reads ?timeframe=, normalising unknown values to all.
func (h *Handler) timeframe(r *http.Request) adminapi.Timeframe {
	raw := query.Get(r, "timeframe")
	tf, ok := adminapi.ParseTimeframe(raw)
	if !ok && raw != "" {
		h.Log.Debug("unknown timeframe, using all", zap.String("timeframe", raw))
	}
	return tf
}

// ServePanel handles GET /overview/panel: the timeframe selector and a
// placeholder that loads the figures for the selected window.
func (h *Handler) ServePanel(w http.ResponseWriter, r *http.Request) {
	tf := h.timeframe(r)
	templates.RenderSnippet(w, "overview_panel", panelData{
		Selector: SelectorVM{Options: Options(tf)},
		Results:  loader.NewPlaceholder(section.Overview.TablePath(), url.Values{"timeframe": {string(tf)}}, section.Overview.Items()),
	})
}

// ServeTable handles GET /overview/table?timeframe=. The timeframe goes to
// the Admin API as given; the selector is re-rendered with the window the
// figures actually cover.
func (h *Handler) ServeTable(w http.ResponseWriter, r *http.Request) {
	tf := h.timeframe(r)

	ov, ok := loader.Fetch(h.Loader, w, r, section.Overview.Items(),
		func(ctx context.Context, token string) (adminapi.Overview, error) {
			return h.API.FinancialOverview(ctx, token, tf)
		})
	if !ok {
		return
	}
	templates.RenderSnippet(w, "overview_table", BuildOverview(ov))
}
