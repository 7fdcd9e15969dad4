// internal/app/features/payments/list.go
package payments

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dalemusser/adminconsole/internal/app/adminapi"
	"github.com/dalemusser/adminconsole/internal/app/system/format"
	"github.com/dalemusser/adminconsole/internal/app/system/loader"
	"github.com/dalemusser/adminconsole/internal/app/system/section"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// dateFilter returns the requested day, dropping a malformed one.
func (h *Handler) dateFilter(r *http.Request) string {
	raw := query.Get(r, "date")
	if raw == "" {
		return ""
	}
	day, ok := format.ParseDay(raw)
	if !ok {
		h.Log.Debug("ignoring malformed date filter", zap.String("date", raw))
		return ""
	}
	return day
}

// ServePanel handles GET /payments/panel.
func (h *Handler) ServePanel(w http.ResponseWriter, r *http.Request) {
	date := h.dateFilter(r)
	templates.RenderSnippet(w, "payments_panel", panelData{
		Date:    date,
		Results: loader.NewPlaceholder(section.Payments.TablePath(), url.Values{"date": {date}}, section.Payments.Items()),
	})
}

// ServeTable handles GET /payments/table[?date=YYYY-MM-DD].
func (h *Handler) ServeTable(w http.ResponseWriter, r *http.Request) {
	date := h.dateFilter(r)

	list, ok := loader.Fetch(h.Loader, w, r, section.Payments.Items(),
		func(ctx context.Context, token string) ([]adminapi.Payment, error) {
			return h.API.Payments(ctx, token, date)
		})
	if !ok {
		return
	}
	templates.RenderSnippet(w, "payments_table", BuildTable(list, section.Payments.EmptyMessage(), date))
}
