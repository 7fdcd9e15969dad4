// internal/app/features/transactions/list.go
package transactions

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

// ServePanel handles GET /transactions/panel.
func (h *Handler) ServePanel(w http.ResponseWriter, r *http.Request) {
	date := h.dateFilter(r)
	templates.RenderSnippet(w, "transactions_panel", panelData{
		Date:    date,
		Results: loader.NewPlaceholder(section.Transactions.TablePath(), url.Values{"date": {date}}, section.Transactions.Items()),
	})
}

// ServeTable handles GET /transactions/table[?date=YYYY-MM-DD].
func (h *Handler) ServeTable(w http.ResponseWriter, r *http.Request) {
	date := h.dateFilter(r)

	list, ok := loader.Fetch(h.Loader, w, r, section.Transactions.Items(),
		func(ctx context.Context, token string) ([]adminapi.Transaction, error) {
			return h.API.Transactions(ctx, token, date)
		})
	if !ok {
		return
	}
	templates.RenderSnippet(w, "transactions_table", BuildTable(list, section.Transactions.EmptyMessage(), date))
}
