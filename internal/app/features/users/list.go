// internal/app/features/users/list.go
package users

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/dalemusser/adminconsole/internal/app/adminapi"
	"github.com/dalemusser/adminconsole/internal/app/system/format"
	"github.com/dalemusser/adminconsole/internal/app/system/loader"
	"github.com/dalemusser/adminconsole/internal/app/system/section"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
)

/*─────────────────────────────────────────────────────────────────────────────*
| users                                                                       |
*─────────────────────────────────────────────────────────────────────────────*/

// ServePanel handles GET /users/panel: the search box plus a placeholder
// that loads the table at once.
func (h *Handler) ServePanel(w http.ResponseWriter, r *http.Request) {
	search := strings.TrimSpace(query.Get(r, "search"))
	templates.RenderSnippet(w, "users_panel", listPanelData{
		Search:  search,
		Results: loader.NewPlaceholder(section.Users.TablePath(), url.Values{"search": {search}}, section.Users.Items()),
	})
}

// ServeTable handles GET /users/table[?search=].
func (h *Handler) ServeTable(w http.ResponseWriter, r *http.Request) {
	search := strings.TrimSpace(query.Get(r, "search"))

	list, ok := loader.Fetch(h.Loader, w, r, section.Users.Items(),
		func(ctx context.Context, token string) ([]adminapi.User, error) {
			return h.API.Users(ctx, token, search)
		})
	if !ok {
		return
	}
	templates.RenderSnippet(w, "users_table", BuildTable(list, section.Users.EmptyMessage()))
}

/*─────────────────────────────────────────────────────────────────────────────*
| users by signup date                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

// ServeByDatePanel handles GET /users-by-date/panel. Without a valid day it
// shows the date prompt and loads nothing.
func (h *Handler) ServeByDatePanel(w http.ResponseWriter, r *http.Request) {
	data := byDatePanelData{Prompt: DatePrompt}
	if day, ok := format.ParseDay(query.Get(r, "date")); ok {
		data.Date = day
		data.AutoLoad = true
		data.Results = loader.NewPlaceholder(section.UsersByDate.TablePath(), url.Values{"date": {day}}, section.UsersByDate.Items())
	}
	templates.RenderSnippet(w, "users_by_date_panel", data)
}

// ServeByDateTable handles GET /users-by-date/table?date=YYYY-MM-DD.
func (h *Handler) ServeByDateTable(w http.ResponseWriter, r *http.Request) {
	day, valid := format.ParseDay(query.Get(r, "date"))
	if !valid {
		templates.RenderSnippet(w, "users_table", promptTable())
		return
	}

	list, ok := loader.Fetch(h.Loader, w, r, section.UsersByDate.Items(),
		func(ctx context.Context, token string) ([]adminapi.User, error) {
			return h.API.UsersByDate(ctx, token, day)
		})
	if !ok {
		return
	}
	templates.RenderSnippet(w, "users_table", BuildTable(list, section.UsersByDate.EmptyMessage()))
}
