// internal/app/features/creatorpasses/types.go
package creatorpasses

import (
	"github.com/dalemusser/adminconsole/internal/app/adminapi"
	"github.com/dalemusser/adminconsole/internal/app/system/format"
	"github.com/dalemusser/adminconsole/internal/app/system/loader"
)

type passRow struct {
	ID              string
	Creator         string
	CreatorEmail    string
	Subscriber      string
	SubscriberEmail string
	Price           string
	Status          string
	Started         string
	Expires         string
	Created         string
}

// TableVM is the view model of the creator_passes_table snippet.
type TableVM struct {
	Rows   []passRow
	Empty  string
	Search string
	Total  string
}

// BuildTable formats creator passes for display. An empty list yields the
// empty message instead of rows.
func BuildTable(list []adminapi.CreatorPass, empty, search string) TableVM {
	if len(list) == 0 {
		return TableVM{Empty: empty, Search: search}
	}
	rows := make([]passRow, 0, len(list))
	for _, p := range list {
		rows = append(rows, passRow{
			ID:              p.ID.String(),
			Creator:         format.Text(p.Creator.GetUsername()),
			CreatorEmail:    format.Text(p.Creator.GetEmail()),
			Subscriber:      format.Text(p.Subscriber.GetUsername()),
			SubscriberEmail: format.Text(p.Subscriber.GetEmail()),
			Price:           format.Money(p.Price.Float(), p.Currency.String()),
			Status:          format.Status(p.Status.String()),
			Started:         format.Date(p.StartDate.String()),
			Expires:         format.Date(p.ExpiresAt.String()),
			Created:         format.Date(p.CreatedAt.String()),
		})
	}
	return TableVM{Rows: rows, Search: search, Total: format.Count(float64(len(rows)))}
}

type panelData struct {
	Search  string
	Results loader.Placeholder
}
