// internal/app/features/transactions/types.go
package transactions

import (
	"github.com/dalemusser/adminconsole/internal/app/adminapi"
	"github.com/dalemusser/adminconsole/internal/app/system/format"
	"github.com/dalemusser/adminconsole/internal/app/system/loader"
)

type transactionRow struct {
	ID          string
	Reference   string
	Username    string
	Email       string
	Type        string
	Amount      string
	Status      string
	Description string
	Date        string
}

// TableVM is the view model of the transactions_table snippet.
type TableVM struct {
	Rows  []transactionRow
	Empty string
	Date  string
	Total string
}

// BuildTable formats transactions for display. An empty list yields the
// empty message instead of rows.
func BuildTable(list []adminapi.Transaction, empty, date string) TableVM {
	if len(list) == 0 {
		return TableVM{Empty: empty, Date: date}
	}
	rows := make([]transactionRow, 0, len(list))
	for _, t := range list {
		rows = append(rows, transactionRow{
			ID:          t.ID.String(),
			Reference:   format.Text(t.Reference.String()),
			Username:    format.Text(t.User.GetUsername()),
			Email:       format.Text(t.User.GetEmail()),
			Type:        format.Text(t.Type.String()),
			Amount:      format.Money(t.Amount.Float(), t.Currency.String()),
			Status:      format.Status(t.Status.String()),
			Description: format.Text(t.Description.String()),
			Date:        format.Date(t.CreatedAt.String()),
		})
	}
	return TableVM{Rows: rows, Date: date, Total: format.Count(float64(len(rows)))}
}

type panelData struct {
	Date    string
	Results loader.Placeholder
}
