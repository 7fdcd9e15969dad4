// internal/app/features/payments/types.go
package payments

import (
	"strings"

	"github.com/dalemusser/adminconsole/internal/app/adminapi"
	"github.com/dalemusser/adminconsole/internal/app/system/format"
	"github.com/dalemusser/adminconsole/internal/app/system/loader"
)

type paymentRow struct {
	ID        string
	Reference string
	Username  string
	Email     string
	Amount    string
	Method    string
	Status    string
	Date      string
}

// TableVM is the view model of the payments_table snippet.
type TableVM struct {
	Rows  []paymentRow
	Empty string
	Date  string
	Total string
}

// BuildTable formats payments for display. An empty list yields the empty
// message instead of rows.
func BuildTable(list []adminapi.Payment, empty, date string) TableVM {
	if len(list) == 0 {
		return TableVM{Empty: empty, Date: date}
	}
	rows := make([]paymentRow, 0, len(list))
	for _, p := range list {
		rows = append(rows, paymentRow{
			ID:        p.ID.String(),
			Reference: format.Text(p.Reference.String()),
			Username:  format.Text(p.User.GetUsername()),
			Email:     format.Text(p.User.GetEmail()),
			Amount:    format.Money(p.Amount.Float(), p.Currency.String()),
			Method:    paymentMethod(p.PaymentMethod.String()),
			Status:    format.Status(p.Status.String()),
			Date:      format.Date(p.CreatedAt.String()),
		})
	}
	return TableVM{Rows: rows, Date: date, Total: format.Count(float64(len(rows)))}
}

// paymentMethod turns "bank_transfer" into "bank transfer".
func paymentMethod(s string) string {
	return format.Text(strings.ReplaceAll(s, "_", " "))
}

type panelData struct {
	Date    string
	Results loader.Placeholder
}
