// internal/app/features/users/types.go
package users

import (
	"github.com/dalemusser/adminconsole/internal/app/adminapi"
	"github.com/dalemusser/adminconsole/internal/app/system/format"
	"github.com/dalemusser/adminconsole/internal/app/system/loader"
)

// DatePrompt is shown by users-by-date until a valid day is chosen.
const DatePrompt = "Select a date to view users."

// userRow is one formatted account.
type userRow struct {
	ID       string
	Username string
	Email    string
	FullName string
	Wallet   string
	Videos   string
	Verified string
	Joined   string
}

// TableVM is the view model of the users_table snippet. Exactly one of
// Prompt, Empty and Rows is shown.
type TableVM struct {
	Rows   []userRow
	Empty  string
	Prompt string
	Total  string
}

// BuildTable formats users for display. An empty list yields the
// "No users found." message instead of rows.
func BuildTable(list []adminapi.User, empty string) TableVM {
	if len(list) == 0 {
		return TableVM{Empty: empty}
	}
	rows := make([]userRow, 0, len(list))
	for _, u := range list {
		rows = append(rows, userRow{
			ID:       u.ID.String(),
			Username: format.Text(u.Username.String()),
			Email:    format.Text(u.Email.String()),
			FullName: format.Text(u.FullName.String()),
			Wallet:   format.Money(u.WalletBalance.Float(), ""),
			Videos:   format.Count(u.VideoCount.Float()),
			Verified: format.YesNo(u.IsVerified.Value, u.IsVerified.Set),
			Joined:   format.Date(u.CreatedAt.String()),
		})
	}
	return TableVM{Rows: rows, Total: format.Count(float64(len(rows)))}
}

// promptTable asks for a date instead of showing results.
func promptTable() TableVM {
	return TableVM{Prompt: DatePrompt}
}

type listPanelData struct {
	Search  string
	Results loader.Placeholder
}

type byDatePanelData struct {
	Date     string
	AutoLoad bool
	Prompt   string
	Results  loader.Placeholder
}
