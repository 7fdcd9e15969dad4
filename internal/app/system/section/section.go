// Package section enumerates the dashboard's views. Exactly one section is
// active at a time; activating one triggers its load except for
// users-by-date, which waits for a date.
package section

import "strings"

// Section identifies one tab of the dashboard.
type Section string

const (
	Users         Section = "users"
	UsersByDate   Section = "users-by-date"
	Transactions  Section = "transactions"
	Payments      Section = "payments"
	CreatorPasses Section = "creator-passes"
	Overview      Section = "overview"
)

// Default is shown when no section is requested.
const Default = Users

// All lists sections in tab order.
var All = []Section{Users, UsersByDate, Transactions, Payments, CreatorPasses, Overview}

var titles = map[Section]string{
	Users:         "Users",
	UsersByDate:   "Users by Date",
	Transactions:  "Transactions",
	Payments:      "Payments",
	CreatorPasses: "Creator Passes",
	Overview:      "Financial Overview",
}

// items is the plural noun used in "No <items> found." and
// "Error loading <items>".
var items = map[Section]string{
	Users:         "users",
	UsersByDate:   "users",
	Transactions:  "transactions",
	Payments:      "payments",
	CreatorPasses: "creator passes",
	Overview:      "financial overview",
}

// Parse returns the section named by s. Unknown names yield Default, false.
func Parse(s string) (Section, bool) {
	sec := Section(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := titles[sec]; ok {
		return sec, true
	}
	return Default, false
}

// Title is the tab label.
func (s Section) Title() string { return titles[s] }

// Items is the plural noun for the section's records.
func (s Section) Items() string { return items[s] }

// AutoLoad reports whether activating the section fetches immediately.
func (s Section) AutoLoad() bool { return s != UsersByDate }

// PanelPath is the URL of the section's panel fragment.
func (s Section) PanelPath() string { return "/" + string(s) + "/panel" }

// TablePath is the URL of the section's data fragment.
func (s Section) TablePath() string { return "/" + string(s) + "/table" }

// PagePath is the full-page URL with the section active.
func (s Section) PagePath() string { return "/dashboard?section=" + string(s) }

// EmptyMessage is shown instead of an empty table.
func (s Section) EmptyMessage() string { return "No " + s.Items() + " found." }

// Tab is one entry of the tab bar.
type Tab struct {
	Section   Section
	Title     string
	PanelPath string
	PagePath  string
	Active    bool
}

// Tabs builds the tab bar with active marked.
func Tabs(active Section) []Tab {
	tabs := make([]Tab, 0, len(All))
	for _, s := range All {
		tabs = append(tabs, Tab{
			Section:   s,
			Title:     s.Title(),
			PanelPath: s.PanelPath(),
			PagePath:  s.PagePath(),
			Active:    s == active,
		})
	}
	return tabs
}
