// internal/app/features/overview/types.go
package overview

import (
	"github.com/dalemusser/adminconsole/internal/app/adminapi"
	"github.com/dalemusser/adminconsole/internal/app/system/format"
	"github.com/dalemusser/adminconsole/internal/app/system/loader"
)

// NoRevenueMessage replaces an empty revenue-by-type table.
const NoRevenueMessage = "No revenue recorded for this period."

// TimeframeOption is one entry of the timeframe selector.
type TimeframeOption struct {
	Value    string
	Label    string
	Selected bool
}

// SummaryCard is one figure of the overview.
type SummaryCard struct {
	Label string
	Value string
	Tone  string // css modifier: "", "good", "warn", "bad"
}

type revenueRow struct {
	Type   string
	Amount string
	Count  string
}

// SelectorVM is the view model of the overview_selector snippet.
type SelectorVM struct {
	Options []TimeframeOption
	OOB     bool // rendered as an out-of-band swap next to the table
}

// VM is the view model of the overview_table snippet.
type VM struct {
	Timeframe    adminapi.Timeframe
	Label        string
	Selector     SelectorVM
	Revenue      []SummaryCard
	Payments     []SummaryCard
	RevenueRows  []revenueRow
	RevenueEmpty string
}

// Options builds the selector with selected marked.
func Options(selected adminapi.Timeframe) []TimeframeOption {
	out := make([]TimeframeOption, 0, len(adminapi.Timeframes))
	for _, tf := range adminapi.Timeframes {
		out = append(out, TimeframeOption{
			Value:    string(tf),
			Label:    tf.Label(),
			Selected: tf == selected,
		})
	}
	return out
}

// BuildOverview formats the financial overview. Missing figures show as 0.
func BuildOverview(ov adminapi.Overview) VM {
	d := ov.Data
	money := func(n adminapi.Number) string { return format.Money(n.Float(), "") }
	count := func(n adminapi.Number) string { return format.Count(n.Float()) }

	vm := VM{
		Timeframe: ov.Timeframe,
		Label:     ov.Timeframe.Label(),
		Selector:  SelectorVM{Options: Options(ov.Timeframe), OOB: true},
		Revenue: []SummaryCard{
			{Label: "Total Revenue", Value: money(d.TotalRevenue)},
			{Label: "Total Payouts", Value: money(d.TotalPayouts)},
			{Label: "Platform Fees", Value: money(d.PlatformFees)},
			{Label: "Net Revenue", Value: money(d.NetRevenue), Tone: tone(d.NetRevenue.Float())},
		},
		Payments: []SummaryCard{
			{Label: "Total Transactions", Value: count(d.TotalTransactions)},
			{Label: "Successful Payments", Value: count(d.SuccessfulPayments), Tone: "good"},
			{Label: "Pending Payments", Value: count(d.PendingPayments), Tone: "warn"},
			{Label: "Failed Payments", Value: count(d.FailedPayments), Tone: "bad"},
			{Label: "Active Creator Passes", Value: count(d.ActiveCreatorPasses)},
		},
	}

	for _, line := range d.RevenueByType {
		vm.RevenueRows = append(vm.RevenueRows, revenueRow{
			Type:   format.Text(line.Type.String()),
			Amount: money(line.Amount),
			Count:  count(line.Count),
		})
	}
	if len(vm.RevenueRows) == 0 {
		vm.RevenueEmpty = NoRevenueMessage
	}
	return vm
}

func tone(v float64) string {
	if v < 0 {
		return "bad"
	}
	return ""
}

type panelData struct {
	Selector SelectorVM
	Results  loader.Placeholder
}
