// internal/app/adminapi/timeframe.go
package adminapi

import "strings"

// Timeframe selects the window of the financial overview.
type Timeframe string

const (
	TimeframeAll     Timeframe = "all"
	Timeframe7Days   Timeframe = "7d"
	Timeframe30Days  Timeframe = "30d"
	Timeframe90Days  Timeframe = "90d"
	TimeframeOneYear Timeframe = "1y"
)

// Timeframes lists the accepted values in display order.
var Timeframes = []Timeframe{TimeframeAll, Timeframe7Days, Timeframe30Days, Timeframe90Days, TimeframeOneYear}

var timeframeLabels = map[Timeframe]string{
	TimeframeAll:     "All time",
	Timeframe7Days:   "Last 7 days",
	Timeframe30Days:  "Last 30 days",
	Timeframe90Days:  "Last 90 days",
	TimeframeOneYear: "Last year",
}

// ParseTimeframe returns the timeframe named by s and whether s was one of
// the accepted values. Unknown or empty input yields TimeframeAll.
func ParseTimeframe(s string) (Timeframe, bool) {
	tf := Timeframe(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := timeframeLabels[tf]; ok {
		return tf, true
	}
	return TimeframeAll, false
}

// Label is the human readable name of the timeframe.
func (t Timeframe) Label() string {
	if l, ok := timeframeLabels[t]; ok {
		return l
	}
	return timeframeLabels[TimeframeAll]
}
