package dashboard

import (
	"github.com/dalemusser/adminconsole/internal/app/adminapi"
	"github.com/dalemusser/adminconsole/internal/app/system/format"
)

// StatCard is one headline counter.
type StatCard struct {
	Label string
	Value string
}

// StatsVM is the view model of the dashboard_stats snippet.
type StatsVM struct {
	Cards []StatCard
}

// BuildStats formats the counters; absent values show as 0.
func BuildStats(s adminapi.Stats) StatsVM {
	return StatsVM{Cards: []StatCard{
		{Label: "Total Users", Value: format.Count(s.TotalUsers.Float())},
		{Label: "Total Transactions", Value: format.Count(s.TotalTransactions.Float())},
		{Label: "Total Revenue", Value: format.Money(s.TotalRevenue.Float(), "")},
		{Label: "Total Videos", Value: format.Count(s.TotalVideos.Float())},
	}}
}
