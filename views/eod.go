package views

import (
	"fmt"
	"math"
	"sort"
	"time"

	"timetrack/client"
)

// ReportDay normalizes a report_date to its calendar day: the first 10
// characters of the string.
func ReportDay(reportDate string) string {
	if len(reportDate) > 10 {
		return reportDate[:10]
	}
	return reportDate
}

// LatestPerDate keeps one report per calendar day, the one with the
// newest created_at, and returns them sorted by day descending. The
// server does not guarantee report_date uniqueness; this rule is the
// single authority on which duplicate wins, shared by list and detail.
func LatestPerDate(reports []client.EodReport) []client.EodReport {
	latest := make(map[string]client.EodReport)
	for _, report := range reports {
		day := ReportDay(report.ReportDate)
		current, ok := latest[day]
		if !ok || createdAfter(report.CreatedAt, current.CreatedAt) {
			latest[day] = report
		}
	}

	deduped := make([]client.EodReport, 0, len(latest))
	for _, report := range latest {
		deduped = append(deduped, report)
	}
	sort.Slice(deduped, func(i, j int) bool {
		return ReportDay(deduped[i].ReportDate) > ReportDay(deduped[j].ReportDate)
	})
	return deduped
}

// LatestForDate picks the authoritative report for one day using the
// same rule as LatestPerDate.
func LatestForDate(reports []client.EodReport, reportDate string) (client.EodReport, bool) {
	day := ReportDay(reportDate)
	var found client.EodReport
	ok := false
	for _, report := range reports {
		if ReportDay(report.ReportDate) != day {
			continue
		}
		if !ok || createdAfter(report.CreatedAt, found.CreatedAt) {
			found = report
			ok = true
		}
	}
	return found, ok
}

func createdAfter(a, b string) bool {
	ta, errA := NormalizeTimestamp(a)
	tb, errB := NormalizeTimestamp(b)
	if errA != nil || errB != nil {
		return a > b
	}
	return ta.After(tb)
}

// Total2 is the counted-cash residual: total1 minus cash and credit.
func Total2(report client.EodReport) float64 {
	return report.Total1 - (report.CashAmount + report.CreditAmount)
}

// VarianceLabel renders the total2 indicator: "exact" on a zero
// residual, "<amount> short" when positive, "<amount> more" when
// negative.
func VarianceLabel(total2 float64) string {
	switch {
	case total2 == 0:
		return "exact"
	case total2 > 0:
		return fmt.Sprintf("%.2f short", total2)
	default:
		return fmt.Sprintf("%.2f more", math.Abs(total2))
	}
}

// EodDetail is the derived detail view for one day's report.
type EodDetail struct {
	Report   client.EodReport
	Total2   float64
	Variance string
	Created  time.Time
}

func BuildEodDetail(reports []client.EodReport, reportDate string) (*EodDetail, bool) {
	report, ok := LatestForDate(reports, reportDate)
	if !ok {
		return nil, false
	}
	total2 := Total2(report)
	created, _ := NormalizeTimestamp(report.CreatedAt)
	return &EodDetail{
		Report:   report,
		Total2:   total2,
		Variance: VarianceLabel(total2),
		Created:  created,
	}, true
}
