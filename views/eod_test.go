package views

import (
	"testing"

	"timetrack/client"
)

func TestLatestPerDatePicksNewestCreatedAt(t *testing.T) {
	older := client.EodReport{ReportDate: "2025-01-15", CreatedAt: "2025-01-15T18:00:00", Total1: 100}
	newer := client.EodReport{ReportDate: "2025-01-15", CreatedAt: "2025-01-15T22:30:00", Total1: 200}
	other := client.EodReport{ReportDate: "2025-01-14", CreatedAt: "2025-01-14T20:00:00", Total1: 50}

	deduped := LatestPerDate([]client.EodReport{older, newer, other})
	if len(deduped) != 2 {
		t.Fatalf("got %d reports, want 2", len(deduped))
	}
	// Sorted by date descending.
	if deduped[0].Total1 != 200 {
		t.Errorf("list picked total1=%v for 2025-01-15, want the newer report (200)", deduped[0].Total1)
	}
	if deduped[1].ReportDate != "2025-01-14" {
		t.Errorf("second entry = %s, want 2025-01-14", deduped[1].ReportDate)
	}

	// The detail path must agree with the list path.
	detail, ok := LatestForDate([]client.EodReport{newer, older}, "2025-01-15")
	if !ok || detail.Total1 != 200 {
		t.Errorf("detail picked total1=%v, want 200", detail.Total1)
	}
}

func TestLatestPerDateNormalizesLongDates(t *testing.T) {
	a := client.EodReport{ReportDate: "2025-01-15T00:00:00", CreatedAt: "2025-01-15T18:00:00"}
	b := client.EodReport{ReportDate: "2025-01-15", CreatedAt: "2025-01-15T22:00:00"}

	deduped := LatestPerDate([]client.EodReport{a, b})
	if len(deduped) != 1 {
		t.Fatalf("got %d reports, want 1 (same calendar day)", len(deduped))
	}
	if deduped[0].CreatedAt != b.CreatedAt {
		t.Errorf("kept %s, want the newer created_at", deduped[0].CreatedAt)
	}
}

func TestTotal2AndVariance(t *testing.T) {
	report := client.EodReport{Total1: 100, CashAmount: 40, CreditAmount: 30}
	total2 := Total2(report)
	if total2 != 30 {
		t.Fatalf("Total2 = %v, want 30", total2)
	}
	if got := VarianceLabel(total2); got != "30.00 short" {
		t.Errorf("VarianceLabel = %q, want \"30.00 short\"", got)
	}

	if got := VarianceLabel(0); got != "exact" {
		t.Errorf("VarianceLabel(0) = %q, want exact", got)
	}
	if got := VarianceLabel(-12.5); got != "12.50 more" {
		t.Errorf("VarianceLabel(-12.5) = %q, want \"12.50 more\"", got)
	}
}

func TestBuildEodDetail(t *testing.T) {
	reports := []client.EodReport{
		{ReportDate: "2025-01-15", CreatedAt: "2025-01-15T20:00:00", Total1: 100, CashAmount: 60, CreditAmount: 40},
	}
	detail, ok := BuildEodDetail(reports, "2025-01-15")
	if !ok {
		t.Fatal("BuildEodDetail found nothing")
	}
	if detail.Total2 != 0 || detail.Variance != "exact" {
		t.Errorf("detail = total2 %v, variance %q", detail.Total2, detail.Variance)
	}

	if _, ok := BuildEodDetail(reports, "2025-01-16"); ok {
		t.Error("BuildEodDetail matched a day with no report")
	}
}
