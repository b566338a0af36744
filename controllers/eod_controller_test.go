package controllers

import (
	"reflect"
	"testing"
	"time"

	"timetrack/models"
)

func clockIn(store, name, day string, hour int) models.TimeclockEntry {
	t, _ := time.ParseInLocation("2006-01-02", day, time.UTC)
	return models.TimeclockEntry{
		StoreID:      store,
		EmployeeName: name,
		ClockIn:      t.Add(time.Duration(hour) * time.Hour),
	}
}

func TestGroupEmployeesByDay(t *testing.T) {
	entries := []models.TimeclockEntry{
		clockIn("Lawrence", "Zoe", "2025-01-15", 9),
		clockIn("Lawrence", "Alice", "2025-01-15", 10),
		clockIn("Lawrence", "Alice", "2025-01-15", 16), // second shift, same day
		clockIn("Lawrence", "Bob", "2025-01-16", 9),
		clockIn("Oakville", "Carol", "2025-01-15", 9),
		clockIn("Lawrence", "", "2025-01-15", 11), // nameless entry ignored
	}

	grouped := groupEmployeesByDay(entries)

	want := []string{"Alice", "Zoe"}
	if got := grouped["Lawrence"]["2025-01-15"]; !reflect.DeepEqual(got, want) {
		t.Errorf("Lawrence 2025-01-15 = %v, want %v (distinct, sorted)", got, want)
	}
	if got := grouped["Lawrence"]["2025-01-16"]; !reflect.DeepEqual(got, []string{"Bob"}) {
		t.Errorf("Lawrence 2025-01-16 = %v", got)
	}
	if got := grouped["Oakville"]["2025-01-15"]; !reflect.DeepEqual(got, []string{"Carol"}) {
		t.Errorf("Oakville 2025-01-15 = %v", got)
	}
	if got := grouped["Lawrence"]["2025-01-17"]; got != nil {
		t.Errorf("empty day produced %v", got)
	}
}

func TestGroupEmployeesByDayUsesUTCDay(t *testing.T) {
	// 23:30 on the 15th in a +10:00 zone is still the 15th at 13:30 UTC.
	loc := time.FixedZone("ahead", 10*3600)
	entry := models.TimeclockEntry{
		StoreID:      "Lawrence",
		EmployeeName: "Alice",
		ClockIn:      time.Date(2025, 1, 15, 23, 30, 0, 0, loc),
	}
	grouped := groupEmployeesByDay([]models.TimeclockEntry{entry})
	if got := grouped["Lawrence"]["2025-01-15"]; len(got) != 1 {
		t.Errorf("entry bucketed as %v, want under 2025-01-15", grouped["Lawrence"])
	}
}

func TestReportDateDay(t *testing.T) {
	if got := reportDateDay("2025-01-15T00:00:00"); got != "2025-01-15" {
		t.Errorf("long date = %q", got)
	}
	if got := reportDateDay("2025-01-15"); got != "2025-01-15" {
		t.Errorf("short date = %q", got)
	}
}
