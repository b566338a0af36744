package client

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTimeclockHistoryQuery(t *testing.T) {
	var gotPath, gotStore, gotDays string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotStore = r.URL.Query().Get("store_id")
		gotDays = r.URL.Query().Get("days")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"entry_id":"e1","employee_name":"Alice","clock_in":"2026-08-28T09:00:00Z","hours_worked":8.5,"status":"clocked_out"},
			{"entry_id":"e2","employee_name":"Bob","clock_in":"2026-08-29T10:00:00Z","status":"clocked_in"}
		]`))
	}))
	defer server.Close()

	c := New(server.URL)
	entries, err := c.TimeclockHistory("Lawrence", 7)
	if err != nil {
		t.Fatalf("TimeclockHistory: %v", err)
	}
	if gotPath != "/timeclock/history" || gotStore != "Lawrence" || gotDays != "7" {
		t.Errorf("request = %s?store_id=%s&days=%s", gotPath, gotStore, gotDays)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].EmployeeName != "Alice" || entries[0].HoursWorked == nil || *entries[0].HoursWorked != 8.5 {
		t.Errorf("first entry = %+v", entries[0])
	}
	if entries[1].HoursWorked != nil {
		t.Error("open entry should have nil hours")
	}
}
