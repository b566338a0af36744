package views

import (
	"errors"
	"testing"

	"timetrack/client"
)

type fakeStoreAPI struct {
	roster     *client.TodayRoster
	rosterErr  error
	items      []client.InventoryItem
	itemsErr   error
	history    []client.Snapshot
	historyErr error
	eods       []client.EodReport
	eodsErr    error
}

func (f *fakeStoreAPI) TodayRoster(string) (*client.TodayRoster, error) {
	return f.roster, f.rosterErr
}
func (f *fakeStoreAPI) ListInventory(string) ([]client.InventoryItem, error) {
	return f.items, f.itemsErr
}
func (f *fakeStoreAPI) ListHistory(string) ([]client.Snapshot, error) {
	return f.history, f.historyErr
}
func (f *fakeStoreAPI) ListEods(string) ([]client.EodReport, error) {
	return f.eods, f.eodsErr
}

func TestLoadStoreCardAggregates(t *testing.T) {
	api := &fakeStoreAPI{
		roster: &client.TodayRoster{
			TotalCount: 2,
			Employees: []client.TimeclockEntry{
				{EmployeeName: "Alice"}, {EmployeeName: "Bob"},
			},
		},
		items: []client.InventoryItem{
			{Name: "iPhone 12", Quantity: 3},
			{Name: "SIM Card", Quantity: 5},
		},
		history: []client.Snapshot{{SnapshotDate: "2025-01-14T00:00:00"}},
		eods:    []client.EodReport{{ReportDate: "2025-01-15"}},
	}

	card := LoadStoreCard(api, "Lawrence")
	if card.Clockins.Count != 2 || len(card.Clockins.Names) != 2 {
		t.Errorf("clockins = %+v", card.Clockins)
	}
	if card.Inventory.ItemCount != 2 || card.Inventory.TotalQty != 8 {
		t.Errorf("inventory = %+v", card.Inventory)
	}
	if card.History.Count != 1 || card.History.LatestDate != "2025-01-14" {
		t.Errorf("history = %+v", card.History)
	}
	if card.Eod.Count != 1 || card.Eod.LatestDate != "2025-01-15" {
		t.Errorf("eod = %+v", card.Eod)
	}
}

func TestLoadStoreCardIsolatesFailures(t *testing.T) {
	api := &fakeStoreAPI{
		rosterErr: errors.New("timeclock down"),
		items:     []client.InventoryItem{{Quantity: 4}},
		history:   []client.Snapshot{{SnapshotDate: "2025-01-14"}},
		eodsErr:   errors.New("eod down"),
	}

	card := LoadStoreCard(api, "Lawrence")
	if card.Clockins.Err == nil {
		t.Error("clockins failure lost")
	}
	if card.Eod.Err == nil {
		t.Error("eod failure lost")
	}
	// Failed sections must not affect their siblings.
	if card.Inventory.Err != nil || card.Inventory.TotalQty != 4 {
		t.Errorf("inventory affected by sibling failure: %+v", card.Inventory)
	}
	if card.History.Err != nil || card.History.Count != 1 {
		t.Errorf("history affected by sibling failure: %+v", card.History)
	}
}
