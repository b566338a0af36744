package views

import (
	"sync"

	"timetrack/client"
)

// StoreAPI is the slice of the API client the dashboard needs.
// *client.Client satisfies it.
type StoreAPI interface {
	TodayRoster(storeID string) (*client.TodayRoster, error)
	ListInventory(storeID string) ([]client.InventoryItem, error)
	ListHistory(storeID string) ([]client.Snapshot, error)
	ListEods(storeID string) ([]client.EodReport, error)
}

// ClockinsSection summarizes today's roster for one store card.
type ClockinsSection struct {
	Err   error
	Count int
	Names []string
}

type InventorySection struct {
	Err       error
	ItemCount int
	TotalQty  int
}

type HistorySection struct {
	Err        error
	Count      int
	LatestDate string
}

type EodSection struct {
	Err        error
	Count      int
	LatestDate string
}

// StoreCard holds the four independent aggregates of a manager
// dashboard card. Each section fails on its own; a failed section never
// blocks or clears its siblings.
type StoreCard struct {
	StoreID   string
	Clockins  ClockinsSection
	Inventory InventorySection
	History   HistorySection
	Eod       EodSection
}

// LoadStoreCard fetches the four aggregates concurrently and waits for
// all of them. There is no cancellation and no retry; each section
// records its own error.
func LoadStoreCard(api StoreAPI, storeID string) *StoreCard {
	card := &StoreCard{StoreID: storeID}

	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		roster, err := api.TodayRoster(storeID)
		if err != nil {
			card.Clockins.Err = err
			return
		}
		card.Clockins.Count = roster.TotalCount
		for _, entry := range roster.Employees {
			card.Clockins.Names = append(card.Clockins.Names, entry.EmployeeName)
		}
	}()

	go func() {
		defer wg.Done()
		items, err := api.ListInventory(storeID)
		if err != nil {
			card.Inventory.Err = err
			return
		}
		card.Inventory.ItemCount = len(items)
		for _, item := range items {
			card.Inventory.TotalQty += item.Quantity
		}
	}()

	go func() {
		defer wg.Done()
		snapshots, err := api.ListHistory(storeID)
		if err != nil {
			card.History.Err = err
			return
		}
		card.History.Count = len(snapshots)
		if len(snapshots) > 0 {
			card.History.LatestDate = ReportDay(snapshots[0].SnapshotDate)
		}
	}()

	go func() {
		defer wg.Done()
		reports, err := api.ListEods(storeID)
		if err != nil {
			card.Eod.Err = err
			return
		}
		card.Eod.Count = len(reports)
		if len(reports) > 0 {
			card.Eod.LatestDate = ReportDay(reports[0].ReportDate)
		}
	}()

	wg.Wait()
	return card
}
