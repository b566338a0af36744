package client

import "net/url"

type InventoryItem struct {
	ID       string `json:"id"`
	StoreID  string `json:"store_id"`
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type SnapshotItem struct {
	SKU      string  `json:"sku"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type Snapshot struct {
	StoreID      string         `json:"store_id"`
	SnapshotDate string         `json:"snapshot_date"`
	Items        []SnapshotItem `json:"items"`
	CreatedAt    string         `json:"created_at"`
	UpdatedAt    string         `json:"updated_at"`
}

func (c *Client) ListInventory(storeID string) ([]InventoryItem, error) {
	var items []InventoryItem
	query := url.Values{"store_id": []string{storeID}}
	if err := c.Get("/inventory", query, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) AddItem(storeID, name, sku string, quantity int) (*InventoryItem, error) {
	var item InventoryItem
	err := c.Post("/inventory", map[string]interface{}{
		"store_id": storeID,
		"name":     name,
		"sku":      sku,
		"quantity": quantity,
	}, &item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateQuantity sets the staged quantity for an item. The id is the
// preferred lookup key; when empty the store_id+sku pair is used.
func (c *Client) UpdateQuantity(storeID, id, sku string, quantity int) (*InventoryItem, error) {
	var item InventoryItem
	err := c.Put("/inventory", map[string]interface{}{
		"store_id": storeID,
		"id":       id,
		"sku":      sku,
		"quantity": quantity,
	}, &item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateDetails renames an item and/or assigns a new SKU. The lookup
// key is the item's stable id (preferred) or its CURRENT sku; the new
// SKU travels only in new_sku.
func (c *Client) UpdateDetails(storeID, id, sku, name, newSKU string) (*InventoryItem, error) {
	var item InventoryItem
	err := c.Put("/inventory", map[string]interface{}{
		"store_id": storeID,
		"id":       id,
		"sku":      sku,
		"name":     name,
		"new_sku":  newSKU,
	}, &item)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) DeleteItem(storeID, sku string) error {
	return c.Delete("/inventory", map[string]string{
		"store_id": storeID,
		"sku":      sku,
	}, nil)
}

func (c *Client) ListHistory(storeID string) ([]Snapshot, error) {
	var snapshots []Snapshot
	query := url.Values{"store_id": []string{storeID}}
	if err := c.Get("/inventory/history", query, &snapshots); err != nil {
		return nil, err
	}
	return snapshots, nil
}

// SubmitSnapshot records today's stock levels under the device-local
// calendar date.
func (c *Client) SubmitSnapshot(storeID, snapshotDate, todayDate string) error {
	return c.Post("/inventory/history/snapshot", map[string]string{
		"store_id":      storeID,
		"snapshot_date": snapshotDate,
		"today_date":    todayDate,
	}, nil)
}
