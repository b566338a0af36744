package client

import "net/url"

// ExportEodReports downloads the store's EOD history as an XLSX
// workbook. Manager token required.
func (c *Client) ExportEodReports(storeID string) ([]byte, error) {
	query := url.Values{"store_id": []string{storeID}}
	return c.GetRaw("/reports/eod/export", query)
}

// ExportInventory downloads the store's current stock levels as an XLSX
// workbook. Manager token required.
func (c *Client) ExportInventory(storeID string) ([]byte, error) {
	query := url.Values{"store_id": []string{storeID}}
	return c.GetRaw("/reports/inventory/export", query)
}
