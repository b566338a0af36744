package views

import (
	"fmt"
	"regexp"
	"strings"
	"text/tabwriter"

	"timetrack/client"
)

var simcardPattern = regexp.MustCompile(`(?i)sim|simcard`)

// FilterItems keeps items whose name or SKU contains the query,
// case-insensitively. An empty query keeps everything.
func FilterItems(items []client.InventoryItem, query string) []client.InventoryItem {
	if query == "" {
		return items
	}
	q := strings.ToLower(query)
	filtered := make([]client.InventoryItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), q) ||
			strings.Contains(strings.ToLower(item.SKU), q) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// IsSimcard classifies an item by matching its name or SKU against the
// simcard pattern.
func IsSimcard(item client.InventoryItem) bool {
	return simcardPattern.MatchString(item.Name) || simcardPattern.MatchString(item.SKU)
}

// Aggregates sums quantities into the two synthetic rows: phones for
// non-simcard items, simcards for the rest. Both rows always render,
// even at zero.
func Aggregates(items []client.InventoryItem) (phones, simcards int) {
	for _, item := range items {
		if IsSimcard(item) {
			simcards += item.Quantity
		} else {
			phones += item.Quantity
		}
	}
	return phones, simcards
}

// RowActions lists the actions available for a role. The store role
// only stages quantity updates; managers also edit and remove items.
func RowActions(role string) []string {
	if role == "manager" {
		return []string{"Update", "Edit", "Remove"}
	}
	return []string{"Update"}
}

// EditKey returns the lookup key for an edit submission: the item's
// stable id when present, otherwise its CURRENT sku. The newly typed
// SKU is never a lookup key.
func EditKey(item client.InventoryItem) (id, sku string) {
	if item.ID != "" {
		return item.ID, ""
	}
	return "", item.SKU
}

// RenderTable writes the filtered inventory with the two aggregate
// rows appended, to w.
func RenderTable(w *tabwriter.Writer, items []client.InventoryItem, query string) {
	filtered := FilterItems(items, query)
	fmt.Fprintln(w, "NAME\tSKU\tQTY")
	for _, item := range filtered {
		fmt.Fprintf(w, "%s\t%s\t%d\n", item.Name, item.SKU, item.Quantity)
	}
	phones, simcards := Aggregates(filtered)
	fmt.Fprintf(w, "phones\t\t%d\n", phones)
	fmt.Fprintf(w, "simcard\t\t%d\n", simcards)
	w.Flush()
}
