package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"timetrack/client"
)

func newTestApp(baseURL, input string) (*app, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &app{
		api: client.New(baseURL),
		in:  bufio.NewScanner(strings.NewReader(input)),
		out: out,
	}, out
}

func TestManagerInventoryEditKeepsOldSKULookup(t *testing.T) {
	var update map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode([]client.InventoryItem{
				{ID: "item-1", StoreID: "Lawrence", SKU: "OLD1", Name: "Widget", Quantity: 4},
			})
		case http.MethodPut:
			json.NewDecoder(r.Body).Decode(&update)
			json.NewEncoder(w).Encode(client.InventoryItem{ID: "item-1", SKU: "NEW1", Name: "Widget Pro"})
		}
	}))
	defer server.Close()

	// store, filter, edit, target sku, new name, new sku, filter, back
	a, _ := newTestApp(server.URL, "Lawrence\n\n3\nOLD1\nWidget Pro\nNEW1\n\n0\n")
	a.managerInventoryPage()

	if update == nil {
		t.Fatal("no update request sent")
	}
	if update["id"] != "item-1" || update["sku"] != "OLD1" {
		t.Errorf("lookup key = id %v sku %v, want item-1/OLD1", update["id"], update["sku"])
	}
	if update["new_sku"] != "NEW1" || update["name"] != "Widget Pro" {
		t.Errorf("new values = %v/%v", update["name"], update["new_sku"])
	}
}

func TestManagerInventoryRemoveRequiresConfirmation(t *testing.T) {
	deletes := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			deletes++
			w.Write([]byte(`{"message":"Item deleted successfully"}`))
			return
		}
		json.NewEncoder(w).Encode([]client.InventoryItem{
			{ID: "item-1", StoreID: "Lawrence", SKU: "OLD1", Name: "Widget", Quantity: 4},
		})
	}))
	defer server.Close()

	items := []client.InventoryItem{{ID: "item-1", SKU: "OLD1", Name: "Widget"}}

	a, out := newTestApp(server.URL, "OLD1\nNOPE\n")
	a.removeItem("Lawrence", items)
	if deletes != 0 {
		t.Fatal("delete sent without confirmation")
	}
	if !strings.Contains(out.String(), "Not confirmed") {
		t.Errorf("output = %q", out.String())
	}

	a, _ = newTestApp(server.URL, "OLD1\nOLD1\n")
	a.removeItem("Lawrence", items)
	if deletes != 1 {
		t.Fatalf("deletes = %d, want 1", deletes)
	}
}

func TestManagerInventoryAddItem(t *testing.T) {
	var created map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&created)
		json.NewEncoder(w).Encode(client.InventoryItem{ID: "item-2", SKU: "CASE9"})
	}))
	defer server.Close()

	a, _ := newTestApp(server.URL, "Phone Case\nCASE9\n12\n")
	a.addItemForm("Lawrence")

	if created == nil {
		t.Fatal("no create request sent")
	}
	if created["store_id"] != "Lawrence" || created["sku"] != "CASE9" || created["quantity"] != float64(12) {
		t.Errorf("create body = %v", created)
	}
}
