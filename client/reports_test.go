package client

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExportEodReportsReturnsRawBytes(t *testing.T) {
	payload := []byte("PK\x03\x04 workbook bytes")
	var gotPath, gotStore, gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotStore = r.URL.Query().Get("store_id")
		gotAuth = r.Header.Get("Authorization")
		w.Write(payload)
	}))
	defer server.Close()

	c := New(server.URL)
	c.Token = "mtok"
	data, err := c.ExportEodReports("Lawrence")
	if err != nil {
		t.Fatalf("ExportEodReports: %v", err)
	}
	if !bytes.Equal(data, payload) {
		t.Error("body not returned verbatim")
	}
	if gotPath != "/reports/eod/export" || gotStore != "Lawrence" {
		t.Errorf("request = %s?store_id=%s", gotPath, gotStore)
	}
	if gotAuth != "Bearer mtok" {
		t.Errorf("Authorization = %q", gotAuth)
	}
}

func TestExportInventoryUnwrapsErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":"Manager access required"}`))
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.ExportInventory("Lawrence")
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "Manager access required" {
		t.Errorf("error = %q", err)
	}
}
