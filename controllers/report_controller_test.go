package controllers

import (
	"testing"
	"time"

	"timetrack/models"

	"github.com/xuri/excelize/v2"
)

func TestBuildEodWorkbookIsReadable(t *testing.T) {
	reports := []models.EodReport{
		{
			StoreID: "Lawrence", ReportDate: "2025-01-15", SubmittedBy: "Alice",
			CashAmount: 40, CreditAmount: 30, QpayAmount: 5, BoxesCount: 3, Total1: 100,
			Notes: "short till", CreatedAt: time.Date(2025, 1, 15, 22, 0, 0, 0, time.UTC),
		},
	}

	buf, err := buildEodWorkbook(reports)
	if err != nil {
		t.Fatalf("buildEodWorkbook: %v", err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("workbook not readable: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("EOD Reports")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header + 1 report", len(rows))
	}
	if rows[0][0] != "Report Date" || rows[0][1] != "Submitted By" {
		t.Errorf("header row = %v", rows[0])
	}
	if rows[1][0] != "2025-01-15" || rows[1][1] != "Alice" {
		t.Errorf("data row = %v", rows[1])
	}
}

func TestBuildInventoryWorkbookTotalsQuantities(t *testing.T) {
	items := []models.InventoryItem{
		{Name: "iPhone 12", SKU: "A1", Quantity: 3},
		{Name: "SIM Card", SKU: "S1", Quantity: 5},
	}

	buf, err := buildInventoryWorkbook(items)
	if err != nil {
		t.Fatalf("buildInventoryWorkbook: %v", err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("workbook not readable: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Inventory")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("got %d rows, want header + 2 items + total", len(rows))
	}
	if rows[0][0] != "Name" || rows[0][2] != "Quantity" {
		t.Errorf("header row = %v", rows[0])
	}
	last := rows[len(rows)-1]
	if last[0] != "Total" || last[2] != "8" {
		t.Errorf("total row = %v, want Total / 8", last)
	}
}

func TestBuildEodWorkbookEmpty(t *testing.T) {
	buf, err := buildEodWorkbook(nil)
	if err != nil {
		t.Fatalf("buildEodWorkbook(nil): %v", err)
	}
	if _, err := excelize.OpenReader(buf); err != nil {
		t.Fatalf("empty workbook not readable: %v", err)
	}
}
