package controllers

import (
	"bytes"
	"fmt"
	"strconv"

	"timetrack/models"
	"timetrack/utils"

	"github.com/gofiber/fiber/v3"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var eodExportHeaders = []string{"Report Date", "Submitted By", "Cash", "Credit", "QPay", "Boxes", "Total", "Notes", "Created At"}

var inventoryExportHeaders = []string{"Name", "SKU", "Quantity"}

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// buildEodWorkbook renders the reports into a single-sheet workbook,
// one row per report under a header row.
func buildEodWorkbook(reports []models.EodReport) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "EOD Reports"
	f.SetSheetName("Sheet1", sheet)

	for i, header := range eodExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for row, report := range reports {
		values := []interface{}{
			report.ReportDate,
			report.SubmittedBy,
			report.CashAmount,
			report.CreditAmount,
			report.QpayAmount,
			report.BoxesCount,
			report.Total1,
			report.Notes,
			report.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	return f.WriteToBuffer()
}

// buildInventoryWorkbook renders current stock levels with a total row
// appended under the listing.
func buildInventoryWorkbook(items []models.InventoryItem) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Inventory"
	f.SetSheetName("Sheet1", sheet)

	for i, header := range inventoryExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	total := 0
	for row, item := range items {
		cell, _ := excelize.CoordinatesToCellName(1, row+2)
		f.SetCellValue(sheet, cell, item.Name)
		cell, _ = excelize.CoordinatesToCellName(2, row+2)
		f.SetCellValue(sheet, cell, item.SKU)
		cell, _ = excelize.CoordinatesToCellName(3, row+2)
		f.SetCellValue(sheet, cell, item.Quantity)
		total += item.Quantity
	}

	cell, _ := excelize.CoordinatesToCellName(1, len(items)+2)
	f.SetCellValue(sheet, cell, "Total")
	cell, _ = excelize.CoordinatesToCellName(3, len(items)+2)
	f.SetCellValue(sheet, cell, total)

	return f.WriteToBuffer()
}

func sendWorkbook(c fiber.Ctx, buf *bytes.Buffer, fileName string) error {
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+strconv.Quote(fileName))
	return c.Send(buf.Bytes())
}

// ExportEodReports streams a workbook of every EOD report for a store,
// newest date first.
func (rc *ReportController) ExportEodReports(c fiber.Ctx) error {
	storeID := c.Query("store_id")
	if storeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "store_id is required",
		})
	}

	var reports []models.EodReport
	if err := rc.DB.Where("store_id = ?", storeID).
		Order("report_date DESC, created_at DESC").Find(&reports).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "Failed to retrieve EOD reports",
		})
	}

	buf, err := buildEodWorkbook(reports)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "Failed to build export",
		})
	}
	return sendWorkbook(c, buf, fmt.Sprintf("eod-%s.xlsx", storeID))
}

// ExportInventory streams the store's current stock levels as a
// workbook.
func (rc *ReportController) ExportInventory(c fiber.Ctx) error {
	storeID := c.Query("store_id")
	if storeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "store_id is required",
		})
	}

	var items []models.InventoryItem
	if err := rc.DB.Where("store_id = ?", storeID).
		Order("name ASC").Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "Failed to retrieve inventory",
		})
	}

	buf, err := buildInventoryWorkbook(items)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "Failed to build export",
		})
	}
	return sendWorkbook(c, buf, fmt.Sprintf("inventory-%s.xlsx", storeID))
}
