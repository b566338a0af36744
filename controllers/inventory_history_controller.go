package controllers

import (
	"time"

	"timetrack/models"
	"timetrack/utils"

	"github.com/gofiber/fiber/v3"
	"gorm.io/gorm"
)

type InventoryHistoryController struct {
	DB *gorm.DB
}

func NewInventoryHistoryController(db *gorm.DB) *InventoryHistoryController {
	return &InventoryHistoryController{DB: db}
}

// SnapshotRequest carries the device's local calendar dates, not server
// time: the store decides which day the snapshot belongs to.
type SnapshotRequest struct {
	StoreID      string `json:"store_id"`
	SnapshotDate string `json:"snapshot_date"`
	TodayDate    string `json:"today_date"`
}

// GetHistory returns a store's snapshots, newest first.
func (hc *InventoryHistoryController) GetHistory(c fiber.Ctx) error {
	storeID := c.Query("store_id")
	if storeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "store_id is required",
		})
	}

	var snapshots []models.InventorySnapshot
	if err := hc.DB.Where("store_id = ?", storeID).
		Order("snapshot_date DESC").Find(&snapshots).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "Failed to retrieve inventory history",
		})
	}
	return c.JSON(snapshots)
}

// CreateSnapshot freezes the store's current quantities under the given
// date. Today's snapshot may be overwritten; past days may not.
func (hc *InventoryHistoryController) CreateSnapshot(c fiber.Ctx) error {
	var req SnapshotRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Request body is required",
		})
	}
	if req.StoreID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "store_id is required",
		})
	}

	snapshotDate, today, allowed := resolveSnapshotDay(req.SnapshotDate, req.TodayDate, time.Now())
	if !allowed {
		return c.Status(fiber.StatusForbidden).JSON(utils.ErrorResponse{
			Error: "Cannot create inventory snapshot for past dates. Snapshot date (" +
				snapshotDate.Format("2006-01-02") + ") is before today (" + today.Format("2006-01-02") + ").",
		})
	}

	var items []models.InventoryItem
	if err := hc.DB.Where("store_id = ?", req.StoreID).Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "Failed to read current inventory",
		})
	}

	frozen := make([]models.SnapshotItem, len(items))
	for i, item := range items {
		frozen[i] = models.SnapshotItem{
			SKU:      item.SKU,
			Name:     item.Name,
			Quantity: item.Quantity,
		}
	}

	var existing models.InventorySnapshot
	err := hc.DB.Where("store_id = ? AND snapshot_date = ?", req.StoreID, snapshotDate).
		First(&existing).Error
	if err == nil {
		existing.Items = frozen
		if err := hc.DB.Save(&existing).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Error: "Failed to update snapshot",
			})
		}
		return c.JSON(utils.StatusResponse{Message: "Snapshot updated"})
	}

	snapshot := models.InventorySnapshot{
		StoreID:      req.StoreID,
		SnapshotDate: snapshotDate,
		Items:        frozen,
	}
	if err := hc.DB.Create(&snapshot).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "Failed to create snapshot",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(utils.StatusResponse{Message: "Snapshot created"})
}

// resolveSnapshotDay picks the day a snapshot belongs to: the requested
// snapshot_date, falling back to today_date, falling back to now. The
// third result is false when the resolved day is backdated — snapshots
// for past days are refused, today's may be overwritten.
func resolveSnapshotDay(snapshotDate, todayDate string, now time.Time) (day, today time.Time, allowed bool) {
	day, ok := parseCalendarDate(snapshotDate)
	if !ok {
		day, ok = parseCalendarDate(todayDate)
	}
	if !ok {
		day = truncateToDay(now)
	}
	today, ok = parseCalendarDate(todayDate)
	if !ok {
		today = truncateToDay(now)
	}
	return day, today, !day.Before(today)
}

// parseCalendarDate accepts the wire format YYYY-MM-DD. Longer
// timestamp strings are truncated to their date part first.
func parseCalendarDate(s string) (time.Time, bool) {
	if len(s) > 10 {
		s = s[:10]
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
