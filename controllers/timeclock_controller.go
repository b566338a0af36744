package controllers

import (
	"math"
	"strconv"
	"time"

	"timetrack/models"
	"timetrack/utils"

	"github.com/gofiber/fiber/v3"
	"gorm.io/gorm"
)

type TimeclockController struct {
	DB *gorm.DB
}

func NewTimeclockController(db *gorm.DB) *TimeclockController {
	return &TimeclockController{DB: db}
}

type ClockInRequest struct {
	EmployeeID string `json:"employee_id"`
}

type ClockOutRequest struct {
	EntryID string `json:"entry_id"`
}

// ClockIn opens a timeclock entry for an employee. The employee's name
// and store are denormalized onto the entry; a second open entry on the
// same day is refused.
func (tc *TimeclockController) ClockIn(c fiber.Ctx) error {
	var req ClockInRequest
	if err := c.Bind().Body(&req); err != nil || req.EmployeeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "employee_id is required",
		})
	}

	var employee models.Employee
	if err := tc.DB.Where("id = ?", req.EmployeeID).First(&employee).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Error: "Employee not found",
		})
	}

	todayStart := startOfUTCDay(time.Now())
	var open models.TimeclockEntry
	if err := tc.DB.Where("employee_id = ? AND clock_in >= ? AND clock_out IS NULL",
		req.EmployeeID, todayStart).First(&open).Error; err == nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: employee.Name + " is already clocked in today.",
		})
	}

	entry := models.TimeclockEntry{
		EmployeeID:   req.EmployeeID,
		EmployeeName: employee.Name,
		StoreID:      employee.StoreID,
		ClockIn:      time.Now().UTC(),
	}
	if err := tc.DB.Create(&entry).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "Failed to clock in",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"entry_id":      entry.ID.String(),
		"employee_id":   entry.EmployeeID,
		"employee_name": entry.EmployeeName,
		"clock_in":      entry.ClockIn.UTC().Format(time.RFC3339),
	})
}

// ClockOut closes an entry and records the hours worked, rounded to
// two decimals.
func (tc *TimeclockController) ClockOut(c fiber.Ctx) error {
	var req ClockOutRequest
	if err := c.Bind().Body(&req); err != nil || req.EntryID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "entry_id is required",
		})
	}

	var entry models.TimeclockEntry
	if err := tc.DB.Where("id = ?", req.EntryID).First(&entry).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Invalid entry_id format",
		})
	}
	if entry.ClockOut != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Invalid or already clocked out entry",
		})
	}

	now := time.Now().UTC()
	hours := now.Sub(entry.ClockIn).Hours()
	entry.ClockOut = &now
	entry.HoursWorked = math.Round(hours*100) / 100

	if err := tc.DB.Save(&entry).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "Failed to clock out",
		})
	}

	return c.JSON(fiber.Map{
		"ok":           true,
		"entry_id":     entry.ID.String(),
		"hours_worked": entry.HoursWorked,
	})
}

// GetToday returns every entry opened today for one store.
func (tc *TimeclockController) GetToday(c fiber.Ctx) error {
	storeID := c.Query("store_id")
	if storeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "store_id is required",
		})
	}

	todayStart := startOfUTCDay(time.Now())
	tomorrowStart := todayStart.AddDate(0, 0, 1)

	var entries []models.TimeclockEntry
	if err := tc.DB.Where("store_id = ? AND clock_in >= ? AND clock_in < ?",
		storeID, todayStart, tomorrowStart).
		Order("clock_in DESC").Find(&entries).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "Failed to retrieve timeclock entries",
		})
	}

	formatted := make([]*models.TimeclockEntryResponse, len(entries))
	for i := range entries {
		formatted[i] = entries[i].ToResponse()
	}

	return c.JSON(models.TodayRosterResponse{
		Date:       todayStart.Format("2006-01-02"),
		StoreID:    storeID,
		Employees:  formatted,
		TotalCount: len(formatted),
	})
}

// GetHistory returns a store's entries over the past N days (default
// 30), newest first.
func (tc *TimeclockController) GetHistory(c fiber.Ctx) error {
	storeID := c.Query("store_id")
	if storeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "store_id is required",
		})
	}
	days, _ := strconv.Atoi(c.Query("days", "30"))
	if days <= 0 {
		days = 30
	}

	start := time.Now().UTC().AddDate(0, 0, -days)
	var entries []models.TimeclockEntry
	if err := tc.DB.Where("store_id = ? AND clock_in >= ?", storeID, start).
		Order("clock_in DESC").Find(&entries).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "Failed to retrieve timeclock history",
		})
	}

	formatted := make([]*models.TimeclockEntryResponse, len(entries))
	for i := range entries {
		formatted[i] = entries[i].ToResponse()
	}

	return c.JSON(fiber.Map{
		"store_id":    storeID,
		"entries":     formatted,
		"total_count": len(formatted),
		"days":        days,
	})
}

func startOfUTCDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
