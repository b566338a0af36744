package controllers

import (
	"sort"
	"time"

	"timetrack/models"
	"timetrack/utils"

	"github.com/gofiber/fiber/v3"
	"gorm.io/gorm"
)

type EodController struct {
	DB *gorm.DB
}

func NewEodController(db *gorm.DB) *EodController {
	return &EodController{DB: db}
}

type CreateEodRequest struct {
	StoreID      string  `json:"store_id"`
	ReportDate   string  `json:"report_date"`
	Notes        string  `json:"notes"`
	CashAmount   float64 `json:"cash_amount"`
	CreditAmount float64 `json:"credit_amount"`
	QpayAmount   float64 `json:"qpay_amount"`
	BoxesCount   int     `json:"boxes_count"`
	Total1       float64 `json:"total1"`
	SubmittedBy  string  `json:"submitted_by"`
}

// CreateEod stores one reconciliation report. report_date is taken as
// given; duplicates for the same date are allowed and readers pick the
// newest created_at.
func (ec *EodController) CreateEod(c fiber.Ctx) error {
	var req CreateEodRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "Request body is required",
		})
	}
	if req.StoreID == "" || req.ReportDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Error: "store_id and report_date are required",
		})
	}

	report := models.EodReport{
		StoreID:      req.StoreID,
		ReportDate:   req.ReportDate,
		Notes:        req.Notes,
		CashAmount:   req.CashAmount,
		CreditAmount: req.CreditAmount,
		QpayAmount:   req.QpayAmount,
		BoxesCount:   req.BoxesCount,
		Total1:       req.Total1,
		SubmittedBy:  req.SubmittedBy,
	}
	if err := ec.DB.Create(&report).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "Failed to submit EOD report",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(report.ToResponse(
		ec.employeesWorked(report.StoreID, report.ReportDate)))
}

// GetEods lists reports, newest report_date first, each annotated with
// the employees who clocked in on that date.
func (ec *EodController) GetEods(c fiber.Ctx) error {
	query := ec.DB.Model(&models.EodReport{}).Order("report_date DESC")
	if storeID := c.Query("store_id"); storeID != "" {
		query = query.Where("store_id = ?", storeID)
	}

	var reports []models.EodReport
	if err := query.Find(&reports).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Error: "Failed to retrieve EOD reports",
		})
	}

	worked := ec.employeesForReports(reports)
	responses := make([]*models.EodReportResponse, len(reports))
	for i := range reports {
		names := worked[reports[i].StoreID][reportDateDay(reports[i].ReportDate)]
		if names == nil {
			names = []string{}
		}
		responses[i] = reports[i].ToResponse(names)
	}
	return c.JSON(responses)
}

// employeesForReports resolves the worked-employee names for a whole
// report listing with a single timeclock query spanning the covered
// date range, grouped by store and day.
func (ec *EodController) employeesForReports(reports []models.EodReport) map[string]map[string][]string {
	stores := make(map[string]bool)
	var minDay, maxDay time.Time
	found := false
	for _, report := range reports {
		day, err := time.ParseInLocation("2006-01-02", reportDateDay(report.ReportDate), time.UTC)
		if err != nil {
			continue
		}
		stores[report.StoreID] = true
		if !found || day.Before(minDay) {
			minDay = day
		}
		if !found || day.After(maxDay) {
			maxDay = day
		}
		found = true
	}
	if !found {
		return map[string]map[string][]string{}
	}

	storeIDs := make([]string, 0, len(stores))
	for id := range stores {
		storeIDs = append(storeIDs, id)
	}

	var entries []models.TimeclockEntry
	if err := ec.DB.Where("store_id IN ? AND clock_in >= ? AND clock_in < ?",
		storeIDs, minDay, maxDay.AddDate(0, 0, 1)).Find(&entries).Error; err != nil {
		return map[string]map[string][]string{}
	}
	return groupEmployeesByDay(entries)
}

// groupEmployeesByDay buckets entries by store and the UTC calendar day
// of clock_in. Names are distinct and sorted within each bucket.
func groupEmployeesByDay(entries []models.TimeclockEntry) map[string]map[string][]string {
	seen := make(map[string]map[string]map[string]bool)
	grouped := make(map[string]map[string][]string)
	for _, entry := range entries {
		if entry.EmployeeName == "" {
			continue
		}
		day := entry.ClockIn.UTC().Format("2006-01-02")
		if seen[entry.StoreID] == nil {
			seen[entry.StoreID] = make(map[string]map[string]bool)
			grouped[entry.StoreID] = make(map[string][]string)
		}
		if seen[entry.StoreID][day] == nil {
			seen[entry.StoreID][day] = make(map[string]bool)
		}
		if seen[entry.StoreID][day][entry.EmployeeName] {
			continue
		}
		seen[entry.StoreID][day][entry.EmployeeName] = true
		grouped[entry.StoreID][day] = append(grouped[entry.StoreID][day], entry.EmployeeName)
	}
	for _, days := range grouped {
		for _, names := range days {
			sort.Strings(names)
		}
	}
	return grouped
}

// reportDateDay is the calendar-day key of a report_date string.
func reportDateDay(reportDate string) string {
	if len(reportDate) > 10 {
		return reportDate[:10]
	}
	return reportDate
}

// employeesWorked resolves the sorted, distinct names of employees with
// a timeclock entry on the report date. Failures degrade to an empty
// list rather than breaking the report.
func (ec *EodController) employeesWorked(storeID, reportDate string) []string {
	if len(reportDate) < 10 {
		return []string{}
	}
	dayStart, err := time.ParseInLocation("2006-01-02", reportDate[:10], time.UTC)
	if err != nil {
		return []string{}
	}
	dayEnd := dayStart.AddDate(0, 0, 1)

	var entries []models.TimeclockEntry
	if err := ec.DB.Where("store_id = ? AND clock_in >= ? AND clock_in < ?",
		storeID, dayStart, dayEnd).Find(&entries).Error; err != nil {
		return []string{}
	}

	seen := make(map[string]bool)
	names := []string{}
	for _, entry := range entries {
		if entry.EmployeeName == "" || seen[entry.EmployeeName] {
			continue
		}
		seen[entry.EmployeeName] = true
		names = append(names, entry.EmployeeName)
	}
	sort.Strings(names)
	return names
}
