package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusClockedIn  = "clocked_in"
	StatusClockedOut = "clocked_out"
)

// TimeclockEntry denormalizes the employee name and store so the daily
// roster and EOD employees_worked queries need no joins.
type TimeclockEntry struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"-"`
	EmployeeID   string     `gorm:"type:varchar(64);index" json:"employee_id"`
	EmployeeName string     `gorm:"type:varchar(100)" json:"employee_name"`
	StoreID      string     `gorm:"type:varchar(100);index" json:"store_id"`
	ClockIn      time.Time  `gorm:"not null" json:"-"`
	ClockOut     *time.Time `gorm:"default:null" json:"-"`
	HoursWorked  float64    `json:"-"`
}

func (e *TimeclockEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

func (e *TimeclockEntry) Status() string {
	if e.ClockOut != nil {
		return StatusClockedOut
	}
	return StatusClockedIn
}

// TimeclockEntryResponse is the wire shape for one roster row. All
// timestamps are serialized as UTC RFC 3339.
type TimeclockEntryResponse struct {
	EntryID      string   `json:"entry_id"`
	EmployeeID   string   `json:"employee_id"`
	EmployeeName string   `json:"employee_name"`
	StoreID      string   `json:"store_id"`
	ClockIn      string   `json:"clock_in"`
	ClockOut     *string  `json:"clock_out"`
	HoursWorked  *float64 `json:"hours_worked"`
	Status       string   `json:"status"`
}

func (e *TimeclockEntry) ToResponse() *TimeclockEntryResponse {
	resp := &TimeclockEntryResponse{
		EntryID:      e.ID.String(),
		EmployeeID:   e.EmployeeID,
		EmployeeName: e.EmployeeName,
		StoreID:      e.StoreID,
		ClockIn:      e.ClockIn.UTC().Format(time.RFC3339),
		Status:       e.Status(),
	}
	if resp.EmployeeName == "" {
		resp.EmployeeName = "Unknown"
	}
	if e.ClockOut != nil {
		out := e.ClockOut.UTC().Format(time.RFC3339)
		resp.ClockOut = &out
		hours := e.HoursWorked
		resp.HoursWorked = &hours
	}
	return resp
}

// TodayRosterResponse is the payload of GET /api/timeclock/today.
type TodayRosterResponse struct {
	Date       string                    `json:"date"`
	StoreID    string                    `json:"store_id"`
	Employees  []*TimeclockEntryResponse `json:"employees"`
	TotalCount int                       `json:"total_count"`
}
