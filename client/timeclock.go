package client

import (
	"net/url"
	"strconv"
)

type TimeclockEntry struct {
	EntryID      string   `json:"entry_id"`
	EmployeeID   string   `json:"employee_id"`
	EmployeeName string   `json:"employee_name"`
	StoreID      string   `json:"store_id"`
	ClockIn      string   `json:"clock_in"`
	ClockOut     *string  `json:"clock_out"`
	HoursWorked  *float64 `json:"hours_worked"`
	Status       string   `json:"status"`
}

type TodayRoster struct {
	Date       string           `json:"date"`
	StoreID    string           `json:"store_id"`
	Employees  []TimeclockEntry `json:"employees"`
	TotalCount int              `json:"total_count"`
}

type ClockInResult struct {
	EntryID      string `json:"entry_id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	ClockIn      string `json:"clock_in"`
}

type ClockOutResult struct {
	EntryID     string  `json:"entry_id"`
	HoursWorked float64 `json:"hours_worked"`
}

func (c *Client) ClockIn(employeeID string) (*ClockInResult, error) {
	var result ClockInResult
	err := c.Post("/timeclock/clock-in", map[string]string{
		"employee_id": employeeID,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ClockOut(entryID string) (*ClockOutResult, error) {
	var result ClockOutResult
	err := c.Post("/timeclock/clock-out", map[string]string{
		"entry_id": entryID,
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) TodayRoster(storeID string) (*TodayRoster, error) {
	var roster TodayRoster
	query := url.Values{"store_id": []string{storeID}}
	if err := c.Get("/timeclock/today", query, &roster); err != nil {
		return nil, err
	}
	return &roster, nil
}

func (c *Client) TimeclockHistory(storeID string, days int) ([]TimeclockEntry, error) {
	var entries []TimeclockEntry
	query := url.Values{
		"store_id": []string{storeID},
		"days":     []string{strconv.Itoa(days)},
	}
	if err := c.Get("/timeclock/history", query, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
