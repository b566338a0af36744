package models

import "time"

// EodReport is one end-of-day reconciliation submission. report_date is
// the store device's local calendar date and is deliberately not unique:
// resubmissions pile up and readers pick the newest created_at per date.
type EodReport struct {
	ID           uint      `gorm:"primaryKey" json:"-"`
	StoreID      string    `gorm:"type:varchar(100);index" json:"store_id"`
	ReportDate   string    `gorm:"type:varchar(30);not null" json:"report_date"`
	Notes        string    `gorm:"type:text" json:"notes"`
	CashAmount   float64   `json:"cash_amount"`
	CreditAmount float64   `json:"credit_amount"`
	QpayAmount   float64   `json:"qpay_amount"`
	BoxesCount   int       `json:"boxes_count"`
	Total1       float64   `json:"total1"`
	SubmittedBy  string    `gorm:"type:varchar(100)" json:"submitted_by"`
	CreatedAt    time.Time `json:"-"`
}

// EodReportResponse carries the stored fields plus the derived list of
// employees who clocked in on the report date.
type EodReportResponse struct {
	StoreID         string   `json:"store_id"`
	ReportDate      string   `json:"report_date"`
	Notes           string   `json:"notes"`
	CashAmount      float64  `json:"cash_amount"`
	CreditAmount    float64  `json:"credit_amount"`
	QpayAmount      float64  `json:"qpay_amount"`
	BoxesCount      int      `json:"boxes_count"`
	Total1          float64  `json:"total1"`
	SubmittedBy     string   `json:"submitted_by"`
	CreatedAt       string   `json:"created_at"`
	EmployeesWorked []string `json:"employees_worked"`
}

func (r *EodReport) ToResponse(employeesWorked []string) *EodReportResponse {
	if employeesWorked == nil {
		employeesWorked = []string{}
	}
	submittedBy := r.SubmittedBy
	if submittedBy == "" {
		submittedBy = "Unknown"
	}
	return &EodReportResponse{
		StoreID:         r.StoreID,
		ReportDate:      r.ReportDate,
		Notes:           r.Notes,
		CashAmount:      r.CashAmount,
		CreditAmount:    r.CreditAmount,
		QpayAmount:      r.QpayAmount,
		BoxesCount:      r.BoxesCount,
		Total1:          r.Total1,
		SubmittedBy:     submittedBy,
		CreatedAt:       r.CreatedAt.UTC().Format(time.RFC3339),
		EmployeesWorked: employeesWorked,
	}
}
