package client

import "net/url"

type EodReport struct {
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

type EodSubmission struct {
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

func (c *Client) SubmitEod(submission EodSubmission) (*EodReport, error) {
	var report EodReport
	if err := c.Post("/eod", submission, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *Client) ListEods(storeID string) ([]EodReport, error) {
	var reports []EodReport
	query := url.Values{"store_id": []string{storeID}}
	if err := c.Get("/eod", query, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}
