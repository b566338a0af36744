package client

import "net/url"

type Employee struct {
	ID      string `json:"id"`
	StoreID string `json:"store_id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Active  bool   `json:"active"`
}

func (c *Client) ListEmployees(storeID string) ([]Employee, error) {
	var employees []Employee
	query := url.Values{"store_id": []string{storeID}}
	if err := c.Get("/employees", query, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (c *Client) CreateEmployee(storeID, name, role string) (*Employee, error) {
	var employee Employee
	err := c.Post("/employees", map[string]string{
		"store_id": storeID,
		"name":     name,
		"role":     role,
	}, &employee)
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (c *Client) DeleteEmployee(id string) error {
	return c.Delete("/employees/"+id, nil, nil)
}
