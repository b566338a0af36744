package client

import "net/url"

type Store struct {
	Name       string `json:"name"`
	Username   string `json:"username"`
	TotalBoxes int    `json:"total_boxes"`
}

type Yubikey struct {
	YubikeyID   string `json:"yubikey_id"`
	YubikeyName string `json:"yubikey_name"`
	AddedAt     string `json:"added_at"`
}

func (c *Client) ListStores() ([]Store, error) {
	var stores []Store
	if err := c.Get("/stores", nil, &stores); err != nil {
		return nil, err
	}
	return stores, nil
}

func (c *Client) CreateStore(name string, totalBoxes int, username, password string) (*Store, error) {
	var store Store
	err := c.Post("/stores", map[string]interface{}{
		"name":        name,
		"total_boxes": totalBoxes,
		"username":    username,
		"password":    password,
	}, &store)
	if err != nil {
		return nil, err
	}
	return &store, nil
}

// UpdateStore edits the store identified by name. Empty newName,
// username or password leave those fields unchanged.
func (c *Client) UpdateStore(name, newName string, totalBoxes int, username, password string) (*Store, error) {
	var store Store
	err := c.Put("/stores", map[string]interface{}{
		"name":        name,
		"new_name":    newName,
		"total_boxes": totalBoxes,
		"username":    username,
		"password":    password,
	}, &store)
	if err != nil {
		return nil, err
	}
	return &store, nil
}

func (c *Client) DeleteStore(name string) error {
	return c.Delete("/stores", map[string]string{"name": name}, nil)
}

func (c *Client) RegisterYubikey(storeName, otp, keyName string) error {
	return c.Post("/stores/yubikey/register", map[string]string{
		"store_name":   storeName,
		"yubikey_otp":  otp,
		"yubikey_name": keyName,
	}, nil)
}

func (c *Client) RemoveYubikey(storeName, yubikeyID string) error {
	return c.Delete("/stores/yubikey/remove", map[string]string{
		"store_name": storeName,
		"yubikey_id": yubikeyID,
	}, nil)
}

func (c *Client) ListYubikeys(storeName string) ([]Yubikey, error) {
	var resp struct {
		Yubikeys []Yubikey `json:"yubikeys"`
	}
	query := url.Values{"store_name": []string{storeName}}
	if err := c.Get("/stores/yubikey/list", query, &resp); err != nil {
		return nil, err
	}
	return resp.Yubikeys, nil
}
