package views

import (
	"errors"
	"strconv"
	"strings"
)

// Form validation mirrors the modal contract: validation failures never
// reach the network and render inline without discarding the form.

type StoreForm struct {
	Name            string
	TotalBoxes      string
	Username        string
	Password        string
	ConfirmPassword string
}

// Validate checks a store form. Password may be empty when editing
// (editing = true keeps the stored password).
func (f *StoreForm) Validate(editing bool) (int, error) {
	if strings.TrimSpace(f.Name) == "" {
		return 0, errors.New("Store name is required")
	}
	if strings.TrimSpace(f.Username) == "" {
		return 0, errors.New("Username is required")
	}
	if !editing && f.Password == "" {
		return 0, errors.New("Password is required")
	}
	if f.Password != f.ConfirmPassword {
		return 0, errors.New("Passwords do not match")
	}
	boxes, err := ParsePositiveInt(f.TotalBoxes)
	if err != nil {
		return 0, errors.New("Total boxes must be a positive integer")
	}
	return boxes, nil
}

type ItemForm struct {
	Name     string
	SKU      string
	Quantity string
}

func (f *ItemForm) Validate() (int, error) {
	if strings.TrimSpace(f.Name) == "" {
		return 0, errors.New("Item name is required")
	}
	if strings.TrimSpace(f.SKU) == "" {
		return 0, errors.New("SKU is required")
	}
	qty, err := ParsePositiveInt(f.Quantity)
	if err != nil {
		return 0, errors.New("Quantity must be a positive integer")
	}
	return qty, nil
}

// ParsePositiveInt accepts a non-negative integer string. An empty
// string counts as zero.
func ParsePositiveInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, errors.New("not a positive integer")
	}
	return n, nil
}
