package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	StoreID     string    `gorm:"type:varchar(100);index" json:"store_id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Role        string    `gorm:"type:varchar(50)" json:"role"`
	PhoneNumber string    `gorm:"type:varchar(30)" json:"phone_number,omitempty"`
	HourlyPay   float64   `json:"hourly_pay,omitempty"`
	Active      bool      `gorm:"default:true" json:"active"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
