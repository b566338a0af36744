package models

import "time"

// Store is keyed by its name: inventory, snapshots, EOD reports and
// timeclock entries all reference the store through the name in their
// store_id column. Renaming a store cascades into those tables.
type Store struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	Name       string    `gorm:"uniqueIndex;not null;type:varchar(100)" json:"name"`
	Username   string    `gorm:"uniqueIndex;not null;type:varchar(50)" json:"username"`
	Password   string    `gorm:"not null" json:"-"`
	TotalBoxes int       `gorm:"default:0" json:"total_boxes"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`

	Yubikeys []Yubikey `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE" json:"-"`
}

// Yubikey is a hardware token authorized as a second login factor for
// one store. YubikeyID is the 12-character modhex public ID extracted
// from an OTP, never the OTP itself.
type Yubikey struct {
	ID          uint      `gorm:"primaryKey" json:"-"`
	StoreID     uint      `gorm:"index;not null" json:"-"`
	YubikeyID   string    `gorm:"type:varchar(12);not null" json:"yubikey_id"`
	YubikeyName string    `gorm:"type:varchar(200)" json:"yubikey_name"`
	AddedAt     time.Time `json:"added_at"`
}

// StoreLoginResponse is the store record handed back after a successful
// store login. The client keeps role, store id and name; token rides
// along for the authorized calls.
type StoreLoginResponse struct {
	Name       string `json:"name"`
	Username   string `json:"username"`
	TotalBoxes int    `json:"total_boxes"`
	Token      string `json:"token,omitempty"`
}

// ManagerLoginResponse is returned by the manager credential check.
type ManagerLoginResponse struct {
	Role     string `json:"role"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Token    string `json:"token,omitempty"`
}
