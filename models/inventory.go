package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InventoryItem holds one tracked device or accessory. The UUID is the
// stable identity; SKU is a mutable attribute and the default catalog
// reuses one SKU per brand, so it cannot be a key.
type InventoryItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	StoreID   string    `gorm:"type:varchar(100);not null;index" json:"store_id"`
	SKU       string    `gorm:"type:varchar(100);not null" json:"sku"`
	Name      string    `gorm:"type:varchar(200);not null" json:"name"`
	Quantity  int       `gorm:"default:0" json:"quantity"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// SnapshotItem is one line frozen inside an inventory snapshot.
type SnapshotItem struct {
	SKU      string  `json:"sku"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// InventorySnapshot is a dated immutable copy of a store's quantities,
// one per store per calendar day.
type InventorySnapshot struct {
	ID           uint           `gorm:"primaryKey" json:"-"`
	StoreID      string         `gorm:"type:varchar(100);not null;index:idx_snapshot_store_date,unique" json:"store_id"`
	SnapshotDate time.Time      `gorm:"not null;index:idx_snapshot_store_date,unique" json:"snapshot_date"`
	Items        []SnapshotItem `gorm:"serializer:json" json:"items"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

type catalogEntry struct {
	SKU  string
	Name string
}

// defaultCatalog is seeded into every new store at zero quantity.
var defaultCatalog = []catalogEntry{
	{"Samsung", "S 23 FE"},
	{"Samsung", "S24 FE"},
	{"Samsung", "Samsung Tab 3"},
	{"Samsung", "Samsung Watch"},

	{"Apple", "Iphone 13"},
	{"Apple", "Iphone 14"},
	{"Apple", "Iphone 16"},
	{"Apple", "Iphone 16 e"},
	{"Apple", "Iphone 16 plus"},
	{"Apple", "Iphone 16 pro"},
	{"Apple", "Iphone 16 pro max"},
	{"Apple", "Apple Watch"},

	{"Motorola", "Moto g 2024"},
	{"Motorola", "Moto g 2025"},
	{"Motorola", "Moto power 2024"},
	{"Motorola", "Moto power 2025"},
	{"Motorola", "Moto razr 2024"},
	{"Motorola", "Moto stylus 2023"},
	{"Motorola", "Moto stylus 2024"},
	{"Motorola", "Moto stylus 2025"},
	{"Motorola", "Moto edge 2024"},

	{"TCL", "TCL 50 XL 3"},
	{"TCL", "TCL K32"},
	{"TCL", "TCL ION X"},
	{"TCL", "TCL K11"},
	{"TCL", "TCL Tab"},

	{"Revvl", "Rewl 7"},
	{"Revvl", "Rewl 7 pro"},
	{"Revvl", "Revvl Tab"},
	{"Revvl", "Revll 8"},

	{"Google", "Google pixel"},
	{"Chromebook", "Chrome book"},
	{"Flip Phone", "Flip Phone 3"},

	{"Generic", "A13"},
	{"Generic", "A15"},
	{"Generic", "A16"},
	{"Generic", "A35"},
	{"Generic", "A36"},
	{"Generic", "C210"},
	{"Generic", "G310"},
	{"Generic", "G400"},
	{"Generic", "HSI"},
	{"Simcards", "Simcards"},
}

// DefaultInventoryItems returns the catalog every new store starts with.
func DefaultInventoryItems(storeName string) []InventoryItem {
	items := make([]InventoryItem, len(defaultCatalog))
	for i, entry := range defaultCatalog {
		items[i] = InventoryItem{
			StoreID:  storeName,
			SKU:      entry.SKU,
			Name:     entry.Name,
			Quantity: 0,
		}
	}
	return items
}
