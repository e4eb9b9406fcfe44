// internal/core/domain/inventory.go
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ItemCategory represents what kind of asset an inventory item tracks
type ItemCategory string

// Category constants
const (
	CategoryDevice    ItemCategory = "device"
	CategoryAccessory ItemCategory = "accessory"
	CategoryLicense   ItemCategory = "license"
)

// InventoryItem represents a single stock-keeping unit. SKUs are not unique:
// multiple physical units may share one SKU. Quantity is only meaningful for
// fungible stock (cables, chargers); uniquely tracked devices carry a Device
// record instead.
type InventoryItem struct {
	ID        uuid.UUID      `json:"id"`
	SKU       string         `json:"sku"`
	Name      string         `json:"name"`
	Category  ItemCategory   `json:"category"`
	Quantity  int            `json:"quantity"`
	Location  string         `json:"location,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Version   int            `json:"version"`
}

// Validate performs domain validation on the inventory item
func (i *InventoryItem) Validate() error {
	if i.SKU == "" {
		return fmt.Errorf("sku is required")
	}
	if i.Name == "" {
		return fmt.Errorf("name is required")
	}
	if i.Quantity < 0 {
		return fmt.Errorf("quantity cannot be negative")
	}
	switch i.Category {
	case CategoryDevice, CategoryAccessory, CategoryLicense:
	case "":
		i.Category = CategoryDevice
	default:
		return fmt.Errorf("unknown category: %s", i.Category)
	}
	return nil
}

// PrepareForStorage assigns identity, timestamps and the initial version
func (i *InventoryItem) PrepareForStorage() {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	now := time.Now().UTC()
	if i.CreatedAt.IsZero() {
		i.CreatedAt = now
	}
	i.UpdatedAt = now
	if i.Version == 0 {
		i.Version = 1
	}
	if i.Metadata == nil {
		i.Metadata = map[string]any{}
	}
}

// LicensePool represents a fungible license entitlement with a fixed seat
// count. Invariant: 0 <= Allocated <= Total at all times.
type LicensePool struct {
	ID          uuid.UUID      `json:"id"`
	SKU         string         `json:"sku"`
	DisplayName string         `json:"display_name,omitempty"`
	Total       int            `json:"total"`
	Allocated   int            `json:"allocated"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Version     int            `json:"version"`
}

// Available returns the number of seats left for allocation
func (p *LicensePool) Available() int {
	return p.Total - p.Allocated
}

// Validate performs domain validation on the license pool
func (p *LicensePool) Validate() error {
	if p.SKU == "" {
		return fmt.Errorf("sku is required")
	}
	if p.Total < 0 {
		return fmt.Errorf("total cannot be negative")
	}
	if p.Allocated < 0 || p.Allocated > p.Total {
		return fmt.Errorf("allocated must be between 0 and total")
	}
	return nil
}

// PrepareForStorage assigns identity and timestamps
func (p *LicensePool) PrepareForStorage() {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	if p.Version == 0 {
		p.Version = 1
	}
	if p.Metadata == nil {
		p.Metadata = map[string]any{}
	}
}
