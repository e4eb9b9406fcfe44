// internal/core/domain/device.go
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DeviceType represents the hardware category of a tracked device
type DeviceType string

// Device type constants
const (
	DeviceLaptop    DeviceType = "Laptop"
	DeviceMonitor   DeviceType = "Monitor"
	DevicePhone     DeviceType = "Phone"
	DeviceTablet    DeviceType = "Tablet"
	DeviceAccessory DeviceType = "Accessory"
	DeviceOther     DeviceType = "Other"
)

// DeviceStatus represents the lifecycle state of a physical device
type DeviceStatus string

// Device status constants. StatusInUse and the existence of an active
// assignment on the device's item must always agree.
const (
	StatusInStock  DeviceStatus = "in_stock"
	StatusInUse    DeviceStatus = "in_use"
	StatusReserved DeviceStatus = "reserved"
	StatusRetired  DeviceStatus = "retired"
)

// Device holds the physical-asset detail for an inventory item, one-to-one
// with the item it references.
type Device struct {
	ID              uuid.UUID      `json:"id"`
	ItemID          uuid.UUID      `json:"item_id"`
	Type            DeviceType     `json:"device_type"`
	Company         string         `json:"company,omitempty"`
	AssetTag        string         `json:"asset_tag,omitempty"`
	Serial          string         `json:"serial,omitempty"`
	Model           string         `json:"model,omitempty"`
	Status          DeviceStatus   `json:"status"`
	AssignedUserUPN string         `json:"assigned_to_upn,omitempty"`
	AssignedUserID  string         `json:"assigned_to_id,omitempty"`
	OS              string         `json:"os,omitempty"`
	DirectoryID     string         `json:"directory_id,omitempty"`
	Notes           map[string]any `json:"notes,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// Validate performs domain validation on the device
func (d *Device) Validate() error {
	switch d.Type {
	case DeviceLaptop, DeviceMonitor, DevicePhone, DeviceTablet, DeviceAccessory, DeviceOther:
	case "":
		d.Type = DeviceLaptop
	default:
		return fmt.Errorf("unknown device type: %s", d.Type)
	}
	switch d.Status {
	case StatusInStock, StatusInUse, StatusReserved, StatusRetired:
	case "":
		d.Status = StatusInStock
	default:
		return fmt.Errorf("unknown device status: %s", d.Status)
	}
	return nil
}

// PrepareForStorage assigns identity and timestamps
func (d *Device) PrepareForStorage() {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	now := time.Now().UTC()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	d.UpdatedAt = now
	if d.Notes == nil {
		d.Notes = map[string]any{}
	}
}
