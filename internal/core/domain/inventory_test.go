package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tecops/assetdesk/internal/core/domain"
)

func TestInventoryItemValidate(t *testing.T) {
	tests := []struct {
		name    string
		item    domain.InventoryItem
		wantErr string
	}{
		{
			name: "valid_item",
			item: domain.InventoryItem{SKU: "LT-001", Name: "Laptop", Category: domain.CategoryDevice, Quantity: 1},
		},
		{
			name:    "missing_sku",
			item:    domain.InventoryItem{Name: "Laptop"},
			wantErr: "sku is required",
		},
		{
			name:    "missing_name",
			item:    domain.InventoryItem{SKU: "LT-001"},
			wantErr: "name is required",
		},
		{
			name:    "negative_quantity",
			item:    domain.InventoryItem{SKU: "LT-001", Name: "Laptop", Quantity: -1},
			wantErr: "quantity cannot be negative",
		},
		{
			name:    "unknown_category",
			item:    domain.InventoryItem{SKU: "LT-001", Name: "Laptop", Category: "furniture"},
			wantErr: "unknown category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestInventoryItemValidateDefaultsCategory(t *testing.T) {
	item := domain.InventoryItem{SKU: "LT-001", Name: "Laptop"}

	require.NoError(t, item.Validate())
	assert.Equal(t, domain.CategoryDevice, item.Category)
}

func TestInventoryItemPrepareForStorage(t *testing.T) {
	item := domain.InventoryItem{SKU: "LT-001", Name: "Laptop"}

	item.PrepareForStorage()

	assert.NotEqual(t, uuid.Nil, item.ID)
	assert.False(t, item.CreatedAt.IsZero())
	assert.False(t, item.UpdatedAt.IsZero())
	assert.Equal(t, 1, item.Version)
	assert.NotNil(t, item.Metadata)
}

func TestInventoryItemPrepareForStoragePreservesIdentity(t *testing.T) {
	id := uuid.New()
	item := domain.InventoryItem{ID: id, SKU: "LT-001", Name: "Laptop", Version: 3}

	item.PrepareForStorage()

	assert.Equal(t, id, item.ID)
	assert.Equal(t, 3, item.Version)
}

func TestLicensePoolAvailable(t *testing.T) {
	pool := domain.LicensePool{Total: 10, Allocated: 7}
	assert.Equal(t, 3, pool.Available())

	pool.Allocated = 10
	assert.Equal(t, 0, pool.Available())
}

func TestLicensePoolValidate(t *testing.T) {
	tests := []struct {
		name    string
		pool    domain.LicensePool
		wantErr string
	}{
		{
			name: "valid_pool",
			pool: domain.LicensePool{SKU: "O365-E3", Total: 100},
		},
		{
			name: "zero_seats_is_valid",
			pool: domain.LicensePool{SKU: "O365-E3", Total: 0},
		},
		{
			name:    "missing_sku",
			pool:    domain.LicensePool{Total: 100},
			wantErr: "sku is required",
		},
		{
			name:    "negative_total",
			pool:    domain.LicensePool{SKU: "O365-E3", Total: -1},
			wantErr: "total cannot be negative",
		},
		{
			name:    "allocated_exceeds_total",
			pool:    domain.LicensePool{SKU: "O365-E3", Total: 5, Allocated: 6},
			wantErr: "allocated must be between 0 and total",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.pool.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestItemPatch(t *testing.T) {
	empty := domain.ItemPatch{}
	assert.True(t, empty.Empty())

	name := "Renamed"
	quantity := 5
	patch := domain.ItemPatch{Name: &name, Quantity: &quantity}
	assert.False(t, patch.Empty())

	item := domain.InventoryItem{SKU: "LT-001", Name: "Laptop", Quantity: 1, Location: "Storage A"}
	patch.Apply(&item)

	assert.Equal(t, "Renamed", item.Name)
	assert.Equal(t, 5, item.Quantity)
	assert.Equal(t, "LT-001", item.SKU)
	assert.Equal(t, "Storage A", item.Location)

	fields := patch.Fields()
	assert.Equal(t, map[string]any{"name": "Renamed", "quantity": 5}, fields)
}

func TestDevicePatch(t *testing.T) {
	empty := domain.DevicePatch{}
	assert.True(t, empty.Empty())

	status := domain.StatusRetired
	serial := "NEW-SERIAL"
	patch := domain.DevicePatch{Status: &status, Serial: &serial}

	device := domain.Device{Serial: "OLD", Status: domain.StatusInStock, Model: "Latitude"}
	patch.Apply(&device)

	assert.Equal(t, domain.StatusRetired, device.Status)
	assert.Equal(t, "NEW-SERIAL", device.Serial)
	assert.Equal(t, "Latitude", device.Model)

	fields := patch.Fields()
	assert.Equal(t, "retired", fields["status"])
	assert.Equal(t, "NEW-SERIAL", fields["serial"])
}

func TestDeviceValidateDefaults(t *testing.T) {
	device := domain.Device{}

	require.NoError(t, device.Validate())
	assert.Equal(t, domain.DeviceLaptop, device.Type)
	assert.Equal(t, domain.StatusInStock, device.Status)
}

func TestDeviceValidateRejectsUnknown(t *testing.T) {
	device := domain.Device{Type: "Toaster"}
	assert.Error(t, device.Validate())

	device = domain.Device{Status: "lost"}
	assert.Error(t, device.Validate())
}
