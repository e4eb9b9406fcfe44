// internal/core/ports/services.go
package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/tecops/assetdesk/internal/core/domain"
)

// ListParams holds limit/offset pagination for listing endpoints
type ListParams struct {
	Limit  int
	Offset int
}

// Normalize clamps the parameters to sane bounds
func (p *ListParams) Normalize(defaultLimit, maxLimit int) {
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// ItemList holds one page of inventory items
type ItemList struct {
	Items      []domain.InventoryItem `json:"items"`
	Limit      int                    `json:"limit"`
	Offset     int                    `json:"offset"`
	TotalCount int64                  `json:"total_count"`
}

// PoolList holds one page of license pools
type PoolList struct {
	Pools      []domain.LicensePool `json:"pools"`
	Limit      int                  `json:"limit"`
	Offset     int                  `json:"offset"`
	TotalCount int64                `json:"total_count"`
}

// DeviceList holds one page of devices
type DeviceList struct {
	Devices    []domain.Device `json:"devices"`
	Limit      int             `json:"limit"`
	Offset     int             `json:"offset"`
	TotalCount int64           `json:"total_count"`
}

// HistoryList holds one page of audit entries, newest first
type HistoryList struct {
	Entries    []domain.HistoryEntry `json:"entries"`
	Limit      int                   `json:"limit"`
	Offset     int                   `json:"offset"`
	TotalCount int64                 `json:"total_count"`
}

// InventoryService is the application port for item CRUD, bulk import and
// the audit trail. Every mutating call writes its history entry in the same
// transaction as the state change.
type InventoryService interface {
	CreateItem(ctx context.Context, item *domain.InventoryItem, actor string) (*domain.InventoryItem, error)
	GetItem(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error)
	UpdateItem(ctx context.Context, id uuid.UUID, patch domain.ItemPatch, actor string) (*domain.InventoryItem, error)
	DeleteItem(ctx context.Context, id uuid.UUID, actor string) error
	ListItems(ctx context.Context, params ListParams) (*ItemList, error)
	BulkImport(ctx context.Context, items []domain.InventoryItem, actor string) (int, error)
	ListHistory(ctx context.Context, params ListParams) (*HistoryList, error)
}

// AllocationService is the application port for license pools, assignments
// and physical devices.
type AllocationService interface {
	CreatePool(ctx context.Context, pool *domain.LicensePool, actor string) (*domain.LicensePool, error)
	ListPools(ctx context.Context, params ListParams) (*PoolList, error)
	Allocate(ctx context.Context, poolID uuid.UUID, userUPN, directoryDeviceID, actor string) (*domain.Assignment, error)
	Return(ctx context.Context, assignmentID uuid.UUID, actor string) (*domain.Assignment, error)
	AssignItem(ctx context.Context, itemID uuid.UUID, userUPN, directoryDeviceID, actor string) (*domain.Assignment, error)
	UnassignByItem(ctx context.Context, itemID uuid.UUID, actor string) (*domain.Assignment, error)

	CreateDeviceAtomic(ctx context.Context, item *domain.InventoryItem, device *domain.Device, actor string) (*domain.Device, error)
	GetDevice(ctx context.Context, id uuid.UUID) (*domain.Device, error)
	UpdateDevice(ctx context.Context, id uuid.UUID, patch domain.DevicePatch, actor string) (*domain.Device, error)
	DeleteDevice(ctx context.Context, id uuid.UUID, actor string) error
	ListDevices(ctx context.Context, status domain.DeviceStatus, params ListParams) (*DeviceList, error)
}

// ReconcileService is the application port for the reconciliation bridge:
// live directory summaries, persisted snapshots and the cached user list.
type ReconcileService interface {
	LiveSummary(ctx context.Context) (*domain.DeviceSummary, error)
	RunSnapshot(ctx context.Context) (*domain.DeviceSnapshot, error)
	ListSnapshots(ctx context.Context, limit int) ([]domain.DeviceSnapshot, error)
	Users(ctx context.Context) ([]domain.DirectoryUser, error)
}
