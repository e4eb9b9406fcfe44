// internal/core/ports/store.go
package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/tecops/assetdesk/internal/core/domain"
)

// ItemRepository defines the persistence port for inventory items.
// Lookup methods return (nil, nil) when the row is absent.
type ItemRepository interface {
	Save(ctx context.Context, item *domain.InventoryItem) error
	Get(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error)
	Update(ctx context.Context, item *domain.InventoryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, limit, offset int) ([]domain.InventoryItem, int64, error)
}

// DeviceRepository defines the persistence port for physical-device detail
type DeviceRepository interface {
	Save(ctx context.Context, device *domain.Device) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Device, error)
	GetByItem(ctx context.Context, itemID uuid.UUID) (*domain.Device, error)
	Update(ctx context.Context, device *domain.Device) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, status domain.DeviceStatus, limit, offset int) ([]domain.Device, int64, error)
}

// LicensePoolRepository defines the persistence port for license pools.
// Save surfaces duplicate SKUs as domain.ErrConflict. UpdateSeats writes the
// new allocation count guarded by the pool's version and returns
// domain.ErrWriteConflict when a concurrent writer won the race.
type LicensePoolRepository interface {
	Save(ctx context.Context, pool *domain.LicensePool) error
	Get(ctx context.Context, id uuid.UUID) (*domain.LicensePool, error)
	GetBySKU(ctx context.Context, sku string) (*domain.LicensePool, error)
	UpdateSeats(ctx context.Context, id uuid.UUID, allocated, version int) error
	List(ctx context.Context, limit, offset int) ([]domain.LicensePool, int64, error)
}

// AssignmentRepository defines the persistence port for assignments.
// Assignments are never deleted, only saved and status-updated.
type AssignmentRepository interface {
	Save(ctx context.Context, a *domain.Assignment) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Assignment, error)
	Update(ctx context.Context, a *domain.Assignment) error
	FindActiveByItem(ctx context.Context, itemID uuid.UUID) (*domain.Assignment, error)
}

// HistoryRepository is the append-only audit trail port
type HistoryRepository interface {
	Append(ctx context.Context, entry *domain.HistoryEntry) error
	List(ctx context.Context, limit, offset int) ([]domain.HistoryEntry, int64, error)
}

// SnapshotRepository persists immutable device snapshots
type SnapshotRepository interface {
	Save(ctx context.Context, snap *domain.DeviceSnapshot) error
	List(ctx context.Context, limit int) ([]domain.DeviceSnapshot, error)
}

// Store bundles the entity repositories behind one transactional boundary.
// WithinTx runs fn against a Store whose repositories share a single
// transaction; fn returning an error rolls everything back.
type Store interface {
	Items() ItemRepository
	Devices() DeviceRepository
	Pools() LicensePoolRepository
	Assignments() AssignmentRepository
	History() HistoryRepository
	Snapshots() SnapshotRepository
	WithinTx(ctx context.Context, fn func(Store) error) error
}
