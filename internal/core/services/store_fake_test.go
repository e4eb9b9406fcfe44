package services_test

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/tecops/assetdesk/internal/core/domain"
	"github.com/tecops/assetdesk/internal/core/ports"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeStore is an in-memory ports.Store. WithinTx runs fn against the same
// store; rollback is not simulated, tests assert on observable outcomes
// instead. seatConflicts injects version races into UpdateSeats.
type fakeStore struct {
	mu sync.Mutex

	items       map[uuid.UUID]domain.InventoryItem
	devices     map[uuid.UUID]domain.Device
	pools       map[uuid.UUID]domain.LicensePool
	assignments map[uuid.UUID]domain.Assignment
	history     []domain.HistoryEntry
	snapshots   []domain.DeviceSnapshot

	// remaining UpdateSeats calls that fail with ErrWriteConflict
	seatConflicts int
	// counts every UpdateSeats invocation, conflicted or not
	seatUpdateCalls int
	// limit passed to the most recent snapshot List call
	snapshotListLimit int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		items:       map[uuid.UUID]domain.InventoryItem{},
		devices:     map[uuid.UUID]domain.Device{},
		pools:       map[uuid.UUID]domain.LicensePool{},
		assignments: map[uuid.UUID]domain.Assignment{},
	}
}

var _ ports.Store = (*fakeStore)(nil)

func (f *fakeStore) Items() ports.ItemRepository              { return (*fakeItems)(f) }
func (f *fakeStore) Devices() ports.DeviceRepository          { return (*fakeDevices)(f) }
func (f *fakeStore) Pools() ports.LicensePoolRepository       { return (*fakePools)(f) }
func (f *fakeStore) Assignments() ports.AssignmentRepository  { return (*fakeAssignments)(f) }
func (f *fakeStore) History() ports.HistoryRepository         { return (*fakeHistory)(f) }
func (f *fakeStore) Snapshots() ports.SnapshotRepository      { return (*fakeSnapshots)(f) }

func (f *fakeStore) WithinTx(ctx context.Context, fn func(ports.Store) error) error {
	return fn(f)
}

func (f *fakeStore) historyActions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	actions := make([]string, len(f.history))
	for i, e := range f.history {
		actions[i] = e.Action
	}
	return actions
}

type fakeItems fakeStore

func (f *fakeItems) Save(ctx context.Context, item *domain.InventoryItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[item.ID] = *item
	return nil
}

func (f *fakeItems) Get(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (f *fakeItems) Update(ctx context.Context, item *domain.InventoryItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[item.ID]; !ok {
		return domain.NotFoundf("item %s", item.ID)
	}
	f.items[item.ID] = *item
	return nil
}

func (f *fakeItems) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, id)
	return nil
}

func (f *fakeItems) List(ctx context.Context, limit, offset int) ([]domain.InventoryItem, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := make([]domain.InventoryItem, 0, len(f.items))
	for _, item := range f.items {
		all = append(all, item)
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

type fakeDevices fakeStore

func (f *fakeDevices) Save(ctx context.Context, device *domain.Device) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.devices[device.ID] = *device
	return nil
}

func (f *fakeDevices) Get(ctx context.Context, id uuid.UUID) (*domain.Device, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	device, ok := f.devices[id]
	if !ok {
		return nil, nil
	}
	return &device, nil
}

func (f *fakeDevices) GetByItem(ctx context.Context, itemID uuid.UUID) (*domain.Device, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, device := range f.devices {
		if device.ItemID == itemID {
			d := device
			return &d, nil
		}
	}
	return nil, nil
}

func (f *fakeDevices) Update(ctx context.Context, device *domain.Device) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.devices[device.ID]; !ok {
		return domain.NotFoundf("device %s", device.ID)
	}
	f.devices[device.ID] = *device
	return nil
}

func (f *fakeDevices) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.devices, id)
	return nil
}

func (f *fakeDevices) List(ctx context.Context, status domain.DeviceStatus, limit, offset int) ([]domain.Device, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := make([]domain.Device, 0, len(f.devices))
	for _, device := range f.devices {
		if status != "" && device.Status != status {
			continue
		}
		all = append(all, device)
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

type fakePools fakeStore

func (f *fakePools) Save(ctx context.Context, pool *domain.LicensePool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.pools {
		if p.SKU == pool.SKU {
			return domain.Conflictf("pool sku %s already exists", pool.SKU)
		}
	}
	f.pools[pool.ID] = *pool
	return nil
}

func (f *fakePools) Get(ctx context.Context, id uuid.UUID) (*domain.LicensePool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	pool, ok := f.pools[id]
	if !ok {
		return nil, nil
	}
	return &pool, nil
}

func (f *fakePools) GetBySKU(ctx context.Context, sku string) (*domain.LicensePool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, pool := range f.pools {
		if pool.SKU == sku {
			p := pool
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakePools) UpdateSeats(ctx context.Context, id uuid.UUID, allocated, version int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seatUpdateCalls++
	if f.seatConflicts > 0 {
		f.seatConflicts--
		return domain.ErrWriteConflict
	}
	pool, ok := f.pools[id]
	if !ok {
		return domain.NotFoundf("pool %s", id)
	}
	if pool.Version != version {
		return domain.ErrWriteConflict
	}
	pool.Allocated = allocated
	pool.Version++
	f.pools[id] = pool
	return nil
}

func (f *fakePools) List(ctx context.Context, limit, offset int) ([]domain.LicensePool, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := make([]domain.LicensePool, 0, len(f.pools))
	for _, pool := range f.pools {
		all = append(all, pool)
	}
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

type fakeAssignments fakeStore

func (f *fakeAssignments) Save(ctx context.Context, a *domain.Assignment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.assignments[a.ID] = *a
	return nil
}

func (f *fakeAssignments) Get(ctx context.Context, id uuid.UUID) (*domain.Assignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.assignments[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (f *fakeAssignments) Update(ctx context.Context, a *domain.Assignment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.assignments[a.ID]; !ok {
		return domain.NotFoundf("assignment %s", a.ID)
	}
	f.assignments[a.ID] = *a
	return nil
}

func (f *fakeAssignments) FindActiveByItem(ctx context.Context, itemID uuid.UUID) (*domain.Assignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.assignments {
		if a.ItemID != nil && *a.ItemID == itemID && a.Status == domain.AssignmentAssigned {
			out := a
			return &out, nil
		}
	}
	return nil, nil
}

type fakeHistory fakeStore

func (f *fakeHistory) Append(ctx context.Context, entry *domain.HistoryEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.history = append(f.history, *entry)
	return nil
}

func (f *fakeHistory) List(ctx context.Context, limit, offset int) ([]domain.HistoryEntry, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := int64(len(f.history))
	// Newest first
	reversed := make([]domain.HistoryEntry, len(f.history))
	for i, e := range f.history {
		reversed[len(f.history)-1-i] = e
	}
	if offset >= len(reversed) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(reversed) {
		end = len(reversed)
	}
	return reversed[offset:end], total, nil
}

type fakeSnapshots fakeStore

func (f *fakeSnapshots) Save(ctx context.Context, snap *domain.DeviceSnapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snapshots = append(f.snapshots, *snap)
	return nil
}

func (f *fakeSnapshots) List(ctx context.Context, limit int) ([]domain.DeviceSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snapshotListLimit = limit
	out := make([]domain.DeviceSnapshot, 0, limit)
	for i := len(f.snapshots) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, f.snapshots[i])
	}
	return out, nil
}
