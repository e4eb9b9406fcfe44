package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tecops/assetdesk/internal/core/domain"
	"github.com/tecops/assetdesk/internal/core/ports"
	"github.com/tecops/assetdesk/internal/core/services"
)

func newInventoryService(store ports.Store) *services.InventoryService {
	return services.NewInventoryService(store, testLogger())
}

func TestCreateItem(t *testing.T) {
	store := newFakeStore()
	svc := newInventoryService(store)

	item := &domain.InventoryItem{
		SKU:      "LAP-5540",
		Name:     "Dell Latitude 5540",
		Category: domain.CategoryDevice,
		Quantity: 4,
	}

	created, err := svc.CreateItem(context.Background(), item, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, 1, created.Version)
	assert.False(t, created.CreatedAt.IsZero())

	stored, err := store.Items().Get(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "LAP-5540", stored.SKU)

	assert.Equal(t, []string{domain.ActionCreateItem}, store.historyActions())
}

func TestCreateItemInvalid(t *testing.T) {
	store := newFakeStore()
	svc := newInventoryService(store)

	_, err := svc.CreateItem(context.Background(), &domain.InventoryItem{Name: "no sku"}, "alice")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalid)
	assert.Empty(t, store.historyActions())
}

func TestCreateItemDuplicateSKUAllowed(t *testing.T) {
	store := newFakeStore()
	svc := newInventoryService(store)

	for i := 0; i < 2; i++ {
		_, err := svc.CreateItem(context.Background(), &domain.InventoryItem{
			SKU:      "USB-C-DOCK",
			Name:     "Dock",
			Category: domain.CategoryAccessory,
			Quantity: 1,
		}, "alice")
		require.NoError(t, err)
	}

	list, err := svc.ListItems(context.Background(), ports.ListParams{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, list.TotalCount)
}

func TestGetItemNotFound(t *testing.T) {
	svc := newInventoryService(newFakeStore())

	_, err := svc.GetItem(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateItem(t *testing.T) {
	store := newFakeStore()
	svc := newInventoryService(store)

	created, err := svc.CreateItem(context.Background(), &domain.InventoryItem{
		SKU:      "MON-U2723",
		Name:     "UltraSharp 27",
		Category: domain.CategoryDevice,
		Quantity: 2,
	}, "alice")
	require.NoError(t, err)

	name := "UltraSharp 27 QE"
	qty := 5
	updated, err := svc.UpdateItem(context.Background(), created.ID, domain.ItemPatch{
		Name:     &name,
		Quantity: &qty,
	}, "bob")
	require.NoError(t, err)

	assert.Equal(t, "UltraSharp 27 QE", updated.Name)
	assert.Equal(t, 5, updated.Quantity)
	assert.Equal(t, "MON-U2723", updated.SKU)
	assert.Equal(t, 2, updated.Version)

	assert.Equal(t, []string{domain.ActionCreateItem, domain.ActionUpdateItem}, store.historyActions())
}

func TestUpdateItemEmptyPatch(t *testing.T) {
	svc := newInventoryService(newFakeStore())

	_, err := svc.UpdateItem(context.Background(), uuid.New(), domain.ItemPatch{}, "alice")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalid)
}

func TestUpdateItemNotFound(t *testing.T) {
	svc := newInventoryService(newFakeStore())

	name := "ghost"
	_, err := svc.UpdateItem(context.Background(), uuid.New(), domain.ItemPatch{Name: &name}, "alice")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteItem(t *testing.T) {
	store := newFakeStore()
	svc := newInventoryService(store)

	created, err := svc.CreateItem(context.Background(), &domain.InventoryItem{
		SKU:      "HS-EVOLVE",
		Name:     "Jabra Evolve2",
		Category: domain.CategoryAccessory,
		Quantity: 1,
	}, "alice")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteItem(context.Background(), created.ID, "alice"))

	_, err = svc.GetItem(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, []string{domain.ActionCreateItem, domain.ActionDeleteItem}, store.historyActions())
}

func TestDeleteItemWithActiveAssignment(t *testing.T) {
	store := newFakeStore()
	svc := newInventoryService(store)

	created, err := svc.CreateItem(context.Background(), &domain.InventoryItem{
		SKU:      "LAP-5540",
		Name:     "Dell Latitude 5540",
		Category: domain.CategoryDevice,
		Quantity: 1,
	}, "alice")
	require.NoError(t, err)

	a := domain.NewItemAssignment(created.ID, "bob@corp.example", "", "alice")
	require.NoError(t, store.Assignments().Save(context.Background(), a))

	err = svc.DeleteItem(context.Background(), created.ID, "alice")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)

	// Nothing was removed
	stored, err := store.Items().Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.NotNil(t, stored)
}

func TestDeleteItemCascadesDevice(t *testing.T) {
	store := newFakeStore()
	svc := newInventoryService(store)

	created, err := svc.CreateItem(context.Background(), &domain.InventoryItem{
		SKU:      "LAP-5540",
		Name:     "Dell Latitude 5540",
		Category: domain.CategoryDevice,
		Quantity: 1,
	}, "alice")
	require.NoError(t, err)

	device := &domain.Device{
		ItemID: created.ID,
		Type:   domain.DeviceLaptop,
		Status: domain.StatusInStock,
		Serial: "SN-123",
	}
	device.PrepareForStorage()
	require.NoError(t, store.Devices().Save(context.Background(), device))

	require.NoError(t, svc.DeleteItem(context.Background(), created.ID, "alice"))

	gone, err := store.Devices().Get(context.Background(), device.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestBulkImport(t *testing.T) {
	store := newFakeStore()
	svc := newInventoryService(store)

	items := []domain.InventoryItem{
		{SKU: "A-1", Name: "one", Category: domain.CategoryDevice, Quantity: 1},
		{SKU: "A-2", Name: "two", Category: domain.CategoryLicense, Quantity: 10},
		{SKU: "A-3", Name: "three", Category: domain.CategoryAccessory, Quantity: 3},
	}

	count, err := svc.BulkImport(context.Background(), items, "importer")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	list, err := svc.ListItems(context.Background(), ports.ListParams{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, list.TotalCount)

	// One audit entry for the whole batch
	assert.Equal(t, []string{domain.ActionBulkImport}, store.historyActions())
}

func TestBulkImportEmpty(t *testing.T) {
	store := newFakeStore()
	svc := newInventoryService(store)

	count, err := svc.BulkImport(context.Background(), nil, "importer")
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, store.historyActions())
}

func TestBulkImportInvalidRecordAborts(t *testing.T) {
	store := newFakeStore()
	svc := newInventoryService(store)

	items := []domain.InventoryItem{
		{SKU: "A-1", Name: "one", Category: domain.CategoryDevice, Quantity: 1},
		{SKU: "", Name: "bad", Category: domain.CategoryDevice, Quantity: 1},
	}

	count, err := svc.BulkImport(context.Background(), items, "importer")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalid)
	assert.Contains(t, err.Error(), "record 1")
	assert.Zero(t, count)

	list, err := svc.ListItems(context.Background(), ports.ListParams{})
	require.NoError(t, err)
	assert.Zero(t, list.TotalCount)
}

func TestListItemsNormalizesParams(t *testing.T) {
	svc := newInventoryService(newFakeStore())

	list, err := svc.ListItems(context.Background(), ports.ListParams{Limit: -5, Offset: -1})
	require.NoError(t, err)
	assert.Equal(t, 50, list.Limit)
	assert.Zero(t, list.Offset)

	list, err = svc.ListItems(context.Background(), ports.ListParams{Limit: 9999})
	require.NoError(t, err)
	assert.Equal(t, 500, list.Limit)
}

func TestListHistoryNewestFirst(t *testing.T) {
	store := newFakeStore()
	svc := newInventoryService(store)

	first, err := svc.CreateItem(context.Background(), &domain.InventoryItem{
		SKU: "A-1", Name: "one", Category: domain.CategoryDevice, Quantity: 1,
	}, "alice")
	require.NoError(t, err)
	require.NoError(t, svc.DeleteItem(context.Background(), first.ID, "alice"))

	page, err := svc.ListHistory(context.Background(), ports.ListParams{Limit: 10})
	require.NoError(t, err)
	require.Len(t, page.Entries, 2)
	assert.Equal(t, domain.ActionDeleteItem, page.Entries[0].Action)
	assert.Equal(t, domain.ActionCreateItem, page.Entries[1].Action)
}
