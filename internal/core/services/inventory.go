// internal/core/services/inventory.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tecops/assetdesk/internal/core/domain"
	"github.com/tecops/assetdesk/internal/core/ports"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

// InventoryService handles item CRUD, bulk import and the audit trail.
// Every mutation writes its history entry in the same transaction as the
// state change, so the trail never drifts from the data.
type InventoryService struct {
	store  ports.Store
	logger *slog.Logger
}

// Statically assert that *InventoryService implements the InventoryService interface.
var _ ports.InventoryService = (*InventoryService)(nil)

// NewInventoryService creates a new inventory service
func NewInventoryService(store ports.Store, logger *slog.Logger) *InventoryService {
	return &InventoryService{
		store:  store,
		logger: logger.With(slog.String("service", "inventory")),
	}
}

// CreateItem validates and persists a new inventory item
func (s *InventoryService) CreateItem(ctx context.Context, item *domain.InventoryItem, actor string) (*domain.InventoryItem, error) {
	if err := item.Validate(); err != nil {
		return nil, domain.Invalidf("%s", err)
	}
	item.PrepareForStorage()

	err := s.store.WithinTx(ctx, func(tx ports.Store) error {
		if err := tx.Items().Save(ctx, item); err != nil {
			return fmt.Errorf("save item: %w", err)
		}
		entry := domain.NewHistoryEntry(domain.ActionCreateItem, actor, map[string]any{
			"item_id": item.ID.String(),
			"sku":     item.SKU,
			"name":    item.Name,
		})
		return tx.History().Append(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "created inventory item",
		slog.String("item_id", item.ID.String()),
		slog.String("sku", item.SKU))
	return item, nil
}

// GetItem retrieves an inventory item by ID
func (s *InventoryService) GetItem(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error) {
	item, err := s.store.Items().Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if item == nil {
		return nil, domain.NotFoundf("item %s", id)
	}
	return item, nil
}

// UpdateItem applies a partial update to an existing item. The audit entry
// records the literal patch, not the merged result.
func (s *InventoryService) UpdateItem(ctx context.Context, id uuid.UUID, patch domain.ItemPatch, actor string) (*domain.InventoryItem, error) {
	if patch.Empty() {
		return nil, domain.Invalidf("empty patch")
	}

	var updated *domain.InventoryItem
	err := s.store.WithinTx(ctx, func(tx ports.Store) error {
		item, err := tx.Items().Get(ctx, id)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		if item == nil {
			return domain.NotFoundf("item %s", id)
		}

		patch.Apply(item)
		if err := item.Validate(); err != nil {
			return domain.Invalidf("%s", err)
		}
		item.UpdatedAt = time.Now().UTC()
		item.Version++

		if err := tx.Items().Update(ctx, item); err != nil {
			return fmt.Errorf("update item: %w", err)
		}

		entry := domain.NewHistoryEntry(domain.ActionUpdateItem, actor, map[string]any{
			"item_id": item.ID.String(),
			"patch":   patch.Fields(),
		})
		if err := tx.History().Append(ctx, entry); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "updated inventory item",
		slog.String("item_id", id.String()))
	return updated, nil
}

// DeleteItem removes an item along with any device detail attached to it.
// Items with an active assignment cannot be deleted.
func (s *InventoryService) DeleteItem(ctx context.Context, id uuid.UUID, actor string) error {
	err := s.store.WithinTx(ctx, func(tx ports.Store) error {
		item, err := tx.Items().Get(ctx, id)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		if item == nil {
			return domain.NotFoundf("item %s", id)
		}

		active, err := tx.Assignments().FindActiveByItem(ctx, id)
		if err != nil {
			return fmt.Errorf("find active assignment: %w", err)
		}
		if active != nil {
			return domain.Conflictf("item %s has an active assignment", id)
		}

		device, err := tx.Devices().GetByItem(ctx, id)
		if err != nil {
			return fmt.Errorf("get device: %w", err)
		}
		if device != nil {
			if err := tx.Devices().Delete(ctx, device.ID); err != nil {
				return fmt.Errorf("delete device: %w", err)
			}
		}

		if err := tx.Items().Delete(ctx, id); err != nil {
			return fmt.Errorf("delete item: %w", err)
		}

		entry := domain.NewHistoryEntry(domain.ActionDeleteItem, actor, map[string]any{
			"item_id": id.String(),
			"sku":     item.SKU,
		})
		return tx.History().Append(ctx, entry)
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "deleted inventory item",
		slog.String("item_id", id.String()))
	return nil
}

// ListItems returns one page of inventory items
func (s *InventoryService) ListItems(ctx context.Context, params ports.ListParams) (*ports.ItemList, error) {
	params.Normalize(defaultPageSize, maxPageSize)

	items, total, err := s.store.Items().List(ctx, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return &ports.ItemList{
		Items:      items,
		Limit:      params.Limit,
		Offset:     params.Offset,
		TotalCount: total,
	}, nil
}

// BulkImport persists a batch of items in one transaction with a single
// audit entry. Any invalid record aborts the whole batch.
func (s *InventoryService) BulkImport(ctx context.Context, items []domain.InventoryItem, actor string) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	for i := range items {
		if err := items[i].Validate(); err != nil {
			return 0, domain.Invalidf("record %d: %s", i, err)
		}
		items[i].PrepareForStorage()
	}

	err := s.store.WithinTx(ctx, func(tx ports.Store) error {
		for i := range items {
			if err := tx.Items().Save(ctx, &items[i]); err != nil {
				return fmt.Errorf("save record %d: %w", i, err)
			}
		}
		entry := domain.NewHistoryEntry(domain.ActionBulkImport, actor, map[string]any{
			"count": len(items),
		})
		return tx.History().Append(ctx, entry)
	})
	if err != nil {
		return 0, err
	}

	s.logger.InfoContext(ctx, "bulk imported inventory items",
		slog.Int("count", len(items)))
	return len(items), nil
}

// ListHistory returns one page of the audit trail, newest first
func (s *InventoryService) ListHistory(ctx context.Context, params ports.ListParams) (*ports.HistoryList, error) {
	params.Normalize(defaultPageSize, maxPageSize)

	entries, total, err := s.store.History().List(ctx, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return &ports.HistoryList{
		Entries:    entries,
		Limit:      params.Limit,
		Offset:     params.Offset,
		TotalCount: total,
	}, nil
}
