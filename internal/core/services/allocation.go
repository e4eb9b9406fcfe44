// internal/core/services/allocation.go
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

// AllocationService drives the state-transition engine: license pools,
// assignments and physical devices. Seat counters use optimistic versioned
// writes; a lost race is retried a bounded number of times before the
// conflict surfaces.
type AllocationService struct {
	store  ports.Store
	retry  RetryPolicy
	logger *slog.Logger
}

// Statically assert that *AllocationService implements the AllocationService interface.
var _ ports.AllocationService = (*AllocationService)(nil)

// NewAllocationService creates a new allocation service
func NewAllocationService(store ports.Store, logger *slog.Logger) *AllocationService {
	return &AllocationService{
		store:  store,
		retry:  DefaultRetryPolicy,
		logger: logger.With(slog.String("service", "allocation")),
	}
}

// CreatePool validates and persists a new license pool. Pool SKUs are
// unique; a collision reports a conflict.
func (s *AllocationService) CreatePool(ctx context.Context, pool *domain.LicensePool, actor string) (*domain.LicensePool, error) {
	if err := pool.Validate(); err != nil {
		return nil, domain.Invalidf("%s", err)
	}
	pool.PrepareForStorage()

	err := s.store.WithinTx(ctx, func(tx ports.Store) error {
		existing, err := tx.Pools().GetBySKU(ctx, pool.SKU)
		if err != nil {
			return fmt.Errorf("check pool sku: %w", err)
		}
		if existing != nil {
			return domain.Conflictf("license pool with sku %s already exists", pool.SKU)
		}
		if err := tx.Pools().Save(ctx, pool); err != nil {
			return fmt.Errorf("save pool: %w", err)
		}
		entry := domain.NewHistoryEntry(domain.ActionCreateLicensePool, actor, map[string]any{
			"license_id": pool.ID.String(),
			"sku":        pool.SKU,
			"total":      pool.Total,
		})
		return tx.History().Append(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "created license pool",
		slog.String("license_id", pool.ID.String()),
		slog.String("sku", pool.SKU),
		slog.Int("total", pool.Total))
	return pool, nil
}

// ListPools returns one page of license pools
func (s *AllocationService) ListPools(ctx context.Context, params ports.ListParams) (*ports.PoolList, error) {
	params.Normalize(defaultPageSize, maxPageSize)

	pools, total, err := s.store.Pools().List(ctx, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("list pools: %w", err)
	}
	return &ports.PoolList{
		Pools:      pools,
		Limit:      params.Limit,
		Offset:     params.Offset,
		TotalCount: total,
	}, nil
}

// Allocate consumes one seat from the pool and records the assignment.
// The seat update is guarded by the pool's version: a concurrent allocation
// that commits first invalidates this one, and the whole transaction is
// replayed against fresh state. Allocated never exceeds Total.
func (s *AllocationService) Allocate(ctx context.Context, poolID uuid.UUID, userUPN, directoryDeviceID, actor string) (*domain.Assignment, error) {
	var assignment *domain.Assignment

	err := withRetry(ctx, s.retry, func() error {
		return s.store.WithinTx(ctx, func(tx ports.Store) error {
			pool, err := tx.Pools().Get(ctx, poolID)
			if err != nil {
				return fmt.Errorf("get pool: %w", err)
			}
			if pool == nil {
				return domain.NotFoundf("license pool %s", poolID)
			}
			if pool.Available() <= 0 {
				return domain.Invalidf("license pool %s has no seats available", pool.SKU)
			}

			if err := tx.Pools().UpdateSeats(ctx, pool.ID, pool.Allocated+1, pool.Version); err != nil {
				return err
			}

			assignment = domain.NewLicenseAssignment(pool.ID, userUPN, directoryDeviceID, actor)
			if err := assignment.Validate(); err != nil {
				return err
			}
			if err := tx.Assignments().Save(ctx, assignment); err != nil {
				return fmt.Errorf("save assignment: %w", err)
			}

			entry := domain.NewHistoryEntry(domain.ActionAllocateLicense, actor, map[string]any{
				"license_id":    pool.ID.String(),
				"assignment_id": assignment.ID.String(),
				"user_upn":      userUPN,
			})
			return tx.History().Append(ctx, entry)
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "allocated license seat",
		slog.String("license_id", poolID.String()),
		slog.String("assignment_id", assignment.ID.String()),
		slog.String("user_upn", userUPN))
	return assignment, nil
}

// Return closes an active assignment. Dispatch follows the assignment's
// kind: license returns release the pool seat, item returns flip the
// device back to stock. Returning a closed assignment is invalid, not
// idempotent, so double-return bugs surface instead of hiding.
func (s *AllocationService) Return(ctx context.Context, assignmentID uuid.UUID, actor string) (*domain.Assignment, error) {
	var returned *domain.Assignment

	err := withRetry(ctx, s.retry, func() error {
		return s.store.WithinTx(ctx, func(tx ports.Store) error {
			a, err := tx.Assignments().Get(ctx, assignmentID)
			if err != nil {
				return fmt.Errorf("get assignment: %w", err)
			}
			if a == nil {
				return domain.NotFoundf("assignment %s", assignmentID)
			}
			if !a.Active() {
				return domain.Invalidf("assignment %s is already %s", assignmentID, a.Status)
			}

			switch a.Kind {
			case domain.AssignmentLicense:
				if err := s.releaseSeat(ctx, tx, *a.PoolID); err != nil {
					return err
				}
			case domain.AssignmentItem:
				if err := s.releaseItem(ctx, tx, *a.ItemID); err != nil {
					return err
				}
			default:
				return domain.Invalidf("unknown assignment kind: %s", a.Kind)
			}

			a.Status = domain.AssignmentReturned
			if err := tx.Assignments().Update(ctx, a); err != nil {
				return fmt.Errorf("update assignment: %w", err)
			}

			entry := domain.NewHistoryEntry(domain.ActionReturnAssignment, actor, map[string]any{
				"assignment_id": a.ID.String(),
				"kind":          string(a.Kind),
			})
			if err := tx.History().Append(ctx, entry); err != nil {
				return err
			}
			returned = a
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "returned assignment",
		slog.String("assignment_id", assignmentID.String()),
		slog.String("kind", string(returned.Kind)))
	return returned, nil
}

// releaseSeat decrements the pool's allocated count, version-guarded.
// Allocated never goes below zero even if records were mangled by hand.
func (s *AllocationService) releaseSeat(ctx context.Context, tx ports.Store, poolID uuid.UUID) error {
	pool, err := tx.Pools().Get(ctx, poolID)
	if err != nil {
		return fmt.Errorf("get pool: %w", err)
	}
	if pool == nil {
		return domain.NotFoundf("license pool %s", poolID)
	}
	next := pool.Allocated - 1
	if next < 0 {
		next = 0
	}
	return tx.Pools().UpdateSeats(ctx, pool.ID, next, pool.Version)
}

// releaseItem flips the item's device, if any, back to in_stock
func (s *AllocationService) releaseItem(ctx context.Context, tx ports.Store, itemID uuid.UUID) error {
	device, err := tx.Devices().GetByItem(ctx, itemID)
	if err != nil {
		return fmt.Errorf("get device: %w", err)
	}
	if device == nil {
		return nil
	}
	device.Status = domain.StatusInStock
	device.AssignedUserUPN = ""
	device.AssignedUserID = ""
	device.UpdatedAt = time.Now().UTC()
	if err := tx.Devices().Update(ctx, device); err != nil {
		return fmt.Errorf("update device: %w", err)
	}
	return nil
}

// AssignItem checks a physical item out to a user. At most one active
// assignment may exist per item; the item's device, if any, moves to in_use
// in the same transaction.
func (s *AllocationService) AssignItem(ctx context.Context, itemID uuid.UUID, userUPN, directoryDeviceID, actor string) (*domain.Assignment, error) {
	var assignment *domain.Assignment

	err := s.store.WithinTx(ctx, func(tx ports.Store) error {
		item, err := tx.Items().Get(ctx, itemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		if item == nil {
			return domain.NotFoundf("item %s", itemID)
		}

		active, err := tx.Assignments().FindActiveByItem(ctx, itemID)
		if err != nil {
			return fmt.Errorf("find active assignment: %w", err)
		}
		if active != nil {
			return domain.Conflictf("item %s is already assigned", itemID)
		}

		assignment = domain.NewItemAssignment(itemID, userUPN, directoryDeviceID, actor)
		if err := assignment.Validate(); err != nil {
			return err
		}
		if err := tx.Assignments().Save(ctx, assignment); err != nil {
			return fmt.Errorf("save assignment: %w", err)
		}

		device, err := tx.Devices().GetByItem(ctx, itemID)
		if err != nil {
			return fmt.Errorf("get device: %w", err)
		}
		if device != nil {
			device.Status = domain.StatusInUse
			device.AssignedUserUPN = userUPN
			device.AssignedUserID = directoryDeviceID
			device.UpdatedAt = time.Now().UTC()
			if err := tx.Devices().Update(ctx, device); err != nil {
				return fmt.Errorf("update device: %w", err)
			}
		}

		entry := domain.NewHistoryEntry(domain.ActionAssignItem, actor, map[string]any{
			"item_id":       itemID.String(),
			"assignment_id": assignment.ID.String(),
			"user_upn":      userUPN,
		})
		return tx.History().Append(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "assigned item",
		slog.String("item_id", itemID.String()),
		slog.String("assignment_id", assignment.ID.String()),
		slog.String("user_upn", userUPN))
	return assignment, nil
}

// UnassignByItem closes the item's active assignment without the caller
// needing to know the assignment ID.
func (s *AllocationService) UnassignByItem(ctx context.Context, itemID uuid.UUID, actor string) (*domain.Assignment, error) {
	active, err := s.store.Assignments().FindActiveByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("find active assignment: %w", err)
	}
	if active == nil {
		return nil, domain.Invalidf("no active assignment for item %s", itemID)
	}
	return s.Return(ctx, active.ID, actor)
}

// CreateDeviceAtomic persists a new inventory item together with its device
// detail. Either both rows land or neither does.
func (s *AllocationService) CreateDeviceAtomic(ctx context.Context, item *domain.InventoryItem, device *domain.Device, actor string) (*domain.Device, error) {
	if item.Category == "" {
		item.Category = domain.CategoryDevice
	}
	if err := item.Validate(); err != nil {
		return nil, domain.Invalidf("%s", err)
	}
	if err := device.Validate(); err != nil {
		return nil, domain.Invalidf("%s", err)
	}

	item.PrepareForStorage()
	device.ItemID = item.ID
	device.PrepareForStorage()

	err := s.store.WithinTx(ctx, func(tx ports.Store) error {
		if err := tx.Items().Save(ctx, item); err != nil {
			return fmt.Errorf("save item: %w", err)
		}
		if err := tx.Devices().Save(ctx, device); err != nil {
			return fmt.Errorf("save device: %w", err)
		}
		entry := domain.NewHistoryEntry(domain.ActionCreateDevice, actor, map[string]any{
			"item_id":   item.ID.String(),
			"device_id": device.ID.String(),
			"serial":    device.Serial,
		})
		return tx.History().Append(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "created device",
		slog.String("device_id", device.ID.String()),
		slog.String("item_id", item.ID.String()),
		slog.String("serial", device.Serial))
	return device, nil
}

// GetDevice retrieves a device by ID
func (s *AllocationService) GetDevice(ctx context.Context, id uuid.UUID) (*domain.Device, error) {
	device, err := s.store.Devices().Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get device: %w", err)
	}
	if device == nil {
		return nil, domain.NotFoundf("device %s", id)
	}
	return device, nil
}

// UpdateDevice applies a partial update to a device
func (s *AllocationService) UpdateDevice(ctx context.Context, id uuid.UUID, patch domain.DevicePatch, actor string) (*domain.Device, error) {
	if patch.Empty() {
		return nil, domain.Invalidf("empty patch")
	}

	var updated *domain.Device
	err := s.store.WithinTx(ctx, func(tx ports.Store) error {
		device, err := tx.Devices().Get(ctx, id)
		if err != nil {
			return fmt.Errorf("get device: %w", err)
		}
		if device == nil {
			return domain.NotFoundf("device %s", id)
		}

		patch.Apply(device)
		if err := device.Validate(); err != nil {
			return domain.Invalidf("%s", err)
		}
		device.UpdatedAt = time.Now().UTC()

		if err := tx.Devices().Update(ctx, device); err != nil {
			return fmt.Errorf("update device: %w", err)
		}

		entry := domain.NewHistoryEntry(domain.ActionUpdateDevice, actor, map[string]any{
			"device_id": device.ID.String(),
			"patch":     patch.Fields(),
		})
		if err := tx.History().Append(ctx, entry); err != nil {
			return err
		}
		updated = device
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "updated device",
		slog.String("device_id", id.String()))
	return updated, nil
}

// DeleteDevice removes a device and its backing item. The item delete
// enforces the no-active-assignment rule.
func (s *AllocationService) DeleteDevice(ctx context.Context, id uuid.UUID, actor string) error {
	err := s.store.WithinTx(ctx, func(tx ports.Store) error {
		device, err := tx.Devices().Get(ctx, id)
		if err != nil {
			return fmt.Errorf("get device: %w", err)
		}
		if device == nil {
			return domain.NotFoundf("device %s", id)
		}

		active, err := tx.Assignments().FindActiveByItem(ctx, device.ItemID)
		if err != nil {
			return fmt.Errorf("find active assignment: %w", err)
		}
		if active != nil {
			return domain.Conflictf("device %s has an active assignment", id)
		}

		if err := tx.Devices().Delete(ctx, device.ID); err != nil {
			return fmt.Errorf("delete device: %w", err)
		}
		if err := tx.Items().Delete(ctx, device.ItemID); err != nil {
			return fmt.Errorf("delete item: %w", err)
		}

		entry := domain.NewHistoryEntry(domain.ActionDeleteDevice, actor, map[string]any{
			"device_id": device.ID.String(),
			"item_id":   device.ItemID.String(),
		})
		return tx.History().Append(ctx, entry)
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "deleted device",
		slog.String("device_id", id.String()))
	return nil
}

// ListDevices returns one page of devices, optionally filtered by status
func (s *AllocationService) ListDevices(ctx context.Context, status domain.DeviceStatus, params ports.ListParams) (*ports.DeviceList, error) {
	params.Normalize(defaultPageSize, maxPageSize)

	devices, total, err := s.store.Devices().List(ctx, status, params.Limit, params.Offset)
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}
	return &ports.DeviceList{
		Devices:    devices,
		Limit:      params.Limit,
		Offset:     params.Offset,
		TotalCount: total,
	}, nil
}
