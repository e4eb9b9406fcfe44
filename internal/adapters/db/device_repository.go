// internal/adapters/db/device_repository.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tecops/assetdesk/internal/core/domain"
	"github.com/tecops/assetdesk/internal/core/ports"
)

// deviceRepository implements ports.DeviceRepository
type deviceRepository struct {
	q      Querier
	logger *slog.Logger
}

var _ ports.DeviceRepository = (*deviceRepository)(nil)

const deviceColumns = `id, item_id, device_type, company, asset_tag, serial,
	model, status, assigned_to_upn, assigned_to_id, os, directory_id, notes,
	created_at, updated_at`

// Save creates a new device row
func (r *deviceRepository) Save(ctx context.Context, device *domain.Device) error {
	query := `
		INSERT INTO devices (
			id, item_id, device_type, company, asset_tag, serial, model,
			status, assigned_to_upn, assigned_to_id, os, directory_id,
			notes, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := r.q.Exec(ctx, query,
		device.ID, device.ItemID, device.Type,
		nullIfEmpty(device.Company), nullIfEmpty(device.AssetTag),
		nullIfEmpty(device.Serial), nullIfEmpty(device.Model),
		device.Status,
		nullIfEmpty(device.AssignedUserUPN), nullIfEmpty(device.AssignedUserID),
		nullIfEmpty(device.OS), nullIfEmpty(device.DirectoryID),
		device.Notes, device.CreatedAt, device.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save device: %w", err)
	}

	r.logger.DebugContext(ctx, "device saved",
		slog.String("device_id", device.ID.String()),
		slog.String("item_id", device.ItemID.String()))
	return nil
}

// Get retrieves a device by ID, (nil, nil) when absent
func (r *deviceRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices WHERE id = $1`

	device, err := scanDevice(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get device: %w", err)
	}
	return device, nil
}

// GetByItem retrieves the device attached to an inventory item
func (r *deviceRepository) GetByItem(ctx context.Context, itemID uuid.UUID) (*domain.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices WHERE item_id = $1`

	device, err := scanDevice(r.q.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get device by item: %w", err)
	}
	return device, nil
}

// Update overwrites an existing device row
func (r *deviceRepository) Update(ctx context.Context, device *domain.Device) error {
	query := `
		UPDATE devices
		SET device_type = $2, company = $3, asset_tag = $4, serial = $5,
		    model = $6, status = $7, assigned_to_upn = $8, assigned_to_id = $9,
		    os = $10, directory_id = $11, notes = $12, updated_at = $13
		WHERE id = $1`

	tag, err := r.q.Exec(ctx, query,
		device.ID, device.Type,
		nullIfEmpty(device.Company), nullIfEmpty(device.AssetTag),
		nullIfEmpty(device.Serial), nullIfEmpty(device.Model),
		device.Status,
		nullIfEmpty(device.AssignedUserUPN), nullIfEmpty(device.AssignedUserID),
		nullIfEmpty(device.OS), nullIfEmpty(device.DirectoryID),
		device.Notes, device.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update device: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFoundf("device %s", device.ID)
	}
	return nil
}

// Delete removes a device row
func (r *deviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM devices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete device: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFoundf("device %s", id)
	}
	return nil
}

// List returns one page of devices, optionally filtered by status
func (r *deviceRepository) List(ctx context.Context, status domain.DeviceStatus, limit, offset int) ([]domain.Device, int64, error) {
	qb := squirrel.Select(
		"id", "item_id", "device_type", "company", "asset_tag", "serial",
		"model", "status", "assigned_to_upn", "assigned_to_id", "os",
		"directory_id", "notes", "created_at", "updated_at",
	).From("devices").
		PlaceholderFormat(squirrel.Dollar)

	if status != "" {
		qb = qb.Where(squirrel.Eq{"status": status})
	}

	countQB := squirrel.Select("COUNT(*)").
		From("devices").
		PlaceholderFormat(squirrel.Dollar)
	if status != "" {
		countQB = countQB.Where(squirrel.Eq{"status": status})
	}

	var totalCount int64
	countSQL, countArgs, err := countQB.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}
	if err := r.q.QueryRow(ctx, countSQL, countArgs...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count devices: %w", err)
	}

	qb = qb.OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	sqlQuery, args, err := qb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.q.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query devices: %w", err)
	}
	defer rows.Close()

	var devices []domain.Device
	for rows.Next() {
		device, err := scanDevice(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan device: %w", err)
		}
		devices = append(devices, *device)
	}
	return devices, totalCount, rows.Err()
}

func scanDevice(row pgx.Row) (*domain.Device, error) {
	device := &domain.Device{}
	var company, assetTag, serial, model sql.NullString
	var assignedUPN, assignedID, osName, directoryID sql.NullString
	err := row.Scan(
		&device.ID, &device.ItemID, &device.Type, &company, &assetTag,
		&serial, &model, &device.Status, &assignedUPN, &assignedID,
		&osName, &directoryID, &device.Notes,
		&device.CreatedAt, &device.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	device.Company = company.String
	device.AssetTag = assetTag.String
	device.Serial = serial.String
	device.Model = model.String
	device.AssignedUserUPN = assignedUPN.String
	device.AssignedUserID = assignedID.String
	device.OS = osName.String
	device.DirectoryID = directoryID.String
	return device, nil
}
