// internal/adapters/db/snapshot_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tecops/assetdesk/internal/core/domain"
	"github.com/tecops/assetdesk/internal/core/ports"
)

// snapshotRepository implements ports.SnapshotRepository. Snapshots are
// immutable; rows are written once and only ever read back.
type snapshotRepository struct {
	q      Querier
	logger *slog.Logger
}

var _ ports.SnapshotRepository = (*snapshotRepository)(nil)

// Save writes one device snapshot
func (r *snapshotRepository) Save(ctx context.Context, snap *domain.DeviceSnapshot) error {
	query := `
		INSERT INTO device_snapshots (
			id, ts, total, corporate, personal, compliant, noncompliant,
			by_os, by_os_version, raw_sample
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.q.Exec(ctx, query,
		snap.ID, snap.Timestamp, snap.Total,
		snap.Corporate, snap.Personal, snap.Compliant, snap.Noncompliant,
		snap.ByOS, snap.ByOSVersion, snap.RawSample,
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	r.logger.DebugContext(ctx, "device snapshot saved",
		slog.String("snapshot_id", snap.ID.String()),
		slog.Int("total", snap.Total))
	return nil
}

// List returns the most recent snapshots, newest first
func (r *snapshotRepository) List(ctx context.Context, limit int) ([]domain.DeviceSnapshot, error) {
	query := `
		SELECT id, ts, total, corporate, personal, compliant, noncompliant,
		       by_os, by_os_version, raw_sample
		FROM device_snapshots
		ORDER BY ts DESC
		LIMIT $1`

	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []domain.DeviceSnapshot
	for rows.Next() {
		var snap domain.DeviceSnapshot
		err := rows.Scan(
			&snap.ID, &snap.Timestamp, &snap.Total,
			&snap.Corporate, &snap.Personal, &snap.Compliant, &snap.Noncompliant,
			&snap.ByOS, &snap.ByOSVersion, &snap.RawSample,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		snaps = append(snaps, snap)
	}
	return snaps, rows.Err()
}
