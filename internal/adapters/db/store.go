// internal/adapters/db/store.go
package db

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/tecops/assetdesk/internal/core/ports"
)

// SQLStore implements ports.Store over Postgres. Outside a transaction its
// repositories run against the pool; WithinTx hands the callback a store
// whose repositories share one pgx transaction.
type SQLStore struct {
	db     *Database
	q      Querier
	logger *slog.Logger
}

// Statically assert that *SQLStore implements the Store interface.
var _ ports.Store = (*SQLStore)(nil)

// NewStore creates a pool-backed store
func NewStore(database *Database, logger *slog.Logger) *SQLStore {
	return &SQLStore{
		db:     database,
		q:      database.Pool(),
		logger: logger,
	}
}

// Items returns the inventory-item repository
func (s *SQLStore) Items() ports.ItemRepository {
	return &itemRepository{q: s.q, logger: s.logger.With(slog.String("repository", "items"))}
}

// Devices returns the device repository
func (s *SQLStore) Devices() ports.DeviceRepository {
	return &deviceRepository{q: s.q, logger: s.logger.With(slog.String("repository", "devices"))}
}

// Pools returns the license-pool repository
func (s *SQLStore) Pools() ports.LicensePoolRepository {
	return &licensePoolRepository{q: s.q, logger: s.logger.With(slog.String("repository", "licenses"))}
}

// Assignments returns the assignment repository
func (s *SQLStore) Assignments() ports.AssignmentRepository {
	return &assignmentRepository{q: s.q, logger: s.logger.With(slog.String("repository", "assignments"))}
}

// History returns the audit-trail repository
func (s *SQLStore) History() ports.HistoryRepository {
	return &historyRepository{q: s.q, logger: s.logger.With(slog.String("repository", "history"))}
}

// Snapshots returns the device-snapshot repository
func (s *SQLStore) Snapshots() ports.SnapshotRepository {
	return &snapshotRepository{q: s.q, logger: s.logger.With(slog.String("repository", "snapshots"))}
}

// WithinTx runs fn against a transaction-backed store. Nested calls join
// the already-open transaction instead of opening another.
func (s *SQLStore) WithinTx(ctx context.Context, fn func(ports.Store) error) error {
	if s.db == nil {
		return fn(s)
	}
	return s.db.Transaction(ctx, func(tx pgx.Tx) error {
		return fn(&SQLStore{q: tx, logger: s.logger})
	})
}
