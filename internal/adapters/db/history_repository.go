// internal/adapters/db/history_repository.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/tecops/assetdesk/internal/core/domain"
	"github.com/tecops/assetdesk/internal/core/ports"
)

// historyRepository implements ports.HistoryRepository. The table is
// append-only; there is no update or delete path.
type historyRepository struct {
	q      Querier
	logger *slog.Logger
}

var _ ports.HistoryRepository = (*historyRepository)(nil)

// Append writes one audit entry
func (r *historyRepository) Append(ctx context.Context, entry *domain.HistoryEntry) error {
	query := `
		INSERT INTO history (id, action, actor, ts, details)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.q.Exec(ctx, query,
		entry.ID, entry.Action, nullIfEmpty(entry.Actor),
		entry.Timestamp, entry.Details,
	)
	if err != nil {
		return fmt.Errorf("failed to append history entry: %w", err)
	}
	return nil
}

// List returns one page of the audit trail, newest first
func (r *historyRepository) List(ctx context.Context, limit, offset int) ([]domain.HistoryEntry, int64, error) {
	var totalCount int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM history`).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count history entries: %w", err)
	}

	query := `
		SELECT id, action, actor, ts, details
		FROM history
		ORDER BY ts DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query history entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.HistoryEntry
	for rows.Next() {
		var entry domain.HistoryEntry
		var actor sql.NullString
		if err := rows.Scan(&entry.ID, &entry.Action, &actor, &entry.Timestamp, &entry.Details); err != nil {
			return nil, 0, fmt.Errorf("failed to scan history entry: %w", err)
		}
		entry.Actor = actor.String
		entries = append(entries, entry)
	}
	return entries, totalCount, rows.Err()
}
