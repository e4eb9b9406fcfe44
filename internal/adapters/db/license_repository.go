// internal/adapters/db/license_repository.go
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
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tecops/assetdesk/internal/core/domain"
	"github.com/tecops/assetdesk/internal/core/ports"
)

// pgUniqueViolation is the Postgres error code for unique constraint breaks
const pgUniqueViolation = "23505"

// licensePoolRepository implements ports.LicensePoolRepository
type licensePoolRepository struct {
	q      Querier
	logger *slog.Logger
}

var _ ports.LicensePoolRepository = (*licensePoolRepository)(nil)

// Save creates a new license pool. A duplicate SKU reports a conflict.
func (r *licensePoolRepository) Save(ctx context.Context, pool *domain.LicensePool) error {
	query := `
		INSERT INTO license_pools (
			id, sku, display_name, total, allocated, metadata,
			created_at, updated_at, version
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.q.Exec(ctx, query,
		pool.ID, pool.SKU, nullIfEmpty(pool.DisplayName),
		pool.Total, pool.Allocated, pool.Metadata,
		pool.CreatedAt, pool.UpdatedAt, pool.Version,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.Conflictf("license pool with sku %s already exists", pool.SKU)
		}
		return fmt.Errorf("failed to save license pool: %w", err)
	}

	r.logger.DebugContext(ctx, "license pool saved",
		slog.String("license_id", pool.ID.String()),
		slog.String("sku", pool.SKU))
	return nil
}

// Get retrieves a license pool by ID, (nil, nil) when absent
func (r *licensePoolRepository) Get(ctx context.Context, id uuid.UUID) (*domain.LicensePool, error) {
	query := `
		SELECT id, sku, display_name, total, allocated, metadata,
		       created_at, updated_at, version
		FROM license_pools
		WHERE id = $1`

	pool, err := scanPool(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get license pool: %w", err)
	}
	return pool, nil
}

// GetBySKU retrieves a license pool by its unique SKU, (nil, nil) when absent
func (r *licensePoolRepository) GetBySKU(ctx context.Context, sku string) (*domain.LicensePool, error) {
	query := `
		SELECT id, sku, display_name, total, allocated, metadata,
		       created_at, updated_at, version
		FROM license_pools
		WHERE sku = $1`

	pool, err := scanPool(r.q.QueryRow(ctx, query, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get license pool by sku: %w", err)
	}
	return pool, nil
}

// UpdateSeats writes the new allocated count guarded by the pool's version.
// Zero rows affected with the pool still present means a concurrent writer
// bumped the version first; that surfaces as a write conflict the engine
// retries against fresh state.
func (r *licensePoolRepository) UpdateSeats(ctx context.Context, id uuid.UUID, allocated, version int) error {
	query := `
		UPDATE license_pools
		SET allocated = $2, version = version + 1, updated_at = NOW()
		WHERE id = $1 AND version = $3`

	tag, err := r.q.Exec(ctx, query, id, allocated, version)
	if err != nil {
		return fmt.Errorf("failed to update pool seats: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM license_pools WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check pool existence: %w", err)
		}
		if !exists {
			return domain.NotFoundf("license pool %s", id)
		}
		r.logger.DebugContext(ctx, "seat update lost version race",
			slog.String("license_id", id.String()),
			slog.Int("version", version))
		return fmt.Errorf("pool %s at version %d: %w", id, version, domain.ErrWriteConflict)
	}
	return nil
}

// List returns one page of license pools plus the unpaged total
func (r *licensePoolRepository) List(ctx context.Context, limit, offset int) ([]domain.LicensePool, int64, error) {
	qb := squirrel.Select(
		"id", "sku", "display_name", "total", "allocated", "metadata",
		"created_at", "updated_at", "version",
	).From("license_pools").
		PlaceholderFormat(squirrel.Dollar)

	var totalCount int64
	countSQL, countArgs, err := squirrel.Select("COUNT(*)").
		From("license_pools").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}
	if err := r.q.QueryRow(ctx, countSQL, countArgs...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count license pools: %w", err)
	}

	qb = qb.OrderBy("sku ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	sqlQuery, args, err := qb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.q.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query license pools: %w", err)
	}
	defer rows.Close()

	var pools []domain.LicensePool
	for rows.Next() {
		pool, err := scanPool(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan license pool: %w", err)
		}
		pools = append(pools, *pool)
	}
	return pools, totalCount, rows.Err()
}

func scanPool(row pgx.Row) (*domain.LicensePool, error) {
	pool := &domain.LicensePool{}
	var displayName sql.NullString
	err := row.Scan(
		&pool.ID, &pool.SKU, &displayName, &pool.Total, &pool.Allocated,
		&pool.Metadata, &pool.CreatedAt, &pool.UpdatedAt, &pool.Version,
	)
	if err != nil {
		return nil, err
	}
	pool.DisplayName = displayName.String
	return pool, nil
}
