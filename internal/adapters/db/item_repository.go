// internal/adapters/db/item_repository.go
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

// itemRepository implements ports.ItemRepository
type itemRepository struct {
	q      Querier
	logger *slog.Logger
}

var _ ports.ItemRepository = (*itemRepository)(nil)

// Save creates a new inventory item
func (r *itemRepository) Save(ctx context.Context, item *domain.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (
			id, sku, name, category, quantity, location, metadata,
			created_at, updated_at, version
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.q.Exec(ctx, query,
		item.ID, item.SKU, item.Name, item.Category, item.Quantity,
		nullIfEmpty(item.Location), item.Metadata,
		item.CreatedAt, item.UpdatedAt, item.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to save inventory item: %w", err)
	}

	r.logger.DebugContext(ctx, "inventory item saved",
		slog.String("item_id", item.ID.String()),
		slog.String("sku", item.SKU))
	return nil
}

// Get retrieves an inventory item by ID, (nil, nil) when absent
func (r *itemRepository) Get(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error) {
	query := `
		SELECT id, sku, name, category, quantity, location, metadata,
		       created_at, updated_at, version
		FROM inventory_items
		WHERE id = $1`

	item, err := scanItem(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}
	return item, nil
}

// Update overwrites an existing inventory item
func (r *itemRepository) Update(ctx context.Context, item *domain.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET sku = $2, name = $3, category = $4, quantity = $5,
		    location = $6, metadata = $7, updated_at = $8, version = $9
		WHERE id = $1`

	tag, err := r.q.Exec(ctx, query,
		item.ID, item.SKU, item.Name, item.Category, item.Quantity,
		nullIfEmpty(item.Location), item.Metadata,
		item.UpdatedAt, item.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update inventory item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFoundf("item %s", item.ID)
	}
	return nil
}

// Delete removes an inventory item
func (r *itemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFoundf("item %s", id)
	}
	return nil
}

// List returns one page of inventory items plus the unpaged total
func (r *itemRepository) List(ctx context.Context, limit, offset int) ([]domain.InventoryItem, int64, error) {
	qb := squirrel.Select(
		"id", "sku", "name", "category", "quantity", "location",
		"metadata", "created_at", "updated_at", "version",
	).From("inventory_items").
		PlaceholderFormat(squirrel.Dollar)

	var totalCount int64
	countSQL, countArgs, err := squirrel.Select("COUNT(*)").
		From("inventory_items").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count query: %w", err)
	}
	if err := r.q.QueryRow(ctx, countSQL, countArgs...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count inventory items: %w", err)
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
		return nil, 0, fmt.Errorf("failed to query inventory items: %w", err)
	}
	defer rows.Close()

	var items []domain.InventoryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan inventory item: %w", err)
		}
		items = append(items, *item)
	}
	return items, totalCount, rows.Err()
}

func scanItem(row pgx.Row) (*domain.InventoryItem, error) {
	item := &domain.InventoryItem{}
	var location sql.NullString
	err := row.Scan(
		&item.ID, &item.SKU, &item.Name, &item.Category, &item.Quantity,
		&location, &item.Metadata, &item.CreatedAt, &item.UpdatedAt, &item.Version,
	)
	if err != nil {
		return nil, err
	}
	item.Location = location.String
	return item, nil
}

// nullIfEmpty maps empty strings to SQL NULL for optional text columns
func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
