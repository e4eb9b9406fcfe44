// internal/adapters/db/assignment_repository.go
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tecops/assetdesk/internal/core/domain"
	"github.com/tecops/assetdesk/internal/core/ports"
)

// assignmentRepository implements ports.AssignmentRepository
type assignmentRepository struct {
	q      Querier
	logger *slog.Logger
}

var _ ports.AssignmentRepository = (*assignmentRepository)(nil)

const assignmentColumns = `id, kind, license_id, item_id, user_upn,
	directory_device_id, assigned_by, assigned_at, status, notes`

// Save creates a new assignment row
func (r *assignmentRepository) Save(ctx context.Context, a *domain.Assignment) error {
	query := `
		INSERT INTO assignments (
			id, kind, license_id, item_id, user_upn, directory_device_id,
			assigned_by, assigned_at, status, notes
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.q.Exec(ctx, query,
		a.ID, a.Kind, a.PoolID, a.ItemID,
		nullIfEmpty(a.UserUPN), nullIfEmpty(a.DirectoryDeviceID),
		nullIfEmpty(a.AssignedBy), a.AssignedAt, a.Status, nullIfEmpty(a.Notes),
	)
	if err != nil {
		return fmt.Errorf("failed to save assignment: %w", err)
	}

	r.logger.DebugContext(ctx, "assignment saved",
		slog.String("assignment_id", a.ID.String()),
		slog.String("kind", string(a.Kind)))
	return nil
}

// Get retrieves an assignment by ID, (nil, nil) when absent
func (r *assignmentRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE id = $1`

	a, err := scanAssignment(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}
	return a, nil
}

// Update overwrites an assignment's mutable fields
func (r *assignmentRepository) Update(ctx context.Context, a *domain.Assignment) error {
	query := `
		UPDATE assignments
		SET status = $2, notes = $3
		WHERE id = $1`

	tag, err := r.q.Exec(ctx, query, a.ID, a.Status, nullIfEmpty(a.Notes))
	if err != nil {
		return fmt.Errorf("failed to update assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFoundf("assignment %s", a.ID)
	}
	return nil
}

// FindActiveByItem returns the item's single active assignment, (nil, nil)
// when the item is not checked out. A partial unique index on
// (item_id) WHERE status = 'assigned' keeps this at most one row.
func (r *assignmentRepository) FindActiveByItem(ctx context.Context, itemID uuid.UUID) (*domain.Assignment, error) {
	query := `SELECT ` + assignmentColumns + `
		FROM assignments
		WHERE item_id = $1 AND status = 'assigned'`

	a, err := scanAssignment(r.q.QueryRow(ctx, query, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find active assignment: %w", err)
	}
	return a, nil
}

func scanAssignment(row pgx.Row) (*domain.Assignment, error) {
	a := &domain.Assignment{}
	var userUPN, directoryDeviceID, assignedBy, notes sql.NullString
	err := row.Scan(
		&a.ID, &a.Kind, &a.PoolID, &a.ItemID, &userUPN,
		&directoryDeviceID, &assignedBy, &a.AssignedAt, &a.Status, &notes,
	)
	if err != nil {
		return nil, err
	}
	a.UserUPN = userUPN.String
	a.DirectoryDeviceID = directoryDeviceID.String
	a.AssignedBy = assignedBy.String
	a.Notes = notes.String
	return a, nil
}
