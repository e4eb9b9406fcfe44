package domain_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tecops/assetdesk/internal/core/domain"
)

func TestNewLicenseAssignment(t *testing.T) {
	poolID := uuid.New()

	a := domain.NewLicenseAssignment(poolID, "jdoe@example.com", "dev-1", "admin")

	assert.Equal(t, domain.AssignmentLicense, a.Kind)
	require.NotNil(t, a.PoolID)
	assert.Equal(t, poolID, *a.PoolID)
	assert.Nil(t, a.ItemID)
	assert.Equal(t, "jdoe@example.com", a.UserUPN)
	assert.Equal(t, "admin", a.AssignedBy)
	assert.Equal(t, domain.AssignmentAssigned, a.Status)
	assert.True(t, a.Active())
	assert.NoError(t, a.Validate())
}

func TestNewItemAssignment(t *testing.T) {
	itemID := uuid.New()

	a := domain.NewItemAssignment(itemID, "jdoe@example.com", "", "system")

	assert.Equal(t, domain.AssignmentItem, a.Kind)
	require.NotNil(t, a.ItemID)
	assert.Equal(t, itemID, *a.ItemID)
	assert.Nil(t, a.PoolID)
	assert.NoError(t, a.Validate())
}

func TestAssignmentValidate(t *testing.T) {
	poolID := uuid.New()
	itemID := uuid.New()

	tests := []struct {
		name       string
		assignment domain.Assignment
		wantErr    bool
	}{
		{
			name: "license_with_pool",
			assignment: domain.Assignment{
				Kind: domain.AssignmentLicense, PoolID: &poolID, Status: domain.AssignmentAssigned,
			},
		},
		{
			name: "item_with_item",
			assignment: domain.Assignment{
				Kind: domain.AssignmentItem, ItemID: &itemID, Status: domain.AssignmentReturned,
			},
		},
		{
			name: "license_without_pool",
			assignment: domain.Assignment{
				Kind: domain.AssignmentLicense, Status: domain.AssignmentAssigned,
			},
			wantErr: true,
		},
		{
			name: "license_with_both_references",
			assignment: domain.Assignment{
				Kind: domain.AssignmentLicense, PoolID: &poolID, ItemID: &itemID,
				Status: domain.AssignmentAssigned,
			},
			wantErr: true,
		},
		{
			name: "item_with_pool_reference",
			assignment: domain.Assignment{
				Kind: domain.AssignmentItem, PoolID: &poolID, Status: domain.AssignmentAssigned,
			},
			wantErr: true,
		},
		{
			name: "unknown_kind",
			assignment: domain.Assignment{
				Kind: "loan", PoolID: &poolID, Status: domain.AssignmentAssigned,
			},
			wantErr: true,
		},
		{
			name: "unknown_status",
			assignment: domain.Assignment{
				Kind: domain.AssignmentLicense, PoolID: &poolID, Status: "pending",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.assignment.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, domain.ErrInvalid))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAssignmentActive(t *testing.T) {
	a := domain.Assignment{Status: domain.AssignmentAssigned}
	assert.True(t, a.Active())

	a.Status = domain.AssignmentReturned
	assert.False(t, a.Active())

	a.Status = domain.AssignmentRevoked
	assert.False(t, a.Active())
}

func TestNewHistoryEntry(t *testing.T) {
	entry := domain.NewHistoryEntry(domain.ActionCreateItem, "admin", map[string]any{"sku": "LT-001"})

	assert.NotEqual(t, uuid.Nil, entry.ID)
	assert.Equal(t, domain.ActionCreateItem, entry.Action)
	assert.Equal(t, "admin", entry.Actor)
	assert.False(t, entry.Timestamp.IsZero())
	assert.Equal(t, "LT-001", entry.Details["sku"])
}

func TestNewHistoryEntryNilDetails(t *testing.T) {
	entry := domain.NewHistoryEntry(domain.ActionDeleteItem, "system", nil)
	assert.NotNil(t, entry.Details)
}

func TestErrorKinds(t *testing.T) {
	assert.True(t, errors.Is(domain.NotFoundf("item %s", "x"), domain.ErrNotFound))
	assert.True(t, errors.Is(domain.Conflictf("sku taken"), domain.ErrConflict))
	assert.True(t, errors.Is(domain.Invalidf("no seats"), domain.ErrInvalid))
	assert.Contains(t, domain.NotFoundf("item %s", "x").Error(), "item x")
}
