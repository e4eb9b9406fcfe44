// internal/core/domain/assignment.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// AssignmentKind tags which reference an assignment carries. Exactly one of
// PoolID/ItemID is set per record; records with neither or both are rejected
// at creation so the return path never has to guess.
type AssignmentKind string

const (
	AssignmentLicense AssignmentKind = "license"
	AssignmentItem    AssignmentKind = "item"
)

// AssignmentStatus represents the lifecycle state of an assignment
type AssignmentStatus string

const (
	AssignmentAssigned AssignmentStatus = "assigned"
	AssignmentReturned AssignmentStatus = "returned"
	AssignmentRevoked  AssignmentStatus = "revoked"
)

// Assignment links an allocated license seat or a physical item to a user
// and/or directory device. Assignments are never deleted; returning one only
// flips its status.
type Assignment struct {
	ID                uuid.UUID        `json:"id"`
	Kind              AssignmentKind   `json:"kind"`
	PoolID            *uuid.UUID       `json:"license_id,omitempty"`
	ItemID            *uuid.UUID       `json:"item_id,omitempty"`
	UserUPN           string           `json:"user_upn,omitempty"`
	DirectoryDeviceID string           `json:"directory_device_id,omitempty"`
	AssignedBy        string           `json:"assigned_by,omitempty"`
	AssignedAt        time.Time        `json:"assigned_at"`
	Status            AssignmentStatus `json:"status"`
	Notes             string           `json:"notes,omitempty"`
}

// NewLicenseAssignment builds an active assignment consuming one pool seat
func NewLicenseAssignment(poolID uuid.UUID, userUPN, directoryDeviceID, actor string) *Assignment {
	return &Assignment{
		ID:                uuid.New(),
		Kind:              AssignmentLicense,
		PoolID:            &poolID,
		UserUPN:           userUPN,
		DirectoryDeviceID: directoryDeviceID,
		AssignedBy:        actor,
		AssignedAt:        time.Now().UTC(),
		Status:            AssignmentAssigned,
	}
}

// NewItemAssignment builds an active assignment checking out a physical item
func NewItemAssignment(itemID uuid.UUID, userUPN, directoryDeviceID, actor string) *Assignment {
	return &Assignment{
		ID:                uuid.New(),
		Kind:              AssignmentItem,
		ItemID:            &itemID,
		UserUPN:           userUPN,
		DirectoryDeviceID: directoryDeviceID,
		AssignedBy:        actor,
		AssignedAt:        time.Now().UTC(),
		Status:            AssignmentAssigned,
	}
}

// Validate checks that the variant tag and the populated reference agree
func (a *Assignment) Validate() error {
	switch a.Kind {
	case AssignmentLicense:
		if a.PoolID == nil || a.ItemID != nil {
			return Invalidf("license assignment must reference exactly one pool")
		}
	case AssignmentItem:
		if a.ItemID == nil || a.PoolID != nil {
			return Invalidf("item assignment must reference exactly one item")
		}
	default:
		return Invalidf("unknown assignment kind: %s", a.Kind)
	}
	switch a.Status {
	case AssignmentAssigned, AssignmentReturned, AssignmentRevoked:
	default:
		return Invalidf("unknown assignment status: %s", a.Status)
	}
	return nil
}

// Active reports whether the assignment is currently checked out
func (a *Assignment) Active() bool {
	return a.Status == AssignmentAssigned
}

// History action names, one per mutating engine operation
const (
	ActionCreateItem        = "create_item"
	ActionUpdateItem        = "update_item"
	ActionDeleteItem        = "delete_item"
	ActionCreateLicensePool = "create_licensepool"
	ActionAllocateLicense   = "allocate_license"
	ActionReturnAssignment  = "return_assignment"
	ActionAssignItem        = "assign_item"
	ActionCreateDevice      = "create_device"
	ActionUpdateDevice      = "update_device"
	ActionDeleteDevice      = "delete_device"
	ActionBulkImport        = "bulk_import"
)

// HistoryEntry is the append-only audit record written alongside every
// mutation, in the same transaction. Entries are never updated or deleted.
type HistoryEntry struct {
	ID        uuid.UUID      `json:"id"`
	Action    string         `json:"action"`
	Actor     string         `json:"actor,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	Details   map[string]any `json:"details,omitempty"`
}

// NewHistoryEntry builds an audit entry stamped with the current time
func NewHistoryEntry(action, actor string, details map[string]any) *HistoryEntry {
	if details == nil {
		details = map[string]any{}
	}
	return &HistoryEntry{
		ID:        uuid.New(),
		Action:    action,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
		Details:   details,
	}
}
