// internal/handlers/licenses.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/tecops/assetdesk/internal/core/domain"
	"github.com/tecops/assetdesk/internal/core/ports"
)

// LicenseHandler handles license-pool and assignment HTTP requests
type LicenseHandler struct {
	service ports.AllocationService
	logger  *slog.Logger
}

// NewLicenseHandler creates a new license handler
func NewLicenseHandler(service ports.AllocationService, logger *slog.Logger) *LicenseHandler {
	return &LicenseHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "licenses")),
	}
}

// CreatePoolRequest represents the request body for creating a license pool
type CreatePoolRequest struct {
	SKU         string         `json:"sku"`
	DisplayName string         `json:"display_name,omitempty"`
	Total       int            `json:"total"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	Actor       string         `json:"actor,omitempty"`
}

// ListPools handles GET /api/v1/inventory/licenses
func (h *LicenseHandler) ListPools(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.service.ListPools(ctx, parseListParams(r))
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}

// CreatePool handles POST /api/v1/inventory/licenses
func (h *LicenseHandler) CreatePool(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreatePoolRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	pool := &domain.LicensePool{
		SKU:         req.SKU,
		DisplayName: req.DisplayName,
		Total:       req.Total,
		Metadata:    req.Metadata,
	}

	created, err := h.service.CreatePool(ctx, pool, actorFrom(r, req.Actor))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create license pool",
			slog.String("sku", req.SKU),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, created)
}

// AllocateRequest represents the request body for allocating a seat
type AllocateRequest struct {
	UserUPN           string `json:"user_upn,omitempty"`
	DirectoryDeviceID string `json:"directory_device_id,omitempty"`
	Actor             string `json:"actor,omitempty"`
}

// Allocate handles POST /api/v1/inventory/licenses/{id}/allocate
func (h *LicenseHandler) Allocate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	poolID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid license ID format")
		return
	}

	var req AllocateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	assignment, err := h.service.Allocate(ctx, poolID, req.UserUPN, req.DirectoryDeviceID, actorFrom(r, req.Actor))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to allocate license seat",
			slog.String("license_id", poolID.String()),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, assignment)
}

// ReturnAssignment handles POST /api/v1/inventory/assignments/{id}/return
func (h *LicenseHandler) ReturnAssignment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	assignmentID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid assignment ID format")
		return
	}

	assignment, err := h.service.Return(ctx, assignmentID, actorFrom(r, ""))
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, assignment)
}

// AssignItemRequest represents the request body for checking out an item
type AssignItemRequest struct {
	ItemID            uuid.UUID `json:"item_id"`
	UserUPN           string    `json:"user_upn,omitempty"`
	DirectoryDeviceID string    `json:"directory_device_id,omitempty"`
	Actor             string    `json:"actor,omitempty"`
}

// AssignItem handles POST /api/v1/inventory/assign
func (h *LicenseHandler) AssignItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req AssignItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ItemID == uuid.Nil {
		respondError(w, h.logger, http.StatusBadRequest, "item_id is required")
		return
	}

	assignment, err := h.service.AssignItem(ctx, req.ItemID, req.UserUPN, req.DirectoryDeviceID, actorFrom(r, req.Actor))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to assign item",
			slog.String("item_id", req.ItemID.String()),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, assignment)
}

// UnassignByItemRequest represents the request body for checking in an item
type UnassignByItemRequest struct {
	ItemID uuid.UUID `json:"item_id"`
	Actor  string    `json:"actor,omitempty"`
}

// UnassignByItem handles POST /api/v1/inventory/assignments/unassign_by_item
func (h *LicenseHandler) UnassignByItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UnassignByItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ItemID == uuid.Nil {
		respondError(w, h.logger, http.StatusBadRequest, "item_id is required")
		return
	}

	assignment, err := h.service.UnassignByItem(ctx, req.ItemID, actorFrom(r, req.Actor))
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, assignment)
}
