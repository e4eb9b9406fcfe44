// internal/handlers/devices.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/tecops/assetdesk/internal/core/domain"
	"github.com/tecops/assetdesk/internal/core/ports"
)

// DeviceHandler handles physical-device HTTP requests
type DeviceHandler struct {
	service ports.AllocationService
	logger  *slog.Logger
}

// NewDeviceHandler creates a new device handler
func NewDeviceHandler(service ports.AllocationService, logger *slog.Logger) *DeviceHandler {
	return &DeviceHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "devices")),
	}
}

// CreateDeviceRequest represents the request body for the atomic
// item-plus-device create.
type CreateDeviceRequest struct {
	SKU      string         `json:"sku"`
	Name     string         `json:"name"`
	Quantity int            `json:"quantity,omitempty"`
	Location string         `json:"location,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`

	DeviceType  string         `json:"device_type,omitempty"`
	Company     string         `json:"company,omitempty"`
	AssetTag    string         `json:"asset_tag,omitempty"`
	Serial      string         `json:"serial,omitempty"`
	Model       string         `json:"model,omitempty"`
	Status      string         `json:"status,omitempty"`
	OS          string         `json:"os,omitempty"`
	DirectoryID string         `json:"directory_id,omitempty"`
	Notes       map[string]any `json:"notes,omitempty"`

	Actor string `json:"actor,omitempty"`
}

// List handles GET /api/v1/inventory/devices
func (h *DeviceHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	status := domain.DeviceStatus(r.URL.Query().Get("status"))
	result, err := h.service.ListDevices(ctx, status, parseListParams(r))
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}

// Create handles POST /api/v1/inventory/devices
func (h *DeviceHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateDeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	item := &domain.InventoryItem{
		SKU:      req.SKU,
		Name:     req.Name,
		Category: domain.CategoryDevice,
		Quantity: quantity,
		Location: req.Location,
		Metadata: req.Metadata,
	}
	device := &domain.Device{
		Type:        domain.DeviceType(req.DeviceType),
		Company:     req.Company,
		AssetTag:    req.AssetTag,
		Serial:      req.Serial,
		Model:       req.Model,
		Status:      domain.DeviceStatus(req.Status),
		OS:          req.OS,
		DirectoryID: req.DirectoryID,
		Notes:       req.Notes,
	}

	created, err := h.service.CreateDeviceAtomic(ctx, item, device, actorFrom(r, req.Actor))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create device",
			slog.String("sku", req.SKU),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, created)
}

// Get handles GET /api/v1/inventory/devices/{id}
func (h *DeviceHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid device ID format")
		return
	}

	device, err := h.service.GetDevice(ctx, id)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, device)
}

// Update handles PATCH /api/v1/inventory/devices/{id}
func (h *DeviceHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid device ID format")
		return
	}

	var patch domain.DevicePatch
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&patch); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	device, err := h.service.UpdateDevice(ctx, id, patch, actorFrom(r, ""))
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, device)
}

// Delete handles DELETE /api/v1/inventory/devices/{id}
func (h *DeviceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid device ID format")
		return
	}

	if err := h.service.DeleteDevice(ctx, id, actorFrom(r, "")); err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]string{"status": "deleted"})
}
