// internal/handlers/inventory.go
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/tecops/assetdesk/internal/core/domain"
	"github.com/tecops/assetdesk/internal/core/ports"
)

// InventoryHandler handles inventory-related HTTP requests
type InventoryHandler struct {
	service ports.InventoryService
	logger  *slog.Logger
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(service ports.InventoryService, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "inventory")),
	}
}

// CreateItemRequest represents the request body for creating an item
type CreateItemRequest struct {
	SKU      string         `json:"sku"`
	Name     string         `json:"name"`
	Category string         `json:"category,omitempty"`
	Quantity int            `json:"quantity"`
	Location string         `json:"location,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
	Actor    string         `json:"actor,omitempty"`
}

// ToDomain converts the request to a domain model
func (r *CreateItemRequest) ToDomain() *domain.InventoryItem {
	return &domain.InventoryItem{
		SKU:      r.SKU,
		Name:     r.Name,
		Category: domain.ItemCategory(r.Category),
		Quantity: r.Quantity,
		Location: r.Location,
		Metadata: r.Metadata,
	}
}

// List handles GET /api/v1/inventory
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.service.ListItems(ctx, parseListParams(r))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list inventory items",
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}

// Get handles GET /api/v1/inventory/{id}
func (h *InventoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid item ID format")
		return
	}

	item, err := h.service.GetItem(ctx, id)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, item)
}

// Create handles POST /api/v1/inventory
func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.service.CreateItem(ctx, req.ToDomain(), actorFrom(r, req.Actor))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create inventory item",
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, item)
}

// Update handles PATCH /api/v1/inventory/{id}
func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid item ID format")
		return
	}

	var patch domain.ItemPatch
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&patch); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	item, err := h.service.UpdateItem(ctx, id, patch, actorFrom(r, ""))
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, item)
}

// Delete handles DELETE /api/v1/inventory/{id}
func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid item ID format")
		return
	}

	if err := h.service.DeleteItem(ctx, id, actorFrom(r, "")); err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]string{"status": "deleted"})
}

// BulkImportRequest represents the request body for a bulk import
type BulkImportRequest struct {
	Items []CreateItemRequest `json:"items"`
	Actor string              `json:"actor,omitempty"`
}

// BulkImport handles POST /api/v1/inventory/bulk_import
func (h *InventoryHandler) BulkImport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req BulkImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Items) == 0 {
		respondError(w, h.logger, http.StatusBadRequest, "no items to import")
		return
	}

	items := make([]domain.InventoryItem, 0, len(req.Items))
	for i := range req.Items {
		items = append(items, *req.Items[i].ToDomain())
	}

	count, err := h.service.BulkImport(ctx, items, actorFrom(r, req.Actor))
	if err != nil {
		h.logger.ErrorContext(ctx, "bulk import failed",
			slog.Int("requested", len(req.Items)),
			slog.String("error", err.Error()))
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, map[string]int{"imported": count})
}

// History handles GET /api/v1/inventory/history
func (h *InventoryHandler) History(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	result, err := h.service.ListHistory(ctx, parseListParams(r))
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}

// parseListParams extracts limit/offset pagination from the query string
func parseListParams(r *http.Request) ports.ListParams {
	params := ports.ListParams{}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			params.Limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			params.Offset = n
		}
	}
	return params
}
