// internal/handlers/users.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/tecops/assetdesk/internal/core/ports"
)

// UsersHandler serves the cached directory user list
type UsersHandler struct {
	service ports.ReconcileService
	logger  *slog.Logger
}

// NewUsersHandler creates a new users handler
func NewUsersHandler(service ports.ReconcileService, logger *slog.Logger) *UsersHandler {
	return &UsersHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "users")),
	}
}

// List handles GET /api/v1/users
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.service.Users(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list directory users",
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusBadGateway, "directory service unavailable")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]any{
		"users": users,
		"count": len(users),
	})
}
