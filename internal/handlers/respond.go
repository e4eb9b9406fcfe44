// internal/handlers/respond.go
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tecops/assetdesk/internal/core/domain"
)

// respondJSON writes data as a JSON response with the given status
func respondJSON(w http.ResponseWriter, logger *slog.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

// respondError writes a JSON error envelope
func respondError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	respondJSON(w, logger, status, map[string]string{"error": message})
}

// respondDomainError maps domain error kinds onto HTTP status codes.
// Unrecognized errors become 500 with a generic message so internals
// never leak to clients.
func respondDomainError(w http.ResponseWriter, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, logger, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrWriteConflict):
		respondError(w, logger, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalid):
		respondError(w, logger, http.StatusUnprocessableEntity, err.Error())
	default:
		respondError(w, logger, http.StatusInternalServerError, "internal server error")
	}
}

// actorFrom resolves the acting identity for audit entries. The request
// body's actor field wins, then the X-Actor header, then "system".
func actorFrom(r *http.Request, bodyActor string) string {
	if bodyActor != "" {
		return bodyActor
	}
	if h := r.Header.Get("X-Actor"); h != "" {
		return h
	}
	return "system"
}
