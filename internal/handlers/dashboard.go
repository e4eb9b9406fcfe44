// internal/handlers/dashboard.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/hibiken/asynq"

	"github.com/tecops/assetdesk/internal/core/ports"
	"github.com/tecops/assetdesk/internal/workers"
)

// DashboardHandler serves directory summaries and snapshot management
type DashboardHandler struct {
	service     ports.ReconcileService
	asynqClient *asynq.Client
	logger      *slog.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service ports.ReconcileService, asynqClient *asynq.Client, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		service:     service,
		asynqClient: asynqClient,
		logger:      logger.With(slog.String("handler", "dashboard")),
	}
}

// Summary handles GET /api/v1/dashboard/summary
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, err := h.service.LiveSummary(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build live summary",
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusBadGateway, "directory service unavailable")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, summary)
}

// TriggerSnapshot handles POST /api/v1/dashboard/snapshots. The snapshot
// runs in the worker; the request returns as soon as the task is queued.
func (h *DashboardHandler) TriggerSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	task := asynq.NewTask(workers.TypeDeviceSnapshot, nil)
	info, err := h.asynqClient.Enqueue(task,
		asynq.Queue("default"),
		asynq.MaxRetry(3),
		asynq.Retention(24*time.Hour))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to enqueue snapshot task",
			slog.String("error", err.Error()))
		respondError(w, h.logger, http.StatusInternalServerError, "failed to queue snapshot")
		return
	}

	h.logger.InfoContext(ctx, "snapshot task queued",
		slog.String("task_id", info.ID))

	respondJSON(w, h.logger, http.StatusAccepted, map[string]string{
		"status":  "queued",
		"task_id": info.ID,
	})
}

// ListSnapshots handles GET /api/v1/dashboard/snapshots
func (h *DashboardHandler) ListSnapshots(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}

	snaps, err := h.service.ListSnapshots(ctx, limit)
	if err != nil {
		respondDomainError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, map[string]any{
		"snapshots": snaps,
		"count":     len(snaps),
	})
}
