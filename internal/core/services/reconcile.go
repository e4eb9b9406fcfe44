// internal/core/services/reconcile.go
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tecops/assetdesk/internal/core/domain"
	"github.com/tecops/assetdesk/internal/core/ports"
)

const userCacheKey = "directory:users"

// ReconcileService bridges the local inventory to the external directory
// service: live device summaries, persisted snapshots and a cached user
// list. Directory faults never corrupt local state; a failed fetch simply
// writes no snapshot.
type ReconcileService struct {
	store     ports.Store
	directory ports.DirectoryClient
	cache     ports.CacheRepository
	userTTL   time.Duration
	logger    *slog.Logger
}

// Statically assert that *ReconcileService implements the ReconcileService interface.
var _ ports.ReconcileService = (*ReconcileService)(nil)

// NewReconcileService creates a new reconciliation service
func NewReconcileService(store ports.Store, directory ports.DirectoryClient, cache ports.CacheRepository, userTTL time.Duration, logger *slog.Logger) *ReconcileService {
	if userTTL <= 0 {
		userTTL = time.Minute
	}
	return &ReconcileService{
		store:     store,
		directory: directory,
		cache:     cache,
		userTTL:   userTTL,
		logger:    logger.With(slog.String("service", "reconcile")),
	}
}

// LiveSummary fetches the full device population from the directory and
// aggregates it. Nothing is persisted.
func (s *ReconcileService) LiveSummary(ctx context.Context) (*domain.DeviceSummary, error) {
	devices, err := s.directory.FetchDevices(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch directory devices: %w", err)
	}

	summary := domain.Summarize(devices)
	s.logger.InfoContext(ctx, "built live device summary",
		slog.Int("total", summary.Total),
		slog.Int("corporate", summary.Corporate),
		slog.Int("personal", summary.Personal))
	return &summary, nil
}

// RunSnapshot fetches, aggregates and persists a point-in-time snapshot of
// the directory's device population. Snapshots are append-only; each run
// writes a fresh record.
func (s *ReconcileService) RunSnapshot(ctx context.Context) (*domain.DeviceSnapshot, error) {
	devices, err := s.directory.FetchDevices(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch directory devices: %w", err)
	}

	summary := domain.Summarize(devices)
	snap := domain.NewSnapshot(summary, devices)

	if err := s.store.Snapshots().Save(ctx, snap); err != nil {
		return nil, fmt.Errorf("save snapshot: %w", err)
	}

	s.logger.InfoContext(ctx, "saved device snapshot",
		slog.String("snapshot_id", snap.ID.String()),
		slog.Int("total", snap.Total),
		slog.Int("compliant", snap.Compliant))
	return snap, nil
}

// ListSnapshots returns the most recent snapshots, newest first. The limit
// is clamped to the same page bound the listing endpoints use.
func (s *ReconcileService) ListSnapshots(ctx context.Context, limit int) ([]domain.DeviceSnapshot, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	snaps, err := s.store.Snapshots().List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	return snaps, nil
}

// Users returns the directory's user list, served from cache when fresh.
// A cold cache triggers one directory fetch; concurrent callers may race
// the fill, which is harmless since the value is identical.
func (s *ReconcileService) Users(ctx context.Context) ([]domain.DirectoryUser, error) {
	var users []domain.DirectoryUser
	err := s.cache.GetOrSet(ctx, userCacheKey, &users, func() (interface{}, error) {
		fetched, err := s.directory.FetchUsers(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetch directory users: %w", err)
		}
		s.logger.InfoContext(ctx, "refreshed directory user cache",
			slog.Int("count", len(fetched)))
		return fetched, nil
	}, s.userTTL)
	if err != nil {
		return nil, err
	}
	return users, nil
}
