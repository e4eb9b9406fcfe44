package workers_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tecops/assetdesk/internal/core/domain"
	"github.com/tecops/assetdesk/internal/workers"
	"github.com/tecops/assetdesk/test/mocks"
)

func TestProcessSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockReconcileService(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	processor := workers.NewSnapshotProcessor(service, logger)

	service.EXPECT().
		RunSnapshot(gomock.Any()).
		Return(&domain.DeviceSnapshot{ID: uuid.New(), Total: 5}, nil)

	task := asynq.NewTask(workers.TypeDeviceSnapshot, nil)
	err := processor.ProcessSnapshot(context.Background(), task)
	assert.NoError(t, err)
}

func TestProcessSnapshotDirectoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockReconcileService(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	processor := workers.NewSnapshotProcessor(service, logger)

	boom := errors.New("directory unavailable")
	service.EXPECT().
		RunSnapshot(gomock.Any()).
		Return(nil, boom)

	task := asynq.NewTask(workers.TypeDeviceSnapshot, nil)
	err := processor.ProcessSnapshot(context.Background(), task)

	// The error must propagate so asynq schedules a retry
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
