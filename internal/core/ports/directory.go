// internal/core/ports/directory.go
package ports

import (
	"context"

	"github.com/tecops/assetdesk/internal/core/domain"
)

// DirectoryClient is the external device-management/directory data source.
// Both fetches follow server-side pagination to completion and return the
// full result set; per-page timeouts are the implementation's concern.
type DirectoryClient interface {
	FetchDevices(ctx context.Context) ([]domain.DeviceRecord, error)
	FetchUsers(ctx context.Context) ([]domain.DirectoryUser, error)
}
