package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redis_a "github.com/tecops/assetdesk/internal/adapters/redis_adapter"
	"github.com/tecops/assetdesk/internal/core/domain"
	"github.com/tecops/assetdesk/internal/core/services"
)

// fakeDirectory serves canned records and counts fetches so tests can tell
// a cache hit from a refetch.
type fakeDirectory struct {
	devices []domain.DeviceRecord
	users   []domain.DirectoryUser
	err     error

	deviceCalls int
	userCalls   int
}

func (f *fakeDirectory) FetchDevices(ctx context.Context) ([]domain.DeviceRecord, error) {
	f.deviceCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.devices, nil
}

func (f *fakeDirectory) FetchUsers(ctx context.Context) ([]domain.DirectoryUser, error) {
	f.userCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.users, nil
}

func newReconcileFixture(t *testing.T, dir *fakeDirectory) (*services.ReconcileService, *fakeStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	cache := redis_a.NewCache(client, testLogger())

	store := newFakeStore()
	return services.NewReconcileService(store, dir, cache, time.Minute, testLogger()), store
}

func directoryDevices() []domain.DeviceRecord {
	return []domain.DeviceRecord{
		{
			"id":              "dev-1",
			"deviceOwnership": "company",
			"complianceState": "compliant",
			"operatingSystem": "Windows",
			"osVersion":       "10.0.19045",
		},
		{
			"id":                "dev-2",
			"deviceOwnership":   "personal",
			"complianceState":   "noncompliant",
			"operatingSystem":   "iOS",
			"osVersion":         "17.4",
			"userPrincipalName": "bob@corp.example",
		},
	}
}

func TestLiveSummary(t *testing.T) {
	dir := &fakeDirectory{devices: directoryDevices()}
	svc, store := newReconcileFixture(t, dir)

	summary, err := svc.LiveSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 1, summary.Corporate)
	assert.Equal(t, 1, summary.Personal)
	assert.Equal(t, 1, summary.Compliant)

	// Live summaries are never persisted
	snaps, err := store.Snapshots().List(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, snaps)
}

func TestLiveSummaryDirectoryError(t *testing.T) {
	dir := &fakeDirectory{err: errors.New("directory unavailable")}
	svc, _ := newReconcileFixture(t, dir)

	_, err := svc.LiveSummary(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory unavailable")
}

func TestRunSnapshotPersists(t *testing.T) {
	dir := &fakeDirectory{devices: directoryDevices()}
	svc, _ := newReconcileFixture(t, dir)

	snap, err := svc.RunSnapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, snap.Total)
	assert.Equal(t, 1, snap.Compliant)
	assert.False(t, snap.Timestamp.IsZero())

	snaps, err := svc.ListSnapshots(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, snap.ID, snaps[0].ID)

	// Snapshots are append-only; a second run adds another record
	_, err = svc.RunSnapshot(context.Background())
	require.NoError(t, err)
	snaps, err = svc.ListSnapshots(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, snaps, 2)
}

func TestRunSnapshotDirectoryErrorWritesNothing(t *testing.T) {
	dir := &fakeDirectory{err: errors.New("http 503")}
	svc, store := newReconcileFixture(t, dir)

	_, err := svc.RunSnapshot(context.Background())
	require.Error(t, err)

	snaps, listErr := store.Snapshots().List(context.Background(), 10)
	require.NoError(t, listErr)
	assert.Empty(t, snaps)
}

func TestListSnapshotsDefaultLimit(t *testing.T) {
	dir := &fakeDirectory{devices: directoryDevices()}
	svc, _ := newReconcileFixture(t, dir)

	for i := 0; i < 12; i++ {
		_, err := svc.RunSnapshot(context.Background())
		require.NoError(t, err)
	}

	snaps, err := svc.ListSnapshots(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, snaps, 10)
}

func TestListSnapshotsClampsLimit(t *testing.T) {
	dir := &fakeDirectory{devices: directoryDevices()}
	svc, store := newReconcileFixture(t, dir)

	_, err := svc.RunSnapshot(context.Background())
	require.NoError(t, err)

	_, err = svc.ListSnapshots(context.Background(), 1_000_000)
	require.NoError(t, err)
	assert.Equal(t, 500, store.snapshotListLimit)
}

func TestUsersServedFromCache(t *testing.T) {
	dir := &fakeDirectory{users: []domain.DirectoryUser{
		{ID: "u-1", DisplayName: "Bob", UserPrincipalName: "bob@corp.example"},
	}}
	svc, _ := newReconcileFixture(t, dir)

	users, err := svc.Users(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "bob@corp.example", users[0].UserPrincipalName)
	assert.Equal(t, 1, dir.userCalls)

	// Second call hits the cache, not the directory
	users, err = svc.Users(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, 1, dir.userCalls)
}

func TestUsersDirectoryError(t *testing.T) {
	dir := &fakeDirectory{err: errors.New("token rejected")}
	svc, _ := newReconcileFixture(t, dir)

	_, err := svc.Users(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "token rejected")
}
