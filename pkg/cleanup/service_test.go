package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlwaysBluer/lindorm-memobase/ent"
	"github.com/AlwaysBluer/lindorm-memobase/ent/bufferentry"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/blob"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/config"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/database"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/services"
	testdb "github.com/AlwaysBluer/lindorm-memobase/test/database"
)

func setupRetention(t *testing.T, cfg *config.RetentionConfig) (*database.Client, *Service) {
	t.Helper()
	client := testdb.NewTestClient(t)
	buffers := services.NewBufferService(client.Client)
	blobs := services.NewBlobService(client.Client)
	events := services.NewEventService(client.Client, nil)
	return client, NewService(cfg, buffers, blobs, events)
}

func retentionTestConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		BufferRetentionDays: 30,
		EventRetentionDays:  0,
		CleanupInterval:     time.Hour,
	}
}

// insertBlobBody persists a blob body and returns its id.
func insertBlobBody(t *testing.T, client *database.Client, userID string) string {
	t.Helper()
	b := blob.NewChatBlob(userID, blob.Message{Role: blob.RoleUser, Content: "hello"})
	_, err := services.NewBlobService(client.Client).InsertBlob(context.Background(), userID, b)
	require.NoError(t, err)
	return b.ID
}

// createEntry inserts a buffer row in the given status with a fixed
// updated_at, bypassing the state machine so tests can backdate rows.
func createEntry(t *testing.T, client *ent.Client, userID, blobID string, status bufferentry.Status, updatedAt time.Time) string {
	t.Helper()
	id := uuid.New().String()
	_, err := client.BufferEntry.Create().
		SetID(id).
		SetUserID(userID).
		SetBlobID(blobID).
		SetBlobType(bufferentry.BlobTypeChat).
		SetStatus(status).
		SetTokenSize(10).
		SetCreatedAt(updatedAt).
		SetUpdatedAt(updatedAt).
		Save(context.Background())
	require.NoError(t, err)
	return id
}

func TestService_PrunesOldTerminalEntriesAndOrphanedBlobs(t *testing.T) {
	client, svc := setupRetention(t, retentionTestConfig())
	ctx := context.Background()
	old := time.Now().AddDate(0, 0, -40)

	doneBlob := insertBlobBody(t, client, "u1")
	failedBlob := insertBlobBody(t, client, "u1")
	doneEntry := createEntry(t, client.Client, "u1", doneBlob, bufferentry.StatusDone, old)
	failedEntry := createEntry(t, client.Client, "u1", failedBlob, bufferentry.StatusFailed, old)

	svc.runAll(ctx)

	for _, id := range []string{doneEntry, failedEntry} {
		_, err := client.BufferEntry.Get(ctx, id)
		assert.True(t, ent.IsNotFound(err), "terminal entry past retention should be deleted")
	}

	blobs := services.NewBlobService(client.Client)
	bodies, err := blobs.GetBlobs(ctx, "u1", []string{doneBlob, failedBlob})
	require.NoError(t, err)
	assert.Empty(t, bodies, "unreferenced blob bodies should be deleted")
}

func TestService_KeepsBlobsStillReferenced(t *testing.T) {
	client, svc := setupRetention(t, retentionTestConfig())
	ctx := context.Background()
	old := time.Now().AddDate(0, 0, -40)

	// The same blob body is referenced by an expired done entry and a live
	// idle entry.
	blobID := insertBlobBody(t, client, "u1")
	expired := createEntry(t, client.Client, "u1", blobID, bufferentry.StatusDone, old)
	live := createEntry(t, client.Client, "u1", blobID, bufferentry.StatusIdle, time.Now())

	svc.runAll(ctx)

	_, err := client.BufferEntry.Get(ctx, expired)
	assert.True(t, ent.IsNotFound(err))

	_, err = client.BufferEntry.Get(ctx, live)
	require.NoError(t, err, "idle entries are never pruned")

	bodies, err := services.NewBlobService(client.Client).GetBlobs(ctx, "u1", []string{blobID})
	require.NoError(t, err)
	assert.Len(t, bodies, 1, "a referenced blob body survives the prune")
}

func TestService_PreservesRecentTerminalEntries(t *testing.T) {
	client, svc := setupRetention(t, retentionTestConfig())
	ctx := context.Background()

	blobID := insertBlobBody(t, client, "u1")
	recent := createEntry(t, client.Client, "u1", blobID, bufferentry.StatusDone, time.Now())

	svc.runAll(ctx)

	_, err := client.BufferEntry.Get(ctx, recent)
	require.NoError(t, err, "recent terminal entries stay within retention")
}

func TestService_PrunesOldEvents(t *testing.T) {
	cfg := retentionTestConfig()
	cfg.EventRetentionDays = 90
	client, svc := setupRetention(t, cfg)
	events := services.NewEventService(client.Client, nil)
	ctx := context.Background()

	// One event past retention, one recent.
	oldID := uuid.New().String()
	_, err := client.MemoryEvent.Create().
		SetID(oldID).
		SetUserID("u1").
		SetEventData(models.EventData{EventTip: "old"}).
		SetCreatedAt(time.Now().AddDate(0, 0, -120)).
		Save(ctx)
	require.NoError(t, err)

	recentID, err := events.PutEvent(ctx, "u1", models.EventData{EventTip: "recent"}, nil)
	require.NoError(t, err)

	svc.runAll(ctx)

	remaining, err := events.GetEvents(ctx, "u1", 0, 0)
	require.NoError(t, err)
	require.Len(t, remaining, 1, "old event should be deleted, recent event preserved")
	assert.Equal(t, recentID, remaining[0].ID)
}

func TestService_EventPruneDisabledByDefault(t *testing.T) {
	client, svc := setupRetention(t, retentionTestConfig())
	events := services.NewEventService(client.Client, nil)
	ctx := context.Background()

	_, err := client.MemoryEvent.Create().
		SetID(uuid.New().String()).
		SetUserID("u1").
		SetEventData(models.EventData{EventTip: "ancient"}).
		SetCreatedAt(time.Now().AddDate(-2, 0, 0)).
		Save(ctx)
	require.NoError(t, err)

	svc.runAll(ctx)

	remaining, err := events.GetEvents(ctx, "u1", 0, 0)
	require.NoError(t, err)
	assert.Len(t, remaining, 1, "event_retention_days=0 keeps events forever")
}

func TestService_StartStop(t *testing.T) {
	_, svc := setupRetention(t, retentionTestConfig())

	svc.Start(context.Background())
	svc.Start(context.Background()) // duplicate Start is a no-op
	svc.Stop()
}
