package flush

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlwaysBluer/lindorm-memobase/ent"
	"github.com/AlwaysBluer/lindorm-memobase/ent/bufferentry"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/blob"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/config"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/extraction"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/search"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/services"
	testdb "github.com/AlwaysBluer/lindorm-memobase/test/database"
)

// intTestWorkerConfig returns a worker config suitable for integration tests.
func intTestWorkerConfig() *config.WorkerConfig {
	return &config.WorkerConfig{
		WorkerCount:             2,
		MaxConcurrentFlushes:    10,
		PollInterval:            50 * time.Millisecond,
		PollIntervalJitter:      0,
		FlushTimeout:            30 * time.Second,
		GracefulShutdownTimeout: 10 * time.Second,
		StuckScanInterval:       time.Hour,
		StuckThreshold:          time.Hour,
	}
}

// awaitCondition polls until condition returns true or the timeout elapses.
func awaitCondition(t *testing.T, timeout, interval time.Duration, msg string, condition func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			t.Fatalf("timed out: %s", msg)
		default:
			if condition() {
				return
			}
			time.Sleep(interval)
		}
	}
}

// createProcessingEntry inserts a buffer row already in processing with a
// fixed updated_at, simulating a flush that died mid-flight.
func createProcessingEntry(t *testing.T, client *ent.Client, userID string, updatedAt time.Time) string {
	t.Helper()
	id := uuid.New().String()
	_, err := client.BufferEntry.Create().
		SetID(id).
		SetUserID(userID).
		SetBlobID(uuid.New().String()).
		SetBlobType(bufferentry.BlobTypeChat).
		SetStatus(bufferentry.StatusProcessing).
		SetTokenSize(20).
		SetCreatedAt(updatedAt).
		SetUpdatedAt(updatedAt).
		Save(context.Background())
	require.NoError(t, err)
	return id
}

func TestWorkerPoolFlushesThresholdCrossingBuffer(t *testing.T) {
	fake := &scriptedLLM{embedDim: 4, script: []scriptEntry{
		{payload: `{"facts": [{"topic": "interest", "sub_topic": "music", "memo": "Plays jazz guitar"}]}`},
		{payload: `{"summary": "The user shared a hobby.", "gists": ["The user plays jazz guitar."]}`},
	}}
	cfg := flushTestConfig()
	cfg.Worker = intTestWorkerConfig()
	env := newTestManager(t, cfg, fake)
	profiles := services.NewProfileService(env.client.Client)
	ctx := context.Background()

	bufferID, err := env.buffers.Insert(ctx, "u1", chatBlobOfTokens("u1", 80))
	require.NoError(t, err)

	pool := NewWorkerPool("test-pod", cfg.Worker, env.buffers, env.manager)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	awaitCondition(t, 10*time.Second, 20*time.Millisecond, "buffer flushed by a worker", func() bool {
		row, err := env.client.BufferEntry.Get(ctx, bufferID)
		return err == nil && row.Status == bufferentry.StatusDone
	})

	entries, err := profiles.ListProfiles(ctx, "u1", 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Plays jazz guitar", entries[0].Content)

	health := pool.Health()
	assert.True(t, health.IsHealthy)
	assert.Equal(t, 2, health.TotalWorkers)
	assert.Equal(t, "test-pod", health.PodID)
}

func TestWorkerPoolLeavesQuietBuffersAlone(t *testing.T) {
	fake := &scriptedLLM{embedDim: 4}
	cfg := flushTestConfig()
	cfg.Worker = intTestWorkerConfig()
	env := newTestManager(t, cfg, fake)
	ctx := context.Background()

	bufferID, err := env.buffers.Insert(ctx, "u1", chatBlobOfTokens("u1", 10))
	require.NoError(t, err)

	pool := NewWorkerPool("test-pod", cfg.Worker, env.buffers, env.manager)
	require.NoError(t, pool.Start(ctx))

	// Give the workers a few poll cycles, then verify nothing moved.
	time.Sleep(300 * time.Millisecond)
	pool.Stop()

	assert.Equal(t, bufferentry.StatusIdle, env.entryStatus(t, bufferID))
	assert.Zero(t, fake.callCount())
}

func TestWorkerPoolStartIsIdempotent(t *testing.T) {
	fake := &scriptedLLM{}
	cfg := flushTestConfig()
	cfg.Worker = intTestWorkerConfig()
	env := newTestManager(t, cfg, fake)
	ctx := context.Background()

	pool := NewWorkerPool("test-pod", cfg.Worker, env.buffers, env.manager)
	require.NoError(t, pool.Start(ctx))
	require.NoError(t, pool.Start(ctx), "duplicate Start is a no-op")
	assert.Len(t, pool.workers, cfg.Worker.WorkerCount)
	pool.Stop()
}

func TestWorkerAtCapacity(t *testing.T) {
	fake := &scriptedLLM{}
	cfg := flushTestConfig()
	cfg.Worker = intTestWorkerConfig()
	cfg.Worker.MaxConcurrentFlushes = 0
	env := newTestManager(t, cfg, fake)

	w := NewWorker("w0", "test-pod", cfg.Worker, env.buffers, env.manager)
	err := w.pollAndProcess(context.Background())
	assert.ErrorIs(t, err, ErrAtCapacity)
}

func TestWorkerNothingToFlush(t *testing.T) {
	fake := &scriptedLLM{}
	cfg := flushTestConfig()
	cfg.Worker = intTestWorkerConfig()
	env := newTestManager(t, cfg, fake)

	w := NewWorker("w0", "test-pod", cfg.Worker, env.buffers, env.manager)
	err := w.pollAndProcess(context.Background())
	assert.ErrorIs(t, err, ErrNothingToFlush)
}

func TestWatchdogReapsStuckEntries(t *testing.T) {
	client := testdb.NewTestClient(t)
	buffers := services.NewBufferService(client.Client)
	ctx := context.Background()

	cfg := intTestWorkerConfig()
	cfg.StuckThreshold = 10 * time.Minute

	stuck := createProcessingEntry(t, client.Client, "u1", time.Now().Add(-time.Hour))
	fresh := createProcessingEntry(t, client.Client, "u2", time.Now())

	pool := NewWorkerPool("test-pod", cfg, buffers, nil)
	require.NoError(t, pool.reapStuck(ctx))

	stuckRow, err := client.BufferEntry.Get(ctx, stuck)
	require.NoError(t, err)
	assert.Equal(t, bufferentry.StatusFailed, stuckRow.Status)

	freshRow, err := client.BufferEntry.Get(ctx, fresh)
	require.NoError(t, err)
	assert.Equal(t, bufferentry.StatusProcessing, freshRow.Status, "a live flush is not reaped")

	health := pool.Health()
	assert.Equal(t, 1, health.EntriesReaped)
	assert.False(t, health.LastStuckScan.IsZero())
}

func TestRecoverStartupStuck(t *testing.T) {
	client := testdb.NewTestClient(t)
	buffers := services.NewBufferService(client.Client)
	ctx := context.Background()

	stuck := createProcessingEntry(t, client.Client, "u1", time.Now().Add(-time.Hour))

	reaped, err := RecoverStartupStuck(ctx, buffers, 10*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, reaped)

	row, err := client.BufferEntry.Get(ctx, stuck)
	require.NoError(t, err)
	assert.Equal(t, bufferentry.StatusFailed, row.Status)
}

// Two replicas racing over the same buffer must never process the same entry
// twice: the SKIP LOCKED claim partitions the rows between them. Each racer
// runs on its own connection pool over a shared schema, as deployed replicas
// would.
func TestConcurrentFlushesNeverDoubleProcess(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	seed := shared.NewClient(t)
	cfg := flushTestConfig()
	ctx := context.Background()

	var inserted []string
	seedBuffers := services.NewBufferService(seed.Client)
	for i := 0; i < 6; i++ {
		id, err := seedBuffers.Insert(ctx, "u1", chatBlobOfTokens("u1", 5))
		require.NoError(t, err)
		inserted = append(inserted, id)
	}

	// Each racer is a full replica: own pool, services, pipeline, and script.
	// Empty fact lists keep the pipeline to a single call per flush.
	newRacer := func() *Manager {
		client := shared.NewClient(t)
		fake := &scriptedLLM{embedDim: 4, script: []scriptEntry{
			{payload: `{"facts": []}`},
			{payload: `{"facts": []}`},
		}}
		buffers := services.NewBufferService(client.Client)
		blobs := services.NewBlobService(client.Client)
		profiles := services.NewProfileService(client.Client)
		events := services.NewEventService(client.Client, search.NewPostgresIndex(client.Client))
		return NewManager(cfg, buffers, blobs, extraction.NewPipeline(cfg, fake, profiles, events))
	}
	racers := []*Manager{newRacer(), newRacer()}

	results := make([]*Result, len(racers))
	errs := make([]error, len(racers))
	var wg sync.WaitGroup
	for i, racer := range racers {
		wg.Add(1)
		go func(i int, racer *Manager) {
			defer wg.Done()
			results[i], errs[i] = racer.FlushAll(ctx, "u1", blob.TypeChat, nil)
		}(i, racer)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	seen := make(map[string]int)
	for _, res := range results {
		if res == nil {
			continue
		}
		for _, id := range res.BufferIDs {
			seen[id]++
		}
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "entry %s processed by more than one flush", id)
	}

	// Every entry ends terminal-done exactly once, whichever replica took it.
	for _, id := range inserted {
		row, err := seed.BufferEntry.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, bufferentry.StatusDone, row.Status)
	}
}
