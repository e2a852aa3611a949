package flush

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/config"
)

func testWorkerConfig() *config.WorkerConfig {
	return &config.WorkerConfig{
		WorkerCount:             3,
		MaxConcurrentFlushes:    3,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		FlushTimeout:            5 * time.Minute,
		GracefulShutdownTimeout: 5 * time.Minute,
		StuckScanInterval:       5 * time.Minute,
		StuckThreshold:          10 * time.Minute,
	}
}

func TestWorkerPollInterval(t *testing.T) {
	cfg := testWorkerConfig()
	w := NewWorker("test-worker", "test-pod", cfg, nil, nil)

	// Poll interval should be within [base - jitter, base + jitter]
	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 500*time.Millisecond, "poll interval below minimum")
		assert.LessOrEqual(t, d, 1500*time.Millisecond, "poll interval above maximum")
	}
}

func TestWorkerPollIntervalNoJitter(t *testing.T) {
	cfg := testWorkerConfig()
	cfg.PollIntervalJitter = 0
	w := NewWorker("test-worker", "test-pod", cfg, nil, nil)

	for i := 0; i < 10; i++ {
		d := w.pollInterval()
		assert.Equal(t, 1*time.Second, d, "poll interval should equal base when jitter is 0")
	}
}

func TestWorkerHealth(t *testing.T) {
	cfg := testWorkerConfig()
	w := NewWorker("worker-1", "pod-1", cfg, nil, nil)

	h := w.Health()
	assert.Equal(t, "worker-1", h.ID)
	assert.Equal(t, "idle", h.Status)
	assert.Equal(t, "", h.CurrentUserID)
	assert.Equal(t, 0, h.FlushesProcessed)

	// Simulate working state
	w.setStatus(WorkerStatusWorking, "user-abc")
	h = w.Health()
	assert.Equal(t, "working", h.Status)
	assert.Equal(t, "user-abc", h.CurrentUserID)

	// Back to idle
	w.setStatus(WorkerStatusIdle, "")
	h = w.Health()
	assert.Equal(t, "idle", h.Status)
	assert.Equal(t, "", h.CurrentUserID)
}
