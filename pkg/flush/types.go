// Package flush runs the background half of the ingestion path: polling
// buffers for flushable work, claiming entries, and driving the extraction
// pipeline over the claimed batches.
package flush

import (
	"errors"
	"time"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/blob"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
)

// Sentinel errors for flush scheduling.
var (
	// ErrNothingToFlush indicates no buffer currently meets a flush trigger.
	ErrNothingToFlush = errors.New("nothing to flush")

	// ErrAtCapacity indicates the global concurrent flush limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// Result describes one completed flush batch.
type Result struct {
	UserID     string
	BlobType   blob.BlobType
	BufferIDs  []string // claimed entry ids, insertion order
	Extraction *models.ExtractionResult
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy      bool           `json:"is_healthy"`
	DBReachable    bool           `json:"db_reachable"`
	DBError        string         `json:"db_error,omitempty"`
	PodID          string         `json:"pod_id"`
	ActiveWorkers  int            `json:"active_workers"`
	TotalWorkers   int            `json:"total_workers"`
	ActiveFlushes  int            `json:"active_flushes"`
	MaxConcurrent  int            `json:"max_concurrent"`
	PendingBuffers int            `json:"pending_buffers"`
	WorkerStats    []WorkerHealth `json:"worker_stats"`
	LastStuckScan  time.Time      `json:"last_stuck_scan"`
	EntriesReaped  int            `json:"entries_reaped"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID               string    `json:"id"`
	Status           string    `json:"status"` // "idle" or "working"
	CurrentUserID    string    `json:"current_user_id,omitempty"`
	FlushesProcessed int       `json:"flushes_processed"`
	LastActivity     time.Time `json:"last_activity"`
}
