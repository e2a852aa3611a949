package config

import "time"

// WorkerConfig contains flush worker pool configuration.
// These values control how buffer flushes are polled, claimed, and processed
// by the background daemon.
type WorkerConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently polls for flushable buffer batches.
	WorkerCount int `yaml:"worker_count"`

	// MaxConcurrentFlushes is the global limit of concurrent flushes being
	// processed across ALL replicas/pods. Enforced by database COUNT(*) check.
	MaxConcurrentFlushes int `yaml:"max_concurrent_flushes"`

	// PollInterval is the base interval for checking flushable buffers.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// FlushTimeout is the maximum time one flush batch can be processed.
	FlushTimeout time.Duration `yaml:"flush_timeout"`

	// GracefulShutdownTimeout is the max time to wait for active flushes
	// to complete during shutdown. Should match FlushTimeout.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// StuckScanInterval is how often to scan for stuck processing entries.
	StuckScanInterval time.Duration `yaml:"stuck_scan_interval"`

	// StuckThreshold is how long a buffer entry can sit in processing
	// before it is considered abandoned and reset to failed.
	StuckThreshold time.Duration `yaml:"stuck_threshold"`
}

// DefaultWorkerConfig returns the built-in worker defaults.
func DefaultWorkerConfig() *WorkerConfig {
	return &WorkerConfig{
		WorkerCount:             3,
		MaxConcurrentFlushes:    3,
		PollInterval:            2 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		FlushTimeout:            5 * time.Minute,
		GracefulShutdownTimeout: 5 * time.Minute,
		StuckScanInterval:       5 * time.Minute,
		StuckThreshold:          10 * time.Minute,
	}
}
