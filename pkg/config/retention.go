package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// BufferRetentionDays is how many days to keep done/failed buffer
	// entries before deleting them together with their blob bodies.
	BufferRetentionDays int `yaml:"buffer_retention_days"`

	// EventRetentionDays is the maximum age of event and gist rows before
	// deletion. Zero keeps them forever; retrieval windows bound reads
	// regardless.
	EventRetentionDays int `yaml:"event_retention_days"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		BufferRetentionDays: 30,
		EventRetentionDays:  0,
		CleanupInterval:     12 * time.Hour,
	}
}
