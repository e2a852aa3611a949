package database

import (
	"context"
	"time"
)

// PoolHealth is a point-in-time snapshot of connectivity and pool pressure.
// The daemon logs one at startup; embedders can surface it from liveness
// probes.
type PoolHealth struct {
	Healthy         bool  `json:"healthy"`
	PingMillis      int64 `json:"ping_ms"`
	OpenConnections int   `json:"open_connections"`
	InUse           int   `json:"in_use"`
	Idle            int   `json:"idle"`
	WaitCount       int64 `json:"wait_count"`
	WaitMillis      int64 `json:"wait_ms"`
	MaxOpenConns    int   `json:"max_open_conns"`
}

// Health pings the database and snapshots the pool statistics. The snapshot
// is populated even when the ping fails so callers can log pool pressure
// alongside the error.
func (c *Client) Health(ctx context.Context) (PoolHealth, error) {
	start := time.Now()
	err := c.db.PingContext(ctx)

	stats := c.db.Stats()
	return PoolHealth{
		Healthy:         err == nil,
		PingMillis:      time.Since(start).Milliseconds(),
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
		Idle:            stats.Idle,
		WaitCount:       stats.WaitCount,
		WaitMillis:      stats.WaitDuration.Milliseconds(),
		MaxOpenConns:    stats.MaxOpenConnections,
	}, err
}
