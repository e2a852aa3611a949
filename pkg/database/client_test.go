package database

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
	"github.com/AlwaysBluer/lindorm-memobase/test/util"
)

// newTestClient wires a Client over a throwaway schema on the shared test
// server. Tables come from ent auto-migration; the expression indexes are
// applied the same way NewClient applies them.
func newTestClient(t *testing.T) *Client {
	t.Helper()
	ctx := context.Background()

	entClient, db := util.Open(t, util.NewSchema(t))
	util.Migrate(t, entClient)
	require.NoError(t, CreateProfileSlotIndexes(ctx, entsql.OpenDB(dialect.Postgres, db)))

	return NewClientFromEnt(entClient, db)
}

func TestClientHealth(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.DB().PingContext(ctx))

	health, err := client.Health(ctx)
	require.NoError(t, err)
	assert.True(t, health.Healthy)
	assert.Greater(t, health.MaxOpenConns, 0)
	assert.GreaterOrEqual(t, health.PingMillis, int64(0))
	assert.Less(t, health.PingMillis, int64(1000), "local ping should be fast")
}

func TestPoolHealthJSONShape(t *testing.T) {
	client := newTestClient(t)

	health, err := client.Health(context.Background())
	require.NoError(t, err)

	raw, err := json.Marshal(health)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))

	// Durations must serialize as millisecond numbers, not nanoseconds.
	ping, ok := fields["ping_ms"].(float64)
	require.True(t, ok, "ping_ms should be a number")
	assert.Less(t, ping, float64(1_000_000))

	wait, ok := fields["wait_ms"].(float64)
	require.True(t, ok, "wait_ms should be a number")
	assert.GreaterOrEqual(t, wait, float64(0))

	healthy, ok := fields["healthy"].(bool)
	require.True(t, ok, "healthy should be a bool")
	assert.True(t, healthy)
}

func TestProfileSlotLookup(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	// Create profiles under two different topics
	guitar, err := client.UserProfile.Create().
		SetID("prof-1").
		SetUserID("user-1").
		SetContent("Plays jazz guitar on weekends").
		SetAttributes(models.ProfileAttributes{Topic: "interest", SubTopic: "music"}).
		Save(ctx)
	require.NoError(t, err)

	chef, err := client.UserProfile.Create().
		SetID("prof-2").
		SetUserID("user-1").
		SetContent("Works as a sous chef").
		SetAttributes(models.ProfileAttributes{Topic: "work", SubTopic: "title"}).
		Save(ctx)
	require.NoError(t, err)

	// Slot lookup via the expression index path
	rows, err := client.DB().QueryContext(ctx,
		`SELECT profile_id FROM user_profiles
		WHERE user_id = $1 AND attributes->>'topic' = $2`,
		"user-1", "interest",
	)
	require.NoError(t, err)
	defer rows.Close()

	var results []string
	for rows.Next() {
		var profileID string
		err := rows.Scan(&profileID)
		require.NoError(t, err)
		results = append(results, profileID)
	}

	// Should only match the music profile
	assert.Len(t, results, 1)
	assert.Equal(t, guitar.ID, results[0])

	// Containment query against the GIN-indexed attributes column
	rows2, err := client.DB().QueryContext(ctx,
		`SELECT profile_id FROM user_profiles
		WHERE user_id = $1 AND attributes @> $2`,
		"user-1", `{"topic":"work","sub_topic":"title"}`,
	)
	require.NoError(t, err)
	defer rows2.Close()

	results2 := []string{}
	for rows2.Next() {
		var profileID string
		err := rows2.Scan(&profileID)
		require.NoError(t, err)
		results2 = append(results2, profileID)
	}

	assert.Len(t, results2, 1)
	assert.Equal(t, chef.ID, results2[0])
}

func TestConfigDSN(t *testing.T) {
	cfg := Config{
		Host:     "db.internal",
		Port:     5433,
		User:     "memo",
		Password: "s3cret",
		Database: "memobase",
		SSLMode:  "require",
	}
	assert.Equal(t,
		"host=db.internal port=5433 user=memo password=s3cret dbname=memobase sslmode=require",
		cfg.dsn())
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
		"DB_CONN_MAX_LIFETIME", "DB_CONN_MAX_IDLE_TIME",
	}

	tests := []struct {
		name        string
		envVars     map[string]string
		errContains string
		check       func(t *testing.T, cfg Config)
	}{
		{
			name:    "defaults fill everything but the password",
			envVars: map[string]string{"DB_PASSWORD": "test"},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "localhost", cfg.Host)
				assert.Equal(t, 5432, cfg.Port)
				assert.Equal(t, "memobase", cfg.User)
				assert.Equal(t, "memobase", cfg.Database)
				assert.Equal(t, "disable", cfg.SSLMode)
				assert.Equal(t, 25, cfg.MaxOpenConns)
				assert.Equal(t, 10, cfg.MaxIdleConns)
				assert.Equal(t, 30*time.Minute, cfg.ConnMaxLifetime)
				assert.Equal(t, 5*time.Minute, cfg.ConnMaxIdleTime)
			},
		},
		{
			name: "explicit values override defaults",
			envVars: map[string]string{
				"DB_HOST":           "db.example.com",
				"DB_PORT":           "5433",
				"DB_USER":           "admin",
				"DB_PASSWORD":       "secret",
				"DB_NAME":           "production",
				"DB_SSLMODE":        "require",
				"DB_MAX_OPEN_CONNS": "50",
				"DB_MAX_IDLE_CONNS": "20",
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "db.example.com", cfg.Host)
				assert.Equal(t, 5433, cfg.Port)
				assert.Equal(t, "require", cfg.SSLMode)
				assert.Equal(t, 50, cfg.MaxOpenConns)
				assert.Equal(t, 20, cfg.MaxIdleConns)
			},
		},
		{
			name:        "non-numeric port",
			envVars:     map[string]string{"DB_PORT": "invalid", "DB_PASSWORD": "test"},
			errContains: "invalid DB_PORT",
		},
		{
			name:        "non-numeric pool size",
			envVars:     map[string]string{"DB_MAX_OPEN_CONNS": "not_a_number", "DB_PASSWORD": "test"},
			errContains: "invalid DB_MAX_OPEN_CONNS",
		},
		{
			name:        "malformed lifetime duration",
			envVars:     map[string]string{"DB_CONN_MAX_LIFETIME": "invalid_duration", "DB_PASSWORD": "test"},
			errContains: "invalid DB_CONN_MAX_LIFETIME",
		},
		{
			name:        "malformed idle duration",
			envVars:     map[string]string{"DB_CONN_MAX_IDLE_TIME": "not_a_duration", "DB_PASSWORD": "test"},
			errContains: "invalid DB_CONN_MAX_IDLE_TIME",
		},
		{
			name:        "missing password",
			envVars:     map[string]string{},
			errContains: "DB_PASSWORD is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// t.Setenv both isolates and restores; an empty value reads as
			// unset through the env helpers.
			for _, key := range envKeys {
				t.Setenv(key, tt.envVars[key])
			}

			cfg, err := LoadConfigFromEnv()
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	valid := Config{
		Host:         "localhost",
		Port:         5432,
		User:         "test",
		Password:     "test",
		Database:     "test",
		SSLMode:      "disable",
		MaxOpenConns: 10,
		MaxIdleConns: 5,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"missing password", func(c *Config) { c.Password = "" }},
		{"idle conns exceed max conns", func(c *Config) { c.MaxIdleConns = c.MaxOpenConns + 1 }},
		{"zero max open conns", func(c *Config) { c.MaxOpenConns = 0; c.MaxIdleConns = 0 }},
		{"negative idle conns", func(c *Config) { c.MaxIdleConns = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
