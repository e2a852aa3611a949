package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validTestConfig returns a config that passes validation, for mutation below.
func validTestConfig() *Config {
	cfg := DefaultConfig()
	cfg.LLMAPIKey = "sk-test"
	cfg.EmbeddingAPIKey = "sk-embed"
	return cfg
}

func TestValidator_ValidConfig(t *testing.T) {
	cfg := validTestConfig()
	require.NoError(t, NewValidator(cfg).ValidateAll())
}

func TestValidator_Failures(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		errContains string
	}{
		{
			name:        "unsupported language",
			mutate:      func(c *Config) { c.Language = "eo" },
			errContains: "language",
		},
		{
			name:        "unknown llm style",
			mutate:      func(c *Config) { c.LLMStyle = "anthropic" },
			errContains: "llm_style",
		},
		{
			name:        "missing llm api key",
			mutate:      func(c *Config) { c.LLMAPIKey = "" },
			errContains: "llm_api_key",
		},
		{
			name:        "missing best model",
			mutate:      func(c *Config) { c.BestLLMModel = "" },
			errContains: "best_llm_model",
		},
		{
			name:        "missing embedding key with embeddings on",
			mutate:      func(c *Config) { c.EmbeddingAPIKey = "" },
			errContains: "embedding_api_key",
		},
		{
			name:        "non-positive embedding dim",
			mutate:      func(c *Config) { c.EmbeddingDim = 0 },
			errContains: "embedding_dim",
		},
		{
			name:        "zero flush trigger",
			mutate:      func(c *Config) { c.MaxChatBlobBufferTokenSize = 0 },
			errContains: "max_chat_blob_buffer_token_size",
		},
		{
			name: "batch ceiling below flush trigger",
			mutate: func(c *Config) {
				c.MaxChatBlobBufferTokenSize = 4096
				c.MaxChatBlobBufferProcessTokenSize = 1024
			},
			errContains: "max_chat_blob_buffer_process_token_size",
		},
		{
			name:        "zero max profile subtopics",
			mutate:      func(c *Config) { c.MaxProfileSubtopics = 0 },
			errContains: "max_profile_subtopics",
		},
		{
			name:        "similarity threshold above one",
			mutate:      func(c *Config) { c.EventSimilarityThreshold = 1.5 },
			errContains: "event_similarity_threshold",
		},
		{
			name:        "unknown timezone",
			mutate:      func(c *Config) { c.UseTimezone = "Mars/Olympus" },
			errContains: "use_timezone",
		},
		{
			name:        "unknown search store",
			mutate:      func(c *Config) { c.SearchStore = "opensearch" },
			errContains: "search_store",
		},
		{
			name: "qdrant store without host",
			mutate: func(c *Config) {
				c.SearchStore = "qdrant"
				c.Qdrant.Host = ""
			},
			errContains: "qdrant.host",
		},
		{
			name:        "zero worker count",
			mutate:      func(c *Config) { c.Worker.WorkerCount = 0 },
			errContains: "worker_count",
		},
		{
			name:        "zero poll interval",
			mutate:      func(c *Config) { c.Worker.PollInterval = 0 },
			errContains: "poll_interval",
		},
		{
			name:        "negative buffer retention",
			mutate:      func(c *Config) { c.Retention.BufferRetentionDays = -1 },
			errContains: "buffer_retention_days",
		},
		{
			name: "anonymous topic in overwrite list",
			mutate: func(c *Config) {
				c.OverwriteUserProfiles = append(c.OverwriteUserProfiles, BuiltinProfileTopics("en")[0])
				c.OverwriteUserProfiles[0].Topic = ""
			},
			errContains: "overwrite_user_profiles",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg)

			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestValidator_EmbeddingChecksSkippedWhenDisabled(t *testing.T) {
	cfg := validTestConfig()
	cfg.EnableEventEmbedding = false
	cfg.EmbeddingAPIKey = ""
	cfg.EmbeddingDim = 0

	require.NoError(t, NewValidator(cfg).ValidateAll())
}
