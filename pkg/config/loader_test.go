package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig writes a memobase.yaml into a fresh config dir and returns the dir.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "memobase.yaml"), []byte(content), 0o644)
	require.NoError(t, err)
	return dir
}

func TestInitialize_Defaults(t *testing.T) {
	dir := writeConfig(t, `
llm_api_key: sk-test
embedding_api_key: sk-embed
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, "openai", cfg.LLMStyle)
	assert.Equal(t, "gpt-4o-mini", cfg.BestLLMModel)
	assert.Equal(t, "sk-test", cfg.LLMAPIKey)
	assert.Equal(t, 1536, cfg.EmbeddingDim)
	assert.True(t, cfg.EnableEventEmbedding)
	assert.Equal(t, 1024, cfg.MaxChatBlobBufferTokenSize)
	assert.Equal(t, 16384, cfg.MaxChatBlobBufferProcessTokenSize)
	assert.Equal(t, 30*time.Minute, cfg.MaxBufferAge)
	assert.False(t, cfg.ProfileStrictMode)
	assert.True(t, cfg.ProfileValidateMode)
	assert.Equal(t, 15, cfg.MaxProfileSubtopics)
	assert.Equal(t, "postgres", cfg.SearchStore)
	assert.Equal(t, dir, cfg.ConfigDir())

	// Nested defaults
	require.NotNil(t, cfg.Worker)
	assert.Equal(t, 3, cfg.Worker.WorkerCount)
	assert.Equal(t, 2*time.Second, cfg.Worker.PollInterval)
	require.NotNil(t, cfg.Retention)
	assert.Equal(t, 30, cfg.Retention.BufferRetentionDays)
	assert.Equal(t, 12*time.Hour, cfg.Retention.CleanupInterval)
}

func TestInitialize_FullConfig(t *testing.T) {
	dir := writeConfig(t, `
language: zh
llm_style: doubao_cache
best_llm_model: doubao-pro-32k
thinking_llm_model: doubao-pro-256k
summary_llm_model: doubao-lite-4k
llm_api_key: ark-key
llm_base_url: https://ark.example.com/api/v3
embedding_api_key: ark-embed-key
embedding_base_url: https://ark.example.com/api/v3
embedding_model: doubao-embedding
embedding_dim: 2048
enable_event_embedding: true
event_similarity_threshold: 0.35
max_chat_blob_buffer_token_size: 512
max_chat_blob_buffer_process_token_size: 8192
max_buffer_age: 15m
profile_strict_mode: true
profile_validate_mode: false
max_profile_subtopics: 5
use_timezone: Asia/Shanghai
search_store: qdrant
qdrant:
  host: qdrant.internal
  port: 6334
  api_key: qd-key
  use_tls: true
  collection_prefix: prod
worker:
  worker_count: 8
  max_concurrent_flushes: 4
  poll_interval: 5s
  flush_timeout: 2m
retention:
  buffer_retention_days: 7
  event_retention_days: 365
  cleanup_interval: 6h
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, "zh", cfg.Language)
	assert.Equal(t, "doubao_cache", cfg.LLMStyle)
	assert.Equal(t, "doubao-pro-32k", cfg.BestLLMModel)
	assert.Equal(t, "doubao-pro-256k", cfg.ThinkingLLMModel)
	assert.Equal(t, "doubao-lite-4k", cfg.SummaryLLMModel)
	assert.Equal(t, "https://ark.example.com/api/v3", cfg.LLMBaseURL)
	assert.Equal(t, 2048, cfg.EmbeddingDim)
	assert.InDelta(t, 0.35, cfg.EventSimilarityThreshold, 1e-9)
	assert.Equal(t, 512, cfg.MaxChatBlobBufferTokenSize)
	assert.Equal(t, 15*time.Minute, cfg.MaxBufferAge)
	assert.True(t, cfg.ProfileStrictMode)
	assert.False(t, cfg.ProfileValidateMode, "explicit false must survive resolution")
	assert.Equal(t, 5, cfg.MaxProfileSubtopics)
	assert.Equal(t, "Asia/Shanghai", cfg.UseTimezone)

	assert.Equal(t, "qdrant", cfg.SearchStore)
	assert.Equal(t, "qdrant.internal", cfg.Qdrant.Host)
	assert.True(t, cfg.Qdrant.UseTLS)
	assert.Equal(t, "prod", cfg.Qdrant.CollectionPrefix)

	assert.Equal(t, 8, cfg.Worker.WorkerCount)
	assert.Equal(t, 4, cfg.Worker.MaxConcurrentFlushes)
	assert.Equal(t, 5*time.Second, cfg.Worker.PollInterval)
	assert.Equal(t, 2*time.Minute, cfg.Worker.FlushTimeout)
	// Unset worker values keep defaults
	assert.Equal(t, 500*time.Millisecond, cfg.Worker.PollIntervalJitter)

	assert.Equal(t, 7, cfg.Retention.BufferRetentionDays)
	assert.Equal(t, 365, cfg.Retention.EventRetentionDays)
	assert.Equal(t, 6*time.Hour, cfg.Retention.CleanupInterval)
}

func TestInitialize_MissingFile(t *testing.T) {
	dir := t.TempDir()

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigNotFound))
}

func TestInitialize_InvalidYAML(t *testing.T) {
	dir := writeConfig(t, "llm_api_key: [unclosed")

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidYAML))
}

func TestInitialize_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_MEMOBASE_LLM_KEY", "sk-from-env")

	dir := writeConfig(t, `
llm_api_key: "{{.TEST_MEMOBASE_LLM_KEY}}"
embedding_api_key: sk-embed
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "sk-from-env", cfg.LLMAPIKey)
}

func TestInitialize_ValidationFailure(t *testing.T) {
	dir := writeConfig(t, `
llm_style: anthropic
llm_api_key: sk-test
embedding_api_key: sk-embed
`)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "llm_style")
}

func TestInitialize_EmbeddingDisabledSkipsEmbeddingChecks(t *testing.T) {
	dir := writeConfig(t, `
llm_api_key: sk-test
enable_event_embedding: false
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.False(t, cfg.EnableEventEmbedding)
	assert.Empty(t, cfg.EmbeddingAPIKey)
}

func TestInitialize_TaxonomyExtensions(t *testing.T) {
	dir := writeConfig(t, `
llm_api_key: sk-test
embedding_api_key: sk-embed
additional_user_profiles:
  - topic: gaming
    description: What the user plays
    sub_topics:
      - rank
      - name: main_character
        description: The character the user mains
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	topics := cfg.ProfileTopics(nil)
	last := topics[len(topics)-1]
	assert.Equal(t, "gaming", last.Topic)
	require.Len(t, last.SubTopics, 2)
	assert.Equal(t, "rank", last.SubTopics[0].Name)
	assert.Equal(t, "main_character", last.SubTopics[1].Name)
	assert.Equal(t, "The character the user mains", last.SubTopics[1].Description)

	// Built-in topics are still present ahead of the extension
	assert.Greater(t, len(topics), 1)
	assert.Equal(t, "basic_info", topics[0].Topic)
}

func TestInitialize_InvalidDurationFallsBack(t *testing.T) {
	dir := writeConfig(t, `
llm_api_key: sk-test
embedding_api_key: sk-embed
max_buffer_age: not-a-duration
worker:
  poll_interval: also-bad
`)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, cfg.MaxBufferAge)
	assert.Equal(t, 2*time.Second, cfg.Worker.PollInterval)
}
