package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
)

// MemobaseYAMLConfig represents the complete memobase.yaml file structure.
// Optional booleans are pointers so "explicitly false" survives resolution.
type MemobaseYAMLConfig struct {
	Language string `yaml:"language"`

	LLMStyle         string `yaml:"llm_style"`
	BestLLMModel     string `yaml:"best_llm_model"`
	ThinkingLLMModel string `yaml:"thinking_llm_model"`
	SummaryLLMModel  string `yaml:"summary_llm_model"`
	LLMAPIKey        string `yaml:"llm_api_key"`
	LLMBaseURL       string `yaml:"llm_base_url"`

	EmbeddingProvider     string `yaml:"embedding_provider"`
	EmbeddingAPIKey       string `yaml:"embedding_api_key"`
	EmbeddingBaseURL      string `yaml:"embedding_base_url"`
	EmbeddingModel        string `yaml:"embedding_model"`
	EmbeddingDim          int    `yaml:"embedding_dim"`
	EmbeddingMaxTokenSize int    `yaml:"embedding_max_token_size"`

	EnableEventEmbedding     *bool    `yaml:"enable_event_embedding"`
	EventSimilarityThreshold *float64 `yaml:"event_similarity_threshold"`

	MaxChatBlobBufferTokenSize        int    `yaml:"max_chat_blob_buffer_token_size"`
	MaxChatBlobBufferProcessTokenSize int    `yaml:"max_chat_blob_buffer_process_token_size"`
	MaxBufferAge                      string `yaml:"max_buffer_age"` // Parsed to time.Duration

	ProfileStrictMode      *bool `yaml:"profile_strict_mode"`
	ProfileValidateMode    *bool `yaml:"profile_validate_mode"`
	MaxProfileSubtopics    int   `yaml:"max_profile_subtopics"`
	MaxProfileTokenSize    int   `yaml:"max_profile_token_size"`
	MaxPreProfileTokenSize int   `yaml:"max_pre_profile_token_size"`

	AdditionalUserProfiles []models.UserProfileTopic `yaml:"additional_user_profiles"`
	OverwriteUserProfiles  []models.UserProfileTopic `yaml:"overwrite_user_profiles"`

	UseTimezone string `yaml:"use_timezone"`

	SearchStore string               `yaml:"search_store"`
	Qdrant      *QdrantConfig        `yaml:"qdrant"`
	Worker      *WorkerYAMLConfig    `yaml:"worker"`
	Retention   *RetentionYAMLConfig `yaml:"retention"`
}

// WorkerYAMLConfig holds flush worker settings from YAML.
// Durations are strings ("2s", "500ms") parsed during resolution.
type WorkerYAMLConfig struct {
	WorkerCount             *int   `yaml:"worker_count"`
	MaxConcurrentFlushes    *int   `yaml:"max_concurrent_flushes"`
	PollInterval            string `yaml:"poll_interval"`
	PollIntervalJitter      string `yaml:"poll_interval_jitter"`
	FlushTimeout            string `yaml:"flush_timeout"`
	GracefulShutdownTimeout string `yaml:"graceful_shutdown_timeout"`
	StuckScanInterval       string `yaml:"stuck_scan_interval"`
	StuckThreshold          string `yaml:"stuck_threshold"`
}

// RetentionYAMLConfig holds retention settings from YAML.
type RetentionYAMLConfig struct {
	BufferRetentionDays *int   `yaml:"buffer_retention_days"`
	EventRetentionDays  *int   `yaml:"event_retention_days"`
	CleanupInterval     string `yaml:"cleanup_interval"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load memobase.yaml from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Resolve user values on top of built-in defaults
//  5. Validate all configuration
//  6. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"language", cfg.Language,
		"llm_style", stats.LLMStyle,
		"search_store", stats.SearchStore,
		"event_vectors", stats.EventVectors,
		"profile_topics", stats.Topics)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	fileCfg, err := loader.loadMemobaseYAML()
	if err != nil {
		return nil, NewLoadError("memobase.yaml", err)
	}

	cfg := DefaultConfig()
	cfg.configDir = configDir

	applyScalars(cfg, fileCfg)

	// Resolve nested sections (merge user YAML with built-in defaults).
	// Start with defaults, then merge user config on top to preserve unset
	// defaults.
	if fileCfg.Qdrant != nil {
		if err := mergo.Merge(cfg.Qdrant, fileCfg.Qdrant, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge qdrant config: %w", err)
		}
	}
	cfg.Worker = resolveWorkerConfig(fileCfg.Worker)
	cfg.Retention = resolveRetentionConfig(fileCfg.Retention)

	return cfg, nil
}

// applyScalars layers non-zero file values over the defaults.
func applyScalars(cfg *Config, f *MemobaseYAMLConfig) {
	if f.Language != "" {
		cfg.Language = f.Language
	}
	if f.LLMStyle != "" {
		cfg.LLMStyle = f.LLMStyle
	}
	if f.BestLLMModel != "" {
		cfg.BestLLMModel = f.BestLLMModel
	}
	cfg.ThinkingLLMModel = f.ThinkingLLMModel
	cfg.SummaryLLMModel = f.SummaryLLMModel
	cfg.LLMAPIKey = f.LLMAPIKey
	cfg.LLMBaseURL = f.LLMBaseURL

	if f.EmbeddingProvider != "" {
		cfg.EmbeddingProvider = f.EmbeddingProvider
	}
	cfg.EmbeddingAPIKey = f.EmbeddingAPIKey
	cfg.EmbeddingBaseURL = f.EmbeddingBaseURL
	if f.EmbeddingModel != "" {
		cfg.EmbeddingModel = f.EmbeddingModel
	}
	if f.EmbeddingDim > 0 {
		cfg.EmbeddingDim = f.EmbeddingDim
	}
	if f.EmbeddingMaxTokenSize > 0 {
		cfg.EmbeddingMaxTokenSize = f.EmbeddingMaxTokenSize
	}

	if f.EnableEventEmbedding != nil {
		cfg.EnableEventEmbedding = *f.EnableEventEmbedding
	}
	if f.EventSimilarityThreshold != nil {
		cfg.EventSimilarityThreshold = *f.EventSimilarityThreshold
	}

	if f.MaxChatBlobBufferTokenSize > 0 {
		cfg.MaxChatBlobBufferTokenSize = f.MaxChatBlobBufferTokenSize
	}
	if f.MaxChatBlobBufferProcessTokenSize > 0 {
		cfg.MaxChatBlobBufferProcessTokenSize = f.MaxChatBlobBufferProcessTokenSize
	}
	if f.MaxBufferAge != "" {
		if d, err := time.ParseDuration(f.MaxBufferAge); err == nil {
			cfg.MaxBufferAge = d
		} else {
			slog.Warn("Invalid max_buffer_age, using default",
				"value", f.MaxBufferAge,
				"default", cfg.MaxBufferAge,
				"error", err)
		}
	}

	if f.ProfileStrictMode != nil {
		cfg.ProfileStrictMode = *f.ProfileStrictMode
	}
	if f.ProfileValidateMode != nil {
		cfg.ProfileValidateMode = *f.ProfileValidateMode
	}
	if f.MaxProfileSubtopics > 0 {
		cfg.MaxProfileSubtopics = f.MaxProfileSubtopics
	}
	if f.MaxProfileTokenSize > 0 {
		cfg.MaxProfileTokenSize = f.MaxProfileTokenSize
	}
	if f.MaxPreProfileTokenSize > 0 {
		cfg.MaxPreProfileTokenSize = f.MaxPreProfileTokenSize
	}

	cfg.AdditionalUserProfiles = f.AdditionalUserProfiles
	cfg.OverwriteUserProfiles = f.OverwriteUserProfiles
	cfg.UseTimezone = f.UseTimezone

	if f.SearchStore != "" {
		cfg.SearchStore = f.SearchStore
	}
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// {{.VAR}} environment expansion; pass-through on template errors so the
	// YAML parser reports the real problem
	data = expandEnv(data)

	// Parse YAML
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadMemobaseYAML() (*MemobaseYAMLConfig, error) {
	var config MemobaseYAMLConfig

	if err := l.loadYAML("memobase.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// resolveWorkerConfig resolves worker configuration from YAML, applying defaults.
func resolveWorkerConfig(y *WorkerYAMLConfig) *WorkerConfig {
	cfg := DefaultWorkerConfig()

	if y == nil {
		return cfg
	}

	if y.WorkerCount != nil {
		cfg.WorkerCount = *y.WorkerCount
	}
	if y.MaxConcurrentFlushes != nil {
		cfg.MaxConcurrentFlushes = *y.MaxConcurrentFlushes
	}
	applyDuration(&cfg.PollInterval, y.PollInterval, "worker.poll_interval")
	applyDuration(&cfg.PollIntervalJitter, y.PollIntervalJitter, "worker.poll_interval_jitter")
	applyDuration(&cfg.FlushTimeout, y.FlushTimeout, "worker.flush_timeout")
	applyDuration(&cfg.GracefulShutdownTimeout, y.GracefulShutdownTimeout, "worker.graceful_shutdown_timeout")
	applyDuration(&cfg.StuckScanInterval, y.StuckScanInterval, "worker.stuck_scan_interval")
	applyDuration(&cfg.StuckThreshold, y.StuckThreshold, "worker.stuck_threshold")

	return cfg
}

// resolveRetentionConfig resolves retention configuration from YAML, applying defaults.
func resolveRetentionConfig(y *RetentionYAMLConfig) *RetentionConfig {
	cfg := DefaultRetentionConfig()

	if y == nil {
		return cfg
	}

	if y.BufferRetentionDays != nil {
		cfg.BufferRetentionDays = *y.BufferRetentionDays
	}
	if y.EventRetentionDays != nil {
		cfg.EventRetentionDays = *y.EventRetentionDays
	}
	applyDuration(&cfg.CleanupInterval, y.CleanupInterval, "retention.cleanup_interval")

	return cfg
}

// applyDuration parses a YAML duration string into dst, keeping the default
// and logging a warning when the value is malformed.
func applyDuration(dst *time.Duration, value, field string) {
	if value == "" {
		return
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("Invalid duration in config, using default",
			"field", field,
			"value", value,
			"default", *dst,
			"error", err)
		return
	}
	*dst = d
}
