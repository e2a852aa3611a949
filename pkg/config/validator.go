package config

import (
	"fmt"
	"time"
)

// Recognized values for enum-like options.
var (
	supportedLanguages   = map[string]bool{"en": true, "zh": true}
	supportedLLMStyles   = map[string]bool{"openai": true, "doubao_cache": true}
	supportedSearchStore = map[string]bool{"postgres": true, "qdrant": true, "memory": true}
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	if err := v.validateLanguage(); err != nil {
		return fmt.Errorf("language validation failed: %w", err)
	}

	if err := v.validateLLM(); err != nil {
		return fmt.Errorf("LLM validation failed: %w", err)
	}

	if err := v.validateEmbedding(); err != nil {
		return fmt.Errorf("embedding validation failed: %w", err)
	}

	if err := v.validateBuffer(); err != nil {
		return fmt.Errorf("buffer validation failed: %w", err)
	}

	if err := v.validateProfile(); err != nil {
		return fmt.Errorf("profile validation failed: %w", err)
	}

	if err := v.validateSearchStore(); err != nil {
		return fmt.Errorf("search store validation failed: %w", err)
	}

	if err := v.validateWorker(); err != nil {
		return fmt.Errorf("worker validation failed: %w", err)
	}

	if err := v.validateRetention(); err != nil {
		return fmt.Errorf("retention validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateLanguage() error {
	if !supportedLanguages[v.cfg.Language] {
		return NewValidationError("language",
			fmt.Errorf("%w: %q (supported: en, zh)", ErrInvalidValue, v.cfg.Language))
	}
	return nil
}

func (v *ConfigValidator) validateLLM() error {
	if !supportedLLMStyles[v.cfg.LLMStyle] {
		return NewValidationError("llm_style",
			fmt.Errorf("%w: %q (supported: openai, doubao_cache)", ErrInvalidValue, v.cfg.LLMStyle))
	}
	if v.cfg.LLMAPIKey == "" {
		return NewValidationError("llm_api_key", ErrMissingRequiredField)
	}
	if v.cfg.BestLLMModel == "" {
		return NewValidationError("best_llm_model", ErrMissingRequiredField)
	}
	return nil
}

func (v *ConfigValidator) validateEmbedding() error {
	if !v.cfg.EnableEventEmbedding {
		return nil
	}
	if v.cfg.EmbeddingAPIKey == "" {
		return NewValidationError("embedding_api_key",
			fmt.Errorf("%w (required when enable_event_embedding is on)", ErrMissingRequiredField))
	}
	if v.cfg.EmbeddingModel == "" {
		return NewValidationError("embedding_model", ErrMissingRequiredField)
	}
	if v.cfg.EmbeddingDim <= 0 {
		return NewValidationError("embedding_dim",
			fmt.Errorf("%w: must be positive, got %d", ErrInvalidValue, v.cfg.EmbeddingDim))
	}
	if v.cfg.EmbeddingMaxTokenSize <= 0 {
		return NewValidationError("embedding_max_token_size",
			fmt.Errorf("%w: must be positive, got %d", ErrInvalidValue, v.cfg.EmbeddingMaxTokenSize))
	}
	return nil
}

func (v *ConfigValidator) validateBuffer() error {
	if v.cfg.MaxChatBlobBufferTokenSize <= 0 {
		return NewValidationError("max_chat_blob_buffer_token_size",
			fmt.Errorf("%w: must be positive, got %d", ErrInvalidValue, v.cfg.MaxChatBlobBufferTokenSize))
	}
	if v.cfg.MaxChatBlobBufferProcessTokenSize < v.cfg.MaxChatBlobBufferTokenSize {
		return NewValidationError("max_chat_blob_buffer_process_token_size",
			fmt.Errorf("%w: per-batch ceiling (%d) below flush trigger (%d)",
				ErrInvalidValue, v.cfg.MaxChatBlobBufferProcessTokenSize, v.cfg.MaxChatBlobBufferTokenSize))
	}
	if v.cfg.MaxBufferAge < 0 {
		return NewValidationError("max_buffer_age",
			fmt.Errorf("%w: must be non-negative, got %s", ErrInvalidValue, v.cfg.MaxBufferAge))
	}
	return nil
}

func (v *ConfigValidator) validateProfile() error {
	if v.cfg.MaxProfileSubtopics <= 0 {
		return NewValidationError("max_profile_subtopics",
			fmt.Errorf("%w: must be positive, got %d", ErrInvalidValue, v.cfg.MaxProfileSubtopics))
	}
	if v.cfg.MaxProfileTokenSize <= 0 {
		return NewValidationError("max_profile_token_size",
			fmt.Errorf("%w: must be positive, got %d", ErrInvalidValue, v.cfg.MaxProfileTokenSize))
	}
	if v.cfg.MaxPreProfileTokenSize <= 0 {
		return NewValidationError("max_pre_profile_token_size",
			fmt.Errorf("%w: must be positive, got %d", ErrInvalidValue, v.cfg.MaxPreProfileTokenSize))
	}
	if v.cfg.EventSimilarityThreshold < 0 || v.cfg.EventSimilarityThreshold > 1 {
		return NewValidationError("event_similarity_threshold",
			fmt.Errorf("%w: must be within [0, 1], got %g", ErrInvalidValue, v.cfg.EventSimilarityThreshold))
	}
	for _, topic := range v.cfg.OverwriteUserProfiles {
		if topic.Topic == "" {
			return NewValidationError("overwrite_user_profiles",
				fmt.Errorf("%w: topic name", ErrMissingRequiredField))
		}
	}
	for _, topic := range v.cfg.AdditionalUserProfiles {
		if topic.Topic == "" {
			return NewValidationError("additional_user_profiles",
				fmt.Errorf("%w: topic name", ErrMissingRequiredField))
		}
	}
	if v.cfg.UseTimezone != "" {
		if _, err := time.LoadLocation(v.cfg.UseTimezone); err != nil {
			return NewValidationError("use_timezone",
				fmt.Errorf("%w: %q: %v", ErrInvalidValue, v.cfg.UseTimezone, err))
		}
	}
	return nil
}

func (v *ConfigValidator) validateSearchStore() error {
	if !supportedSearchStore[v.cfg.SearchStore] {
		return NewValidationError("search_store",
			fmt.Errorf("%w: %q (supported: postgres, qdrant, memory)", ErrInvalidValue, v.cfg.SearchStore))
	}
	if v.cfg.SearchStore == "qdrant" {
		if v.cfg.Qdrant == nil || v.cfg.Qdrant.Host == "" {
			return NewValidationError("qdrant.host", ErrMissingRequiredField)
		}
		if v.cfg.Qdrant.Port <= 0 {
			return NewValidationError("qdrant.port",
				fmt.Errorf("%w: must be positive, got %d", ErrInvalidValue, v.cfg.Qdrant.Port))
		}
	}
	return nil
}

func (v *ConfigValidator) validateWorker() error {
	w := v.cfg.Worker
	if w == nil {
		return NewValidationError("worker", ErrMissingRequiredField)
	}
	if w.WorkerCount <= 0 {
		return NewValidationError("worker.worker_count",
			fmt.Errorf("%w: must be positive, got %d", ErrInvalidValue, w.WorkerCount))
	}
	if w.MaxConcurrentFlushes <= 0 {
		return NewValidationError("worker.max_concurrent_flushes",
			fmt.Errorf("%w: must be positive, got %d", ErrInvalidValue, w.MaxConcurrentFlushes))
	}
	if w.PollInterval <= 0 {
		return NewValidationError("worker.poll_interval",
			fmt.Errorf("%w: must be positive, got %s", ErrInvalidValue, w.PollInterval))
	}
	if w.FlushTimeout <= 0 {
		return NewValidationError("worker.flush_timeout",
			fmt.Errorf("%w: must be positive, got %s", ErrInvalidValue, w.FlushTimeout))
	}
	return nil
}

func (v *ConfigValidator) validateRetention() error {
	r := v.cfg.Retention
	if r == nil {
		return NewValidationError("retention", ErrMissingRequiredField)
	}
	if r.BufferRetentionDays < 0 {
		return NewValidationError("retention.buffer_retention_days",
			fmt.Errorf("%w: must be non-negative, got %d", ErrInvalidValue, r.BufferRetentionDays))
	}
	if r.EventRetentionDays < 0 {
		return NewValidationError("retention.event_retention_days",
			fmt.Errorf("%w: must be non-negative, got %d", ErrInvalidValue, r.EventRetentionDays))
	}
	if r.CleanupInterval <= 0 {
		return NewValidationError("retention.cleanup_interval",
			fmt.Errorf("%w: must be positive, got %s", ErrInvalidValue, r.CleanupInterval))
	}
	return nil
}
