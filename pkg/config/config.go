package config

import (
	"time"

	"github.com/AlwaysBluer/lindorm-memobase/pkg/models"
)

// Config is the umbrella configuration object for the memory engine.
// This is the primary object returned by Initialize() and used throughout
// the application. Field names mirror the recognized memobase.yaml keys.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// Language selects prompt templates and default taxonomy localization.
	Language string

	// LLM gateway routing
	LLMStyle         string
	BestLLMModel     string
	ThinkingLLMModel string
	SummaryLLMModel  string
	LLMAPIKey        string
	LLMBaseURL       string

	// Embedding provider. EmbeddingDim must match the deployed index.
	EmbeddingProvider     string
	EmbeddingAPIKey       string
	EmbeddingBaseURL      string
	EmbeddingModel        string
	EmbeddingDim          int
	EmbeddingMaxTokenSize int

	// EnableEventEmbedding gates vector indexing and search of event gists.
	EnableEventEmbedding bool

	// EventSimilarityThreshold is the default cosine floor for gist search.
	EventSimilarityThreshold float64

	// Buffer flush policy
	MaxChatBlobBufferTokenSize        int
	MaxChatBlobBufferProcessTokenSize int
	MaxBufferAge                      time.Duration

	// Taxonomy and merge strictness
	ProfileStrictMode   bool
	ProfileValidateMode bool
	MaxProfileSubtopics int

	// Token caps applied during merge planning: candidate memos are clipped
	// to MaxPreProfileTokenSize before merging, merged row content to
	// MaxProfileTokenSize.
	MaxProfileTokenSize    int
	MaxPreProfileTokenSize int

	// Taxonomy extensions applied on top of the built-in topics.
	AdditionalUserProfiles []models.UserProfileTopic
	OverwriteUserProfiles  []models.UserProfileTopic

	// UseTimezone affects timestamp rendering in prompts only.
	// Empty means UTC.
	UseTimezone string

	// SearchStore selects the event store backend: postgres, qdrant, memory.
	SearchStore string

	Qdrant    *QdrantConfig
	Worker    *WorkerConfig
	Retention *RetentionConfig
}

// Stats contains statistics about loaded configuration
type Stats struct {
	Topics       int
	LLMStyle     string
	SearchStore  string
	EventVectors bool
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	return Stats{
		Topics:       len(c.ProfileTopics(nil)),
		LLMStyle:     c.LLMStyle,
		SearchStore:  c.SearchStore,
		EventVectors: c.EnableEventEmbedding,
	}
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// EffectiveLanguage resolves the prompt language for one call, honoring a
// per-call override.
func (c *Config) EffectiveLanguage(pc *models.ProfileConfig) string {
	if pc != nil && pc.Language != "" {
		return pc.Language
	}
	return c.Language
}

// StrictMode resolves profile_strict_mode for one call.
func (c *Config) StrictMode(pc *models.ProfileConfig) bool {
	if pc != nil && pc.ProfileStrictMode != nil {
		return *pc.ProfileStrictMode
	}
	return c.ProfileStrictMode
}

// ValidateMode resolves profile_validate_mode for one call.
func (c *Config) ValidateMode(pc *models.ProfileConfig) bool {
	if pc != nil && pc.ProfileValidateMode != nil {
		return *pc.ProfileValidateMode
	}
	return c.ProfileValidateMode
}

// ProfileTopics resolves the extraction taxonomy for one call. A per-call
// overwrite list replaces everything; a per-call additional list extends the
// globally resolved taxonomy. With no per-call config the global
// overwrite/additional settings apply on top of the built-in topics.
func (c *Config) ProfileTopics(pc *models.ProfileConfig) []models.UserProfileTopic {
	base := readOutProfileTopics(
		c.OverwriteUserProfiles,
		c.AdditionalUserProfiles,
		BuiltinProfileTopics(c.Language),
	)
	if pc == nil {
		return base
	}
	lang := c.EffectiveLanguage(pc)
	if lang != c.Language {
		base = readOutProfileTopics(
			c.OverwriteUserProfiles,
			c.AdditionalUserProfiles,
			BuiltinProfileTopics(lang),
		)
	}
	return readOutProfileTopics(pc.OverwriteUserProfiles, pc.AdditionalUserProfiles, base)
}

// readOutProfileTopics applies overwrite/additional semantics: an overwrite
// list replaces the defaults entirely, otherwise additional topics append.
func readOutProfileTopics(overwrite, additional, defaults []models.UserProfileTopic) []models.UserProfileTopic {
	if len(overwrite) > 0 {
		return overwrite
	}
	if len(additional) > 0 {
		out := make([]models.UserProfileTopic, 0, len(defaults)+len(additional))
		out = append(out, defaults...)
		out = append(out, additional...)
		return out
	}
	return defaults
}
