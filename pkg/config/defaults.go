package config

import "time"

// Default values applied when memobase.yaml leaves an option unset.
const (
	DefaultLanguage     = "en"
	DefaultLLMStyle     = "openai"
	DefaultBestLLMModel = "gpt-4o-mini"

	DefaultEmbeddingProvider     = "openai"
	DefaultEmbeddingModel        = "text-embedding-3-small"
	DefaultEmbeddingDim          = 1536
	DefaultEmbeddingMaxTokenSize = 8192

	DefaultEventSimilarityThreshold = 0.2

	DefaultMaxChatBlobBufferTokenSize        = 1024
	DefaultMaxChatBlobBufferProcessTokenSize = 16384
	DefaultMaxBufferAge                      = 30 * time.Minute

	DefaultMaxProfileSubtopics    = 15
	DefaultMaxProfileTokenSize    = 512
	DefaultMaxPreProfileTokenSize = 128

	DefaultSearchStore = "postgres"
)

// DefaultConfig returns the built-in configuration. User YAML values are
// resolved on top of it by the loader.
func DefaultConfig() *Config {
	return &Config{
		Language:     DefaultLanguage,
		LLMStyle:     DefaultLLMStyle,
		BestLLMModel: DefaultBestLLMModel,

		EmbeddingProvider:     DefaultEmbeddingProvider,
		EmbeddingModel:        DefaultEmbeddingModel,
		EmbeddingDim:          DefaultEmbeddingDim,
		EmbeddingMaxTokenSize: DefaultEmbeddingMaxTokenSize,

		EnableEventEmbedding:     true,
		EventSimilarityThreshold: DefaultEventSimilarityThreshold,

		MaxChatBlobBufferTokenSize:        DefaultMaxChatBlobBufferTokenSize,
		MaxChatBlobBufferProcessTokenSize: DefaultMaxChatBlobBufferProcessTokenSize,
		MaxBufferAge:                      DefaultMaxBufferAge,

		ProfileStrictMode:   false,
		ProfileValidateMode: true,
		MaxProfileSubtopics: DefaultMaxProfileSubtopics,

		MaxProfileTokenSize:    DefaultMaxProfileTokenSize,
		MaxPreProfileTokenSize: DefaultMaxPreProfileTokenSize,

		SearchStore: DefaultSearchStore,

		Qdrant:    DefaultQdrantConfig(),
		Worker:    DefaultWorkerConfig(),
		Retention: DefaultRetentionConfig(),
	}
}
