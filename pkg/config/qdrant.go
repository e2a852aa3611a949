package config

// QdrantConfig holds connection settings for the qdrant event store backend.
// Only consulted when search_store is "qdrant".
type QdrantConfig struct {
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	APIKey string `yaml:"api_key"`
	UseTLS bool   `yaml:"use_tls"`

	// CollectionPrefix namespaces the event and gist collections so several
	// deployments can share one cluster.
	CollectionPrefix string `yaml:"collection_prefix"`
}

// DefaultQdrantConfig returns the built-in qdrant defaults.
func DefaultQdrantConfig() *QdrantConfig {
	return &QdrantConfig{
		Host:             "localhost",
		Port:             6334,
		CollectionPrefix: "memobase",
	}
}
