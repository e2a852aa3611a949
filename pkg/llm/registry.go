package llm

import (
	"github.com/AlwaysBluer/lindorm-memobase/pkg/config"
	"github.com/AlwaysBluer/lindorm-memobase/pkg/memerr"
)

type completerFactory func(cfg *config.Config) (Completer, error)

// styleFactories maps llm_style values to adapter constructors.
var styleFactories = map[string]completerFactory{
	"openai":       newOpenAICompleter,
	"doubao_cache": newDoubaoCacheCompleter,
}

func newCompleter(cfg *config.Config) (Completer, error) {
	factory, ok := styleFactories[cfg.LLMStyle]
	if !ok {
		return nil, memerr.Ef(memerr.ErrConfig, "llm.new", "unsupported llm_style %q", cfg.LLMStyle)
	}
	return factory(cfg)
}

func newEmbedder(cfg *config.Config) (Embedder, error) {
	switch cfg.EmbeddingProvider {
	case "openai":
		return newOpenAIEmbedder(cfg)
	default:
		return nil, memerr.Ef(memerr.ErrConfig, "llm.new", "unsupported embedding provider %q", cfg.EmbeddingProvider)
	}
}
