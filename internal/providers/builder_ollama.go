package providers

import (
	"github.com/radiopassport/radio-passport/internal/adapters/ollama"
	"github.com/radiopassport/radio-passport/internal/config"
)

func init() {
	RegisterDefinition(Definition{
		Name:        "ollama",
		Description: "Local Ollama instance",
		Builder:     buildOllama,
	})
}

func buildOllama(cfg *config.Config, deps Deps) (SceneCurator, error) {
	return ollama.New(ollama.Options{
		BaseURL: cfg.Providers.Ollama.URL,
		Model:   cfg.Providers.Ollama.Model,
		Catalog: deps.Catalog,
	})
}
