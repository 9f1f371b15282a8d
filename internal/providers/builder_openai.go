package providers

import (
	"github.com/radiopassport/radio-passport/internal/adapters/openai"
	"github.com/radiopassport/radio-passport/internal/config"
)

func init() {
	RegisterDefinition(Definition{
		Name:        "openai",
		Description: "OpenAI chat completions",
		Builder:     buildOpenAI,
	})
}

func buildOpenAI(cfg *config.Config, deps Deps) (SceneCurator, error) {
	return openai.New(openai.Options{
		APIKey:  cfg.Providers.OpenAI.APIKey,
		Model:   cfg.Providers.OpenAI.Model,
		Catalog: deps.Catalog,
	})
}
