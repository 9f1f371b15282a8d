package providers

import (
	"github.com/radiopassport/radio-passport/internal/adapters/gemini"
	"github.com/radiopassport/radio-passport/internal/config"
)

func init() {
	RegisterDefinition(Definition{
		Name:        "gemini",
		Description: "Google Generative Language API",
		Builder:     buildGemini,
	})
}

func buildGemini(cfg *config.Config, deps Deps) (SceneCurator, error) {
	return gemini.New(gemini.Options{
		APIKey:     cfg.Providers.Gemini.APIKey,
		Model:      cfg.Providers.Gemini.Model,
		APIVersion: cfg.Providers.Gemini.APIVersion,
		Catalog:    deps.Catalog,
	})
}
