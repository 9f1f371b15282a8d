package providers

import (
	"github.com/radiopassport/radio-passport/internal/adapters/openrouter"
	"github.com/radiopassport/radio-passport/internal/config"
)

func init() {
	RegisterDefinition(Definition{
		Name:        "openrouter",
		Description: "OpenRouter free model rotation",
		Builder:     buildOpenRouter,
	})
}

func buildOpenRouter(cfg *config.Config, deps Deps) (SceneCurator, error) {
	return openrouter.New(openrouter.Options{
		APIKey:  cfg.Providers.OpenRouter.APIKey,
		Catalog: deps.Catalog,
	})
}
