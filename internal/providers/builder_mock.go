package providers

import (
	"github.com/radiopassport/radio-passport/internal/config"
	"github.com/radiopassport/radio-passport/internal/scenes"
)

func init() {
	RegisterDefinition(Definition{
		Name:        "mock",
		Description: "Curated fallback scenes",
		Builder:     buildMock,
	})
}

func buildMock(_ *config.Config, _ Deps) (SceneCurator, error) {
	return scenes.NewCurator(), nil
}
