// Package providers resolves the configured scene curation backend
// through a registry of adapter builders.
package providers

import (
	"context"

	"github.com/radiopassport/radio-passport/internal/models"
	"github.com/radiopassport/radio-passport/internal/providers/curation"
)

// SceneCurator turns a listener prompt into a playable scene descriptor.
type SceneCurator interface {
	Curate(ctx context.Context, prompt string, intent *curation.Intent) (models.SceneDescriptor, error)
}
