package providers

import (
	"fmt"
	"strings"
	"sync"

	"github.com/radiopassport/radio-passport/internal/config"
	"github.com/radiopassport/radio-passport/internal/providers/curation"
)

// Deps carries the shared collaborators adapter builders wire in.
type Deps struct {
	Catalog curation.CandidateSource
}

// Builder constructs a scene curator from configuration.
type Builder func(cfg *config.Config, deps Deps) (SceneCurator, error)

// Factory resolves the active curator from configuration, building it
// once and reusing the instance until Reset.
type Factory struct {
	cfg      *config.Config
	deps     Deps
	builders map[string]Builder

	mu         sync.Mutex
	cached     SceneCurator
	cachedName string
}

// NewFactory creates a factory with the default provider registry.
func NewFactory(cfg *config.Config, deps Deps) *Factory {
	return &Factory{cfg: cfg, deps: deps, builders: cloneDefaultBuilders()}
}

// Register allows tests or callers to override provider builders.
func (f *Factory) Register(name string, builder Builder) {
	if f.builders == nil {
		f.builders = make(map[string]Builder)
	}
	f.builders[name] = builder
}

// ActiveName reports which provider the factory would build.
func (f *Factory) ActiveName() string {
	name := strings.ToLower(strings.TrimSpace(f.cfg.Providers.Active))
	if name == "" {
		name = "openai"
	}
	return name
}

// Provider returns the curator for the configured provider, building it
// on first use. Subsequent calls return the same instance unless the
// configured name changed or Reset was called.
func (f *Factory) Provider() (SceneCurator, error) {
	name := f.ActiveName()

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cached != nil && f.cachedName == name {
		return f.cached, nil
	}

	builder, ok := f.builders[name]
	if !ok {
		// Unrecognized selectors fall back to the default adapter.
		builder, ok = f.builders["openai"]
		if !ok {
			return nil, fmt.Errorf("provider %q unsupported", name)
		}
	}
	curator, err := builder(f.cfg, f.deps)
	if err != nil {
		return nil, fmt.Errorf("provider %q: %w", name, err)
	}
	f.cached = curator
	f.cachedName = name
	return curator, nil
}

// Reset drops the cached curator so the next Provider call rebuilds it.
func (f *Factory) Reset() {
	f.mu.Lock()
	f.cached = nil
	f.cachedName = ""
	f.mu.Unlock()
}
