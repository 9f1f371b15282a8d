// Package public exposes the recommendation API consumed by the web client.
package public

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/radiopassport/radio-passport/internal/app"
	"github.com/radiopassport/radio-passport/internal/httpserver/httputil"
	"github.com/radiopassport/radio-passport/internal/models"
	"github.com/radiopassport/radio-passport/internal/providers/curation"
	"github.com/radiopassport/radio-passport/internal/scenes"
	"github.com/radiopassport/radio-passport/internal/stations"
)

// defaultPrompt keeps the provider productive when the client sends no
// usable text at all.
const defaultPrompt = "Curate a transportive radio journey with mood, animation, and stations."

// curationIDHeader carries the id correlating a response with its
// curation log entries.
const curationIDHeader = "X-Curation-Id"

// RecommendHandler resolves scene descriptors for the /api/ai/recommend
// endpoint.
type RecommendHandler struct {
	container *app.Container
}

// NewRecommendHandler returns a handler bound to the shared container.
func NewRecommendHandler(container *app.Container) *RecommendHandler {
	return &RecommendHandler{container: container}
}

// Register mounts the recommendation routes. The endpoint accepts both
// GET (query parameters) and POST (JSON or form body).
func (h *RecommendHandler) Register(router fiber.Router) {
	router.Get("/api/ai/recommend", h.Handle)
	router.Post("/api/ai/recommend", h.Handle)
}

// Handle runs the full recommendation pipeline: normalize the request,
// enrich it with prompt-derived hints, resolve a descriptor from the
// active provider (or the mock library), then rank, supplement, and
// health-annotate the station list.
func (h *RecommendHandler) Handle(c *fiber.Ctx) error {
	curationID := uuid.NewString()
	c.Set(curationIDHeader, curationID)

	req := parseRecommendRequest(c)
	req = enrichWithPromptIntent(req)

	descriptor, err := h.resolveDescriptor(c.Context(), curationID, req)
	if err != nil {
		return httputil.WriteError(c, fiber.StatusBadGateway, "scene curation failed")
	}

	descriptor = h.postProcess(c.Context(), req, descriptor)

	// Descriptors are personalized; never let intermediaries cache them.
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.JSON(fiber.Map{"descriptor": descriptor})
}

// resolveDescriptor picks the descriptor source. Mock mode bypasses the
// provider entirely; otherwise the active provider runs under the
// configured timeout, with the mock library as the configured fallback.
func (h *RecommendHandler) resolveDescriptor(ctx context.Context, curationID string, req RecommendRequest) (models.SceneDescriptor, error) {
	cfg := h.container.Config
	if cfg.Scenes.UseMock {
		return h.mockDescriptor(req)
	}

	provider, err := h.container.Providers.Provider()
	if err != nil {
		slog.Error("provider unavailable", "curation_id", curationID, "provider", h.container.Providers.ActiveName(), "error", err)
		return h.fallbackDescriptor(req, err)
	}

	prompt := firstNonEmpty(req.Prompt, req.Mood, req.Scene, req.Visual, defaultPrompt)
	providerName := h.container.Providers.ActiveName()

	curateCtx := ctx
	if cfg.Server.ProviderTimeout > 0 {
		var cancel context.CancelFunc
		curateCtx, cancel = context.WithTimeout(ctx, cfg.Server.ProviderTimeout)
		defer cancel()
	}

	start := time.Now()
	descriptor, err := provider.Curate(curateCtx, prompt, buildProviderIntent(req))
	if err != nil {
		h.container.Observability.RecordCuration(providerName, "error", time.Since(start))
		slog.Error("scene curation failed", "curation_id", curationID, "provider", providerName, "error", err)
		return h.fallbackDescriptor(req, err)
	}
	h.container.Observability.RecordCuration(providerName, "ok", time.Since(start))
	return descriptor, nil
}

func (h *RecommendHandler) fallbackDescriptor(req RecommendRequest, cause error) (models.SceneDescriptor, error) {
	if !h.container.Config.Scenes.MockOnError {
		return models.SceneDescriptor{}, cause
	}
	h.container.Observability.RecordCuration(h.container.Providers.ActiveName(), "mock_fallback", 0)
	return h.mockDescriptor(req)
}

func (h *RecommendHandler) mockDescriptor(req RecommendRequest) (models.SceneDescriptor, error) {
	def := scenes.Select(scenes.SelectionRequest{
		Prompt: req.Prompt,
		Mood:   req.Mood,
		Visual: req.Visual,
		Scene:  firstNonEmpty(req.Scene, req.SceneID),
	})
	return scenes.Descriptor(def)
}

// postProcess applies ranking, intent coverage, and health annotations
// to the descriptor's stations.
func (h *RecommendHandler) postProcess(ctx context.Context, req RecommendRequest, descriptor models.SceneDescriptor) models.SceneDescriptor {
	rankIntent := buildRankIntent(req)
	ranked := stations.RankStations(descriptor.Stations, rankIntent)
	ranked = stations.EnsureIntentCoverage(ctx, ranked, rankIntent, h.container.Directory)
	descriptor.Stations = stations.AnnotateHealth(ranked)
	return descriptor
}

// buildProviderIntent translates request preferences into the targeting
// hints handed to the provider's candidate source.
func buildProviderIntent(req RecommendRequest) *curation.Intent {
	intent := &curation.Intent{
		PreferredCountries: buildPreferredList(req.Country, req.PreferredCountries),
		PreferredLanguages: buildPreferredList(req.Language, req.PreferredLanguages),
		PreferredTags:      req.PreferredTags,
		FavoriteStationIDs: req.FavoriteStationIDs,
		RecentStationIDs:   req.RecentStationIDs,
	}
	if !intent.HasTargeting() {
		return nil
	}
	return intent
}

func buildRankIntent(req RecommendRequest) stations.RankIntent {
	return stations.RankIntent{
		Prompt:             req.Prompt,
		Mood:               req.Mood,
		PreferredCountries: buildPreferredList(req.Country, req.PreferredCountries),
		PreferredLanguages: buildPreferredList(req.Language, req.PreferredLanguages),
		PreferredTags:      req.PreferredTags,
	}
}

func buildPreferredList(primary string, extras []string) []string {
	if primary == "" {
		return extras
	}
	return stations.NormalizePreferenceList(append([]string{primary}, extras...))
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
