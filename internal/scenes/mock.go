// Package scenes ships the hand-curated fallback catalog. It answers
// when curation runs in mock mode or when every provider fails, so the
// player always has something to render.
package scenes

import (
	"context"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/radiopassport/radio-passport/internal/models"
	"github.com/radiopassport/radio-passport/internal/providers/curation"
)

// Definition describes one curated fallback scene.
type Definition struct {
	ID        string
	Slug      string
	Label     string
	Mood      string
	Summary   string
	Narrative string
	Keywords  []string
	Visual    string
	Animation string
	Playback  Playback
	Stations  []models.Station
	Reason    string
}

// Playback is the authoring-side playback shape; strategies use hyphens
// and crossfade is in seconds until mapped onto the descriptor.
type Playback struct {
	Strategy         string
	CrossfadeSeconds float64
}

// Definitions is the curated scene catalog in authoring order.
var Definitions = []Definition{
	{
		ID:        "descriptor-aurora-trails",
		Slug:      "aurora-trails",
		Label:     "Aurora Trails",
		Mood:      "Luminous & Serene",
		Summary:   "Arctic calm washed in shimmering synths and radio snow.",
		Narrative: "Follow the aurora from Reykjavik to Helsinki with stations that glow like polar dawn, blending ambient pads, jazz, and midnight field recordings.",
		Keywords:  []string{"aurora", "arctic", "nordic", "ambient", "iceland", "snow", "jazz"},
		Visual:    "3d_globe",
		Animation: "slow-orbit",
		Playback:  Playback{Strategy: "autoplay-first", CrossfadeSeconds: 12},
		Stations:  baseStations["aurora-trails"],
		Reason:    "Polar ambient, Nordic jazz, and hi-bitrate aurora stations",
	},
	{
		ID:        "descriptor-desert-nocturne",
		Slug:      "desert-nocturne",
		Label:     "Desert Nocturne",
		Mood:      "Velvet Twilight",
		Summary:   "Warm desert winds with hypnotic midnight grooves.",
		Narrative: "Glide between Marrakesh rooftops and Doha lounges as oud, electronic pulses, and lantern-lit percussion guide you through the hush of desert midnight.",
		Keywords:  []string{"desert", "midnight", "oud", "north africa", "gulf", "twilight"},
		Visual:    "card_stack",
		Animation: "slow-pan",
		Playback:  Playback{Strategy: "respect-current", CrossfadeSeconds: 8},
		Stations:  baseStations["desert-nocturne"],
		Reason:    "Desert nocturne moods with oud, downtempo, and Gulf lounge cuts",
	},
	{
		ID:        "descriptor-harbor-dawn",
		Slug:      "harbor-dawn",
		Label:     "Harbor Dawn",
		Mood:      "Optimistic & Breezy",
		Summary:   "Coastal mornings steeped in jazz, city pop, and salt air.",
		Narrative: "From Lisbon's tiled hills to Hong Kong's ferries, greet the sunrise with breezy rhythms, gulls in the distance, and coffeehouse warmth.",
		Keywords:  []string{"harbor", "sunrise", "bossa", "city pop", "coastal"},
		Visual:    "3d_globe",
		Animation: "sunrise-spin",
		Playback:  Playback{Strategy: "autoplay-first", CrossfadeSeconds: 6},
		Stations:  baseStations["harbor-dawn"],
		Reason:    "Sunrise jazz, coastal city pop, and warm atlantic breezes",
	},
}

// SelectionRequest narrows which scene to serve. All fields optional.
type SelectionRequest struct {
	Prompt string
	Mood   string
	Visual string
	Scene  string
}

// MapPlaybackStrategy translates authoring strategies into descriptor
// strategies.
func MapPlaybackStrategy(value string) string {
	switch value {
	case "autoplay-first":
		return models.PlayAutoplayFirst
	case "queue-only", "respect-current":
		return models.PlayQueueOnly
	case "preview-on-hover":
		return models.PlayPreviewOnHover
	default:
		return models.PlayAutoplayFirst
	}
}

// Select picks the best-matching scene: explicit scene slug or id,
// then visual, then keyword score over the prompt and mood, then
// a random definition.
func Select(req SelectionRequest) Definition {
	if scene := strings.ToLower(strings.TrimSpace(req.Scene)); scene != "" {
		for _, def := range Definitions {
			if def.Slug == scene || def.ID == scene {
				return def
			}
		}
	}

	if visual := strings.ToLower(strings.TrimSpace(req.Visual)); visual != "" {
		for _, def := range Definitions {
			if def.Visual == visual {
				return def
			}
		}
	}

	prompt := strings.ToLower(req.Prompt + " " + req.Mood)
	if strings.TrimSpace(prompt) != "" {
		best := -1
		bestScore := 0
		for i, def := range Definitions {
			score := 0
			for _, kw := range def.Keywords {
				if strings.Contains(prompt, kw) {
					score++
				}
			}
			if score > bestScore {
				best = i
				bestScore = score
			}
		}
		if best >= 0 {
			return Definitions[best]
		}
	}

	return Definitions[rand.IntN(len(Definitions))]
}

// Descriptor renders a definition as a validated scene descriptor.
func Descriptor(def Definition) (models.SceneDescriptor, error) {
	play := &models.ScenePlayOptions{
		Strategy: MapPlaybackStrategy(def.Playback.Strategy),
	}
	if ms := int(math.Round(def.Playback.CrossfadeSeconds * 1000)); ms > 0 {
		play.CrossfadeMs = ms
	}

	stations := make([]models.Station, len(def.Stations))
	copy(stations, def.Stations)

	return models.ParseSceneDescriptor(models.SceneDescriptor{
		Visual:    def.Visual,
		Mood:      def.Mood,
		Animation: def.Animation,
		Play:      play,
		Stations:  stations,
		Reason:    def.Reason,
	})
}

// Curator serves mock scenes through the provider interface.
type Curator struct{}

// NewCurator returns the mock curator.
func NewCurator() *Curator { return &Curator{} }

// Curate selects a scene by prompt keywords. Intent is ignored; the
// catalog is too small for targeting.
func (c *Curator) Curate(_ context.Context, prompt string, _ *curation.Intent) (models.SceneDescriptor, error) {
	return Descriptor(Select(SelectionRequest{Prompt: prompt}))
}
