package curation

import (
	"fmt"
	"strings"

	"github.com/radiopassport/radio-passport/internal/models"
)

// SystemPrompt instructs the model to answer with a scene descriptor
// selection. All adapters share it so the response shape stays uniform
// across vendors.
const SystemPrompt = `You are Radio Passport's music curator. Create a card_stack scene JSON.

Return JSON with:
- visual: "card_stack"
- mood: 2-4 evocative words (e.g. "Midnight Berber Reverie")
- animation: "slow_pan" | "slow_orbit" | "cascade_drop" (match energy)
- play: { strategy: "preview_on_hover" or "autoplay_first", crossfadeMs: 4000 }
- reason: 2 paragraphs (max 420 chars), cinematic with continents/instruments/decades
- selectedStationIds: ["uuid1", ...] - pick 6-8 from list, 3+ countries, 1+ non-US
- stationEnhancements: { "uuid1": { highlight: "why it fits (<=120 chars)", tagList: ["mood","instrument","decade","locale"], healthStatus: "good", healthScore: 85-100 } }

Make it feel like a bespoke mixtape. Return ONLY JSON.`

// stationContextLimit caps how many pool stations are described to the
// model. Prompts stay small and the model still sees the best-ranked
// candidates first.
const stationContextLimit = 20

// BuildStationContext renders the head of the candidate pool as one
// numbered line per station.
func BuildStationContext(stations []models.Station) string {
	if len(stations) > stationContextLimit {
		stations = stations[:stationContextLimit]
	}
	lines := make([]string, 0, len(stations))
	for i, st := range stations {
		tags := "none"
		if len(st.TagList) > 0 {
			head := st.TagList
			if len(head) > 3 {
				head = head[:3]
			}
			tags = strings.Join(head, ",")
		}
		lines = append(lines, fmt.Sprintf("%d. %s [%s]|%s|%s|%dk", i+1, st.Name, st.UUID, st.Country, tags, st.Bitrate))
	}
	return strings.Join(lines, "\n")
}

// BuildUserPrompt wraps the listener request and the station context
// into the user turn sent alongside SystemPrompt.
func BuildUserPrompt(prompt string, stations []models.Station) string {
	return fmt.Sprintf("USER REQUEST: %q\n\nAVAILABLE STATIONS:\n%s\n\nCurate a SceneDescriptor that matches this request. Return ONLY valid JSON matching the schema.", prompt, BuildStationContext(stations))
}

// BuildCombinedPrompt folds the system and user turns into one block for
// vendors whose generate APIs take a single text input.
func BuildCombinedPrompt(prompt string, stations []models.Station) string {
	return SystemPrompt + "\n\n" + BuildUserPrompt(prompt, stations)
}
