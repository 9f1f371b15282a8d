package curation

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/radiopassport/radio-passport/internal/models"
)

// Scene sizing thresholds. A selection under minSceneStations gets
// backfilled from the head of the candidate pool; no scene carries more
// than maxSceneStations.
const (
	minSceneStations = 6
	maxSceneStations = 8
)

// Selection is the JSON shape every adapter asks the model for: scene
// framing plus station picks by uuid, with optional per-station
// enhancements.
type Selection struct {
	Visual              string                   `json:"visual"`
	Mood                string                   `json:"mood"`
	Animation           string                   `json:"animation"`
	Play                *models.ScenePlayOptions `json:"play"`
	Reason              string                   `json:"reason"`
	SelectedStationIDs  []string                 `json:"selectedStationIds"`
	StationEnhancements map[string]Enhancement   `json:"stationEnhancements"`
}

// Enhancement carries model-authored metadata layered onto a selected
// station. Zero values mean "keep the station's own field".
type Enhancement struct {
	Highlight    string   `json:"highlight"`
	TagList      []string `json:"tagList"`
	HealthStatus string   `json:"healthStatus"`
	HealthScore  *int     `json:"healthScore"`
}

var jsonObjectPattern = regexp.MustCompile(`\{[\s\S]*\}`)

// ExtractJSONObject pulls the outermost JSON object out of a model
// completion, tolerating prose or markdown fences around it.
func ExtractJSONObject(text string) (string, error) {
	match := jsonObjectPattern.FindString(text)
	if match == "" {
		return "", fmt.Errorf("could not find a JSON object in the model response")
	}
	return match, nil
}

// ParseSelection extracts and decodes the Selection object embedded in a
// model completion. Extraction tolerates prose and markdown fences for
// every vendor, not just the ones known to produce them; the descriptor
// parser still rejects anything malformed downstream.
func ParseSelection(text string) (Selection, error) {
	raw, err := ExtractJSONObject(text)
	if err != nil {
		return Selection{}, err
	}
	var sel Selection
	if err := json.Unmarshal([]byte(raw), &sel); err != nil {
		return Selection{}, fmt.Errorf("decode selection: %w", err)
	}
	return sel, nil
}

// Curate resolves a model selection against the candidate pool. Selected
// stations keep pool order and absorb their enhancements; a selection
// under six stations is topped up from the head of the pool to eight.
func Curate(pool []models.Station, sel Selection) []models.Station {
	selected := make(map[string]bool, len(sel.SelectedStationIDs))
	for _, id := range sel.SelectedStationIDs {
		selected[id] = true
	}

	curated := make([]models.Station, 0, maxSceneStations)
	for _, st := range pool {
		if !selected[st.UUID] {
			continue
		}
		curated = append(curated, applyEnhancement(st, sel.StationEnhancements[st.UUID]))
	}

	if len(curated) < minSceneStations {
		slog.Warn("model selected too few stations, supplementing from pool",
			"selected", len(curated))
		needed := maxSceneStations - len(curated)
		if needed > len(pool) {
			needed = len(pool)
		}
		curated = append(curated, pool[:needed]...)
	}

	if len(curated) > maxSceneStations {
		curated = curated[:maxSceneStations]
	}
	return curated
}

func applyEnhancement(st models.Station, e Enhancement) models.Station {
	if e.Highlight != "" {
		st.Highlight = e.Highlight
	}
	if len(e.TagList) > 0 {
		st.TagList = e.TagList
	}
	if e.HealthStatus != "" {
		st.HealthStatus = e.HealthStatus
	}
	if e.HealthScore != nil {
		st.HealthScore = e.HealthScore
	}
	return st
}

// Descriptor assembles the final scene from a selection and its curated
// stations, filling vendor-agnostic defaults, and validates the result.
func Descriptor(sel Selection, stations []models.Station) (models.SceneDescriptor, error) {
	desc := models.SceneDescriptor{
		Visual:    sel.Visual,
		Mood:      sel.Mood,
		Animation: sel.Animation,
		Play:      sel.Play,
		Stations:  stations,
		Reason:    sel.Reason,
	}
	if desc.Visual == "" {
		desc.Visual = "card_stack"
	}
	if desc.Mood == "" {
		desc.Mood = "Sonic Journey"
	}
	if desc.Animation == "" {
		desc.Animation = "slow_orbit"
	}
	if desc.Play == nil {
		desc.Play = &models.ScenePlayOptions{
			Strategy:    models.PlayPreviewOnHover,
			CrossfadeMs: 4000,
		}
	}
	return models.ParseSceneDescriptor(desc)
}
