// Package stations holds the candidate-pool utilities shared by the AI
// providers and the recommendation pipeline: usability filtering, stable
// deduplication, intent-aware ranking, and health annotation.
package stations

import (
	"strings"

	"github.com/radiopassport/radio-passport/internal/models"
)

// DefaultMinBitrate is the lowest bitrate a candidate may carry before it is
// dropped from curation pools.
const DefaultMinBitrate = 64

// FilterOptions tune FilterCandidates.
type FilterOptions struct {
	MinBitrate int
}

// FilterCandidates keeps stations that are worth offering to the curator: a
// playable stream URL, a stream health check that did not explicitly fail,
// and a bitrate at or above the minimum.
func FilterCandidates(list []models.Station, opts *FilterOptions) []models.Station {
	minBitrate := DefaultMinBitrate
	if opts != nil && opts.MinBitrate > 0 {
		minBitrate = opts.MinBitrate
	}

	kept := make([]models.Station, 0, len(list))
	for _, station := range list {
		if !station.HasStream() {
			continue
		}
		if station.IsStreamHealthy != nil && !*station.IsStreamHealthy {
			continue
		}
		if station.Bitrate < minBitrate {
			continue
		}
		kept = append(kept, station)
	}
	return kept
}

// Dedupe returns a new slice preserving first-seen order, dropping stations
// with an empty uuid and any later repeats of an already-seen uuid.
func Dedupe(list []models.Station) []models.Station {
	seen := make(map[string]struct{}, len(list))
	result := make([]models.Station, 0, len(list))
	for _, station := range list {
		if station.UUID == "" {
			continue
		}
		if _, dup := seen[station.UUID]; dup {
			continue
		}
		seen[station.UUID] = struct{}{}
		result = append(result, station)
	}
	return result
}

// NormalizePreferenceList sanitizes free-text preference hints before they
// reach directory query URLs: trim, drop empties, dedupe exact values,
// preserve first-seen order and case.
func NormalizePreferenceList(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		if _, dup := seen[trimmed]; dup {
			continue
		}
		seen[trimmed] = struct{}{}
		result = append(result, trimmed)
	}
	return result
}
