// Package curation holds the shared toolkit the provider adapters build
// on: candidate sourcing, prompt assembly, and the selection merge that
// turns a model response into a playable scene descriptor.
package curation

import (
	"context"

	"github.com/radiopassport/radio-passport/internal/models"
)

// CandidatePoolLimit caps how many directory stations an adapter asks
// its candidate source for per curation.
const CandidatePoolLimit = 60

// Intent carries listener targeting hints alongside the free-form prompt.
type Intent struct {
	PreferredCountries []string `json:"preferredCountries,omitempty"`
	PreferredLanguages []string `json:"preferredLanguages,omitempty"`
	PreferredTags      []string `json:"preferredTags,omitempty"`
	FavoriteStationIDs []string `json:"favoriteStationIds,omitempty"`
	RecentStationIDs   []string `json:"recentStationIds,omitempty"`
}

// HasTargeting reports whether the intent carries directory hints worth
// forwarding to the candidate source.
func (i *Intent) HasTargeting() bool {
	if i == nil {
		return false
	}
	return len(i.PreferredCountries) > 0 || len(i.PreferredLanguages) > 0 || len(i.PreferredTags) > 0
}

// CandidateSource supplies the station pool an adapter curates from.
// Implementations absorb transport failures and return what they have;
// an empty slice means the directory produced nothing usable.
type CandidateSource interface {
	Candidates(ctx context.Context, limit int, intent *Intent) []models.Station
}
