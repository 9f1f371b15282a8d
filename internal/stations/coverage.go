package stations

import (
	"context"
	"log/slog"
	"strings"

	"github.com/radiopassport/radio-passport/internal/models"
)

const (
	intentMinMatches      = 4
	intentSupplementLimit = 60
)

// languageCodeToName resolves two-letter directory codes to the language
// names users put in prompts.
var languageCodeToName = map[string]string{
	"ta": "tamil",
	"ml": "malayalam",
	"hi": "hindi",
	"kn": "kannada",
	"te": "telugu",
	"pa": "punjabi",
	"bn": "bengali",
	"mr": "marathi",
	"gu": "gujarati",
	"ur": "urdu",
}

// relatedLanguages lists sibling languages close enough to satisfy intent
// when the directory has too few exact matches.
var relatedLanguages = map[string][]string{
	"malayalam": {"tamil", "telugu", "kannada"},
	"tamil":     {"malayalam", "telugu", "kannada"},
	"telugu":    {"tamil", "malayalam", "kannada"},
	"kannada":   {"tamil", "malayalam", "telugu"},
	"hindi":     {"marathi", "punjabi", "gujarati"},
}

// SupplementSource fetches additional stations matching a single preference
// dimension. Implementations absorb their own transport failures and return
// an empty slice.
type SupplementSource interface {
	StationsByCountry(ctx context.Context, country string, limit int) []models.Station
	StationsByLanguage(ctx context.Context, language string, limit int) []models.Station
	StationsByTag(ctx context.Context, tag string, limit int) []models.Station
}

// EnsureIntentCoverage guarantees that a curated list actually reflects the
// caller's stated countries/languages/tags: when fewer than four stations
// match, supplemental candidates are fetched per preference, merged, reranked,
// and intent matches are pinned to the front. The result keeps the input
// list's length.
func EnsureIntentCoverage(ctx context.Context, list []models.Station, intent RankIntent, source SupplementSource) []models.Station {
	if !hasIntentSignals(intent) || len(list) == 0 || source == nil {
		return list
	}

	desired := min(intentMinMatches, len(list))
	matches := 0
	for _, station := range list {
		if stationMatchesIntent(station, intent) {
			matches++
		}
	}
	if matches >= desired {
		return list
	}

	supplemental := fetchIntentStations(ctx, intent, source, intentSupplementLimit)
	slog.Info("intent coverage below target, supplementing",
		"matches", matches,
		"desired", desired,
		"supplemental", len(supplemental),
	)
	if len(supplemental) == 0 {
		return list
	}

	merged := Dedupe(append(append([]models.Station{}, list...), supplemental...))
	reranked := RankStations(merged, intent)

	related := map[string]struct{}{}
	if len(intent.PreferredLanguages) == 1 {
		related = relatedLanguageSet(intent)
	}

	var primary, sibling, secondary []models.Station
	for _, station := range reranked {
		switch {
		case stationMatchesIntent(station, intent):
			primary = append(primary, station)
		case len(related) > 0 && stationMatchesRelated(station, intent, related):
			sibling = append(sibling, station)
		default:
			secondary = append(secondary, station)
		}
	}

	pinned := make([]models.Station, 0, desired)
	pinned = append(pinned, primary[:min(desired, len(primary))]...)
	if len(pinned) < desired {
		pinned = append(pinned, sibling[:min(desired-len(pinned), len(sibling))]...)
	}

	used := make(map[string]struct{}, len(pinned))
	for _, station := range pinned {
		used[station.UUID] = struct{}{}
	}
	final := append([]models.Station{}, pinned...)
	for _, station := range reranked {
		if len(final) >= len(list) {
			break
		}
		if _, dup := used[station.UUID]; dup {
			continue
		}
		used[station.UUID] = struct{}{}
		final = append(final, station)
	}
	return final
}

func hasIntentSignals(intent RankIntent) bool {
	return len(intent.PreferredCountries) > 0 ||
		len(intent.PreferredLanguages) > 0 ||
		len(intent.PreferredTags) > 0
}

func stationMatchesIntent(station models.Station, intent RankIntent) bool {
	country := strings.ToLower(station.Country)
	languages := stationLanguageValues(station)
	tags := tagSet(station)

	for _, value := range intent.PreferredCountries {
		if strings.Contains(country, strings.ToLower(value)) {
			return true
		}
	}
	for _, value := range intent.PreferredLanguages {
		normalized := strings.ToLower(value)
		for candidate := range languages {
			if candidate == normalized {
				return true
			}
			if len(candidate) == 2 && languageCodeToName[candidate] == normalized {
				return true
			}
			if strings.HasPrefix(normalized, candidate) || strings.HasPrefix(candidate, normalized) {
				return true
			}
		}
	}
	for _, value := range intent.PreferredTags {
		if _, ok := tags[strings.ToLower(value)]; ok {
			return true
		}
	}
	return false
}

func stationMatchesRelated(station models.Station, intent RankIntent, related map[string]struct{}) bool {
	languages := stationLanguageValues(station)
	for candidate := range languages {
		for sibling := range related {
			if candidate == sibling ||
				strings.HasPrefix(candidate, sibling) ||
				strings.HasPrefix(sibling, candidate) {
				return true
			}
		}
	}

	country := strings.ToLower(station.Country)
	for _, value := range intent.PreferredCountries {
		if strings.Contains(country, strings.ToLower(value)) {
			return true
		}
	}
	return false
}

func stationLanguageValues(station models.Station) map[string]struct{} {
	values := make(map[string]struct{})
	if station.Language != "" {
		values[strings.ToLower(station.Language)] = struct{}{}
	}
	for _, code := range station.LanguageCodes {
		if code == "" {
			continue
		}
		normalized := strings.ToLower(code)
		values[normalized] = struct{}{}
		if canonical, ok := languageCodeToName[normalized]; ok {
			values[canonical] = struct{}{}
		}
	}
	return values
}

func relatedLanguageSet(intent RankIntent) map[string]struct{} {
	related := make(map[string]struct{})
	for _, language := range intent.PreferredLanguages {
		for _, sibling := range relatedLanguages[strings.ToLower(language)] {
			related[sibling] = struct{}{}
		}
	}
	return related
}

func fetchIntentStations(ctx context.Context, intent RankIntent, source SupplementSource, limit int) []models.Station {
	results := make([]models.Station, 0, limit)
	seen := make(map[string]struct{})

	push := func(list []models.Station) bool {
		for _, station := range list {
			if station.UUID == "" {
				continue
			}
			if _, dup := seen[station.UUID]; dup {
				continue
			}
			seen[station.UUID] = struct{}{}
			results = append(results, station)
			if len(results) >= limit {
				return true
			}
		}
		return false
	}

	for _, language := range head(intent.PreferredLanguages, 2) {
		if push(source.StationsByLanguage(ctx, language, limit)) {
			return results
		}
	}
	for _, tag := range head(intent.PreferredTags, 3) {
		if push(source.StationsByTag(ctx, tag, limit)) {
			return results
		}
	}
	for _, country := range head(intent.PreferredCountries, 2) {
		if push(source.StationsByCountry(ctx, country, limit)) {
			return results
		}
	}
	return results
}

func head(values []string, n int) []string {
	if len(values) <= n {
		return values
	}
	return values[:n]
}
