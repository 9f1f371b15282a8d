package stations

import (
	"sort"
	"strings"

	"github.com/radiopassport/radio-passport/internal/models"
)

// RankIntent carries the free-text signals used to order curated stations.
type RankIntent struct {
	Prompt             string
	Mood               string
	PreferredCountries []string
	PreferredLanguages []string
	PreferredTags      []string
}

// languageAliases maps a language token to region/code tokens that imply it,
// so "portuguese" boosts Brazilian stations and vice versa.
var languageAliases = map[string][]string{
	"portuguese": {"pt", "brazil", "portugal"},
	"spanish":    {"es", "latin", "spain", "mexico", "argentina"},
	"english":    {"en", "uk", "us", "au", "ca", "nz"},
	"french":     {"fr", "france", "paris", "quebec"},
	"japanese":   {"ja", "japan", "tokyo"},
	"arabic":     {"ar", "dubai", "doha", "cairo", "saudi"},
	"german":     {"de", "germany", "berlin", "austria"},
	"italian":    {"it", "italy", "rome"},
	"chinese":    {"zh", "mandarin", "hong kong", "china", "taiwan"},
	"hindi":      {"hi", "india"},
	"malayalam":  {"ml", "india", "kerala"},
	"tamil":      {"ta", "india", "sri lanka", "singapore"},
	"kannada":    {"kn", "india", "karnataka"},
	"telugu":     {"te", "india", "andhra pradesh"},
	"punjabi":    {"pa", "india", "pakistan"},
	"bengali":    {"bn", "india", "bangladesh"},
	"marathi":    {"mr", "india"},
	"gujarati":   {"gu", "india"},
	"korean":     {"ko", "korea"},
	"russian":    {"ru", "russia"},
	"dutch":      {"nl", "netherlands"},
}

const (
	weightTagMatch      = 5.0
	weightCountryMatch  = 4.0
	weightLanguageMatch = 3.0
	weightBitrate       = 0.02
	weightVote          = 0.01
)

// RankStations orders stations by how well they match the intent's prompt and
// mood tokens, breaking ties with bitrate and votes. The sort is stable so
// equally-scored stations keep their curated order.
func RankStations(list []models.Station, intent RankIntent) []models.Station {
	tokens := tokenize(intent.Prompt, intent.Mood)

	type scored struct {
		station models.Station
		score   float64
	}
	entries := make([]scored, 0, len(list))
	for _, station := range list {
		entries = append(entries, scored{station: station, score: scoreStation(station, tokens)})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].score > entries[j].score
	})

	ranked := make([]models.Station, 0, len(entries))
	for _, entry := range entries {
		ranked = append(ranked, entry.station)
	}
	return ranked
}

func tokenize(values ...string) []string {
	joined := strings.ToLower(strings.Join(values, " "))
	fields := strings.FieldsFunc(joined, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if len(field) > 1 {
			tokens = append(tokens, field)
		}
	}
	return tokens
}

func scoreStation(station models.Station, tokens []string) float64 {
	tags := tagSet(station)
	country := strings.ToLower(station.Country)
	language := strings.ToLower(station.Language)

	score := 0.0
	for _, token := range tokens {
		if _, ok := tags[token]; ok {
			score += weightTagMatch
		}
		if country != "" && strings.Contains(country, token) {
			score += weightCountryMatch
		}
		if language != "" && strings.Contains(language, token) {
			score += weightLanguageMatch
		}

		// A language token boosts stations from regions that speak it.
		if aliases, ok := languageAliases[token]; ok {
			for _, alias := range aliases {
				if strings.Contains(country, alias) || strings.Contains(language, alias) {
					score += weightCountryMatch
				}
			}
		}

		// A region/code token boosts stations broadcasting the language it implies.
		for lang, aliases := range languageAliases {
			if language == "" || !strings.Contains(language, lang) {
				continue
			}
			for _, alias := range aliases {
				if alias == token {
					score += weightLanguageMatch
					break
				}
			}
		}
	}

	score += float64(station.Bitrate) * weightBitrate
	score += float64(station.Votes) * weightVote
	return score
}

func tagSet(station models.Station) map[string]struct{} {
	tags := make(map[string]struct{})
	for _, tag := range station.TagList {
		if tag != "" {
			tags[strings.ToLower(tag)] = struct{}{}
		}
	}
	if station.Tags != "" {
		for _, tag := range models.SplitTags(station.Tags) {
			tags[strings.ToLower(tag)] = struct{}{}
		}
	}
	return tags
}
