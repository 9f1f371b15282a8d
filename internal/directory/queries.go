package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/radiopassport/radio-passport/internal/models"
	"github.com/radiopassport/radio-passport/internal/providers/curation"
	"github.com/radiopassport/radio-passport/internal/stations"
)

// Targeted lookups are capped independently of the baseline search, and
// supplements tolerate a lower bitrate so niche regional stations make
// it through.
const (
	targetedQueryLimit   = 30
	supplementMinBitrate = 48
)

func searchPath(limit int) string {
	return fmt.Sprintf("/json/stations/search?limit=%d&hidebroken=true&order=clickcount&reverse=true&has_geo_info=true", limit)
}

func facetPath(facet, value string) string {
	return fmt.Sprintf("/json/stations/%s/%s?limit=%d&hidebroken=true&order=clickcount&reverse=true",
		facet, url.PathEscape(value), targetedQueryLimit)
}

// FetchStations retrieves and normalizes one directory path, dropping
// records that fail candidate filtering. Transport failures are logged
// and absorbed so one dead facet never sinks a whole gather.
func (c *Client) FetchStations(ctx context.Context, path string, minBitrate int) []models.Station {
	body, err := c.fetchJSON(ctx, path)
	if err != nil {
		slog.Warn("failed to fetch stations from radio browser", "path", path, "error", err)
		return nil
	}

	var raw []map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		slog.Warn("radio browser returned malformed station list", "path", path, "error", err)
		return nil
	}

	out := make([]models.Station, 0, len(raw))
	for _, record := range raw {
		st, ok := normalizeWireStation(record)
		if !ok {
			continue
		}
		out = append(out, st)
	}
	return stations.FilterCandidates(out, &stations.FilterOptions{MinBitrate: minBitrate})
}

// Candidates gathers the curation pool: a popularity-ordered baseline
// plus targeted lookups for the intent's countries, languages, and tags.
// Targeted results lead so dedup keeps them over baseline duplicates.
func (c *Client) Candidates(ctx context.Context, limit int, intent *curation.Intent) []models.Station {
	if limit <= 0 {
		limit = c.candidateLimit
	}
	baseline := c.FetchStations(ctx, searchPath(limit), c.minBitrate)

	var targeted []models.Station
	if intent != nil {
		for _, country := range head(stations.NormalizePreferenceList(intent.PreferredCountries), 2) {
			targeted = append(targeted, c.FetchStations(ctx, facetPath("bycountry", country), c.minBitrate)...)
		}
		for _, language := range head(stations.NormalizePreferenceList(intent.PreferredLanguages), 2) {
			targeted = append(targeted, c.FetchStations(ctx, facetPath("bylanguage", language), c.minBitrate)...)
		}
		for _, tag := range head(stations.NormalizePreferenceList(intent.PreferredTags), 3) {
			targeted = append(targeted, c.FetchStations(ctx, facetPath("bytag", tag), c.minBitrate)...)
		}
	}

	combined := stations.Dedupe(append(targeted, baseline...))
	if len(combined) > limit {
		combined = combined[:limit]
	}
	return combined
}

// StationsByCountry implements stations.SupplementSource.
func (c *Client) StationsByCountry(ctx context.Context, country string, limit int) []models.Station {
	return capStations(c.FetchStations(ctx, facetPath("bycountry", country), supplementMinBitrate), limit)
}

// StationsByLanguage implements stations.SupplementSource.
func (c *Client) StationsByLanguage(ctx context.Context, language string, limit int) []models.Station {
	return capStations(c.FetchStations(ctx, facetPath("bylanguage", language), supplementMinBitrate), limit)
}

// StationsByTag implements stations.SupplementSource.
func (c *Client) StationsByTag(ctx context.Context, tag string, limit int) []models.Station {
	return capStations(c.FetchStations(ctx, facetPath("bytag", tag), supplementMinBitrate), limit)
}

func capStations(list []models.Station, limit int) []models.Station {
	if limit > 0 && len(list) > limit {
		return list[:limit]
	}
	return list
}

func head(values []string, n int) []string {
	if len(values) > n {
		return values[:n]
	}
	return values
}

// normalizeWireStation maps one Radio Browser record into the internal
// model. Records without a uuid, name, or any reachable URL are dropped.
func normalizeWireStation(raw map[string]any) (models.Station, bool) {
	uuid := wireString(raw, "stationuuid")
	if uuid == "" {
		uuid = wireString(raw, "uuid")
	}
	name := strings.TrimSpace(wireString(raw, "name"))
	streamURL := strings.TrimSpace(wireString(raw, "url_resolved"))
	if streamURL == "" {
		streamURL = strings.TrimSpace(wireString(raw, "url"))
	}
	homepage := strings.TrimSpace(wireString(raw, "homepage"))
	if uuid == "" || name == "" || (streamURL == "" && homepage == "") {
		return models.Station{}, false
	}

	country := wireString(raw, "country")
	countryCode := wireString(raw, "countrycode")
	if country == "" {
		country = countryCode
	}
	if country == "" {
		country = "Unknown"
	}

	tags := wireString(raw, "tags")
	sslError := wireBool(raw, "ssl_error")
	lastCheckOK := wireBool(raw, "lastcheckok")
	hasStream := streamURL != ""

	st := models.Station{
		UUID:               uuid,
		Name:               name,
		URL:                streamURL,
		StreamURL:          streamURL,
		Favicon:            wireString(raw, "favicon"),
		Country:            country,
		CountryCode:        countryCode,
		State:              strings.TrimSpace(wireString(raw, "state")),
		Language:           strings.TrimSpace(wireString(raw, "language")),
		LanguageCodes:      splitCSV(wireString(raw, "languagecodes")),
		Tags:               tags,
		TagList:            models.SplitTags(tags),
		Bitrate:            wireInt(raw, "bitrate"),
		Codec:              wireString(raw, "codec"),
		Homepage:           homepage,
		HLS:                wireBool(raw, "hls"),
		SSLError:           sslError,
		Votes:              wireInt(raw, "votes"),
		ClickCount:         wireInt(raw, "clickcount"),
		ClickTrend:         wireInt(raw, "clicktrend"),
		LastCheckOKTime:    wireFirst(raw, "lastcheckoktime_iso8601", "lastcheckoktime"),
		LastCheckTime:      wireFirst(raw, "lastchecktime_iso8601", "lastchecktime"),
		LastLocalCheckTime: wireFirst(raw, "lastlocalchecktime_iso8601", "lastlocalchecktime"),
	}
	st.LastCheckOK = &lastCheckOK

	healthy := hasStream && !sslError && lastCheckOK
	st.IsStreamHealthy = &healthy
	switch {
	case sslError && !lastCheckOK:
		st.HealthStatus = stations.HealthError
	case !hasStream || sslError || !lastCheckOK:
		st.HealthStatus = stations.HealthWarning
	default:
		st.HealthStatus = stations.HealthGood
	}
	return st, true
}

func wireString(raw map[string]any, key string) string {
	if s, ok := raw[key].(string); ok {
		return s
	}
	return ""
}

func wireFirst(raw map[string]any, keys ...string) string {
	for _, key := range keys {
		if s := wireString(raw, key); s != "" {
			return s
		}
	}
	return ""
}

// wireInt tolerates the directory's habit of sending numbers as strings.
func wireInt(raw map[string]any, key string) int {
	switch v := raw[key].(type) {
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// wireBool tolerates both booleans and the 0/1 integers the directory
// uses for flags.
func wireBool(raw map[string]any, key string) bool {
	switch v := raw[key].(type) {
	case bool:
		return v
	case float64:
		return v == 1
	default:
		return false
	}
}

func splitCSV(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
