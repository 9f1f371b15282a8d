package models

import (
	"errors"
	"fmt"
	"strings"
)

// Station is the normalized internal record for one radio stream. Everything
// upstream of the curation pipeline (directory payloads, AI payloads) is
// loosely typed; nothing past the coercion helpers in this package is.
type Station struct {
	UUID               string   `json:"uuid"`
	Name               string   `json:"name"`
	URL                string   `json:"url"`
	StreamURL          string   `json:"streamUrl"`
	Favicon            string   `json:"favicon,omitempty"`
	Country            string   `json:"country,omitempty"`
	CountryCode        string   `json:"countryCode,omitempty"`
	State              string   `json:"state,omitempty"`
	Language           string   `json:"language,omitempty"`
	LanguageCodes      []string `json:"languageCodes,omitempty"`
	Tags               string   `json:"tags,omitempty"`
	TagList            []string `json:"tagList"`
	Bitrate            int      `json:"bitrate"`
	Codec              string   `json:"codec,omitempty"`
	Homepage           string   `json:"homepage,omitempty"`
	HLS                bool     `json:"hls,omitempty"`
	LastCheckOK        *bool    `json:"lastCheckOk,omitempty"`
	LastCheckOKTime    string   `json:"lastCheckOkTime,omitempty"`
	LastCheckTime      string   `json:"lastCheckTime,omitempty"`
	LastLocalCheckTime string   `json:"lastLocalCheckTime,omitempty"`
	SSLError           bool     `json:"sslError,omitempty"`
	Votes              int      `json:"votes"`
	ClickCount         int      `json:"clickCount"`
	ClickTrend         int      `json:"clickTrend"`
	Highlight          string   `json:"highlight,omitempty"`

	// Health annotations. IsStreamHealthy is tri-state: nil means the check
	// never ran and the station counts as healthy.
	IsStreamHealthy *bool  `json:"isStreamHealthy,omitempty"`
	HealthStatus    string `json:"healthStatus,omitempty"`
	HealthScore     *int   `json:"healthScore,omitempty"`
	IsLikelyUp      *bool  `json:"isLikelyUp,omitempty"`
}

// HasStream reports whether the station carries a playable stream locator.
func (s Station) HasStream() bool {
	return strings.TrimSpace(s.StreamURL) != ""
}

const unknownStationName = "Unknown Station"

var errStationNotObject = errors.New("invalid station in descriptor")

// CoerceStation converts an arbitrary decoded JSON value into a Station.
// Missing fields never fail; only a non-object input does. This is the single
// throwing step inside ParseSceneDescriptor.
func CoerceStation(value any) (Station, error) {
	obj, ok := value.(map[string]any)
	if !ok || obj == nil {
		return Station{}, errStationNotObject
	}

	uuid := firstString(obj, "uuid", "id", "slug", "name")
	url := firstString(obj, "url", "streamUrl")
	streamURL := firstString(obj, "streamUrl", "url")

	station := Station{
		UUID:               uuid,
		Name:               stringOr(obj, "name", unknownStationName),
		URL:                url,
		StreamURL:          streamURL,
		Favicon:            stringField(obj, "favicon"),
		Country:            firstString(obj, "country", "countryCode"),
		CountryCode:        firstString(obj, "countryCode", "country"),
		State:              stringField(obj, "state"),
		Tags:               stringField(obj, "tags"),
		Bitrate:            numberField(obj, "bitrate"),
		Codec:              stringField(obj, "codec"),
		Homepage:           stringField(obj, "homepage"),
		HLS:                boolField(obj, "hls"),
		LastCheckOK:        boolPtrField(obj, "lastCheckOk"),
		LastCheckOKTime:    stringField(obj, "lastCheckOkTime"),
		LastCheckTime:      stringField(obj, "lastCheckTime"),
		LastLocalCheckTime: stringField(obj, "lastLocalCheckTime"),
		SSLError:           boolField(obj, "sslError"),
		Votes:              numberField(obj, "votes"),
		ClickCount:         numberField(obj, "clickCount"),
		ClickTrend:         numberField(obj, "clickTrend"),
		Highlight:          firstString(obj, "highlight", "explain"),
		HealthStatus:       stringField(obj, "healthStatus"),
	}

	if codes := stringListField(obj, "languageCodes"); len(codes) > 0 {
		station.LanguageCodes = codes
		station.Language = firstString(obj, "language")
		if station.Language == "" {
			station.Language = codes[0]
		}
	} else if lang := stringField(obj, "language"); lang != "" {
		station.Language = lang
		station.LanguageCodes = []string{lang}
	}

	if list := stringListField(obj, "tagList"); len(list) > 0 {
		station.TagList = list
	} else if station.Tags != "" {
		station.TagList = SplitTags(station.Tags)
	} else {
		station.TagList = []string{}
	}

	if score, ok := obj["healthScore"].(float64); ok {
		v := int(score)
		station.HealthScore = &v
	}

	return station, nil
}

// SplitTags parses a comma-joined tag string into a trimmed, non-empty list.
func SplitTags(tags string) []string {
	parts := strings.Split(tags, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}

func stringField(obj map[string]any, key string) string {
	if s, ok := obj[key].(string); ok {
		return s
	}
	return ""
}

func stringOr(obj map[string]any, key, fallback string) string {
	if s := stringField(obj, key); s != "" {
		return s
	}
	return fallback
}

func firstString(obj map[string]any, keys ...string) string {
	for _, key := range keys {
		switch v := obj[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return fmt.Sprintf("%v", v)
		}
	}
	return ""
}

// numberField accepts only genuine JSON numbers. Strings that happen to hold
// digits are directory noise and stay 0.
func numberField(obj map[string]any, key string) int {
	if f, ok := obj[key].(float64); ok {
		return int(f)
	}
	return 0
}

func boolField(obj map[string]any, key string) bool {
	b, _ := obj[key].(bool)
	return b
}

func boolPtrField(obj map[string]any, key string) *bool {
	if b, ok := obj[key].(bool); ok {
		return &b
	}
	return nil
}

func stringListField(obj map[string]any, key string) []string {
	raw, ok := obj[key].([]any)
	if !ok {
		return nil
	}
	list := make([]string, 0, len(raw))
	for _, entry := range raw {
		list = append(list, fmt.Sprintf("%v", entry))
	}
	return list
}
