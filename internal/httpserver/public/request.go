package public

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/radiopassport/radio-passport/internal/intent"
	"github.com/radiopassport/radio-passport/internal/stations"
)

// RecommendRequest is the normalized recommendation request. List
// fields accept repeated parameters and comma-joined values.
type RecommendRequest struct {
	Prompt             string   `json:"prompt"`
	Mood               string   `json:"mood"`
	Visual             string   `json:"visual"`
	Scene              string   `json:"scene"`
	SceneID            string   `json:"sceneId"`
	Country            string   `json:"country"`
	Language           string   `json:"language"`
	PreferredCountries []string `json:"preferredCountries"`
	PreferredLanguages []string `json:"preferredLanguages"`
	PreferredTags      []string `json:"preferredTags"`
	FavoriteStationIDs []string `json:"favoriteStationIds"`
	RecentStationIDs   []string `json:"recentStationIds"`
	DislikedStationIDs []string `json:"dislikedStationIds"`
	CurrentStationID   string   `json:"currentStationId"`
}

// parseRecommendRequest reads the request from query parameters on GET
// and from the JSON body (falling back to form fields) on POST.
func parseRecommendRequest(c *fiber.Ctx) RecommendRequest {
	var req RecommendRequest
	if c.Method() == fiber.MethodGet {
		req = RecommendRequest{
			Prompt:             c.Query("prompt"),
			Mood:               c.Query("mood"),
			Visual:             c.Query("visual"),
			Scene:              c.Query("scene"),
			SceneID:            c.Query("sceneId"),
			Country:            c.Query("country"),
			Language:           c.Query("language"),
			PreferredCountries: queryList(c, "preferredCountries"),
			PreferredLanguages: queryList(c, "preferredLanguages"),
			PreferredTags:      queryList(c, "preferredTags"),
			FavoriteStationIDs: queryList(c, "favoriteStationIds"),
			RecentStationIDs:   queryList(c, "recentStationIds"),
			DislikedStationIDs: queryList(c, "dislikedStationIds"),
			CurrentStationID:   c.Query("currentStationId"),
		}
	} else if err := c.BodyParser(&req); err != nil {
		// A malformed body degrades to an empty request, which still
		// resolves to a scene.
		req = RecommendRequest{}
	}
	return finalize(req)
}

func queryList(c *fiber.Ctx, key string) []string {
	raw := c.Context().QueryArgs().PeekMulti(key)
	values := make([]string, 0, len(raw))
	for _, v := range raw {
		values = append(values, string(v))
	}
	return values
}

// finalize trims fields and explodes comma-joined list values.
func finalize(req RecommendRequest) RecommendRequest {
	req.Prompt = strings.TrimSpace(req.Prompt)
	req.Mood = strings.TrimSpace(req.Mood)
	req.Visual = strings.TrimSpace(req.Visual)
	req.Scene = strings.TrimSpace(req.Scene)
	req.SceneID = strings.TrimSpace(req.SceneID)
	req.Country = strings.TrimSpace(req.Country)
	req.Language = strings.TrimSpace(req.Language)
	req.CurrentStationID = strings.TrimSpace(req.CurrentStationID)

	req.PreferredCountries = explodeList(req.PreferredCountries)
	req.PreferredLanguages = explodeList(req.PreferredLanguages)
	req.PreferredTags = explodeList(req.PreferredTags)
	req.FavoriteStationIDs = explodeList(req.FavoriteStationIDs)
	req.RecentStationIDs = explodeList(req.RecentStationIDs)
	req.DislikedStationIDs = explodeList(req.DislikedStationIDs)
	return req
}

func explodeList(values []string) []string {
	var out []string
	for _, value := range values {
		out = append(out, strings.Split(value, ",")...)
	}
	return stations.NormalizePreferenceList(out)
}

// enrichWithPromptIntent folds extracted prompt hints into the request.
// Low-confidence extractions are ignored so a stray keyword cannot
// hijack explicit preferences.
func enrichWithPromptIntent(req RecommendRequest) RecommendRequest {
	if req.Prompt == "" {
		return req
	}
	extracted := intent.ExtractPromptIntent(req.Prompt)
	if extracted.Confidence == intent.ConfidenceNone || extracted.Confidence == intent.ConfidenceLow {
		return req
	}

	req.PreferredCountries = mergePreferred(req.Country, req.PreferredCountries, extracted.Countries)
	req.PreferredLanguages = mergePreferred(req.Language, req.PreferredLanguages, extracted.Languages)
	req.PreferredTags = stations.NormalizePreferenceList(append(req.PreferredTags, extracted.Tags...))

	if req.Country == "" && len(extracted.Countries) > 0 {
		req.Country = extracted.Countries[0]
	}
	if req.Language == "" && len(extracted.Languages) > 0 {
		req.Language = extracted.Languages[0]
	}
	return req
}

// mergePreferred puts the explicit single value first, then the list,
// then the extracted hints, deduplicated.
func mergePreferred(primary string, existing, extracted []string) []string {
	merged := make([]string, 0, 1+len(existing)+len(extracted))
	if primary != "" {
		merged = append(merged, primary)
	}
	merged = append(merged, existing...)
	merged = append(merged, extracted...)
	return stations.NormalizePreferenceList(merged)
}
