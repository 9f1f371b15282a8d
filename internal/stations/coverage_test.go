package stations

import (
	"context"
	"testing"

	"github.com/radiopassport/radio-passport/internal/models"
)

type fakeSupplementSource struct {
	byLanguage map[string][]models.Station
	byTag      map[string][]models.Station
	byCountry  map[string][]models.Station
	calls      int
}

func (f *fakeSupplementSource) StationsByCountry(_ context.Context, country string, _ int) []models.Station {
	f.calls++
	return f.byCountry[country]
}

func (f *fakeSupplementSource) StationsByLanguage(_ context.Context, language string, _ int) []models.Station {
	f.calls++
	return f.byLanguage[language]
}

func (f *fakeSupplementSource) StationsByTag(_ context.Context, tag string, _ int) []models.Station {
	f.calls++
	return f.byTag[tag]
}

func TestEnsureIntentCoverageNoSignalsPassthrough(t *testing.T) {
	list := []models.Station{{UUID: "a"}, {UUID: "b"}}
	source := &fakeSupplementSource{}
	got := EnsureIntentCoverage(context.Background(), list, RankIntent{}, source)
	if len(got) != 2 || source.calls != 0 {
		t.Fatalf("no intent should mean no supplement fetches, got %v calls %d", got, source.calls)
	}
}

func TestEnsureIntentCoveragePinsMatches(t *testing.T) {
	list := []models.Station{
		{UUID: "us1", Country: "United States", Bitrate: 320, Votes: 900},
		{UUID: "us2", Country: "United States", Bitrate: 256, Votes: 800},
		{UUID: "us3", Country: "United States", Bitrate: 192, Votes: 700},
		{UUID: "us4", Country: "United States", Bitrate: 128, Votes: 600},
	}
	source := &fakeSupplementSource{
		byLanguage: map[string][]models.Station{
			"Tamil": {
				{UUID: "ta1", Country: "India", Language: "Tamil", Bitrate: 128},
				{UUID: "ta2", Country: "India", Language: "Tamil", Bitrate: 96},
			},
		},
	}

	intent := RankIntent{Prompt: "tamil hits", PreferredLanguages: []string{"Tamil"}}
	got := EnsureIntentCoverage(context.Background(), list, intent, source)

	if len(got) != len(list) {
		t.Fatalf("coverage must keep input length %d, got %d", len(list), len(got))
	}
	if got[0].Language != "Tamil" || got[1].Language != "Tamil" {
		t.Fatalf("tamil supplements should be pinned first: %+v", got[:2])
	}
}

func TestEnsureIntentCoverageSatisfiedSkipsFetch(t *testing.T) {
	list := []models.Station{
		{UUID: "in1", Country: "India", Language: "Hindi"},
		{UUID: "in2", Country: "India", Language: "Hindi"},
	}
	source := &fakeSupplementSource{}
	intent := RankIntent{PreferredCountries: []string{"India"}}
	got := EnsureIntentCoverage(context.Background(), list, intent, source)
	if source.calls != 0 {
		t.Fatalf("coverage already satisfied, expected no fetches, got %d", source.calls)
	}
	if len(got) != 2 {
		t.Fatalf("list should be unchanged, got %v", got)
	}
}

func TestStationMatchesIntentLanguageCode(t *testing.T) {
	station := models.Station{UUID: "x", LanguageCodes: []string{"ta"}}
	intent := RankIntent{PreferredLanguages: []string{"Tamil"}}
	if !stationMatchesIntent(station, intent) {
		t.Fatal("two-letter code should satisfy the full language name")
	}
}
