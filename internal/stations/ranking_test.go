package stations

import (
	"testing"

	"github.com/radiopassport/radio-passport/internal/models"
)

func TestRankStationsPrefersTagAndCountryMatches(t *testing.T) {
	generic := models.Station{UUID: "pop", Name: "Generic Pop", Country: "United States", TagList: []string{"pop"}, Bitrate: 320, Votes: 500}
	jazzNY := models.Station{UUID: "jazz-ny", Name: "NY Jazz", Country: "United States", TagList: []string{"jazz"}, Bitrate: 128}
	jazzParis := models.Station{UUID: "jazz-fr", Name: "Paris Jazz", Country: "France", TagList: []string{"jazz"}, Bitrate: 128}

	ranked := RankStations([]models.Station{generic, jazzParis, jazzNY}, RankIntent{Prompt: "jazz from france"})
	if ranked[0].UUID != "jazz-fr" {
		t.Fatalf("expected french jazz first, got %s", ranked[0].UUID)
	}
}

func TestRankStationsLanguageAliasBoost(t *testing.T) {
	brazilian := models.Station{UUID: "br", Country: "Brazil", Language: "Portuguese", Bitrate: 128}
	german := models.Station{UUID: "de", Country: "Germany", Language: "German", Bitrate: 128}

	ranked := RankStations([]models.Station{german, brazilian}, RankIntent{Prompt: "portuguese evening"})
	if ranked[0].UUID != "br" {
		t.Fatalf("language alias should boost brazil, got %s", ranked[0].UUID)
	}
}

func TestRankStationsStableWithoutSignals(t *testing.T) {
	a := models.Station{UUID: "a", Bitrate: 128}
	b := models.Station{UUID: "b", Bitrate: 128}
	ranked := RankStations([]models.Station{a, b}, RankIntent{})
	if ranked[0].UUID != "a" || ranked[1].UUID != "b" {
		t.Fatalf("equal scores must keep input order: %v", ranked)
	}
}

func TestAnnotateHealthGrades(t *testing.T) {
	strong := models.Station{UUID: "s", Bitrate: 256, Votes: 100}
	weak := models.Station{UUID: "w", Bitrate: 0, Votes: 0, LastCheckOK: boolPtr(false)}

	annotated := AnnotateHealth([]models.Station{strong, weak})

	if annotated[0].HealthStatus != HealthGood {
		t.Fatalf("high-bitrate station should grade good, got %s", annotated[0].HealthStatus)
	}
	if annotated[0].HealthScore == nil || *annotated[0].HealthScore != 100 {
		t.Fatalf("unexpected score for strong station: %v", annotated[0].HealthScore)
	}
	if annotated[1].HealthStatus != HealthError {
		t.Fatalf("failed-check station should grade error, got %s", annotated[1].HealthStatus)
	}
	if annotated[1].IsLikelyUp == nil || *annotated[1].IsLikelyUp {
		t.Fatalf("failed check should mark station unlikely up")
	}
}
