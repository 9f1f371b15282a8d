package curation

import (
	"fmt"
	"strings"
	"testing"

	"github.com/radiopassport/radio-passport/internal/models"
)

func poolOf(n int) []models.Station {
	pool := make([]models.Station, 0, n)
	for i := 0; i < n; i++ {
		pool = append(pool, models.Station{
			UUID:    fmt.Sprintf("st-%02d", i),
			Name:    fmt.Sprintf("Station %02d", i),
			URL:     "http://example.com/stream",
			Country: "France",
			Bitrate: 128,
			TagList: []string{"jazz", "chill", "night", "extra"},
		})
	}
	return pool
}

func TestParseSelectionFromFencedResponse(t *testing.T) {
	text := "Here you go!\n```json\n{\"visual\":\"card_stack\",\"mood\":\"Harbor Dawn\",\"selectedStationIds\":[\"st-01\"]}\n```"
	sel, err := ParseSelection(text)
	if err != nil {
		t.Fatalf("ParseSelection: %v", err)
	}
	if sel.Mood != "Harbor Dawn" {
		t.Fatalf("mood = %q", sel.Mood)
	}
	if len(sel.SelectedStationIDs) != 1 || sel.SelectedStationIDs[0] != "st-01" {
		t.Fatalf("selectedStationIds = %v", sel.SelectedStationIDs)
	}
}

func TestParseSelectionNoObject(t *testing.T) {
	if _, err := ParseSelection("sorry, I cannot help with that"); err == nil {
		t.Fatal("expected an error for a response without JSON")
	}
}

func TestCurateMergesEnhancements(t *testing.T) {
	pool := poolOf(10)
	score := 92
	sel := Selection{
		SelectedStationIDs: []string{"st-03", "st-01", "st-05", "st-00", "st-07", "st-09"},
		StationEnhancements: map[string]Enhancement{
			"st-01": {Highlight: "smoky late-night grooves", HealthStatus: "good", HealthScore: &score},
		},
	}

	got := Curate(pool, sel)
	if len(got) != 6 {
		t.Fatalf("len = %d, want 6", len(got))
	}
	// Pool order wins over the order of selectedStationIds.
	if got[0].UUID != "st-00" || got[1].UUID != "st-01" {
		t.Fatalf("order = %s, %s", got[0].UUID, got[1].UUID)
	}
	if got[1].Highlight != "smoky late-night grooves" {
		t.Fatalf("highlight = %q", got[1].Highlight)
	}
	if got[1].HealthScore == nil || *got[1].HealthScore != 92 {
		t.Fatalf("healthScore = %v", got[1].HealthScore)
	}
	// Unenhanced fields stay untouched.
	if got[0].Highlight != "" || len(got[0].TagList) != 4 {
		t.Fatalf("station st-00 was modified: %+v", got[0])
	}
}

func TestCurateBackfillsSmallSelections(t *testing.T) {
	pool := poolOf(10)
	sel := Selection{SelectedStationIDs: []string{"st-02", "st-04"}}

	got := Curate(pool, sel)
	if len(got) != 8 {
		t.Fatalf("len = %d, want 8", len(got))
	}
	// The model's picks lead, then the head of the pool tops up the
	// scene even when that repeats a pick.
	if got[0].UUID != "st-02" || got[1].UUID != "st-04" {
		t.Fatalf("picks = %s, %s", got[0].UUID, got[1].UUID)
	}
	for i, want := range []string{"st-00", "st-01", "st-02", "st-03", "st-04", "st-05"} {
		if got[2+i].UUID != want {
			t.Fatalf("backfill[%d] = %s, want %s", i, got[2+i].UUID, want)
		}
	}
}

func TestCurateCapsAtEight(t *testing.T) {
	pool := poolOf(12)
	sel := Selection{SelectedStationIDs: []string{
		"st-00", "st-01", "st-02", "st-03", "st-04", "st-05", "st-06", "st-07", "st-08", "st-09",
	}}
	if got := Curate(pool, sel); len(got) != 8 {
		t.Fatalf("len = %d, want 8", len(got))
	}
}

func TestCurateEmptyPool(t *testing.T) {
	if got := Curate(nil, Selection{}); len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestDescriptorDefaults(t *testing.T) {
	stations := poolOf(6)
	desc, err := Descriptor(Selection{}, stations)
	if err != nil {
		t.Fatalf("Descriptor: %v", err)
	}
	if desc.Visual != "card_stack" || desc.Mood != "Sonic Journey" || desc.Animation != "slow_orbit" {
		t.Fatalf("defaults = %q/%q/%q", desc.Visual, desc.Mood, desc.Animation)
	}
	if desc.Play == nil || desc.Play.Strategy != models.PlayPreviewOnHover || desc.Play.CrossfadeMs != 4000 {
		t.Fatalf("play = %+v", desc.Play)
	}
}

func TestDescriptorKeepsModelFields(t *testing.T) {
	sel := Selection{
		Visual:    "card_stack",
		Mood:      "Midnight Berber Reverie",
		Animation: "cascade_drop",
		Play:      &models.ScenePlayOptions{Strategy: models.PlayAutoplayFirst, CrossfadeMs: 2500},
		Reason:    "Desert strings drift into dawn.",
	}
	desc, err := Descriptor(sel, poolOf(6))
	if err != nil {
		t.Fatalf("Descriptor: %v", err)
	}
	if desc.Mood != sel.Mood || desc.Animation != sel.Animation || desc.Reason != sel.Reason {
		t.Fatalf("descriptor = %+v", desc)
	}
	if desc.Play.CrossfadeMs != 2500 {
		t.Fatalf("crossfadeMs = %d", desc.Play.CrossfadeMs)
	}
}

func TestDescriptorRejectsEmptyStations(t *testing.T) {
	if _, err := Descriptor(Selection{}, nil); err == nil {
		t.Fatal("expected an error for a scene without stations")
	}
}

func TestBuildStationContext(t *testing.T) {
	pool := poolOf(25)
	pool[0].TagList = nil
	ctx := BuildStationContext(pool)

	lines := strings.Split(ctx, "\n")
	if len(lines) != 20 {
		t.Fatalf("lines = %d, want 20", len(lines))
	}
	if lines[0] != "1. Station 00 [st-00]|France|none|128k" {
		t.Fatalf("line 1 = %q", lines[0])
	}
	// Tags cap at three per line.
	if lines[1] != "2. Station 01 [st-01]|France|jazz,chill,night|128k" {
		t.Fatalf("line 2 = %q", lines[1])
	}
}

func TestBuildUserPrompt(t *testing.T) {
	prompt := BuildUserPrompt("tamil hits", poolOf(2))
	if !strings.Contains(prompt, `USER REQUEST: "tamil hits"`) {
		t.Fatalf("missing request header: %q", prompt)
	}
	if !strings.Contains(prompt, "AVAILABLE STATIONS:\n1. Station 00") {
		t.Fatalf("missing station context: %q", prompt)
	}
}
