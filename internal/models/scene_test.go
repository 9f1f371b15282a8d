package models

import (
	"errors"
	"testing"
)

func TestParseSceneDescriptorRejections(t *testing.T) {
	cases := []struct {
		name string
		raw  any
	}{
		{"nil payload", nil},
		{"empty string", "   "},
		{"not json", "not json"},
		{"non-object json", `["a"]`},
		{"missing visual", map[string]any{"stations": []any{map[string]any{"uuid": "a"}}}},
		{"visual wrong type", map[string]any{"visual": 3.0, "stations": []any{map[string]any{"uuid": "a"}}}},
		{"missing stations", map[string]any{"visual": "card_stack"}},
		{"empty stations", map[string]any{"visual": "card_stack", "stations": []any{}}},
		{"non-object station", map[string]any{"visual": "card_stack", "stations": []any{"nope"}}},
	}

	for _, tc := range cases {
		if _, err := ParseSceneDescriptor(tc.raw); err == nil {
			t.Errorf("%s: expected rejection, got none", tc.name)
		} else {
			var derr *DescriptorError
			if !errors.As(err, &derr) {
				t.Errorf("%s: expected DescriptorError, got %T", tc.name, err)
			}
		}
	}
}

func TestParseSceneDescriptorAcceptsMinimalStation(t *testing.T) {
	descriptor, err := ParseSceneDescriptor(map[string]any{
		"visual":   "card_stack",
		"stations": []any{map[string]any{"uuid": "a", "name": "Radio A"}},
	})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if descriptor.Visual != "card_stack" {
		t.Fatalf("unexpected visual %q", descriptor.Visual)
	}
	if len(descriptor.Stations) != 1 {
		t.Fatalf("expected 1 station, got %d", len(descriptor.Stations))
	}
	station := descriptor.Stations[0]
	if station.UUID != "a" || station.Name != "Radio A" {
		t.Fatalf("station identity mismatch: %+v", station)
	}
	if station.Bitrate != 0 || station.Votes != 0 || station.ClickCount != 0 {
		t.Fatalf("numeric defaults mismatch: %+v", station)
	}
	if station.TagList == nil || len(station.TagList) != 0 {
		t.Fatalf("tagList should default to empty list, got %v", station.TagList)
	}
}

func TestParseSceneDescriptorFromJSONText(t *testing.T) {
	text := `{
		"visual": "3d_globe",
		"mood": "Night Drift",
		"animation": "slow_orbit",
		"play": {"strategy": "autoplay_first", "crossfadeMs": 4000},
		"reason": "late night ambient",
		"stations": [
			{"uuid": "x", "name": "Station X", "streamUrl": "http://x/stream", "bitrate": 192, "tags": "ambient, chill,"},
			{"id": 42, "name": "Station Y"}
		]
	}`
	descriptor, err := ParseSceneDescriptor(text)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if descriptor.Mood != "Night Drift" || descriptor.Animation != "slow_orbit" {
		t.Fatalf("optional fields not carried: %+v", descriptor)
	}
	if descriptor.Play == nil || descriptor.Play.Strategy != PlayAutoplayFirst || descriptor.Play.CrossfadeMs != 4000 {
		t.Fatalf("play options mismatch: %+v", descriptor.Play)
	}
	first := descriptor.Stations[0]
	if first.URL != "http://x/stream" || first.StreamURL != "http://x/stream" {
		t.Fatalf("url cross-fill failed: %+v", first)
	}
	if got := first.TagList; len(got) != 2 || got[0] != "ambient" || got[1] != "chill" {
		t.Fatalf("tag split mismatch: %v", got)
	}
	second := descriptor.Stations[1]
	if second.UUID != "42" {
		t.Fatalf("uuid fallback from numeric id failed: %q", second.UUID)
	}
	if second.Name != "Station Y" {
		t.Fatalf("unexpected name %q", second.Name)
	}
}

func TestParseSceneDescriptorTypedPassthrough(t *testing.T) {
	typed := SceneDescriptor{
		Visual:   "card_stack",
		Stations: []Station{{UUID: "a", Name: "Radio A"}},
	}
	descriptor, err := ParseSceneDescriptor(typed)
	if err != nil {
		t.Fatalf("parse typed: %v", err)
	}
	if descriptor.Stations[0].UUID != "a" {
		t.Fatalf("typed descriptor mangled: %+v", descriptor)
	}

	if _, err := ParseSceneDescriptor(SceneDescriptor{Visual: "card_stack"}); err == nil {
		t.Fatal("typed descriptor without stations should fail")
	}
}
