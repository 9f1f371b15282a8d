package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Playback strategies understood by the scene renderer.
const (
	PlayAutoplayFirst  = "autoplay_first"
	PlayQueueOnly      = "queue_only"
	PlayPreviewOnHover = "preview_on_hover"
)

// ScenePlayOptions hints how the renderer should start playback.
type ScenePlayOptions struct {
	Strategy    string `json:"strategy"`
	CrossfadeMs int    `json:"crossfadeMs,omitempty"`
}

// SceneDescriptor is the curated output of one recommendation request: a
// presentation mode plus an ordered set of annotated stations. Descriptors
// are immutable after ParseSceneDescriptor returns them.
type SceneDescriptor struct {
	Visual    string            `json:"visual"`
	Mood      string            `json:"mood,omitempty"`
	Animation string            `json:"animation,omitempty"`
	Play      *ScenePlayOptions `json:"play,omitempty"`
	Stations  []Station         `json:"stations"`
	Reason    string            `json:"reason,omitempty"`
}

// DescriptorError marks a payload that failed scene-descriptor validation.
type DescriptorError struct {
	Reason string
}

func (e *DescriptorError) Error() string {
	return fmt.Sprintf("invalid scene descriptor: %s", e.Reason)
}

func descriptorErr(reason string) error {
	return &DescriptorError{Reason: reason}
}

// ParseSceneDescriptor validates an arbitrary candidate descriptor (a decoded
// JSON object, a JSON string, or an already-typed SceneDescriptor) and
// returns the fully-typed result. Every descriptor handed to the rendering
// layer must pass through here; it is the last line of defense against a
// malformed AI response.
func ParseSceneDescriptor(raw any) (SceneDescriptor, error) {
	if raw == nil {
		return SceneDescriptor{}, descriptorErr("empty descriptor payload")
	}

	switch value := raw.(type) {
	case string:
		return parseDescriptorText([]byte(value))
	case []byte:
		return parseDescriptorText(value)
	case map[string]any:
		return parseDescriptorObject(value)
	case SceneDescriptor:
		return validateTyped(value)
	case *SceneDescriptor:
		if value == nil {
			return SceneDescriptor{}, descriptorErr("empty descriptor payload")
		}
		return validateTyped(*value)
	default:
		return SceneDescriptor{}, descriptorErr("descriptor must be an object")
	}
}

func parseDescriptorText(text []byte) (SceneDescriptor, error) {
	if len(strings.TrimSpace(string(text))) == 0 {
		return SceneDescriptor{}, descriptorErr("empty descriptor payload")
	}
	var decoded any
	if err := json.Unmarshal(text, &decoded); err != nil {
		return SceneDescriptor{}, descriptorErr("descriptor is not valid JSON")
	}
	obj, ok := decoded.(map[string]any)
	if !ok {
		return SceneDescriptor{}, descriptorErr("descriptor must be an object")
	}
	return parseDescriptorObject(obj)
}

func parseDescriptorObject(obj map[string]any) (SceneDescriptor, error) {
	visual, ok := obj["visual"].(string)
	if !ok || visual == "" {
		return SceneDescriptor{}, descriptorErr("descriptor must include a visual scene id")
	}

	rawStations, ok := obj["stations"].([]any)
	if !ok || len(rawStations) == 0 {
		return SceneDescriptor{}, descriptorErr("descriptor must provide at least one station")
	}

	stations := make([]Station, 0, len(rawStations))
	for _, entry := range rawStations {
		station, err := CoerceStation(entry)
		if err != nil {
			return SceneDescriptor{}, descriptorErr(err.Error())
		}
		stations = append(stations, station)
	}

	descriptor := SceneDescriptor{
		Visual:    visual,
		Mood:      stringField(obj, "mood"),
		Animation: stringField(obj, "animation"),
		Stations:  stations,
		Reason:    stringField(obj, "reason"),
	}
	if play, ok := obj["play"].(map[string]any); ok {
		descriptor.Play = &ScenePlayOptions{
			Strategy:    stringField(play, "strategy"),
			CrossfadeMs: numberField(play, "crossfadeMs"),
		}
	}
	return descriptor, nil
}

func validateTyped(descriptor SceneDescriptor) (SceneDescriptor, error) {
	if strings.TrimSpace(descriptor.Visual) == "" {
		return SceneDescriptor{}, descriptorErr("descriptor must include a visual scene id")
	}
	if len(descriptor.Stations) == 0 {
		return SceneDescriptor{}, descriptorErr("descriptor must provide at least one station")
	}
	return descriptor, nil
}
