package intent

import (
	"reflect"
	"testing"
)

func TestExtractPromptIntentNoSignals(t *testing.T) {
	got := ExtractPromptIntent("something ambient for a rainy afternoon")
	if got.HasSignals() {
		t.Fatalf("expected no signals, got %+v", got)
	}
	if got.Confidence != ConfidenceNone {
		t.Fatalf("confidence = %q, want %q", got.Confidence, ConfidenceNone)
	}
}

func TestExtractPromptIntentSingleToken(t *testing.T) {
	got := ExtractPromptIntent("play me some tamil hits")
	if !reflect.DeepEqual(got.Languages, []string{"Tamil"}) {
		t.Fatalf("languages = %v, want [Tamil]", got.Languages)
	}
	if got.Confidence != ConfidenceMedium {
		t.Fatalf("confidence = %q, want %q", got.Confidence, ConfidenceMedium)
	}
}

func TestExtractPromptIntentMultiWordSubstring(t *testing.T) {
	got := ExtractPromptIntent("late night drive through tamil nadu")
	if !reflect.DeepEqual(got.Countries, []string{"India"}) {
		t.Fatalf("countries = %v, want [India]", got.Countries)
	}
}

func TestExtractPromptIntentCombinedSignals(t *testing.T) {
	got := ExtractPromptIntent("bollywood classics from india in hindi")
	if !reflect.DeepEqual(got.Countries, []string{"India"}) {
		t.Fatalf("countries = %v", got.Countries)
	}
	if !reflect.DeepEqual(got.Languages, []string{"Hindi"}) {
		t.Fatalf("languages = %v", got.Languages)
	}
	if !reflect.DeepEqual(got.Tags, []string{"Bollywood"}) {
		t.Fatalf("tags = %v", got.Tags)
	}
	if got.Confidence != ConfidenceHigh {
		t.Fatalf("confidence = %q, want %q", got.Confidence, ConfidenceHigh)
	}
}

func TestExtractPromptIntentTokenBoundaries(t *testing.T) {
	// "ukulele" must not match the single-word keyword "uk".
	got := ExtractPromptIntent("ukulele covers please")
	if len(got.Countries) != 0 {
		t.Fatalf("countries = %v, want none", got.Countries)
	}
}

func TestExtractPromptIntentHyphenKeyword(t *testing.T) {
	got := ExtractPromptIntent("chill lo-fi beats")
	if !reflect.DeepEqual(got.Tags, []string{"Lofi"}) {
		t.Fatalf("tags = %v, want [Lofi]", got.Tags)
	}
}
