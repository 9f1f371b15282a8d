// Package intent derives directory targeting hints from free-form
// listener prompts using small keyword vocabularies. It backstops the
// model providers: even when a provider ignores targeting, the
// extracted intent still steers candidate gathering and ranking.
package intent

import (
	"sort"
	"strings"
	"unicode"
)

// Confidence grades how strongly a prompt signalled the extracted intent.
type Confidence string

const (
	ConfidenceNone   Confidence = "none"
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// PromptIntent holds the directory targeting hints extracted from a prompt.
type PromptIntent struct {
	Countries  []string
	Languages  []string
	Tags       []string
	Confidence Confidence
}

// HasSignals reports whether any targeting hint was extracted.
func (p PromptIntent) HasSignals() bool {
	return len(p.Countries) > 0 || len(p.Languages) > 0 || len(p.Tags) > 0
}

// ExtractPromptIntent scans the prompt for known country, language, and
// tag keywords. Multi-word keywords match as substrings, single words as
// whole tokens.
func ExtractPromptIntent(prompt string) PromptIntent {
	normalized := strings.ToLower(prompt)
	tokens := tokenSet(normalized)

	out := PromptIntent{Confidence: ConfidenceNone}
	out.Countries = matchVocabulary(normalized, tokens, countryKeywords)
	out.Languages = matchVocabulary(normalized, tokens, languageKeywords)
	out.Tags = matchVocabulary(normalized, tokens, tagKeywords)

	switch signals := len(out.Countries) + len(out.Languages) + len(out.Tags); {
	case signals >= 3:
		out.Confidence = ConfidenceHigh
	case signals >= 1:
		out.Confidence = ConfidenceMedium
	}
	return out
}

func matchVocabulary(normalized string, tokens map[string]bool, vocab map[string][]string) []string {
	var hits []string
	for canonical, keywords := range vocab {
		for _, kw := range keywords {
			if strings.ContainsRune(kw, ' ') || strings.ContainsRune(kw, '-') {
				if strings.Contains(normalized, kw) {
					hits = append(hits, canonical)
					break
				}
				continue
			}
			if tokens[kw] {
				hits = append(hits, canonical)
				break
			}
		}
	}
	// Map iteration order is random; keep hints deterministic.
	sort.Strings(hits)
	return hits
}

func tokenSet(normalized string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.FieldsFunc(normalized, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		set[tok] = true
	}
	return set
}
