package tracegen

import (
	"strings"
	"unicode"
)

// Proxy scoring. Every score is a deterministic surface statistic of the
// segment text: token and character counts only. There is no language
// understanding here and the numbers claim none. They are geometry proxies
// on the 0..1 scale.

// deicticWords are unanchored references: text that leans on them leaks
// addressability outside its own span.
var deicticWords = map[string]bool{
	"this": true, "that": true, "these": true, "those": true,
	"it": true, "its": true, "they": true, "them": true, "their": true,
	"he": true, "she": true, "him": true, "her": true, "there": true,
}

// closureMarkers signal dependence on external closure: citations, quoted
// authority, links.
var closureMarkers = []string{
	"according to", "http://", "https://", "et al", "op. cit",
	"as reported", "officials said", "sources say", "cited",
}

// scoreDensity measures structural load per sentence: longer, token-heavy
// sentences read as denser spans.
func scoreDensity(text string) float64 {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return 0.0
	}
	sentences := countSentences(text)
	perSentence := float64(len(tokens)) / float64(sentences)
	return clamp01(perSentence / 28.0)
}

// scoreLeak measures the fraction of deictic, unanchored references.
func scoreLeak(text string) float64 {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return 0.0
	}
	leaky := 0
	for _, tok := range tokens {
		if deicticWords[tok] {
			leaky++
		}
	}
	return clamp01(3.0 * float64(leaky) / float64(len(tokens)))
}

// scoreClosure measures reliance on external-closure markers and quotation.
func scoreClosure(text string) float64 {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return 0.0
	}
	lower := strings.ToLower(text)
	markers := 0
	for _, m := range closureMarkers {
		markers += strings.Count(lower, m)
	}
	markers += strings.Count(text, `"`) / 2
	markers += strings.Count(text, "[")
	return clamp01(8.0 * float64(markers) / float64(len(tokens)))
}

// scoreEcho measures repetition mass: the share of tokens that repeat an
// earlier token in the same segment.
func scoreEcho(text string) float64 {
	tokens := tokenize(text)
	if len(tokens) < 2 {
		return 0.0
	}
	seen := make(map[string]bool, len(tokens))
	repeats := 0
	for _, tok := range tokens {
		if seen[tok] {
			repeats++
		}
		seen[tok] = true
	}
	return clamp01(1.4 * float64(repeats) / float64(len(tokens)))
}

// closureDependency buckets an ESC score into the dependency tag carried
// alongside it.
func closureDependency(score float64) string {
	switch {
	case score < 0.33:
		return "low"
	case score < 0.66:
		return "medium"
	default:
		return "high"
	}
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func countSentences(text string) int {
	n := 0
	for _, r := range text {
		if r == '.' || r == '!' || r == '?' {
			n++
		}
	}
	if n == 0 {
		return 1
	}
	return n
}

func clamp01(x float64) float64 {
	if x < 0.0 {
		return 0.0
	}
	if x > 1.0 {
		return 1.0
	}
	return x
}
