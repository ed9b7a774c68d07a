package sentiment

import (
	"strings"
)

// Analyzer maps free text to a polarity in [-1, 1].
type Analyzer interface {
	Score(text string) float64
}

// Classification buckets an average polarity for display.
type Classification string

const (
	Positive Classification = "Positive"
	Negative Classification = "Negative"
	Neutral  Classification = "Neutral"
)

var positiveWords = map[string]struct{}{
	"good": {}, "happy": {}, "joy": {}, "love": {}, "great": {},
	"wonderful": {}, "calm": {}, "relaxed": {}, "thankful": {}, "grateful": {},
}

var negativeWords = map[string]struct{}{
	"sad": {}, "angry": {}, "hate": {}, "bad": {}, "anxious": {},
	"stressed": {}, "depressed": {}, "upset": {}, "lonely": {}, "terrible": {},
}

// Lexicon is the deterministic fallback scorer used when no external analyzer
// is configured. Pure function of the text.
type Lexicon struct{}

var _ Analyzer = Lexicon{}

// Score tokenizes on whitespace, strips surrounding punctuation, lowercases,
// counts +1 per positive token and -1 per negative token, normalizes by
// max(1, tokens/4) and clamps to [-1, 1]. Empty text scores exactly 0.
func (Lexicon) Score(text string) float64 {
	if text == "" {
		return 0.0
	}
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return 0.0
	}

	score := 0
	for _, raw := range tokens {
		t := strings.ToLower(strings.Trim(raw, ".,!?;:()[]\"'"))
		if _, ok := positiveWords[t]; ok {
			score++
		}
		if _, ok := negativeWords[t]; ok {
			score--
		}
	}

	norm := float64(len(tokens)) / 4.0
	if norm < 1 {
		norm = 1
	}
	return clamp(float64(score) / norm)
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

// Average scores every text with the analyzer and returns the arithmetic mean
// plus its classification. Empty input is Neutral/0.0, not an error.
func Average(a Analyzer, texts []string) (float64, Classification) {
	if len(texts) == 0 {
		return 0.0, Neutral
	}
	sum := 0.0
	for _, t := range texts {
		sum += a.Score(t)
	}
	return sum / float64(len(texts)), Classify(sum / float64(len(texts)))
}

// Classify applies the fixed thresholds: >0.1 Positive, <-0.1 Negative.
func Classify(mean float64) Classification {
	switch {
	case mean > 0.1:
		return Positive
	case mean < -0.1:
		return Negative
	default:
		return Neutral
	}
}
