package pipeline

import (
	"strings"
	"unicode"
)

// removeFillerWords implements §4.2: drops words whose normalized form
// is in the fixed filler set. Normalization case-folds to lowercase and
// strips leading/trailing punctuation and symbol runes. Running this
// twice on its own output is a no-op (idempotent), since nothing it
// leaves behind can normalize down to a filler that wasn't already
// removed.
func removeFillerWords(words []WordTiming) []WordTiming {
	if len(words) == 0 {
		return words
	}

	out := make([]WordTiming, 0, len(words))
	for _, w := range words {
		if fillerWords[normalizeForFillerCheck(w.Word)] {
			continue
		}
		out = append(out, w)
	}
	return out
}

// normalizeForFillerCheck lowercases and trims leading/trailing
// punctuation/symbol characters, so "Um," and "(uh)" both match their
// bare entries in fillerWords.
func normalizeForFillerCheck(word string) string {
	lower := strings.ToLower(word)
	return strings.TrimFunc(lower, isPunctOrSymbol)
}

func isPunctOrSymbol(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
