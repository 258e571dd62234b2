package pipeline

import (
	"strings"

	"gonum.org/v1/gonum/stat"
)

// mergeTokensToWords implements §4.1: a token beginning with whitespace
// opens a new word, subsequent non-whitespace-leading tokens extend it.
// The opening whitespace is trimmed from the word text; a token stream
// that begins mid-word (no leading-whitespace token) still yields a word
// starting at the first token, and a trailing partial word is emitted at
// end-of-stream.
func mergeTokensToWords(tokens []TokenTiming) []WordTiming {
	if len(tokens) == 0 {
		return nil
	}

	words := make([]WordTiming, 0, len(tokens))
	var current []TokenTiming

	flush := func() {
		if len(current) == 0 {
			return
		}
		words = append(words, buildWord(current))
		current = nil
	}

	for _, tok := range tokens {
		if tokenStartsWord(tok.Token) && len(current) > 0 {
			flush()
		}
		current = append(current, tok)
	}
	flush()

	return words
}

// tokenStartsWord reports whether tok opens a new word: its first
// rune is a space, tab, or newline.
func tokenStartsWord(tok string) bool {
	if tok == "" {
		return false
	}
	switch tok[0] {
	case ' ', '\t', '\n':
		return true
	default:
		return false
	}
}

// buildWord aggregates one or more contributing tokens into a WordTiming.
func buildWord(toks []TokenTiming) WordTiming {
	text := strings.Join(tokenTexts(toks), "")
	text = strings.TrimLeft(text, " \t\n")

	confidences := make([]float64, len(toks))
	for i, t := range toks {
		confidences[i] = t.Confidence
	}

	var confidence float64
	if len(confidences) > 0 {
		confidence = stat.Mean(confidences, nil)
	}

	return WordTiming{
		Word:       text,
		Start:      toks[0].Start,
		End:        toks[len(toks)-1].End,
		Confidence: confidence,
	}
}

func tokenTexts(toks []TokenTiming) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Token
	}
	return out
}
