package pipeline

import (
	"strings"

	"gonum.org/v1/gonum/floats"
)

// groupWords implements both §4.6 (speakerGated == true, the normal
// diarization-driven path) and §4.7 (speakerGated == false, the
// diarization-free degenerate path) through one shared accumulator loop —
// the two differ only in whether a boundary alone is enough to emit, or
// whether it must also coincide with (or look ahead to) a speaker change.
func groupWords(words []AttributedWord, speakerGated bool) []TranscriptSegment {
	n := len(words)
	if n == 0 {
		return nil
	}

	var segments []TranscriptSegment
	segStart := 0
	lastChangeIdx := -1

	for i := 0; i < n; i++ {
		if i > segStart && !sameSpeaker(words[i].Speaker, words[i-1].Speaker) {
			lastChangeIdx = i
		}

		if emitOnWord(words, i, segStart, speakerGated) {
			segments = append(segments, buildSegment(words, segStart, i))
			segStart = i + 1
			lastChangeIdx = -1
			continue
		}

		if split := trySafetyCap(words, i, segStart, lastChangeIdx); split >= 0 {
			segments = append(segments, buildSegment(words, segStart, split-1))
			segStart = split
			lastChangeIdx = -1
		}
	}

	if segStart < n {
		segments = append(segments, buildSegment(words, segStart, n-1))
	}

	return segments
}

// emitOnWord decides rules 4 and 5 of §4.6 (or the simpler §4.7 rule) for
// word i: whether the accumulator [segStart, i] should be emitted now.
func emitOnWord(words []AttributedWord, i, segStart int, speakerGated bool) bool {
	if !isBoundary(words, i) {
		return false
	}

	if !speakerGated {
		// §4.7: boundary alone is the emit rule, no speaker gate.
		return true
	}

	hasNext := i+1 < len(words)
	if !hasNext {
		return false
	}

	if !sameSpeaker(words[i].Speaker, words[i+1].Speaker) {
		// Rule 4: clean split — boundary and an immediate speaker change.
		return true
	}

	// Rule 5: lookahead split — boundary, same next speaker, but a real
	// gap and a speaker change within the next few words.
	gap := words[i+1].Word.Start - words[i].Word.End
	return gap > lookaheadGap && lookaheadSpeakerChange(words, i)
}

// trySafetyCap implements §4.6 rule 6. It returns the index to split at
// (the start of the suffix to keep), or -1 if the cap doesn't apply yet.
func trySafetyCap(words []AttributedWord, i, segStart, lastChangeIdx int) int {
	if lastChangeIdx < 0 {
		return -1
	}
	duration := words[i].Word.End - words[segStart].Word.Start
	if duration < maxSegmentDuration {
		return -1
	}
	return lastChangeIdx
}

// isBoundary implements §4.6 rule 3: sentence end or a pause to the next
// word (no next word means no pause boundary from that rule, but a
// trailing sentence-ending word is still a boundary).
func isBoundary(words []AttributedWord, i int) bool {
	if isSentenceEnd(words[i].Word.Word) {
		return true
	}
	if i+1 < len(words) {
		gap := words[i+1].Word.Start - words[i].Word.End
		if gap > sentencePauseGap {
			return true
		}
	}
	return false
}

func isSentenceEnd(word string) bool {
	if word == "" {
		return false
	}
	return sentenceEnders[word[len(word)-1]]
}

// lookaheadSpeakerChange checks the next lookaheadWords words for any
// speaker different from words[i]'s.
func lookaheadSpeakerChange(words []AttributedWord, i int) bool {
	n := len(words)
	for j := i + 1; j <= i+lookaheadWords && j < n; j++ {
		if !sameSpeaker(words[j].Speaker, words[i].Speaker) {
			return true
		}
	}
	return false
}

// buildSegment folds words[start:end+1] into one TranscriptSegment. The
// segment's speaker is whichever speaker owns the largest summed word
// duration inside the span (insertion order breaks ties, matching the
// stage-3 argmax convention); a segment with no non-nil word stays nil.
func buildSegment(words []AttributedWord, start, end int) TranscriptSegment {
	texts := make([]string, 0, end-start+1)
	durations := make(map[string]float64)
	order := make(map[string]int)
	var keys []string

	for i := start; i <= end; i++ {
		texts = append(texts, words[i].Word.Word)
		if words[i].Speaker == nil {
			continue
		}
		speaker := *words[i].Speaker
		if _, ok := order[speaker]; !ok {
			order[speaker] = len(keys)
			keys = append(keys, speaker)
		}
		durations[speaker] += words[i].Word.End - words[i].Word.Start
	}

	seg := TranscriptSegment{
		Start: words[start].Word.Start,
		End:   words[end].Word.End,
		Text:  strings.Join(texts, " "),
	}

	if len(keys) > 0 {
		tally := make([]float64, len(keys))
		for i, k := range keys {
			tally[i] = durations[k]
		}
		seg.Speaker = strPtr(keys[floats.MaxIdx(tally)])
	}

	return seg
}
