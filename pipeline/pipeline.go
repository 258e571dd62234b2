package pipeline

import "strings"

// MergeResults is the pipeline's single exported entry point. It wires
// stages 1–6 (or the diarization-free 1–2–7 path when diarization is
// nil) into the ordered TranscriptSegment list described in spec.md §6.
//
// The core never errors: malformed or degenerate input is repaired or
// folded into the documented fallback returns, per spec.md §7.
func MergeResults(asr ASRResult, diarization *DiarizationResult, removeFillers bool) []TranscriptSegment {
	if len(asr.TokenTimings) == 0 {
		return trivialFallback(asr.Text, asr.Duration)
	}

	words := mergeTokensToWords(asr.TokenTimings)
	if removeFillers {
		words = removeFillerWords(words)
	}

	if len(words) == 0 {
		return trivialFallback("", asr.Duration)
	}

	if diarization == nil {
		return groupWithoutDiarization(words)
	}

	return groupWithDiarization(words, diarization.Segments)
}

// groupWithDiarization runs stages 3–6: assignment, snap repair,
// absorption + smoothing, then sentence-aware grouping gated on speaker
// changes.
func groupWithDiarization(words []WordTiming, segments []SpeakerSegment) []TranscriptSegment {
	attributed := assignSpeakers(words, segments)
	snapTransitionsToPauses(attributed)
	absorbNilSpeakers(attributed)
	smoothShortRuns(attributed)
	return groupWords(attributed, true)
}

// groupWithoutDiarization runs the §4.7 degenerate path: no per-word
// speaker assignment at all, grouping purely by sentence boundary or
// pause, with every segment carrying a nil speaker.
func groupWithoutDiarization(words []WordTiming) []TranscriptSegment {
	attributed := make([]AttributedWord, len(words))
	for i, w := range words {
		attributed[i] = AttributedWord{Word: w}
	}
	return groupWords(attributed, false)
}

// trivialFallback implements the two degenerate returns named in
// spec.md §6: no token timings, or an empty post-filler word list.
func trivialFallback(text string, duration float64) []TranscriptSegment {
	return []TranscriptSegment{{
		Start: 0,
		End:   duration,
		Text:  strings.TrimSpace(text),
	}}
}
