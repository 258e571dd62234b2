// Package pipeline converts time-stamped ASR tokens and diarization
// segments into a clean, per-speaker, sentence-aligned transcript. It is
// pure CPU computation: no I/O, no goroutines, no shared mutable state,
// so a single *pipeline.MergeResults* call is safe to run concurrently
// with any other call on disjoint inputs.
package pipeline

// TokenTiming is an indivisible ASR unit: a subword token with a span and
// confidence. Token may begin with whitespace (space, newline, tab)
// marking a word boundary, SentencePiece-style. Ordered by Start; input
// only, never mutated.
type TokenTiming struct {
	Token      string
	Start      float64
	End        float64
	Confidence float64
}

// WordTiming is a whole word with an aggregated span: Start is the first
// contributing token's start, End is the last contributing token's end,
// Confidence is the mean of contributing token confidences.
type WordTiming struct {
	Word       string
	Start      float64
	End        float64
	Confidence float64
}

// SpeakerSegment is one diarizer-produced speaker interval. SpeakerID is
// opaque and stable within a single diarization result; segments may
// overlap and need not cover the full timeline.
type SpeakerSegment struct {
	SpeakerID string
	Start     float64
	End       float64
}

// AttributedWord pairs a word with a tentative speaker assignment.
// Speaker is nil when no diarization segment was close enough to assign.
// Built by stage 3, mutated only by stages 4 and 5.
type AttributedWord struct {
	Word    WordTiming
	Speaker *string
}

// TranscriptSegment is one output chunk: a time span, its joined text,
// and the speaker that contributed the most speaking time within it
// (nil if every contributing word is itself unassigned).
type TranscriptSegment struct {
	Start   float64
	End     float64
	Text    string
	Speaker *string
}

// ASRResult is the ASR collaborator's output: Text is used only as the
// trivial-segment fallback (see MergeResults), Duration bounds that
// fallback segment, TokenTimings drives the real pipeline when present.
type ASRResult struct {
	Text         string
	Duration     float64
	TokenTimings []TokenTiming
}

// DiarizationResult is the diarization collaborator's output. A nil
// *DiarizationResult passed to MergeResults takes the diarization-free
// codepath (§4.7).
type DiarizationResult struct {
	Segments []SpeakerSegment
}

// strPtr is the small helper every stage uses to produce the optional
// speaker fields above without repeating &s at every call site.
func strPtr(s string) *string {
	return &s
}
