package pipeline

// Tuning constants fixed by design (spec, not configuration). None of
// these are exposed for the caller to override — changing them changes
// the pipeline's behavior and needs a regression run, not a config flag.
const (
	// continuityBonus is added to the previous speaker's overlap tally in
	// stage 3, so a near-tie at a turn boundary resolves toward continuity.
	continuityBonus = 0.08

	// fallbackSearchRadius bounds the nearest-segment fallback in stage 3:
	// a word with zero overlap against every diarization segment is only
	// assigned if some segment's nearest edge is within this many seconds
	// of the word's midpoint.
	fallbackSearchRadius = 2.0

	// snapPauseThreshold is the inter-word gap, in seconds, below which two
	// consecutive words are considered "continuous speech" for stage 4 —
	// a speaker boundary landing inside a continuous run is suspect.
	snapPauseThreshold = 0.3

	// snapWordCap and snapDurationCap bound how far stage 4 will look
	// ahead for a real pause before giving up on snapping a boundary.
	snapWordCap     = 3
	snapDurationCap = 2.0

	// shortRunThreshold is the minimum wall-clock duration a speaker run
	// must have after stage 5; shorter runs get folded into a neighbor.
	shortRunThreshold = 1.5

	// sentencePauseGap is the inter-word gap that stage 6 treats as a
	// sentence boundary even without terminal punctuation.
	sentencePauseGap = 1.0

	// lookaheadWords is how many words ahead stage 6 checks for a
	// same-speaker-but-about-to-change situation, gated by lookaheadGap.
	lookaheadWords = 3
	lookaheadGap   = 0.15

	// maxSegmentDuration is the safety cap (§4.6 rule 6): once the
	// accumulated segment spans this many seconds and contains a speaker
	// change, it is split at the last speaker change, even if no sentence
	// boundary or pause has appeared. A segment with no speaker change
	// inside it is not split by the cap and may run longer.
	maxSegmentDuration = 30.0
)

// sentenceEnders is the fixed set of characters that end a sentence for
// the punctuation-based boundary detector (§4.6 rule 3). Implementers may
// extend this set, but the 30s safety cap above must stay in place to
// bound segment length when punctuation never appears.
var sentenceEnders = map[byte]bool{
	'.': true,
	'!': true,
	'?': true,
}

// fillerWords is the fixed, English-centric set of single-word fillers
// stage 2 removes when enabled. Deliberately narrow — see spec.md §4.2/§9
// on why this list stays small instead of growing into a general
// disfluency model.
var fillerWords = map[string]bool{
	"um": true, "uh": true, "umm": true, "uhh": true,
	"hmm": true, "hm": true, "er": true, "ah": true,
	"erm": true, "eh": true, "mm": true,
}
