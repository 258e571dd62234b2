package pipeline

import "gonum.org/v1/gonum/floats"

// assignSpeakers implements §4.3: per-word overlap-with-continuity-bias
// assignment against the diarization segments. It builds the initial
// AttributedWord slice stages 4 and 5 will mutate in place.
//
// Tie-break (spec.md §9): the overlap tally is accumulated by walking
// segments in the order they appear in the diarization result, so
// floats.MaxIdx's "first index attaining the max" rule resolves ties in
// favor of whichever candidate speaker was first seen in that order —
// deterministic and stable across runs.
func assignSpeakers(words []WordTiming, segments []SpeakerSegment) []AttributedWord {
	out := make([]AttributedWord, len(words))

	var prevSpeaker *string
	for i, w := range words {
		speaker := assignOneWord(w, segments, prevSpeaker)
		out[i] = AttributedWord{Word: w, Speaker: speaker}
		if speaker != nil {
			prevSpeaker = speaker
		}
	}

	return out
}

func assignOneWord(w WordTiming, segments []SpeakerSegment, prevSpeaker *string) *string {
	order, tally := overlapTally(w, segments)

	if prevSpeaker != nil {
		if idx, ok := order[*prevSpeaker]; ok {
			tally[idx] += continuityBonus
		}
	}

	if len(tally) > 0 {
		winner := floats.MaxIdx(tally)
		return strPtr(speakerAt(order, winner))
	}

	return nearestSegmentFallback(w, segments)
}

// overlapTally computes, for each distinct speaker overlapping w, the
// total overlap duration. order maps a speaker id to its index in the
// parallel tally slice, with indices assigned in first-seen (i.e. input
// segment) order.
func overlapTally(w WordTiming, segments []SpeakerSegment) (order map[string]int, tally []float64) {
	order = make(map[string]int)
	for _, seg := range segments {
		overlap := intervalOverlap(w.Start, w.End, seg.Start, seg.End)
		if overlap <= 0 {
			continue
		}
		idx, ok := order[seg.SpeakerID]
		if !ok {
			idx = len(tally)
			order[seg.SpeakerID] = idx
			tally = append(tally, 0)
		}
		tally[idx] += overlap
	}
	return order, tally
}

func speakerAt(order map[string]int, idx int) string {
	for speaker, i := range order {
		if i == idx {
			return speaker
		}
	}
	return ""
}

// intervalOverlap is the clamped-at-zero length of the intersection of
// [aStart, aEnd] and [bStart, bEnd].
func intervalOverlap(aStart, aEnd, bStart, bEnd float64) float64 {
	start := aStart
	if bStart > start {
		start = bStart
	}
	end := aEnd
	if bEnd < end {
		end = bEnd
	}
	overlap := end - start
	if overlap < 0 {
		return 0
	}
	return overlap
}

// nearestSegmentFallback handles the empty-overlap case (§4.3 rule 4):
// find the segment whose interval is closest to the word's midpoint; use
// it if within fallbackSearchRadius, otherwise leave the word unassigned.
func nearestSegmentFallback(w WordTiming, segments []SpeakerSegment) *string {
	if len(segments) == 0 {
		return nil
	}

	mid := (w.Start + w.End) / 2
	best := -1
	bestDist := 0.0

	for i, seg := range segments {
		dist := distanceToInterval(mid, seg.Start, seg.End)
		if best == -1 || dist < bestDist {
			best = i
			bestDist = dist
		}
	}

	if best == -1 || bestDist > fallbackSearchRadius {
		return nil
	}
	return strPtr(segments[best].SpeakerID)
}

// distanceToInterval is 0 when point falls inside [start, end], and the
// distance to the nearer edge otherwise.
func distanceToInterval(point, start, end float64) float64 {
	if point < start {
		return start - point
	}
	if point > end {
		return point - end
	}
	return 0
}
