package pipeline

// absorbNilSpeakers implements the nil-absorption half of §4.5: each
// nil-speaker word takes on whichever non-nil neighbor (nearest by
// start/end distance, scanning outward in both directions) is closer,
// ties going to the backward neighbor. A word with no non-nil neighbor
// on either side stays nil.
func absorbNilSpeakers(words []AttributedWord) {
	n := len(words)
	for i := 0; i < n; i++ {
		if words[i].Speaker != nil {
			continue
		}

		backIdx := precedingNonNil(words, i)
		fwdIdx := followingNonNil(words, i)

		switch {
		case backIdx < 0 && fwdIdx < 0:
			continue
		case backIdx < 0:
			words[i].Speaker = words[fwdIdx].Speaker
		case fwdIdx < 0:
			words[i].Speaker = words[backIdx].Speaker
		default:
			backDist := words[i].Word.Start - words[backIdx].Word.End
			fwdDist := words[fwdIdx].Word.Start - words[i].Word.End
			if fwdDist < backDist {
				words[i].Speaker = words[fwdIdx].Speaker
			} else {
				words[i].Speaker = words[backIdx].Speaker
			}
		}
	}
}

func precedingNonNil(words []AttributedWord, i int) int {
	for j := i - 1; j >= 0; j-- {
		if words[j].Speaker != nil {
			return j
		}
	}
	return -1
}

func followingNonNil(words []AttributedWord, i int) int {
	for j := i + 1; j < len(words); j++ {
		if words[j].Speaker != nil {
			return j
		}
	}
	return -1
}

// run is a maximal contiguous index range [start, end) of words sharing
// the same speaker value (nil compares equal to nil).
type run struct {
	start, end int
	speaker    *string
}

func (r run) duration(words []AttributedWord) float64 {
	return words[r.end-1].Word.End - words[r.start].Word.Start
}

func sameSpeaker(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// buildRuns computes the run list for words on demand, as spec.md §3
// describes — it is never stored, only used within smoothShortRuns' loop.
func buildRuns(words []AttributedWord) []run {
	if len(words) == 0 {
		return nil
	}

	var runs []run
	start := 0
	for i := 1; i <= len(words); i++ {
		if i == len(words) || !sameSpeaker(words[i].Speaker, words[start].Speaker) {
			runs = append(runs, run{start: start, end: i, speaker: words[start].Speaker})
			start = i
		}
	}
	return runs
}

// smoothShortRuns implements the short-run-smoothing half of §4.5:
// repeatedly finds the shortest run by wall-clock duration and merges it
// into a neighbor until every run is at least shortRunThreshold long (or
// only one run remains). Termination is guaranteed because every merge
// reduces the run count by at least one.
func smoothShortRuns(words []AttributedWord) {
	for {
		runs := buildRuns(words)
		if len(runs) <= 1 {
			return
		}

		shortest := shortestRunIndex(runs, words)
		if runs[shortest].duration(words) >= shortRunThreshold {
			return
		}

		mergeTarget := mergeTargetFor(runs, shortest, words)
		mergeRun(words, runs[shortest], runs[mergeTarget].speaker)
	}
}

// shortestRunIndex returns the index, within runs, of the run with the
// smallest duration. Ties resolve to the leftmost (earliest) run since
// the scan only replaces the incumbent on a strictly smaller duration.
func shortestRunIndex(runs []run, words []AttributedWord) int {
	best := 0
	bestDuration := runs[0].duration(words)
	for i := 1; i < len(runs); i++ {
		d := runs[i].duration(words)
		if d < bestDuration {
			best = i
			bestDuration = d
		}
	}
	return best
}

// mergeTargetFor picks which neighboring run absorbs runs[shortest]: the
// only neighbor if it's a first/last run, otherwise whichever of the two
// neighbors is longer (ties toward the previous run).
func mergeTargetFor(runs []run, shortest int, words []AttributedWord) int {
	switch {
	case shortest == 0:
		return 1
	case shortest == len(runs)-1:
		return shortest - 1
	default:
		prevDur := runs[shortest-1].duration(words)
		nextDur := runs[shortest+1].duration(words)
		if nextDur > prevDur {
			return shortest + 1
		}
		return shortest - 1
	}
}

func mergeRun(words []AttributedWord, r run, speaker *string) {
	for i := r.start; i < r.end; i++ {
		words[i].Speaker = speaker
	}
}
