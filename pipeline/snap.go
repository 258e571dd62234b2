package pipeline

// snapTransitionsToPauses implements §4.4: mutates words in place,
// reattaching boundary-lagged words back to the outgoing speaker when the
// diarizer's transition lands inside continuous speech.
//
// Running this pass twice is a fixed point: the first pass leaves every
// remaining speaker-change boundary either real (gap >= snapPauseThreshold)
// or un-snappable (no real pause found within the caps), and neither
// condition changes on a second pass over the same data.
func snapTransitionsToPauses(words []AttributedWord) {
	n := len(words)
	i := 1
	for i < n {
		prev, cur := words[i-1], words[i]
		if prev.Speaker == nil || cur.Speaker == nil || *prev.Speaker == *cur.Speaker {
			i++
			continue
		}

		gap := cur.Word.Start - prev.Word.End
		if gap >= snapPauseThreshold {
			i++
			continue
		}

		snapPoint, found := findSnapPoint(words, i)
		if !found {
			i++
			continue
		}

		for k := i; k < snapPoint; k++ {
			words[k].Speaker = prev.Speaker
		}
		i = snapPoint + 1
	}
}

// findSnapPoint scans forward from i while the run stays on the new
// speaker, bounded by the word and duration caps, looking for the first
// real pause. Returns the index of the word right after that pause
// (the "snap point") and whether one was found within the caps.
func findSnapPoint(words []AttributedWord, i int) (int, bool) {
	n := len(words)
	newSpeaker := words[i].Speaker
	duration := words[i].Word.End - words[i].Word.Start

	for j := i + 1; j < n && j-i <= snapWordCap && duration < snapDurationCap; j++ {
		if words[j].Speaker == nil || *words[j].Speaker != *newSpeaker {
			break
		}

		gap := words[j].Word.Start - words[j-1].Word.End
		if gap >= snapPauseThreshold {
			return j, true
		}

		duration += words[j].Word.End - words[j].Word.Start
	}

	return 0, false
}
