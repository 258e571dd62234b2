package pipeline

import "testing"

func TestAbsorbNilSpeakers_ClosestNeighborWins(t *testing.T) {
	words := []AttributedWord{
		attr("a", 0, 1, "A"),
		{Word: WordTiming{Word: "gap", Start: 1.1, End: 1.3}}, // closer to the A at 1.0 than the B at 2.0
		attr("b", 2.0, 2.5, "B"),
	}

	absorbNilSpeakers(words)

	if words[1].Speaker == nil || *words[1].Speaker != "A" {
		t.Fatalf("nil word speaker = %v, want A (nearer neighbor)", words[1].Speaker)
	}
}

func TestAbsorbNilSpeakers_TieGoesBackward(t *testing.T) {
	words := []AttributedWord{
		attr("a", 0, 1, "A"),
		{Word: WordTiming{Word: "gap", Start: 1.5, End: 1.5}}, // equidistant: 0.5s both sides
		attr("b", 2.0, 2.5, "B"),
	}

	absorbNilSpeakers(words)

	if words[1].Speaker == nil || *words[1].Speaker != "A" {
		t.Fatalf("tied nil word speaker = %v, want A (backward tie-break)", words[1].Speaker)
	}
}

func TestAbsorbNilSpeakers_NoNeighborsStaysNil(t *testing.T) {
	words := []AttributedWord{
		{Word: WordTiming{Word: "alone", Start: 0, End: 1}},
	}

	absorbNilSpeakers(words)

	if words[0].Speaker != nil {
		t.Fatalf("expected nil speaker with no non-nil neighbors, got %v", *words[0].Speaker)
	}
}

func TestAbsorbNilSpeakers_OneSidedNeighbor(t *testing.T) {
	words := []AttributedWord{
		{Word: WordTiming{Word: "lead", Start: 0, End: 1}},
		attr("a", 1.1, 2, "A"),
	}

	absorbNilSpeakers(words)

	if words[0].Speaker == nil || *words[0].Speaker != "A" {
		t.Fatalf("leading nil word speaker = %v, want A (only forward neighbor)", words[0].Speaker)
	}
}

// TestSmoothShortRuns_ScenarioC is Scenario C from spec.md §8.
func TestSmoothShortRuns_ScenarioC(t *testing.T) {
	words := []AttributedWord{
		attr("w0", 0.0, 0.3, "A"),
		attr("w1", 0.3, 0.6, "A"),
		attr("w2", 0.6, 0.9, "A"),
		attr("w3", 0.9, 1.0, "B"), // 0.1s run, well under the 1.5s threshold
		attr("w4", 1.0, 1.45, "A"),
		attr("w5", 1.45, 1.9, "A"),
	}

	smoothShortRuns(words)

	for i, w := range words {
		if w.Speaker == nil || *w.Speaker != "A" {
			t.Errorf("word %d speaker = %v, want A (B run absorbed)", i, w.Speaker)
		}
	}
}

func TestSmoothShortRuns_AboveThresholdUntouched(t *testing.T) {
	words := []AttributedWord{
		attr("a", 0, 2, "A"),
		attr("b", 2, 4, "B"),
	}

	smoothShortRuns(words)

	if *words[0].Speaker != "A" || *words[1].Speaker != "B" {
		t.Errorf("runs above threshold were altered: %v / %v", *words[0].Speaker, *words[1].Speaker)
	}
}

func TestSmoothShortRuns_MinimumRunLengthInvariant(t *testing.T) {
	words := []AttributedWord{
		attr("a", 0.0, 0.2, "A"),
		attr("b", 0.2, 0.3, "B"),
		attr("a2", 0.3, 0.5, "A"),
		attr("c", 0.5, 0.6, "C"),
		attr("a3", 0.6, 3.0, "A"),
	}

	smoothShortRuns(words)

	runs := buildRuns(words)
	if len(runs) > 1 {
		for _, r := range runs {
			if r.duration(words) < shortRunThreshold {
				t.Errorf("run %+v has sub-threshold duration %v with %d runs remaining", r, r.duration(words), len(runs))
			}
		}
	}
}

func TestSmoothShortRuns_SingleRunNoop(t *testing.T) {
	words := []AttributedWord{
		attr("a", 0, 0.1, "A"),
		attr("b", 0.1, 0.2, "A"),
	}

	smoothShortRuns(words)

	if *words[0].Speaker != "A" || *words[1].Speaker != "A" {
		t.Errorf("single-run input should be a no-op")
	}
}
