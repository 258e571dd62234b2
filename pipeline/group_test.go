package pipeline

import (
	"fmt"
	"testing"
)

// TestGroupWords_ScenarioA is Scenario A from spec.md §8: a clean split at
// a sentence ending that also coincides with a speaker change.
func TestGroupWords_ScenarioA(t *testing.T) {
	words := []AttributedWord{
		attr("Hello", 0, 0.3, "A"),
		attr("world.", 0.4, 0.7, "A"),
		attr("How", 0.9, 1.1, "B"),
		attr("are", 1.2, 1.4, "B"),
		attr("you?", 1.5, 1.8, "B"),
	}

	segments := groupWords(words, true)

	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d: %+v", len(segments), segments)
	}
	if segments[0].Text != "Hello world." || segments[0].Start != 0 || segments[0].End != 0.7 {
		t.Errorf("segment 0 = %+v, want {0, 0.7, Hello world.}", segments[0])
	}
	if segments[0].Speaker == nil || *segments[0].Speaker != "A" {
		t.Errorf("segment 0 speaker = %v, want A", segments[0].Speaker)
	}
	if segments[1].Text != "How are you?" || segments[1].Start != 0.9 || segments[1].End != 1.8 {
		t.Errorf("segment 1 = %+v, want {0.9, 1.8, How are you?}", segments[1])
	}
	if segments[1].Speaker == nil || *segments[1].Speaker != "B" {
		t.Errorf("segment 1 speaker = %v, want B", segments[1].Speaker)
	}
}

// TestGroupWords_ScenarioE is Scenario E from spec.md §8: a lookahead
// split where the boundary word keeps its own speaker but a change lands
// within the next few words.
func TestGroupWords_ScenarioE(t *testing.T) {
	words := []AttributedWord{
		attr("sounds", 0, 0.4, "A"),
		attr("great.", 0.5, 1.0, "A"),
		attr("Thank", 1.2, 1.5, "A"),
		attr("you", 1.6, 1.8, "B"),
		attr("so", 1.9, 2.1, "B"),
		attr("much.", 2.2, 2.5, "B"),
	}

	segments := groupWords(words, true)

	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d: %+v", len(segments), segments)
	}
	if segments[0].Text != "sounds great." {
		t.Errorf("segment 0 text = %q, want %q", segments[0].Text, "sounds great.")
	}
	if segments[1].Text != "Thank you so much." {
		t.Errorf("segment 1 text = %q, want %q", segments[1].Text, "Thank you so much.")
	}
}

// TestGroupWords_ScenarioF is Scenario F from spec.md §8: a 30s run with no
// punctuation forces the safety cap to split at the last recorded speaker
// change rather than running on indefinitely.
func TestGroupWords_ScenarioF(t *testing.T) {
	words := make([]AttributedWord, 0, 72)
	for i := 0; i < 36; i++ {
		start := float64(i) * 0.5
		words = append(words, attr(fmt.Sprintf("a%d", i), start, start+0.5, "A"))
	}
	for i := 0; i < 36; i++ {
		start := 18.0 + float64(i)*0.5
		words = append(words, attr(fmt.Sprintf("b%d", i), start, start+0.5, "B"))
	}

	segments := groupWords(words, true)

	if len(segments) < 2 {
		t.Fatalf("expected safety cap to force at least 2 segments, got %d", len(segments))
	}
	if segments[0].End != 18.0 {
		t.Errorf("first segment end = %v, want 18.0 (split at last speaker change)", segments[0].End)
	}
	if segments[0].Speaker == nil || *segments[0].Speaker != "A" {
		t.Errorf("first segment speaker = %v, want A", segments[0].Speaker)
	}
	foundB := false
	for _, s := range segments[1:] {
		if s.Speaker != nil && *s.Speaker == "B" {
			foundB = true
		}
	}
	if !foundB {
		t.Errorf("no B-attributed segment found after the cap split: %+v", segments)
	}
}

func TestGroupWords_Empty(t *testing.T) {
	if got := groupWords(nil, true); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
}

// TestGroupWords_DiarizationFreeIgnoresSpeakerGate exercises §4.7: a pause
// boundary alone is enough to emit, with every segment carrying a nil
// speaker.
func TestGroupWords_DiarizationFreeIgnoresSpeakerGate(t *testing.T) {
	words := []AttributedWord{
		{Word: WordTiming{Word: "one", Start: 0, End: 0.5}},
		{Word: WordTiming{Word: "two", Start: 2.0, End: 2.5}}, // 1.5s gap: a boundary
	}

	segments := groupWords(words, false)

	if len(segments) != 2 {
		t.Fatalf("expected 2 segments split on pause alone, got %d", len(segments))
	}
	if segments[0].Speaker != nil || segments[1].Speaker != nil {
		t.Errorf("diarization-free segments must carry nil speakers, got %v / %v", segments[0].Speaker, segments[1].Speaker)
	}
}
