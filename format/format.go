// Package format turns a pipeline.TranscriptSegment list into the output
// shapes named in spec.md §6: plain text with [MM:SS] prefixes, Markdown
// with per-speaker blocks, structured JSON, and SRT/VTT subtitle cues.
// These are the "transcript-formatting collaborator" the pipeline core
// never touches directly — adapted from the pack's closest sibling tool,
// the AIDG merge-segments CLI, which writes exactly this set of shapes
// from a merged segment list.
package format

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/askidmobile/turnsplit/pipeline"
)

// Metadata accompanies a segment list into the JSON formatter: the fields
// that output shape needs beyond what a TranscriptSegment carries itself.
// The text, Markdown, SRT and VTT formatters take segments only.
type Metadata struct {
	Duration   float64  `json:"duration"`
	Speakers   []string `json:"speakers"`
	SourceFile string   `json:"source_file"`
}

// jsonSegment is the wire shape for one segment in the JSON formatter.
// pipeline.TranscriptSegment carries no JSON struct tags, so encoding it
// directly would use its Go field names and always emit the speaker; this
// re-declaration gives package format its own lowercase keys and omits a
// nil speaker.
type jsonSegment struct {
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Text    string  `json:"text"`
	Speaker *string `json:"speaker,omitempty"`
}

type jsonDocument struct {
	Metadata Metadata      `json:"metadata"`
	Segments []jsonSegment `json:"segments"`
}

// JSON renders segments as {"metadata": ..., "segments": [...]}.
func JSON(meta Metadata, segments []pipeline.TranscriptSegment) ([]byte, error) {
	doc := jsonDocument{Metadata: meta, Segments: make([]jsonSegment, len(segments))}
	for i, s := range segments {
		doc.Segments[i] = jsonSegment{Start: s.Start, End: s.End, Text: s.Text, Speaker: s.Speaker}
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Text renders one "[MM:SS] Speaker: text" line per segment.
func Text(segments []pipeline.TranscriptSegment) string {
	var b strings.Builder
	for _, s := range segments {
		fmt.Fprintf(&b, "[%s]%s %s\n", formatMMSS(s.Start), speakerPrefix(s.Speaker), s.Text)
	}
	return b.String()
}

// Markdown renders one heading per speaker change, each followed by the
// text of every segment attributed to that speaker until the next change.
func Markdown(segments []pipeline.TranscriptSegment) string {
	var b strings.Builder
	var currentSpeaker *string
	first := true

	for _, s := range segments {
		if first || !samePointerValue(currentSpeaker, s.Speaker) {
			if !first {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "### %s\n\n", speakerLabel(s.Speaker))
			currentSpeaker = s.Speaker
			first = false
		}
		fmt.Fprintf(&b, "%s *(%s)*\n\n", s.Text, formatMMSS(s.Start))
	}

	return b.String()
}

// SRT renders segments as numbered SubRip cues.
func SRT(segments []pipeline.TranscriptSegment) string {
	var b strings.Builder
	for i, s := range segments {
		fmt.Fprintf(&b, "%d\n%s --> %s\n%s%s\n\n",
			i+1, formatSRTTime(s.Start), formatSRTTime(s.End), speakerLabelPrefix(s.Speaker), s.Text)
	}
	return b.String()
}

// VTT renders segments as WebVTT cues.
func VTT(segments []pipeline.TranscriptSegment) string {
	var b strings.Builder
	b.WriteString("WEBVTT\n\n")
	for _, s := range segments {
		fmt.Fprintf(&b, "%s --> %s\n%s%s\n\n",
			formatVTTTime(s.Start), formatVTTTime(s.End), speakerLabelPrefix(s.Speaker), s.Text)
	}
	return b.String()
}

func speakerPrefix(speaker *string) string {
	if speaker == nil {
		return ""
	}
	return fmt.Sprintf(" %s:", *speaker)
}

func speakerLabel(speaker *string) string {
	if speaker == nil {
		return "Unknown"
	}
	return *speaker
}

func speakerLabelPrefix(speaker *string) string {
	if speaker == nil {
		return ""
	}
	return fmt.Sprintf("[%s] ", *speaker)
}

func samePointerValue(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// formatMMSS formats seconds as MM:SS, per spec.md §6's plain-text shape.
func formatMMSS(seconds float64) string {
	total := int(seconds)
	m := total / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d", m, s)
}

// formatSRTTime formats seconds as HH:MM:SS,mmm.
func formatSRTTime(seconds float64) string {
	h, m, s, ms := splitClock(seconds)
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}

// formatVTTTime formats seconds as HH:MM:SS.mmm.
func formatVTTTime(seconds float64) string {
	h, m, s, ms := splitClock(seconds)
	return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, s, ms)
}

func splitClock(seconds float64) (h, m, s, ms int) {
	totalMs := int(seconds*1000 + 0.5)
	ms = totalMs % 1000
	totalSeconds := totalMs / 1000
	s = totalSeconds % 60
	totalMinutes := totalSeconds / 60
	m = totalMinutes % 60
	h = totalMinutes / 60
	return
}
