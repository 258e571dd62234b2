// Command mergetranscript drives pipeline.MergeResults from files on
// disk: an ASR result JSON and an optional diarization result JSON. It
// is the concrete "no file/wire/CLI surface at the core" collaborator —
// the CLI lives outside package pipeline entirely, the way the teacher
// keeps its own small diagnostic binaries (cmd/testregions, cmd/testfull)
// separate from the ai package they exercise.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/askidmobile/turnsplit/format"
	"github.com/askidmobile/turnsplit/internal/config"
	"github.com/askidmobile/turnsplit/pipeline"
)

// asrFile and diarizationFile mirror the ASRResult/DiarizationResult
// wire shapes from spec.md §6, independent of the pipeline package's
// internal Go types.
type asrFile struct {
	Text         string            `json:"text"`
	Duration     float64           `json:"duration"`
	TokenTimings []tokenTimingJSON `json:"token_timings"`
}

type tokenTimingJSON struct {
	Token      string  `json:"token"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	Confidence float64 `json:"confidence"`
}

type diarizationFile struct {
	Segments []speakerSegmentJSON `json:"segments"`
}

type speakerSegmentJSON struct {
	SpeakerID string  `json:"speaker_id"`
	Start     float64 `json:"start"`
	End       float64 `json:"end"`
}

func main() {
	cfg := config.Load()
	runID := pipeline.NewRunID()

	if cfg.ASRFile == "" {
		log.Fatalf("[%s] -asr-file is required", runID)
	}

	asr, err := loadASRFile(cfg.ASRFile)
	if err != nil {
		log.Fatalf("[%s] failed to read ASR file: %v", runID, err)
	}

	var diarization *pipeline.DiarizationResult
	if cfg.DiarizationFile != "" {
		diarization, err = loadDiarizationFile(cfg.DiarizationFile)
		if err != nil {
			log.Fatalf("[%s] failed to read diarization file: %v", runID, err)
		}
	}

	log.Printf("[%s] merging %d tokens, diarization=%v, remove_fillers=%v",
		runID, len(asr.TokenTimings), diarization != nil, cfg.RemoveFillers)

	segments := pipeline.MergeResults(*asr, diarization, cfg.RemoveFillers)

	meta := format.Metadata{
		Duration:   asr.Duration,
		Speakers:   distinctSpeakers(segments),
		SourceFile: cfg.SourceFile,
	}

	if err := writeOutput(os.Stdout, cfg.Format, meta, segments); err != nil {
		log.Fatalf("[%s] %v", runID, err)
	}
}

func loadASRFile(path string) (*pipeline.ASRResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var raw asrFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	tokens := make([]pipeline.TokenTiming, len(raw.TokenTimings))
	for i, t := range raw.TokenTimings {
		tokens[i] = pipeline.TokenTiming{
			Token:      t.Token,
			Start:      t.Start,
			End:        t.End,
			Confidence: t.Confidence,
		}
	}

	return &pipeline.ASRResult{
		Text:         raw.Text,
		Duration:     raw.Duration,
		TokenTimings: tokens,
	}, nil
}

func loadDiarizationFile(path string) (*pipeline.DiarizationResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var raw diarizationFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	segments := make([]pipeline.SpeakerSegment, len(raw.Segments))
	for i, s := range raw.Segments {
		segments[i] = pipeline.SpeakerSegment{
			SpeakerID: s.SpeakerID,
			Start:     s.Start,
			End:       s.End,
		}
	}

	return &pipeline.DiarizationResult{Segments: segments}, nil
}

func distinctSpeakers(segments []pipeline.TranscriptSegment) []string {
	seen := make(map[string]bool)
	var out []string
	for _, s := range segments {
		if s.Speaker == nil || seen[*s.Speaker] {
			continue
		}
		seen[*s.Speaker] = true
		out = append(out, *s.Speaker)
	}
	return out
}

func writeOutput(w *os.File, outputFormat string, meta format.Metadata, segments []pipeline.TranscriptSegment) error {
	switch outputFormat {
	case "text":
		fmt.Fprint(w, format.Text(segments))
	case "markdown":
		fmt.Fprint(w, format.Markdown(segments))
	case "json":
		data, err := format.JSON(meta, segments)
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		fmt.Fprintln(w, string(data))
	case "srt":
		fmt.Fprint(w, format.SRT(segments))
	case "vtt":
		fmt.Fprint(w, format.VTT(segments))
	default:
		return fmt.Errorf("unknown -format %q", outputFormat)
	}
	return nil
}
