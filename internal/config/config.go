// Package config parses the flags the mergetranscript CLI needs. It
// mirrors the teacher's internal/config package: a flat Config struct
// filled by a single Load() that owns flag.Parse().
package config

import "flag"

// Config holds the mergetranscript CLI's settings.
type Config struct {
	ASRFile         string // Path to the ASR result JSON ({text, duration, token_timings})
	DiarizationFile string // Path to the diarization result JSON ({segments}); optional
	Format          string // Output format: text|markdown|json|srt|vtt
	RemoveFillers   bool   // Strip filler words before grouping
	SourceFile      string // Recorded into output metadata only
}

// Load parses command-line flags into a Config.
func Load() *Config {
	asrFile := flag.String("asr-file", "", "Path to ASR result JSON (required)")
	diarizationFile := flag.String("diarization-file", "", "Path to diarization result JSON (optional)")
	format := flag.String("format", "text", "Output format: text|markdown|json|srt|vtt")
	removeFillers := flag.Bool("remove-fillers", false, "Strip filler words before grouping")
	sourceFile := flag.String("source-file", "", "Source audio file name, recorded in output metadata")

	flag.Parse()

	return &Config{
		ASRFile:         *asrFile,
		DiarizationFile: *diarizationFile,
		Format:          *format,
		RemoveFillers:   *removeFillers,
		SourceFile:      *sourceFile,
	}
}
