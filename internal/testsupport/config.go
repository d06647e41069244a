// Package testsupport provides fixtures shared by the package tests:
// configs seeded with per-test temp directories, valid WAV files of a
// chosen duration, and transcription spreadsheets.
package testsupport

import (
	"path/filepath"
	"testing"

	"speechprep/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// The audio dir and output dir exist; the spreadsheet path points into the
// temp tree but is not created, so tests decide what (if anything) lives
// there.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.AudioDir = filepath.Join(base, "audio")
	cfg.Paths.Spreadsheet = filepath.Join(base, "speeches.xlsx")
	cfg.Paths.OutputDir = filepath.Join(base, "filtered")
	cfg.Paths.SentencesFile = filepath.Join(base, "sentences.txt")
	cfg.Paths.CleanedFile = filepath.Join(base, "sentences_cleaned.txt")

	MkdirAll(t, cfg.Paths.AudioDir)
	MkdirAll(t, cfg.Paths.OutputDir)

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithDurationRange overrides the selection thresholds on the test config.
func WithDurationRange(min, max, target float64) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Filter.MinDurationSec = min
		cfg.Filter.MaxDurationSec = max
		cfg.Filter.TargetDurationSec = target
	}
}
