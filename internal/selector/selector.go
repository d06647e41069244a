package selector

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"speechprep/internal/audioprobe"
	"speechprep/internal/catalog"
	"speechprep/internal/config"
	"speechprep/internal/fileutil"
	"speechprep/internal/logging"
	"speechprep/internal/manifest"
	"speechprep/internal/services"
	"speechprep/internal/stats"
)

// AudioSubdir is the output subdirectory the retained copies land in.
const AudioSubdir = "audio"

// Selector filters and copies audio clips, producing manifest records.
type Selector struct {
	cfg    *config.Config
	prober audioprobe.Prober
	logger *slog.Logger
}

// New constructs a selector. The prober is injectable so tests can supply
// fixed durations without real audio files.
func New(cfg *config.Config, prober audioprobe.Prober, logger *slog.Logger) *Selector {
	return &Selector{
		cfg:    cfg,
		prober: prober,
		logger: logging.WithComponent(logger, "selector"),
	}
}

// Run performs the selection pass and returns the records in directory
// enumeration order. The context aborts the loop between files.
func (s *Selector) Run(ctx context.Context) ([]manifest.Record, error) {
	if err := s.validatePaths(); err != nil {
		return nil, err
	}
	if err := s.setupOutputDirs(); err != nil {
		return nil, err
	}

	cat, err := catalog.Load(s.cfg.Paths.Spreadsheet, catalog.Options{
		Sheet:      s.cfg.Catalog.Sheet,
		IDColumn:   s.cfg.Catalog.IDColumn,
		TextColumn: s.cfg.Catalog.TextColumn,
	}, s.logger)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "selection", "load transcriptions", "", err)
	}

	pattern := filepath.Join(s.cfg.Paths.AudioDir, "*"+s.cfg.Filter.AudioExtension)
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "selection", "enumerate audio", fmt.Sprintf("bad pattern %q", pattern), err)
	}
	s.logger.Info("found audio files", logging.Int("count", len(files)))

	records := make([]manifest.Record, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		duration, err := s.prober.Duration(file)
		if err != nil {
			// Already logged by the probe.
			continue
		}
		if duration < s.cfg.Filter.MinDurationSec || duration > s.cfg.Filter.MaxDurationSec {
			continue
		}

		record, err := s.retain(file, duration, cat)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	s.logger.Info("filtered audio files", logging.Int("count", len(records)))
	return records, nil
}

func (s *Selector) validatePaths() error {
	info, err := os.Stat(s.cfg.Paths.AudioDir)
	if err != nil || !info.IsDir() {
		return services.Wrap(services.ErrNotFound, "selection", "validate inputs",
			fmt.Sprintf("audio directory not found: %s", s.cfg.Paths.AudioDir), nil)
	}
	if _, err := os.Stat(s.cfg.Paths.Spreadsheet); err != nil {
		return services.Wrap(services.ErrNotFound, "selection", "validate inputs",
			fmt.Sprintf("spreadsheet not found: %s", s.cfg.Paths.Spreadsheet), nil)
	}
	return nil
}

func (s *Selector) setupOutputDirs() error {
	if err := os.MkdirAll(s.audioOutputDir(), 0o755); err != nil {
		return services.Wrap(services.ErrValidation, "selection", "create output directories", "", err)
	}
	return nil
}

func (s *Selector) audioOutputDir() string {
	return filepath.Join(s.cfg.Paths.OutputDir, AudioSubdir)
}

func (s *Selector) retain(file string, duration float64, cat *catalog.Catalog) (manifest.Record, error) {
	base := filepath.Base(file)
	fileID := strings.TrimSuffix(base, filepath.Ext(base))

	transcription, _ := cat.Lookup(fileID)
	if transcription == "" {
		s.logger.Warn("missing transcription", logging.String("file", base))
	}

	dest := filepath.Join(s.audioOutputDir(), base)
	if err := fileutil.CopyFilePreserve(file, dest); err != nil {
		return manifest.Record{}, services.Wrap(services.ErrValidation, "selection", "copy audio",
			fmt.Sprintf("copy %s", base), err)
	}

	return manifest.Record{
		FileID:        fileID,
		Filename:      base,
		DurationSec:   stats.Round2(duration),
		Transcription: transcription,
		TextLength:    utf8.RuneCountInString(transcription),
		OriginalPath:  file,
		NewPath:       dest,
	}, nil
}
