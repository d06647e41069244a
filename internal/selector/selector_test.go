package selector_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"speechprep/internal/config"
	"speechprep/internal/logging"
	"speechprep/internal/selector"
	"speechprep/internal/services"
	"speechprep/internal/testsupport"
)

// fakeProber returns fixed durations keyed by base filename and errors for
// anything unlisted, standing in for unreadable audio.
type fakeProber struct {
	durations map[string]float64
}

func (f fakeProber) Duration(path string) (float64, error) {
	d, ok := f.durations[filepath.Base(path)]
	if !ok {
		return 0, errors.New("unreadable audio")
	}
	return d, nil
}

func writeClip(t *testing.T, cfg *config.Config, name, body string) string {
	t.Helper()
	path := filepath.Join(cfg.Paths.AudioDir, name)
	testsupport.WriteTextFile(t, path, body)
	return path
}

func defaultSpreadsheet(t *testing.T, cfg *config.Config, rows []testsupport.SpreadsheetRow) {
	t.Helper()
	testsupport.WriteSpreadsheet(t, cfg.Paths.Spreadsheet, cfg.Catalog.IDColumn, cfg.Catalog.TextColumn, rows)
}

func TestRunFiltersCopiesAndJoins(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	defaultSpreadsheet(t, cfg, []testsupport.SpreadsheetRow{
		{ID: 41, Text: "короткий клип"},
		{ID: 42, Text: "ровно двенадцать секунд"},
		{ID: 43, Text: "почти пятнадцать"},
	})
	writeClip(t, cfg, "41.wav", "clip-41")
	writeClip(t, cfg, "42.wav", "clip-42")
	writeClip(t, cfg, "43.wav", "clip-43")

	prober := fakeProber{durations: map[string]float64{
		"41.wav": 8.0,
		"42.wav": 12.0,
		"43.wav": 14.5,
	}}

	records, err := selector.New(cfg, prober, logging.NewNop()).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records: got %d, want 2", len(records))
	}

	first := records[0]
	if first.FileID != "42" || first.Filename != "42.wav" || first.DurationSec != 12.0 {
		t.Fatalf("unexpected first record: %+v", first)
	}
	if first.Transcription != "ровно двенадцать секунд" {
		t.Fatalf("transcription join failed: %+v", first)
	}
	if first.TextLength != len([]rune(first.Transcription)) {
		t.Fatalf("text length must count runes: %+v", first)
	}

	copied, err := os.ReadFile(filepath.Join(cfg.Paths.OutputDir, selector.AudioSubdir, "42.wav"))
	if err != nil {
		t.Fatalf("read copy: %v", err)
	}
	if string(copied) != "clip-42" {
		t.Fatalf("copy content mismatch: %q", copied)
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.OutputDir, selector.AudioSubdir, "41.wav")); !errors.Is(err, os.ErrNotExist) {
		t.Fatal("out-of-range clip must not be copied")
	}
}

func TestRunMissingTranscriptionKeepsRecord(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	defaultSpreadsheet(t, cfg, nil)
	writeClip(t, cfg, "7.wav", "clip-7")

	records, err := selector.New(cfg, fakeProber{durations: map[string]float64{"7.wav": 11.0}}, logging.NewNop()).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records: got %d, want 1", len(records))
	}
	if records[0].Transcription != "" || records[0].TextLength != 0 {
		t.Fatalf("expected empty transcription, got %+v", records[0])
	}
}

func TestRunSkipsUnreadableAudio(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	defaultSpreadsheet(t, cfg, []testsupport.SpreadsheetRow{{ID: 1, Text: "х"}})
	writeClip(t, cfg, "1.wav", "good")
	writeClip(t, cfg, "2.wav", "bad")

	prober := fakeProber{durations: map[string]float64{"1.wav": 12.0}}
	records, err := selector.New(cfg, prober, logging.NewNop()).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(records) != 1 || records[0].FileID != "1" {
		t.Fatalf("unexpected records: %+v", records)
	}
}

func TestRunMissingAudioDir(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	defaultSpreadsheet(t, cfg, nil)
	if err := os.RemoveAll(cfg.Paths.AudioDir); err != nil {
		t.Fatal(err)
	}

	_, err := selector.New(cfg, fakeProber{}, logging.NewNop()).Run(context.Background())
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRunMissingSpreadsheet(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	_, err := selector.New(cfg, fakeProber{}, logging.NewNop()).Run(context.Background())
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	defaultSpreadsheet(t, cfg, []testsupport.SpreadsheetRow{{ID: 5, Text: "пять"}})
	writeClip(t, cfg, "5.wav", "clip-5")

	sel := selector.New(cfg, fakeProber{durations: map[string]float64{"5.wav": 13.0}}, logging.NewNop())

	first, err := sel.Run(context.Background())
	if err != nil {
		t.Fatalf("first Run: %v", err)
	}
	second, err := sel.Run(context.Background())
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if len(first) != 1 || len(second) != 1 || first[0] != second[0] {
		t.Fatalf("reruns must match: first=%+v second=%+v", first, second)
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	defaultSpreadsheet(t, cfg, nil)
	writeClip(t, cfg, "1.wav", "clip")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := selector.New(cfg, fakeProber{durations: map[string]float64{"1.wav": 12.0}}, logging.NewNop()).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
