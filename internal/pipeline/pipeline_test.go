package pipeline_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofrs/flock"

	"speechprep/internal/logging"
	"speechprep/internal/pipeline"
	"speechprep/internal/services"
	"speechprep/internal/testsupport"
)

const fixtureSampleRate = 8000

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parse manifest: %v", err)
	}
	return rows
}

func TestRunEndToEnd(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteSpreadsheet(t, cfg.Paths.Spreadsheet, cfg.Catalog.IDColumn, cfg.Catalog.TextColumn, []testsupport.SpreadsheetRow{
		{ID: 1, Text: "слишком короткий"},
		{ID: 2, Text: "в самый раз"},
		{ID: 3, Text: "почти на границе"},
	})
	testsupport.WriteWAV(t, filepath.Join(cfg.Paths.AudioDir, "1.wav"), 8.0, fixtureSampleRate)
	testsupport.WriteWAV(t, filepath.Join(cfg.Paths.AudioDir, "2.wav"), 12.0, fixtureSampleRate)
	testsupport.WriteWAV(t, filepath.Join(cfg.Paths.AudioDir, "3.wav"), 14.5, fixtureSampleRate)

	csvPath, err := pipeline.Run(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	rows := readRows(t, csvPath)
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 records, got %d rows", len(rows))
	}
	// Target 12.0: distances are 0.0 for id 2 and 2.5 for id 3.
	if rows[1][0] != "2" || rows[2][0] != "3" {
		t.Fatalf("unexpected order: %v / %v", rows[1], rows[2])
	}
	if rows[1][2] != "12.00" || rows[2][2] != "14.50" {
		t.Fatalf("unexpected durations: %q, %q", rows[1][2], rows[2][2])
	}
	if rows[1][3] != "в самый раз" {
		t.Fatalf("transcription join failed: %q", rows[1][3])
	}

	for _, id := range []string{"2", "3"} {
		original, err := os.ReadFile(filepath.Join(cfg.Paths.AudioDir, id+".wav"))
		if err != nil {
			t.Fatal(err)
		}
		copied, err := os.ReadFile(filepath.Join(cfg.Paths.OutputDir, "audio", id+".wav"))
		if err != nil {
			t.Fatalf("copy for %s: %v", id, err)
		}
		if !bytes.Equal(original, copied) {
			t.Fatalf("copy of %s.wav is not byte-identical", id)
		}
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.OutputDir, "audio", "1.wav")); !errors.Is(err, os.ErrNotExist) {
		t.Fatal("out-of-range clip must not be copied")
	}
}

func TestRunSkipsCorruptAudio(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteSpreadsheet(t, cfg.Paths.Spreadsheet, cfg.Catalog.IDColumn, cfg.Catalog.TextColumn, []testsupport.SpreadsheetRow{
		{ID: 10, Text: "целый файл"},
	})
	testsupport.WriteWAV(t, filepath.Join(cfg.Paths.AudioDir, "10.wav"), 11.0, fixtureSampleRate)
	testsupport.WriteCorruptWAV(t, filepath.Join(cfg.Paths.AudioDir, "11.wav"))

	csvPath, err := pipeline.Run(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	rows := readRows(t, csvPath)
	if len(rows) != 2 || rows[1][0] != "10" {
		t.Fatalf("expected only the readable clip, got %v", rows)
	}
}

func TestRunRerunProducesIdenticalManifest(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	testsupport.WriteSpreadsheet(t, cfg.Paths.Spreadsheet, cfg.Catalog.IDColumn, cfg.Catalog.TextColumn, []testsupport.SpreadsheetRow{
		{ID: 2, Text: "повторный прогон"},
	})
	testsupport.WriteWAV(t, filepath.Join(cfg.Paths.AudioDir, "2.wav"), 12.0, fixtureSampleRate)

	csvPath, err := pipeline.Run(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("first Run: %v", err)
	}
	first, err := os.ReadFile(csvPath)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := pipeline.Run(context.Background(), cfg, logging.NewNop()); err != nil {
		t.Fatalf("second Run: %v", err)
	}
	second, err := os.ReadFile(csvPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("rerun must produce an identical manifest")
	}
}

func TestRunFailsWhenLockHeld(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	lock := flock.New(filepath.Join(cfg.Paths.OutputDir, pipeline.LockFilename))
	locked, err := lock.TryLock()
	if err != nil || !locked {
		t.Fatalf("prepare lock: locked=%v err=%v", locked, err)
	}
	defer lock.Unlock()

	_, err = pipeline.Run(context.Background(), cfg, logging.NewNop())
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected ErrValidation for held lock, got %v", err)
	}
}

func TestRunMissingInputsFailFast(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	// No spreadsheet on disk.
	_, err := pipeline.Run(context.Background(), cfg, logging.NewNop())
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(cfg.Paths.OutputDir, "filtered_dataset.csv")); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatal("no manifest may exist after a failed run")
	}
}
