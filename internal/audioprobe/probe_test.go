package audioprobe_test

import (
	"math"
	"path/filepath"
	"testing"

	"speechprep/internal/audioprobe"
	"speechprep/internal/logging"
	"speechprep/internal/testsupport"
)

func TestDurationMatchesDeclaredFrames(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		name       string
		seconds    float64
		sampleRate int
	}{
		{"12s-8k", 12.0, 8000},
		{"8s-16k", 8.0, 16000},
		{"14.5s-8k", 14.5, 8000},
	}

	prober := audioprobe.NewWAVProber(logging.NewNop())
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".wav")
			testsupport.WriteWAV(t, path, tc.seconds, tc.sampleRate)

			got, err := prober.Duration(path)
			if err != nil {
				t.Fatalf("Duration: %v", err)
			}
			if math.Abs(got-tc.seconds) > 1e-9 {
				t.Fatalf("duration: got %v, want %v", got, tc.seconds)
			}
		})
	}
}

func TestDurationCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.wav")
	testsupport.WriteCorruptWAV(t, path)

	prober := audioprobe.NewWAVProber(logging.NewNop())
	if _, err := prober.Duration(path); err == nil {
		t.Fatal("expected error for corrupt file")
	}
}

func TestDurationNonAudioFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.wav")
	testsupport.WriteTextFile(t, path, "not audio at all")

	prober := audioprobe.NewWAVProber(logging.NewNop())
	if _, err := prober.Duration(path); err == nil {
		t.Fatal("expected error for non-audio file")
	}
}

func TestDurationMissingFile(t *testing.T) {
	prober := audioprobe.NewWAVProber(logging.NewNop())
	if _, err := prober.Duration(filepath.Join(t.TempDir(), "absent.wav")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
