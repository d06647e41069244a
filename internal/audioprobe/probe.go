package audioprobe

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-audio/wav"

	"speechprep/internal/logging"
)

// Prober reports the duration of an audio clip in seconds.
type Prober interface {
	Duration(path string) (float64, error)
}

// WAVProber reads durations from RIFF/WAVE headers.
type WAVProber struct {
	logger *slog.Logger
}

// NewWAVProber constructs a prober that logs read failures to the provided
// logger.
func NewWAVProber(logger *slog.Logger) *WAVProber {
	return &WAVProber{logger: logging.WithComponent(logger, "audioprobe")}
}

// Duration returns the clip length in seconds. Any open or parse error is
// logged and returned; it never panics and never aborts a batch.
func (p *WAVProber) Duration(path string) (float64, error) {
	seconds, err := readDuration(path)
	if err != nil {
		p.logger.Error("failed to read audio",
			logging.String("file", filepath.Base(path)),
			logging.Error(err))
		return 0, err
	}
	return seconds, nil
}

func readDuration(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return 0, fmt.Errorf("not a valid wav file")
	}
	if err := decoder.FwdToPCM(); err != nil {
		return 0, fmt.Errorf("locate data chunk: %w", err)
	}

	bytesPerFrame := int(decoder.NumChans) * int(decoder.BitDepth) / 8
	if bytesPerFrame <= 0 {
		return 0, fmt.Errorf("unsupported frame layout: channels=%d bit_depth=%d", decoder.NumChans, decoder.BitDepth)
	}
	frames := decoder.PCMSize / bytesPerFrame
	return float64(frames) / float64(decoder.SampleRate), nil
}
