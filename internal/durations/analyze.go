package durations

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"speechprep/internal/audioprobe"
	"speechprep/internal/logging"
	"speechprep/internal/services"
	"speechprep/internal/stats"
)

// Bucket is one whole-second histogram bin.
type Bucket struct {
	Seconds int
	Count   int
	Percent float64
}

// Report holds the duration distribution of a directory of clips.
type Report struct {
	Found   int // files matching the audio extension
	Valid   int // files whose duration could be read
	Skipped int

	Buckets []Bucket // ascending by Seconds

	MinSec    float64
	MaxSec    float64
	MeanSec   float64
	MedianSec float64
	StdDevSec float64
}

// Analyze probes every clip in dir (non-recursive) and builds the report.
func Analyze(ctx context.Context, dir, extension string, prober audioprobe.Prober, logger *slog.Logger) (*Report, error) {
	logger = logging.WithComponent(logger, "durations")

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, services.Wrap(services.ErrNotFound, "durations", "validate inputs",
			fmt.Sprintf("audio directory not found: %s", dir), nil)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*"+extension))
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "durations", "enumerate audio", "", err)
	}
	logger.Info("found audio files", logging.Int("count", len(files)))

	values := make([]float64, 0, len(files))
	buckets := make(map[int]int)
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		duration, err := prober.Duration(file)
		if err != nil {
			// Already logged by the probe.
			continue
		}
		values = append(values, duration)
		buckets[int(duration)]++
	}

	if len(values) == 0 {
		return nil, services.Wrap(services.ErrValidation, "durations", "analyze",
			"no valid audio files found", nil)
	}

	report := &Report{
		Found:     len(files),
		Valid:     len(values),
		Skipped:   len(files) - len(values),
		MinSec:    stats.Round2(stats.Min(values)),
		MaxSec:    stats.Round2(stats.Max(values)),
		MeanSec:   stats.Round2(stats.Mean(values)),
		MedianSec: stats.Round2(stats.Median(values)),
		StdDevSec: stats.Round2(stats.StdDev(values)),
	}

	seconds := make([]int, 0, len(buckets))
	for sec := range buckets {
		seconds = append(seconds, sec)
	}
	sort.Ints(seconds)
	for _, sec := range seconds {
		count := buckets[sec]
		report.Buckets = append(report.Buckets, Bucket{
			Seconds: sec,
			Count:   count,
			Percent: float64(count) / float64(len(values)) * 100,
		})
	}

	return report, nil
}
