package manifest

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"speechprep/internal/logging"
	"speechprep/internal/stats"
)

// Filename is the manifest name written inside the output directory.
const Filename = "filtered_dataset.csv"

var header = []string{"file_id", "filename", "duration_sec", "transcription", "text_length", "original_path", "new_path"}

// Exporter writes the sorted dataset manifest and logs summary statistics.
type Exporter struct {
	outputDir      string
	targetDuration float64
	logger         *slog.Logger
}

// NewExporter constructs an exporter for the given output directory and
// target duration.
func NewExporter(outputDir string, targetDuration float64, logger *slog.Logger) *Exporter {
	return &Exporter{
		outputDir:      outputDir,
		targetDuration: targetDuration,
		logger:         logging.WithComponent(logger, "exporter"),
	}
}

// Export sorts the records by ascending |duration - target| (input order
// breaks ties) and writes the manifest CSV. It returns the manifest path.
func (e *Exporter) Export(records []Record) (string, error) {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return e.distance(sorted[i]) < e.distance(sorted[j])
	})

	path := filepath.Join(e.outputDir, Filename)
	if err := e.write(path, sorted); err != nil {
		return "", err
	}

	e.logStatistics(sorted)
	return path, nil
}

func (e *Exporter) distance(r Record) float64 {
	return math.Abs(r.DurationSec - e.targetDuration)
}

func (e *Exporter) write(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create manifest: %w", err)
	}
	defer f.Close()

	// The BOM-prefixing encoder keeps Cyrillic transcriptions readable in
	// spreadsheet tools that sniff the encoding.
	bom := transform.NewWriter(f, unicode.UTF8BOM.NewEncoder())
	w := csv.NewWriter(bom)

	if err := w.Write(header); err != nil {
		return fmt.Errorf("write manifest header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.FileID,
			r.Filename,
			strconv.FormatFloat(r.DurationSec, 'f', 2, 64),
			r.Transcription,
			strconv.Itoa(r.TextLength),
			r.OriginalPath,
			r.NewPath,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write manifest row %s: %w", r.FileID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush manifest: %w", err)
	}
	if err := bom.Close(); err != nil {
		return fmt.Errorf("finalize manifest encoding: %w", err)
	}
	return f.Close()
}

func (e *Exporter) logStatistics(records []Record) {
	e.logger.Info("total filtered records", logging.Int("count", len(records)))
	if len(records) == 0 {
		return
	}

	durations := make([]float64, len(records))
	var withTranscription int
	var textLengthSum int
	for i, r := range records {
		durations[i] = r.DurationSec
		if r.Transcription != "" {
			withTranscription++
			textLengthSum += r.TextLength
		}
	}

	e.logger.Info("duration stats",
		logging.Float64("min_sec", stats.Round2(stats.Min(durations))),
		logging.Float64("max_sec", stats.Round2(stats.Max(durations))),
		logging.Float64("mean_sec", stats.Round2(stats.Mean(durations))),
		logging.Float64("median_sec", stats.Round2(stats.Median(durations))))

	e.logger.Info("transcription coverage",
		logging.Int("with_transcription", withTranscription),
		logging.Int("total", len(records)))

	if withTranscription > 0 {
		e.logger.Info("avg text length",
			logging.Int("chars", int(math.Round(float64(textLengthSum)/float64(withTranscription)))))
	}
}
