package catalog

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"speechprep/internal/logging"
)

// Options selects the sheet and columns to read. An empty Sheet means the
// workbook's first sheet.
type Options struct {
	Sheet      string
	IDColumn   string
	TextColumn string
}

// Catalog maps file identifiers to transcription text.
type Catalog struct {
	entries map[string]string
}

// Load reads the workbook at path and builds the identifier to
// transcription mapping. Identifier cells are coerced to an integer and
// back to a string, so a spreadsheet value of 42 (or "42.0") joins a file
// named "42.wav".
func Load(path string, opts Options, logger *slog.Logger) (*Catalog, error) {
	logger = logging.WithComponent(logger, "catalog")

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet %s: %w", path, err)
	}
	defer f.Close()

	sheet := strings.TrimSpace(opts.Sheet)
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	idIdx, textIdx, err := locateColumns(rows[0], opts)
	if err != nil {
		return nil, err
	}

	entries := make(map[string]string, len(rows)-1)
	skipped := 0
	for i, row := range rows[1:] {
		var idCell string
		if idIdx < len(row) {
			idCell = row[idIdx]
		}
		id, err := coerceID(idCell)
		if err != nil {
			skipped++
			logger.Warn("skipping row with unusable identifier",
				logging.Int("row", i+2),
				logging.String("value", idCell))
			continue
		}
		var text string
		if textIdx < len(row) {
			text = row[textIdx]
		}
		entries[id] = text
	}

	logger.Info("loaded transcriptions",
		logging.Int("count", len(entries)),
		logging.Int("skipped_rows", skipped))
	return &Catalog{entries: entries}, nil
}

// Lookup returns the transcription for the identifier and whether it exists.
func (c *Catalog) Lookup(id string) (string, bool) {
	text, ok := c.entries[id]
	return text, ok
}

// Len reports the number of loaded entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

func locateColumns(header []string, opts Options) (int, int, error) {
	idIdx, textIdx := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case opts.IDColumn:
			if idIdx == -1 {
				idIdx = i
			}
		case opts.TextColumn:
			if textIdx == -1 {
				textIdx = i
			}
		}
	}
	if idIdx == -1 {
		return 0, 0, fmt.Errorf("column %q not found in spreadsheet header", opts.IDColumn)
	}
	if textIdx == -1 {
		return 0, 0, fmt.Errorf("column %q not found in spreadsheet header", opts.TextColumn)
	}
	return idIdx, textIdx, nil
}

// coerceID turns a numeric cell value into the canonical string key.
// Fractions are truncated, so "42", "42.0", and 4.2e1 all map to "42".
func coerceID(cell string) (string, error) {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return "", fmt.Errorf("empty identifier cell")
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return "", fmt.Errorf("identifier %q is not numeric", trimmed)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "", fmt.Errorf("identifier %q is not a finite number", trimmed)
	}
	return strconv.FormatInt(int64(value), 10), nil
}
