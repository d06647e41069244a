package sentences_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"speechprep/internal/sentences"
)

func analyzeCorpus(t *testing.T, body string) *sentences.Stats {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.txt")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	report, err := sentences.Analyze(path)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	return report
}

func TestAnalyzeCounts(t *testing.T) {
	body := "Первое предложение.\n\nВторое предложение.\nПервое предложение.\n"
	report := analyzeCorpus(t, body)

	if report.TotalLines != 4 {
		t.Fatalf("total lines: got %d, want 4", report.TotalLines)
	}
	if report.Sentences != 3 || report.EmptyLines != 1 {
		t.Fatalf("sentences=%d empty=%d", report.Sentences, report.EmptyLines)
	}
	if report.UniqueSentences != 2 || report.Duplicates != 1 {
		t.Fatalf("unique=%d duplicates=%d", report.UniqueSentences, report.Duplicates)
	}
	if report.TotalWords != 6 {
		t.Fatalf("words: got %d, want 6", report.TotalWords)
	}
	if len(report.Samples) != 3 {
		t.Fatalf("samples: %v", report.Samples)
	}
}

func TestAnalyzeCharacterClasses(t *testing.T) {
	// One line: 6 Cyrillic, 2 Latin, 1 digit, 2 spaces, 1 dot.
	report := analyzeCorpus(t, "привет ab 7.\n")

	if report.Cyrillic != 6 {
		t.Fatalf("cyrillic: got %d, want 6", report.Cyrillic)
	}
	if report.Latin != 2 {
		t.Fatalf("latin: got %d, want 2", report.Latin)
	}
	if report.Digits != 1 {
		t.Fatalf("digits: got %d, want 1", report.Digits)
	}
	if report.Spaces != 2 {
		t.Fatalf("spaces: got %d, want 2", report.Spaces)
	}
	if report.Special != 1 {
		t.Fatalf("special: got %d, want 1", report.Special)
	}

	foundDot := false
	for _, p := range report.Punctuation {
		if p.Char == "." && p.Count == 1 {
			foundDot = true
		}
	}
	if !foundDot {
		t.Fatalf("punctuation: %v", report.Punctuation)
	}
}

func TestAnalyzeLengthBuckets(t *testing.T) {
	report := analyzeCorpus(t, strings.Join([]string{
		strings.Repeat("а", 12), // bucket 10-19
		strings.Repeat("б", 15), // bucket 10-19
		strings.Repeat("в", 34), // bucket 30-39
	}, "\n"))

	if len(report.LengthBuckets) != 2 {
		t.Fatalf("buckets: %+v", report.LengthBuckets)
	}
	first := report.LengthBuckets[0]
	if first.Lo != 10 || first.Hi != 19 || first.Count != 2 {
		t.Fatalf("first bucket: %+v", first)
	}
	if report.MinSentenceLen != 12 || report.MaxSentenceLen != 34 {
		t.Fatalf("min/max: %+v", report)
	}
	if math.Abs(report.MedianSentenceLen-15) > 1e-9 {
		t.Fatalf("median: %v", report.MedianSentenceLen)
	}
}

func TestAnalyzeSampleTruncation(t *testing.T) {
	long := strings.Repeat("д", 120)
	report := analyzeCorpus(t, long+"\n")
	if len(report.Samples) != 1 {
		t.Fatalf("samples: %v", report.Samples)
	}
	if !strings.HasSuffix(report.Samples[0], "...") {
		t.Fatalf("expected truncated sample, got %q", report.Samples[0])
	}
	if got := len([]rune(report.Samples[0])); got != 83 {
		t.Fatalf("sample length: got %d, want 83", got)
	}
}

func TestAnalyzeTopCharsLimitedToTen(t *testing.T) {
	report := analyzeCorpus(t, "абвгдежзиклмн опрст\n")
	if len(report.TopChars) != 10 {
		t.Fatalf("top chars: got %d entries", len(report.TopChars))
	}
}

func TestAnalyzeMissingFile(t *testing.T) {
	if _, err := sentences.Analyze(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestAnalyzeEmptyCorpus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("\n\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := sentences.Analyze(path); err == nil {
		t.Fatal("expected error for empty corpus")
	}
}
