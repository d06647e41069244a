package sentences

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"speechprep/internal/services"
)

// Removal reasons, in the order the predicates run.
const (
	ReasonDuplicate     = "duplicates"
	ReasonTooShort      = "too_short"
	ReasonTooLong       = "too_long"
	ReasonDigits        = "contains_digits"
	ReasonLatin         = "contains_latin"
	ReasonMultipleDots  = "multiple_dots"
	ReasonInvalidQuotes = "invalid_quotes"
	ReasonSpecialChars  = "special_chars"
)

// disallowedPattern matches any character outside the set a recordable
// Russian TTS sentence may contain: letters, digits kept for symmetry with
// the word-character class (digits are rejected earlier anyway), spacing,
// and common punctuation including guillemets.
var disallowedPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s\-—«»",.?!:]`)

// Rules holds the length thresholds for cleaning.
type Rules struct {
	MinLength int
	MaxLength int
}

// CleanReport summarizes a cleaning pass.
type CleanReport struct {
	Original int
	Kept     int
	Removed  map[string]int
}

// RemovedTotal returns the number of rejected sentences.
func (r *CleanReport) RemovedTotal() int {
	return r.Original - r.Kept
}

// Breakdown returns removal reasons sorted by descending count, stable by
// reason name.
func (r *CleanReport) Breakdown() []ReasonCount {
	out := make([]ReasonCount, 0, len(r.Removed))
	for reason, count := range r.Removed {
		out = append(out, ReasonCount{Reason: reason, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Reason < out[j].Reason
	})
	return out
}

// ReasonCount pairs a removal reason with its count.
type ReasonCount struct {
	Reason string
	Count  int
}

// Clean reads the corpus at inPath, drops sentences that fail any predicate,
// and writes the survivors to outPath one per line.
func Clean(inPath, outPath string, rules Rules) (*CleanReport, error) {
	sentences, err := readSentences(inPath)
	if err != nil {
		return nil, err
	}

	report := &CleanReport{Original: len(sentences), Removed: make(map[string]int)}
	seen := make(map[string]struct{}, len(sentences))
	kept := make([]string, 0, len(sentences))

	for _, sent := range sentences {
		if _, dup := seen[sent]; dup {
			report.Removed[ReasonDuplicate]++
			continue
		}
		seen[sent] = struct{}{}

		if reason := rejectReason(sent, rules); reason != "" {
			report.Removed[reason]++
			continue
		}
		kept = append(kept, sent)
	}

	var out strings.Builder
	for _, sent := range kept {
		out.WriteString(sent)
		out.WriteByte('\n')
	}
	if err := os.WriteFile(outPath, []byte(out.String()), 0o644); err != nil {
		return nil, fmt.Errorf("write cleaned corpus: %w", err)
	}

	report.Kept = len(kept)
	return report, nil
}

// rejectReason returns the first failing predicate's reason, or "" when the
// sentence is recordable.
func rejectReason(sent string, rules Rules) string {
	length := utf8.RuneCountInString(sent)
	if length < rules.MinLength {
		return ReasonTooShort
	}
	if length > rules.MaxLength {
		return ReasonTooLong
	}

	for _, r := range sent {
		if unicode.IsDigit(r) {
			return ReasonDigits
		}
	}
	for _, r := range sent {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			return ReasonLatin
		}
	}

	if strings.Count(sent, ".") > 1 {
		return ReasonMultipleDots
	}

	hasOpen := strings.ContainsRune(sent, '«')
	hasClose := strings.ContainsRune(sent, '»')
	if hasOpen != hasClose {
		return ReasonInvalidQuotes
	}
	if strings.Count(sent, `"`)%2 != 0 {
		return ReasonInvalidQuotes
	}

	if disallowedPattern.MatchString(sent) {
		return ReasonSpecialChars
	}
	return ""
}

func readSentences(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, services.Wrap(services.ErrNotFound, "sentences", "read corpus",
				fmt.Sprintf("file not found: %s", path), nil)
		}
		return nil, fmt.Errorf("read corpus: %w", err)
	}

	lines := strings.Split(string(data), "\n")
	sentences := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences, nil
}
