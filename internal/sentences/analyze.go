package sentences

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"speechprep/internal/services"
	"speechprep/internal/stats"
)

// CharCount pairs a display character with its frequency.
type CharCount struct {
	Char    string
	Count   int
	Percent float64
}

// LengthBucket is one 10-character histogram bin of sentence lengths.
type LengthBucket struct {
	Lo      int
	Hi      int
	Count   int
	Percent float64
}

// Stats is the full corpus statistics report.
type Stats struct {
	TotalLines int
	Sentences  int
	EmptyLines int

	UniqueSentences int
	Duplicates      int

	TotalChars       int
	TotalWords       int
	AvgSentenceChars float64
	AvgSentenceWords float64
	MinWordLen       int
	MaxWordLen       int
	AvgWordLen       float64

	UniqueChars int
	TopChars    []CharCount
	Punctuation []CharCount

	Cyrillic int
	Latin    int
	Digits   int
	Spaces   int
	Special  int

	LengthBuckets     []LengthBucket
	MinSentenceLen    int
	MaxSentenceLen    int
	MedianSentenceLen float64

	Samples []string
}

const punctuationSet = `.,;:!?-–—«»"'()[]{}…`

// Analyze reads the corpus at path and computes the statistics report.
func Analyze(path string) (*Stats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, services.Wrap(services.ErrNotFound, "sentences", "read corpus",
				fmt.Sprintf("file not found: %s", path), nil)
		}
		return nil, fmt.Errorf("read corpus: %w", err)
	}

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	sentences := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	if len(sentences) == 0 {
		return nil, services.Wrap(services.ErrValidation, "sentences", "analyze",
			"corpus contains no sentences", nil)
	}

	unique := make(map[string]struct{}, len(sentences))
	for _, s := range sentences {
		unique[s] = struct{}{}
	}

	allText := strings.Join(sentences, "\n")
	report := &Stats{
		TotalLines:      len(lines),
		Sentences:       len(sentences),
		EmptyLines:      len(lines) - len(sentences),
		UniqueSentences: len(unique),
		Duplicates:      len(sentences) - len(unique),
		TotalChars:      utf8.RuneCountInString(allText),
	}

	words := strings.Fields(allText)
	report.TotalWords = len(words)
	report.AvgSentenceChars = float64(report.TotalChars) / float64(report.Sentences)
	report.AvgSentenceWords = float64(report.TotalWords) / float64(report.Sentences)

	wordLengths := make([]float64, len(words))
	for i, w := range words {
		wordLengths[i] = float64(utf8.RuneCountInString(w))
	}
	if len(wordLengths) > 0 {
		report.MinWordLen = int(stats.Min(wordLengths))
		report.MaxWordLen = int(stats.Max(wordLengths))
		report.AvgWordLen = stats.Mean(wordLengths)
	}

	report.fillCharStats(allText)
	report.fillLengthStats(sentences)
	report.Samples = sampleSentences(sentences, 5, 80)
	return report, nil
}

func (s *Stats) fillCharStats(allText string) {
	freq := make(map[rune]int)
	for _, r := range allText {
		freq[r]++

		switch {
		case r >= 0x0400 && r <= 0x04FF:
			s.Cyrillic++
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
			s.Latin++
		case unicode.IsDigit(r):
			s.Digits++
		case unicode.IsSpace(r):
			s.Spaces++
		default:
			s.Special++
		}
	}
	s.UniqueChars = len(freq)

	total := s.TotalChars
	counts := make([]CharCount, 0, len(freq))
	for r, count := range freq {
		counts = append(counts, CharCount{
			Char:    displayChar(r),
			Count:   count,
			Percent: float64(count) / float64(total) * 100,
		})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Char < counts[j].Char
	})
	if len(counts) > 10 {
		counts = counts[:10]
	}
	s.TopChars = counts

	var punct []CharCount
	for _, r := range punctuationSet {
		if count, ok := freq[r]; ok {
			punct = append(punct, CharCount{Char: string(r), Count: count})
		}
	}
	sort.Slice(punct, func(i, j int) bool {
		if punct[i].Count != punct[j].Count {
			return punct[i].Count > punct[j].Count
		}
		return punct[i].Char < punct[j].Char
	})
	s.Punctuation = punct
}

func (s *Stats) fillLengthStats(sentences []string) {
	lengths := make([]float64, len(sentences))
	buckets := make(map[int]int)
	for i, sent := range sentences {
		n := utf8.RuneCountInString(sent)
		lengths[i] = float64(n)
		buckets[n/10*10]++
	}

	s.MinSentenceLen = int(stats.Min(lengths))
	s.MaxSentenceLen = int(stats.Max(lengths))
	s.MedianSentenceLen = stats.Median(lengths)

	lows := make([]int, 0, len(buckets))
	for lo := range buckets {
		lows = append(lows, lo)
	}
	sort.Ints(lows)
	for _, lo := range lows {
		count := buckets[lo]
		s.LengthBuckets = append(s.LengthBuckets, LengthBucket{
			Lo:      lo,
			Hi:      lo + 9,
			Count:   count,
			Percent: float64(count) / float64(len(sentences)) * 100,
		})
	}
}

func sampleSentences(sentences []string, n, maxLen int) []string {
	if len(sentences) < n {
		n = len(sentences)
	}
	samples := make([]string, 0, n)
	for _, sent := range sentences[:n] {
		runes := []rune(sent)
		if len(runes) > maxLen {
			sent = string(runes[:maxLen]) + "..."
		}
		samples = append(samples, sent)
	}
	return samples
}

func displayChar(r rune) string {
	switch r {
	case '\n':
		return `\n`
	case ' ':
		return "SPACE"
	default:
		return string(r)
	}
}
