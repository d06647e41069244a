// Package sentences analyzes and cleans a line-per-sentence text corpus
// ahead of TTS recording.
//
// Analyze computes the corpus statistics report (counts, character
// classes, punctuation, length distribution). Clean applies a fixed chain
// of rejection predicates to each sentence; the first failing predicate is
// the recorded removal reason and survivors are written out one per line.
package sentences
