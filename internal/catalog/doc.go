// Package catalog loads the transcription spreadsheet into an in-memory
// mapping from numeric identifier (as a string) to transcription text.
//
// The whole sheet is read eagerly before filtering begins and the mapping
// is read-only afterwards. A missing file or a missing column is a fatal
// startup error; individual rows with unusable identifiers are skipped
// with a warning.
package catalog
