// Package manifest defines the per-clip metadata record and writes the
// dataset manifest CSV.
//
// The exporter orders records by ascending distance from the target
// duration (stable on ties) and writes a UTF-8 CSV prefixed with a byte
// order mark so spreadsheet tools detect the encoding of Cyrillic text.
package manifest
