// Package pipeline wires the filter stages together: it takes a run lock on
// the output directory, runs selection, and exports the manifest.
//
// There are no retries and no checkpointing. A failure after some copies
// leaves the copied audio in place but writes no manifest, since export
// only starts once the selection loop finishes.
package pipeline
