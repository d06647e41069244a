// Package selector walks the input audio directory, retains clips whose
// duration falls inside the configured range, copies them into the output
// tree, and joins each clip to its transcription by filename stem.
//
// Probe failures skip the file (the probe already logged them); a clip
// outside the duration range is skipped silently; a missing transcription
// is logged and substituted with the empty string. Copy failures abort the
// run since the output tree would be incomplete.
package selector
