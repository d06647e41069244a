// Package durations summarizes the clip lengths in an audio directory:
// a whole-second histogram plus min/max/mean/median/standard deviation.
// Unreadable files are skipped and counted, matching the per-item error
// policy of the selection pipeline.
package durations
