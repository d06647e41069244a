// Package services holds the error taxonomy shared by the pipeline stages.
//
// Stages tag failures with a sentinel marker (not found, validation,
// configuration) so the entry point can distinguish fatal startup problems
// from per-item issues without string matching.
package services
