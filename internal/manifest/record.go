package manifest

// Record holds the exported metadata for one retained audio clip. Records
// are created once by the selector and never mutated afterwards.
type Record struct {
	FileID        string
	Filename      string
	DurationSec   float64
	Transcription string
	TextLength    int
	OriginalPath  string
	NewPath       string
}
