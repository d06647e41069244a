package testsupport

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// MkdirAll creates the directory tree or fails the test.
func MkdirAll(t testing.TB, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
}

// WriteTextFile writes body to path, creating parent directories.
func WriteTextFile(t testing.TB, path, body string) {
	t.Helper()
	MkdirAll(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteWAV writes a minimal valid PCM16 mono WAV file whose header declares
// exactly seconds*sampleRate frames of silence. Low sample rates keep
// fixtures small while the declared duration stays exact.
func WriteWAV(t testing.TB, path string, seconds float64, sampleRate int) {
	t.Helper()
	MkdirAll(t, filepath.Dir(path))

	frames := int(seconds * float64(sampleRate))
	const (
		numChans      = 1
		bitsPerSample = 16
	)
	blockAlign := numChans * bitsPerSample / 8
	dataSize := frames * blockAlign

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(numChans))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataSize))
	buf.Write(make([]byte, dataSize))

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write wav %s: %v", path, err)
	}
}

// WriteCorruptWAV writes a file that carries a RIFF magic but truncated,
// unparseable contents.
func WriteCorruptWAV(t testing.TB, path string) {
	t.Helper()
	MkdirAll(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte("RIFFxxxx"), 0o644); err != nil {
		t.Fatalf("write corrupt wav %s: %v", path, err)
	}
}
