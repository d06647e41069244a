package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeFilter()
	c.normalizeCatalog()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.AudioDir, err = ExpandPath(c.Paths.AudioDir); err != nil {
		return fmt.Errorf("paths.audio_dir: %w", err)
	}
	if c.Paths.Spreadsheet, err = ExpandPath(c.Paths.Spreadsheet); err != nil {
		return fmt.Errorf("paths.spreadsheet: %w", err)
	}
	if c.Paths.OutputDir, err = ExpandPath(c.Paths.OutputDir); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if c.Paths.SentencesFile, err = ExpandPath(c.Paths.SentencesFile); err != nil {
		return fmt.Errorf("paths.sentences_file: %w", err)
	}
	if c.Paths.CleanedFile, err = ExpandPath(c.Paths.CleanedFile); err != nil {
		return fmt.Errorf("paths.cleaned_file: %w", err)
	}
	return nil
}

func (c *Config) normalizeFilter() {
	ext := strings.TrimSpace(c.Filter.AudioExtension)
	if ext == "" {
		ext = defaultAudioExtension
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	c.Filter.AudioExtension = strings.ToLower(ext)
}

func (c *Config) normalizeCatalog() {
	c.Catalog.Sheet = strings.TrimSpace(c.Catalog.Sheet)
	c.Catalog.IDColumn = strings.TrimSpace(c.Catalog.IDColumn)
	c.Catalog.TextColumn = strings.TrimSpace(c.Catalog.TextColumn)
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

// ExpandPath resolves a leading tilde against the user's home directory
// and cleans the result. Empty input stays empty.
func ExpandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", nil
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if trimmed == "~" {
			return home, nil
		}
		return filepath.Join(home, trimmed[2:]), nil
	}
	return filepath.Clean(trimmed), nil
}
