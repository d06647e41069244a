package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateFilter(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateSentences(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.AudioDir == "" {
		return errors.New("paths.audio_dir must be set")
	}
	if c.Paths.Spreadsheet == "" {
		return errors.New("paths.spreadsheet must be set")
	}
	if c.Paths.OutputDir == "" {
		return errors.New("paths.output_dir must be set")
	}
	return nil
}

func (c *Config) validateFilter() error {
	f := c.Filter
	if f.MinDurationSec <= 0 {
		return errors.New("filter.min_duration_sec must be positive")
	}
	if f.MaxDurationSec < f.MinDurationSec {
		return fmt.Errorf("filter.max_duration_sec (%.2f) must be >= filter.min_duration_sec (%.2f)", f.MaxDurationSec, f.MinDurationSec)
	}
	if f.TargetDurationSec < f.MinDurationSec || f.TargetDurationSec > f.MaxDurationSec {
		return fmt.Errorf("filter.target_duration_sec (%.2f) must fall within [%.2f, %.2f]", f.TargetDurationSec, f.MinDurationSec, f.MaxDurationSec)
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if c.Catalog.IDColumn == "" {
		return errors.New("catalog.id_column must be set")
	}
	if c.Catalog.TextColumn == "" {
		return errors.New("catalog.text_column must be set")
	}
	return nil
}

func (c *Config) validateSentences() error {
	s := c.Sentences
	if s.MinLength <= 0 {
		return errors.New("sentences.min_length must be positive")
	}
	if s.MaxLength < s.MinLength {
		return fmt.Errorf("sentences.max_length (%d) must be >= sentences.min_length (%d)", s.MaxLength, s.MinLength)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be one of debug/info/warn/error, got %q", c.Logging.Level)
	}
}
