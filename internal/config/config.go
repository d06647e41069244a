package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains the input and output locations for every command.
type Paths struct {
	AudioDir      string `toml:"audio_dir"`
	Spreadsheet   string `toml:"spreadsheet"`
	OutputDir     string `toml:"output_dir"`
	SentencesFile string `toml:"sentences_file"`
	CleanedFile   string `toml:"cleaned_file"`
}

// Filter contains the duration thresholds for dataset selection.
type Filter struct {
	MinDurationSec    float64 `toml:"min_duration_sec"`
	MaxDurationSec    float64 `toml:"max_duration_sec"`
	TargetDurationSec float64 `toml:"target_duration_sec"`
	AudioExtension    string  `toml:"audio_extension"`
}

// Catalog describes how the transcription spreadsheet is read.
type Catalog struct {
	Sheet      string `toml:"sheet"`
	IDColumn   string `toml:"id_column"`
	TextColumn string `toml:"text_column"`
}

// Sentences contains the corpus cleaning thresholds.
type Sentences struct {
	MinLength int `toml:"min_length"`
	MaxLength int `toml:"max_length"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config centralizes every knob the CLI needs.
type Config struct {
	Paths     Paths     `toml:"paths"`
	Filter    Filter    `toml:"filter"`
	Catalog   Catalog   `toml:"catalog"`
	Sentences Sentences `toml:"sentences"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath returns the standard location of the config file.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "speechprep", "config.toml"), nil
}

// Load builds the configuration from defaults plus an optional TOML file.
// It returns the config, the resolved file path, and whether that file
// existed. An explicitly requested path that is missing is an error; the
// default path is allowed to be absent.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		data, err := os.ReadFile(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

// WriteSample writes the embedded sample configuration to path, creating
// parent directories as needed. Refuses to overwrite an existing file.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat config path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return os.WriteFile(path, []byte(sampleConfig), 0o644)
}

// Render returns the TOML representation of the configuration.
func (c *Config) Render() (string, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return string(data), nil
}

func resolveConfigPath(path string) (string, bool, error) {
	trimmed := strings.TrimSpace(path)
	explicit := trimmed != ""

	if !explicit {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return "", false, err
		}
		trimmed = defaultPath
	}

	expanded, err := ExpandPath(trimmed)
	if err != nil {
		return "", false, err
	}

	if _, err := os.Stat(expanded); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if explicit {
				return "", false, fmt.Errorf("config file not found: %s", expanded)
			}
			return expanded, false, nil
		}
		return "", false, fmt.Errorf("stat config file: %w", err)
	}
	return expanded, true, nil
}
