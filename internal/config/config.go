// Package config handles loading and saving user configuration for readafter.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file inside the config directory.
const FileName = "config.yaml"

// Config holds all user configuration.
type Config struct {
	Segment    SegmentConfig    `yaml:"segment"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Speech     SpeechConfig     `yaml:"speech"`
}

// SegmentConfig holds breath-mark segmentation limits.
type SegmentConfig struct {
	MaxLength int `yaml:"max_length"` // Longest sentence left unsplit
	MinLength int `yaml:"min_length"` // Shortest segment kept on its own
	MaxDepth  int `yaml:"max_depth"`  // Word-split recursion cap
}

// DictionaryConfig locates dictionary data.
type DictionaryConfig struct {
	Dir     string `yaml:"dir"`      // Optional directory of <category>.txt defaults
	DataDir string `yaml:"data_dir"` // Directory holding the override database
}

// SpeechConfig holds playback settings.
type SpeechConfig struct {
	SecondsPerSegment float64  `yaml:"seconds_per_segment"`
	Repeat            int      `yaml:"repeat"`
	Command           []string `yaml:"command,omitempty"` // External TTS program and arguments
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Segment: SegmentConfig{
			MaxLength: 20,
			MinLength: 6,
			MaxDepth:  3,
		},
		Speech: SpeechConfig{
			SecondsPerSegment: 2,
			Repeat:            1,
		},
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Segment.MaxLength <= 0:
		return fmt.Errorf("segment.max_length must be positive, got %d", c.Segment.MaxLength)
	case c.Segment.MinLength <= 0:
		return fmt.Errorf("segment.min_length must be positive, got %d", c.Segment.MinLength)
	case c.Segment.MinLength > c.Segment.MaxLength:
		return fmt.Errorf("segment.min_length (%d) exceeds max_length (%d)", c.Segment.MinLength, c.Segment.MaxLength)
	case c.Segment.MaxDepth <= 0:
		return fmt.Errorf("segment.max_depth must be positive, got %d", c.Segment.MaxDepth)
	case c.Speech.SecondsPerSegment < 0:
		return fmt.Errorf("speech.seconds_per_segment must not be negative, got %g", c.Speech.SecondsPerSegment)
	case c.Speech.Repeat < 0:
		return fmt.Errorf("speech.repeat must not be negative, got %d", c.Speech.Repeat)
	}
	return nil
}

// Load reads configuration from a YAML file. Settings missing from the
// file keep their defaults; a missing file yields Default().
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes configuration to a YAML file.
func Save(path string, cfg Config) error {
	out, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// DataDir returns where the override database lives: the configured
// data_dir or, failing that, dir.
func (c Config) DataDir(dir string) string {
	if c.Dictionary.DataDir != "" {
		return c.Dictionary.DataDir
	}
	return dir
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "readafter"), nil
}

// EnsureDir creates dir if it doesn't exist.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
