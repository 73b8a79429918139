// Package config provides configuration management for the holiday generator.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultStartYear = 2019
	DefaultEndYear   = 2099
	DefaultBundleDir = "layout/Library/Application Support/Sleeper.bundle"
	DefaultFormat    = "xml"
	DefaultLogLevel  = "info"
)

// Configuration validation errors.
var (
	ErrInvalidYearRange    = errors.New("years.start must be before years.end")
	ErrMissingOutputDir    = errors.New("output.dir is required")
	ErrInvalidOutputFormat = errors.New("output.format must be 'xml' or 'binary'")
	ErrInvalidFilePattern  = errors.New("output.file_pattern must contain exactly one %s")
	ErrInvalidLogLevel     = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrEmptyLocalizedKey   = errors.New("localization.keys entries must not be empty")
)

// Config represents the complete generator configuration.
type Config struct {
	Years        YearsConfig        `yaml:"years"`
	Output       OutputConfig       `yaml:"output"`
	Logging      LoggingConfig      `yaml:"logging"`
	Localization LocalizationConfig `yaml:"localization"`
}

// YearsConfig defines the generated window [Start, End).
type YearsConfig struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// OutputConfig defines output behavior.
type OutputConfig struct {
	Dir         string `yaml:"dir"`
	FilePattern string `yaml:"file_pattern"`
	Format      string `yaml:"format"`
	CreateDir   bool   `yaml:"create_dir"`
	Verify      bool   `yaml:"verify"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	Summary bool   `yaml:"summary"`
}

// LocalizationConfig controls localization keys written with each holiday.
type LocalizationConfig struct {
	Enabled bool              `yaml:"enabled"`
	Keys    map[string]string `yaml:"keys"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Years: YearsConfig{Start: DefaultStartYear, End: DefaultEndYear},
		Output: OutputConfig{
			Dir:         DefaultBundleDir,
			FilePattern: "holidays-%s.plist",
			Format:      DefaultFormat,
		},
		Logging: LoggingConfig{Level: DefaultLogLevel},
	}
}

// LoadConfig loads configuration from a YAML file on top of the defaults.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to YAML file.
func (c *Config) SaveConfig(filepath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filepath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Years.Start >= c.Years.End {
		return fmt.Errorf("%w: got [%d, %d)", ErrInvalidYearRange, c.Years.Start, c.Years.End)
	}

	if c.Output.Dir == "" {
		return ErrMissingOutputDir
	}

	if c.Output.Format != "xml" && c.Output.Format != "binary" {
		return ErrInvalidOutputFormat
	}

	if p := c.Output.FilePattern; p != "" && (strings.Count(p, "%") != 1 || !strings.Contains(p, "%s")) {
		return fmt.Errorf("%w: %q", ErrInvalidFilePattern, p)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	for name, key := range c.Localization.Keys {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("%w: %q", ErrEmptyLocalizedKey, name)
		}
	}

	return nil
}

// YearCount returns the number of generated years.
func (c *Config) YearCount() int {
	return c.Years.End - c.Years.Start
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Years: [%d, %d), Output: %s, Format: %s}",
		c.Years.Start,
		c.Years.End,
		c.Output.Dir,
		c.Output.Format,
	)
}
