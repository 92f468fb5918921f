// Package config loads CLI settings from an optional YAML file and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ByLCY/billboard/binding"
	"github.com/ByLCY/billboard/layout"
)

// Placeholders available to output templates.
var (
	CaseFields  = []string{"case", "font", "width", "height", "words", "lines"}
	ErrorFields = []string{"case", "error"}
)

// Config represents the application configuration.
type Config struct {
	Workers int           `yaml:"workers" validate:"min=0"`
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
	Render  RenderConfig  `yaml:"render"`
}

type LoggingConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	File  string `yaml:"file"`
}

// OutputConfig holds the per-case line templates, see binding.Interpolate.
type OutputConfig struct {
	Format      string `yaml:"format" validate:"required"`
	ErrorFormat string `yaml:"error_format" validate:"required"`
}

type RenderConfig struct {
	Cell   string `yaml:"cell" validate:"required"`   // paper length of one billboard unit
	Margin string `yaml:"margin" validate:"required"` // page margin around the billboard
	Font   string `yaml:"font"`                       // optional font file for word labels
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Workers: 0,
		Logging: LoggingConfig{Level: "warn"},
		Output: OutputConfig{
			Format:      "Case #${case}: ${font}",
			ErrorFormat: "Case #${case}: error: ${error}",
		},
		Render: RenderConfig{Cell: "1mm", Margin: "5mm"},
	}
}

// Read loads configuration from path on top of Default, then applies
// environment overrides, without validating. An empty path skips the file.
// Callers that layer further overrides call Validate once they are done.
func Read(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load is Read followed by Validate.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("BILLBOARD_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("BILLBOARD_WORKERS: expected integer, got %q", v)
		}
		c.Workers = n
	}
	if v := os.Getenv("BILLBOARD_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("BILLBOARD_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
	if v := os.Getenv("BILLBOARD_FONT"); v != "" {
		c.Render.Font = v
	}
	return nil
}

// Validate checks field ranges, template placeholders and render lengths.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	if err := binding.Check(c.Output.Format, CaseFields...); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if err := binding.Check(c.Output.ErrorFormat, ErrorFields...); err != nil {
		return fmt.Errorf("output.error_format: %w", err)
	}
	cell, err := layout.ParseLength(c.Render.Cell)
	if err != nil {
		return fmt.Errorf("render.cell: %w", err)
	}
	if cell.IsZero() {
		return fmt.Errorf("render.cell must be positive")
	}
	if _, err := layout.ParseLength(c.Render.Margin); err != nil {
		return fmt.Errorf("render.margin: %w", err)
	}
	return nil
}

// Cell returns the parsed render.cell length. Call after Validate.
func (c *Config) Cell() layout.Length {
	l, _ := layout.ParseLength(c.Render.Cell)
	return l
}

// Margin returns the parsed render.margin length. Call after Validate.
func (c *Config) Margin() layout.Length {
	l, _ := layout.ParseLength(c.Render.Margin)
	return l
}
