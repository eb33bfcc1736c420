package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Color mode names accepted in configuration files.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// AppConfig holds display settings for the calc command. The library
// itself takes no configuration; these only affect how results and
// diagnostics are rendered.
type AppConfig struct {
	Color     string `yaml:"color"`
	Precision int32  `yaml:"precision"`
	Verbose   bool   `yaml:"verbose"`
}

// Default returns the settings used when no configuration file is
// given: auto-detected color, two decimal places, debug lines off.
func Default() *AppConfig {
	return &AppConfig{Color: ColorAuto, Precision: 2}
}

// Parser handles parsing of application configuration files
type Parser struct{}

// NewParser creates a new configuration parser
func NewParser() *Parser {
	return &Parser{}
}

// LoadFromFile loads configuration from a YAML file. Fields absent
// from the file keep their Default values.
func (p *Parser) LoadFromFile(filename string) (*AppConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := p.Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the loaded configuration
func (p *Parser) Validate(cfg *AppConfig) error {
	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("color must be %s, %s or %s, got %q", ColorAuto, ColorAlways, ColorNever, cfg.Color)
	}

	if cfg.Precision < 0 || cfg.Precision > 15 {
		return fmt.Errorf("precision must be between 0 and 15, got %d", cfg.Precision)
	}

	return nil
}
