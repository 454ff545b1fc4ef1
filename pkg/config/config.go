// Package config provides configuration file support for UAR.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the UAR configuration.
type Config struct {
	Report  ReportConfig  `yaml:"report"`
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
}

// ReportConfig supplies defaults for report generation flags.
type ReportConfig struct {
	MinAge          int  `yaml:"min_age"`
	IncludeInactive bool `yaml:"include_inactive"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json, text
}

// OutputConfig configures CLI rendering.
type OutputConfig struct {
	Color bool `yaml:"color"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Report: ReportConfig{
			MinAge:          18,
			IncludeInactive: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Output: OutputConfig{
			Color: true,
		},
	}
}

// Load loads configuration from <baseDir>/.uar/config.yaml.
// Returns default config if file doesn't exist.
func Load(baseDir string) (*Config, error) {
	cfg := Default()
	cfgPath := filepath.Join(baseDir, ".uar", "config.yaml")

	data, err := os.ReadFile(cfgPath)
	if os.IsNotExist(err) {
		return cfg, nil // No config file is OK, use defaults
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// Save writes configuration to <baseDir>/.uar/config.yaml.
func Save(baseDir string, cfg *Config) error {
	cfgPath := filepath.Join(baseDir, ".uar", "config.yaml")

	if err := os.MkdirAll(filepath.Dir(cfgPath), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(cfgPath, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}
