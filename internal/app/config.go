package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	PackPath  string // content pack directory (pack.yaml + .hcl files)
	OutputDir string // root directory for generated assets

	LogFormat string
	LogLevel  string

	LivesyncURL      string // optional dev server; empty disables livesync
	LivesyncInsecure bool
}

// NewConfig validates a Config and applies defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.PackPath == "" {
		return nil, errors.New("PackPath is a required configuration field and cannot be empty")
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "generated"
	}
	return &cfg, nil
}
