package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// InputPath points to the BOM export: a CSV, gzip'd CSV, XLSX, ZIP
	// archive, or a directory containing one.
	InputPath string

	// ConfigPath optionally points to an HCL resolver configuration file.
	ConfigPath string

	// Pattern optionally overrides the configuration file's primary
	// pattern (pipe-delimited literal prefixes).
	Pattern string

	// Sheet selects a workbook sheet by name; empty means the first one.
	Sheet string

	// OutputPath is where the resolved CSV is written; empty means the
	// application's output writer.
	OutputPath string

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("InputPath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
