package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DatasetPath string // .json dataset file or a directory of them
	SitePath    string // optional .hcl site file

	OutputDir string // overrides the site file's output_dir when set
	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.DatasetPath == "" {
		return nil, errors.New("DatasetPath is a required configuration field and cannot be empty")
	}

	// Future validations for other fields can be added here.

	return &cfg, nil
}
