package main

import (
	"os"

	"github.com/mauv0809/elo-ladder/internal/config"
)

// loadConfig reads the environment, applies command line overrides and sets
// up logging.
func loadConfig(f *flags) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if f.dataFile != "" {
		cfg.DataFile = f.dataFile
	}
	if f.storage != "" {
		cfg.Storage = f.storage
	}
	if f.kFactor != 0 {
		cfg.KFactor = f.kFactor
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	config.SetupLogging(cfg.Log, os.Stderr)
	return cfg, nil
}

