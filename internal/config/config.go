package config

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
// The result is not validated; callers apply their overrides first and then
// call Validate.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, reading from environment variables")
	}
	return Parse()
}

// Parse builds a Config from the current environment without touching .env.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// Validate rejects settings the ladder cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.KFactor <= 0 || math.IsNaN(c.KFactor) || math.IsInf(c.KFactor, 0) {
		errs = append(errs, fmt.Errorf("ELO_K_FACTOR must be a positive number, got %v", c.KFactor))
	}
	if c.InitialRating < 0 || math.IsNaN(c.InitialRating) || math.IsInf(c.InitialRating, 0) {
		errs = append(errs, fmt.Errorf("ELO_INITIAL_RATING must be a non-negative number, got %v", c.InitialRating))
	}
	switch c.Storage {
	case StorageCSV, StorageSQLite, StorageRedis:
	default:
		errs = append(errs, fmt.Errorf("ELO_STORAGE must be one of csv, sqlite or redis, got %q", c.Storage))
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.Log.Format))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
	}
	return errors.Join(errs...)
}

// SetupLogging configures the default logger to write to w.
func SetupLogging(c LogConfig, w io.Writer) {
	log.SetOutput(w)
	if level, err := log.ParseLevel(c.Level); err == nil {
		log.SetLevel(level)
	}
	if c.Format == "json" {
		log.SetFormatter(log.JSONFormatter)
	} else {
		log.SetFormatter(log.TextFormatter)
	}
}
