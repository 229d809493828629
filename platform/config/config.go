// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds host-side settings for the preview tooling. The fixed
// business rules of the engine (queue thresholds, board statuses) are
// constants in their packages, not configuration.
type Config struct {
	Env          string
	CatalogPath  string
	RecordsPath  string
	SampleTags   int
	PreviewLimit int
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:          getEnv("APP_ENV", "development"),
		CatalogPath:  getEnv("SEGMENT_CATALOG_PATH", "segments.yaml"),
		RecordsPath:  getEnv("RECORDS_PATH", "records.yaml"),
		SampleTags:   mustInt(getEnv("SEGMENT_SAMPLE_TAGS", "5")),
		PreviewLimit: mustInt(getEnv("PREVIEW_LIMIT", "25")),
	}

	if cfg.CatalogPath == "" {
		return nil, fmt.Errorf("SEGMENT_CATALOG_PATH is required")
	}
	if cfg.RecordsPath == "" {
		return nil, fmt.Errorf("RECORDS_PATH is required")
	}
	if cfg.PreviewLimit <= 0 {
		return nil, fmt.Errorf("PREVIEW_LIMIT must be positive")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}
