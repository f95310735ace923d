// Package config loads runtime settings for the figure generation tool from
// the environment, with an optional .env file for local development.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"courselens/internal/errors"
)

// FiguresConfig holds the settings for the demo figure generator.
type FiguresConfig struct {
	// OutputDir is where rendered PNGs and the summary workbook land.
	OutputDir string
	// Rows is the synthetic catalog size.
	Rows int
	// Seed drives the synthetic data generator.
	Seed int64
	// DatasetPath, when set, loads a real CSV export instead of
	// generating synthetic data.
	DatasetPath string
}

// LoadFigures reads figure generation settings from the environment. A .env
// file in the working directory is applied first when present.
func LoadFigures() (FiguresConfig, error) {
	_ = godotenv.Load()

	cfg := FiguresConfig{
		OutputDir:   getEnvOrDefault("FIGURES_OUTPUT_DIR", "figures"),
		Rows:        3500,
		Seed:        42,
		DatasetPath: os.Getenv("FIGURES_DATASET"),
	}

	if v := os.Getenv("FIGURES_ROWS"); v != "" {
		rows, err := strconv.Atoi(v)
		if err != nil || rows <= 0 {
			return FiguresConfig{}, errors.ValidationError("FIGURES_ROWS must be a positive integer")
		}
		cfg.Rows = rows
	}
	if v := os.Getenv("FIGURES_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return FiguresConfig{}, errors.ValidationError("FIGURES_SEED must be an integer")
		}
		cfg.Seed = seed
	}

	return cfg, nil
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
