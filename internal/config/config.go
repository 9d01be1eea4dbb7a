// internal/config/config.go
//
// Central configuration for the ladder engine.
// Responsibilities:
//   - Defaults for file paths, generation sizes, and the sampling budget.
//   - Environment overrides (godotenv is loaded by main, so .env works
//     in development).
//   - Difficulty band loading from a YAML file; band boundaries are a
//     configuration input, not a constant.
//
// Environment variables:
//   WORDS_DICTIONARY_FILE=/path/to/dictionary.txt
//   WORDS_BASE_FILE=/path/to/base_words.txt
//   OUTPUT_DIR=output
//   BANDS_FILE=/path/to/bands.yaml
//   BULK_PUZZLE_COUNT=100
//   MAX_ATTEMPTS=250
//   DAILY_SALT=...
//   PORT=5175
//   LOG_LEVEL=info

package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/robalobadob/wordladder/internal/puzzle"
)

// Config holds all engine settings.
type Config struct {
	DictionaryPath string // empty means embedded defaults
	BaseWordsPath  string
	OutputDir      string
	BandsFile      string
	BulkCount      int // puzzles per difficulty in bulk generation
	MaxAttempts    int // sampling budget per requested puzzle
	DailySalt      string
	Port           string
}

// FromEnv builds a Config from defaults overridden by the environment.
func FromEnv() Config {
	return Config{
		DictionaryPath: os.Getenv("WORDS_DICTIONARY_FILE"),
		BaseWordsPath:  os.Getenv("WORDS_BASE_FILE"),
		OutputDir:      getEnv("OUTPUT_DIR", "output"),
		BandsFile:      os.Getenv("BANDS_FILE"),
		BulkCount:      getEnvInt("BULK_PUZZLE_COUNT", 100),
		MaxAttempts:    getEnvInt("MAX_ATTEMPTS", puzzle.DefaultMaxAttempts),
		DailySalt:      getEnv("DAILY_SALT", "wordladder"),
		Port:           getEnv("PORT", "5175"),
	}
}

// Bands returns the difficulty bands: the YAML file when configured,
// otherwise the defaults. The result is always validated.
func (c Config) Bands() (puzzle.Bands, error) {
	if c.BandsFile == "" {
		return puzzle.DefaultBands(), nil
	}
	return LoadBands(c.BandsFile)
}

// bandsFile is the YAML document shape:
//
//	bands:
//	  - label: easy
//	    min_steps: 2
//	    max_steps: 3
type bandsFile struct {
	Bands puzzle.Bands `yaml:"bands"`
}

// LoadBands reads and validates a band configuration file.
func LoadBands(path string) (puzzle.Bands, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	var f bandsFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := f.Bands.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return f.Bands, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
