package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/astro/zodigo/internal/search"
)

// SearchFileConfig mirrors search.Config for YAML files. Omitted fields
// keep their defaults.
type SearchFileConfig struct {
	StepDays          float64 `yaml:"stepDays" validate:"gte=0"`
	ToleranceDegrees  float64 `yaml:"toleranceDegrees" validate:"gte=0"`
	MaxIterations     int     `yaml:"maxIterations" validate:"gte=0"`
	MaxResults        int     `yaml:"maxResults" validate:"gte=0"`
	CursorEpsilonDays float64 `yaml:"cursorEpsilonDays" validate:"gte=0"`
	StationCursorDays float64 `yaml:"stationCursorDays" validate:"gte=0"`
}

// FileConfig is the root of a zodigo YAML config file.
type FileConfig struct {
	Search SearchFileConfig `yaml:"search"`
}

// LoadConfig reads an optional YAML config file and merges it over the
// stock tuning. An empty path returns the defaults unchanged.
func LoadConfig(path string) (search.Config, error) {
	cfg := search.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := validator.New().Struct(fc); err != nil {
		return cfg, fmt.Errorf("validate %s: %w", path, err)
	}

	if fc.Search.StepDays > 0 {
		cfg.StepDays = fc.Search.StepDays
	}
	if fc.Search.ToleranceDegrees > 0 {
		cfg.ToleranceDeg = fc.Search.ToleranceDegrees
	}
	if fc.Search.MaxIterations > 0 {
		cfg.MaxIterations = fc.Search.MaxIterations
	}
	if fc.Search.MaxResults > 0 {
		cfg.MaxResults = fc.Search.MaxResults
	}
	if fc.Search.CursorEpsilonDays > 0 {
		cfg.CursorEpsilonDays = fc.Search.CursorEpsilonDays
	}
	if fc.Search.StationCursorDays > 0 {
		cfg.StationCursorDays = fc.Search.StationCursorDays
	}
	return cfg, nil
}

// applyEnv overlays ZODIGO_* environment variables on the config.
// Invalid values are logged and ignored.
func applyEnv(cfg *search.Config, logger *slog.Logger) {
	if v := os.Getenv("ZODIGO_STEP_DAYS"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			logger.Warn("invalid ZODIGO_STEP_DAYS value, keeping current", "value", v)
		} else {
			cfg.StepDays = f
		}
	}

	if v := os.Getenv("ZODIGO_TOLERANCE_DEG"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			logger.Warn("invalid ZODIGO_TOLERANCE_DEG value, keeping current", "value", v)
		} else {
			cfg.ToleranceDeg = f
		}
	}

	if v := os.Getenv("ZODIGO_MAX_ITERATIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			logger.Warn("invalid ZODIGO_MAX_ITERATIONS value, keeping current", "value", v)
		} else {
			cfg.MaxIterations = n
		}
	}

	if v := os.Getenv("ZODIGO_MAX_RESULTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			logger.Warn("invalid ZODIGO_MAX_RESULTS value, keeping current", "value", v)
		} else {
			cfg.MaxResults = n
		}
	}
}
