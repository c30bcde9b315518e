package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// EnvPrefix namespaces every environment override, e.g. GOL_WIDTH.
const EnvPrefix = "GOL_"

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Height              int           `json:"height" env:"HEIGHT"`
	Width               int           `json:"width" env:"WIDTH"`
	TickInterval        time.Duration `json:"tick_interval" env:"TICK_INTERVAL"`
	Pattern             string        `json:"pattern" env:"PATTERN"`
	PatternFile         string        `json:"pattern_file" env:"PATTERN_FILE"`
	RandomDensity       float64       `json:"random_density" env:"RANDOM_DENSITY"`
	Seed                int64         `json:"seed" env:"SEED"`
	AutoRestart         bool          `json:"auto_restart" env:"AUTO_RESTART"`
	StagnationThreshold int           `json:"stagnation_threshold" env:"STAGNATION_THRESHOLD"`
	InjectionCount      int           `json:"injection_count" env:"INJECTION_COUNT"`
	MaxGenerations      int           `json:"max_generations" env:"MAX_GENERATIONS"`
	UseMemoryPool       bool          `json:"use_memory_pool" env:"USE_MEMORY_POOL"`
	Interactive         bool          `json:"interactive" env:"INTERACTIVE"`
	StartPaused         bool          `json:"start_paused" env:"START_PAUSED"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Height:              20,
		Width:               20,
		TickInterval:        150 * time.Millisecond,
		Pattern:             "random",
		RandomDensity:       0.2,
		Seed:                42,
		AutoRestart:         true,
		StagnationThreshold: 5,
		InjectionCount:      3,
		MaxGenerations:      1000,
		UseMemoryPool:       true,
		Interactive:         false,
		StartPaused:         false,
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// ApplyEnv overrides fields from GOL_* environment variables; unset variables leave the field alone
func ApplyEnv(config *Config) error {
	if err := env.ParseWithOptions(config, env.Options{Prefix: EnvPrefix}); err != nil {
		return errors.Wrap(err, "[ApplyEnv] failed to parse env")
	}
	return nil
}

// Validate rejects configurations the driver cannot run
func (c Config) Validate() error {
	switch {
	case c.Height <= 0 || c.Width <= 0:
		return errors.Wrapf(ErrInvalidConfig, "board must be at least 1x1, got %dx%d", c.Height, c.Width)
	case c.TickInterval <= 0:
		return errors.Wrapf(ErrInvalidConfig, "tick interval must be positive, got %v", c.TickInterval)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "random density must be within [0,1], got %v", c.RandomDensity)
	case c.StartPaused && !c.Interactive:
		return errors.Wrap(ErrInvalidConfig, "start paused needs interactive input to ever resume")
	case c.StagnationThreshold < 0 || c.InjectionCount < 0 || c.MaxGenerations < 0:
		return errors.Wrap(ErrInvalidConfig, "thresholds and counts must not be negative")
	}
	return nil
}
