package utils

import (
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// TimerRun is the timer option value that enables periodic advancement. Any
// other value leaves the clock stopped until started explicitly.
const TimerRun = "run"

// Config holds the configuration for the game
type Config struct {
	Rows                int           `json:"rows"`
	Columns             int           `json:"columns"`
	Timer               string        `json:"timer"`
	Interval            time.Duration `json:"interval"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	MaxGenerations      int           `json:"max_generations"`
	RandomSeed          bool          `json:"random_seed"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:                50,
		Columns:             50,
		Timer:               TimerRun,
		Interval:            1000 * time.Millisecond,
		AutoRestart:         true,
		StagnationThreshold: 5,
		MaxGenerations:      1000,
		RandomSeed:          false,
	}
}

// LoadConfig loads configuration from JSON file
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

// ParseOptions builds a Config from attribute-style string options. The
// recognized keys are rows, columns, timer, and interval (milliseconds);
// unrecognized keys are ignored and missing keys keep their defaults.
// Non-numeric rows, columns, or interval values fail.
func ParseOptions(options map[string]string) (Config, error) {
	config := DefaultConfig()

	if value, ok := options["rows"]; ok {
		rows, err := strconv.Atoi(value)
		if err != nil {
			return config, errors.Wrapf(err, "[ParseOptions] rows option %q is not numeric", value)
		}
		config.Rows = rows
	}

	if value, ok := options["columns"]; ok {
		columns, err := strconv.Atoi(value)
		if err != nil {
			return config, errors.Wrapf(err, "[ParseOptions] columns option %q is not numeric", value)
		}
		config.Columns = columns
	}

	if value, ok := options["timer"]; ok {
		config.Timer = value
	}

	if value, ok := options["interval"]; ok {
		millis, err := strconv.Atoi(value)
		if err != nil {
			return config, errors.Wrapf(err, "[ParseOptions] interval option %q is not numeric", value)
		}
		config.Interval = time.Duration(millis) * time.Millisecond
	}

	return config, nil
}
