package utils

import (
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-gol/model"
)

// Duration is a time.Duration that reads from JSON as "260ms" or as nanoseconds
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return errors.Wrapf(err, "[Duration.UnmarshalJSON] invalid duration: %q", s)
		}
		*d = Duration(parsed)
		return nil
	}

	var ns int64
	if err := json.Unmarshal(data, &ns); err != nil {
		return errors.Wrapf(err, "[Duration.UnmarshalJSON] expected string or integer: %s", data)
	}
	*d = Duration(ns)
	return nil
}

// Config holds the configuration for the game
type Config struct {
	Rows                int      `json:"rows"`
	Cols                int      `json:"cols"`
	FrameDelay          Duration `json:"frame_delay"`
	MaxGenerations      int      `json:"max_generations"`
	Pattern             string   `json:"pattern"`
	StopWhenStagnant    bool     `json:"stop_when_stagnant"`
	StagnationThreshold int      `json:"stagnation_threshold"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:                20,
		Cols:                40,
		FrameDelay:          Duration(260 * time.Millisecond),
		MaxGenerations:      0, // run until interrupted
		Pattern:             "original",
		StopWhenStagnant:    false,
		StagnationThreshold: 5,
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

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate reports the first setting the game cannot run with
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return errors.Errorf("[Validate] grid must be at least 1x1, got %dx%d", c.Rows, c.Cols)
	case c.FrameDelay < 0:
		return errors.Errorf("[Validate] frame_delay must not be negative, got %s", time.Duration(c.FrameDelay))
	case c.MaxGenerations < 0:
		return errors.Errorf("[Validate] max_generations must not be negative, got %d", c.MaxGenerations)
	case c.StopWhenStagnant && c.StagnationThreshold < 1:
		return errors.Errorf("[Validate] stagnation_threshold must be at least 1, got %d", c.StagnationThreshold)
	}

	if _, ok := model.LookupPattern(c.Pattern); !ok {
		return errors.Errorf("[Validate] unknown pattern %q (known: %s)",
			c.Pattern, strings.Join(model.PatternNames(), ", "))
	}
	return nil
}
