package utils

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds the CLI defaults for a rank run.
type Config struct {
	Damping       float64
	Threshold     float64
	Samples       int
	MaxIterations int
	Output        string
}

// DefaultConfig returns the standard PageRank parameters.
func DefaultConfig() Config {
	return Config{
		Damping:   0.85,
		Threshold: 0.001,
		Samples:   10000,
	}
}

// LoadConfiguration reads rank parameters from a JSON file; fields left at
// zero fall back to the defaults.
func LoadConfiguration(path string) (Config, error) {
	config := DefaultConfig()
	// Try to open the config file
	bytes, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("file does not exist: %v", err)
	}
	// Parse file into Config struct
	if err = json.Unmarshal(bytes, &config); err != nil {
		return config, fmt.Errorf("parse: %v", err)
	}
	defaults := DefaultConfig()
	if config.Damping == 0 {
		config.Damping = defaults.Damping
	}
	if config.Threshold == 0 {
		config.Threshold = defaults.Threshold
	}
	if config.Samples == 0 {
		config.Samples = defaults.Samples
	}
	return config, nil
}
