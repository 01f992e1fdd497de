package app

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/beamgrid/beam"
)

// Config holds all the necessary configuration for one run.
type Config struct {
	InputPath string // empty reads stdin

	LogFormat string
	LogLevel  string
	Workers   int

	// Start is the entry beam for the single-entry count.
	Start beam.Beam
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %d", cfg.Workers)
	}
	if cfg.Start.Pos.Row < 0 || cfg.Start.Pos.Col < 0 {
		return nil, fmt.Errorf("start %v must not be negative", cfg.Start.Pos)
	}
	if !cfg.Start.Dir.Valid() {
		return nil, errors.New("start direction must be one of Up, Right, Down, Left")
	}

	return &cfg, nil
}
