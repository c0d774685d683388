package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-stepper/model"
)

// Placement puts a named pattern with its top-left corner at (Row, Col)
type Placement struct {
	Name string `json:"name"`
	Row  int    `json:"row"`
	Col  int    `json:"col"`
}

// Config holds the configuration for the game
type Config struct {
	Width               int                `json:"width"`
	Height              int                `json:"height"`
	FrameRate           time.Duration      `json:"frame_rate"`
	MaxGenerations      int                `json:"max_generations"`
	UseMemoryPool       bool               `json:"use_memory_pool"`
	StagnationThreshold int                `json:"stagnation_threshold"`
	StopWhenStagnant    bool               `json:"stop_when_stagnant"`
	Alive               []model.Coordinate `json:"alive"`
	Patterns            []Placement        `json:"patterns"`
}

// DefaultConfig returns a 10x20 board with a single glider
func DefaultConfig() Config {
	return Config{
		Width:               20,
		Height:              10,
		FrameRate:           500 * time.Millisecond,
		MaxGenerations:      0, // run until interrupted
		UseMemoryPool:       true,
		StagnationThreshold: 5,
		Alive: []model.Coordinate{
			{Row: 0, Col: 3},
			{Row: 1, Col: 4},
			{Row: 2, Col: 2},
			{Row: 2, Col: 3},
			{Row: 2, Col: 4},
		},
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

// Validate checks the configuration can build a grid
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("[Validate] grid dimensions must be positive, got %dx%d", c.Height, c.Width)
	}
	if c.FrameRate < 0 {
		return errors.Errorf("[Validate] frame rate must not be negative, got %v", c.FrameRate)
	}
	if c.MaxGenerations < 0 {
		return errors.Errorf("[Validate] max generations must not be negative, got %d", c.MaxGenerations)
	}
	for _, p := range c.Patterns {
		if !model.HasPattern(p.Name) {
			return errors.Errorf("[Validate] unknown pattern %q, want one of %v", p.Name, model.PatternNames())
		}
	}
	return nil
}

// Seed builds the initial grid from the configured cells and patterns
func (c Config) Seed() (*model.Grid, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	grid := model.NewGrid(c.Height, c.Width)
	for _, cell := range c.Alive {
		grid.Assign(cell, model.Alive)
	}
	for _, p := range c.Patterns {
		if err := grid.AddPattern(p.Name, model.Coordinate{Row: p.Row, Col: p.Col}); err != nil {
			return nil, errors.Wrap(err, "[Seed] failed to place pattern")
		}
	}
	return grid, nil
}
