package utils

import (
	"bytes"
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-board/model"
)

// PatternPlacement stamps a built-in pattern with its top-left corner at (X, Y)
type PatternPlacement struct {
	Name string `json:"name"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// Config holds the configuration for a simulation run
type Config struct {
	Width               int                `json:"width"`
	Height              int                `json:"height"`
	Generations         int                `json:"generations"`
	FrameRate           time.Duration      `json:"frame_rate"`
	Color               bool               `json:"color"`
	ClearScreen         bool               `json:"clear_screen"`
	StopWhenStable      bool               `json:"stop_when_stable"`
	StagnationWindow    int                `json:"stagnation_window"`
	PopulationSmoothing float64            `json:"population_smoothing"`
	LiveGlyph           string             `json:"live_glyph"`
	DeadGlyph           string             `json:"dead_glyph"`
	Seed                [][2]int           `json:"seed"`
	Patterns            []PatternPlacement `json:"patterns"`
	RandomDensity       float64            `json:"random_density"`
	RandomSeed          int64              `json:"random_seed"`
}

// DefaultConfig returns a 10x10 board with a blinker and a block in the far corner
func DefaultConfig() Config {
	return Config{
		Width:               10,
		Height:              10,
		Generations:         10,
		StagnationWindow:    3,
		PopulationSmoothing: DefaultPopulationSmoothing,
		Seed: [][2]int{
			{3, 0}, {3, 1}, {3, 2},
			{8, 9}, {9, 8}, {9, 9},
		},
	}
}

// LoadConfig layers a JSON file over DefaultConfig. Unknown keys are rejected so a
// misspelt setting does not silently fall back to its default.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err = dec.Decode(&config); err != nil {
		return DefaultConfig(), errors.Wrapf(err, "[LoadConfig] failed to decode file: %+v", filename)
	}

	return config, nil
}

// Validate rejects configurations the board cannot be built from
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("[Validate] width and height must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Generations < 0 {
		return errors.Errorf("[Validate] generations must not be negative, got %d", c.Generations)
	}
	if c.FrameRate < 0 {
		return errors.Errorf("[Validate] frame_rate must not be negative, got %v", c.FrameRate)
	}
	if c.RandomDensity < 0 || c.RandomDensity > 1 {
		return errors.Errorf("[Validate] random_density must be within [0, 1], got %v", c.RandomDensity)
	}
	for _, p := range c.Patterns {
		if _, err := model.LookupPattern(p.Name); err != nil {
			return errors.Wrap(err, "[Validate] patterns")
		}
	}
	return nil
}

// SeedPoints converts the configured seed pairs to board points
func (c Config) SeedPoints() []model.Point {
	points := make([]model.Point, 0, len(c.Seed))
	for _, s := range c.Seed {
		points = append(points, model.Point{X: s[0], Y: s[1]})
	}
	return points
}
