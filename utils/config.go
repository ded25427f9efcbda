package utils

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Point is a single seeded cell position
type Point struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// Seed places a named pattern with its top-left corner at (X, Y)
type Seed struct {
	Pattern string `yaml:"pattern" json:"pattern"`
	X       int    `yaml:"x" json:"x"`
	Y       int    `yaml:"y" json:"y"`
}

// Config holds the configuration for the game
type Config struct {
	Width               int           `yaml:"width" json:"width"`
	Height              int           `yaml:"height" json:"height"`
	FrameRate           time.Duration `yaml:"frame_rate" json:"frame_rate"`
	StagnationThreshold int           `yaml:"stagnation_threshold" json:"stagnation_threshold"`
	UseParallel         bool          `yaml:"use_parallel" json:"use_parallel"`
	UseMemoryPool       bool          `yaml:"use_memory_pool" json:"use_memory_pool"`
	MaxGenerations      int           `yaml:"max_generations" json:"max_generations"`
	Render              bool          `yaml:"render" json:"render"`
	Seeds               []Seed        `yaml:"seed" json:"seed"`
	Cells               []Point       `yaml:"cells" json:"cells"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               60,
		Height:              30,
		FrameRate:           150 * time.Millisecond,
		StagnationThreshold: 5,
		UseParallel:         true,
		UseMemoryPool:       true,
		MaxGenerations:      1000,
		Render:              true,
	}
}

// InitialSeeds returns the configured seeds, or a block and a blinker when
// the config names neither seeds nor cells
func (c Config) InitialSeeds() []Seed {
	if len(c.Seeds) == 0 && len(c.Cells) == 0 {
		return []Seed{
			{Pattern: "block", X: 0, Y: 0},
			{Pattern: "blinker", X: 5, Y: 1},
		}
	}
	return c.Seeds
}

// LoadConfig loads configuration from a YAML or JSON file. Fields missing
// from the file keep their defaults.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if strings.EqualFold(filepath.Ext(filename), ".json") {
		err = json.Unmarshal(data, &config)
	} else {
		err = yaml.Unmarshal(data, &config)
	}
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] invalid config in file: %+v", filename)
	}

	return config, nil
}

// Validate rejects settings the game loop cannot run with
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return errors.Errorf("width and height must be at least 1, got %dx%d", c.Width, c.Height)
	}
	if c.FrameRate < 0 {
		return errors.Errorf("frame_rate must not be negative, got %v", c.FrameRate)
	}
	if c.MaxGenerations < 0 {
		return errors.Errorf("max_generations must not be negative, got %d", c.MaxGenerations)
	}
	if c.StagnationThreshold < 1 {
		return errors.Errorf("stagnation_threshold must be at least 1, got %d", c.StagnationThreshold)
	}
	for i, s := range c.Seeds {
		if s.Pattern == "" {
			return errors.Errorf("seed %d has no pattern", i)
		}
	}
	return nil
}
