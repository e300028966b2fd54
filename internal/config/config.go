// Package config loads blockfall's YAML settings (rules, grid and
// randomizer) and applies the difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// Randomizer names accepted in gameplay.randomizer.
const (
	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
)

// BlocksConfig contains all configuration for the falling-blocks game.
type BlocksConfig struct {
	Rules      BlocksRules      `yaml:"rules"`
	Gameplay   BlocksGameplay   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BlocksRules defines timing and scoring parameters.
// Durations are expressed in seconds.
type BlocksRules struct {
	FreezeDelay  float64 `yaml:"freeze_delay"`   // Grace window after the last player action
	BaseInterval float64 `yaml:"base_interval"`  // Gravity interval at level 0
	IntervalStep float64 `yaml:"interval_step"`  // Interval reduction per level
	MinInterval  float64 `yaml:"min_interval"`   // Floor for the gravity interval
	RowsPerLevel int     `yaml:"rows_per_level"` // Cleared rows needed per level
	ScoreFactor  int     `yaml:"score_factor"`   // Multiplier in (level+1)^2 * rows^2 * factor
}

// BlocksGameplay defines board and presentation parameters.
type BlocksGameplay struct {
	GridWidth  int    `yaml:"grid_width"`
	GridHeight int    `yaml:"grid_height"` // Visible rows
	Randomizer string `yaml:"randomizer"`  // "uniform" or "bag"
	ShowGhost  bool   `yaml:"show_ghost"`  // Draw the landing position of the falling piece
}

// DifficultyConfig controls level progression.
type DifficultyConfig struct {
	Enabled bool `yaml:"enabled"` // false keeps the game at level 0
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration describes a playable game.
func (c BlocksConfig) Validate() error {
	r := c.Rules
	switch {
	case r.FreezeDelay < 0:
		return fmt.Errorf("%w: freeze_delay must not be negative", ErrInvalidConfig)
	case r.BaseInterval <= 0:
		return fmt.Errorf("%w: base_interval must be positive", ErrInvalidConfig)
	case r.MinInterval <= 0:
		return fmt.Errorf("%w: min_interval must be positive", ErrInvalidConfig)
	case r.MinInterval > r.BaseInterval:
		return fmt.Errorf("%w: min_interval exceeds base_interval", ErrInvalidConfig)
	case r.IntervalStep < 0:
		return fmt.Errorf("%w: interval_step must not be negative", ErrInvalidConfig)
	case r.RowsPerLevel <= 0:
		return fmt.Errorf("%w: rows_per_level must be positive", ErrInvalidConfig)
	case r.ScoreFactor < 0:
		return fmt.Errorf("%w: score_factor must not be negative", ErrInvalidConfig)
	}

	g := c.Gameplay
	if g.GridWidth < 4 {
		return fmt.Errorf("%w: grid_width must be at least 4", ErrInvalidConfig)
	}
	if g.GridHeight < 4 {
		return fmt.Errorf("%w: grid_height must be at least 4", ErrInvalidConfig)
	}
	switch g.Randomizer {
	case RandomizerUniform, RandomizerBag:
	default:
		return fmt.Errorf("%w: unknown randomizer %q", ErrInvalidConfig, g.Randomizer)
	}
	return nil
}
