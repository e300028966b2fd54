package config

import (
	"errors"
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ErrUnknownPreset is returned by ParsePreset for unrecognized names.
var ErrUnknownPreset = errors.New("unknown difficulty preset")

// ParsePreset converts a CLI value into a preset.
// An empty string yields an empty preset, meaning "leave config as is".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q (want easy, normal, hard or fixed)", ErrUnknownPreset, s)
	}
}

// ApplyBlocksPreset modifies the config based on a difficulty preset.
// A preset only touches the settings it names; the empty preset and
// normal leave the config as loaded.
func ApplyBlocksPreset(cfg *BlocksConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.FreezeDelay = 0.5
	case DifficultyHard:
		cfg.Rules.FreezeDelay = 0.15
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	}
}
