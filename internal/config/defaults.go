package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the default falling-blocks configuration.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Rules: BlocksRules{
			FreezeDelay:  0.3,
			BaseInterval: 0.5,
			IntervalStep: 0.06,
			MinInterval:  0.05,
			RowsPerLevel: 20,
			ScoreFactor:  10,
		},
		Gameplay: BlocksGameplay{
			GridWidth:  10,
			GridHeight: 22,
			Randomizer: RandomizerUniform,
			ShowGhost:  true,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "blocks", "blocks_bag":
		return defaultBlocksYAML
	default:
		return nil
	}
}
