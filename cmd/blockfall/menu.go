package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/games/blocks"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode and difficulty interactively",
	Long: `Start in interactive menu mode.

Use Up/Down or j/k to pick a mode, Left/Right to change difficulty,
Enter to play. Quitting a game returns to the menu.

Examples:
  blockfall menu
  blockfall menu --fps 30`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := runtimeConfig()

	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		if result.Quit || result.GameID == "" {
			return nil
		}

		blocks.SetConfigPath("")
		blocks.SetDifficultyPreset(string(result.Difficulty))

		game, err := registry.Create(result.GameID)
		if err != nil {
			return err
		}

		logger.Info("starting", "mode", result.GameID, "difficulty", result.Difficulty, "seed", cfg.Seed)
		if err := tui.Run(game, cfg, logger); err != nil {
			return err
		}
	}
}
