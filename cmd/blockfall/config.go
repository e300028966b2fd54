package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Loads the configuration the same way 'play' does, applies the
difficulty preset and prints the result. With --defaults it prints the
built-in defaults file, comments included. Redirect the output to
~/.blockfall/configs/blocks.yaml to start a custom config.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults file")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.GetDefaultYAML("blocks"))
		return err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	cfg, err := config.LoadBlocks(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyBlocksPreset(&cfg, preset)

	out, err := config.MarshalBlocks(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(out))
	return nil
}
