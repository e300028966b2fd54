// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall list              - List available game modes
//	blockfall play [mode]       - Play a mode (default: blocks)
//	blockfall menu              - Pick a mode and difficulty interactively
//	blockfall keys              - Show key bindings
//	blockfall config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set frame rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible piece sequences
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--log-stderr        - Log to stderr instead of ~/.blockfall/blockfall.log
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Register game modes
	_ "github.com/vovakirdan/blockfall/internal/games/blocks"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagLogLevel  string
	flagLogStderr bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - falling blocks in your terminal",
	Long: `Blockfall is a terminal falling-block puzzle game.

Available commands:
  list     - Show all game modes
  play     - Play a mode directly
  menu     - Interactive mode and difficulty picker
  keys     - Show key bindings
  config   - Print the effective configuration

Examples:
  blockfall play
  blockfall play blocks_bag --difficulty hard
  blockfall menu --seed 42
  blockfall config --difficulty easy`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagLogStderr, "log-stderr", false, "Write logs to stderr")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the session logger. The alt screen owns stdout while a
// game runs, so logs go to a file unless --log-stderr is set.
func newLogger() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	if !flagLogStderr {
		path, pathErr := logPath()
		if pathErr != nil {
			return nil, nil, pathErr
		}
		f, openErr := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if openErr != nil {
			return nil, nil, fmt.Errorf("open log file: %w", openErr)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "blockfall",
		ReportTimestamp: true,
	})
	return logger, closeFn, nil
}

func logPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	dir := filepath.Join(home, ".blockfall")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}
	return filepath.Join(dir, "blockfall.log"), nil
}
