package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show in-game key bindings",
	Run:   runKeys,
}

func runKeys(cmd *cobra.Command, args []string) {
	keys := tui.DefaultGameKeyMap()

	for _, group := range keys.FullHelp() {
		for _, b := range group {
			printBinding(b)
		}
	}
}

func printBinding(b key.Binding) {
	names := make([]string, 0, len(b.Keys()))
	for _, k := range b.Keys() {
		if k == " " {
			k = "space"
		}
		names = append(names, k)
	}
	fmt.Printf("  %-22s %s\n", strings.Join(names, ", "), b.Help().Desc)
}
