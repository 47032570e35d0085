package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a profile from a menu, then fly",
	Long: `Start with an interactive profile picker.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Start the flight
  Q/Esc        - Quit

Play flags (--config, --watch, --sprite) apply to the flight.

Examples:
  lander menu
  lander menu --config ./moon.yaml`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addPlayFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	width, height := terminalSize()

	profile, err := tui.RunProfileMenu(width, height)
	if err != nil {
		return err
	}

	// User quit without choosing
	if profile == nil {
		return nil
	}

	return play(string(*profile))
}
