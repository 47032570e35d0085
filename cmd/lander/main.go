// lander is a lunar lander simulation played in the terminal.
//
// Usage:
//
//	lander play [profile]    - Fly (profile: classic or freeflight)
//	lander menu              - Pick a profile from a menu, then fly
//	lander profiles          - List rule profiles
//	lander config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--log-file <path>     - Write logs to a file (the TUI owns the terminal)
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lander",
	Short: "Lunar Lander - fly a lander in your terminal",
	Long: `Lunar Lander is a minimal lander simulation for the terminal.
Tilt the ship, fire the main engine and watch the fuel.

Available commands:
  play      - Start a flight
  menu      - Pick a profile interactively
  profiles  - Show the rule profiles
  config    - Print the default configuration

Examples:
  lander play
  lander play freeflight
  lander play --config ./moon.yaml --watch
  lander config > ~/.lander/configs/lander.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: no logs)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the session logger. Without --log-file logs are dropped,
// since stdout and stderr belong to the TUI while it runs.
// The returned close function must be called when the session ends.
func newLogger() (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var (
		w       io.Writer = io.Discard
		closeFn           = func() error { return nil }
	)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "lander",
		Level:           level,
	})
	return logger, closeFn, nil
}
