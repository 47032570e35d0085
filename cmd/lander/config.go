package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Prints the built-in lander.yaml. Save it to ~/.lander/configs/lander.yaml
or ./configs/lander.yaml and edit the values to customize the flight.

With --resolved, prints which file 'lander play' would load instead.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the path of the config file in use")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagResolved {
		path := config.ResolveLanderPath("")
		if path == "" {
			path = "(built-in defaults)"
		}
		_, err := fmt.Fprintln(out, path)
		return err
	}

	_, err := out.Write(config.DefaultYAML())
	return err
}
