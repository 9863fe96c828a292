package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snooker/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in default configuration as YAML.

Save the output to ~/.snooker/config.yaml or ./configs/snooker.yaml and
edit it to change player names, the database path or server settings.

Examples:
  snooker config > ~/.snooker/config.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	},
}
