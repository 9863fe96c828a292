// snooker is a terminal scoreboard for two-player snooker frames.
//
// Usage:
//
//	snooker play             - Score a frame in this terminal
//	snooker serve            - Start SSH server for remote scoreboards
//	snooker frames           - Print saved frame results
//	snooker board            - Browse saved frame results
//	snooker config           - Print the default configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.snooker/config.yaml)
//	--db <path>         - Set database path (default: ~/.snooker/frames.db)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snooker/internal/config"
	"github.com/vovakirdan/tui-snooker/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snooker",
	Short: "Snooker - Keep score of a snooker frame in your terminal",
	Long: `Snooker is a terminal scoreboard for a two-player snooker frame.
It tracks both scores, the points left on the table, the lead and
an undo history.

Available commands:
  play     - Score a frame in this terminal
  serve    - Start SSH server for remote scoreboards
  frames   - Print saved frame results
  board    - Browse saved frame results
  config   - Print the default configuration

Examples:
  snooker play
  snooker play --player1 Alice --player2 Bob
  snooker serve --ssh :2222
  snooker frames --player Alice`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to frames database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(framesCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config file and applies the global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, cfg.Validate()
}

// newLogger builds the CLI logger at the configured level.
func newLogger(cfg config.Config) *log.Logger {
	level, err := cfg.Log.LogLevel()
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snooker",
		Level:           level,
	})
}

// openStore opens the frames database, returning nil when it is unavailable.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open frames database", "path", cfg.Storage.DBPath, "error", err)
		return nil
	}
	return store
}
