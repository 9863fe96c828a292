package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snooker/internal/platform/tui"
	"github.com/vovakirdan/tui-snooker/internal/storage"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse saved frame results",
	Long: `Open an interactive table of saved frame results.

Controls:
  Up/Down      - Scroll
  Tab/S-Tab    - Filter by player
  d            - Delete the selected frame
  Esc/q        - Quit

Examples:
  snooker board
  snooker board --db ./frames.db`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

func runBoard(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening frames database: %w", err)
	}
	defer store.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.RunBoard(store, width, height)
}
