package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snooker/internal/platform/tui"
)

var (
	flagPlayer1  string
	flagPlayer2  string
	flagAskNames bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Score a frame",
	Long: `Start a scoreboard for a new frame in this terminal.

Controls:
  1-7          - Pot a ball for the selected player (1 = red ... 7 = black)
  Tab, h/l     - Select player
  f then 4-7   - Foul by the selected player, penalty to the opponent
  u/Backspace  - Undo
  x            - Reset the frame
  s            - Save the frame result
  n            - Edit player names
  b            - Browse saved frames
  ?            - Show all keys
  q/Ctrl+C     - Quit

Examples:
  snooker play
  snooker play --player1 Alice --player2 Bob
  snooker play --names
  snooker play --db ./frames.db`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer1, "player1", "", "Name of player 1 (overrides config)")
	playCmd.Flags().StringVar(&flagPlayer2, "player2", "", "Name of player 2 (overrides config)")
	playCmd.Flags().BoolVar(&flagAskNames, "names", false, "Ask for player names before the frame starts")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagPlayer1 != "" {
		cfg.Players.Player1 = flagPlayer1
	}
	if flagPlayer2 != "" {
		cfg.Players.Player2 = flagPlayer2
	}
	logger := newLogger(cfg)

	// Get terminal size early for the first render
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Continue without storage - scoring still works
	store := openStore(cfg, logger)

	runErr := tui.Run(store, tui.Options{
		Names:    cfg.Names(),
		AskNames: flagAskNames,
		Width:    width,
		Height:   height,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running scoreboard: %w", runErr)
	}
	return nil
}
