package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snooker/internal/storage"
)

var (
	flagPlayer string
	flagLimit  int
)

var framesCmd = &cobra.Command{
	Use:   "frames",
	Short: "Show saved frame results",
	Long: `Display the most recent saved frame results.

With --player, only frames played by that name are listed, followed by
the player's totals.

Examples:
  snooker frames
  snooker frames --limit 5
  snooker frames --player Alice`,
	Args: cobra.NoArgs,
	RunE: runFrames,
}

func init() {
	framesCmd.Flags().StringVar(&flagPlayer, "player", "", "Only show frames played by this name")
	framesCmd.Flags().IntVar(&flagLimit, "limit", 10, "Maximum number of frames to show")
}

func runFrames(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening frames database: %w", err)
	}
	defer store.Close()

	var frames []storage.FrameResult
	if flagPlayer != "" {
		frames, err = store.PlayerFrames(flagPlayer, flagLimit)
	} else {
		frames, err = store.RecentFrames(flagLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving frames: %w", err)
	}

	if flagPlayer != "" {
		fmt.Printf("Saved Frames - %s\n", flagPlayer)
	} else {
		fmt.Println("Saved Frames")
	}
	fmt.Println()

	if len(frames) == 0 {
		fmt.Println("No frames saved yet.")
		fmt.Println()
		fmt.Println("Press 's' during 'snooker play' to save a frame result.")
		return nil
	}

	// Print header
	fmt.Printf("  %-16s  %-20s  %-7s  %-20s  %s\n", "Date", "Player 1", "Score", "Player 2", "Left")
	fmt.Printf("  %-16s  %-20s  %-7s  %-20s  %s\n", "----", "--------", "-----", "--------", "----")

	for _, f := range frames {
		fmt.Printf("  %-16s  %-20s  %-7s  %-20s  %d\n",
			f.CreatedAt.Format("2006-01-02 15:04"),
			f.Player1,
			fmt.Sprintf("%d-%d", f.Score1, f.Score2),
			f.Player2,
			f.Remaining,
		)
	}

	if flagPlayer == "" {
		return nil
	}

	stats, err := store.GetPlayerStats(flagPlayer)
	if err != nil {
		return fmt.Errorf("retrieving player stats: %w", err)
	}
	fmt.Println()
	fmt.Printf("Played: %d  Won: %d  Best: %d  Points: %d\n",
		stats.FramesPlayed, stats.FramesWon, stats.HighScore, stats.TotalPoints)
	return nil
}
