package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bonarun/internal/games/bonarun"
	"github.com/vovakirdan/bonarun/internal/storage"
)

var (
	flagScoresMode  string
	flagScoresLimit int
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Print the best runs",
	Long: `Display the top runs stored in the scores database.

Modes:
  play  - Runs played by you (default)
  sim   - Autopilot runs
  all   - Both

Examples:
  bonarun scores
  bonarun scores --mode sim --limit 20
  bonarun scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresMode, "mode", storage.ModePlay, "Filter: play, sim or all")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all stored runs")
}

// modeFilter maps the --mode flag to a storage mode.
func modeFilter(mode string) (string, error) {
	switch mode {
	case storage.ModePlay, storage.ModeSim:
		return mode, nil
	case "all", "":
		return "", nil
	default:
		return "", fmt.Errorf("unknown mode %q (want play, sim or all)", mode)
	}
}

func runScores(_ *cobra.Command, _ []string) error {
	mode, err := modeFilter(flagScoresMode)
	if err != nil {
		return err
	}

	path, err := dbPath()
	if err != nil {
		return err
	}
	store, err := storage.Open(path)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(bonarun.GameID); err != nil {
			return err
		}
		fmt.Println("All runs deleted.")
		return nil
	}

	scores, err := store.TopScores(bonarun.GameID, mode, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("High Scores - Bona Run")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'bonarun play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-4s  %-20s  %s\n", "Rank", "Score", "Mode", "Seed", "Date")
	fmt.Printf("  %-4s  %-10s  %-4s  %-20s  %s\n", "----", "-----", "----", "----", "----")

	for i, entry := range scores {
		seed := "-"
		if entry.Seed != 0 {
			seed = fmt.Sprintf("%d", entry.Seed)
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-4s  %-20s  %s\n", i+1, entry.Score, entry.Mode, seed, dateStr)
	}

	stats, err := store.GetGameStats(bonarun.GameID)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	fmt.Println()
	for _, st := range stats {
		fmt.Printf("%s: %d runs, best %d, average %.1f\n", st.Mode, st.GamesCount, st.HighScore, st.AvgScore)
	}
	return nil
}
