package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bonarun/internal/games/bonarun"
	"github.com/vovakirdan/bonarun/internal/platform/tui"
	"github.com/vovakirdan/bonarun/internal/storage"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse runs and stats interactively",
	Long: `Open a scrollable scoreboard with tabs for your runs, autopilot
runs and both.

Controls:
  Up/Down/j/k     - Scroll
  Tab/Shift+Tab   - Switch tab
  Q/Esc           - Quit`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

func runBoard(_ *cobra.Command, _ []string) error {
	path, err := dbPath()
	if err != nil {
		return err
	}
	store, err := storage.Open(path)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.RunScoreboard(store, bonarun.GameID, "Bona Run", width, height)
}
