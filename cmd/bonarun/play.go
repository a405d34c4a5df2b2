package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bonarun/internal/config"
	"github.com/vovakirdan/bonarun/internal/core"
	"github.com/vovakirdan/bonarun/internal/games/bonarun"
	"github.com/vovakirdan/bonarun/internal/platform/tui"
	"github.com/vovakirdan/bonarun/internal/registry"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal.

Controls:
  Left/A, Right/D  - Switch lane
  Up/W/Space       - Jump
  Mouse drag       - Swipe (left, right, up to jump)
  R/Enter          - Restart (after game over)
  C                - Copy your score (after game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Examples:
  bonarun play
  bonarun play --seed 42
  bonarun play --config ./runner.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable the terminal bell")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := bonarun.GameID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'bonarun list')", gameID)
	}

	if _, err := loadConfig(); err != nil {
		return err
	}

	logger, closer, err := openLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	opts := tui.Options{Logger: logger}

	// The game still works without storage
	if store := openStoreOrWarn(logger); store != nil {
		defer store.Close()
		opts.Store = store
	}

	if !flagMute {
		opts.Sound = tui.NewBell(os.Stderr)
	}

	if shot, shotErr := config.StateFile("screenshots/.keep"); shotErr == nil {
		opts.ScreenshotDir = filepath.Dir(shot)
	}

	return tui.Run(game, cfg, opts)
}
