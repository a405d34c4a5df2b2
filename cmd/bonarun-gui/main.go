// bonarun-gui plays Bona Run in a window.
//
// Usage:
//
//	bonarun-gui [--seed N] [--fps N] [--config path] [--db path] [--mute]
//
// Controls: arrows or A/D switch lanes, Up/W/Space jumps, a mouse drag or
// touch swipe does the same. R, Enter or a tap restarts after a crash.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bonarun/internal/config"
	"github.com/vovakirdan/bonarun/internal/platform/gui"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagMute     bool
)

// scoreStore is the database the game saves finished runs to.
type scoreStore interface {
	gui.ScoreStore
	Close() error
}

var rootCmd = &cobra.Command{
	Use:           "bonarun-gui",
	Short:         "Play Bona Run in a window",
	Args:          cobra.NoArgs,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagDBPath, "db", "", "Path to scores database (default: XDG data dir)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	lvl, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "bonarun-gui",
		Level:           lvl,
	})

	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return err
	}

	opts := gui.Options{
		Logger:   logger,
		Seed:     flagSeed,
		TickRate: flagFPS,
		Mute:     flagMute,
	}

	if store := openStore(logger); store != nil {
		defer store.Close()
		opts.Store = store
	}

	return gui.Run(cfg, opts)
}
