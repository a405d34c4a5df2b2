// bonarun is a three-lane endless runner for the terminal.
//
// Usage:
//
//	bonarun play            - Play in the terminal
//	bonarun sim             - Run headless autopilot sessions
//	bonarun scores          - Print the best runs
//	bonarun board           - Browse runs and stats interactively
//	bonarun list            - List registered games
//	bonarun config          - Print the default configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible runs
//	--db <path>          - Set database path (default: $XDG_DATA_HOME/bonarun/scores.db)
//	--log-file <path>    - Set log file (default: $XDG_STATE_HOME/bonarun/bonarun.log)
//	--log-level <level>  - debug, info, warn or error
//	--config <path>      - Use a custom runner config
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bonarun/internal/config"
	"github.com/vovakirdan/bonarun/internal/games/bonarun"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
	flagConfig   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bonarun",
	Short: "Bona Run - dodge trains on a three-lane track",
	Long: `Bona Run is an endless runner: trains fall down three lanes and you
dodge them by switching lanes and jumping. Every tick survived is a point.

Available commands:
  play     - Play in the terminal
  sim      - Run headless autopilot sessions
  scores   - Print the best runs
  board    - Interactive scoreboard
  list     - Show registered games
  config   - Print the default configuration

Examples:
  bonarun play
  bonarun play --seed 42 --fps 30
  bonarun sim --runs 10
  bonarun scores --mode sim`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default: XDG data dir)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Path to log file (default: XDG state dir)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the runner config and makes it the default for new games.
func loadConfig() (config.RunnerConfig, error) {
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return config.RunnerConfig{}, err
	}
	bonarun.Configure(cfg)
	return cfg, nil
}

// dbPath resolves --db, falling back to the XDG data directory.
func dbPath() (string, error) {
	if flagDBPath != "" {
		return flagDBPath, nil
	}
	return config.DataFile("scores.db")
}
