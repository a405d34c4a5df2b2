package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bonarun/internal/config"
	"github.com/vovakirdan/bonarun/internal/core"
	"github.com/vovakirdan/bonarun/internal/games/bonarun"
	"github.com/vovakirdan/bonarun/internal/storage"
)

var (
	flagRuns     int
	flagMaxTicks int
	flagRealtime bool
	flagNoSave   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless autopilot sessions",
	Long: `Let the autopilot play a number of runs without a screen.

By default runs are simulated on a virtual clock as fast as possible.
With --realtime each run goes through the same ticker loop a live game
uses, at --fps ticks per second.

Results are saved to the scores database in "sim" mode, so they never
count as the player's best.

Examples:
  bonarun sim
  bonarun sim --runs 20 --seed 1
  bonarun sim --realtime --fps 120 --max-ticks 3000`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagRuns, "runs", 5, "Number of runs")
	simCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 20000, "End a run after this many ticks (0 = no limit)")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Run through the live ticker loop")
	simCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record results")
}

func runSim(_ *cobra.Command, _ []string) error {
	if flagRuns < 1 {
		return fmt.Errorf("--runs must be at least 1")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := stderrLogger(flagLogLevel)
	if err != nil {
		return err
	}

	var store *storage.Store
	if !flagNoSave {
		store = openStoreOrWarn(logger)
		if store != nil {
			defer store.Close()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	base := flagSeed
	if base == 0 {
		base = time.Now().UnixNano()
	}

	fmt.Printf("  %-4s  %-20s  %-8s  %s\n", "Run", "Seed", "Score", "Result")
	fmt.Printf("  %-4s  %-20s  %-8s  %s\n", "---", "----", "-----", "------")

	best, total := 0, 0
	for i := 0; i < flagRuns; i++ {
		seed := base + int64(i)

		var snap bonarun.Snapshot
		if flagRealtime {
			snap, err = simulateLoop(ctx, cfg, seed, flagFPS, flagMaxTicks)
			if err != nil {
				return err
			}
		} else {
			snap = simulateFast(cfg, seed, flagFPS, flagMaxTicks)
		}

		result := "crashed"
		if snap.Phase == bonarun.Running {
			result = "tick limit"
		}
		logger.Debug("sim run", "run", i+1, "seed", seed, "score", snap.Score, "ticks", snap.Tick, "result", result)
		fmt.Printf("  %-4d  %-20d  %-8d  %s\n", i+1, seed, snap.Score, result)

		best = core.Max(best, snap.Score)
		total += snap.Score

		if store != nil {
			if _, saveErr := store.SaveRun(storage.ScoreEntry{
				GameID: bonarun.GameID,
				Score:  snap.Score,
				Mode:   storage.ModeSim,
				Seed:   seed,
			}); saveErr != nil {
				logger.Warn("could not save run", "seed", seed, "error", saveErr)
			}
		}
	}

	fmt.Println()
	fmt.Printf("Best: %d  Average: %.1f\n", best, float64(total)/float64(flagRuns))
	logger.Info("sim finished", "runs", flagRuns, "best", best)
	return nil
}

// simulateFast plays one autopilot run on a virtual clock. Spawns follow the
// configured interval measured in simulated frame time.
func simulateFast(cfg config.RunnerConfig, seed int64, tickRate, maxTicks int) bonarun.Snapshot {
	if tickRate <= 0 {
		tickRate = 60
	}
	s := bonarun.NewSession(cfg, seed)
	pilot := bonarun.NewAutopilot(cfg)
	clock := bonarun.NewSpawnClock(cfg.SpawnInterval())
	frame := time.Second / time.Duration(tickRate)
	in := core.NewInputFrame()

	now := time.Unix(0, 0)
	clock.Start(now)
	for s.Phase() == bonarun.Running && (maxTicks <= 0 || s.Ticks() < maxTicks) {
		now = now.Add(frame)
		if clock.Fire(now) {
			s.Spawn()
		}
		if a := pilot.Decide(s.Snapshot()); a != core.ActionNone {
			in.Push(a, core.SourceKey)
		}
		s.Step(in)
		in.Clear()
	}
	return s.Snapshot()
}

// simulateLoop plays one autopilot run through a live Loop. The autopilot
// runs in this goroutine and talks to the loop only through its inbox.
func simulateLoop(ctx context.Context, cfg config.RunnerConfig, seed int64, tickRate, maxTicks int) (bonarun.Snapshot, error) {
	loop := bonarun.NewLoop(bonarun.NewSession(cfg, seed), tickRate)
	pilot := bonarun.NewAutopilot(cfg)

	frames := make(chan bonarun.Snapshot, 1)
	over := make(chan bonarun.Snapshot, 1)
	loop.OnFrame = func(snap bonarun.Snapshot) {
		select {
		case frames <- snap:
		default: // pilot still thinking; it gets the next frame
		}
	}
	loop.OnGameOver = func(snap bonarun.Snapshot) {
		over <- snap
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- loop.Run(ctx)
	}()

	finish := func(snap bonarun.Snapshot) (bonarun.Snapshot, error) {
		cancel()
		<-done
		return snap, nil
	}

	for {
		select {
		case snap := <-over:
			return finish(snap)

		case snap := <-frames:
			if maxTicks > 0 && snap.Tick >= maxTicks {
				return finish(snap)
			}
			a := pilot.Decide(snap)
			if a == core.ActionNone {
				continue
			}
			if err := loop.Post(ctx, core.Intent{Action: a, Source: core.SourceKey}); err != nil {
				cancel()
				<-done
				return bonarun.Snapshot{}, err
			}

		case err := <-done:
			return bonarun.Snapshot{}, err
		}
	}
}

// openStoreOrWarn opens the scores database, logging instead of failing.
func openStoreOrWarn(logger *log.Logger) *storage.Store {
	path, err := dbPath()
	if err != nil {
		logger.Warn("no scores database", "error", err)
		return nil
	}
	store, err := storage.Open(path)
	if err != nil {
		logger.Warn("could not open scores database", "path", path, "error", err)
		return nil
	}
	return store
}
