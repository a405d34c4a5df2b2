// Package gui runs Bona Run in a window (or a browser, or on a phone)
// with Ebitengine. The session is stepped from Update at the configured
// TPS; obstacle spawns follow a wall-clock SpawnClock.
package gui

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/bonarun/internal/config"
	"github.com/vovakirdan/bonarun/internal/core"
	"github.com/vovakirdan/bonarun/internal/games/bonarun"
)

// ScoreStore keeps finished runs. *storage.Store implements it; browser
// builds run without one.
type ScoreStore interface {
	SaveScore(gameID string, score int) (int64, error)
	HighScore(gameID string) (int, error)
}

// Options configures the graphical front end. Every field is optional.
type Options struct {
	Store    ScoreStore
	Logger   *log.Logger
	Seed     int64 // 0: time based
	TickRate int   // 0: 60
	Mute     bool
}

// Game implements ebiten.Game for one Bona Run session.
type Game struct {
	cfg     config.RunnerConfig
	session *bonarun.Session
	clock   *bonarun.SpawnClock
	input   core.InputFrame
	pointer pointer
	store   ScoreStore
	logger  *log.Logger
	now     func() time.Time

	best       int
	panel      bool
	panelScore int
	saved      bool
}

// NewGame creates a running game. sound may be nil.
func NewGame(cfg config.RunnerConfig, sound core.Sound, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		cfg:    cfg,
		clock:  bonarun.NewSpawnClock(cfg.SpawnInterval()),
		input:  core.NewInputFrame(),
		store:  opts.Store,
		logger: logger,
		now:    time.Now,
	}
	g.session = bonarun.NewSession(cfg, seed, bonarun.WithSound(sound), bonarun.WithDisplay(g))
	g.clock.Start(g.now())
	g.refreshHighScore()
	g.logger.Info("session started", "seed", seed)
	return g
}

// ShowGameOver implements bonarun.Display.
func (g *Game) ShowGameOver(score int) {
	g.panel = true
	g.panelScore = score
}

// HideGameOver implements bonarun.Display.
func (g *Game) HideGameOver() {
	g.panel = false
}

// Update advances the game by one tick.
func (g *Game) Update() error {
	return g.update(pollKeys(), &g.pointer)
}

// gesturePoller is satisfied by pointer; tests substitute scripted input.
type gesturePoller interface {
	poll() (core.Gesture, bool)
	cancel()
}

func (g *Game) update(keys []core.Action, p gesturePoller) error {
	now := g.now()
	gesture, released := p.poll()

	for _, a := range keys {
		if a == core.ActionQuit {
			return ebiten.Termination
		}
	}

	if g.session.Phase() == bonarun.GameOver {
		restart := released
		for _, a := range keys {
			restart = restart || a == core.ActionRestart
		}
		if restart {
			g.restart(now)
		}
		return nil
	}

	for _, a := range keys {
		if a != core.ActionRestart {
			g.input.Push(a, core.SourceKey)
		}
	}
	if released {
		g.input.Push(bonarun.TranslateGesture(gesture, g.cfg.Input.SwipeThreshold), core.SourceSwipe)
	}

	if g.clock.Fire(now) {
		g.session.Spawn()
	}
	g.session.Step(g.input)
	g.input.Clear()

	if g.session.Phase() == bonarun.GameOver {
		// Only a press made on the game over screen may restart
		p.cancel()
		g.clock.Stop()
		g.onGameOver()
	}
	return nil
}

// onGameOver saves the final score once per run.
func (g *Game) onGameOver() {
	score := g.session.Score()
	g.logger.Info("game over", "score", score, "ticks", g.session.Ticks())

	if g.saved || g.store == nil || score <= 0 {
		return
	}
	g.saved = true
	if _, err := g.store.SaveScore(bonarun.GameID, score); err != nil {
		g.logger.Warn("could not save score", "error", err)
	}
}

func (g *Game) restart(now time.Time) {
	seed := now.UnixNano()
	g.refreshHighScore()
	g.session.Reseed(seed)
	g.session.Restart()
	g.input.Clear()
	g.clock.Start(now)
	g.saved = false
	g.logger.Info("restart", "seed", seed)
}

func (g *Game) refreshHighScore() {
	if g.store == nil {
		return
	}
	best, err := g.store.HighScore(bonarun.GameID)
	if err != nil {
		g.logger.Warn("could not load high score", "error", err)
		return
	}
	g.best = best
}

// Session exposes the running session.
func (g *Game) Session() *bonarun.Session {
	return g.session
}

// Layout fixes the logical screen to the world size; Ebitengine scales it
// to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(g.cfg.World.Width), int(g.cfg.World.Height)
}

// Run opens a window and plays until it is closed.
func Run(cfg config.RunnerConfig, opts Options) error {
	var sound core.Sound
	if !opts.Mute {
		sound = NewBeeper(audio.NewContext(SampleRate))
	}

	tps := opts.TickRate
	if tps <= 0 {
		tps = 60
	}

	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(int(cfg.World.Width), int(cfg.World.Height))
	ebiten.SetWindowTitle("Bona Run")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// RunGame returns nil when Update returns ebiten.Termination
	return ebiten.RunGame(NewGame(cfg, sound, opts))
}
