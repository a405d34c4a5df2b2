// Package bonarun implements Bona Run, a three-lane endless runner.
// The player dodges trains falling down the track; the score is the number
// of ticks survived.
package bonarun

import (
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/bonarun/internal/config"
	"github.com/vovakirdan/bonarun/internal/core"
	"github.com/vovakirdan/bonarun/internal/registry"
)

// Visual characters for rendering
const (
	PlayerChar  = '█'
	TrainChar   = '▓'
	TrainRoof   = '▀'
	SleeperChar = '─'
	DividerChar = '┊'
	RailChar    = '│'
	GrassChar   = '░'
)

// GameID is the registry and score storage identifier.
const GameID = "bonarun"

const (
	hudRows      = 1  // Rows reserved for the score line
	sleeperEvery = 45 // World pixels between two sleepers
)

var (
	cfgMu         sync.RWMutex
	runnerDefault = config.DefaultRunnerConfig()
)

// Configure sets the configuration used by games created through the registry.
func Configure(cfg config.RunnerConfig) {
	cfgMu.Lock()
	defer cfgMu.Unlock()
	runnerDefault = cfg
}

func configured() config.RunnerConfig {
	cfgMu.RLock()
	defer cfgMu.RUnlock()
	return runnerDefault
}

// soundRelay lets the sink be swapped after the session captured it.
type soundRelay struct {
	target core.Sound
}

func (r *soundRelay) Play(c core.Cue) {
	if r.target != nil {
		r.target.Play(c)
	}
}

// Game adapts a Session to the registry.Game interface and renders it into
// a character screen.
type Game struct {
	cfg     config.RunnerConfig
	session *Session
	sound   *soundRelay

	best       int  // Best score known before this run
	panel      bool // Game-over panel visible
	panelScore int
}

// New creates a Bona Run game with the given configuration.
func New(cfg config.RunnerConfig) *Game {
	return &Game{cfg: cfg, sound: &soundRelay{}}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Bona Run"
}

// Reset starts a new run. The first call creates the session, later calls
// reseed the lanes and restart it.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if g.session == nil {
		g.session = NewSession(g.cfg, rc.Seed, WithSound(g.sound), WithDisplay(g))
		return
	}
	g.session.Reseed(rc.Seed)
	g.session.Restart()
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.session.Step(in)
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.Phase() == GameOver,
	}
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// TimerInterval returns the obstacle spawn period.
func (g *Game) TimerInterval() time.Duration {
	return g.cfg.SpawnInterval()
}

// TimerFire spawns an obstacle. Ignored after game over.
func (g *Game) TimerFire() {
	if g.session != nil {
		g.session.Spawn()
	}
}

// SetSound routes jump and crash cues to s.
func (g *Game) SetSound(s core.Sound) {
	g.sound.target = s
}

// SetHighScore sets the best score shown in the HUD.
func (g *Game) SetHighScore(best int) {
	g.best = best
}

// Swipe converts a gesture measured in cells of a screenW x screenH screen
// to world pixels and translates it to an action.
func (g *Game) Swipe(cells core.Gesture, screenW, screenH int) core.Action {
	sx, sy := g.cellSize(screenW, screenH)
	world := core.Gesture{
		StartX: cells.StartX * sx,
		StartY: cells.StartY * sy,
		EndX:   cells.EndX * sx,
		EndY:   cells.EndY * sy,
	}
	return TranslateGesture(world, g.cfg.Input.SwipeThreshold)
}

// ShowGameOver implements Display.
func (g *Game) ShowGameOver(score int) {
	g.panel = true
	g.panelScore = score
}

// HideGameOver implements Display.
func (g *Game) HideGameOver() {
	g.panel = false
}

// cellSize returns world pixels per screen cell.
func (g *Game) cellSize(w, h int) (float64, float64) {
	playH := core.Max(h-hudRows, 1)
	return g.cfg.World.Width / float64(core.Max(w, 1)), g.cfg.World.Height / float64(playH)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	w, h := dst.Width(), dst.Height()
	sx, sy := g.cellSize(w, h)
	col := func(wx float64) int { return int(wx / sx) }
	row := func(wy float64) int { return hudRows + int(wy/sy) }

	snap := g.session.Snapshot()
	track := g.cfg.Track

	// Grass on both sides of the track
	left, right := col(track.MinX), col(track.MaxX)
	dst.FillRect(0, hudRows, left, h, GrassChar, core.ColorGreen)
	dst.FillRect(right, hudRows, w, h, GrassChar, core.ColorGreen)

	// Sleepers scroll with the trains
	shift := float64(snap.Tick) * g.cfg.Obstacles.FallSpeed
	for wy := -sleeperEvery + core.WrapF(shift, sleeperEvery); wy < g.cfg.World.Height; wy += sleeperEvery {
		y := row(wy)
		if y < hudRows {
			continue
		}
		dst.FillRect(left, y, right, y+1, SleeperChar, core.ColorGray)
	}

	// Rails and lane dividers
	dst.DrawVLine(left, hudRows, h-hudRows, RailChar, core.ColorWhite)
	dst.DrawVLine(core.Max(right-1, left), hudRows, h-hudRows, RailChar, core.ColorWhite)
	for _, x := range track.LaneOffsets[1:] {
		dst.DrawVLine(col(x), hudRows, h-hudRows, DividerChar, core.ColorGray)
	}

	for _, o := range snap.Obstacles {
		g.fill(dst, o.Rect(), col, row, TrainChar, core.ColorRed)
		top := row(o.Y)
		if top >= hudRows {
			dst.FillRect(col(o.X), top, core.Max(col(o.Rect().Right()), col(o.X)+1), top+1, TrainRoof, core.ColorYellow)
		}
	}

	g.fill(dst, snap.Player.Rect(), col, row, PlayerChar, core.ColorCyan)

	g.drawHUD(dst, snap.Score)

	if g.panel {
		g.drawGameOver(dst)
	}
}

func (g *Game) fill(dst *core.Screen, r core.Rect, col, row func(float64) int, ch rune, c core.Color) {
	x0, x1 := col(r.X), col(r.Right())
	y0, y1 := row(r.Y), row(r.Bottom())
	x1 = core.Max(x1, x0+1)
	y1 = core.Max(y1, y0+1)
	if y0 < hudRows {
		y0 = hudRows
	}
	dst.FillRect(x0, y0, x1, y1, ch, c)
}

func (g *Game) drawHUD(dst *core.Screen, score int) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", score), core.ColorBrightWhite)
	dst.DrawTextCentered(0, "BONA RUN", core.ColorSky)

	best := fmt.Sprintf("Best: %d", core.Max(g.best, score))
	dst.DrawText(dst.Width()-len(best)-1, 0, best, core.ColorGray)
}

// drawGameOver draws the game-over panel in the center of the screen.
func (g *Game) drawGameOver(dst *core.Screen) {
	title := "GAME OVER"
	score := fmt.Sprintf("Score: %d  Best: %d", g.panelScore, core.Max(g.best, g.panelScore))
	hint := "R restart · C copy · Q quit"

	boxW := core.Max(len(score), utf8.RuneCountInString(hint)) + 4
	boxH := 7
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxX+boxW, boxY+boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorBrightWhite)
	dst.DrawTextCentered(boxY+1, title, core.ColorRed)
	dst.DrawTextCentered(boxY+3, score, core.ColorBrightWhite)
	dst.DrawTextCentered(boxY+5, hint, core.ColorGray)
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New(configured())
	})
}
