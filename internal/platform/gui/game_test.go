package gui

import (
	"encoding/binary"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/bonarun/internal/config"
	"github.com/vovakirdan/bonarun/internal/core"
	"github.com/vovakirdan/bonarun/internal/games/bonarun"
	"github.com/vovakirdan/bonarun/internal/storage"
)

// pointerEvent is one press or release in logical pixels.
type pointerEvent struct {
	release bool
	x, y    float64
}

// scripted replays pointer events through a real tracker, one per poll.
type scripted struct {
	events  []pointerEvent
	tracker core.GestureTracker
}

func (s *scripted) poll() (core.Gesture, bool) {
	if len(s.events) == 0 {
		return core.Gesture{}, false
	}
	e := s.events[0]
	s.events = s.events[1:]
	if !e.release {
		s.tracker.Press(e.x, e.y)
		return core.Gesture{}, false
	}
	return s.tracker.Release(e.x, e.y)
}

func (s *scripted) cancel() { s.tracker.Cancel() }

// swipe scripts a press at (x0, y0) and a release at (x1, y1) on the next poll.
func swipe(x0, y0, x1, y1 float64) []pointerEvent {
	return []pointerEvent{{x: x0, y: y0}, {release: true, x: x1, y: y1}}
}

type cues []core.Cue

func (c *cues) Play(cue core.Cue) { *c = append(*c, cue) }

func newTestGame(t *testing.T, opts Options) (*Game, *cues) {
	t.Helper()
	var played cues
	opts.Seed = 1
	g := NewGame(config.DefaultRunnerConfig(), &played, opts)
	frozen := time.Now()
	g.now = func() time.Time { return frozen }
	return g, &played
}

// crash puts a train in the player's lane and ticks until it hits.
func crash(t *testing.T, g *Game) {
	t.Helper()
	g.Session().SpawnInLane(1)
	for i := 0; i < 200 && g.Session().Phase() == bonarun.Running; i++ {
		if err := g.update(nil, &scripted{}); err != nil {
			t.Fatalf("update: %v", err)
		}
	}
	if g.Session().Phase() != bonarun.GameOver {
		t.Fatal("expected game over")
	}
}

func TestUpdateKeys(t *testing.T) {
	g, _ := newTestGame(t, Options{})

	if err := g.update([]core.Action{core.ActionLeft}, &scripted{}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if x := g.Session().Player().X; x != 361 {
		t.Errorf("X = %v, want 361", x)
	}
	if s := g.Session().Score(); s != 1 {
		t.Errorf("score = %d, want 1", s)
	}
}

func TestUpdateSwipe(t *testing.T) {
	g, _ := newTestGame(t, Options{})

	p := &scripted{events: swipe(400, 200, 460, 210)}
	for i := 0; i < 2; i++ {
		if err := g.update(nil, p); err != nil {
			t.Fatalf("update: %v", err)
		}
	}
	if x := g.Session().Player().X; x != 389 {
		t.Errorf("X = %v, want 389", x)
	}

	// Too short to count
	p = &scripted{events: swipe(400, 200, 410, 200)}
	g.update(nil, p) //nolint:errcheck
	g.update(nil, p) //nolint:errcheck
	if x := g.Session().Player().X; x != 389 {
		t.Errorf("X after short swipe = %v, want 389", x)
	}
}

func TestUpdateQuit(t *testing.T) {
	g, _ := newTestGame(t, Options{})
	err := g.update([]core.Action{core.ActionQuit}, &scripted{})
	if !errors.Is(err, ebiten.Termination) {
		t.Errorf("update() = %v, want ebiten.Termination", err)
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g, played := newTestGame(t, Options{})
	crash(t, g)

	if !g.panel || g.panelScore != g.Session().Score() {
		t.Errorf("panel = %v score %d, want shown with %d", g.panel, g.panelScore, g.Session().Score())
	}
	if g.clock.Fire(g.now().Add(time.Hour)) {
		t.Error("spawn clock should stop on game over")
	}
	if len(*played) != 1 || (*played)[0] != core.CueCrash {
		t.Errorf("cues = %v, want one crash", *played)
	}

	// Movement is ignored while over
	score := g.Session().Score()
	g.update([]core.Action{core.ActionLeft}, &scripted{}) //nolint:errcheck
	if g.Session().Score() != score || g.Session().Phase() != bonarun.GameOver {
		t.Error("state changed after game over")
	}

	// A tap restarts
	tap := &scripted{events: swipe(400, 200, 400, 200)}
	g.update(nil, tap) //nolint:errcheck
	g.update(nil, tap) //nolint:errcheck
	if g.Session().Phase() != bonarun.Running || g.Session().Score() != 0 {
		t.Errorf("after restart: phase %v score %d", g.Session().Phase(), g.Session().Score())
	}
	if g.panel {
		t.Error("panel should be hidden after restart")
	}
	if !g.clock.Fire(g.now().Add(time.Hour)) {
		t.Error("spawn clock should run again")
	}
}

func TestSwipeAcrossCrashDoesNotRestart(t *testing.T) {
	g, _ := newTestGame(t, Options{})
	g.Session().SpawnInLane(1)

	// Finger goes down while running and stays down through the crash
	p := &scripted{events: []pointerEvent{{x: 400, y: 200}}}
	for i := 0; i < 200 && g.Session().Phase() == bonarun.Running; i++ {
		g.update(nil, p) //nolint:errcheck
	}
	if g.Session().Phase() != bonarun.GameOver {
		t.Fatal("expected game over")
	}
	score := g.Session().Score()

	p.events = []pointerEvent{{release: true, x: 460, y: 200}}
	g.update(nil, p) //nolint:errcheck
	if g.Session().Phase() != bonarun.GameOver || g.Session().Score() != score {
		t.Errorf("release of a pre-crash press restarted: phase %v score %d", g.Session().Phase(), g.Session().Score())
	}

	// A fresh press and release on the game over screen does restart
	p.events = swipe(400, 200, 400, 200)
	g.update(nil, p) //nolint:errcheck
	g.update(nil, p) //nolint:errcheck
	if g.Session().Phase() != bonarun.Running {
		t.Errorf("phase = %v after a tap on game over, want running", g.Session().Phase())
	}
}

func TestRestartKeyIgnoredWhileRunning(t *testing.T) {
	g, _ := newTestGame(t, Options{})
	for i := 0; i < 5; i++ {
		g.update([]core.Action{core.ActionRestart}, &scripted{}) //nolint:errcheck
	}
	if s := g.Session().Score(); s != 5 {
		t.Errorf("score = %d, want 5", s)
	}
}

func TestScoreSavedOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	g, _ := newTestGame(t, Options{Store: store})
	crash(t, g)
	g.update(nil, &scripted{}) //nolint:errcheck

	scores, err := store.TopScores(bonarun.GameID, storage.ModePlay, 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != g.Session().Score() {
		t.Fatalf("scores = %+v", scores)
	}

	g.update([]core.Action{core.ActionRestart}, &scripted{}) //nolint:errcheck
	if g.best != scores[0].Score {
		t.Errorf("best = %d, want %d", g.best, scores[0].Score)
	}
}

func TestZeroScoreNotSaved(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	g, _ := newTestGame(t, Options{Store: store})
	g.onGameOver()

	scores, err := store.TopScores(bonarun.GameID, storage.ModePlay, 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("scores = %+v, want none for a zero score", scores)
	}
	if g.saved {
		t.Error("a skipped save should not mark the run saved")
	}
}

func TestLayoutIsWorldSize(t *testing.T) {
	g, _ := newTestGame(t, Options{})
	w, h := g.Layout(1920, 1080)
	if w != 800 || h != 450 {
		t.Errorf("Layout() = %dx%d, want 800x450", w, h)
	}
}

func TestSweep(t *testing.T) {
	buf := sweep(440, 220, 100*time.Millisecond, SampleRate, 0.5)

	samples := len(buf) / 4
	if want := SampleRate / 10; samples != want {
		t.Fatalf("samples = %d, want %d", samples, want)
	}

	peak := 0
	for i := 0; i < samples; i++ {
		l := int16(binary.LittleEndian.Uint16(buf[4*i:]))
		r := int16(binary.LittleEndian.Uint16(buf[4*i+2:]))
		if l != r {
			t.Fatalf("sample %d: left %d != right %d", i, l, r)
		}
		if v := int(l); v > peak {
			peak = v
		} else if -v > peak {
			peak = -v
		}
	}
	if peak == 0 || peak > 32767/2+1 {
		t.Errorf("peak = %d, want within half scale", peak)
	}
}
