package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bonarun/internal/core"
	"github.com/vovakirdan/bonarun/internal/storage"
)

// fakeGame ends after endAfter steps and records every frame it sees.
type fakeGame struct {
	steps    int
	endAfter int
	resets   int
	fired    int
	frames   [][]core.Intent
	best     int
	sound    core.Sound
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake Run" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.steps = 0
	g.resets++
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	if g.steps < g.endAfter {
		g.steps++
	}
	g.frames = append(g.frames, append([]core.Intent(nil), in.Intents()...))
	return core.StepResult{State: g.State()}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "FAKE", core.ColorRed)
}

func (g *fakeGame) State() core.GameState {
	return core.GameState{Score: g.steps, GameOver: g.steps >= g.endAfter}
}

func (g *fakeGame) TimerInterval() time.Duration { return time.Second }
func (g *fakeGame) TimerFire()                   { g.fired++ }
func (g *fakeGame) SetHighScore(best int)        { g.best = best }
func (g *fakeGame) SetSound(s core.Sound)        { g.sound = s }

func (g *fakeGame) Swipe(c core.Gesture, w, h int) core.Action {
	if dx, _ := c.Delta(); dx < 0 {
		return core.ActionLeft
	}
	return core.ActionRight
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, g *fakeGame, store *storage.Store) Model {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}
	return NewModel(g, cfg, Options{Store: store, Sound: NewBell(nil)})
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelStopsTickingOnGameOver(t *testing.T) {
	g := &fakeGame{endAfter: 3}
	m := newTestModel(t, g, nil)

	var cmd tea.Cmd
	for i := 0; i < 2; i++ {
		m, cmd = step(t, m, TickMsg{Epoch: m.epoch})
		if cmd == nil {
			t.Fatalf("tick %d: expected next tick to be scheduled", i)
		}
	}

	m, cmd = step(t, m, TickMsg{Epoch: m.epoch})
	if !m.State().GameOver {
		t.Fatal("expected game over")
	}
	if cmd != nil {
		t.Error("no tick may be scheduled after game over")
	}

	// Late ticks and timers are ignored
	m, _ = step(t, m, TickMsg{Epoch: m.epoch})
	m, cmd = step(t, m, TimerMsg{Epoch: m.epoch})
	if cmd != nil || g.fired != 0 {
		t.Error("timer fired after game over")
	}
	if len(g.frames) != 3 {
		t.Errorf("game stepped %d times, want 3", len(g.frames))
	}
}

func TestModelRestart(t *testing.T) {
	g := &fakeGame{endAfter: 1}
	m := newTestModel(t, g, nil)

	// Restart is ignored while running
	m, cmd := step(t, m, keyRunes("r"))
	if cmd != nil || g.resets != 1 {
		t.Fatal("restart while running should be ignored")
	}

	m, _ = step(t, m, TickMsg{Epoch: m.epoch})
	if !m.State().GameOver {
		t.Fatal("expected game over")
	}

	oldEpoch := m.epoch
	m, cmd = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("restart should resume the tick loop")
	}
	if g.resets != 2 || m.State().GameOver {
		t.Errorf("resets = %d, state = %+v", g.resets, m.State())
	}
	if m.epoch == oldEpoch {
		t.Error("epoch not advanced")
	}

	// A tick from the old run is dropped
	before := len(g.frames)
	m, cmd = step(t, m, TickMsg{Epoch: oldEpoch})
	if cmd != nil || len(g.frames) != before {
		t.Error("stale tick was processed")
	}
}

func TestModelSwipeAcrossCrashDoesNotRestart(t *testing.T) {
	g := &fakeGame{endAfter: 1}
	m := newTestModel(t, g, nil)

	m, _ = step(t, m, tea.MouseMsg{X: 20, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	m, _ = step(t, m, TickMsg{Epoch: m.epoch})
	if !m.State().GameOver {
		t.Fatal("expected game over")
	}

	m, cmd := step(t, m, tea.MouseMsg{X: 12, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	if cmd != nil || g.resets != 1 || !m.State().GameOver {
		t.Fatalf("release of a pre-crash press restarted: resets = %d", g.resets)
	}

	// Press and release both on the game over screen
	m, _ = step(t, m, tea.MouseMsg{X: 20, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	m, cmd = step(t, m, tea.MouseMsg{X: 20, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	if cmd == nil || g.resets != 2 || m.State().GameOver {
		t.Errorf("tap on game over: resets = %d, state = %+v", g.resets, m.State())
	}
}

func TestModelQueuesIntentsInOrder(t *testing.T) {
	g := &fakeGame{endAfter: 100}
	m := newTestModel(t, g, nil)

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = step(t, m, keyRunes("d"))
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m, _ = step(t, m, TickMsg{Epoch: m.epoch})
	m, _ = step(t, m, TickMsg{Epoch: m.epoch})

	if len(g.frames) != 2 {
		t.Fatalf("frames = %d, want 2", len(g.frames))
	}
	want := []core.Action{core.ActionLeft, core.ActionRight, core.ActionJump}
	got := g.frames[0]
	if len(got) != len(want) {
		t.Fatalf("first frame = %v, want %v", got, want)
	}
	for i := range want {
		if got[i].Action != want[i] || got[i].Source != core.SourceKey {
			t.Errorf("intent %d = %+v, want key %v", i, got[i], want[i])
		}
	}
	if len(g.frames[1]) != 0 {
		t.Errorf("second frame = %v, want empty (drained once)", g.frames[1])
	}
}

func TestModelMouseSwipe(t *testing.T) {
	g := &fakeGame{endAfter: 100}
	m := newTestModel(t, g, nil)

	m, _ = step(t, m, tea.MouseMsg{X: 20, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	m, _ = step(t, m, tea.MouseMsg{X: 12, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	m, _ = step(t, m, TickMsg{Epoch: m.epoch})

	if len(g.frames) != 1 || len(g.frames[0]) != 1 {
		t.Fatalf("frames = %v", g.frames)
	}
	if in := g.frames[0][0]; in.Action != core.ActionLeft || in.Source != core.SourceSwipe {
		t.Errorf("intent = %+v, want swipe left", in)
	}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()
	store.SaveScore("fake", 2) //nolint:errcheck

	g := &fakeGame{endAfter: 5}
	m := newTestModel(t, g, store)
	if g.best != 2 {
		t.Errorf("best = %d, want 2 from store", g.best)
	}

	for i := 0; i < 10; i++ {
		m, _ = step(t, m, TickMsg{Epoch: m.epoch})
	}

	scores, err := store.TopScores("fake", storage.ModePlay, 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 2 || scores[0].Score != 5 {
		t.Errorf("scores = %+v, want [5 2]", scores)
	}

	m, _ = step(t, m, keyRunes("r"))
	if g.best != 5 {
		t.Errorf("best after restart = %d, want 5", g.best)
	}
}

func TestModelCopyScore(t *testing.T) {
	g := &fakeGame{endAfter: 1}
	m := newTestModel(t, g, nil)

	var copied string
	m.copyText = func(s string) error {
		copied = s
		return nil
	}

	m, _ = step(t, m, keyRunes("c"))
	if copied != "" {
		t.Error("copy should only work after game over")
	}

	m, _ = step(t, m, TickMsg{Epoch: m.epoch})
	m, _ = step(t, m, keyRunes("c"))
	if copied != "I scored 1 in Fake Run" {
		t.Errorf("copied %q", copied)
	}
	if !strings.Contains(m.View(), "Copied") {
		t.Error("flash message not shown")
	}

	m.copyText = func(string) error { return errors.New("no clipboard") }
	m, _ = step(t, m, keyRunes("c"))
	if !strings.Contains(m.View(), "Clipboard unavailable") {
		t.Error("clipboard failure not reported")
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	g := &fakeGame{endAfter: 10}
	cfg := core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60, Seed: 1}
	m := NewModel(g, cfg, Options{ScreenshotDir: dir})

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := filepath.Glob(filepath.Join(dir, "fake_*.txt"))
	if err != nil || len(files) != 1 {
		t.Fatalf("screenshots = %v, err = %v", files, err)
	}
}

func TestModelQuit(t *testing.T) {
	g := &fakeGame{endAfter: 10}
	m := newTestModel(t, g, nil)

	m, cmd := step(t, m, keyRunes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestModelViewIncludesHelp(t *testing.T) {
	g := &fakeGame{endAfter: 10}
	m := newTestModel(t, g, nil)

	view := m.View()
	if !strings.Contains(view, "FAKE") {
		t.Error("game screen missing from view")
	}
	if !strings.Contains(view, "left") {
		t.Error("help bar missing from view")
	}
}
