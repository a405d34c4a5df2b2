package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/bonarun/internal/core"
)

// keyBindings maps keys to actions, first match wins.
var keyBindings = []struct {
	keys   []ebiten.Key
	action core.Action
}{
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, core.ActionLeft},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, core.ActionRight},
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeySpace}, core.ActionJump},
	{[]ebiten.Key{ebiten.KeyR, ebiten.KeyEnter}, core.ActionRestart},
	{[]ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}, core.ActionQuit},
}

// pollKeys returns the actions of keys pressed this tick, in binding order.
func pollKeys() []core.Action {
	var out []core.Action
	for _, b := range keyBindings {
		for _, k := range b.keys {
			if inpututil.IsKeyJustPressed(k) {
				out = append(out, b.action)
				break
			}
		}
	}
	return out
}

// pointer follows one touch or the left mouse button and reports finished
// gestures in logical screen pixels.
type pointer struct {
	tracker core.GestureTracker
	touch   ebiten.TouchID
	touched bool
	ids     []ebiten.TouchID
}

// poll returns a gesture when a press was released this tick.
func (p *pointer) poll() (core.Gesture, bool) {
	// Touch: follow the first finger down, ignore the rest
	p.ids = inpututil.AppendJustPressedTouchIDs(p.ids[:0])
	if !p.tracker.Active() && len(p.ids) > 0 {
		p.touch, p.touched = p.ids[0], true
		x, y := ebiten.TouchPosition(p.touch)
		p.tracker.Press(float64(x), float64(y))
	}
	if p.touched && inpututil.IsTouchJustReleased(p.touch) {
		p.touched = false
		x, y := inpututil.TouchPositionInPreviousTick(p.touch)
		return p.tracker.Release(float64(x), float64(y))
	}

	// Mouse
	if !p.tracker.Active() && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		p.tracker.Press(float64(x), float64(y))
	}
	if !p.touched && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return p.tracker.Release(float64(x), float64(y))
	}
	return core.Gesture{}, false
}

// cancel forgets a press in progress so its release is not reported.
func (p *pointer) cancel() {
	p.tracker.Cancel()
}
