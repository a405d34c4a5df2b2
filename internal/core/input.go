package core

// Action represents a semantic game action, abstracted from physical key presses
// and gestures. Games work with these intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, swipe left - shift one lane step left
	ActionRight          // Right arrow, D, swipe right - shift one lane step right
	ActionJump           // Up arrow, W, Space, swipe up - jump when grounded
	ActionRestart        // R, Enter - restart after game over
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Source tells where an intent came from. Keyboard and swipe lane moves use
// different step sizes.
type Source int

const (
	SourceKey Source = iota
	SourceSwipe
)

// Intent is one queued action together with its origin.
type Intent struct {
	Action Action
	Source Source
}

// InputFrame is the ordered queue of intents collected between two ticks.
// The game drains it exactly once per tick, so every intent is applied
// atomically before the physics step of that tick.
type InputFrame struct {
	intents []Intent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{intents: make([]Intent, 0, 4)}
}

// Push appends an intent. ActionNone is dropped.
func (f *InputFrame) Push(a Action, src Source) {
	if a == ActionNone {
		return
	}
	f.intents = append(f.intents, Intent{Action: a, Source: src})
}

// Intents returns the queued intents in arrival order.
func (f InputFrame) Intents() []Intent {
	return f.intents
}

// Clear resets the queue for the next frame, keeping its capacity.
func (f *InputFrame) Clear() {
	f.intents = f.intents[:0]
}

// Gesture is a completed swipe: the pointer went down at Start and up at End.
// Units depend on the producer (terminal cells or screen pixels).
type Gesture struct {
	StartX, StartY float64
	EndX, EndY     float64
}

// Delta returns the swipe vector.
func (g Gesture) Delta() (dx, dy float64) {
	return g.EndX - g.StartX, g.EndY - g.StartY
}

// GestureTracker pairs pointer presses with releases.
type GestureTracker struct {
	down bool
	x, y float64
}

// Press records the start of a gesture. A second press moves the start.
func (t *GestureTracker) Press(x, y float64) {
	t.down = true
	t.x, t.y = x, y
}

// Release completes the gesture. It reports false when nothing was pressed.
func (t *GestureTracker) Release(x, y float64) (Gesture, bool) {
	if !t.down {
		return Gesture{}, false
	}
	t.down = false
	return Gesture{StartX: t.x, StartY: t.y, EndX: x, EndY: y}, true
}

// Active reports whether a press is waiting for its release.
func (t *GestureTracker) Active() bool {
	return t.down
}

// Cancel drops a pending press.
func (t *GestureTracker) Cancel() {
	t.down = false
}
