package tui

import (
	"io"

	"github.com/vovakirdan/bonarun/internal/core"
)

// Bell plays every cue as the terminal bell. Terminals have one sound, so
// jump and crash are indistinguishable.
type Bell struct {
	w io.Writer
}

// NewBell creates a bell that writes to w (usually os.Stderr, which Bubble Tea
// does not render to).
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Play implements core.Sound. Write errors are ignored.
func (b *Bell) Play(core.Cue) {
	if b == nil || b.w == nil {
		return
	}
	//nolint:errcheck // Best-effort cue
	b.w.Write([]byte{'\a'})
}
