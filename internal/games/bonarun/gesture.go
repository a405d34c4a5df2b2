package bonarun

import "github.com/vovakirdan/bonarun/internal/core"

// TranslateGesture maps a completed swipe in world pixels to one intent.
// The axis with the larger magnitude wins; swipes shorter than threshold
// along that axis, exact diagonals and downward swipes yield ActionNone.
// A swipe up always yields ActionJump; whether it lifts off is decided by
// the grounded check at apply time.
func TranslateGesture(g core.Gesture, threshold float64) core.Action {
	dx, dy := g.Delta()
	adx, ady := core.AbsF(dx), core.AbsF(dy)

	switch {
	case adx > ady && dx < -threshold:
		return core.ActionLeft
	case adx > ady && dx > threshold:
		return core.ActionRight
	case ady > adx && dy < -threshold:
		return core.ActionJump
	}
	return core.ActionNone
}
