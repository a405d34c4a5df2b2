package bonarun

import (
	"github.com/vovakirdan/bonarun/internal/config"
	"github.com/vovakirdan/bonarun/internal/core"
)

// DefaultLookahead is how far above the player (world pixels) the autopilot
// starts treating an obstacle as a threat.
const DefaultLookahead = 260

// Autopilot is a greedy bot: it steers toward the nearest lane with no
// obstacle inside the lookahead window and otherwise re-centers in its lane.
type Autopilot struct {
	cfg       config.RunnerConfig
	Lookahead float64
}

// NewAutopilot creates a bot for the given track.
func NewAutopilot(cfg config.RunnerConfig) *Autopilot {
	return &Autopilot{cfg: cfg, Lookahead: DefaultLookahead}
}

// laneTarget returns the player X that centers it in lane i.
func (a *Autopilot) laneTarget(i int) float64 {
	x := a.cfg.Track.LaneOffsets[i] + (a.cfg.Obstacles.Width-a.cfg.Player.Width)/2
	return core.ClampF(x, a.cfg.Track.LaneMinX, a.cfg.Track.LaneMaxX-a.cfg.Player.Width)
}

// threatened reports whether a player column at x would be hit soon.
func (a *Autopilot) threatened(snap Snapshot, x float64) bool {
	p := snap.Player
	window := core.NewRect(x, p.Y-a.Lookahead, p.Width, p.Height+a.Lookahead)
	for _, o := range snap.Obstacles {
		if window.Intersects(o.Rect()) {
			return true
		}
	}
	return false
}

// Decide picks one keyboard action for the next tick.
func (a *Autopilot) Decide(snap Snapshot) core.Action {
	if snap.Phase != Running {
		return core.ActionNone
	}

	x := snap.Player.X
	best := -1
	bestDist := 0.0
	for i := range a.cfg.Track.LaneOffsets {
		target := a.laneTarget(i)
		if a.threatened(snap, target) {
			continue
		}
		d := core.AbsF(target - x)
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return core.ActionNone
	}

	target := a.laneTarget(best)
	half := a.cfg.Input.KeyStep / 2
	switch {
	case target < x-half:
		return core.ActionLeft
	case target > x+half:
		return core.ActionRight
	}
	return core.ActionNone
}
