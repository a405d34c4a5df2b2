package bonarun

import (
	"math/rand"

	"github.com/vovakirdan/bonarun/internal/config"
	"github.com/vovakirdan/bonarun/internal/core"
)

// Obstacle is a train falling down one lane toward the player.
type Obstacle struct {
	X, Y          float64
	Width, Height float64
	FallSpeed     float64
}

// Rect returns the collision rectangle for this obstacle.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}

// Field handles spawning, movement, and removal of obstacles.
// Slice order is spawn order and carries no other meaning.
type Field struct {
	obstacles []Obstacle
	rng       *rand.Rand
	cfg       *config.RunnerConfig
}

// NewField creates an empty obstacle field with the given RNG seed.
func NewField(seed int64, cfg *config.RunnerConfig) *Field {
	return &Field{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rand.New(rand.NewSource(seed)),
		cfg:       cfg,
	}
}

// Reseed replaces the lane RNG.
func (f *Field) Reseed(seed int64) {
	f.rng = rand.New(rand.NewSource(seed))
}

// Clear removes every obstacle.
func (f *Field) Clear() {
	f.obstacles = f.obstacles[:0]
}

// Spawn creates an obstacle above the visible area in a uniformly random lane.
func (f *Field) Spawn() Obstacle {
	return f.SpawnInLane(f.rng.Intn(len(f.cfg.Track.LaneOffsets)))
}

// SpawnInLane creates an obstacle in the given lane (0-based, clamped).
func (f *Field) SpawnInLane(lane int) Obstacle {
	lane = core.Clamp(lane, 0, len(f.cfg.Track.LaneOffsets)-1)
	o := Obstacle{
		X:         f.cfg.Track.LaneOffsets[lane],
		Y:         f.cfg.Obstacles.SpawnY,
		Width:     f.cfg.Obstacles.Width,
		Height:    f.cfg.Obstacles.Height,
		FallSpeed: f.cfg.Obstacles.FallSpeed,
	}
	f.obstacles = append(f.obstacles, o)
	return o
}

// Advance moves every obstacle down by its fall speed.
func (f *Field) Advance() {
	for i := range f.obstacles {
		f.obstacles[i].Y += f.obstacles[i].FallSpeed
	}
}

// Prune removes obstacles whose top edge has reached the visible height.
// Returns the number of removed obstacles.
func (f *Field) Prune(height float64) int {
	kept := f.obstacles[:0]
	for _, o := range f.obstacles {
		if o.Y < height {
			kept = append(kept, o)
		}
	}
	removed := len(f.obstacles) - len(kept)
	f.obstacles = kept
	return removed
}

// FirstHit returns the index of the first obstacle overlapping r.
func (f *Field) FirstHit(r core.Rect) (int, bool) {
	for i, o := range f.obstacles {
		if r.Intersects(o.Rect()) {
			return i, true
		}
	}
	return -1, false
}

// Obstacles returns the live obstacles. The slice is owned by the field.
func (f *Field) Obstacles() []Obstacle {
	return f.obstacles
}

// Len returns the number of live obstacles.
func (f *Field) Len() int {
	return len(f.obstacles)
}
