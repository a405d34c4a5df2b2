package bonarun

import (
	"github.com/vovakirdan/bonarun/internal/config"
	"github.com/vovakirdan/bonarun/internal/core"
)

// Direction is a horizontal lane move direction.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

// Player is the runner sprite. Coordinates are world pixels, Y grows downward.
type Player struct {
	X, Y          float64
	Width, Height float64
	VelocityY     float64
	Grounded      bool

	gravity     float64
	jumpImpulse float64
	minX, maxX  float64 // Allowed range for X
}

// NewPlayer creates a player at the configured spawn point, falling freely.
func NewPlayer(cfg config.RunnerConfig) Player {
	return Player{
		X:           cfg.Player.X,
		Y:           cfg.Player.Y,
		Width:       cfg.Player.Width,
		Height:      cfg.Player.Height,
		gravity:     cfg.Player.Gravity,
		jumpImpulse: cfg.Player.JumpImpulse,
		minX:        cfg.Track.LaneMinX,
		maxX:        cfg.Track.LaneMaxX - cfg.Player.Width,
	}
}

// ApplyGravity integrates one tick of vertical motion.
func (p *Player) ApplyGravity() {
	p.VelocityY += p.gravity
	p.Y += p.VelocityY
}

// ResolveGroundContact snaps the player onto the floor once it reaches it.
// This is the only place Grounded becomes true.
func (p *Player) ResolveGroundContact(floorY float64) {
	if p.Y+p.Height >= floorY {
		p.Y = floorY - p.Height
		p.VelocityY = 0
		p.Grounded = true
	}
}

// Jump launches the player upward. It reports false and changes nothing
// while airborne, so there are no double jumps.
func (p *Player) Jump() bool {
	if !p.Grounded {
		return false
	}
	p.VelocityY = p.jumpImpulse
	p.Grounded = false
	return true
}

// MoveLane shifts the player horizontally by step, clamped to the track.
func (p *Player) MoveLane(dir Direction, step float64) {
	p.X = core.ClampF(p.X+float64(dir)*step, p.minX, p.maxX)
}

// Rect returns the player's collision rectangle.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}
