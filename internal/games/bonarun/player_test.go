package bonarun

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/bonarun/internal/config"
)

func groundedPlayer(t *testing.T) Player {
	t.Helper()
	cfg := config.DefaultRunnerConfig()
	p := NewPlayer(cfg)
	for i := 0; i < 100 && !p.Grounded; i++ {
		p.ApplyGravity()
		p.ResolveGroundContact(cfg.World.FloorY)
	}
	if !p.Grounded {
		t.Fatal("player never landed")
	}
	return p
}

func TestPlayerSpawnsAirborneAndLands(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	p := NewPlayer(cfg)

	if p.Grounded {
		t.Fatal("player should spawn airborne")
	}
	if p.X != 375 || p.Y != 350 {
		t.Fatalf("spawn = (%v, %v), want (375, 350)", p.X, p.Y)
	}

	ticks := 0
	for !p.Grounded {
		p.ApplyGravity()
		p.ResolveGroundContact(cfg.World.FloorY)
		ticks++
	}

	if ticks != 14 {
		t.Errorf("landed after %d ticks, want 14", ticks)
	}
	if p.Y != cfg.World.FloorY-p.Height {
		t.Errorf("Y = %v, want %v", p.Y, cfg.World.FloorY-p.Height)
	}
	if p.VelocityY != 0 {
		t.Errorf("VelocityY = %v, want 0", p.VelocityY)
	}
}

func TestPlayerJumpOnlyWhenGrounded(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	p := groundedPlayer(t)

	if !p.Jump() {
		t.Fatal("grounded jump should succeed")
	}
	if p.Grounded {
		t.Error("player should be airborne after jump")
	}
	if p.VelocityY != cfg.Player.JumpImpulse {
		t.Errorf("VelocityY = %v, want %v", p.VelocityY, cfg.Player.JumpImpulse)
	}

	// Airborne: no double jump, and grounded stays false until contact
	p.ApplyGravity()
	p.ResolveGroundContact(cfg.World.FloorY)
	before := p
	if p.Jump() {
		t.Error("airborne jump should be rejected")
	}
	if p != before {
		t.Error("airborne jump must not change the player")
	}

	airborne := 0
	for !p.Grounded {
		p.ApplyGravity()
		p.ResolveGroundContact(cfg.World.FloorY)
		airborne++
		if airborne > 200 {
			t.Fatal("player never came back down")
		}
	}
	if !p.Jump() {
		t.Error("jump after landing should succeed")
	}
}

func TestPlayerMoveLaneClamps(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	minX := cfg.Track.LaneMinX
	maxX := cfg.Track.LaneMaxX - cfg.Player.Width
	if minX != 250 || maxX != 450 {
		t.Fatalf("player range = [%v, %v], want [250, 450]", minX, maxX)
	}

	rng := rand.New(rand.NewSource(7))
	p := NewPlayer(cfg)
	for i := 0; i < 5000; i++ {
		dir := Left
		if rng.Intn(2) == 1 {
			dir = Right
		}
		step := cfg.Input.KeyStep
		if rng.Intn(3) == 0 {
			step = rng.Float64() * 200
		}
		p.MoveLane(dir, step)
		if p.X < minX || p.X > maxX {
			t.Fatalf("move %d: X = %v escaped [%v, %v]", i, p.X, minX, maxX)
		}
	}
}

func TestPlayerMoveLaneEdges(t *testing.T) {
	cfg := config.DefaultRunnerConfig()

	tests := []struct {
		name  string
		dir   Direction
		moves int
		wantX float64
	}{
		{"one step left", Left, 1, 361},
		{"one step right", Right, 1, 389},
		{"far left", Left, 50, 250},
		{"far right", Right, 50, 450},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(cfg)
			for i := 0; i < tt.moves; i++ {
				p.MoveLane(tt.dir, cfg.Input.KeyStep)
			}
			if p.X != tt.wantX {
				t.Errorf("X = %v, want %v", p.X, tt.wantX)
			}
		})
	}
}
