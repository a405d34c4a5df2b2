// Package config provides YAML-based configuration loading for the runner.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// RunnerConfig contains all tunables of the lane runner.
// All lengths are world pixels; speeds are pixels per tick.
type RunnerConfig struct {
	World     RunnerWorld     `yaml:"world"`
	Player    RunnerPlayer    `yaml:"player"`
	Track     RunnerTrack     `yaml:"track"`
	Obstacles RunnerObstacles `yaml:"obstacles"`
	Input     RunnerInput     `yaml:"input"`
}

// RunnerWorld defines the logical playfield.
type RunnerWorld struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	FloorY float64 `yaml:"floor_y"` // Bottom edge the player lands on
}

// RunnerPlayer defines the player sprite and its physics.
type RunnerPlayer struct {
	X           float64 `yaml:"x"` // Spawn position
	Y           float64 `yaml:"y"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"` // Negative = upward
}

// RunnerTrack defines the three-lane track. MinX and MaxX are the drawn
// edges; the player's left edge is held inside [LaneMinX, LaneMaxX-width].
type RunnerTrack struct {
	MinX        float64   `yaml:"min_x"`
	MaxX        float64   `yaml:"max_x"`
	LaneMinX    float64   `yaml:"lane_min_x"`
	LaneMaxX    float64   `yaml:"lane_max_x"`
	LaneOffsets []float64 `yaml:"lane_offsets"` // Left edge of each obstacle lane
}

// RunnerObstacles defines falling obstacles and their spawn timer.
type RunnerObstacles struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	SpawnY          float64 `yaml:"spawn_y"`
	FallSpeed       float64 `yaml:"fall_speed"`
	SpawnIntervalMS int     `yaml:"spawn_interval_ms"`
}

// RunnerInput defines the lane step sizes and the swipe threshold.
// KeyStep and SwipeStep are independent values.
type RunnerInput struct {
	KeyStep        float64 `yaml:"key_step"`
	SwipeStep      float64 `yaml:"swipe_step"`
	SwipeThreshold float64 `yaml:"swipe_threshold"`
}

// SpawnInterval returns the obstacle spawn period.
func (c RunnerConfig) SpawnInterval() time.Duration {
	return time.Duration(c.Obstacles.SpawnIntervalMS) * time.Millisecond
}

// Validate checks that the configuration describes a playable track.
func (c RunnerConfig) Validate() error {
	positive := []struct {
		name string
		val  float64
	}{
		{"world.width", c.World.Width},
		{"world.height", c.World.Height},
		{"world.floor_y", c.World.FloorY},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"obstacles.width", c.Obstacles.Width},
		{"obstacles.height", c.Obstacles.Height},
		{"obstacles.fall_speed", c.Obstacles.FallSpeed},
		{"input.key_step", c.Input.KeyStep},
		{"input.swipe_step", c.Input.SwipeStep},
	}
	for _, p := range positive {
		if p.val <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.val)
		}
	}

	if c.Player.Gravity < 0 {
		return fmt.Errorf("%w: player.gravity must not be negative", ErrInvalidConfig)
	}
	if c.Player.JumpImpulse >= 0 {
		return fmt.Errorf("%w: player.jump_impulse must be negative (upward), got %v", ErrInvalidConfig, c.Player.JumpImpulse)
	}
	if c.Input.SwipeThreshold < 0 {
		return fmt.Errorf("%w: input.swipe_threshold must not be negative", ErrInvalidConfig)
	}
	if c.Obstacles.SpawnIntervalMS <= 0 {
		return fmt.Errorf("%w: obstacles.spawn_interval_ms must be positive", ErrInvalidConfig)
	}

	if c.Track.LaneMinX < c.Track.MinX || c.Track.LaneMaxX > c.Track.MaxX {
		return fmt.Errorf("%w: player range [%v, %v] leaves the track [%v, %v]", ErrInvalidConfig,
			c.Track.LaneMinX, c.Track.LaneMaxX, c.Track.MinX, c.Track.MaxX)
	}
	if c.Track.LaneMaxX-c.Track.LaneMinX < c.Player.Width {
		return fmt.Errorf("%w: track [%v, %v] is narrower than the player", ErrInvalidConfig, c.Track.LaneMinX, c.Track.LaneMaxX)
	}
	if len(c.Track.LaneOffsets) != 3 {
		return fmt.Errorf("%w: track.lane_offsets needs 3 lanes, got %d", ErrInvalidConfig, len(c.Track.LaneOffsets))
	}
	for i, x := range c.Track.LaneOffsets {
		if x < c.Track.MinX || x+c.Obstacles.Width > c.Track.MaxX {
			return fmt.Errorf("%w: lane %d at x=%v does not fit the track", ErrInvalidConfig, i, x)
		}
	}
	if c.Player.X < c.Track.LaneMinX || c.Player.X+c.Player.Width > c.Track.LaneMaxX {
		return fmt.Errorf("%w: player spawn x=%v is off the track", ErrInvalidConfig, c.Player.X)
	}
	return nil
}
