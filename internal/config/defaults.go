package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: RunnerWorld{
			Width:  800,
			Height: 450,
			FloorY: 450,
		},
		Player: RunnerPlayer{
			X:           375,
			Y:           350,
			Width:       50,
			Height:      50,
			Gravity:     0.5,
			JumpImpulse: -12,
		},
		Track: RunnerTrack{
			MinX:        250,
			MaxX:        550,
			LaneMinX:    250,
			LaneMaxX:    500,
			LaneOffsets: []float64{250, 350, 450},
		},
		Obstacles: RunnerObstacles{
			Width:           100,
			Height:          100,
			SpawnY:          -120,
			FallSpeed:       5,
			SpawnIntervalMS: 1600,
		},
		Input: RunnerInput{
			KeyStep:        14,
			SwipeStep:      14,
			SwipeThreshold: 30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
