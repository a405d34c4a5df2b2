package core

// RuntimeConfig is handed to a game when it is created.
type RuntimeConfig struct {
	ScreenW  int   // terminal columns
	ScreenH  int   // terminal rows
	TickRate int   // fixed steps per second
	Seed     int64 // 0 picks a seed from the clock
}

// GameState is the part of a game the platform layer needs to see.
type GameState struct {
	Score    int
	GameOver bool
}

// StepResult carries the state after one fixed step.
type StepResult struct {
	State GameState
}
