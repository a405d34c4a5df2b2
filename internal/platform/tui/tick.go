// Package tui provides the Bubble Tea integration for the runner.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Epoch identifies the run that scheduled it; ticks from an older run are dropped.
type TickMsg struct {
	Epoch int
	Time  time.Time
}

// TimerMsg is sent when a game's wall-clock timer fires.
type TimerMsg struct {
	Epoch int
}

// tickCmd returns a Bubble Tea command that sends one tick message after a
// frame interval. The model reschedules it while the game runs.
func tickCmd(tickRate, epoch int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Epoch: epoch, Time: t}
	})
}

// timerCmd returns a command that sends one TimerMsg after d.
func timerCmd(d time.Duration, epoch int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return TimerMsg{Epoch: epoch}
	})
}
