package bonarun

import (
	"testing"
	"time"
)

func TestSpawnClockCadence(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewSpawnClock(1600 * time.Millisecond)

	if c.Fire(start.Add(time.Hour)) {
		t.Fatal("stopped clock fired")
	}

	c.Start(start)
	tests := []struct {
		at   time.Duration
		want bool
	}{
		{0, false},
		{1599 * time.Millisecond, false},
		{1600 * time.Millisecond, true},
		{1700 * time.Millisecond, false},
		{3200 * time.Millisecond, true},
		{3300 * time.Millisecond, false},
	}
	for _, tt := range tests {
		if got := c.Fire(start.Add(tt.at)); got != tt.want {
			t.Errorf("Fire(+%v) = %v, want %v", tt.at, got, tt.want)
		}
	}
}

func TestSpawnClockDropsBacklog(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewSpawnClock(time.Second)
	c.Start(start)

	// A 10s stall yields one fire, not ten
	stalled := start.Add(10 * time.Second)
	if !c.Fire(stalled) {
		t.Fatal("expected a fire after the stall")
	}
	if c.Fire(stalled.Add(500 * time.Millisecond)) {
		t.Error("backlog was not dropped")
	}
	if !c.Fire(stalled.Add(time.Second)) {
		t.Error("expected the next regular fire")
	}
}

func TestSpawnClockStopStart(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewSpawnClock(time.Second)
	c.Start(start)
	c.Stop()

	if c.Fire(start.Add(5 * time.Second)) {
		t.Error("stopped clock fired")
	}

	restart := start.Add(5 * time.Second)
	c.Start(restart)
	if c.Fire(restart.Add(999 * time.Millisecond)) {
		t.Error("fired before a full interval after restart")
	}
	if !c.Fire(restart.Add(time.Second)) {
		t.Error("did not fire one interval after restart")
	}
}
