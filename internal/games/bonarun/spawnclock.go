package bonarun

import "time"

// SpawnClock is a wall-clock repeating timer driven by the caller's notion of
// "now". Front ends that poll every frame (Ebitengine) use it instead of a
// goroutine-backed ticker.
type SpawnClock struct {
	interval time.Duration
	next     time.Time
	running  bool
}

// NewSpawnClock creates a stopped clock with the given period.
func NewSpawnClock(interval time.Duration) *SpawnClock {
	return &SpawnClock{interval: interval}
}

// Start (re)arms the clock so the first fire happens one interval after now.
func (c *SpawnClock) Start(now time.Time) {
	c.next = now.Add(c.interval)
	c.running = true
}

// Stop disarms the clock. Fire reports false until Start is called again.
func (c *SpawnClock) Stop() {
	c.running = false
}

// Fire reports whether the period elapsed at now and schedules the next fire.
// Missed periods are dropped: a stall never produces a burst of spawns.
func (c *SpawnClock) Fire(now time.Time) bool {
	if !c.running || now.Before(c.next) {
		return false
	}
	c.next = c.next.Add(c.interval)
	if !c.next.After(now) {
		c.next = now.Add(c.interval)
	}
	return true
}
