package bonarun

import (
	"context"
	"time"

	"github.com/vovakirdan/bonarun/internal/core"
)

// Messages accepted by Loop.Inbox besides core.Intent.
type (
	// Restart resets the session and resumes ticking if it was over.
	Restart struct{}

	// Query asks the loop for a snapshot of the current state.
	Query struct {
		Reply chan Snapshot
	}
)

// Loop drives a Session from its own goroutine. The session is confined to
// Run; other goroutines talk to it only through Inbox.
type Loop struct {
	Inbox chan any

	session    *Session
	frameEvery time.Duration
	spawnEvery time.Duration
	pending    core.InputFrame

	OnFrame    func(Snapshot) // called after every tick
	OnGameOver func(Snapshot) // called once per game over
}

// NewLoop creates a loop ticking at tickRate per second.
func NewLoop(s *Session, tickRate int) *Loop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Loop{
		Inbox:      make(chan any, 64),
		session:    s,
		frameEvery: time.Second / time.Duration(tickRate),
		spawnEvery: s.Config().SpawnInterval(),
		pending:    core.NewInputFrame(),
	}
}

// Run processes ticks, spawns and inbox messages until ctx is done.
// Frame and spawn tickers are stopped while the session is over and
// recreated on Restart.
func (l *Loop) Run(ctx context.Context) error {
	var frame, spawn *time.Ticker
	var frameC, spawnC <-chan time.Time

	start := func() {
		frame = time.NewTicker(l.frameEvery)
		spawn = time.NewTicker(l.spawnEvery)
		frameC, spawnC = frame.C, spawn.C
	}
	stop := func() {
		if frame != nil {
			frame.Stop()
			spawn.Stop()
		}
		frame, spawn = nil, nil
		frameC, spawnC = nil, nil
	}
	defer stop()

	if l.session.Phase() == Running {
		start()
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case msg := <-l.Inbox:
			switch m := msg.(type) {
			case core.Intent:
				l.pending.Push(m.Action, m.Source)
			case Restart:
				l.pending.Clear()
				if l.session.Restart() {
					start()
				}
			case Query:
				m.Reply <- l.session.Snapshot()
			}

		case <-spawnC:
			l.session.Spawn()

		case <-frameC:
			l.session.Step(l.pending)
			l.pending.Clear()

			snap := l.session.Snapshot()
			if l.OnFrame != nil {
				l.OnFrame(snap)
			}
			if snap.Phase == GameOver {
				stop()
				if l.OnGameOver != nil {
					l.OnGameOver(snap)
				}
			}
		}
	}
}

// Post delivers msg to the loop, giving up when ctx is done.
func (l *Loop) Post(ctx context.Context, msg any) error {
	select {
	case l.Inbox <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Snapshot asks the running loop for the current state.
func (l *Loop) Snapshot(ctx context.Context) (Snapshot, error) {
	reply := make(chan Snapshot, 1)
	if err := l.Post(ctx, Query{Reply: reply}); err != nil {
		return Snapshot{}, err
	}
	select {
	case snap := <-reply:
		return snap, nil
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	}
}
