package bonarun

import (
	"context"
	"testing"
	"time"

	"github.com/vovakirdan/bonarun/internal/config"
	"github.com/vovakirdan/bonarun/internal/core"
)

func newQuietLoop(t *testing.T) (*Loop, *Session) {
	t.Helper()
	cfg := config.DefaultRunnerConfig()
	cfg.Obstacles.SpawnIntervalMS = int(time.Hour / time.Millisecond)
	s := NewSession(cfg, 1)
	return NewLoop(s, 1000), s
}

func TestLoopStopsOnGameOverAndResumes(t *testing.T) {
	l, s := newQuietLoop(t)
	s.SpawnInLane(1)

	over := make(chan Snapshot, 4)
	l.OnGameOver = func(snap Snapshot) { over <- snap }

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	var final Snapshot
	select {
	case final = <-over:
	case <-ctx.Done():
		t.Fatal("timed out waiting for game over")
	}
	if final.Score != 84 {
		t.Errorf("final score = %d, want 84", final.Score)
	}

	time.Sleep(30 * time.Millisecond)
	snap, err := l.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snap.Tick != final.Tick || snap.Phase != GameOver {
		t.Errorf("loop kept ticking after game over: tick %d -> %d", final.Tick, snap.Tick)
	}

	if err := l.Post(ctx, Restart{}); err != nil {
		t.Fatalf("Post: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		snap, err = l.Snapshot(ctx)
		if err != nil {
			t.Fatalf("Snapshot: %v", err)
		}
		if snap.Phase == Running && snap.Tick > 5 {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("loop did not resume after restart: %+v", snap)
		case <-time.After(5 * time.Millisecond):
		}
	}
	if len(snap.Obstacles) != 0 {
		t.Errorf("obstacles after restart = %d, want 0", len(snap.Obstacles))
	}

	cancel()
	if err := <-done; err != context.Canceled && err != context.DeadlineExceeded {
		t.Errorf("Run returned %v", err)
	}
}

func TestLoopAppliesPostedIntents(t *testing.T) {
	l, _ := newQuietLoop(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	go l.Run(ctx) //nolint:errcheck

	for i := 0; i < 3; i++ {
		if err := l.Post(ctx, core.Intent{Action: core.ActionLeft, Source: core.SourceKey}); err != nil {
			t.Fatalf("Post: %v", err)
		}
	}

	deadline := time.After(2 * time.Second)
	for {
		snap, err := l.Snapshot(ctx)
		if err != nil {
			t.Fatalf("Snapshot: %v", err)
		}
		if snap.Player.X == 375-3*14 {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("X = %v, want %v", snap.Player.X, 375-3*14)
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestLoopPostRespectsContext(t *testing.T) {
	l, _ := newQuietLoop(t)
	l.Inbox = make(chan any) // nobody reads

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := l.Post(ctx, Restart{}); err == nil {
		t.Error("Post on a cancelled context should fail")
	}
}
