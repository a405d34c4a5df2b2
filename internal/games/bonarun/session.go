package bonarun

import (
	"github.com/vovakirdan/bonarun/internal/config"
	"github.com/vovakirdan/bonarun/internal/core"
)

// Phase is the session state.
type Phase int

const (
	Running Phase = iota
	GameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Display receives the game-over panel notifications.
// Calls are one-way and must not block.
type Display interface {
	ShowGameOver(score int)
	HideGameOver()
}

type noDisplay struct{}

func (noDisplay) ShowGameOver(int) {}
func (noDisplay) HideGameOver()    {}

// Option configures a Session.
type Option func(*Session)

// WithSound routes jump and crash cues to s.
func WithSound(s core.Sound) Option {
	return func(sess *Session) {
		if s != nil {
			sess.sound = s
		}
	}
}

// WithDisplay routes game-over panel notifications to d.
func WithDisplay(d Display) Option {
	return func(sess *Session) {
		if d != nil {
			sess.display = d
		}
	}
}

// Session owns all mutable game state: the player, the obstacle field,
// the score and the phase. It is not safe for concurrent use; confine it to
// one goroutine (see Loop).
type Session struct {
	cfg     config.RunnerConfig
	player  Player
	field   *Field
	score   int
	phase   Phase
	ticks   int
	sound   core.Sound
	display Display
}

// NewSession creates a running session.
func NewSession(cfg config.RunnerConfig, seed int64, opts ...Option) *Session {
	s := &Session{
		cfg:     cfg,
		player:  NewPlayer(cfg),
		sound:   core.NoSound{},
		display: noDisplay{},
	}
	s.field = NewField(seed, &s.cfg)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Step advances the session by one tick: queued intents first, then player
// physics, obstacles, and the collision check. While GameOver it does nothing.
func (s *Session) Step(in core.InputFrame) {
	if s.phase != Running {
		return
	}
	s.ticks++

	for _, intent := range in.Intents() {
		s.apply(intent)
	}

	s.player.ApplyGravity()
	s.player.ResolveGroundContact(s.cfg.World.FloorY)

	s.field.Advance()
	s.field.Prune(s.cfg.World.Height)

	if _, hit := s.field.FirstHit(s.player.Rect()); hit {
		s.end()
		return
	}
	s.score++
}

func (s *Session) apply(in core.Intent) {
	step := s.cfg.Input.KeyStep
	if in.Source == core.SourceSwipe {
		step = s.cfg.Input.SwipeStep
	}

	switch in.Action {
	case core.ActionLeft:
		s.player.MoveLane(Left, step)
	case core.ActionRight:
		s.player.MoveLane(Right, step)
	case core.ActionJump:
		s.Jump()
	}
}

// Jump makes a grounded player jump and fires the jump cue.
// It is a no-op while airborne or after the game ended.
func (s *Session) Jump() bool {
	if s.phase != Running || !s.player.Jump() {
		return false
	}
	s.sound.Play(core.CueJump)
	return true
}

// Spawn adds one obstacle in a random lane. It is ignored unless Running,
// so a spawn timer that fires late cannot touch a finished session.
func (s *Session) Spawn() bool {
	if s.phase != Running {
		return false
	}
	s.field.Spawn()
	return true
}

// SpawnInLane adds one obstacle in a fixed lane, for scripted scenarios.
func (s *Session) SpawnInLane(lane int) bool {
	if s.phase != Running {
		return false
	}
	s.field.SpawnInLane(lane)
	return true
}

func (s *Session) end() {
	s.phase = GameOver
	s.sound.Play(core.CueCrash)
	s.display.ShowGameOver(s.score)
}

// Restart resets score, player and obstacles and returns to Running.
// It reports whether the session was over, i.e. whether the driver must
// resume ticking.
func (s *Session) Restart() bool {
	wasOver := s.phase == GameOver

	s.score = 0
	s.ticks = 0
	s.player = NewPlayer(s.cfg)
	s.field.Clear()
	s.phase = Running
	s.display.HideGameOver()

	return wasOver
}

// Reseed replaces the lane RNG, typically right before Restart.
func (s *Session) Reseed(seed int64) {
	s.field.Reseed(seed)
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Ticks returns the number of Running ticks since the last (re)start.
func (s *Session) Ticks() int {
	return s.ticks
}

// Player returns a copy of the player.
func (s *Session) Player() Player {
	return s.player
}

// Obstacles returns the live obstacles. Callers must not modify the slice.
func (s *Session) Obstacles() []Obstacle {
	return s.field.Obstacles()
}

// Config returns the session configuration.
func (s *Session) Config() config.RunnerConfig {
	return s.cfg
}

// Snapshot is a detached copy of the session for renderers and bots.
type Snapshot struct {
	Player    Player
	Obstacles []Obstacle
	Score     int
	Phase     Phase
	Tick      int
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	obs := make([]Obstacle, len(s.field.Obstacles()))
	copy(obs, s.field.Obstacles())
	return Snapshot{
		Player:    s.player,
		Obstacles: obs,
		Score:     s.score,
		Phase:     s.phase,
		Tick:      s.ticks,
	}
}
