package core

// Cue identifies a sound effect fired by a game.
type Cue int

const (
	CueJump Cue = iota
	CueCrash
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueCrash:
		return "crash"
	default:
		return "unknown"
	}
}

// Sound plays cues. Play must not block and is never awaited; a sink that
// fails to play simply stays silent.
type Sound interface {
	Play(c Cue)
}

// NoSound discards every cue.
type NoSound struct{}

// Play implements Sound.
func (NoSound) Play(Cue) {}
