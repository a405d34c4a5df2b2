package gui

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/bonarun/internal/core"
)

// SampleRate is the audio context rate.
const SampleRate = 44100

// Beeper plays synthesized cues through an Ebitengine audio context.
type Beeper struct {
	players map[core.Cue]*audio.Player
}

// NewBeeper prepares one player per cue.
func NewBeeper(ctx *audio.Context) *Beeper {
	return &Beeper{
		players: map[core.Cue]*audio.Player{
			core.CueJump:  ctx.NewPlayerFromBytes(sweep(520, 880, 90*time.Millisecond, SampleRate, 0.3)),
			core.CueCrash: ctx.NewPlayerFromBytes(sweep(220, 60, 350*time.Millisecond, SampleRate, 0.5)),
		},
	}
}

// Play implements core.Sound. A cue restarts if it is still playing.
func (b *Beeper) Play(c core.Cue) {
	p := b.players[c]
	if p == nil {
		return
	}
	if err := p.Rewind(); err != nil {
		return
	}
	p.Play()
}

// sweep renders a sine that glides from one frequency to another with a
// linear fade out, as 16-bit little-endian stereo PCM.
func sweep(from, to float64, d time.Duration, sampleRate int, volume float64) []byte {
	n := int(float64(sampleRate) * d.Seconds())
	buf := make([]byte, n*4)

	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := from + (to-from)*t
		phase += 2 * math.Pi * freq / float64(sampleRate)

		v := int16(math.Sin(phase) * (1 - t) * volume * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[4*i:], uint16(v))
		binary.LittleEndian.PutUint16(buf[4*i+2:], uint16(v))
	}
	return buf
}
