package gui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/bonarun/internal/core"
)

var (
	colorGrass   = color.RGBA{0x2e, 0x7d, 0x32, 0xff}
	colorBallast = color.RGBA{0x4e, 0x44, 0x3c, 0xff}
	colorSleeper = color.RGBA{0x79, 0x55, 0x48, 0xff}
	colorRail    = color.RGBA{0xb0, 0xbe, 0xc5, 0xff}
	colorDivider = color.RGBA{0x6d, 0x63, 0x5a, 0xff}
	colorTrain   = color.RGBA{0xc6, 0x28, 0x28, 0xff}
	colorRoof    = color.RGBA{0xfb, 0xc0, 0x2d, 0xff}
	colorPlayer  = color.RGBA{0x26, 0xc6, 0xda, 0xff}
	colorShade   = color.RGBA{0x00, 0x00, 0x00, 0xb0}
	colorTitle   = color.RGBA{0x81, 0xd4, 0xfa, 0xff}
	colorMuted   = color.RGBA{0xbd, 0xbd, 0xbd, 0xff}
)

const (
	sleeperEvery = 45 // World pixels between two sleepers
	sleeperH     = 8
	railW        = 4
	roofH        = 12
)

var fontSource *text.GoTextFaceSource

func init() {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		panic(fmt.Sprintf("gui: font: %v", err))
	}
	fontSource = s
}

func rect(dst *ebiten.Image, r core.Rect, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func label(dst *ebiten.Image, s string, x, y, size float64, align text.Align, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = align
	text.Draw(dst, s, &text.GoTextFace{Source: fontSource, Size: size}, op)
}

// Draw renders the track, trains, player, HUD and game-over panel.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.session.Snapshot()
	world := g.cfg.World
	track := g.cfg.Track
	trackW := track.MaxX - track.MinX

	screen.Fill(colorGrass)
	rect(screen, core.Rect{X: track.MinX, Y: 0, W: trackW, H: world.Height}, colorBallast)

	// Sleepers scroll with the trains
	shift := float64(snap.Tick) * g.cfg.Obstacles.FallSpeed
	for y := -sleeperEvery + core.WrapF(shift, sleeperEvery); y < world.Height; y += sleeperEvery {
		rect(screen, core.Rect{X: track.MinX, Y: y, W: trackW, H: sleeperH}, colorSleeper)
	}

	for _, x := range track.LaneOffsets[1:] {
		rect(screen, core.Rect{X: x - 1, Y: 0, W: 2, H: world.Height}, colorDivider)
	}
	rect(screen, core.Rect{X: track.MinX, Y: 0, W: railW, H: world.Height}, colorRail)
	rect(screen, core.Rect{X: track.MaxX - railW, Y: 0, W: railW, H: world.Height}, colorRail)

	for _, o := range snap.Obstacles {
		r := o.Rect()
		rect(screen, r, colorTrain)
		rect(screen, core.Rect{X: r.X, Y: r.Y, W: r.W, H: roofH}, colorRoof)
	}

	rect(screen, snap.Player.Rect(), colorPlayer)

	// HUD
	label(screen, fmt.Sprintf("SCORE %d", snap.Score), 12, 12, 14, text.AlignStart, color.White)
	label(screen, "BONA RUN", world.Width/2, 12, 20, text.AlignCenter, colorTitle)
	label(screen, fmt.Sprintf("BEST %d", core.Max(g.best, snap.Score)), world.Width-12, 12, 14, text.AlignEnd, colorMuted)

	if g.panel {
		g.drawGameOver(screen)
	}
}

func (g *Game) drawGameOver(screen *ebiten.Image) {
	w, h := g.cfg.World.Width, g.cfg.World.Height
	rect(screen, core.Rect{X: 0, Y: 0, W: w, H: h}, colorShade)

	label(screen, "GAME OVER", w/2, h/2-60, 32, text.AlignCenter, colorTrain)
	label(screen, fmt.Sprintf("SCORE %d  BEST %d", g.panelScore, core.Max(g.best, g.panelScore)), w/2, h/2, 16, text.AlignCenter, color.White)
	label(screen, "TAP OR PRESS R TO RESTART", w/2, h/2+48, 12, text.AlignCenter, colorMuted)
}
