package tui

import (
	"regexp"
	"testing"

	"github.com/vovakirdan/bonarun/internal/core"
)

var sgr = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "BONA", core.ColorRed)
	s.DrawText(4, 0, "RUN", core.ColorSky)
	s.FillRect(0, 2, 12, 3, '=', core.ColorGray)

	got := sgr.ReplaceAllString(RenderScreen(s), "")
	if got != s.String() {
		t.Errorf("RenderScreen text = %q, want %q", got, s.String())
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("unknown color rendered %q, want plain text", got)
	}
}
