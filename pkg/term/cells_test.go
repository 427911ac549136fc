package term

import (
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"gitlab.com/pulmora/vent-display/pkg/surface"
)

func TestBlendingIsLinearInAlpha(t *testing.T) {
	g := NewGrid(1, 1)
	g.FillRect(0, 0, 1, 1, surface.White.WithAlpha(0.5))

	c := g.Cell(0, 0)
	assertChannel(t, "half white over black", c.BG.R, 0.5)
	g.FillRect(0, 0, 1, 1, surface.White.WithAlpha(0.5))
	assertChannel(t, "stacked blend", g.Cell(0, 0).BG.R, 0.75)
}

func TestFullyTransparentFillIsANoOp(t *testing.T) {
	g := NewGrid(1, 1)
	g.WriteText(0, 0, "x", surface.White, false)
	g.FillRect(0, 0, 1, 1, surface.Color{})

	c := g.Cell(0, 0)
	if c.Ch != 'x' || c.FG.R != 1 {
		t.Error("zero-alpha fill must leave the cell untouched")
	}
}

func TestWritesOffTheGridAreDropped(t *testing.T) {
	g := NewGrid(4, 2)
	g.WriteText(2, 0, "long overflow", surface.White, false)
	g.WriteText(0, 5, "below", surface.White, false)
	g.FillRect(-3, -3, 10, 10, surface.White)

	if g.Cell(3, 0).Ch != 'o' {
		t.Errorf("last on-grid glyph %q, want %q", g.Cell(3, 0).Ch, 'o')
	}
	// Reading past the edge stays a zero cell.
	if g.Cell(4, 0).Ch != 0 {
		t.Error("off-grid read should be zero")
	}
}

func TestRenderYieldsOneLinePerRow(t *testing.T) {
	g := NewGrid(5, 3)
	out := g.Render(termenv.Ascii)
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("%d newlines, want 2", got)
	}
}

func TestRenderAsciiProfileIsPlainText(t *testing.T) {
	g := NewGrid(3, 2)
	g.WriteText(0, 0, "hi", surface.White, true)
	g.WriteText(0, 1, "lo", surface.RGB(0, 1, 0), false)

	out := g.Render(termenv.Ascii)
	lines := strings.Split(out, "\n")
	if lines[0] != "hi " || lines[1] != "lo " {
		t.Errorf("plain render: %q", lines)
	}
}

func TestRenderCarriesColorEscapes(t *testing.T) {
	g := NewGrid(2, 1)
	g.WriteText(0, 0, "ab", surface.RGB(1, 0, 0), false)

	out := g.Render(termenv.TrueColor)
	if !strings.Contains(out, "\x1b[") {
		t.Error("true-color render should carry escape sequences")
	}
	if !strings.Contains(out, "ab") {
		t.Error("glyph run should survive styling")
	}
}
