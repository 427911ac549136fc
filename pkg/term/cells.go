// Package term rasterizes resolved display frames into terminal cells. The
// 800x480 design surface maps onto a fixed 100x30 character grid (8x16
// design units per cell); rectangles tint cell backgrounds, text writes
// glyphs, and images stamp pre-rastered patches. Translucent paint blends
// instead of covering, so an overlay dims whatever it is drawn across.
package term

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"gitlab.com/pulmora/vent-display/pkg/surface"
)

// Cell is one character cell of the rasterized frame.
type Cell struct {
	Ch   rune
	FG   colorful.Color
	BG   colorful.Color
	Bold bool
}

// Grid is a fixed-size cell buffer one frame is painted into.
type Grid struct {
	cols, rows int
	cells      []Cell
}

// NewGrid returns a cleared grid: blank glyphs on a black background.
func NewGrid(cols, rows int) *Grid {
	g := &Grid{cols: cols, rows: rows, cells: make([]Cell, cols*rows)}
	for i := range g.cells {
		g.cells[i].Ch = ' '
	}
	return g
}

// Cols returns the grid width in cells.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the grid height in cells.
func (g *Grid) Rows() int { return g.rows }

// In reports whether the cell coordinate lies on the grid.
func (g *Grid) In(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// Cell returns a copy of the cell at x, y. Off-grid reads return a zero
// cell.
func (g *Grid) Cell(x, y int) Cell {
	if !g.In(x, y) {
		return Cell{}
	}
	return g.cells[y*g.cols+x]
}

// FillRect composites a fill color over a cell rectangle. Both background
// and glyph colors blend, so an opaque fill wipes underlying content while
// a translucent one dims it in place.
func (g *Grid) FillRect(x, y, w, h int, fill surface.Color) {
	if fill.Transparent() {
		return
	}
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			if !g.In(xx, yy) {
				continue
			}
			c := &g.cells[yy*g.cols+xx]
			c.BG = over(c.BG, fill)
			c.FG = over(c.FG, fill)
		}
	}
}

// WriteText writes one line of glyphs starting at x, y. The foreground
// blends over each cell's current background, so translucent text comes out
// dimmed against whatever it sits on. Cells outside the grid are dropped.
func (g *Grid) WriteText(x, y int, text string, color surface.Color, bold bool) {
	i := 0
	for _, r := range text {
		xx := x + i
		i++
		if !g.In(xx, y) {
			continue
		}
		c := &g.cells[y*g.cols+xx]
		c.Ch = r
		c.FG = over(c.BG, color)
		c.Bold = bold
	}
}

// Stamp places a single glyph with the given color blended over the cell's
// background. A zero rune is a no-op, letting sparse patches skip cells.
func (g *Grid) Stamp(x, y int, ch rune, color surface.Color) {
	if ch == 0 || !g.In(x, y) {
		return
	}
	c := &g.cells[y*g.cols+x]
	c.Ch = ch
	c.FG = over(c.BG, color)
	c.Bold = false
}

type cellStyle struct {
	fg, bg string
	bold   bool
}

// Render flattens the grid into a styled string, one line per row. Adjacent
// cells with identical styling share one escape sequence.
func (g *Grid) Render(p termenv.Profile) string {
	var b strings.Builder
	var run strings.Builder

	for y := 0; y < g.rows; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		prev := cellStyle{}
		started := false
		flush := func() {
			if run.Len() == 0 {
				return
			}
			s := p.String(run.String()).
				Foreground(p.Color(prev.fg)).
				Background(p.Color(prev.bg))
			if prev.bold {
				s = s.Bold()
			}
			b.WriteString(s.String())
			run.Reset()
		}
		for x := 0; x < g.cols; x++ {
			c := g.cells[y*g.cols+x]
			style := cellStyle{fg: c.FG.Hex(), bg: c.BG.Hex(), bold: c.Bold}
			if started && style != prev {
				flush()
			}
			prev = style
			started = true
			run.WriteRune(c.Ch)
		}
		flush()
	}
	return b.String()
}

func rgb(c surface.Color) colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// over composites src over dst honoring src's alpha.
func over(dst colorful.Color, src surface.Color) colorful.Color {
	return dst.BlendRgb(rgb(src), src.A)
}
