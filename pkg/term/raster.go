package term

import (
	"math"
	"strings"

	"gitlab.com/pulmora/vent-display/pkg/fonts"
	"gitlab.com/pulmora/vent-display/pkg/surface"
)

// DefaultFonts returns the font handles this backend assigns. The regular
// face maps to plain cells and the bold face to the cell bold attribute.
func DefaultFonts() fonts.Library {
	return fonts.Library{Regular: 1, Bold: 2}
}

// Rasterizer paints resolved frames into cell grids, element by element in
// draw order.
type Rasterizer struct {
	lib    fonts.Library
	images *ImageStore
}

// NewRasterizer returns a Rasterizer resolving bold text against lib and
// image handles against images.
func NewRasterizer(lib fonts.Library, images *ImageStore) *Rasterizer {
	return &Rasterizer{lib: lib, images: images}
}

// Paint rasterizes the store's current frame onto a fresh grid sized from
// the store's design dimensions.
func (rz *Rasterizer) Paint(surf *surface.Store) *Grid {
	w, h := surf.Size()
	g := NewGrid(int(w/surface.CellWidth), int(h/surface.CellHeight))
	for _, d := range surf.Frame() {
		switch {
		case d.Rect != nil:
			rz.paintRect(g, d)
		case d.Text != nil:
			rz.paintText(g, d)
		case d.Image != nil:
			rz.paintImage(g, d)
		}
	}
	return g
}

func cellX(v float64) int { return int(math.Round(v / surface.CellWidth)) }
func cellY(v float64) int { return int(math.Round(v / surface.CellHeight)) }

// paintRect rounds both edges to cells before taking the width, so two
// rects that share an edge in design units stay seamless on the grid.
func (rz *Rasterizer) paintRect(g *Grid, d surface.Drawn) {
	x, y := cellX(d.Bounds.X), cellY(d.Bounds.Y)
	g.FillRect(x, y, cellX(d.Bounds.Right())-x, cellY(d.Bounds.Bottom())-y, d.Rect.Fill)
}

func (rz *Rasterizer) paintText(g *Grid, d surface.Drawn) {
	x, y := cellX(d.Bounds.X), cellY(d.Bounds.Y)
	bold := d.Text.Font == rz.lib.Bold
	for i, line := range strings.Split(d.Text.Content, "\n") {
		g.WriteText(x, y+i, line, d.Text.Color, bold)
	}
}

// paintImage stamps the referenced patch centered inside the element's
// bounds. An unregistered handle paints nothing.
func (rz *Rasterizer) paintImage(g *Grid, d surface.Drawn) {
	patch, ok := rz.images.Patch(d.Image.Image)
	if !ok {
		return
	}
	x0, y0 := cellX(d.Bounds.X), cellY(d.Bounds.Y)
	x := x0 + (cellX(d.Bounds.Right())-x0-patch.Cols)/2
	y := y0 + (cellY(d.Bounds.Bottom())-y0-patch.Rows)/2
	for py := 0; py < patch.Rows; py++ {
		for px := 0; px < patch.Cols; px++ {
			pc := patch.At(px, py)
			g.Stamp(x+px, y+py, pc.Ch, pc.Color)
		}
	}
}
