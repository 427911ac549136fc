// Package surface models the retained-UI drawing boundary the display engine
// renders against. Elements are identified by pre-allocated opaque handles;
// drawing an element that already exists updates it in place rather than
// creating a new one. Positions are expressed relative to other elements, so
// a frame is a sequence of create-or-update calls in which later elements
// anchor on earlier ones.
//
// Coordinates are design units patterned on an 800x480 panel: origin at the
// top-left corner, x growing right, y growing down. Backends decide how
// design units map onto their output medium; the terminal backend uses a
// fixed 8x16 units-per-cell scale.
package surface

import (
	"github.com/charmbracelet/x/ansi"

	"gitlab.com/pulmora/vent-display/pkg/fonts"
)

// ID identifies one retained element on a surface. IDs are allocated once by
// an Arena at display initialization and reused for the lifetime of the
// surface; renderers select them by index, never mint them.
type ID int32

// Window is the pre-existing root element. It is always resolvable as a
// placement reference and covers the full surface.
const Window ID = 0

// ImageID identifies an image registered with a backend. Image pixel data
// never crosses this boundary; renderers only size and place the handle.
type ImageID int32

// Cell dimensions of the terminal medium in design units. Text measurement
// uses these regardless of the requested font size: a terminal cannot scale
// glyphs, so a run of text always occupies whole cells.
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

// RectSpec describes a filled rectangle. A Corner of zero draws square
// corners. A Fill with zero alpha is fully transparent: the element still
// participates in layout (it can anchor children) without painting anything.
type RectSpec struct {
	W, H   float64
	Corner float64
	Fill   Color
	Pos    Position
}

// TextSpec describes a run of text. Size is the requested font size in
// design units; backends that cannot scale glyphs may ignore it.
type TextSpec struct {
	Content string
	Font    fonts.Font
	Size    float64
	Color   Color
	Pos     Position
}

// ImageSpec places a registered image at the given size.
type ImageSpec struct {
	Image ImageID
	W, H  float64
	Pos   Position
}

// Surface is the drawing handle loaned to the display engine for the
// duration of one render call. All three operations are create-or-update by
// identifier: drawing the same ID on consecutive frames reuses the element.
type Surface interface {
	SetRect(id ID, spec RectSpec)
	SetText(id ID, spec TextSpec)
	SetImage(id ID, spec ImageSpec)
}

// MeasureText returns the box a run of text occupies, in design units. The
// model is strictly monospace: width is the widest line's cell count (ANSI
// and wide runes handled by the terminal stack's width rules) and height is
// one cell row per line.
func MeasureText(content string) (w, h float64) {
	lines := 1
	widest := 0
	start := 0
	for i := 0; i <= len(content); i++ {
		if i == len(content) || content[i] == '\n' {
			if lw := ansi.StringWidth(content[start:i]); lw > widest {
				widest = lw
			}
			if i < len(content) {
				lines++
				start = i + 1
			}
		}
	}
	return float64(widest) * CellWidth, float64(lines) * CellHeight
}
