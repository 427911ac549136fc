package surface

// Align selects which part of a reference element an axis anchors to.
type Align int

const (
	// Start aligns the element's near edge (left or top) with the
	// reference's near edge, shifted by the offset.
	Start Align = iota
	// Middle centers the element on the reference along the axis.
	Middle
	// End aligns the element's far edge (right or bottom) with the
	// reference's far edge, shifted back into the reference by the offset.
	End
	// After places the element's near edge beyond the reference's far
	// edge by the offset, so the element sits next to the reference
	// rather than inside it.
	After
)

// Place positions one axis of an element relative to a reference element.
// The reference must already be drawn in the current frame (or be Window).
type Place struct {
	Ref    ID
	Align  Align
	Offset float64
}

// Position places an element, one Place per axis. The two axes may anchor on
// different references: an alarm slot keys its x on the banner title and its
// y on the banner container.
type Position struct {
	X, Y Place
}

// MidTopOf centers the element on ref horizontally and puts its top edge
// margin units below ref's top edge.
func MidTopOf(ref ID, margin float64) Position {
	return Position{
		X: Place{Ref: ref, Align: Middle},
		Y: Place{Ref: ref, Align: Start, Offset: margin},
	}
}

// MidBottomOf centers the element on ref horizontally and puts its bottom
// edge margin units above ref's bottom edge.
func MidBottomOf(ref ID, margin float64) Position {
	return Position{
		X: Place{Ref: ref, Align: Middle},
		Y: Place{Ref: ref, Align: End, Offset: margin},
	}
}

// MidLeftOf centers the element on ref vertically and puts its left edge
// margin units right of ref's left edge.
func MidLeftOf(ref ID, margin float64) Position {
	return Position{
		X: Place{Ref: ref, Align: Start, Offset: margin},
		Y: Place{Ref: ref, Align: Middle},
	}
}

// RightOf places the element's left edge gap units beyond ref's right edge,
// vertically centered on ref.
func RightOf(ref ID, gap float64) Position {
	return Position{
		X: Place{Ref: ref, Align: After, Offset: gap},
		Y: Place{Ref: ref, Align: Middle},
	}
}

// TopLeftOf anchors the element's top-left corner inside ref's top-left
// corner with the given margins.
func TopLeftOf(ref ID, top, left float64) Position {
	return Position{
		X: Place{Ref: ref, Align: Start, Offset: left},
		Y: Place{Ref: ref, Align: Start, Offset: top},
	}
}

// BottomLeftOf anchors the element's bottom-left corner inside ref's
// bottom-left corner with the given margins.
func BottomLeftOf(ref ID, bottom, left float64) Position {
	return Position{
		X: Place{Ref: ref, Align: Start, Offset: left},
		Y: Place{Ref: ref, Align: End, Offset: bottom},
	}
}

// MiddleOf centers the element on ref along both axes.
func MiddleOf(ref ID) Position {
	return Position{
		X: Place{Ref: ref, Align: Middle},
		Y: Place{Ref: ref, Align: Middle},
	}
}

// WithYTop overrides the vertical axis: the element's top edge sits offset
// units below ref's top edge. Used where the two axes anchor on different
// elements.
func (p Position) WithYTop(ref ID, offset float64) Position {
	p.Y = Place{Ref: ref, Align: Start, Offset: offset}
	return p
}

// WithXLeft overrides the horizontal axis: the element's left edge sits
// offset units right of ref's left edge.
func (p Position) WithXLeft(ref ID, offset float64) Position {
	p.X = Place{Ref: ref, Align: Start, Offset: offset}
	return p
}

// resolveAxis computes the element's near coordinate along one axis given
// the reference's near coordinate and extent, and the element's extent.
func (pl Place) resolveAxis(refStart, refSize, size float64) float64 {
	switch pl.Align {
	case Start:
		return refStart + pl.Offset
	case Middle:
		return refStart + (refSize-size)/2 + pl.Offset
	case End:
		return refStart + refSize - size - pl.Offset
	case After:
		return refStart + refSize + pl.Offset
	}
	return refStart + pl.Offset
}
