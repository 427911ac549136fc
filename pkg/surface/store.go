package surface

import "fmt"

// Rect is a resolved element rectangle in design units.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Drawn is one element of the current frame in draw order. Exactly one of
// Rect, Text and Image is non-nil.
type Drawn struct {
	ID     ID
	Bounds Rect
	Rect   *RectSpec
	Text   *TextSpec
	Image  *ImageSpec
}

type element struct {
	epoch  uint64
	bounds Rect
	rect   *RectSpec
	text   *TextSpec
	image  *ImageSpec
}

// Store is the retained-element Surface implementation backends build on.
// Elements keep their identity across frames; each frame stamps the elements
// it draws with the frame's epoch, and only current-epoch elements are
// visible or usable as placement references.
//
// Positions resolve eagerly at draw time, which is why draw order matters:
// an element can only anchor on Window or on an element already drawn this
// frame. Anchoring on anything else is a frame-ordering bug in the caller
// and panics.
type Store struct {
	width, height float64
	epoch         uint64
	elems         map[ID]*element
	order         []ID
}

// NewStore returns a Store whose Window covers width x height design units.
func NewStore(width, height float64) *Store {
	return &Store{
		width:  width,
		height: height,
		elems:  make(map[ID]*element),
	}
}

// Size returns the window dimensions in design units.
func (s *Store) Size() (w, h float64) {
	return s.width, s.height
}

// BeginFrame starts a new frame: previously drawn elements keep their
// identity but drop out of sight until redrawn.
func (s *Store) BeginFrame() {
	s.epoch++
	s.order = s.order[:0]
}

// SetRect creates or updates a rectangle element.
func (s *Store) SetRect(id ID, spec RectSpec) {
	e := s.stamp(id)
	e.bounds = s.resolve(id, spec.Pos, spec.W, spec.H)
	e.rect, e.text, e.image = &spec, nil, nil
}

// SetText creates or updates a text element. Its bounds come from the
// monospace measurement model, not from the requested font size.
func (s *Store) SetText(id ID, spec TextSpec) {
	w, h := MeasureText(spec.Content)
	e := s.stamp(id)
	e.bounds = s.resolve(id, spec.Pos, w, h)
	e.rect, e.text, e.image = nil, &spec, nil
}

// SetImage creates or updates an image element.
func (s *Store) SetImage(id ID, spec ImageSpec) {
	e := s.stamp(id)
	e.bounds = s.resolve(id, spec.Pos, spec.W, spec.H)
	e.rect, e.text, e.image = nil, nil, &spec
}

// Drawn reports whether the element was drawn in the current frame.
func (s *Store) Drawn(id ID) bool {
	if id == Window {
		return true
	}
	e, ok := s.elems[id]
	return ok && e.epoch == s.epoch
}

// RectOf returns the resolved bounds of an element drawn this frame.
func (s *Store) RectOf(id ID) (Rect, bool) {
	if id == Window {
		return Rect{W: s.width, H: s.height}, true
	}
	e, ok := s.elems[id]
	if !ok || e.epoch != s.epoch {
		return Rect{}, false
	}
	return e.bounds, true
}

// Frame returns the current frame's elements in draw order.
func (s *Store) Frame() []Drawn {
	out := make([]Drawn, 0, len(s.order))
	for _, id := range s.order {
		e := s.elems[id]
		out = append(out, Drawn{
			ID:     id,
			Bounds: e.bounds,
			Rect:   e.rect,
			Text:   e.text,
			Image:  e.image,
		})
	}
	return out
}

// stamp fetches or creates the element and marks it drawn this frame.
func (s *Store) stamp(id ID) *element {
	if id == Window {
		panic("surface: cannot draw to the window root")
	}
	e, ok := s.elems[id]
	if !ok {
		e = &element{}
		s.elems[id] = e
	}
	if e.epoch != s.epoch {
		e.epoch = s.epoch
		s.order = append(s.order, id)
	}
	return e
}

// resolve turns a relative Position into absolute bounds for an element of
// the given size.
func (s *Store) resolve(id ID, pos Position, w, h float64) Rect {
	rx := s.refRect(id, pos.X.Ref)
	ry := s.refRect(id, pos.Y.Ref)
	return Rect{
		X: pos.X.resolveAxis(rx.X, rx.W, w),
		Y: pos.Y.resolveAxis(ry.Y, ry.H, h),
		W: w,
		H: h,
	}
}

// refRect looks up a placement reference. The reference must be Window or an
// element already drawn this frame.
func (s *Store) refRect(owner, ref ID) Rect {
	if ref == Window {
		return Rect{W: s.width, H: s.height}
	}
	e, ok := s.elems[ref]
	if !ok || e.epoch != s.epoch {
		panic(fmt.Sprintf("surface: element %d anchors on %d, which is not drawn this frame", owner, ref))
	}
	return e.bounds
}
