package surface

import "gitlab.com/pulmora/vent-display/pkg/fonts"

// OpKind discriminates recorded draw calls.
type OpKind int

const (
	OpRect OpKind = iota
	OpText
	OpImage
)

// Op is one recorded draw call. The spec matching Kind is populated.
type Op struct {
	Kind  OpKind
	ID    ID
	Rect  RectSpec
	Text  TextSpec
	Image ImageSpec
}

// Recorder is the Surface backend used by tests: it applies every operation
// to a Store, so placement resolution behaves exactly as on a real backend,
// and additionally keeps a per-frame log of the raw draw calls.
type Recorder struct {
	store *Store
	lib   fonts.Library
	ops   []Op
}

// NewRecorder returns a Recorder whose window covers width x height design
// units.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{
		store: NewStore(width, height),
		lib:   fonts.Library{Regular: 1, Bold: 2},
	}
}

// Fonts returns the font handles this backend provides.
func (r *Recorder) Fonts() fonts.Library {
	return r.lib
}

// BeginFrame starts a new frame and clears the op log.
func (r *Recorder) BeginFrame() {
	r.store.BeginFrame()
	r.ops = r.ops[:0]
}

// SetRect implements Surface.
func (r *Recorder) SetRect(id ID, spec RectSpec) {
	r.store.SetRect(id, spec)
	r.ops = append(r.ops, Op{Kind: OpRect, ID: id, Rect: spec})
}

// SetText implements Surface.
func (r *Recorder) SetText(id ID, spec TextSpec) {
	r.store.SetText(id, spec)
	r.ops = append(r.ops, Op{Kind: OpText, ID: id, Text: spec})
}

// SetImage implements Surface.
func (r *Recorder) SetImage(id ID, spec ImageSpec) {
	r.store.SetImage(id, spec)
	r.ops = append(r.ops, Op{Kind: OpImage, ID: id, Image: spec})
}

// Ops returns the draw calls of the current frame in order.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// OpsFor returns the current frame's draw calls against one element.
func (r *Recorder) OpsFor(id ID) []Op {
	var out []Op
	for _, op := range r.ops {
		if op.ID == id {
			out = append(out, op)
		}
	}
	return out
}

// Drawn reports whether the element was drawn this frame.
func (r *Recorder) Drawn(id ID) bool {
	return r.store.Drawn(id)
}

// RectOf returns the resolved bounds of an element drawn this frame.
func (r *Recorder) RectOf(id ID) (Rect, bool) {
	return r.store.RectOf(id)
}

// RectSpecFor returns the rectangle spec an element was last drawn with this
// frame.
func (r *Recorder) RectSpecFor(id ID) (RectSpec, bool) {
	e, ok := r.store.elems[id]
	if !ok || e.epoch != r.store.epoch || e.rect == nil {
		return RectSpec{}, false
	}
	return *e.rect, true
}

// TextSpecFor returns the text spec an element was last drawn with this
// frame.
func (r *Recorder) TextSpecFor(id ID) (TextSpec, bool) {
	e, ok := r.store.elems[id]
	if !ok || e.epoch != r.store.epoch || e.text == nil {
		return TextSpec{}, false
	}
	return *e.text, true
}

// ImageSpecFor returns the image spec an element was last drawn with this
// frame.
func (r *Recorder) ImageSpecFor(id ID) (ImageSpec, bool) {
	e, ok := r.store.elems[id]
	if !ok || e.epoch != r.store.epoch || e.image == nil {
		return ImageSpec{}, false
	}
	return *e.image, true
}
