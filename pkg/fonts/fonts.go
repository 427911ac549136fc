// Package fonts defines the font-asset boundary between widget renderers and
// surface backends. Renderers never load font data; they receive opaque
// handles from the backend at initialization and pass them back on every text
// draw. The terminal backend maps the bold handle onto cell bold styling.
package fonts

// Font is an opaque font handle assigned by a surface backend.
type Font int32

// Library holds the two font handles the display renders with.
type Library struct {
	Regular Font
	Bold    Font
}
