// Package display composes the ventilator operator screen: the alarm banner
// with its priority styling and slot geometry, and the fixed single-instance
// widgets around it (background, branding, waveform graph, telemetry tiles,
// state overlays).
//
// The package owns no state between frames. A caller builds a configuration
// per widget each frame and hands it to Engine.Render; the engine turns it
// into create-or-update draw calls against the surface and returns the
// horizontal space the widget claims. All identifiers in a configuration
// are pre-allocated by the caller; the engine only selects them.
package display

import (
	"gitlab.com/pulmora/vent-display/pkg/fonts"
	"gitlab.com/pulmora/vent-display/pkg/surface"
)

// Engine renders widgets onto a retained surface. It borrows the surface
// for the duration of each Render call; frame lifecycle (begin, raster)
// belongs to the backend.
type Engine struct {
	surf   surface.Surface
	fonts  fonts.Library
	layout Layout
}

// New returns an Engine drawing on surf with the backend's font handles and
// the given layout constants.
func New(surf surface.Surface, lib fonts.Library, lay Layout) *Engine {
	return &Engine{surf: surf, fonts: lib, layout: lay}
}

// Layout returns the engine's layout constants.
func (e *Engine) Layout() Layout {
	return e.layout
}

// WidgetConfig is the closed set of widget configurations this display can
// render, one implementation per widget kind. The render method is
// unexported, so a new kind can only be added in this package, next to its
// renderer; Render can never meet a config it has no renderer for.
type WidgetConfig interface {
	render(e *Engine) float64
}

// Render draws one widget and returns the horizontal space it claims. The
// caller accumulates the returned widths to place siblings; widgets outside
// the horizontal flow return 0.
func (e *Engine) Render(cfg WidgetConfig) float64 {
	return cfg.render(e)
}
