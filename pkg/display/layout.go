package display

import "gitlab.com/pulmora/vent-display/pkg/surface"

// Layout is the fixed geometry and styling of the operator display, in
// design units on the 800x480 panel. It is immutable once built: the engine
// takes it by value and widgets read it, so tests can render against any
// geometry without touching package state.
type Layout struct {
	WindowWidth  float64
	WindowHeight float64

	AlarmContainerWidth       float64
	AlarmContainerHeight      float64
	AlarmContainerPaddingLeft float64
	AlarmContainerColor       surface.Color
	AlarmCodeWidth            float64
	AlarmCodeHeight           float64
	AlarmMessageWidth         float64
	AlarmMessageHeight        float64

	// MaxAlarms bounds how many alarm slots the banner can show. Each of
	// the five alarm identifier pools must hold at least this many IDs.
	MaxAlarms int

	AlarmSpacingTopInitial float64
	AlarmSpacingTopInner   float64

	// Round is the corner radius shared by every rounded rectangle.
	Round float64

	TelemetryTileWidth   float64
	TelemetryTileHeight  float64
	TelemetryTileSpacing float64

	GraphWidth         float64
	GraphHeight        float64
	GraphSpacingBottom float64

	BrandingImageMarginTop  float64
	BrandingImageMarginLeft float64
	BrandingTextMarginTop   float64
	BrandingTextMarginLeft  float64

	StopContainerWidth  float64
	StopContainerHeight float64
	StopPaddingTop      float64
	StopPaddingBottom   float64
}

// DefaultLayout returns the production geometry for the 800x480 panel.
func DefaultLayout() Layout {
	return Layout{
		WindowWidth:  800,
		WindowHeight: 480,

		AlarmContainerWidth:       600,
		AlarmContainerHeight:      75,
		AlarmContainerPaddingLeft: 12,
		AlarmContainerColor:       surface.RGB8(26, 26, 26),
		AlarmCodeWidth:            32,
		AlarmCodeHeight:           30,
		AlarmMessageWidth:         450,
		AlarmMessageHeight:        30,

		MaxAlarms: 2,

		AlarmSpacingTopInitial: 8,
		AlarmSpacingTopInner:   2,

		Round: 2.5,

		TelemetryTileWidth:   120,
		TelemetryTileHeight:  75,
		TelemetryTileSpacing: 10,

		GraphWidth:         580,
		GraphHeight:        250,
		GraphSpacingBottom: 95,

		BrandingImageMarginTop:  3,
		BrandingImageMarginLeft: 5,
		BrandingTextMarginTop:   52,
		BrandingTextMarginLeft:  6,

		StopContainerWidth:  380,
		StopContainerHeight: 84,
		StopPaddingTop:      16,
		StopPaddingBottom:   16,
	}
}

// SlotOffset returns the vertical offset of an alarm slot's top edge from
// the top edge of the banner container. Slot zero gets the initial spacing
// alone; every further slot adds one slot pitch (slot height plus inner
// spacing), so the column stacks downward inside the container.
func (l Layout) SlotOffset(index int) float64 {
	if index == 0 {
		return l.AlarmSpacingTopInitial
	}
	return l.AlarmSpacingTopInitial +
		float64(index)*(l.AlarmMessageHeight+l.AlarmSpacingTopInner)
}

// SlotWidth returns the full width of one alarm slot: code badge plus
// message strip.
func (l Layout) SlotWidth() float64 {
	return l.AlarmCodeWidth + l.AlarmMessageWidth
}
