package display

import (
	"fmt"

	"gitlab.com/pulmora/vent-display/pkg/surface"
)

// BackgroundConfig paints the full-window backdrop.
type BackgroundConfig struct {
	ID    surface.ID
	Color surface.Color
}

func (c BackgroundConfig) render(e *Engine) float64 {
	lay := e.layout
	e.surf.SetRect(c.ID, surface.RectSpec{
		W:    lay.WindowWidth,
		H:    lay.WindowHeight,
		Fill: c.Color,
		Pos:  surface.TopLeftOf(surface.Window, 0, 0),
	})
	return 0
}

// ErrorConfig renders the fatal-fault screen: nothing but the error text,
// so the message cannot be mistaken for a live view.
type ErrorConfig struct {
	ID      surface.ID
	Message string
}

func (c ErrorConfig) render(e *Engine) float64 {
	e.surf.SetText(c.ID, surface.TextSpec{
		Content: "An error happened:\n" + c.Message,
		Font:    e.fonts.Bold,
		Size:    30,
		Color:   surface.White,
		Pos:     surface.MidTopOf(surface.Window, 0),
	})
	return 0
}

// BrandingConfig places the brand mark in the top-left corner with the
// firmware/control version line under it.
type BrandingConfig struct {
	Image surface.ID
	Text  surface.ID

	Mark          surface.ImageID
	Width, Height float64

	VersionFirmware string
	VersionControl  string
}

func (c BrandingConfig) render(e *Engine) float64 {
	lay := e.layout
	e.surf.SetImage(c.Image, surface.ImageSpec{
		Image: c.Mark,
		W:     c.Width,
		H:     c.Height,
		Pos:   surface.TopLeftOf(surface.Window, lay.BrandingImageMarginTop, lay.BrandingImageMarginLeft),
	})
	e.surf.SetText(c.Text, surface.TextSpec{
		Content: fmt.Sprintf("F%s | C%s", c.VersionFirmware, c.VersionControl),
		Font:    e.fonts.Regular,
		Size:    10,
		Color:   surface.White.WithAlpha(0.45),
		Pos:     surface.TopLeftOf(surface.Window, lay.BrandingTextMarginTop, lay.BrandingTextMarginLeft),
	})
	return c.Width
}

// InitializingConfig shows the boot logo centered while the device starts.
type InitializingConfig struct {
	ID            surface.ID
	Image         surface.ImageID
	Width, Height float64
}

func (c InitializingConfig) render(e *Engine) float64 {
	e.surf.SetImage(c.ID, surface.ImageSpec{
		Image: c.Image,
		W:     c.Width,
		H:     c.Height,
		Pos:   surface.MiddleOf(surface.Window),
	})
	return 0
}

// GraphConfig places the pressure-waveform image above the telemetry row.
type GraphConfig struct {
	Parent        surface.ID
	ID            surface.ID
	Image         surface.ImageID
	Width, Height float64
}

func (c GraphConfig) render(e *Engine) float64 {
	lay := e.layout
	e.surf.SetImage(c.ID, surface.ImageSpec{
		Image: c.Image,
		W:     c.Width,
		H:     c.Height,
		Pos:   surface.MidBottomOf(c.Parent, lay.GraphSpacingBottom),
	})
	return c.Width
}

// NoDataConfig renders the telemetry-loss screen.
type NoDataConfig struct {
	ID surface.ID
}

func (c NoDataConfig) render(e *Engine) float64 {
	e.surf.SetText(c.ID, surface.TextSpec{
		Content: "Device disconnected or no data received",
		Font:    e.fonts.Bold,
		Size:    30,
		Color:   surface.White,
		Pos:     surface.MiddleOf(surface.Window),
	})
	return 0
}

// StopConfig renders the stopped-unit overlay: everything below the alarm
// strip dims, and a bordered message box sits in the middle of the screen.
// The banner stays readable while the unit is stopped.
type StopConfig struct {
	Parent     surface.ID
	Background surface.ID
	Border     surface.ID
	Container  surface.ID
	Title      surface.ID
	Message    surface.ID
}

func (c StopConfig) render(e *Engine) float64 {
	lay := e.layout

	e.surf.SetRect(c.Background, surface.RectSpec{
		W:    lay.WindowWidth,
		H:    lay.WindowHeight - lay.AlarmContainerHeight,
		Fill: surface.RGBA(0, 0, 0, 0.75),
		Pos:  surface.TopLeftOf(surface.Window, lay.AlarmContainerHeight, 0),
	})

	e.surf.SetRect(c.Border, surface.RectSpec{
		W:      lay.StopContainerWidth + 5,
		H:      lay.StopContainerHeight + 5,
		Corner: lay.Round,
		Fill:   surface.RGB8(81, 81, 81),
		Pos:    surface.MiddleOf(c.Parent),
	})
	e.surf.SetRect(c.Container, surface.RectSpec{
		W:    lay.StopContainerWidth,
		H:    lay.StopContainerHeight,
		Fill: surface.RGB8(26, 26, 26),
		Pos:  surface.MiddleOf(c.Border),
	})

	e.surf.SetText(c.Title, surface.TextSpec{
		Content: "Ventilator unit inactive",
		Font:    e.fonts.Bold,
		Size:    18,
		Color:   surface.White,
		Pos:     surface.MidTopOf(c.Container, lay.StopPaddingTop),
	})
	e.surf.SetText(c.Message, surface.TextSpec{
		Content: "Please re-enable it to resume respiration",
		Font:    e.fonts.Regular,
		Size:    13,
		Color:   surface.White.WithAlpha(0.75),
		Pos:     surface.MidBottomOf(c.Container, lay.StopPaddingBottom),
	})
	return 0
}

// TileIDs are the four elements of one telemetry tile.
type TileIDs struct {
	Box   surface.ID
	Label surface.ID
	Value surface.ID
	Unit  surface.ID
}

// TelemetryConfig renders one numeric telemetry tile. Tiles flow left to
// right along the bottom edge of the parent: the caller accumulates the
// widths Render returns into XPosition and adds the tile spacing between
// siblings. YPosition is the margin above the parent's bottom edge.
type TelemetryConfig struct {
	Parent surface.ID
	IDs    TileIDs

	Label string
	Value string
	Unit  string

	Background surface.Color

	XPosition float64
	YPosition float64
}

func (c TelemetryConfig) render(e *Engine) float64 {
	lay := e.layout

	e.surf.SetRect(c.IDs.Box, surface.RectSpec{
		W:      lay.TelemetryTileWidth,
		H:      lay.TelemetryTileHeight,
		Corner: lay.Round,
		Fill:   c.Background,
		Pos:    surface.BottomLeftOf(c.Parent, c.YPosition, c.XPosition+lay.TelemetryTileSpacing),
	})

	e.surf.SetText(c.IDs.Label, surface.TextSpec{
		Content: c.Label,
		Font:    e.fonts.Regular,
		Size:    11,
		Color:   surface.White,
		Pos:     surface.TopLeftOf(c.IDs.Box, 10, 20),
	})
	e.surf.SetText(c.IDs.Value, surface.TextSpec{
		Content: c.Value,
		Font:    e.fonts.Bold,
		Size:    17,
		Color:   surface.White,
		Pos:     surface.MidLeftOf(c.IDs.Box, 20),
	})
	e.surf.SetText(c.IDs.Unit, surface.TextSpec{
		Content: c.Unit,
		Font:    e.fonts.Regular,
		Size:    11,
		Color:   surface.White.WithAlpha(0.2),
		Pos:     surface.BottomLeftOf(c.IDs.Box, 12, 20),
	})

	return lay.TelemetryTileWidth
}
