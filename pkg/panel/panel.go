// Package panel drives the operator display. It owns the retained element
// identifiers and the pressure history, and composes one frame per
// telemetry snapshot: the device's machine state selects which widgets
// render, and the panel feeds them their identifiers and current values.
package panel

import (
	"fmt"
	"strconv"

	"gitlab.com/pulmora/vent-display/pkg/display"
	"gitlab.com/pulmora/vent-display/pkg/fonts"
	"gitlab.com/pulmora/vent-display/pkg/surface"
	"gitlab.com/pulmora/vent-display/pkg/telemetry"
)

// FrameSurface is the drawing backend the panel composes onto.
type FrameSurface interface {
	surface.Surface
	BeginFrame()
}

// ImageSource provides the image handles the panel references. The
// waveform handle is re-rastered from the samples on every request.
type ImageSource interface {
	Mark() surface.ImageID
	BootLogo() surface.ImageID
	Waveform(samples []float64, ceiling float64) surface.ImageID
}

// Versions is the firmware/control pair shown on the branding line.
type Versions struct {
	Firmware string
	Control  string
}

const (
	// historyDepth is how many pressure samples feed the waveform; at the
	// default 50ms cadence this spans four seconds, over one full cycle.
	historyDepth = 80

	// graphCeiling is the waveform's full-scale pressure in cmH2O.
	graphCeiling = 40.0

	brandMarkWidth  = 48.0
	brandMarkHeight = 32.0
	bootLogoWidth   = 280.0
	bootLogoHeight  = 170.0
)

// tileFill is the telemetry tile background, the same dark panel shade as
// the alarm container.
var tileFill = surface.RGB8(26, 26, 26)

// Panel composes operator display frames.
type Panel struct {
	surf     FrameSurface
	eng      *display.Engine
	ids      IDs
	images   ImageSource
	history  *History
	versions Versions
}

// New allocates the element set and returns a panel drawing on surf.
func New(surf FrameSurface, lib fonts.Library, lay display.Layout, images ImageSource, versions Versions) *Panel {
	return &Panel{
		surf:     surf,
		eng:      display.New(surf, lib, lay),
		ids:      NewIDs(surface.NewArena(), lay.MaxAlarms),
		images:   images,
		history:  NewHistory(historyDepth),
		versions: versions,
	}
}

// IDs returns the panel's element identifiers.
func (p *Panel) IDs() IDs { return p.ids }

// RenderFrame composes one frame for the snapshot. The backdrop always
// paints; the machine state picks the screen on top of it.
func (p *Panel) RenderFrame(snap telemetry.Snapshot) {
	p.surf.BeginFrame()
	p.eng.Render(display.BackgroundConfig{ID: p.ids.Background, Color: surface.Black})

	switch snap.State {
	case telemetry.StateError:
		p.eng.Render(display.ErrorConfig{ID: p.ids.Fault, Message: snap.Fault})
	case telemetry.StateDisconnected:
		p.eng.Render(display.NoDataConfig{ID: p.ids.NoData})
	case telemetry.StateInitializing:
		p.eng.Render(display.InitializingConfig{
			ID:    p.ids.BootLogo,
			Image: p.images.BootLogo(),
			Width: bootLogoWidth, Height: bootLogoHeight,
		})
	default:
		p.renderRun(snap)
	}
}

// renderRun composes the live view shared by the running and stopped
// states. A stopped unit freezes the waveform and dims everything below
// the alarm strip.
func (p *Panel) renderRun(snap telemetry.Snapshot) {
	lay := p.eng.Layout()

	if snap.State == telemetry.StateRunning {
		p.history.Push(snap.Pressure)
	}

	p.eng.Render(display.BrandingConfig{
		Image: p.ids.BrandingImage,
		Text:  p.ids.BrandingText,
		Mark:  p.images.Mark(),
		Width: brandMarkWidth, Height: brandMarkHeight,
		VersionFirmware: p.versions.Firmware,
		VersionControl:  p.versions.Control,
	})

	p.eng.Render(display.GraphConfig{
		Parent: surface.Window,
		ID:     p.ids.Graph,
		Image:  p.images.Waveform(p.history.Samples(), graphCeiling),
		Width:  lay.GraphWidth,
		Height: lay.GraphHeight,
	})

	p.renderTiles(snap, lay)

	alarms := append([]telemetry.Alarm(nil), snap.Alarms...)
	telemetry.SortActive(alarms)
	p.eng.Render(display.AlarmsConfig{
		Parent:       surface.Window,
		Container:    p.ids.AlarmContainer,
		Title:        p.ids.AlarmTitle,
		Empty:        p.ids.AlarmEmpty,
		Slots:        p.ids.AlarmSlots,
		CodeBoxes:    p.ids.AlarmCodeBoxes,
		Codes:        p.ids.AlarmCodes,
		MessageBoxes: p.ids.AlarmMessageBoxes,
		Messages:     p.ids.AlarmMessages,
		Alarms:       alarms,
	})

	if snap.State == telemetry.StateStopped {
		p.eng.Render(display.StopConfig{
			Parent:     surface.Window,
			Background: p.ids.StopBackground,
			Border:     p.ids.StopBorder,
			Container:  p.ids.StopContainer,
			Title:      p.ids.StopTitle,
			Message:    p.ids.StopMessage,
		})
	}
}

// renderTiles lays the telemetry row along the bottom edge, accumulating
// each tile's returned width to place the next.
func (p *Panel) renderTiles(snap telemetry.Snapshot, lay display.Layout) {
	tiles := []struct {
		ids   display.TileIDs
		label string
		value string
		unit  string
	}{
		{p.ids.PeakTile, "Peak", fmt.Sprintf("%.1f", snap.Peak), "cmH2O"},
		{p.ids.PlateauTile, "Plateau", fmt.Sprintf("%.1f", snap.Plateau), "cmH2O"},
		{p.ids.PEEPTile, "PEEP", fmt.Sprintf("%.1f", snap.PEEP), "cmH2O"},
		{p.ids.CyclesTile, "Cycles", strconv.Itoa(snap.CyclesPerMinute), "/min"},
	}

	x := 0.0
	for _, tc := range tiles {
		x += p.eng.Render(display.TelemetryConfig{
			Parent:     surface.Window,
			IDs:        tc.ids,
			Label:      tc.label,
			Value:      tc.value,
			Unit:       tc.unit,
			Background: tileFill,
			XPosition:  x,
		}) + lay.TelemetryTileSpacing
	}
}
