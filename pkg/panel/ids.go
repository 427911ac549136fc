package panel

import (
	"gitlab.com/pulmora/vent-display/pkg/display"
	"gitlab.com/pulmora/vent-display/pkg/surface"
)

// IDs holds every retained element of the operator display. All identifiers
// are allocated once at startup; frames only select among them, so an
// element keeps its identity for the process lifetime.
type IDs struct {
	Background surface.ID

	AlarmContainer    surface.ID
	AlarmTitle        surface.ID
	AlarmEmpty        surface.ID
	AlarmSlots        surface.Pool
	AlarmCodeBoxes    surface.Pool
	AlarmCodes        surface.Pool
	AlarmMessageBoxes surface.Pool
	AlarmMessages     surface.Pool

	BrandingImage surface.ID
	BrandingText  surface.ID

	BootLogo surface.ID
	Graph    surface.ID
	NoData   surface.ID
	Fault    surface.ID

	PeakTile    display.TileIDs
	PlateauTile display.TileIDs
	PEEPTile    display.TileIDs
	CyclesTile  display.TileIDs

	StopBackground surface.ID
	StopBorder     surface.ID
	StopContainer  surface.ID
	StopTitle      surface.ID
	StopMessage    surface.ID
}

// NewIDs allocates the full element set from arena, with each alarm pool
// sized to maxAlarms.
func NewIDs(arena *surface.Arena, maxAlarms int) IDs {
	tile := func(name string) display.TileIDs {
		return display.TileIDs{
			Box:   arena.Next(name + "-box"),
			Label: arena.Next(name + "-label"),
			Value: arena.Next(name + "-value"),
			Unit:  arena.Next(name + "-unit"),
		}
	}
	return IDs{
		Background: arena.Next("background"),

		AlarmContainer:    arena.Next("alarm-container"),
		AlarmTitle:        arena.Next("alarm-title"),
		AlarmEmpty:        arena.Next("alarm-empty"),
		AlarmSlots:        arena.NextList("alarm-slots", maxAlarms),
		AlarmCodeBoxes:    arena.NextList("alarm-code-boxes", maxAlarms),
		AlarmCodes:        arena.NextList("alarm-codes", maxAlarms),
		AlarmMessageBoxes: arena.NextList("alarm-message-boxes", maxAlarms),
		AlarmMessages:     arena.NextList("alarm-messages", maxAlarms),

		BrandingImage: arena.Next("branding-image"),
		BrandingText:  arena.Next("branding-text"),

		BootLogo: arena.Next("boot-logo"),
		Graph:    arena.Next("graph"),
		NoData:   arena.Next("no-data"),
		Fault:    arena.Next("fault"),

		PeakTile:    tile("peak"),
		PlateauTile: tile("plateau"),
		PEEPTile:    tile("peep"),
		CyclesTile:  tile("cycles"),

		StopBackground: arena.Next("stop-background"),
		StopBorder:     arena.Next("stop-border"),
		StopContainer:  arena.Next("stop-container"),
		StopTitle:      arena.Next("stop-title"),
		StopMessage:    arena.Next("stop-message"),
	}
}
