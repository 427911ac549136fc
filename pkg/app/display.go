package app

import (
	"gitlab.com/pulmora/vent-display/pkg/display"
	"gitlab.com/pulmora/vent-display/pkg/panel"
	"gitlab.com/pulmora/vent-display/pkg/surface"
	"gitlab.com/pulmora/vent-display/pkg/term"
)

// waveColor is the pressure trace color.
var waveColor = surface.RGB8(78, 201, 112)

// NewDisplay wires the rendering pipeline: a retained store sized to the
// layout, the image patches the panel references, the rasterizer and the
// panel itself. Patch cell sizes are the panel's design-unit image bounds
// divided by the cell size, so patches fill their elements.
func NewDisplay(lay display.Layout, vers panel.Versions) (*surface.Store, *term.Rasterizer, *panel.Panel) {
	store := surface.NewStore(lay.WindowWidth, lay.WindowHeight)
	imgStore := term.NewImageStore()
	images := term.NewImages(imgStore, term.ImagesConfig{
		// brand mark 48x32 units, boot logo 280x170 units
		MarkCols: 6, MarkRows: 2,
		BootCols: 35, BootRows: 10,
		GraphCols: int(lay.GraphWidth / surface.CellWidth),
		GraphRows: int(lay.GraphHeight / surface.CellHeight),
		Brand:     surface.White,
		Wave:      waveColor,
	})
	lib := term.DefaultFonts()
	return store, term.NewRasterizer(lib, imgStore), panel.New(store, lib, lay, images, vers)
}
