package term

import (
	"math"
	"unicode/utf8"

	"gitlab.com/pulmora/vent-display/pkg/surface"
)

// PatchCell is one glyph of an image patch. A zero rune leaves the target
// cell untouched, so patches can be sparse.
type PatchCell struct {
	Ch    rune
	Color surface.Color
}

// Patch is an image pre-rastered at cell resolution. The painter stamps it
// into the frame wherever an image element references its handle.
type Patch struct {
	Cols, Rows int
	Cells      []PatchCell
}

// NewPatch returns an empty patch of the given cell dimensions.
func NewPatch(cols, rows int) Patch {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return Patch{Cols: cols, Rows: rows, Cells: make([]PatchCell, cols*rows)}
}

// At returns the patch cell at x, y, or a zero cell off-patch.
func (p Patch) At(x, y int) PatchCell {
	if x < 0 || x >= p.Cols || y < 0 || y >= p.Rows {
		return PatchCell{}
	}
	return p.Cells[y*p.Cols+x]
}

// Set places a glyph at x, y. Off-patch writes are dropped.
func (p *Patch) Set(x, y int, ch rune, color surface.Color) {
	if x < 0 || x >= p.Cols || y < 0 || y >= p.Rows {
		return
	}
	p.Cells[y*p.Cols+x] = PatchCell{Ch: ch, Color: color}
}

// Eighth blocks from empty to full, for sub-cell vertical resolution.
var eighths = [9]rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// WaveformPatch rasters a pressure trace as a filled curve, one column per
// cell. Values map to column heights against the ceiling; the topmost cell
// of each column uses an eighth block for sub-cell resolution.
func WaveformPatch(samples []float64, ceiling float64, cols, rows int, color surface.Color) Patch {
	p := NewPatch(cols, rows)
	if cols == 0 || rows == 0 || len(samples) == 0 || ceiling <= 0 {
		return p
	}

	for x := 0; x < cols; x++ {
		si := 0
		if cols > 1 {
			si = x * (len(samples) - 1) / (cols - 1)
		}
		v := samples[si] / ceiling
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}

		levels := int(math.Round(v * float64(rows*8)))
		if levels == 0 {
			// Axis baseline where the trace touches zero.
			p.Set(x, rows-1, '▁', color)
			continue
		}
		full := levels / 8
		for yy := 0; yy < full; yy++ {
			p.Set(x, rows-1-yy, '█', color)
		}
		if rem := levels % 8; rem > 0 && full < rows {
			p.Set(x, rows-1-full, eighths[rem], color)
		}
	}
	return p
}

const wordmark = "✚ PULMORA"

// LogoPatch rasters the brand mark. Given room it renders the wordmark on
// the middle row with rules hugging it; in a tight patch it degrades to the
// bare cross.
func LogoPatch(cols, rows int, color surface.Color) Patch {
	p := NewPatch(cols, rows)
	if cols == 0 || rows == 0 {
		return p
	}

	mid := rows / 2
	width := utf8.RuneCountInString(wordmark)
	if cols < width {
		p.Set(cols/2, mid, '✚', color)
		return p
	}

	x0 := (cols - width) / 2
	x := x0
	for _, r := range wordmark {
		p.Set(x, mid, r, color)
		x++
	}
	if rows >= 3 {
		for i := 0; i < width; i++ {
			p.Set(x0+i, mid-1, '▁', color)
			p.Set(x0+i, mid+1, '▔', color)
		}
	}
	return p
}

// ImageStore issues image handles and holds the patch each handle shows.
// Handles are stable; swapping the patch behind one changes what every
// element referencing it paints on the next frame.
type ImageStore struct {
	next    surface.ImageID
	patches map[surface.ImageID]Patch
}

// NewImageStore returns an empty store. Handles start at 1.
func NewImageStore() *ImageStore {
	return &ImageStore{patches: make(map[surface.ImageID]Patch)}
}

// Add registers a patch and returns its new handle.
func (s *ImageStore) Add(p Patch) surface.ImageID {
	s.next++
	s.patches[s.next] = p
	return s.next
}

// Update replaces the patch behind an existing handle.
func (s *ImageStore) Update(id surface.ImageID, p Patch) {
	s.patches[id] = p
}

// Patch returns the patch behind a handle.
func (s *ImageStore) Patch(id surface.ImageID) (Patch, bool) {
	p, ok := s.patches[id]
	return p, ok
}

// ImagesConfig sizes the display's fixed imagery, in cells.
type ImagesConfig struct {
	MarkCols, MarkRows   int
	BootCols, BootRows   int
	GraphCols, GraphRows int

	Brand surface.Color
	Wave  surface.Color
}

// Images owns the display's image handles: the small brand mark, the boot
// logo, and the waveform. The marks are rastered once; the waveform is
// re-rastered from the latest samples every time it is requested.
type Images struct {
	store     *ImageStore
	mark      surface.ImageID
	boot      surface.ImageID
	waveform  surface.ImageID
	graphCols int
	graphRows int
	waveColor surface.Color
}

// NewImages rasters the static marks into store and reserves the waveform
// handle.
func NewImages(store *ImageStore, cfg ImagesConfig) *Images {
	return &Images{
		store:     store,
		mark:      store.Add(LogoPatch(cfg.MarkCols, cfg.MarkRows, cfg.Brand)),
		boot:      store.Add(LogoPatch(cfg.BootCols, cfg.BootRows, cfg.Brand)),
		waveform:  store.Add(NewPatch(cfg.GraphCols, cfg.GraphRows)),
		graphCols: cfg.GraphCols,
		graphRows: cfg.GraphRows,
		waveColor: cfg.Wave,
	}
}

// Mark returns the handle of the small brand mark.
func (i *Images) Mark() surface.ImageID { return i.mark }

// BootLogo returns the handle of the boot splash mark.
func (i *Images) BootLogo() surface.ImageID { return i.boot }

// Waveform re-rasters the pressure trace and returns its handle.
func (i *Images) Waveform(samples []float64, ceiling float64) surface.ImageID {
	i.store.Update(i.waveform, WaveformPatch(samples, ceiling, i.graphCols, i.graphRows, i.waveColor))
	return i.waveform
}
