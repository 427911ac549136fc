package display

import (
	"fmt"

	"gitlab.com/pulmora/vent-display/pkg/surface"
	"gitlab.com/pulmora/vent-display/pkg/telemetry"
)

// Margins and gaps the banner hard-codes around its layout constants.
const (
	alarmContainerMarginTop = 10.0
	alarmEmptyGap           = 42.0
	alarmSlotGap            = 28.0
	alarmCodeTextMarginTop  = 4.0
	alarmMessageMarginTop   = 4.0
	alarmMessageMarginLeft  = 10.0
)

// AlarmsConfig drives the alarm banner: a fixed container with its title,
// then either the "no active alarm" placeholder or up to Layout.MaxAlarms
// slots. Alarms must arrive ordered by display rank (see
// telemetry.SortActive); index 0 renders first.
//
// The five pools are loaned read-only: slot i always consumes index i from
// every pool, so the same elements are updated frame after frame no matter
// which alarm occupies the slot. A config is built fresh each frame and
// discarded after the render call.
type AlarmsConfig struct {
	Parent    surface.ID
	Container surface.ID
	Title     surface.ID
	Empty     surface.ID

	Slots        surface.Pool
	CodeBoxes    surface.Pool
	Codes        surface.Pool
	MessageBoxes surface.Pool
	Messages     surface.Pool

	Alarms []telemetry.Alarm
}

func (c AlarmsConfig) render(e *Engine) float64 {
	lay := e.layout

	if len(c.Alarms) > 0 {
		c.checkPools(lay.MaxAlarms)
	}

	e.surf.SetRect(c.Container, surface.RectSpec{
		W:      lay.AlarmContainerWidth,
		H:      lay.AlarmContainerHeight,
		Corner: lay.Round,
		Fill:   lay.AlarmContainerColor,
		Pos:    surface.MidTopOf(c.Parent, alarmContainerMarginTop),
	})

	e.surf.SetText(c.Title, surface.TextSpec{
		Content: "ALARMS",
		Font:    e.fonts.Bold,
		Size:    11,
		Color:   surface.White,
		Pos:     surface.MidLeftOf(c.Container, lay.AlarmContainerPaddingLeft),
	})

	if len(c.Alarms) == 0 {
		e.surf.SetText(c.Empty, surface.TextSpec{
			Content: "There is no active alarm.",
			Font:    e.fonts.Regular,
			Size:    11,
			Color:   surface.White.WithAlpha(0.5),
			Pos:     surface.RightOf(c.Title, alarmEmptyGap),
		})
		return 0
	}

	// Alarms past the slot capacity are dropped with no overflow
	// indicator; the caller's ordering decides which ones stay visible.
	visible := min(lay.MaxAlarms, len(c.Alarms))
	for i := 0; i < visible; i++ {
		c.slot(e, c.Alarms[i], i)
	}

	return 0
}

// slot draws one alarm row: the transparent slot canvas at its computed
// offset, the code badge, and the message strip. Later elements anchor on
// earlier ones, so the draw order inside a slot is fixed.
func (c AlarmsConfig) slot(e *Engine, alarm telemetry.Alarm, index int) {
	lay := e.layout

	slot := c.Slots.At(index)
	e.surf.SetRect(slot, surface.RectSpec{
		W:   lay.SlotWidth(),
		H:   lay.AlarmMessageHeight,
		Pos: surface.RightOf(c.Title, alarmSlotGap).WithYTop(c.Container, lay.SlotOffset(index)),
	})

	codeBox := c.CodeBoxes.At(index)
	e.surf.SetRect(codeBox, surface.RectSpec{
		W:    lay.AlarmCodeWidth,
		H:    lay.AlarmCodeHeight,
		Fill: CodeColor(alarm.Priority),
		Pos:  surface.MidLeftOf(slot, 0),
	})
	e.surf.SetText(c.Codes.At(index), surface.TextSpec{
		Content: alarm.Code.String(),
		Font:    e.fonts.Bold,
		Size:    11,
		Color:   surface.White,
		Pos:     surface.MidTopOf(codeBox, alarmCodeTextMarginTop),
	})

	msgBox := c.MessageBoxes.At(index)
	e.surf.SetRect(msgBox, surface.RectSpec{
		W:    lay.AlarmMessageWidth,
		H:    lay.AlarmMessageHeight,
		Fill: MessageColor(alarm.Priority),
		Pos:  surface.MidLeftOf(slot, lay.AlarmCodeWidth),
	})
	e.surf.SetText(c.Messages.At(index), surface.TextSpec{
		Content: alarm.Code.Description(),
		Font:    e.fonts.Regular,
		Size:    10,
		Color:   surface.White,
		Pos:     surface.TopLeftOf(msgBox, alarmMessageMarginTop, alarmMessageMarginLeft),
	})
}

// checkPools enforces the pool-capacity contract: every pool must cover the
// configured slot capacity. An undersized pool is a wiring bug, and the
// frame aborts before any slot draws rather than drawing with a bad handle.
func (c AlarmsConfig) checkPools(need int) {
	for _, p := range []surface.Pool{c.Slots, c.CodeBoxes, c.Codes, c.MessageBoxes, c.Messages} {
		if p.Len() < need {
			panic(fmt.Sprintf("display: alarm pool %q holds %d identifiers, need %d", p.Name(), p.Len(), need))
		}
	}
}
