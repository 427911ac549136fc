package display

import (
	"testing"

	"gitlab.com/pulmora/vent-display/pkg/surface"
	"gitlab.com/pulmora/vent-display/pkg/telemetry"
)

// bannerFixture wires a Recorder-backed engine with one full set of banner
// identifiers, the way the panel allocates them at startup.
type bannerFixture struct {
	rec *surface.Recorder
	eng *Engine
	cfg AlarmsConfig
}

func newBannerFixture(lay Layout) *bannerFixture {
	rec := surface.NewRecorder(lay.WindowWidth, lay.WindowHeight)
	arena := surface.NewArena()
	cfg := AlarmsConfig{
		Parent:       surface.Window,
		Container:    arena.Next("alarm-container"),
		Title:        arena.Next("alarm-title"),
		Empty:        arena.Next("alarm-empty"),
		Slots:        arena.NextList("alarm-slots", lay.MaxAlarms),
		CodeBoxes:    arena.NextList("alarm-code-boxes", lay.MaxAlarms),
		Codes:        arena.NextList("alarm-codes", lay.MaxAlarms),
		MessageBoxes: arena.NextList("alarm-message-boxes", lay.MaxAlarms),
		Messages:     arena.NextList("alarm-messages", lay.MaxAlarms),
	}
	return &bannerFixture{rec: rec, eng: New(rec, rec.Fonts(), lay), cfg: cfg}
}

// render composes one frame holding the given alarms and returns the width
// scalar the banner reported.
func (f *bannerFixture) render(alarms []telemetry.Alarm) float64 {
	f.rec.BeginFrame()
	cfg := f.cfg
	cfg.Alarms = alarms
	return f.eng.Render(cfg)
}

// drawnSlots counts how many slot canvases the current frame drew.
func (f *bannerFixture) drawnSlots() int {
	n := 0
	for i := 0; i < f.cfg.Slots.Len(); i++ {
		if f.rec.Drawn(f.cfg.Slots.At(i)) {
			n++
		}
	}
	return n
}

func alarmsOf(n int) []telemetry.Alarm {
	tiers := []telemetry.Priority{telemetry.High, telemetry.Medium, telemetry.Low}
	out := make([]telemetry.Alarm, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, telemetry.Alarm{Code: telemetry.AlarmCode(11 + i), Priority: tiers[i%len(tiers)]})
	}
	return out
}

// --- Capacity ---

func TestVisibleSlotCountIsCappedAtMaxAlarms(t *testing.T) {
	lay := DefaultLayout()
	f := newBannerFixture(lay)

	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 1},
		{lay.MaxAlarms, lay.MaxAlarms},
		{lay.MaxAlarms + 5, lay.MaxAlarms},
	}
	for _, tt := range tests {
		f.render(alarmsOf(tt.n))
		if got := f.drawnSlots(); got != tt.want {
			t.Errorf("%d alarms: drew %d slots, want %d", tt.n, got, tt.want)
		}
	}
}

func TestOverflowingAlarmsProduceNoExtraDrawCalls(t *testing.T) {
	lay := DefaultLayout()
	f := newBannerFixture(lay)

	f.render(alarmsOf(lay.MaxAlarms))
	baseline := len(f.rec.Ops())

	f.render(alarmsOf(lay.MaxAlarms + 5))
	if got := len(f.rec.Ops()); got != baseline {
		t.Errorf("overflowing frame issued %d ops, want %d (same as a full frame)", got, baseline)
	}
}

// --- Empty / populated exclusivity ---

func TestEmptyBannerShowsThePlaceholderAndNoSlots(t *testing.T) {
	f := newBannerFixture(DefaultLayout())
	f.render(nil)

	if !f.rec.Drawn(f.cfg.Empty) {
		t.Error("placeholder should be drawn when no alarm is active")
	}
	if got := f.drawnSlots(); got != 0 {
		t.Errorf("empty banner drew %d slots", got)
	}

	spec, ok := f.rec.TextSpecFor(f.cfg.Empty)
	if !ok {
		t.Fatal("placeholder should be a text element")
	}
	if spec.Content != "There is no active alarm." {
		t.Errorf("placeholder content: got %q", spec.Content)
	}
	if spec.Color != surface.White.WithAlpha(0.5) {
		t.Errorf("placeholder should render dimmed, got %+v", spec.Color)
	}
}

func TestPopulatedBannerNeverShowsThePlaceholder(t *testing.T) {
	f := newBannerFixture(DefaultLayout())
	f.render(alarmsOf(1))

	if f.rec.Drawn(f.cfg.Empty) {
		t.Error("placeholder drawn alongside alarm slots")
	}
	if got := f.drawnSlots(); got != 1 {
		t.Errorf("drew %d slots, want 1", got)
	}
}

func TestContainerAndTitleAreDrawnInBothStates(t *testing.T) {
	f := newBannerFixture(DefaultLayout())
	for _, alarms := range [][]telemetry.Alarm{nil, alarmsOf(2)} {
		f.render(alarms)
		if !f.rec.Drawn(f.cfg.Container) {
			t.Errorf("%d alarms: container not drawn", len(alarms))
		}
		if !f.rec.Drawn(f.cfg.Title) {
			t.Errorf("%d alarms: title not drawn", len(alarms))
		}
	}
	spec, _ := f.rec.TextSpecFor(f.cfg.Title)
	if spec.Content != "ALARMS" {
		t.Errorf("title content: got %q", spec.Content)
	}
	if spec.Font != f.rec.Fonts().Bold {
		t.Error("title should use the bold font")
	}
}

// --- Geometry ---

func TestSlotsStackDownwardFromTheContainerTop(t *testing.T) {
	lay := DefaultLayout()
	f := newBannerFixture(lay)
	f.render(alarmsOf(lay.MaxAlarms))

	container, _ := f.rec.RectOf(f.cfg.Container)
	title, _ := f.rec.RectOf(f.cfg.Title)
	for i := 0; i < lay.MaxAlarms; i++ {
		slot, ok := f.rec.RectOf(f.cfg.Slots.At(i))
		if !ok {
			t.Fatalf("slot %d not drawn", i)
		}
		assertNear(t, "slot y", slot.Y, container.Y+lay.SlotOffset(i))
		assertNear(t, "slot x", slot.X, title.Right()+alarmSlotGap)
		assertNear(t, "slot w", slot.W, lay.SlotWidth())
		assertNear(t, "slot h", slot.H, lay.AlarmMessageHeight)
		if slot.Bottom() > container.Bottom() {
			t.Errorf("slot %d leaks out of the container", i)
		}
	}
}

func TestBadgeAndStripPartitionTheSlot(t *testing.T) {
	lay := DefaultLayout()
	f := newBannerFixture(lay)
	f.render(alarmsOf(1))

	slot, _ := f.rec.RectOf(f.cfg.Slots.At(0))
	badge, _ := f.rec.RectOf(f.cfg.CodeBoxes.At(0))
	strip, _ := f.rec.RectOf(f.cfg.MessageBoxes.At(0))

	assertNear(t, "badge x", badge.X, slot.X)
	assertNear(t, "badge w", badge.W, lay.AlarmCodeWidth)
	assertNear(t, "strip x", strip.X, slot.X+lay.AlarmCodeWidth)
	assertNear(t, "strip w", strip.W, lay.AlarmMessageWidth)
	assertNear(t, "strip y", strip.Y, slot.Y)
}

// --- Styling ---

func TestSlotColorsFollowEachAlarmsPriority(t *testing.T) {
	f := newBannerFixture(DefaultLayout())
	f.render([]telemetry.Alarm{
		{Code: 12, Priority: telemetry.High},
		{Code: 7, Priority: telemetry.Medium},
	})

	for i, tier := range []telemetry.Priority{telemetry.High, telemetry.Medium} {
		badge, _ := f.rec.RectSpecFor(f.cfg.CodeBoxes.At(i))
		if badge.Fill != CodeColor(tier) {
			t.Errorf("slot %d badge fill: got %+v, want %v colors", i, badge.Fill, tier)
		}
		strip, _ := f.rec.RectSpecFor(f.cfg.MessageBoxes.At(i))
		if strip.Fill != MessageColor(tier) {
			t.Errorf("slot %d strip fill: got %+v, want %v colors", i, strip.Fill, tier)
		}
	}
}

func TestSlotCanvasIsInvisible(t *testing.T) {
	f := newBannerFixture(DefaultLayout())
	f.render(alarmsOf(1))

	spec, _ := f.rec.RectSpecFor(f.cfg.Slots.At(0))
	if !spec.Fill.Transparent() {
		t.Errorf("slot canvas should not paint, got fill %+v", spec.Fill)
	}
}

func TestBadgeShowsTheNumericCodeInBold(t *testing.T) {
	f := newBannerFixture(DefaultLayout())
	f.render([]telemetry.Alarm{{Code: 12, Priority: telemetry.High}})

	spec, ok := f.rec.TextSpecFor(f.cfg.Codes.At(0))
	if !ok {
		t.Fatal("code text not drawn")
	}
	if spec.Content != "12" {
		t.Errorf("code text: got %q, want %q", spec.Content, "12")
	}
	if spec.Font != f.rec.Fonts().Bold {
		t.Error("code text should use the bold font")
	}
	if spec.Color != surface.White {
		t.Errorf("code text color: got %+v, want white", spec.Color)
	}
}

func TestStripShowsTheCatalogDescription(t *testing.T) {
	f := newBannerFixture(DefaultLayout())
	f.render([]telemetry.Alarm{{Code: 14, Priority: telemetry.High}})

	spec, ok := f.rec.TextSpecFor(f.cfg.Messages.At(0))
	if !ok {
		t.Fatal("message text not drawn")
	}
	if want := telemetry.AlarmCode(14).Description(); spec.Content != want {
		t.Errorf("message text: got %q, want %q", spec.Content, want)
	}
}

func TestEveryCatalogMessageFitsTheStrip(t *testing.T) {
	lay := DefaultLayout()
	for _, e := range telemetry.Entries() {
		w, _ := surface.MeasureText(e.Message)
		if w > lay.AlarmMessageWidth-alarmMessageMarginLeft {
			t.Errorf("code %d message %q overflows the strip (%v > %v)",
				e.Code, e.Message, w, lay.AlarmMessageWidth-alarmMessageMarginLeft)
		}
	}
}

// --- Identifier stability ---

func TestSlotElementsAreReusedAcrossFrames(t *testing.T) {
	f := newBannerFixture(DefaultLayout())

	f.render([]telemetry.Alarm{{Code: 11, Priority: telemetry.High}})
	first, _ := f.rec.TextSpecFor(f.cfg.Codes.At(0))

	f.render([]telemetry.Alarm{{Code: 21, Priority: telemetry.Low}})
	second, ok := f.rec.TextSpecFor(f.cfg.Codes.At(0))
	if !ok {
		t.Fatal("slot 0 code element should be redrawn, not replaced")
	}
	if first.Content == second.Content {
		t.Fatal("fixture alarms should differ")
	}
	if second.Content != "21" {
		t.Errorf("slot 0 now shows %q, want %q", second.Content, "21")
	}

	badge, _ := f.rec.RectSpecFor(f.cfg.CodeBoxes.At(0))
	if badge.Fill != CodeColor(telemetry.Low) {
		t.Error("reused badge element should carry the new alarm's colors")
	}
}

// --- Pool contract ---

func TestUndersizedPoolAbortsTheFrameBeforeDrawing(t *testing.T) {
	lay := DefaultLayout()
	rec := surface.NewRecorder(lay.WindowWidth, lay.WindowHeight)
	arena := surface.NewArena()
	cfg := AlarmsConfig{
		Parent:       surface.Window,
		Container:    arena.Next("alarm-container"),
		Title:        arena.Next("alarm-title"),
		Empty:        arena.Next("alarm-empty"),
		Slots:        arena.NextList("alarm-slots", lay.MaxAlarms-1),
		CodeBoxes:    arena.NextList("alarm-code-boxes", lay.MaxAlarms),
		Codes:        arena.NextList("alarm-codes", lay.MaxAlarms),
		MessageBoxes: arena.NextList("alarm-message-boxes", lay.MaxAlarms),
		Messages:     arena.NextList("alarm-messages", lay.MaxAlarms),
		Alarms:       alarmsOf(1),
	}
	eng := New(rec, rec.Fonts(), lay)

	rec.BeginFrame()
	assertPanics(t, "undersized slot pool", func() { eng.Render(cfg) })
	if got := len(rec.Ops()); got != 0 {
		t.Errorf("aborted frame still issued %d draw calls", got)
	}
}

func TestEmptyBannerToleratesUnallocatedPools(t *testing.T) {
	// With no alarm active the pools are never indexed, so a display that
	// renders only the empty state keeps working.
	lay := DefaultLayout()
	rec := surface.NewRecorder(lay.WindowWidth, lay.WindowHeight)
	arena := surface.NewArena()
	cfg := AlarmsConfig{
		Parent:    surface.Window,
		Container: arena.Next("alarm-container"),
		Title:     arena.Next("alarm-title"),
		Empty:     arena.Next("alarm-empty"),
	}
	eng := New(rec, rec.Fonts(), lay)

	rec.BeginFrame()
	if width := eng.Render(cfg); width != 0 {
		t.Errorf("banner width: got %v, want 0", width)
	}
	if !rec.Drawn(cfg.Empty) {
		t.Error("placeholder should be drawn")
	}
}

// assertPanics fails the test unless fn panics.
func assertPanics(t *testing.T, label string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected a panic", label)
		}
	}()
	fn()
}

// --- End to end ---

func TestTwoAlarmScenarioRendersBothSlotsInOrder(t *testing.T) {
	lay := DefaultLayout()
	f := newBannerFixture(lay)
	width := f.render([]telemetry.Alarm{
		{Code: 12, Priority: telemetry.High},
		{Code: 7, Priority: telemetry.Medium},
	})

	if width != 0 {
		t.Errorf("banner width: got %v, want 0", width)
	}
	if got := f.drawnSlots(); got != 2 {
		t.Fatalf("drew %d slots, want 2", got)
	}

	container, _ := f.rec.RectOf(f.cfg.Container)
	for i, tier := range []telemetry.Priority{telemetry.High, telemetry.Medium} {
		slot, _ := f.rec.RectOf(f.cfg.Slots.At(i))
		assertNear(t, "slot offset", slot.Y-container.Y, lay.SlotOffset(i))
		badge, _ := f.rec.RectSpecFor(f.cfg.CodeBoxes.At(i))
		if badge.Fill != CodeColor(tier) {
			t.Errorf("slot %d: wrong tier colors", i)
		}
	}
}
