package app

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"go.uber.org/zap"

	"gitlab.com/pulmora/vent-display/pkg/panel"
	"gitlab.com/pulmora/vent-display/pkg/surface"
	"gitlab.com/pulmora/vent-display/pkg/telemetry"
	"gitlab.com/pulmora/vent-display/pkg/term"
)

// Options configure the shell around the display pipeline.
type Options struct {
	// FeedName labels the telemetry source in the status bar.
	FeedName string

	// Profile is the color profile frames are rendered with. Callers pick
	// it from the terminal; tests pass termenv.Ascii.
	Profile termenv.Profile

	// Log receives shell-level events. Nil means no logging. The render
	// path never logs.
	Log *zap.Logger
}

// Model is the bubbletea model driving the operator display.
type Model struct {
	panel  *panel.Panel
	surf   *surface.Store
	raster *term.Rasterizer
	snaps  <-chan telemetry.Snapshot

	feedName string
	profile  termenv.Profile
	keys     KeyMap
	log      *zap.Logger

	// needCols/needRows is the cell footprint of one frame plus the
	// status bar.
	needCols int
	needRows int

	size     term.Size
	sized    bool
	snap     telemetry.Snapshot
	haveSnap bool
	paused   bool
	now      time.Time
}

// New returns a model composing frames with p onto surf, rasterizing them
// with raster, and consuming snapshots from snaps.
func New(p *panel.Panel, surf *surface.Store, raster *term.Rasterizer, snaps <-chan telemetry.Snapshot, opts Options) Model {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	w, h := surf.Size()
	return Model{
		panel:    p,
		surf:     surf,
		raster:   raster,
		snaps:    snaps,
		feedName: opts.FeedName,
		profile:  opts.Profile,
		keys:     DefaultKeyMap(),
		log:      opts.Log,
		needCols: int(w / surface.CellWidth),
		needRows: int(h/surface.CellHeight) + 1,
		now:      time.Now(),
	}
}

// Init arms the feed reader and the status ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(NextSnapshotCmd(m.snaps), TickCmd(statusTickEvery))
}

// Update advances the model. Snapshots re-render the display frame; keys
// and ticks only touch the shell state around it.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.log.Info("quit requested")
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
			m.log.Info("ventilation pause toggled", zap.Bool("paused", m.paused))
			// Redraw right away when pausing. Unpausing waits for the
			// next snapshot so the sample history picks up cleanly.
			if m.paused && m.haveSnap {
				m.renderFrame()
			}
		}

	case tea.WindowSizeMsg:
		m.size = term.Size{Cols: msg.Width, Rows: msg.Height}
		m.sized = true

	case SnapshotEvent:
		m.snap = msg.Snapshot
		m.haveSnap = true
		m.renderFrame()
		return m, NextSnapshotCmd(m.snaps)

	case TickEvent:
		m.now = msg.Time
		return m, TickCmd(statusTickEvery)
	}
	return m, nil
}

// Paused reports whether the console has paused ventilation.
func (m Model) Paused() bool { return m.paused }

// renderFrame composes the effective snapshot onto the surface. A console
// pause overrides a running device so the stopped screen shows; fault,
// disconnect and boot screens are never overridden.
func (m Model) renderFrame() {
	snap := m.snap
	if m.paused && snap.State == telemetry.StateRunning {
		snap.State = telemetry.StateStopped
	}
	m.panel.RenderFrame(snap)
}

// effectiveState is the machine state the display currently shows.
func (m Model) effectiveState() telemetry.MachineState {
	if m.paused && m.snap.State == telemetry.StateRunning {
		return telemetry.StateStopped
	}
	return m.snap.State
}
