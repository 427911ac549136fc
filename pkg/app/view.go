package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"gitlab.com/pulmora/vent-display/pkg/telemetry"
)

var (
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b6b6b"))
	okStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ec970"))
	warnStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e5c07b"))
	errStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e06c75"))
	clockStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#d4d4d4"))
)

// View rasterizes the current frame and appends the status bar. A terminal
// too small for the frame gets a resize notice instead.
func (m Model) View() string {
	if m.sized && !m.size.Fits(m.needCols, m.needRows) {
		return m.resizeNotice()
	}
	frame := m.raster.Paint(m.surf).Render(m.profile)
	return frame + "\n" + m.statusBar()
}

func (m Model) resizeNotice() string {
	return fmt.Sprintf("terminal too small: the display needs %dx%d cells, have %dx%d\n",
		m.needCols, m.needRows, m.size.Cols, m.size.Rows)
}

// statusBar builds the one-line chrome under the frame: effective state,
// battery, alarm count and key hints on the left, feed name and clock on
// the right, padded to the frame width.
func (m Model) statusBar() string {
	state := "waiting"
	battery := "--"
	alarms := 0
	if m.haveSnap {
		state = m.effectiveState().String()
		battery = fmt.Sprintf("%.0f%%", m.snap.Battery)
		alarms = len(m.snap.Alarms)
	}

	left := m.stateStyle().Render(" "+strings.ToUpper(state)) +
		dimStyle.Render(fmt.Sprintf("  batt %s  alarms %d", battery, alarms))
	hints := dimStyle.Render(m.keyHints())
	right := dimStyle.Render(m.feedName+"  ") + clockStyle.Render(m.now.Format("15:04:05")+" ")

	lead := left + "  " + hints
	pad := m.needCols - ansi.StringWidth(lead) - ansi.StringWidth(right)
	if pad < 1 {
		pad = 1
	}
	return ansi.Truncate(lead+strings.Repeat(" ", pad)+right, m.needCols, "")
}

func (m Model) keyHints() string {
	return fmt.Sprintf("%s:%s  %s:%s",
		m.keys.Pause.Help().Key, m.keys.Pause.Help().Desc,
		m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc)
}

func (m Model) stateStyle() lipgloss.Style {
	if !m.haveSnap {
		return dimStyle
	}
	switch m.effectiveState() {
	case telemetry.StateRunning:
		return okStyle
	case telemetry.StateStopped, telemetry.StateInitializing:
		return warnStyle
	case telemetry.StateError, telemetry.StateDisconnected:
		return errStyle
	}
	return dimStyle
}
