package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/pulmora/vent-display/pkg/telemetry"
)

// statusTickEvery is the chrome refresh cadence. One second matches the
// clock resolution shown in the status bar.
const statusTickEvery = time.Second

// TickCmd returns a Cmd that sends a TickEvent after the given duration.
func TickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickEvent{Time: t}
	})
}

// NextSnapshotCmd returns a Cmd that blocks on the feed channel and
// delivers the next snapshot. The receiver re-arms it after every
// SnapshotEvent so exactly one reader waits on the channel at a time.
func NextSnapshotCmd(snaps <-chan telemetry.Snapshot) tea.Cmd {
	return func() tea.Msg {
		return SnapshotEvent{Snapshot: <-snaps}
	}
}
