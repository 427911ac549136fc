// Package app is the bubbletea shell around the operator display. It owns
// the update loop: telemetry snapshots arriving from the feed drive frame
// composition, a coarse ticker keeps the status clock moving, and key
// bindings cover quitting and pausing ventilation from the console.
package app

import (
	"time"

	"gitlab.com/pulmora/vent-display/pkg/telemetry"
)

// SnapshotEvent carries one telemetry snapshot from the feed goroutine into
// the update loop.
type SnapshotEvent struct {
	Snapshot telemetry.Snapshot
}

// TickEvent is sent by the status ticker. It only refreshes the chrome; the
// display frame itself re-renders on snapshots.
type TickEvent struct {
	Time time.Time
}
