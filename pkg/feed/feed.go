// Package feed defines the telemetry sources the display can run against.
// A feed pushes snapshots into a channel owned by the UI event loop; the
// built-in simulator generates a scripted run so the display can be
// exercised without a serial link to the firmware.
package feed

import (
	"context"

	"gitlab.com/pulmora/vent-display/pkg/telemetry"
)

// Feed is a source of telemetry snapshots. Run blocks, pushing snapshots
// into out until the context is canceled, and returns the reason it
// stopped. Implementations must not close out; the channel belongs to the
// caller.
type Feed interface {
	// Name returns a unique identifier for this source (e.g., "simulator").
	Name() string

	// Run produces snapshots until ctx is canceled.
	Run(ctx context.Context, out chan<- telemetry.Snapshot) error
}
