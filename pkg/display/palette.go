package display

import (
	"gitlab.com/pulmora/vent-display/pkg/surface"
	"gitlab.com/pulmora/vent-display/pkg/telemetry"
)

// CodeColor returns the code-badge background for a severity tier. The
// badge is always brighter than the adjoining message strip, keeping white
// text readable on both. Unrecognized tiers render as High: when severity
// is unclear the display must not understate it.
func CodeColor(tier telemetry.Priority) surface.Color {
	switch tier {
	case telemetry.Medium:
		return surface.RGBA(1.0, 138.0/255.0, 0.0, 1.0)
	case telemetry.Low:
		return surface.RGBA(1.0, 195.0/255.0, 0.0, 1.0)
	default:
		return surface.RGBA(1.0, 32.0/255.0, 32.0/255.0, 1.0)
	}
}

// MessageColor returns the message-strip background for a severity tier.
func MessageColor(tier telemetry.Priority) surface.Color {
	switch tier {
	case telemetry.Medium:
		return surface.RGBA(169.0/255.0, 99.0/255.0, 16.0/255.0, 1.0)
	case telemetry.Low:
		return surface.RGBA(174.0/255.0, 133.0/255.0, 0.0, 1.0)
	default:
		return surface.RGBA(169.0/255.0, 35.0/255.0, 35.0/255.0, 1.0)
	}
}
