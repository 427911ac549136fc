package display

import (
	"testing"

	"gitlab.com/pulmora/vent-display/pkg/surface"
	"gitlab.com/pulmora/vent-display/pkg/telemetry"
)

func TestCodeColorsMatchTheSeverityPalette(t *testing.T) {
	tests := []struct {
		tier telemetry.Priority
		want surface.Color
	}{
		{telemetry.High, surface.RGBA(1.0, 32.0/255.0, 32.0/255.0, 1.0)},
		{telemetry.Medium, surface.RGBA(1.0, 138.0/255.0, 0.0, 1.0)},
		{telemetry.Low, surface.RGBA(1.0, 195.0/255.0, 0.0, 1.0)},
	}
	for _, tt := range tests {
		if got := CodeColor(tt.tier); got != tt.want {
			t.Errorf("CodeColor(%v): got %+v, want %+v", tt.tier, got, tt.want)
		}
	}
}

func TestMessageColorsMatchTheSeverityPalette(t *testing.T) {
	tests := []struct {
		tier telemetry.Priority
		want surface.Color
	}{
		{telemetry.High, surface.RGBA(169.0/255.0, 35.0/255.0, 35.0/255.0, 1.0)},
		{telemetry.Medium, surface.RGBA(169.0/255.0, 99.0/255.0, 16.0/255.0, 1.0)},
		{telemetry.Low, surface.RGBA(174.0/255.0, 133.0/255.0, 0.0, 1.0)},
	}
	for _, tt := range tests {
		if got := MessageColor(tt.tier); got != tt.want {
			t.Errorf("MessageColor(%v): got %+v, want %+v", tt.tier, got, tt.want)
		}
	}
}

func TestSeverityColorsAreDeterministic(t *testing.T) {
	for _, tier := range []telemetry.Priority{telemetry.Low, telemetry.Medium, telemetry.High} {
		for i := 0; i < 3; i++ {
			if CodeColor(tier) != CodeColor(tier) {
				t.Fatalf("CodeColor(%v) varies between calls", tier)
			}
			if MessageColor(tier) != MessageColor(tier) {
				t.Fatalf("MessageColor(%v) varies between calls", tier)
			}
		}
	}
}

func TestUnrecognizedTiersRenderAsHigh(t *testing.T) {
	for _, tier := range []telemetry.Priority{0, 42} {
		if got := CodeColor(tier); got != CodeColor(telemetry.High) {
			t.Errorf("CodeColor(%v): got %+v, want the High color", tier, got)
		}
		if got := MessageColor(tier); got != MessageColor(telemetry.High) {
			t.Errorf("MessageColor(%v): got %+v, want the High color", tier, got)
		}
	}
}

// luminance approximates perceived brightness, enough to compare a badge
// against its message strip.
func luminance(c surface.Color) float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

func TestCodeBadgeStaysBrighterThanItsMessageStrip(t *testing.T) {
	for _, tier := range []telemetry.Priority{telemetry.Low, telemetry.Medium, telemetry.High} {
		code, msg := luminance(CodeColor(tier)), luminance(MessageColor(tier))
		if code <= msg {
			t.Errorf("%v: badge luminance %v not above strip luminance %v", tier, code, msg)
		}
	}
}

func TestSeverityColorsAreFullyOpaque(t *testing.T) {
	for _, tier := range []telemetry.Priority{telemetry.Low, telemetry.Medium, telemetry.High} {
		if CodeColor(tier).A != 1 || MessageColor(tier).A != 1 {
			t.Errorf("%v: alarm colors must not blend with what is under them", tier)
		}
	}
}
