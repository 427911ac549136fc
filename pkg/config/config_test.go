package config

import (
	"strings"
	"testing"
	"time"
)

func load(t *testing.T, body string) *Config {
	t.Helper()
	cfg, err := LoadFromReader(strings.NewReader(body))
	if err != nil {
		t.Fatalf("LoadFromReader: %v", err)
	}
	return cfg
}

func TestPartialFileKeepsTheDefaults(t *testing.T) {
	cfg := load(t, `
[feed]
interval = "100ms"
`)
	if cfg.Feed.Interval.Duration != 100*time.Millisecond {
		t.Errorf("interval %v, want 100ms", cfg.Feed.Interval.Duration)
	}
	if cfg.Feed.RespiratoryRate != 20 {
		t.Errorf("respiratory rate %v, want the default 20", cfg.Feed.RespiratoryRate)
	}
	if cfg.General.LogLevel != "info" {
		t.Errorf("log level %q, want the default info", cfg.General.LogLevel)
	}
	if cfg.Display.ColorProfile != "auto" {
		t.Errorf("color profile %q, want the default auto", cfg.Display.ColorProfile)
	}
}

func TestEverySectionDecodes(t *testing.T) {
	cfg := load(t, `
[general]
log_level = "debug"

[display]
color_profile = "256"

[feed]
seed = 7
respiratory_rate = 12.0
peak_target = 30.0

[feed.scenario]
mains_loss_at = "1m"
fail_after = "5m"

[versions]
firmware = "3.0.0"
control = "2.1.0"
`)
	if cfg.General.LogLevel != "debug" {
		t.Errorf("log level %q", cfg.General.LogLevel)
	}
	if cfg.Display.ColorProfile != "256" {
		t.Errorf("color profile %q", cfg.Display.ColorProfile)
	}
	if cfg.Feed.Seed != 7 {
		t.Errorf("seed %d", cfg.Feed.Seed)
	}
	if cfg.Feed.Scenario.MainsLossAt.Duration != time.Minute {
		t.Errorf("mains loss at %v", cfg.Feed.Scenario.MainsLossAt.Duration)
	}
	if cfg.Feed.Scenario.FailAfter.Duration != 5*time.Minute {
		t.Errorf("fail after %v", cfg.Feed.Scenario.FailAfter.Duration)
	}
	if cfg.Versions.Firmware != "3.0.0" || cfg.Versions.Control != "2.1.0" {
		t.Errorf("versions %q/%q", cfg.Versions.Firmware, cfg.Versions.Control)
	}
}

func TestMalformedDurationFailsTheLoad(t *testing.T) {
	if _, err := LoadFromReader(strings.NewReader(`
[feed]
interval = "soon"
`)); err == nil {
		t.Error("unparseable duration loaded without error")
	}
}

func TestNegativeDurationIsRejected(t *testing.T) {
	if _, err := LoadFromReader(strings.NewReader(`
[feed]
boot_delay = "-2s"
`)); err == nil {
		t.Error("negative duration loaded without error")
	}
}

func TestEnvOverridesBeatTheFile(t *testing.T) {
	t.Setenv("VENTD_LOG_LEVEL", "debug")
	cfg := load(t, `
[general]
log_level = "warn"
`)
	if cfg.General.LogLevel != "debug" {
		t.Errorf("log level %q, want the env override", cfg.General.LogLevel)
	}
}

func TestSeedEnvOverrideIgnoresJunk(t *testing.T) {
	t.Setenv("VENTD_SEED", "42")
	cfg := load(t, "")
	if cfg.Feed.Seed != 42 {
		t.Errorf("seed %d, want 42", cfg.Feed.Seed)
	}

	t.Setenv("VENTD_SEED", "not-a-number")
	cfg = load(t, `
[feed]
seed = 9
`)
	if cfg.Feed.Seed != 9 {
		t.Errorf("seed %d, junk env should not clobber the file", cfg.Feed.Seed)
	}
}

func TestValidateRejectsAnUnknownProfile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Display.ColorProfile = "cga"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown color profile validated")
	}
}

func TestValidateRejectsDisorderedTargets(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Feed.PeakTarget = 5
	cfg.Feed.PlateauTarget = 14
	cfg.Feed.PEEPTarget = 25
	if err := cfg.Validate(); err == nil {
		t.Error("inverted pressure targets validated")
	}
}

func TestValidateAcceptsTheDefaults(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("defaults failed validation: %v", err)
	}
}

func TestLayoutHonorsTheMaxAlarmsOverride(t *testing.T) {
	cfg := load(t, `
[display]
max_alarms = 3
`)
	if got := cfg.Layout().MaxAlarms; got != 3 {
		t.Errorf("max alarms %d, want 3", got)
	}

	cfg = load(t, "")
	def := cfg.Layout()
	if def.MaxAlarms != 2 {
		t.Errorf("default max alarms %d, want 2", def.MaxAlarms)
	}
	if def.WindowWidth != 800 || def.WindowHeight != 480 {
		t.Errorf("window %vx%v, want the 800x480 design surface", def.WindowWidth, def.WindowHeight)
	}
}

func TestSimulatorConfigCarriesTheScript(t *testing.T) {
	cfg := load(t, `
[feed]
interval = "25ms"
seed = 3

[feed.scenario]
disconnect_at = "10s"
disconnect_for = "2s"
`)
	sim := cfg.SimulatorConfig()
	if sim.Interval != 25*time.Millisecond {
		t.Errorf("interval %v", sim.Interval)
	}
	if sim.Seed != 3 {
		t.Errorf("seed %d", sim.Seed)
	}
	if sim.DisconnectAt != 10*time.Second || sim.DisconnectFor != 2*time.Second {
		t.Errorf("disconnect window %v/%v", sim.DisconnectAt, sim.DisconnectFor)
	}
	if sim.RespiratoryRate != 20 {
		t.Errorf("respiratory rate %v, want the simulator default", sim.RespiratoryRate)
	}
}
