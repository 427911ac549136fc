package config

import (
	"fmt"

	"gitlab.com/pulmora/vent-display/pkg/display"
	"gitlab.com/pulmora/vent-display/pkg/feed"
)

// Config is the full configuration tree.
type Config struct {
	General  GeneralConfig  `toml:"general"`
	Display  DisplayConfig  `toml:"display"`
	Feed     FeedConfig     `toml:"feed"`
	Versions VersionsConfig `toml:"versions"`
}

// GeneralConfig holds process-wide settings.
type GeneralConfig struct {
	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// LogFile receives shell logs while the display owns the terminal.
	// Empty disables file logging.
	LogFile string `toml:"log_file"`
}

// DisplayConfig holds terminal rendering settings.
type DisplayConfig struct {
	// ColorProfile picks the escape depth: auto, truecolor, 256, 16
	// or mono. Auto detects from the terminal.
	ColorProfile string `toml:"color_profile"`

	// MaxAlarms overrides how many alarm slots the banner shows.
	// Zero keeps the layout default.
	MaxAlarms int `toml:"max_alarms"`
}

// FeedConfig scripts the simulated telemetry feed. Zero values fall back
// to the simulator defaults.
type FeedConfig struct {
	Interval              Duration `toml:"interval"`
	Seed                  int64    `toml:"seed"`
	BootDelay             Duration `toml:"boot_delay"`
	RespiratoryRate       float64  `toml:"respiratory_rate"`
	PeakTarget            float64  `toml:"peak_target"`
	PlateauTarget         float64  `toml:"plateau_target"`
	PEEPTarget            float64  `toml:"peep_target"`
	BatteryStart          float64  `toml:"battery_start"`
	BatteryDrainPerMinute float64  `toml:"battery_drain_per_minute"`

	Scenario ScenarioConfig `toml:"scenario"`
}

// ScenarioConfig times the scripted incidents, measured from feed start.
type ScenarioConfig struct {
	MainsLossAt     Duration `toml:"mains_loss_at"`
	OverpressureAt  Duration `toml:"overpressure_at"`
	OverpressureFor Duration `toml:"overpressure_for"`
	DisconnectAt    Duration `toml:"disconnect_at"`
	DisconnectFor   Duration `toml:"disconnect_for"`
	FailAfter       Duration `toml:"fail_after"`
}

// VersionsConfig holds the version strings the branding line displays.
type VersionsConfig struct {
	Firmware string `toml:"firmware"`
	Control  string `toml:"control"`
}

// colorProfiles are the accepted display.color_profile values.
var colorProfiles = map[string]bool{
	"auto":      true,
	"truecolor": true,
	"256":       true,
	"16":        true,
	"mono":      true,
}

// Validate checks the configuration for values the display cannot run
// with. Level names are checked later by the logger itself.
func (c *Config) Validate() error {
	if !colorProfiles[c.Display.ColorProfile] {
		return fmt.Errorf("unknown color profile %q (want auto, truecolor, 256, 16 or mono)", c.Display.ColorProfile)
	}
	if c.Display.MaxAlarms < 0 {
		return fmt.Errorf("negative max alarms %d", c.Display.MaxAlarms)
	}
	if c.Feed.RespiratoryRate < 0 {
		return fmt.Errorf("negative respiratory rate %v", c.Feed.RespiratoryRate)
	}
	if c.Feed.BatteryStart < 0 || c.Feed.BatteryStart > 100 {
		return fmt.Errorf("battery start %v%% outside 0-100", c.Feed.BatteryStart)
	}
	p, pl, pe := c.Feed.PeakTarget, c.Feed.PlateauTarget, c.Feed.PEEPTarget
	if p > 0 && pl > 0 && pe > 0 && !(p >= pl && pl >= pe) {
		return fmt.Errorf("pressure targets out of order: peak %v >= plateau %v >= peep %v expected", p, pl, pe)
	}
	return nil
}

// Layout returns the display layout with config overrides applied.
func (c *Config) Layout() display.Layout {
	lay := display.DefaultLayout()
	if c.Display.MaxAlarms > 0 {
		lay.MaxAlarms = c.Display.MaxAlarms
	}
	return lay
}

// SimulatorConfig maps the feed section onto the simulator, leaving
// defaults in place for fields the file does not set.
func (c *Config) SimulatorConfig() feed.Config {
	fc := feed.DefaultConfig()
	if d := c.Feed.Interval.Duration; d > 0 {
		fc.Interval = d
	}
	fc.Seed = c.Feed.Seed
	if d := c.Feed.BootDelay.Duration; d > 0 {
		fc.BootDelay = d
	}
	if c.Feed.RespiratoryRate > 0 {
		fc.RespiratoryRate = c.Feed.RespiratoryRate
	}
	if c.Feed.PeakTarget > 0 {
		fc.PeakTarget = c.Feed.PeakTarget
	}
	if c.Feed.PlateauTarget > 0 {
		fc.PlateauTarget = c.Feed.PlateauTarget
	}
	if c.Feed.PEEPTarget > 0 {
		fc.PEEPTarget = c.Feed.PEEPTarget
	}
	if c.Feed.BatteryStart > 0 {
		fc.BatteryStart = c.Feed.BatteryStart
	}
	if c.Feed.BatteryDrainPerMinute > 0 {
		fc.BatteryDrainPerMinute = c.Feed.BatteryDrainPerMinute
	}
	sc := c.Feed.Scenario
	if d := sc.MainsLossAt.Duration; d > 0 {
		fc.MainsLossAt = d
	}
	if d := sc.OverpressureAt.Duration; d > 0 {
		fc.OverpressureAt = d
	}
	if d := sc.OverpressureFor.Duration; d > 0 {
		fc.OverpressureFor = d
	}
	fc.DisconnectAt = sc.DisconnectAt.Duration
	fc.DisconnectFor = sc.DisconnectFor.Duration
	fc.FailAfter = sc.FailAfter.Duration
	return fc
}
