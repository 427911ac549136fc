package config

import (
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"gitlab.com/pulmora/vent-display/pkg/feed"
)

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/vent-display/config.toml
//  2. ~/.config/vent-display/config.toml
//
// If no file exists, returns DefaultConfig with env overrides applied.
func Load() (*Config, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)
	return cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()
	return LoadFromReader(f)
}

// LoadFromReader decodes configuration over the defaults, so unset keys
// keep their default values.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// DefaultConfig returns the defaults: info logging, auto color detection,
// and the simulator's demo script.
func DefaultConfig() *Config {
	fc := feed.DefaultConfig()
	return &Config{
		General: GeneralConfig{
			LogLevel: "info",
		},
		Display: DisplayConfig{
			ColorProfile: "auto",
		},
		Feed: FeedConfig{
			Interval:              Duration{fc.Interval},
			BootDelay:             Duration{fc.BootDelay},
			RespiratoryRate:       fc.RespiratoryRate,
			PeakTarget:            fc.PeakTarget,
			PlateauTarget:         fc.PlateauTarget,
			PEEPTarget:            fc.PEEPTarget,
			BatteryStart:          fc.BatteryStart,
			BatteryDrainPerMinute: fc.BatteryDrainPerMinute,
			Scenario: ScenarioConfig{
				MainsLossAt:     Duration{fc.MainsLossAt},
				OverpressureAt:  Duration{fc.OverpressureAt},
				OverpressureFor: Duration{fc.OverpressureFor},
				DisconnectAt:    Duration{fc.DisconnectAt},
				DisconnectFor:   Duration{fc.DisconnectFor},
				FailAfter:       Duration{fc.FailAfter},
			},
		},
		Versions: VersionsConfig{
			Firmware: "2.4.1",
			Control:  "1.8.0",
		},
	}
}

// applyEnvOverrides checks environment variables and overrides config
// values in place.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("VENTD_LOG_LEVEL"); v != "" {
		cfg.General.LogLevel = v
	}
	if v := os.Getenv("VENTD_LOG_FILE"); v != "" {
		cfg.General.LogFile = v
	}
	if v := os.Getenv("VENTD_COLOR_PROFILE"); v != "" {
		cfg.Display.ColorProfile = v
	}
	if v := os.Getenv("VENTD_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Feed.Seed = seed
		}
	}
}

// configSearchPaths returns the ordered list of config file paths to try.
func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths, filepath.Join(xdg, "vent-display", "config.toml"))

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, "vent-display", "config.toml"))
	}

	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}
