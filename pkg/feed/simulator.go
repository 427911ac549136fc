package feed

import (
	"context"
	"math"
	"time"

	"gitlab.com/pulmora/vent-display/pkg/telemetry"
)

// Battery thresholds, in percent. Crossing one raises the matching
// battery alarm until the level recovers (which the simulator never does,
// batteries only drain here).
const (
	lowBatteryBelow      = 30.0
	criticalBatteryBelow = 10.0
)

// Config controls the simulated ventilation run. Scenario times are
// measured from feed start; a zero window duration disables that scenario.
type Config struct {
	// Interval is the snapshot cadence (default 50ms).
	Interval time.Duration

	// Seed offsets the waveform jitter so two runs don't trace the same
	// curve. Equal seeds reproduce equal runs.
	Seed int64

	// BootDelay is how long the device reports initializing before the
	// first breathing cycle (default 2s).
	BootDelay time.Duration

	// RespiratoryRate is the breathing rate in cycles per minute
	// (default 20). One cycle is one third inhalation, the rest
	// exhalation, matching the firmware's 1:2 ratio.
	RespiratoryRate float64

	// Pressure targets in cmH2O.
	PeakTarget    float64
	PlateauTarget float64
	PEEPTarget    float64

	// BatteryStart is the charge percentage at feed start. The battery
	// holds this level until mains power is lost, then drains at
	// BatteryDrainPerMinute.
	BatteryStart          float64
	BatteryDrainPerMinute float64

	// MainsLossAt is when the unit switches to battery power. From then
	// on the power-supply alarm is active and the battery drains.
	MainsLossAt time.Duration

	// OverpressureAt/OverpressureFor bound a window in which the peak
	// pressure exceeds its safety limit.
	OverpressureAt  time.Duration
	OverpressureFor time.Duration

	// DisconnectAt/DisconnectFor bound a window in which the feed reports
	// the device as disconnected.
	DisconnectAt  time.Duration
	DisconnectFor time.Duration

	// FailAfter, if positive, switches the device into a fatal fault
	// state once that much time has passed.
	FailAfter time.Duration
}

// DefaultConfig returns the demo script: a clean start, mains lost at 40s,
// a ten second overpressure excursion around the half minute mark, and a
// battery that starts low enough to reach both battery alarms in one
// sitting.
func DefaultConfig() Config {
	return Config{
		Interval:              50 * time.Millisecond,
		BootDelay:             2 * time.Second,
		RespiratoryRate:       20,
		PeakTarget:            25,
		PlateauTarget:         14,
		PEEPTarget:            5,
		BatteryStart:          32,
		BatteryDrainPerMinute: 2,
		MainsLossAt:           40 * time.Second,
		OverpressureAt:        25 * time.Second,
		OverpressureFor:       10 * time.Second,
	}
}

// Simulator is a deterministic scripted telemetry source. The whole run is
// a pure function of elapsed time and the config, so any moment of it can
// be sampled directly with SnapshotAt.
type Simulator struct {
	cfg   Config
	phase float64
}

// NewSimulator creates a simulator with the given configuration. Zero-value
// cadence and waveform fields are replaced with defaults; scenario times
// are taken as given (zero means "from the start").
func NewSimulator(cfg Config) *Simulator {
	def := DefaultConfig()
	if cfg.Interval <= 0 {
		cfg.Interval = def.Interval
	}
	if cfg.RespiratoryRate <= 0 {
		cfg.RespiratoryRate = def.RespiratoryRate
	}
	if cfg.PeakTarget <= 0 {
		cfg.PeakTarget = def.PeakTarget
	}
	if cfg.PlateauTarget <= 0 {
		cfg.PlateauTarget = def.PlateauTarget
	}
	if cfg.PEEPTarget <= 0 {
		cfg.PEEPTarget = def.PEEPTarget
	}
	if cfg.BatteryStart <= 0 {
		cfg.BatteryStart = def.BatteryStart
	}
	return &Simulator{
		cfg:   cfg,
		phase: 2 * math.Pi * float64(cfg.Seed%360) / 360,
	}
}

// Name returns the feed identifier.
func (s *Simulator) Name() string { return "simulator" }

// Run pushes one snapshot per interval until ctx is canceled.
func (s *Simulator) Run(ctx context.Context, out chan<- telemetry.Snapshot) error {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			snap := s.SnapshotAt(now.Sub(start))
			snap.At = now
			select {
			case out <- snap:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// SnapshotAt returns the device state at the given point in the run. The
// returned snapshot's At field is zero; Run stamps it with wall time.
func (s *Simulator) SnapshotAt(elapsed time.Duration) telemetry.Snapshot {
	cfg := s.cfg

	if cfg.FailAfter > 0 && elapsed >= cfg.FailAfter {
		return telemetry.Snapshot{
			State: telemetry.StateError,
			Fault: "pressure sensor stopped responding",
		}
	}
	if cfg.DisconnectFor > 0 && elapsed >= cfg.DisconnectAt && elapsed < cfg.DisconnectAt+cfg.DisconnectFor {
		return telemetry.Snapshot{State: telemetry.StateDisconnected}
	}
	if elapsed < cfg.BootDelay {
		return telemetry.Snapshot{
			State:   telemetry.StateInitializing,
			Phase:   telemetry.PhaseHold,
			Battery: cfg.BatteryStart,
		}
	}

	t := (elapsed - cfg.BootDelay).Seconds()
	pressure, phase := s.pressureAt(t)
	battery := s.batteryAt(elapsed)

	peak := cfg.PeakTarget + s.wobble(t, 0.13, 0.8)
	if s.overpressured(elapsed) {
		peak += 9
	}

	return telemetry.Snapshot{
		State:           telemetry.StateRunning,
		Phase:           phase,
		Pressure:        round1(pressure + s.wobble(t, 1.7, 0.35)),
		Peak:            round1(peak),
		Plateau:         round1(cfg.PlateauTarget + s.wobble(t, 0.09, 0.5)),
		PEEP:            round1(cfg.PEEPTarget + s.wobble(t, 0.11, 0.3)),
		CyclesPerMinute: int(math.Round(cfg.RespiratoryRate)),
		Battery:         math.Round(battery),
		Alarms:          s.alarmsAt(elapsed, battery),
	}
}

// pressureAt traces one breathing cycle: a rise to peak across the
// inhalation third, a short plateau hold, then an exponential decay back
// to PEEP.
func (s *Simulator) pressureAt(t float64) (float64, telemetry.CyclePhase) {
	cfg := s.cfg
	cycle := 60 / cfg.RespiratoryRate
	pos := math.Mod(t, cycle) / cycle

	const inhaleEnd, plateauEnd = 1.0 / 3, 0.45
	switch {
	case pos < inhaleEnd:
		u := pos / inhaleEnd
		return cfg.PEEPTarget + (cfg.PeakTarget-cfg.PEEPTarget)*math.Sin(u*math.Pi/2), telemetry.PhaseInhale
	case pos < plateauEnd:
		return cfg.PlateauTarget, telemetry.PhasePlateau
	default:
		u := (pos - plateauEnd) / (1 - plateauEnd)
		return cfg.PEEPTarget + (cfg.PlateauTarget-cfg.PEEPTarget)*math.Exp(-4*u), telemetry.PhaseExhale
	}
}

// batteryAt returns the charge percentage. The battery holds its starting
// level on mains power and drains linearly once mains is lost.
func (s *Simulator) batteryAt(elapsed time.Duration) float64 {
	b := s.cfg.BatteryStart
	if elapsed >= s.cfg.MainsLossAt {
		b -= s.cfg.BatteryDrainPerMinute * (elapsed - s.cfg.MainsLossAt).Minutes()
	}
	return math.Max(b, 0)
}

func (s *Simulator) overpressured(elapsed time.Duration) bool {
	return s.cfg.OverpressureFor > 0 &&
		elapsed >= s.cfg.OverpressureAt &&
		elapsed < s.cfg.OverpressureAt+s.cfg.OverpressureFor
}

// alarmsAt assembles the active set for the moment, most severe first, so
// the display's truncation keeps the alarms an operator must see.
func (s *Simulator) alarmsAt(elapsed time.Duration, battery float64) []telemetry.Alarm {
	var active []telemetry.Alarm
	add := func(code telemetry.AlarmCode) {
		active = append(active, telemetry.Alarm{Code: code, Priority: code.DefaultPriority()})
	}

	if elapsed >= s.cfg.MainsLossAt {
		add(21)
	}
	if battery < criticalBatteryBelow {
		add(14)
	} else if battery < lowBatteryBelow {
		add(17)
	}
	if s.overpressured(elapsed) {
		add(15)
	}

	telemetry.SortActive(active)
	return active
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func (s *Simulator) wobble(t, freq, amp float64) float64 {
	return amp * math.Sin(2*math.Pi*freq*t+s.phase)
}
