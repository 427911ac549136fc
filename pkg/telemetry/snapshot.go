package telemetry

import (
	"fmt"
	"time"
)

// MachineState is the device's top-level operating state, driving which
// screen the display composes.
type MachineState int

const (
	StateInitializing MachineState = iota
	StateRunning
	StateStopped
	StateDisconnected
	StateError
)

// String returns the lowercase state name.
func (s MachineState) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	case StateDisconnected:
		return "disconnected"
	case StateError:
		return "error"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// CyclePhase is the position within one breathing cycle. The firmware holds
// inhalation for the first third of the cycle and exhalation for the rest.
type CyclePhase int

const (
	PhaseInhale CyclePhase = iota
	PhasePlateau
	PhaseExhale
	PhaseHold
)

// String returns the lowercase phase name.
func (p CyclePhase) String() string {
	switch p {
	case PhaseInhale:
		return "inhale"
	case PhasePlateau:
		return "plateau"
	case PhaseExhale:
		return "exhale"
	case PhaseHold:
		return "hold"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Snapshot is one frame of device state as the feed reports it. Pressures
// are in cmH2O; Peak, Plateau and PEEP are the previous cycle's measured
// values while Pressure is instantaneous. Battery is a percentage.
type Snapshot struct {
	State           MachineState
	Phase           CyclePhase
	Pressure        float64
	Peak            float64
	Plateau         float64
	PEEP            float64
	CyclesPerMinute int
	Battery         float64
	Alarms          []Alarm
	Fault           string
	At              time.Time
}
