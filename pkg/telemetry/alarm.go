// Package telemetry models the data the ventilator reports to its operator
// display: alarm conditions with severity tiers, the alarm catalog mapping
// codes to operator-facing messages, and per-frame machine snapshots.
//
// The package decides nothing about alarm detection. Conditions are raised
// upstream; this layer only describes them and orders them for rendering.
package telemetry

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Priority is the severity tier of an alarm condition.
type Priority int

const (
	Low Priority = iota + 1
	Medium
	High
)

// String returns the lowercase tier name.
func (p Priority) String() string {
	switch p {
	case High:
		return "high"
	case Medium:
		return "medium"
	case Low:
		return "low"
	}
	return fmt.Sprintf("priority(%d)", int(p))
}

// ParsePriority parses a tier name, case-insensitively.
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return High, nil
	case "medium":
		return Medium, nil
	case "low":
		return Low, nil
	}
	return 0, fmt.Errorf("telemetry: unknown alarm priority %q", s)
}

// UnmarshalYAML decodes a tier name from the alarm catalog.
func (p *Priority) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := ParsePriority(raw)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// AlarmCode identifies one alarm condition. The numeric value is what the
// device transmits and what the code badge displays.
type AlarmCode uint8

// String returns the numeric code as the badge renders it.
func (c AlarmCode) String() string {
	return strconv.Itoa(int(c))
}

// Alarm is one active alarm condition: a code plus the severity tier it was
// raised at. The tier may differ from the catalog default when the device
// escalates a condition.
type Alarm struct {
	Code     AlarmCode
	Priority Priority
}

// SortActive orders alarms the way the display must receive them: higher
// tiers first, ties broken by ascending code. The banner silently truncates
// past its capacity, so this ordering is what keeps the alarms that must
// never be hidden inside the visible window.
func SortActive(alarms []Alarm) {
	sort.SliceStable(alarms, func(i, j int) bool {
		if alarms[i].Priority != alarms[j].Priority {
			return alarms[i].Priority > alarms[j].Priority
		}
		return alarms[i].Code < alarms[j].Code
	})
}
