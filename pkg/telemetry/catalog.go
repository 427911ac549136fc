package telemetry

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var rawCatalog []byte

// CatalogEntry is one cataloged alarm condition.
type CatalogEntry struct {
	Code     AlarmCode `yaml:"code"`
	Priority Priority  `yaml:"priority"`
	Message  string    `yaml:"message"`
}

// The catalog is embedded so the display never depends on external data
// files. A malformed catalog is a build defect, hence the panic at init.
var catalog = mustParseCatalog(rawCatalog)

func mustParseCatalog(raw []byte) map[AlarmCode]CatalogEntry {
	var file struct {
		Alarms []CatalogEntry `yaml:"alarms"`
	}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		panic(fmt.Sprintf("telemetry: embedded alarm catalog is malformed: %v", err))
	}
	out := make(map[AlarmCode]CatalogEntry, len(file.Alarms))
	for _, e := range file.Alarms {
		if _, dup := out[e.Code]; dup {
			panic(fmt.Sprintf("telemetry: alarm code %d appears twice in the catalog", e.Code))
		}
		out[e.Code] = e
	}
	return out
}

// Description returns the operator-facing message for a code. Codes missing
// from the catalog still render something meaningful rather than failing.
func (c AlarmCode) Description() string {
	if e, ok := c.entry(); ok {
		return e.Message
	}
	return fmt.Sprintf("Unknown alarm (code %d)", c)
}

// DefaultPriority returns the tier a condition is raised at unless the
// device escalates it. Unknown codes default to the highest tier.
func (c AlarmCode) DefaultPriority() Priority {
	if e, ok := c.entry(); ok {
		return e.Priority
	}
	return High
}

// Known reports whether the code is in the catalog.
func (c AlarmCode) Known() bool {
	_, ok := c.entry()
	return ok
}

func (c AlarmCode) entry() (CatalogEntry, bool) {
	e, ok := catalog[c]
	return e, ok
}

// Entries returns the full catalog in ascending code order.
func Entries() []CatalogEntry {
	out := make([]CatalogEntry, 0, len(catalog))
	for _, e := range catalog {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
