package surface

import "fmt"

// Arena mints element identifiers. A display allocates every ID it will ever
// draw with from one Arena at initialization time; renderers receive the IDs
// read-only and select them by index. The Arena records the name given at
// allocation so contract-violation panics can say which element misbehaved.
type Arena struct {
	names []string
}

// NewArena returns an empty Arena. The first allocated ID is 1; ID 0 is the
// pre-existing Window.
func NewArena() *Arena {
	return &Arena{}
}

// Next allocates one identifier under the given diagnostic name.
func (a *Arena) Next(name string) ID {
	a.names = append(a.names, name)
	return ID(len(a.names))
}

// NextList allocates n consecutive identifiers as a fixed-capacity Pool.
// Pools back index-stable per-slot elements: slot i always uses pool index i,
// so redrawing a slot with different content updates the same element.
func (a *Arena) NextList(name string, n int) Pool {
	ids := make([]ID, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, a.Next(fmt.Sprintf("%s[%d]", name, i)))
	}
	return Pool{name: name, ids: ids}
}

// Name returns the diagnostic name an ID was allocated under.
func (a *Arena) Name(id ID) string {
	if id == Window {
		return "window"
	}
	i := int(id) - 1
	if i < 0 || i >= len(a.names) {
		return fmt.Sprintf("unknown(%d)", id)
	}
	return a.names[i]
}

// Len returns the number of identifiers allocated so far.
func (a *Arena) Len() int {
	return len(a.names)
}

// Pool is a fixed-capacity ordered sequence of identifiers. Renderers index
// into it but never grow, shrink, or reorder it.
type Pool struct {
	name string
	ids  []ID
}

// Name returns the name the pool was allocated under.
func (p Pool) Name() string {
	return p.name
}

// Len returns the pool's capacity.
func (p Pool) Len() int {
	return len(p.ids)
}

// At returns the i-th identifier. Indexing past the pool's capacity is a
// programming contract violation, not a runtime condition: it panics so the
// frame aborts instead of drawing with an invalid handle.
func (p Pool) At(i int) ID {
	if i < 0 || i >= len(p.ids) {
		panic(fmt.Sprintf("surface: pool %q index %d out of range (capacity %d)", p.name, i, len(p.ids)))
	}
	return p.ids[i]
}
