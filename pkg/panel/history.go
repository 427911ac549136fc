package panel

// History keeps the most recent pressure samples for the waveform, oldest
// first. Once full it slides: pushing drops the oldest sample.
type History struct {
	samples []float64
	depth   int
}

// NewHistory returns a history holding up to depth samples.
func NewHistory(depth int) *History {
	if depth < 1 {
		depth = 1
	}
	return &History{samples: make([]float64, 0, depth), depth: depth}
}

// Push appends a sample, evicting the oldest when full.
func (h *History) Push(v float64) {
	if len(h.samples) == h.depth {
		copy(h.samples, h.samples[1:])
		h.samples[len(h.samples)-1] = v
		return
	}
	h.samples = append(h.samples, v)
}

// Samples returns the retained samples, oldest first. The slice aliases
// internal storage and is only valid until the next Push.
func (h *History) Samples() []float64 {
	return h.samples
}

// Len returns how many samples are retained.
func (h *History) Len() int { return len(h.samples) }
