package core

// RisingEdge reports whether a signal went from inactive to active.
func RisingEdge(prev, curr bool) bool {
	return !prev && curr
}

// EdgeDetector remembers the previous sample of a polled signal so callers
// can react to a press once instead of on every frame it is held.
type EdgeDetector struct {
	prev bool
}

// Update feeds the current sample and returns true on a rising edge.
func (e *EdgeDetector) Update(curr bool) bool {
	fired := RisingEdge(e.prev, curr)
	e.prev = curr
	return fired
}

// Reset forgets the previous sample.
func (e *EdgeDetector) Reset() {
	e.prev = false
}
