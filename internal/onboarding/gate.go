package onboarding

// DefaultTolerance is the slack, in the caller's coordinate units, allowed
// between the end-of-content marker and the viewport bottom when deciding
// whether the user has scrolled to the end. It absorbs sub-pixel rounding
// and scroll animation overshoot.
const DefaultTolerance = 10.0

// Gate decides whether a scrollable pane has been read to the end. It is a
// pure function of the geometry passed on each call; callers may invoke it
// on every layout pass without accumulating state.
type Gate struct {
	// Tolerance is the allowed slack below the viewport bottom.
	Tolerance float64
}

// NewGate returns a Gate with the given tolerance. A negative tolerance
// falls back to DefaultTolerance.
func NewGate(tolerance float64) Gate {
	if tolerance < 0 {
		tolerance = DefaultTolerance
	}
	return Gate{Tolerance: tolerance}
}

// AtBottom reports whether the end-of-content marker is visible within the
// viewport, give or take the tolerance. markerBottom is the bottom edge of a
// zero-height marker placed after all content; viewportBottom is the bottom
// edge of the visible area, in the same coordinate space.
//
// Content shorter than the viewport places the marker above the viewport
// bottom on first layout, so the gate is satisfied without any scrolling.
func (g Gate) AtBottom(markerBottom, viewportBottom float64) bool {
	return markerBottom <= viewportBottom+g.Tolerance
}
