package scrollstory

// DefaultFinaleThreshold is the scroll fraction past which the finale shows.
const DefaultFinaleThreshold = 0.85

// ScrollFraction returns how far through its scroll range the viewport is.
// A container with nothing to scroll reports 0.
func ScrollFraction(vp ViewportState) float64 {
	if vp.ScrollableHeight <= 0 {
		return 0
	}
	return vp.ScrollOffset / vp.ScrollableHeight
}

// IsFinale reports whether vp is scrolled past threshold.
func IsFinale(vp ViewportState, threshold float64) bool {
	return ScrollFraction(vp) > threshold
}
