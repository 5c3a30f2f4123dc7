package scrollstory

import "math"

// Marker is one chapter's indicator on the timeline track.
type Marker struct {
	Index    int
	Position float64 // 0 at the start of the track, 1 at the end
	Active   bool
	Label    string
}

// Markers lays out one marker per chapter, evenly spaced along the track.
func Markers(chapters []Chapter, active int, hasActive bool) []Marker {
	n := len(chapters)
	markers := make([]Marker, n)
	for i, ch := range chapters {
		var pos float64
		if n > 1 {
			pos = float64(i) / float64(n-1)
		}
		markers[i] = Marker{
			Index:    i,
			Position: pos,
			Active:   hasActive && i == active,
			Label:    ch.Title,
		}
	}
	return markers
}

// CenterOffset returns the scroll offset that vertically centers anchor in
// the viewport. The result is never negative.
func CenterOffset(vp ViewportState, anchor Rect) float64 {
	target := vp.ScrollOffset + anchor.Top - vp.ContainerTop - vp.ContainerHeight/2 + anchor.Height()/2
	return math.Max(0, target)
}
