package scrollstory

// VisibilitySet holds the indices of visible chapters in ascending order.
type VisibilitySet []int

// Contains reports whether index is in the set.
func (s VisibilitySet) Contains(index int) bool {
	for _, i := range s {
		if i == index {
			return true
		}
	}
	return false
}

// Min returns the lowest index in the set, or false if the set is empty.
func (s VisibilitySet) Min() (int, bool) {
	if len(s) == 0 {
		return 0, false
	}
	return s[0], true
}

// Band is the vertical range a chapter anchor must overlap to count as visible.
type Band struct {
	Top    float64
	Bottom float64
}

// CentralBand returns the part of the viewport left after trimming fraction
// of the container height from both the top and the bottom. A fraction of
// 0.25 yields the central half.
func CentralBand(vp ViewportState, fraction float64) Band {
	inset := vp.ContainerHeight * fraction
	return Band{
		Top:    vp.ContainerTop + inset,
		Bottom: vp.ContainerTop + vp.ContainerHeight - inset,
	}
}

// Overlaps reports whether r intersects the band. Touching edges do not count.
func (b Band) Overlaps(r Rect) bool {
	return r.Top < b.Bottom && r.Bottom > b.Top
}

// AnchorFunc looks up the anchor geometry of a chapter.
type AnchorFunc func(index int) (Rect, bool)

// Classify returns the chapters among the first n whose anchors overlap the
// central band of vp. Chapters without geometry are not visible.
func Classify(vp ViewportState, n int, anchor AnchorFunc, fraction float64) VisibilitySet {
	if vp.ContainerHeight <= 0 || anchor == nil {
		return nil
	}
	band := CentralBand(vp, fraction)
	var visible VisibilitySet
	for i := 0; i < n; i++ {
		r, ok := anchor(i)
		if !ok {
			continue
		}
		if band.Overlaps(r) {
			visible = append(visible, i)
		}
	}
	return visible
}

// Classifier tracks the visible set and the active chapter across samples.
// The active chapter is the lowest visible index and survives samples in
// which nothing is visible.
type Classifier struct {
	fraction  float64
	visible   VisibilitySet
	active    int
	hasActive bool
}

// NewClassifier returns a Classifier using the given band fraction.
func NewClassifier(fraction float64) *Classifier {
	return &Classifier{fraction: fraction}
}

// Update reclassifies from a fresh sample and reports whether the visible
// set or the active chapter changed.
func (c *Classifier) Update(vp ViewportState, n int, anchor AnchorFunc) bool {
	visible := Classify(vp, n, anchor, c.fraction)
	changed := !equalSets(c.visible, visible)
	c.visible = visible
	if first, ok := visible.Min(); ok && (!c.hasActive || first != c.active) {
		c.active = first
		c.hasActive = true
		changed = true
	}
	return changed
}

// Reset forces the visible set to {index} and makes index active.
func (c *Classifier) Reset(index int) {
	c.visible = VisibilitySet{index}
	c.active = index
	c.hasActive = true
}

// Visible returns the most recent visible set.
func (c *Classifier) Visible() VisibilitySet {
	return c.visible
}

// Active returns the active chapter, or false before any chapter was visible.
func (c *Classifier) Active() (int, bool) {
	return c.active, c.hasActive
}

func equalSets(a, b VisibilitySet) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
