package scrollstory_test

import (
	"testing"

	"github.com/fwojciec/scrollstory"
	"github.com/stretchr/testify/assert"
)

func TestCentralBand(t *testing.T) {
	t.Parallel()

	vp := scrollstory.ViewportState{ContainerTop: 10, ContainerHeight: 200}

	band := scrollstory.CentralBand(vp, 0.25)

	assert.Equal(t, scrollstory.Band{Top: 60, Bottom: 160}, band)
}

func TestBand_Overlaps(t *testing.T) {
	t.Parallel()

	band := scrollstory.Band{Top: 25, Bottom: 75}

	tests := []struct {
		name string
		rect scrollstory.Rect
		want bool
	}{
		{"inside", scrollstory.Rect{Top: 30, Bottom: 70}, true},
		{"straddles top edge", scrollstory.Rect{Top: 0, Bottom: 30}, true},
		{"straddles bottom edge", scrollstory.Rect{Top: 70, Bottom: 120}, true},
		{"covers band", scrollstory.Rect{Top: -100, Bottom: 200}, true},
		{"above", scrollstory.Rect{Top: -40, Bottom: 20}, false},
		{"below", scrollstory.Rect{Top: 80, Bottom: 120}, false},
		{"touches top edge", scrollstory.Rect{Top: 0, Bottom: 25}, false},
		{"touches bottom edge", scrollstory.Rect{Top: 75, Bottom: 100}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, band.Overlaps(tt.rect))
		})
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	vp := scrollstory.ViewportState{ContainerHeight: 100}
	rects := map[int]scrollstory.Rect{
		0: {Top: -60, Bottom: 10},
		1: {Top: 20, Bottom: 40},
		2: {Top: 60, Bottom: 90},
		// 3 is not mounted
		4: {Top: 200, Bottom: 260},
	}
	anchor := func(i int) (scrollstory.Rect, bool) {
		r, ok := rects[i]
		return r, ok
	}

	t.Run("returns overlapping chapters in order", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, scrollstory.VisibilitySet{1, 2}, scrollstory.Classify(vp, 5, anchor, 0.25))
	})

	t.Run("zero height container sees nothing", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, scrollstory.Classify(scrollstory.ViewportState{}, 5, anchor, 0.25))
	})

	t.Run("wider band admits more chapters", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, scrollstory.VisibilitySet{0, 1, 2}, scrollstory.Classify(vp, 5, anchor, 0))
	})
}

func TestClassifier(t *testing.T) {
	t.Parallel()

	vp := scrollstory.ViewportState{ContainerHeight: 100}
	at := func(rects map[int]scrollstory.Rect) scrollstory.AnchorFunc {
		return func(i int) (scrollstory.Rect, bool) {
			r, ok := rects[i]
			return r, ok
		}
	}

	t.Run("no active chapter before the first visible sample", func(t *testing.T) {
		t.Parallel()

		c := scrollstory.NewClassifier(0.25)
		changed := c.Update(vp, 2, at(nil))

		assert.False(t, changed)
		_, ok := c.Active()
		assert.False(t, ok)
	})

	t.Run("active is the lowest visible index", func(t *testing.T) {
		t.Parallel()

		c := scrollstory.NewClassifier(0.25)
		changed := c.Update(vp, 3, at(map[int]scrollstory.Rect{
			1: {Top: 30, Bottom: 50},
			2: {Top: 50, Bottom: 70},
		}))

		assert.True(t, changed)
		active, ok := c.Active()
		assert.True(t, ok)
		assert.Equal(t, 1, active)
		assert.True(t, c.Visible().Contains(active))
	})

	t.Run("empty sample keeps the active chapter", func(t *testing.T) {
		t.Parallel()

		c := scrollstory.NewClassifier(0.25)
		c.Update(vp, 3, at(map[int]scrollstory.Rect{2: {Top: 40, Bottom: 60}}))
		changed := c.Update(vp, 3, at(nil))

		assert.True(t, changed, "visible set emptied")
		active, ok := c.Active()
		assert.True(t, ok)
		assert.Equal(t, 2, active)
		assert.Empty(t, c.Visible())
	})

	t.Run("reset forces a single visible chapter", func(t *testing.T) {
		t.Parallel()

		c := scrollstory.NewClassifier(0.25)
		c.Update(vp, 3, at(map[int]scrollstory.Rect{2: {Top: 40, Bottom: 60}}))
		c.Reset(0)

		active, _ := c.Active()
		assert.Equal(t, 0, active)
		assert.Equal(t, scrollstory.VisibilitySet{0}, c.Visible())
	})
}
