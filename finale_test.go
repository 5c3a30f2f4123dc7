package scrollstory_test

import (
	"testing"

	"github.com/fwojciec/scrollstory"
	"github.com/stretchr/testify/assert"
)

func TestIsFinale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		offset float64
		scrollable float64
		want   bool
	}{
		{"top", 0, 1000, false},
		{"exactly at threshold", 850, 1000, false},
		{"just past threshold", 851, 1000, true},
		{"bottom", 1000, 1000, true},
		{"nothing to scroll", 0, 0, false},
		{"negative range", 10, -5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			vp := scrollstory.ViewportState{ScrollOffset: tt.offset, ContainerHeight: 100, ScrollableHeight: tt.scrollable}

			assert.Equal(t, tt.want, scrollstory.IsFinale(vp, scrollstory.DefaultFinaleThreshold))
		})
	}
}

func TestScrollFraction(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.5, scrollstory.ScrollFraction(scrollstory.ViewportState{ScrollOffset: 40, ScrollableHeight: 80}), 1e-9)
	assert.Zero(t, scrollstory.ScrollFraction(scrollstory.ViewportState{ScrollOffset: 40}))
}
