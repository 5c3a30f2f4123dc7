package scrollstory_test

import (
	"testing"

	"github.com/fwojciec/scrollstory"
	"github.com/fwojciec/scrollstory/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChapters(t *testing.T) {
	t.Parallel()

	chapters := scrollstory.NewChapters([]scrollstory.ChapterRecord{
		{Title: "One", Body: "first", Image: "one.png", Alt: "a lake"},
		{Title: "Two"},
	})

	require.Len(t, chapters, 2)
	assert.Equal(t, scrollstory.Chapter{
		Index: 0,
		Title: "One",
		Body:  "first",
		Image: scrollstory.ImageRef{Path: "one.png", Alt: "a lake"},
	}, chapters[0])
	assert.Equal(t, 1, chapters[1].Index)
	assert.Empty(t, chapters[1].Body)
}

func TestSampler(t *testing.T) {
	t.Parallel()

	t.Run("nil surface samples as unmounted", func(t *testing.T) {
		t.Parallel()

		s := scrollstory.NewSampler(nil)

		assert.Equal(t, scrollstory.ViewportState{}, s.Sample())
		_, ok := s.AnchorRect(0)
		assert.False(t, ok)
	})

	t.Run("unmounted container samples as zero", func(t *testing.T) {
		t.Parallel()

		s := scrollstory.NewSampler(&mock.Surface{
			ViewportFn: func() (scrollstory.ViewportState, bool) {
				return scrollstory.ViewportState{ScrollOffset: 10}, false
			},
		})

		assert.Equal(t, scrollstory.ViewportState{}, s.Sample())
	})

	t.Run("reads live geometry on every call", func(t *testing.T) {
		t.Parallel()

		offset := 0.0
		s := scrollstory.NewSampler(&mock.Surface{
			ViewportFn: func() (scrollstory.ViewportState, bool) {
				return scrollstory.ViewportState{ScrollOffset: offset, ContainerHeight: 50}, true
			},
			AnchorRectFn: func(index int) (scrollstory.Rect, bool) {
				return scrollstory.Rect{Top: float64(index*10) - offset, Bottom: float64(index*10+5) - offset}, true
			},
		})

		assert.InDelta(t, 0, s.Sample().ScrollOffset, 1e-9)
		offset = 7
		assert.InDelta(t, 7, s.Sample().ScrollOffset, 1e-9)
		r, ok := s.AnchorRect(2)
		require.True(t, ok)
		assert.Equal(t, scrollstory.Rect{Top: 13, Bottom: 18}, r)
	})

	t.Run("negative index is never mounted", func(t *testing.T) {
		t.Parallel()

		s := scrollstory.NewSampler(&mock.Surface{
			AnchorRectFn: func(int) (scrollstory.Rect, bool) { return scrollstory.Rect{}, true },
		})

		_, ok := s.AnchorRect(-1)
		assert.False(t, ok)
	})
}

func TestSnapshot_PanelFor(t *testing.T) {
	t.Parallel()

	snap := scrollstory.Snapshot{Panel: &scrollstory.PanelView{Side: scrollstory.SideRight, Index: 1}}

	p, ok := snap.PanelFor(scrollstory.SideRight)
	assert.True(t, ok)
	assert.Equal(t, 1, p.Index)
	_, ok = snap.PanelFor(scrollstory.SideLeft)
	assert.False(t, ok)
	_, ok = scrollstory.Snapshot{}.PanelFor(scrollstory.SideLeft)
	assert.False(t, ok)
}
