package bubbletea_test

import (
	"testing"
	"time"

	"github.com/fwojciec/scrollstory"
	"github.com/fwojciec/scrollstory/bubbletea"
	"github.com/fwojciec/scrollstory/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mountedSurface returns a surface over three placeholder chapters in a ten
// row viewport starting at screen row 2. The scroll range is 0..50.
func mountedSurface(t *testing.T) (*bubbletea.Surface, *mock.Clock) {
	t.Helper()
	clock := mock.NewClock()
	s := bubbletea.NewSurface(clock)
	chapters := scrollstory.NewChapters(make([]scrollstory.ChapterRecord, 3))
	s.SetLayout(bubbletea.NewLayout(chapters, 40, 10), 2)
	return s, clock
}

func TestSurface_Unmounted(t *testing.T) {
	t.Parallel()

	s := bubbletea.NewSurface(mock.NewClock())

	_, ok := s.Viewport()
	assert.False(t, ok)
	_, ok = s.AnchorRect(0)
	assert.False(t, ok)
}

func TestSurface_Geometry(t *testing.T) {
	t.Parallel()

	s, _ := mountedSurface(t)

	vp, ok := s.Viewport()
	require.True(t, ok)
	assert.Equal(t, scrollstory.ViewportState{ContainerHeight: 10, ContainerTop: 2, ScrollableHeight: 50}, vp)

	r, ok := s.AnchorRect(1)
	require.True(t, ok)
	assert.Equal(t, scrollstory.Rect{Top: 13, Bottom: 20}, r)

	s.SetOffset(5)
	r, _ = s.AnchorRect(1)
	assert.Equal(t, scrollstory.Rect{Top: 8, Bottom: 15}, r)

	_, ok = s.AnchorRect(3)
	assert.False(t, ok)
}

func TestSurface_ScrollToAnimates(t *testing.T) {
	t.Parallel()

	s, clock := mountedSurface(t)
	events := 0
	s.Listen(func() { events++ })

	s.ScrollTo(30)

	assert.Zero(t, s.Offset(), "nothing moves before the first frame")
	assert.True(t, s.Animating())
	assert.Zero(t, events)

	clock.Advance(100 * time.Millisecond)
	assert.Greater(t, s.Offset(), 0.0)
	assert.Less(t, s.Offset(), 30.0)

	clock.Advance(2 * time.Second)
	assert.InDelta(t, 30, s.Offset(), 1e-9)
	assert.False(t, s.Animating())
	assert.Greater(t, events, 2)
	assert.Zero(t, clock.Pending())
}

func TestSurface_ScrollToClampsTarget(t *testing.T) {
	t.Parallel()

	s, clock := mountedSurface(t)

	s.ScrollTo(1000)
	clock.Advance(3 * time.Second)

	assert.InDelta(t, 50, s.Offset(), 1e-9)
}

func TestSurface_UserScrollCancelsAnimation(t *testing.T) {
	t.Parallel()

	s, clock := mountedSurface(t)
	s.ScrollTo(30)
	clock.Advance(50 * time.Millisecond)
	at := s.Offset()

	s.ScrollBy(1)

	assert.False(t, s.Animating())
	assert.Zero(t, clock.Pending())
	assert.InDelta(t, at+1, s.Offset(), 1e-9)
}

func TestSurface_ScrollByClamps(t *testing.T) {
	t.Parallel()

	s, _ := mountedSurface(t)
	events := 0
	s.Listen(func() { events++ })

	s.ScrollBy(-5)
	assert.Zero(t, s.Offset())
	assert.Zero(t, events, "no event when nothing moved")

	s.ScrollBy(500)
	assert.InDelta(t, 50, s.Offset(), 1e-9)
	assert.Equal(t, 1, events)
}

func TestSurface_ResizeClampsAndNotifies(t *testing.T) {
	t.Parallel()

	s, _ := mountedSurface(t)
	s.SetOffset(50)
	events := 0
	s.Listen(func() { events++ })

	s.SetLayout(bubbletea.NewLayout(scrollstory.NewChapters(make([]scrollstory.ChapterRecord, 1)), 40, 10), 2)

	assert.InDelta(t, 30, s.Offset(), 1e-9)
	assert.Equal(t, 1, events)
}

func TestSurface_ListenRemove(t *testing.T) {
	t.Parallel()

	s, _ := mountedSurface(t)
	events := 0
	remove := s.Listen(func() { events++ })

	remove()
	s.SetOffset(10)

	assert.Zero(t, events)
}
