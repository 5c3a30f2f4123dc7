package bubbletea

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/fwojciec/scrollstory"
)

// Compile-time interface verification.
var _ scrollstory.Surface = (*Surface)(nil)

// Spring parameters for programmatic scrolls. A critically damped spring at
// this frequency settles well within the default one second lock.
const (
	frameRate       = 60
	springFrequency = 12.0
	springDamping   = 1.0
)

// Surface is the terminal rendering surface: a viewport of rows scrolled
// over a Layout. It is mounted once it has been given a non-empty layout.
type Surface struct {
	sched  scrollstory.Scheduler
	layout Layout
	top    int // Screen row of the viewport's first line

	offset   float64
	velocity float64
	target   float64
	spring   harmonica.Spring
	frame    scrollstory.Timer

	listeners []listener
	nextID    int
}

type listener struct {
	id int
	fn func()
}

// NewSurface returns an unmounted Surface animating on sched.
func NewSurface(sched scrollstory.Scheduler) *Surface {
	return &Surface{
		sched:  sched,
		spring: harmonica.NewSpring(harmonica.FPS(frameRate), springFrequency, springDamping),
	}
}

// SetLayout replaces the layout, placing the viewport top at screen row top.
// The offset is clamped to the new scroll range and listeners are notified
// as for a resize.
func (s *Surface) SetLayout(l Layout, top int) {
	s.layout = l
	s.top = top
	s.offset = s.clamp(s.offset)
	if s.frame != nil {
		s.target = s.clamp(s.target)
	}
	s.emit()
}

// Layout returns the current layout.
func (s *Surface) Layout() Layout {
	return s.layout
}

// Top returns the screen row of the viewport's first line.
func (s *Surface) Top() int {
	return s.top
}

// Mounted reports whether the surface has a viewport to sample.
func (s *Surface) Mounted() bool {
	return s.layout.Height > 0
}

// Viewport implements scrollstory.Surface.
func (s *Surface) Viewport() (scrollstory.ViewportState, bool) {
	if !s.Mounted() {
		return scrollstory.ViewportState{}, false
	}
	return scrollstory.ViewportState{
		ScrollOffset:     s.offset,
		ContainerHeight:  float64(s.layout.Height),
		ContainerTop:     float64(s.top),
		ScrollableHeight: float64(s.layout.MaxOffset()),
	}, true
}

// AnchorRect implements scrollstory.Surface.
func (s *Surface) AnchorRect(index int) (scrollstory.Rect, bool) {
	if !s.Mounted() || index < 0 || index >= len(s.layout.Sections) {
		return scrollstory.Rect{}, false
	}
	sec := s.layout.Sections[index]
	top := float64(s.top+sec.AnchorTop) - s.offset
	return scrollstory.Rect{Top: top, Bottom: top + float64(sec.AnchorRows)}, true
}

// ScrollTo implements scrollstory.Surface. The viewport springs towards
// offset one frame at a time; nothing moves until the first frame fires.
func (s *Surface) ScrollTo(offset float64) {
	s.target = s.clamp(offset)
	if s.frame == nil {
		s.scheduleFrame()
	}
}

// ScrollBy moves the viewport by delta rows immediately, cancelling any
// animation in progress.
func (s *Surface) ScrollBy(delta float64) {
	s.SetOffset(s.offset + delta)
}

// SetOffset moves the viewport to offset immediately, cancelling any
// animation in progress.
func (s *Surface) SetOffset(offset float64) {
	s.stopAnimation()
	offset = s.clamp(offset)
	if offset == s.offset {
		return
	}
	s.offset = offset
	s.emit()
}

// Offset returns the current scroll offset.
func (s *Surface) Offset() float64 {
	return s.offset
}

// Row returns the content row drawn on the viewport's first line.
func (s *Surface) Row() int {
	return int(math.Round(s.offset))
}

// Animating reports whether a programmatic scroll is in flight.
func (s *Surface) Animating() bool {
	return s.frame != nil
}

// Listen implements scrollstory.Surface.
func (s *Surface) Listen(fn func()) func() {
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listener{id: id, fn: fn})
	return func() {
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Close cancels any animation in progress and drops all listeners.
func (s *Surface) Close() {
	s.stopAnimation()
	s.listeners = nil
}

func (s *Surface) scheduleFrame() {
	s.frame = s.sched.AfterFunc(time.Second/frameRate, s.step)
}

func (s *Surface) step() {
	s.frame = nil
	s.offset, s.velocity = s.spring.Update(s.offset, s.velocity, s.target)
	if math.Abs(s.offset-s.target) < 0.5 && math.Abs(s.velocity) < 0.5 {
		s.offset = s.target
		s.velocity = 0
	} else {
		s.scheduleFrame()
	}
	s.emit()
}

func (s *Surface) stopAnimation() {
	if s.frame != nil {
		s.frame.Stop()
		s.frame = nil
	}
	s.velocity = 0
}

func (s *Surface) clamp(offset float64) float64 {
	return math.Max(0, math.Min(offset, float64(s.layout.MaxOffset())))
}

func (s *Surface) emit() {
	ls := append([]listener(nil), s.listeners...)
	for _, l := range ls {
		l.fn()
	}
}
