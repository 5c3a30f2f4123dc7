package mock

import (
	"sort"
	"time"

	"github.com/fwojciec/scrollstory"
)

// Compile-time interface verification.
var _ scrollstory.Scheduler = (*Clock)(nil)

// Clock is a manual scheduler. Callbacks run synchronously from Advance, in
// due order, so tests control time exactly.
type Clock struct {
	now     time.Duration
	seq     int
	pending []*clockTimer
}

type clockTimer struct {
	clock *Clock
	due   time.Duration
	seq   int
	fn    func()
	done  bool
}

// NewClock returns a Clock at time zero.
func NewClock() *Clock {
	return &Clock{}
}

// AfterFunc schedules fn to run once the clock has advanced by d.
func (c *Clock) AfterFunc(d time.Duration, fn func()) scrollstory.Timer {
	c.seq++
	t := &clockTimer{clock: c, due: c.now + d, seq: c.seq, fn: fn}
	c.pending = append(c.pending, t)
	return t
}

// Advance moves the clock forward by d, running every callback that becomes
// due, including ones scheduled by callbacks along the way.
func (c *Clock) Advance(d time.Duration) {
	end := c.now + d
	for {
		t := c.next()
		if t == nil || t.due > end {
			break
		}
		c.now = t.due
		t.done = true
		c.remove(t)
		t.fn()
	}
	c.now = end
}

// Now returns the elapsed clock time.
func (c *Clock) Now() time.Duration {
	return c.now
}

// Pending returns the number of live timers.
func (c *Clock) Pending() int {
	return len(c.pending)
}

func (c *Clock) next() *clockTimer {
	if len(c.pending) == 0 {
		return nil
	}
	sort.SliceStable(c.pending, func(i, j int) bool {
		if c.pending[i].due == c.pending[j].due {
			return c.pending[i].seq < c.pending[j].seq
		}
		return c.pending[i].due < c.pending[j].due
	})
	return c.pending[0]
}

func (c *Clock) remove(t *clockTimer) {
	for i, p := range c.pending {
		if p == t {
			c.pending = append(c.pending[:i], c.pending[i+1:]...)
			return
		}
	}
}

func (t *clockTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	t.clock.remove(t)
	return true
}
