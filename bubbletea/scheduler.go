package bubbletea

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/scrollstory"
)

// Compile-time interface verification.
var _ scrollstory.Scheduler = (*Scheduler)(nil)

// timerFiredMsg tells the model a scheduled callback is due.
type timerFiredMsg struct {
	id uint64
}

// Scheduler runs timer callbacks on the Bubble Tea event loop. Timers fire on
// their own goroutines but only deliver an id; the callback itself runs when
// the model passes the resulting message to Dispatch.
//
// AfterFunc, Stop and Dispatch must be called from the event loop.
type Scheduler struct {
	nextID  uint64
	pending map[uint64]*hostTimer

	fired     chan uint64
	done      chan struct{}
	closeOnce sync.Once
}

type hostTimer struct {
	sched *Scheduler
	id    uint64
	fn    func()
	timer *time.Timer
}

// NewScheduler returns a Scheduler with no pending timers.
func NewScheduler() *Scheduler {
	return &Scheduler{
		pending: make(map[uint64]*hostTimer),
		fired:   make(chan uint64),
		done:    make(chan struct{}),
	}
}

// AfterFunc schedules fn to run on the event loop after d.
func (s *Scheduler) AfterFunc(d time.Duration, fn func()) scrollstory.Timer {
	s.nextID++
	t := &hostTimer{sched: s, id: s.nextID, fn: fn}
	s.pending[t.id] = t
	id := t.id
	t.timer = time.AfterFunc(d, func() {
		select {
		case s.fired <- id:
		case <-s.done:
		}
	})
	return t
}

// Wait returns a command that blocks until the next timer fires. The model
// must issue exactly one Wait at a time and re-issue it after every
// dispatched message.
func (s *Scheduler) Wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case id := <-s.fired:
			return timerFiredMsg{id: id}
		case <-s.done:
			return nil
		}
	}
}

// Dispatch runs the callback behind msg. It reports whether msg was a timer
// message; callbacks of stopped timers are skipped.
func (s *Scheduler) Dispatch(msg tea.Msg) bool {
	fired, ok := msg.(timerFiredMsg)
	if !ok {
		return false
	}
	t, ok := s.pending[fired.id]
	if !ok {
		return true
	}
	delete(s.pending, fired.id)
	t.fn()
	return true
}

// Pending returns the number of timers that have not run or been stopped.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Close stops every pending timer and releases goroutines blocked on
// delivery. It is safe to call more than once.
func (s *Scheduler) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		for id, t := range s.pending {
			t.timer.Stop()
			delete(s.pending, id)
		}
	})
}

// Stop cancels the callback. A timer that already fired but has not been
// dispatched yet is still stopped.
func (t *hostTimer) Stop() bool {
	if _, ok := t.sched.pending[t.id]; !ok {
		return false
	}
	delete(t.sched.pending, t.id)
	t.timer.Stop()
	return true
}
