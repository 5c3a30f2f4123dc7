package scrollstory

import (
	"strings"
	"time"
	"unicode/utf8"
)

// DefaultRevealInterval is the delay between revealed characters.
const DefaultRevealInterval = 30 * time.Millisecond

// Side identifies which half of the screen shows the narrative panel.
type Side int

// Panel sides.
const (
	SideLeft Side = iota
	SideRight
)

// String returns the side name.
func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideRight {
		return SideLeft
	}
	return SideRight
}

// SideFor returns the panel side for a chapter: even chapters on the left,
// odd chapters on the right.
func SideFor(index int) Side {
	if index%2 == 0 {
		return SideLeft
	}
	return SideRight
}

// RevealState is the progress of the typewriter reveal for one chapter.
type RevealState struct {
	ChapterIndex       int
	CharactersRevealed int
	Done               bool
}

// Reveal discloses a chapter's body one character at a time. At most one
// timer is live at any moment; starting a new chapter abandons the old one.
type Reveal struct {
	sched    Scheduler
	interval time.Duration
	onTick   func()

	text    []rune
	state   RevealState
	started bool
	timer   Timer
	gen     uint64
}

// NewReveal returns a Reveal that ticks every interval on sched and calls
// onTick after each revealed character. onTick may be nil.
func NewReveal(sched Scheduler, interval time.Duration, onTick func()) *Reveal {
	if interval <= 0 {
		interval = DefaultRevealInterval
	}
	return &Reveal{sched: sched, interval: interval, onTick: onTick}
}

// Start begins revealing ch from the first character, cancelling any reveal
// in flight. The state is reset before the first tick is armed.
func (r *Reveal) Start(ch Chapter) {
	r.Stop()
	r.gen++
	r.text = []rune(ch.Body)
	r.started = true
	r.state = RevealState{ChapterIndex: ch.Index}
	if len(r.text) == 0 {
		r.state.Done = true
		return
	}
	r.arm()
}

// Stop cancels the pending tick, if any. The revealed text is kept.
func (r *Reveal) Stop() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

// State returns the current reveal progress.
func (r *Reveal) State() RevealState {
	return r.state
}

// Started reports whether any chapter has been started.
func (r *Reveal) Started() bool {
	return r.started
}

// Text returns the revealed prefix of the body.
func (r *Reveal) Text() string {
	return string(r.text[:r.state.CharactersRevealed])
}

func (r *Reveal) arm() {
	if r.sched == nil {
		return
	}
	gen := r.gen
	r.timer = r.sched.AfterFunc(r.interval, func() { r.tick(gen) })
}

func (r *Reveal) tick(gen uint64) {
	// A tick queued before the chapter changed must not count.
	if gen != r.gen || r.state.Done {
		return
	}
	r.timer = nil
	r.state.CharactersRevealed++
	if r.state.CharactersRevealed >= len(r.text) {
		r.state.Done = true
	} else {
		r.arm()
	}
	if r.onTick != nil {
		r.onTick()
	}
}

// Density is how tightly a chapter body should be set.
type Density int

// Densities, from most to least room.
const (
	DensitySpacious Density = iota
	DensityRegular
	DensityCompact
)

// DensityFor weighs the body's length and line count. Lines count twenty
// characters each on top of their content.
func DensityFor(body string) Density {
	complexity := utf8.RuneCountInString(body) + (strings.Count(body, "\n")+1)*20
	switch {
	case complexity > 800:
		return DensityCompact
	case complexity > 500:
		return DensityRegular
	default:
		return DensitySpacious
	}
}
