// Package engine ties the narrative components together into a single state
// holder driven by surface events.
package engine

import (
	"github.com/fwojciec/scrollstory"
	"go.uber.org/zap"
)

// Option configures an Engine.
type Option func(*Engine)

// WithConfig sets the tuning parameters.
func WithConfig(cfg scrollstory.Config) Option {
	return func(e *Engine) {
		e.cfg = cfg
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// Engine owns all derived narrative state: the viewport sample, visible set,
// active chapter, reveal, navigation lock and finale. Every method must be
// called from the host's event loop.
type Engine struct {
	chapters []scrollstory.Chapter
	cfg      scrollstory.Config
	sched    scrollstory.Scheduler
	logger   *zap.Logger

	sampler  *scrollstory.Sampler
	surface  scrollstory.Surface
	unlisten func()

	viewport   scrollstory.ViewportState
	classifier *scrollstory.Classifier
	reveal     *scrollstory.Reveal
	finale     bool
	locked     bool
	settle     scrollstory.Timer

	subscribers []subscriber
	nextSubID   int
	destroyed   bool
}

type subscriber struct {
	id int
	fn func(scrollstory.Snapshot)
}

// New returns an Engine over chapters whose timers run on sched.
func New(chapters []scrollstory.Chapter, sched scrollstory.Scheduler, opts ...Option) *Engine {
	e := &Engine{
		chapters: chapters,
		cfg:      scrollstory.DefaultConfig(),
		sched:    sched,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.classifier = scrollstory.NewClassifier(e.cfg.BandFraction)
	e.reveal = scrollstory.NewReveal(sched, e.cfg.RevealInterval, e.notify)
	e.sampler = scrollstory.NewSampler(nil)
	return e
}

// Mount attaches the engine to a surface, registers for its scroll and
// resize events and takes an initial sample.
func (e *Engine) Mount(s scrollstory.Surface) error {
	if e.destroyed {
		return scrollstory.ErrDestroyed
	}
	if e.surface != nil {
		return scrollstory.ErrAlreadyMounted
	}
	e.surface = s
	e.sampler = scrollstory.NewSampler(s)
	e.unlisten = s.Listen(e.HandleScroll)
	e.HandleScroll()
	return nil
}

// Destroy deregisters from the surface, stops every timer and drops all
// subscribers. It is safe to call more than once.
func (e *Engine) Destroy() {
	if e.destroyed {
		return
	}
	e.destroyed = true
	if e.unlisten != nil {
		e.unlisten()
		e.unlisten = nil
	}
	e.reveal.Stop()
	e.stopSettle()
	e.subscribers = nil
}

// HandleScroll resamples the surface and recomputes the visible set, active
// chapter and finale. While the navigation lock is held it does nothing.
func (e *Engine) HandleScroll() {
	if e.destroyed || e.surface == nil || e.locked {
		return
	}
	vp := e.sampler.Sample()
	changed := vp != e.viewport
	e.viewport = vp

	prev, hadActive := e.classifier.Active()
	if e.classifier.Update(vp, len(e.chapters), e.sampler.AnchorRect) {
		changed = true
	}
	if active, ok := e.classifier.Active(); ok && (!hadActive || active != prev) {
		e.startReveal(active)
	}

	finale := scrollstory.IsFinale(vp, e.cfg.FinaleThreshold)
	if finale != e.finale {
		e.finale = finale
		e.logger.Debug("finale changed", zap.Bool("finale", finale),
			zap.Float64("fraction", scrollstory.ScrollFraction(vp)))
		changed = true
	}

	if changed {
		e.notify()
	}
}

// JumpTo scrolls the chapter at index to the center of the viewport. The
// classifier is frozen until the settle delay after the most recent jump has
// elapsed. Jumping to an unknown or unmounted chapter does nothing.
func (e *Engine) JumpTo(index int) {
	if e.destroyed || e.surface == nil {
		return
	}
	if index < 0 || index >= len(e.chapters) {
		e.logger.Debug("jump ignored: chapter out of range",
			zap.Int("index", index), zap.Int("chapters", len(e.chapters)))
		return
	}
	anchor, ok := e.sampler.AnchorRect(index)
	if !ok {
		e.logger.Debug("jump ignored: chapter not mounted", zap.Int("index", index))
		return
	}

	e.lock()
	e.finale = false
	vp := e.sampler.Sample()
	target := scrollstory.CenterOffset(vp, anchor)
	e.logger.Debug("jump", zap.Int("index", index), zap.Float64("target", target))
	e.surface.ScrollTo(target)
	e.armSettle()
	e.notify()
}

// ReturnToTop scrolls back to the first chapter. Chapter 0 becomes active and
// the finale is hidden immediately, without waiting for a scroll sample.
func (e *Engine) ReturnToTop() {
	if e.destroyed || e.surface == nil {
		return
	}
	e.lock()
	e.surface.ScrollTo(0)
	e.finale = false
	prev, hadActive := e.classifier.Active()
	e.classifier.Reset(0)
	if len(e.chapters) > 0 && (!hadActive || prev != 0 || !e.reveal.Started()) {
		e.startReveal(0)
	}
	e.armSettle()
	e.notify()
}

// ActiveChapter returns the active chapter index, or false before any
// chapter has become active.
func (e *Engine) ActiveChapter() (int, bool) {
	return e.classifier.Active()
}

// IsFinale reports whether the finale view is showing.
func (e *Engine) IsFinale() bool {
	return e.finale
}

// Locked reports whether the navigation lock is held.
func (e *Engine) Locked() bool {
	return e.locked
}

// Chapters returns the chapters the engine was built with.
func (e *Engine) Chapters() []scrollstory.Chapter {
	return e.chapters
}

// Snapshot returns a copy of the current derived state.
func (e *Engine) Snapshot() scrollstory.Snapshot {
	active, hasActive := e.classifier.Active()
	visible := append(scrollstory.VisibilitySet(nil), e.classifier.Visible()...)
	snap := scrollstory.Snapshot{
		Viewport:  e.viewport,
		Visible:   visible,
		Active:    active,
		HasActive: hasActive,
		Reveal:    e.reveal.State(),
		Finale:    e.finale,
		Locked:    e.locked,
		Markers:   scrollstory.Markers(e.chapters, active, hasActive),
	}
	if hasActive && !e.finale && active < len(e.chapters) {
		ch := e.chapters[active]
		state := e.reveal.State()
		var text string
		if state.ChapterIndex == active {
			text = e.reveal.Text()
		}
		snap.Panel = &scrollstory.PanelView{
			Side:    scrollstory.SideFor(active),
			Index:   active,
			Title:   ch.Title,
			Text:    text,
			Typing:  !state.Done,
			Density: scrollstory.DensityFor(ch.Body),
		}
	}
	return snap
}

// Subscribe registers fn to be called with a fresh snapshot after every state
// change. The returned func removes the subscription.
func (e *Engine) Subscribe(fn func(scrollstory.Snapshot)) (unsubscribe func()) {
	if e.destroyed {
		return func() {}
	}
	e.nextSubID++
	id := e.nextSubID
	e.subscribers = append(e.subscribers, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range e.subscribers {
			if s.id == id {
				e.subscribers = append(e.subscribers[:i], e.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (e *Engine) notify() {
	if e.destroyed || len(e.subscribers) == 0 {
		return
	}
	snap := e.Snapshot()
	subs := append([]subscriber(nil), e.subscribers...)
	for _, s := range subs {
		s.fn(snap)
	}
}

func (e *Engine) startReveal(index int) {
	if index < 0 || index >= len(e.chapters) {
		return
	}
	e.reveal.Start(e.chapters[index])
}

func (e *Engine) lock() {
	if !e.locked {
		e.logger.Debug("navigation lock taken")
	}
	e.locked = true
}

// armSettle (re)starts the lock release timer. Only the most recent jump's
// timer is ever live.
func (e *Engine) armSettle() {
	e.stopSettle()
	e.settle = e.sched.AfterFunc(e.cfg.SettleDelay, e.release)
}

func (e *Engine) stopSettle() {
	if e.settle != nil {
		e.settle.Stop()
		e.settle = nil
	}
}

func (e *Engine) release() {
	if e.destroyed {
		return
	}
	e.settle = nil
	e.locked = false
	e.logger.Debug("navigation lock released")
	e.notify()
	e.HandleScroll()
}
