// Package bubbletea hosts the narrative in a terminal UI built on the Bubble
// Tea framework. The terminal plays the part of the rendering surface: the
// chapters are laid out as rows and scrolled under a fixed viewport.
package bubbletea

import (
	"math"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/scrollstory"
	"github.com/fwojciec/scrollstory/engine"
	"go.uber.org/zap"
)

// Screen rows reserved outside the viewport.
const (
	headerRows = 2
	statusRows = 1
)

// wheelRows is how far one mouse wheel notch scrolls.
const wheelRows = 3

// Model is the Bubble Tea model for reading a narrative.
type Model struct {
	narrative *scrollstory.Narrative
	engine    *engine.Engine
	sched     *Scheduler
	surface   *Surface
	art       map[int][]string // Rendered anchors by chapter index

	keymap    KeyMap
	help      help.Model
	palette   scrollstory.Palette
	renderer  *lipgloss.Renderer
	tokenizer scrollstory.Tokenizer
	clipboard scrollstory.Clipboard
	logger    *zap.Logger

	width      int
	height     int
	ready      bool
	pendingKey string
	showHelp   bool
	giftOpen   bool
	notice     string
}

// ModelOption configures a Model.
type ModelOption func(*modelConfig)

type modelConfig struct {
	renderer  *lipgloss.Renderer
	theme     scrollstory.Theme
	tokenizer scrollstory.Tokenizer
	clipboard scrollstory.Clipboard
	logger    *zap.Logger
	config    scrollstory.Config
}

// WithRenderer sets a custom lipgloss renderer for the model.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(cfg *modelConfig) {
		cfg.renderer = r
	}
}

// WithTheme sets the theme for the model.
func WithTheme(t scrollstory.Theme) ModelOption {
	return func(cfg *modelConfig) {
		cfg.theme = t
	}
}

// WithTokenizer sets the tokenizer used to style chapter text.
func WithTokenizer(t scrollstory.Tokenizer) ModelOption {
	return func(cfg *modelConfig) {
		cfg.tokenizer = t
	}
}

// WithClipboard enables copying the active chapter.
func WithClipboard(c scrollstory.Clipboard) ModelOption {
	return func(cfg *modelConfig) {
		cfg.clipboard = c
	}
}

// WithLogger sets the logger for the model and its engine.
func WithLogger(l *zap.Logger) ModelOption {
	return func(cfg *modelConfig) {
		cfg.logger = l
	}
}

// WithConfig sets the engine tuning parameters.
func WithConfig(c scrollstory.Config) ModelOption {
	return func(cfg *modelConfig) {
		cfg.config = c
	}
}

// NewModel creates a Model for n. The model owns timers and goroutines;
// Close releases them.
func NewModel(n *scrollstory.Narrative, opts ...ModelOption) Model {
	cfg := &modelConfig{config: scrollstory.DefaultConfig()}
	for _, opt := range opts {
		opt(cfg)
	}
	if n == nil {
		n = &scrollstory.Narrative{}
	}
	logger := cfg.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	palette := defaultPalette()
	if cfg.theme != nil {
		palette = cfg.theme.Palette()
	}

	sched := NewScheduler()
	surface := NewSurface(sched)
	eng := engine.New(n.Chapters, sched,
		engine.WithConfig(cfg.config),
		engine.WithLogger(logger),
	)
	// A fresh engine always mounts.
	_ = eng.Mount(surface)
	eng.Subscribe(chapterLogger(logger, n.Chapters))

	return Model{
		narrative: n,
		engine:    eng,
		sched:     sched,
		surface:   surface,
		art:       make(map[int][]string),
		keymap:    DefaultKeyMap(),
		help:      help.New(),
		palette:   palette,
		renderer:  cfg.renderer,
		tokenizer: cfg.tokenizer,
		clipboard: cfg.clipboard,
		logger:    logger,
	}
}

// Engine returns the engine driving the model.
func (m Model) Engine() *engine.Engine {
	return m.engine
}

// Close destroys the engine and stops all timers. It is safe to call more
// than once.
func (m Model) Close() {
	m.engine.Destroy()
	m.surface.Close()
	m.sched.Close()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.sched.Wait()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case timerFiredMsg:
		m.sched.Dispatch(msg)
		cmd = m.sched.Wait()
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	}
	// The gift closes with the finale.
	if !m.engine.IsFinale() {
		m.giftOpen = false
	}
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	snap := m.engine.Snapshot()
	status := m.statusBarView(snap)
	switch {
	case m.showHelp:
		return lipgloss.JoinVertical(lipgloss.Left, m.helpView(m.height-statusRows), status)
	case snap.Finale:
		return lipgloss.JoinVertical(lipgloss.Left, m.finaleView(m.height-statusRows), status)
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.timelineView(snap), m.chaptersView(snap), status)
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	clear(m.art)
	viewport := max(1, height-headerRows-statusRows)
	m.surface.SetLayout(NewLayout(m.narrative.Chapters, width, viewport), headerRows)
	m.help.Width = width
	m.ready = true
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Handle multi-key sequences (gg for go to top)
	if m.pendingKey == "g" && key.Matches(msg, m.keymap.GotoTop) {
		m.pendingKey = ""
		m.surface.SetOffset(0)
		return nil
	}
	if key.Matches(msg, m.keymap.GotoTop) {
		m.pendingKey = "g"
		return nil
	}
	m.pendingKey = ""
	m.notice = ""

	page := float64(m.surface.Layout().Height)
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.Close()
		return tea.Quit
	case key.Matches(msg, m.keymap.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, m.keymap.Up):
		m.surface.ScrollBy(-1)
	case key.Matches(msg, m.keymap.Down):
		m.surface.ScrollBy(1)
	case key.Matches(msg, m.keymap.HalfPageUp):
		m.surface.ScrollBy(-math.Max(1, page/2))
	case key.Matches(msg, m.keymap.HalfPageDown):
		m.surface.ScrollBy(math.Max(1, page/2))
	case key.Matches(msg, m.keymap.PageUp):
		m.surface.ScrollBy(-page)
	case key.Matches(msg, m.keymap.PageDown):
		m.surface.ScrollBy(page)
	case key.Matches(msg, m.keymap.GotoBottom):
		m.surface.SetOffset(float64(m.surface.Layout().MaxOffset()))
	case key.Matches(msg, m.keymap.NextChapter):
		m.jumpRelative(1)
	case key.Matches(msg, m.keymap.PrevChapter):
		m.jumpRelative(-1)
	case key.Matches(msg, m.keymap.JumpChapter):
		if index, ok := chapterForKey(msg.String()); ok {
			m.engine.JumpTo(index)
		}
	case key.Matches(msg, m.keymap.BackToTop):
		m.engine.ReturnToTop()
	case key.Matches(msg, m.keymap.OpenGift):
		if m.engine.IsFinale() && len(m.narrative.Finale.Gift) > 0 {
			m.giftOpen = !m.giftOpen
		}
	case key.Matches(msg, m.keymap.Copy):
		m.copyActive()
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.surface.ScrollBy(-wheelRows)
	case msg.Button == tea.MouseButtonWheelDown:
		m.surface.ScrollBy(wheelRows)
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		if msg.Y >= headerRows || m.showHelp || m.engine.IsFinale() {
			return
		}
		active, hasActive := m.engine.ActiveChapter()
		markers := scrollstory.Markers(m.narrative.Chapters, active, hasActive)
		if index, ok := markerAt(markers, m.width, msg.X); ok {
			m.engine.JumpTo(index)
		}
	}
}

// jumpRelative jumps delta chapters from the active one. Before any chapter
// is active, moving forward goes to the first.
func (m *Model) jumpRelative(delta int) {
	active, ok := m.engine.ActiveChapter()
	if !ok {
		if delta > 0 {
			m.engine.JumpTo(0)
		}
		return
	}
	m.engine.JumpTo(active + delta)
}

func (m *Model) copyActive() {
	if m.clipboard == nil {
		return
	}
	active, ok := m.engine.ActiveChapter()
	if !ok || active >= len(m.narrative.Chapters) {
		return
	}
	ch := m.narrative.Chapters[active]
	if err := m.clipboard.Copy(chapterText(ch)); err != nil {
		m.logger.Warn("copy to clipboard failed", zap.Error(err))
		m.notice = "copy failed"
		return
	}
	m.notice = "copied " + ch.Title
}

// chapterText is the plain text copied for a chapter.
func chapterText(ch scrollstory.Chapter) string {
	if ch.Body == "" {
		return ch.Title
	}
	return ch.Title + "\n\n" + ch.Body
}

// chapterLogger logs every change of the active chapter.
func chapterLogger(logger *zap.Logger, chapters []scrollstory.Chapter) func(scrollstory.Snapshot) {
	last := -1
	return func(s scrollstory.Snapshot) {
		if !s.HasActive || s.Active == last || s.Active >= len(chapters) {
			return
		}
		last = s.Active
		logger.Debug("active chapter changed",
			zap.Int("index", s.Active),
			zap.String("title", chapters[s.Active].Title),
		)
	}
}
