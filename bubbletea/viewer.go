package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/scrollstory"
)

// Compile-time interface verification.
var _ scrollstory.Viewer = (*Viewer)(nil)

// Viewer implements scrollstory.Viewer using a Bubble Tea TUI.
type Viewer struct {
	modelOpts   []ModelOption
	programOpts []tea.ProgramOption
}

// ViewerOption configures a Viewer.
type ViewerOption func(*Viewer)

// WithModelOptions sets the options used to build each Model.
func WithModelOptions(opts ...ModelOption) ViewerOption {
	return func(v *Viewer) {
		v.modelOpts = append(v.modelOpts, opts...)
	}
}

// WithProgramOptions adds Bubble Tea program options, e.g. custom input and
// output for tests.
func WithProgramOptions(opts ...tea.ProgramOption) ViewerOption {
	return func(v *Viewer) {
		v.programOpts = append(v.programOpts, opts...)
	}
}

// NewViewer creates a new Viewer.
func NewViewer(opts ...ViewerOption) *Viewer {
	v := &Viewer{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// View displays the narrative and blocks until the reader exits or ctx is
// cancelled.
func (v *Viewer) View(ctx context.Context, n *scrollstory.Narrative) error {
	m := NewModel(n, v.modelOpts...)
	defer m.Close()

	opts := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	}, v.programOpts...)
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}
