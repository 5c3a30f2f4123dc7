// Package clipboard provides clipboard operations backed by the system
// clipboard.
package clipboard

import (
	atotto "github.com/atotto/clipboard"
	"github.com/fwojciec/scrollstory"
)

// Ensure System implements the Clipboard interface.
var _ scrollstory.Clipboard = (*System)(nil)

// System implements Clipboard using the platform clipboard (pbcopy, xclip,
// xsel, wl-copy or the Windows API).
type System struct{}

// NewSystem returns a new System clipboard.
func NewSystem() *System {
	return &System{}
}

// Available reports whether a clipboard utility was found.
func (s *System) Available() bool {
	return !atotto.Unsupported
}

// Copy writes content to the system clipboard.
func (s *System) Copy(content string) error {
	return atotto.WriteAll(content)
}
