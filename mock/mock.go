// Package mock provides test doubles for scrollstory interfaces.
package mock

import (
	"context"

	"github.com/fwojciec/scrollstory"
)

// Compile-time interface verification.
var (
	_ scrollstory.Surface     = (*Surface)(nil)
	_ scrollstory.StoryLoader = (*StoryLoader)(nil)
	_ scrollstory.StorySaver  = (*StorySaver)(nil)
	_ scrollstory.ImageLoader = (*ImageLoader)(nil)
	_ scrollstory.Viewer      = (*Viewer)(nil)
	_ scrollstory.Clipboard   = (*Clipboard)(nil)
	_ scrollstory.Tokenizer   = (*Tokenizer)(nil)
)

// Surface is a mock implementation of scrollstory.Surface.
type Surface struct {
	ViewportFn   func() (scrollstory.ViewportState, bool)
	AnchorRectFn func(index int) (scrollstory.Rect, bool)
	ScrollToFn   func(offset float64)
	ListenFn     func(fn func()) func()
}

func (s *Surface) Viewport() (scrollstory.ViewportState, bool) {
	return s.ViewportFn()
}

func (s *Surface) AnchorRect(index int) (scrollstory.Rect, bool) {
	return s.AnchorRectFn(index)
}

func (s *Surface) ScrollTo(offset float64) {
	s.ScrollToFn(offset)
}

func (s *Surface) Listen(fn func()) func() {
	return s.ListenFn(fn)
}

// StoryLoader is a mock implementation of scrollstory.StoryLoader.
type StoryLoader struct {
	LoadFn func(path string) (*scrollstory.Story, error)
}

func (l *StoryLoader) Load(path string) (*scrollstory.Story, error) {
	return l.LoadFn(path)
}

// StorySaver is a mock implementation of scrollstory.StorySaver.
type StorySaver struct {
	SaveFn func(path string, s *scrollstory.Story) error
}

func (s *StorySaver) Save(path string, story *scrollstory.Story) error {
	return s.SaveFn(path, story)
}

// ImageLoader is a mock implementation of scrollstory.ImageLoader.
type ImageLoader struct {
	LoadFn func(ctx context.Context, path string) (*scrollstory.Picture, error)
}

func (l *ImageLoader) Load(ctx context.Context, path string) (*scrollstory.Picture, error) {
	return l.LoadFn(ctx, path)
}

// Viewer is a mock implementation of scrollstory.Viewer.
type Viewer struct {
	ViewFn func(ctx context.Context, n *scrollstory.Narrative) error
}

func (v *Viewer) View(ctx context.Context, n *scrollstory.Narrative) error {
	return v.ViewFn(ctx, n)
}

// Clipboard is a mock implementation of scrollstory.Clipboard.
type Clipboard struct {
	CopyFn func(content string) error
}

func (c *Clipboard) Copy(content string) error {
	return c.CopyFn(content)
}

// Tokenizer is a mock implementation of scrollstory.Tokenizer.
type Tokenizer struct {
	TokenizeFn func(language, source string) []scrollstory.Token
}

func (t *Tokenizer) Tokenize(language, source string) []scrollstory.Token {
	return t.TokenizeFn(language, source)
}
