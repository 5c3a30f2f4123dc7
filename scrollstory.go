// Package scrollstory provides domain types and the scroll-synchronized
// narrative logic for reading a sequence of illustrated chapters.
package scrollstory

import (
	"context"
	"errors"
)

// Sentinel errors.
var (
	ErrNoChapters     = errors.New("story has no chapters")
	ErrAlreadyMounted = errors.New("engine is already mounted")
	ErrDestroyed      = errors.New("engine has been destroyed")
)

// ChapterRecord is one chapter as it appears in a content file.
type ChapterRecord struct {
	Title string `json:"title" yaml:"title"`
	Body  string `json:"body" yaml:"body"`
	Image string `json:"image,omitempty" yaml:"image,omitempty"` // Path relative to the content file
	Alt   string `json:"alt,omitempty" yaml:"alt,omitempty"`
}

// FinaleContent is shown once the reader scrolls past the end of the chapters.
type FinaleContent struct {
	Heading string   `json:"heading" yaml:"heading"`
	Lines   []string `json:"lines,omitempty" yaml:"lines,omitempty"`
	Gift    []string `json:"gift,omitempty" yaml:"gift,omitempty"` // Cards revealed when the gift is opened
}

// Story is the static content of a narrative, loaded once before first render.
type Story struct {
	Title    string          `json:"title" yaml:"title"`
	Chapters []ChapterRecord `json:"chapters" yaml:"chapters"`
	Finale   FinaleContent   `json:"finale" yaml:"finale"`
}

// ImageRef points at the image that anchors a chapter.
type ImageRef struct {
	Path string
	Alt  string
}

// Chapter is one unit of the narrative. Chapters are immutable once built and
// their order is fixed for the lifetime of a session.
type Chapter struct {
	Index   int
	Title   string
	Body    string // May be empty; the chapter still counts for visibility
	Image   ImageRef
	Picture *Picture // Decoded visual, nil when absent or undecodable
}

// NewChapters builds indexed chapters from content records.
func NewChapters(records []ChapterRecord) []Chapter {
	chapters := make([]Chapter, len(records))
	for i, r := range records {
		chapters[i] = Chapter{
			Index: i,
			Title: r.Title,
			Body:  r.Body,
			Image: ImageRef{Path: r.Image, Alt: r.Alt},
		}
	}
	return chapters
}

// Narrative is everything a Viewer needs to present a story.
type Narrative struct {
	Title    string
	Chapters []Chapter
	Finale   FinaleContent
}

// StoryLoader loads a Story from a content file.
type StoryLoader interface {
	Load(path string) (*Story, error)
}

// StorySaver writes a Story to a content file.
type StorySaver interface {
	Save(path string, s *Story) error
}

// Viewer presents a narrative and blocks until the reader exits.
type Viewer interface {
	View(ctx context.Context, n *Narrative) error
}

// Clipboard provides copy-to-clipboard functionality.
type Clipboard interface {
	Copy(content string) error
}
