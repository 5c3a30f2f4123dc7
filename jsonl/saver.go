package jsonl

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fwojciec/scrollstory"
)

// Compile-time interface verification.
var _ scrollstory.StorySaver = (*Saver)(nil)

// Saver writes stories to JSONL files.
type Saver struct{}

// NewSaver creates a new Saver.
func NewSaver() *Saver {
	return &Saver{}
}

// Save writes s to path, replacing any existing file and creating parent
// directories if needed. Chapters keep their order.
func (s *Saver) Save(path string, story *scrollstory.Story) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	if story.Title != "" {
		if err := enc.Encode(struct {
			Story string `json:"story"`
		}{story.Title}); err != nil {
			return err
		}
	}
	for _, ch := range story.Chapters {
		if err := enc.Encode(ch); err != nil {
			return err
		}
	}
	if !isZeroFinale(story.Finale) {
		if err := enc.Encode(struct {
			Finale scrollstory.FinaleContent `json:"finale"`
		}{story.Finale}); err != nil {
			return err
		}
	}

	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}

func isZeroFinale(f scrollstory.FinaleContent) bool {
	return f.Heading == "" && len(f.Lines) == 0 && len(f.Gift) == 0
}
