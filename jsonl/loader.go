// Package jsonl reads and writes stories as JSONL: one JSON record per line.
//
// A line holding a "story" key sets the story title, a line holding a
// "finale" key sets the finale, and every other line is a chapter, in file
// order.
package jsonl

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fwojciec/scrollstory"
)

// Compile-time interface verification.
var _ scrollstory.StoryLoader = (*Loader)(nil)

// record is a single JSONL line.
type record struct {
	scrollstory.ChapterRecord
	Story  string                     `json:"story,omitempty"`
	Finale *scrollstory.FinaleContent `json:"finale,omitempty"`
}

// Loader loads stories from JSONL files.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// maxLineSize is the maximum size for a single JSONL line (1MB).
const maxLineSize = 1024 * 1024

// Load reads a JSONL file and returns the story it describes.
func (l *Loader) Load(path string) (*scrollstory.Story, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	story := &scrollstory.Story{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var r record
		if err := json.Unmarshal([]byte(line), &r); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		switch {
		case r.Finale != nil:
			story.Finale = *r.Finale
		case r.Story != "":
			story.Title = r.Story
		default:
			story.Chapters = append(story.Chapters, r.ChapterRecord)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return story, nil
}
