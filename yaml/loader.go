// Package yaml loads stories from YAML files.
package yaml

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/scrollstory"
	yamlv3 "gopkg.in/yaml.v3"
)

// Compile-time interface verification.
var _ scrollstory.StoryLoader = (*Loader)(nil)

// Loader loads stories from YAML documents of the form:
//
//	title: Our Year
//	chapters:
//	  - title: January
//	    body: Snow on the window.
//	    image: images/jan.png
//	    alt: A frosted window
//	finale:
//	  heading: Happy Anniversary
//	  lines: [Here's to the next one]
//	  gift: [TICKET ONE, TICKET TWO]
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the story at path. Unknown keys are rejected so that typos do
// not silently drop content.
func (l *Loader) Load(path string) (*scrollstory.Story, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	story := &scrollstory.Story{}
	dec := yamlv3.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(story); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse story %s: %w", path, err)
	}
	return story, nil
}
