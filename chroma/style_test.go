package chroma_test

import (
	"testing"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/fwojciec/scrollstory"
	"github.com/fwojciec/scrollstory/chroma"
	"github.com/stretchr/testify/assert"
)

func testPalette() scrollstory.Palette {
	return scrollstory.Palette{
		Heading:  "#111111",
		Emphasis: "#222222",
		Strong:   "#333333",
		Accent:   "#444444",
		Muted:    "#555555",
	}
}

func TestStyleFromPalette(t *testing.T) {
	t.Parallel()

	style := chroma.StyleFromPalette(testPalette())

	tests := []struct {
		name string
		tt   chromalib.TokenType
		want scrollstory.Style
	}{
		{"emphasis is italic", chromalib.GenericEmph, scrollstory.Style{Foreground: "#222222", Italic: true}},
		{"strong is bold", chromalib.GenericStrong, scrollstory.Style{Foreground: "#333333", Bold: true}},
		{"heading", chromalib.GenericHeading, scrollstory.Style{Foreground: "#111111", Bold: true}},
		{"subheading", chromalib.GenericSubheading, scrollstory.Style{Foreground: "#111111", Bold: true}},
		{"inline code", chromalib.LiteralStringBacktick, scrollstory.Style{Foreground: "#444444"}},
		{"strikethrough", chromalib.GenericDeleted, scrollstory.Style{Foreground: "#555555"}},
		{"plain text", chromalib.Text, scrollstory.Style{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, style(tt.tt))
		})
	}
}
