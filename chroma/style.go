package chroma

import (
	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/fwojciec/scrollstory"
)

// StyleFromPalette returns a function that maps markdown token types to
// scrollstory styles based on the provided palette colors.
func StyleFromPalette(p scrollstory.Palette) StyleFunc {
	return func(tt chromalib.TokenType) scrollstory.Style {
		switch tt {
		case chromalib.GenericEmph:
			return scrollstory.Style{Foreground: p.Emphasis, Italic: true}

		case chromalib.GenericStrong:
			return scrollstory.Style{Foreground: p.Strong, Bold: true}

		case chromalib.GenericHeading, chromalib.GenericSubheading:
			return scrollstory.Style{Foreground: p.Heading, Bold: true}

		// Inline code and list bullets
		case chromalib.LiteralStringBacktick, chromalib.Keyword:
			return scrollstory.Style{Foreground: p.Accent}

		case chromalib.GenericDeleted:
			return scrollstory.Style{Foreground: p.Muted}

		default:
			return scrollstory.Style{}
		}
	}
}
