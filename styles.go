package scrollstory

// Color is a hex color string in "#RRGGBB" format.
// Empty means no override (use the terminal default).
type Color string

// Palette defines the semantic colors used across the reader.
type Palette struct {
	// Base colors
	Background Color
	Foreground Color

	// Narrative panel
	Paper    Color // Panel background
	Ink      Color // Revealed text
	Heading  Color // Chapter titles
	Emphasis Color // *emphasis* in bodies
	Strong   Color // **strong** in bodies
	Cursor   Color // Typewriter cursor

	// Timeline
	Track        Color
	Marker       Color
	MarkerActive Color

	// Placeholder anchors and the finale
	Muted  Color
	Accent Color

	// UI colors
	UIBackground Color
	UIForeground Color
}

// Theme provides the palette for rendering a narrative.
type Theme interface {
	Palette() Palette
}

// Token is a styled run of chapter text.
type Token struct {
	Text  string
	Style Style
}

// Style is the visual styling for a token.
type Style struct {
	Foreground Color
	Bold       bool
	Italic     bool
}

// Tokenizer splits text into styled tokens for the given language.
type Tokenizer interface {
	// Tokenize returns nil if the language is not supported.
	Tokenize(language, source string) []Token
}
