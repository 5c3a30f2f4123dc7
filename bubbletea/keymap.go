package bubbletea

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the story reader.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	HalfPageUp   key.Binding
	HalfPageDown key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	GotoTop      key.Binding
	GotoBottom   key.Binding

	// Chapter navigation
	NextChapter key.Binding
	PrevChapter key.Binding
	JumpChapter key.Binding
	BackToTop   key.Binding

	OpenGift key.Binding
	Copy     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default vim-style key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "half page up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "half page down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("b", "pgup"),
			key.WithHelp("b/pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys(" ", "pgdown"),
			key.WithHelp("space", "page down"),
		),
		GotoTop: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("gg", "go to top"),
		),
		GotoBottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "go to bottom"),
		),
		NextChapter: key.NewBinding(
			key.WithKeys("n", "]"),
			key.WithHelp("n/]", "next chapter"),
		),
		PrevChapter: key.NewBinding(
			key.WithKeys("N", "["),
			key.WithHelp("N/[", "previous chapter"),
		),
		JumpChapter: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9", "0"),
			key.WithHelp("1-0", "jump to chapter"),
		),
		BackToTop: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "back to top"),
		),
		OpenGift: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open gift"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy chapter"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.NextChapter, k.BackToTop, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.HalfPageUp, k.HalfPageDown, k.PageUp, k.PageDown, k.GotoTop, k.GotoBottom},
		{k.NextChapter, k.PrevChapter, k.JumpChapter, k.BackToTop},
		{k.OpenGift, k.Copy, k.Help, k.Quit},
	}
}

// chapterForKey maps a digit key to a chapter index: "1" is the first
// chapter and "0" the tenth.
func chapterForKey(s string) (int, bool) {
	if len(s) != 1 || s[0] < '0' || s[0] > '9' {
		return 0, false
	}
	if s[0] == '0' {
		return 9, true
	}
	return int(s[0] - '1'), true
}
