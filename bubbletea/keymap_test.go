package bubbletea_test

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/scrollstory/bubbletea"
	"github.com/stretchr/testify/assert"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDefaultKeyMap_HasExpectedBindings(t *testing.T) {
	t.Parallel()

	km := bubbletea.DefaultKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{"k scrolls up", runes("k"), km.Up},
		{"arrow up scrolls up", tea.KeyMsg{Type: tea.KeyUp}, km.Up},
		{"j scrolls down", runes("j"), km.Down},
		{"arrow down scrolls down", tea.KeyMsg{Type: tea.KeyDown}, km.Down},
		{"ctrl+u", tea.KeyMsg{Type: tea.KeyCtrlU}, km.HalfPageUp},
		{"ctrl+d", tea.KeyMsg{Type: tea.KeyCtrlD}, km.HalfPageDown},
		{"space pages down", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, km.PageDown},
		{"pgdown pages down", tea.KeyMsg{Type: tea.KeyPgDown}, km.PageDown},
		{"g starts go to top", runes("g"), km.GotoTop},
		{"G goes to bottom", runes("G"), km.GotoBottom},
		{"n next chapter", runes("n"), km.NextChapter},
		{"] next chapter", runes("]"), km.NextChapter},
		{"N previous chapter", runes("N"), km.PrevChapter},
		{"[ previous chapter", runes("["), km.PrevChapter},
		{"digit jumps", runes("7"), km.JumpChapter},
		{"zero jumps", runes("0"), km.JumpChapter},
		{"t back to top", runes("t"), km.BackToTop},
		{"o opens gift", runes("o"), km.OpenGift},
		{"y copies", runes("y"), km.Copy},
		{"? toggles help", runes("?"), km.Help},
		{"q quits", runes("q"), km.Quit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, km.Quit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.True(t, key.Matches(tt.msg, tt.binding))
		})
	}
}

func TestKeyMap_HelpListsEveryGroup(t *testing.T) {
	t.Parallel()

	km := bubbletea.DefaultKeyMap()

	assert.NotEmpty(t, km.ShortHelp())
	full := km.FullHelp()
	assert.Len(t, full, 3)
	assert.Contains(t, full[1], km.BackToTop)
}
