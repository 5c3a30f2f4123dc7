package scrollstory_test

import (
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/scrollstory"
	"github.com/fwojciec/scrollstory/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSideFor(t *testing.T) {
	t.Parallel()

	for i := 0; i < 12; i++ {
		want := scrollstory.SideLeft
		if i%2 == 1 {
			want = scrollstory.SideRight
		}
		assert.Equal(t, want, scrollstory.SideFor(i), "chapter %d", i)
		assert.NotEqual(t, scrollstory.SideFor(i), scrollstory.SideFor(i).Opposite())
	}
}

func TestReveal(t *testing.T) {
	t.Parallel()

	t.Run("counts strictly up to the body length", func(t *testing.T) {
		t.Parallel()

		clock := mock.NewClock()
		ticks := 0
		r := scrollstory.NewReveal(clock, 30*time.Millisecond, func() { ticks++ })
		r.Start(scrollstory.Chapter{Index: 3, Body: "héllo"})

		prev := -1
		for i := 0; i < 5; i++ {
			clock.Advance(30 * time.Millisecond)
			got := r.State().CharactersRevealed
			require.Greater(t, got, prev)
			prev = got
		}

		assert.Equal(t, scrollstory.RevealState{ChapterIndex: 3, CharactersRevealed: 5, Done: true}, r.State())
		assert.Equal(t, "héllo", r.Text())
		assert.Equal(t, 5, ticks)
		assert.Zero(t, clock.Pending())
	})

	t.Run("uses the configured interval", func(t *testing.T) {
		t.Parallel()

		clock := mock.NewClock()
		r := scrollstory.NewReveal(clock, 100*time.Millisecond, nil)
		r.Start(scrollstory.Chapter{Body: "abc"})

		clock.Advance(99 * time.Millisecond)
		assert.Zero(t, r.State().CharactersRevealed)
		clock.Advance(time.Millisecond)
		assert.Equal(t, 1, r.State().CharactersRevealed)
	})

	t.Run("restart abandons the previous reveal", func(t *testing.T) {
		t.Parallel()

		clock := mock.NewClock()
		r := scrollstory.NewReveal(clock, 30*time.Millisecond, nil)
		r.Start(scrollstory.Chapter{Index: 0, Body: "hello"})
		clock.Advance(60 * time.Millisecond)

		r.Start(scrollstory.Chapter{Index: 1, Body: "bye"})

		assert.Equal(t, scrollstory.RevealState{ChapterIndex: 1}, r.State())
		assert.Empty(t, r.Text())
		assert.Equal(t, 1, clock.Pending())
	})

	t.Run("stop keeps the revealed text", func(t *testing.T) {
		t.Parallel()

		clock := mock.NewClock()
		r := scrollstory.NewReveal(clock, 30*time.Millisecond, nil)
		r.Start(scrollstory.Chapter{Body: "abc"})
		clock.Advance(30 * time.Millisecond)

		r.Stop()
		clock.Advance(time.Second)

		assert.Equal(t, "a", r.Text())
		assert.False(t, r.State().Done)
	})

	t.Run("empty body is done without a timer", func(t *testing.T) {
		t.Parallel()

		clock := mock.NewClock()
		r := scrollstory.NewReveal(clock, 30*time.Millisecond, nil)
		r.Start(scrollstory.Chapter{Index: 8})

		assert.Equal(t, scrollstory.RevealState{ChapterIndex: 8, Done: true}, r.State())
		assert.Zero(t, clock.Pending())
	})
}

func TestDensityFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want scrollstory.Density
	}{
		{"short poem", "if fate had made us two ducks on a lake", scrollstory.DensitySpacious},
		{"many lines", strings.Repeat("a line of verse\n", 20), scrollstory.DensityRegular},
		{"long prose", strings.Repeat("word ", 170), scrollstory.DensityCompact},
		{"empty", "", scrollstory.DensitySpacious},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, scrollstory.DensityFor(tt.body))
		})
	}
}
