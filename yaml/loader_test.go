package yaml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/scrollstory"
	"github.com/fwojciec/scrollstory/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "story.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	t.Run("loads title chapters and finale", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, `title: Our Year
chapters:
  - title: January
    body: |
      Snow on the window.
    image: images/jan.png
    alt: A frosted window
  - title: February
    body: ""
finale:
  heading: Happy Anniversary
  lines:
    - Here's to the next one
  gift: [TICKET ONE, TICKET TWO]
`)

		story, err := yaml.NewLoader().Load(path)

		require.NoError(t, err)
		assert.Equal(t, &scrollstory.Story{
			Title: "Our Year",
			Chapters: []scrollstory.ChapterRecord{
				{Title: "January", Body: "Snow on the window.\n", Image: "images/jan.png", Alt: "A frosted window"},
				{Title: "February"},
			},
			Finale: scrollstory.FinaleContent{
				Heading: "Happy Anniversary",
				Lines:   []string{"Here's to the next one"},
				Gift:    []string{"TICKET ONE", "TICKET TWO"},
			},
		}, story)
	})

	t.Run("empty file is an empty story", func(t *testing.T) {
		t.Parallel()

		story, err := yaml.NewLoader().Load(writeFile(t, ""))

		require.NoError(t, err)
		assert.Empty(t, story.Chapters)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.NewLoader().Load(writeFile(t, "chapters:\n  - title: x\n    bdy: typo\n"))

		assert.ErrorContains(t, err, "parse story")
	})

	t.Run("returns error for non-existent file", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.NewLoader().Load("/nonexistent/story.yaml")

		assert.Error(t, err)
	})
}
