package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/caniuse"
	"github.com/fwojciec/caniuse/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements caniuse.Converter at compile time.
var _ caniuse.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts paragraphs", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>Partial support refers to missing subgrid.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "Partial support refers to missing subgrid.")
	})

	t.Run("converts inline code to backticks", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>Use <code>display: grid</code> to enable.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "`display: grid`")
	})

	t.Run("converts links keeping visible text", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<p>See <a href="https://example.com/notes">the notes</a>.</p>`)

		require.NoError(t, err)
		assert.Contains(t, md, "[the notes](https://example.com/notes)")
	})

	t.Run("converts note lists", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		md, err := conv.Convert(`<ol><li>First note</li><li>Second note</li></ol>`)

		require.NoError(t, err)
		assert.Contains(t, md, "1. First note")
		assert.Contains(t, md, "2. Second note")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		conv := htmltomarkdown.NewConverter()
		_, err := conv.Convert("")

		require.Error(t, err)
		assert.Equal(t, caniuse.EINVALID, caniuse.ErrorCode(err))
	})
}
