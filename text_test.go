package caniuse_test

import (
	"testing"

	"github.com/fwojciec/caniuse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeWhitespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"collapses runs", "a  b\t\nc", "a b c"},
		{"trims ends", "  hello  ", "hello"},
		{"empty", "", ""},
		{"only whitespace", " \n\t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, caniuse.NormalizeWhitespace(tt.in))
		})
	}
}

func TestParsePercent(t *testing.T) {
	t.Parallel()

	t.Run("decimal point", func(t *testing.T) {
		t.Parallel()

		v, ok := caniuse.ParsePercent("96.79%")
		require.True(t, ok)
		assert.InDelta(t, 96.79, v, 0.0001)
	})

	t.Run("decimal comma", func(t *testing.T) {
		t.Parallel()

		v, ok := caniuse.ParsePercent("96,79%")
		require.True(t, ok)
		assert.InDelta(t, 96.79, v, 0.0001)
	})

	t.Run("surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		v, ok := caniuse.ParsePercent(" 12.5 % ")
		require.True(t, ok)
		assert.InDelta(t, 12.5, v, 0.0001)
	})

	t.Run("non-numeric is absent, not an error", func(t *testing.T) {
		t.Parallel()

		_, ok := caniuse.ParsePercent("not-a-number")
		assert.False(t, ok)
	})

	t.Run("empty is absent", func(t *testing.T) {
		t.Parallel()

		_, ok := caniuse.ParsePercent("")
		assert.False(t, ok)
	})
}

func TestNoteMarkers(t *testing.T) {
	t.Parallel()

	t.Run("extracts numbered markers in order", func(t *testing.T) {
		t.Parallel()

		markers := caniuse.NoteMarkers([]string{"stat-cell", "#4", "y", "#12"})
		assert.Equal(t, []string{"4", "12"}, markers)
	})

	t.Run("ignores non-marker tokens", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, caniuse.NoteMarkers([]string{"stat-cell", "y", "current", "#x"}))
	})
}
