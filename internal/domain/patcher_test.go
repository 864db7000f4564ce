package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/pale-fox/exline/internal/model"
)

func TestPatcher(t *testing.T) {
	t.Run("single splice", func(t *testing.T) {
		p := NewPatcher("hello world")

		require.NoError(t, p.Stage(m.Edit{
			Remove:   m.Range{Start: 6, End: 11},
			InsertAt: 6,
			Text:     "there",
		}))
		assert.Equal(t, "hello there", p.Apply())
	})

	t.Run("edits staged in any order apply in original coordinates", func(t *testing.T) {
		p := NewPatcher("aa bb cc")

		require.NoError(t, p.Stage(m.Edit{Remove: m.Range{Start: 0, End: 2}, InsertAt: 0, Text: "XX"}))
		require.NoError(t, p.Stage(m.Edit{Remove: m.Range{Start: 6, End: 8}, InsertAt: 6, Text: "ZZZZ"}))
		require.NoError(t, p.Stage(m.Edit{Remove: m.Range{Start: 3, End: 5}, InsertAt: 3, Text: "Y"}))

		assert.Equal(t, "XX Y ZZZZ", p.Apply())
	})

	t.Run("overlapping edit is rejected and the patcher stays usable", func(t *testing.T) {
		p := NewPatcher("abcdef")

		require.NoError(t, p.Stage(m.Edit{Remove: m.Range{Start: 1, End: 4}, InsertAt: 1, Text: "X"}))
		require.Error(t, p.Stage(m.Edit{Remove: m.Range{Start: 3, End: 5}, InsertAt: 3, Text: "Y"}))

		assert.Equal(t, "aXef", p.Apply())
	})

	t.Run("adjacent edits are not overlapping", func(t *testing.T) {
		p := NewPatcher("abcdef")

		require.NoError(t, p.Stage(m.Edit{Remove: m.Range{Start: 0, End: 3}, InsertAt: 0, Text: "X"}))
		require.NoError(t, p.Stage(m.Edit{Remove: m.Range{Start: 3, End: 6}, InsertAt: 3, Text: "Y"}))

		assert.Equal(t, "XY", p.Apply())
	})

	t.Run("out of bounds range is rejected", func(t *testing.T) {
		p := NewPatcher("short")

		assert.Error(t, p.Stage(m.Edit{Remove: m.Range{Start: 2, End: 99}, InsertAt: 2}))
		assert.Error(t, p.Stage(m.Edit{Remove: m.Range{Start: -1, End: 3}, InsertAt: 0}))
		assert.True(t, p.Empty())
	})

	t.Run("insert position must sit inside the removal span", func(t *testing.T) {
		p := NewPatcher("abcdef")

		assert.Error(t, p.Stage(m.Edit{Remove: m.Range{Start: 2, End: 4}, InsertAt: 5}))
	})

	t.Run("apply is repeatable", func(t *testing.T) {
		p := NewPatcher("abc")

		require.NoError(t, p.Stage(m.Edit{Remove: m.Range{Start: 1, End: 2}, InsertAt: 1, Text: "B"}))
		assert.Equal(t, "aBc", p.Apply())
		assert.Equal(t, "aBc", p.Apply())
	})

	t.Run("empty patcher returns the snapshot unchanged", func(t *testing.T) {
		p := NewPatcher("untouched")

		assert.True(t, p.Empty())
		assert.Equal(t, "untouched", p.Apply())
	})
}
