package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pale-fox/exline/internal/syntax"
)

// migrateEntry runs the locate-inspect-resolve-splice pipeline for a single
// entry and checks that the result still parses to a block with the same
// member count.
func migrateEntry(t *testing.T, src, name, refText string) string {
	t.Helper()

	block := blockOf(t, src)

	entry, ok := InspectEntry(block, name)
	require.True(t, ok)

	edit := ResolveEdit(src, entry, len(block.Children), refText)

	patcher := NewPatcher(src)
	require.NoError(t, patcher.Stage(edit))

	out := patcher.Apply()

	rewritten, ok := LocateConfigBlock(syntax.Parse(out), ComponentMarker)
	require.True(t, ok)
	require.Len(t, rewritten.Children, len(block.Children))

	return out
}

func TestResolveEdit(t *testing.T) {
	const ref = "templateUrl: './a.component.html'"

	t.Run("only entry", func(t *testing.T) {
		out := migrateEntry(t, "@Component({ template: '<p>hi</p>' })\nclass A {}", templateEntry, ref)

		assert.Equal(t, "@Component({ templateUrl: './a.component.html' })\nclass A {}", out)
	})

	t.Run("first of several keeps its separator", func(t *testing.T) {
		src := "@Component({\n  template: '<p/>',\n  selector: 'x',\n})\nclass A {}"
		out := migrateEntry(t, src, templateEntry, ref)

		assert.Equal(t, "@Component({\n  templateUrl: './a.component.html',\n  selector: 'x',\n})\nclass A {}", out)
	})

	t.Run("middle entry preserves indentation", func(t *testing.T) {
		src := "@Component({\n  selector: 'x',\n  template: '<p/>',\n  standalone: true,\n})\nclass A {}"
		out := migrateEntry(t, src, templateEntry, ref)

		assert.Equal(t, "@Component({\n  selector: 'x',\n  templateUrl: './a.component.html',\n  standalone: true,\n})\nclass A {}", out)
	})

	t.Run("last entry without trailing separator leaves the preceding one alone", func(t *testing.T) {
		src := "@Component({\n  selector: 'x',\n  template: '<p/>'\n})\nclass A {}"
		out := migrateEntry(t, src, templateEntry, ref)

		assert.Equal(t, "@Component({\n  selector: 'x',\n  templateUrl: './a.component.html'\n})\nclass A {}", out)
	})

	t.Run("last entry with trailing separator re-emits it", func(t *testing.T) {
		src := "@Component({\n  selector: 'x',\n  template: '<p/>',\n})\nclass A {}"
		out := migrateEntry(t, src, templateEntry, ref)

		assert.Equal(t, "@Component({\n  selector: 'x',\n  templateUrl: './a.component.html',\n})\nclass A {}", out)
	})

	t.Run("comment between value and separator falls back to the baseline span", func(t *testing.T) {
		src := "@Component({ template: '<p/>' /* keep */, selector: 'x' })\nclass A {}"
		out := migrateEntry(t, src, templateEntry, ref)

		assert.Equal(t, "@Component({ templateUrl: './a.component.html' /* keep */, selector: 'x' })\nclass A {}", out)
	})

	t.Run("leading comment survives the splice", func(t *testing.T) {
		src := "@Component({\n  // markup\n  template: '<p/>',\n  selector: 'x',\n})\nclass A {}"
		out := migrateEntry(t, src, templateEntry, ref)

		assert.Equal(t, "@Component({\n  // markup\n  templateUrl: './a.component.html',\n  selector: 'x',\n})\nclass A {}", out)
	})

	t.Run("both concerns yield disjoint edits", func(t *testing.T) {
		src := "@Component({\n  selector: 'x',\n  template: '<p/>',\n  styles: ['p {}']\n})\nclass A {}"
		block := blockOf(t, src)

		tpl, ok := InspectEntry(block, templateEntry)
		require.True(t, ok)
		sty, ok := InspectEntry(block, stylesEntry)
		require.True(t, ok)

		patcher := NewPatcher(src)
		require.NoError(t, patcher.Stage(ResolveEdit(src, tpl, len(block.Children), ref)))
		require.NoError(t, patcher.Stage(ResolveEdit(src, sty, len(block.Children), "styleUrls: ['./a.component.scss']")))

		out := patcher.Apply()
		assert.Equal(t, "@Component({\n  selector: 'x',\n  templateUrl: './a.component.html',\n  styleUrls: ['./a.component.scss']\n})\nclass A {}", out)
	})
}
