package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pale-fox/exline/internal/syntax"
)

func TestLocateConfigBlock(t *testing.T) {
	t.Run("finds the component block on a class", func(t *testing.T) {
		file := syntax.Parse("@Component({ selector: 'x' })\nexport class A {}")

		block, ok := LocateConfigBlock(file, ComponentMarker)
		require.True(t, ok)
		require.Len(t, block.Children, 1)
		assert.Equal(t, "selector", block.Children[0].Name)
	})

	t.Run("ignores other decorators", func(t *testing.T) {
		file := syntax.Parse("@Injectable({ providedIn: 'root' })\nexport class A {}")

		_, ok := LocateConfigBlock(file, ComponentMarker)
		assert.False(t, ok)
	})

	t.Run("ignores a matching decorator that is not on a class", func(t *testing.T) {
		file := syntax.Parse("@Component({ selector: 'x' })\nconst a = 1;")

		_, ok := LocateConfigBlock(file, ComponentMarker)
		assert.False(t, ok)
	})

	t.Run("ignores a non-object argument", func(t *testing.T) {
		file := syntax.Parse("@Component(sharedConfig)\nexport class A {}")

		_, ok := LocateConfigBlock(file, ComponentMarker)
		assert.False(t, ok)
	})

	t.Run("skips past unrelated decorators on the same class", func(t *testing.T) {
		file := syntax.Parse("@Sealed\n@Component({ selector: 'x' })\nexport class A {}")

		block, ok := LocateConfigBlock(file, ComponentMarker)
		require.True(t, ok)
		assert.Equal(t, "selector", block.Children[0].Name)
	})

	t.Run("plain file has no block", func(t *testing.T) {
		file := syntax.Parse("export const answer = 42;")

		_, ok := LocateConfigBlock(file, ComponentMarker)
		assert.False(t, ok)
	})
}
