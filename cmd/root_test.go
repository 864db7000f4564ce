package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pale-fox/exline/internal/controller"
	"github.com/pale-fox/exline/internal/domain"
)

// runCommand executes the root command with args against the real adapters,
// forcing the plain UI and capturing all output. Flag state is restored so
// tests stay independent.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)

	prevUI := ui
	ui = controller.NewSimpleUI(rootCmd)

	t.Cleanup(func() {
		ui = prevUI
		dryRunFlag = false
		verboseFlag = false
		templateExtFlag = domain.DefaultTemplateExt
		styleExtFlag = domain.DefaultStyleExt
	})

	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return buf.String(), err
}

func seedComponent(t *testing.T) (dir, unit string) {
	t.Helper()

	dir = t.TempDir()
	unit = filepath.Join(dir, "app.component.ts")

	src := `import { Component } from '@angular/core';

@Component({
  selector: 'app-root',
  template: '<p>hi</p>',
})
export class AppComponent {}
`
	require.NoError(t, os.WriteFile(unit, []byte(src), 0o644))

	return dir, unit
}

func TestRootCommand(t *testing.T) {
	t.Run("migrates components under the root", func(t *testing.T) {
		dir, unit := seedComponent(t)

		out, err := runCommand(t, dir)
		require.NoError(t, err)
		assert.Contains(t, out, "committed")

		rewritten, err := os.ReadFile(unit)
		require.NoError(t, err)
		assert.Contains(t, string(rewritten), "templateUrl: './app.component.html'")
		assert.FileExists(t, filepath.Join(dir, "app.component.html"))
	})

	t.Run("dry run writes nothing", func(t *testing.T) {
		dir, unit := seedComponent(t)

		before, err := os.ReadFile(unit)
		require.NoError(t, err)

		out, err := runCommand(t, "--dry-run", dir)
		require.NoError(t, err)
		assert.Contains(t, out, "planned")
		assert.Contains(t, out, "templateUrl")

		after, err := os.ReadFile(unit)
		require.NoError(t, err)
		assert.Equal(t, before, after)
		assert.NoFileExists(t, filepath.Join(dir, "app.component.html"))
	})

	t.Run("custom extensions", func(t *testing.T) {
		dir, _ := seedComponent(t)

		_, err := runCommand(t, "--template-ext", ".htm", dir)
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(dir, "app.component.htm"))
	})

	t.Run("missing root fails", func(t *testing.T) {
		_, err := runCommand(t, filepath.Join(t.TempDir(), "gone"))
		assert.Error(t, err)
	})
}

func TestListCommand(t *testing.T) {
	dir, _ := seedComponent(t)

	out, err := runCommand(t, "list", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "app.component.ts")
	assert.Contains(t, out, "migrate")
	assert.Contains(t, out, "Total Files 1")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "exline dev")
}
