package controller

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/pale-fox/exline/internal/model"
)

func newCapturedUI() (*SimpleUI, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(buf)

	return NewSimpleUI(cmd), buf
}

func TestSimpleUI(t *testing.T) {
	t.Run("start announces the candidate count", func(t *testing.T) {
		ui, buf := newCapturedUI()

		require.NoError(t, ui.Start(3))
		assert.Contains(t, buf.String(), "3 candidate file(s)")
	})

	t.Run("committed unit prints its path and created files", func(t *testing.T) {
		ui, buf := newCapturedUI()

		ui.UnitFinished(m.UnitResult{
			Path:    "src/app.component.ts",
			Outcome: m.OutcomeCommitted,
			Created: []m.Path{"src/app.component.html"},
		})

		out := buf.String()
		assert.Contains(t, out, "committed")
		assert.Contains(t, out, "src/app.component.ts")
		assert.Contains(t, out, "src/app.component.html")
	})

	t.Run("skipped unit prints nothing", func(t *testing.T) {
		ui, buf := newCapturedUI()

		ui.UnitFinished(m.UnitResult{Path: "a.component.ts", Outcome: m.OutcomeAlreadyMigrated})
		ui.UnitFinished(m.UnitResult{Path: "b.component.ts", Outcome: m.OutcomeNotCandidate})

		assert.Empty(t, buf.String())
	})

	t.Run("failed unit prints the error", func(t *testing.T) {
		ui, buf := newCapturedUI()

		ui.UnitFinished(m.UnitResult{
			Path:    "bad.component.ts",
			Outcome: m.OutcomeFailed,
			Err:     errors.New("permission denied"),
		})

		assert.Contains(t, buf.String(), "permission denied")
	})

	t.Run("summary tallies outcomes and drops empty rows", func(t *testing.T) {
		ui, buf := newCapturedUI()

		run := m.RunResult{Units: []m.UnitResult{
			{Path: "a.component.ts", Outcome: m.OutcomeCommitted},
			{Path: "b.component.ts", Outcome: m.OutcomeCommitted},
			{Path: "c.component.ts", Outcome: m.OutcomeAlreadyMigrated},
		}}

		require.NoError(t, ui.DisplaySummary(run))

		out := buf.String()
		assert.Contains(t, out, "committed")
		assert.Contains(t, out, "2")
		assert.Contains(t, out, "already migrated")
		assert.NotContains(t, out, "failed")
		assert.Contains(t, out, "3")
	})

	t.Run("summary prints dry run diffs before the table", func(t *testing.T) {
		ui, buf := newCapturedUI()

		run := m.RunResult{Units: []m.UnitResult{
			{Path: "a.component.ts", Outcome: m.OutcomePlanned, Diff: "--- a.component.ts\n+templateUrl"},
		}}

		require.NoError(t, ui.DisplaySummary(run))
		assert.Contains(t, buf.String(), "+templateUrl")
	})

	t.Run("plan table lists both concerns per candidate", func(t *testing.T) {
		ui, buf := newCapturedUI()

		require.NoError(t, ui.DisplayPlan([]m.CandidatePlan{
			{Path: "a.component.ts", Template: m.ConcernWillMigrate, Styles: m.ConcernAbsent},
			{Path: "b.component.ts", Template: m.ConcernAlreadyMigrated, Styles: m.ConcernUnusable},
		}))

		out := buf.String()
		assert.Contains(t, out, "a.component.ts")
		assert.Contains(t, out, "migrate")
		assert.Contains(t, out, "migrated")
		assert.Contains(t, out, "unusable")
		assert.Contains(t, out, "Total Files 2")
	})
}
