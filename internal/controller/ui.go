// Package controller provides the user-facing progress and summary output
// for migration runs.
package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	m "github.com/pale-fox/exline/internal/model"
)

// UI displays run progress and results. Implementations can use different
// output methods (plain text, TUI).
type UI interface {
	// Start is called once with the number of candidates before processing.
	Start(total int) error
	// UnitStarted announces the unit about to be processed.
	UnitStarted(path m.Path)
	// UnitFinished reports one unit's terminal outcome.
	UnitFinished(res m.UnitResult)
	// DisplaySummary renders the aggregate result of a finished run.
	DisplaySummary(run m.RunResult) error
	// DisplayPlan renders a dry inspection of the candidate set.
	DisplayPlan(plans []m.CandidatePlan) error
	// Close releases whatever the UI holds; safe to call more than once.
	Close()
}

// NewUI picks a UI implementation for the command. Interactive terminals
// get the Bubble Tea progress view, everything else plain text.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks whether the writer is an interactive terminal. Redirected
// output gets the plain renderer.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	info, err := file.Stat()
	if err != nil {
		return false
	}

	return (info.Mode() & os.ModeCharDevice) != 0
}
