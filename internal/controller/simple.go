package controller

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/pale-fox/exline/internal/model"
)

// SimpleUI implements UI with plain text on the command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start announces the candidate count.
func (s *SimpleUI) Start(total int) error {
	s.printf("Inspecting %d candidate file(s)\n", total)

	return nil
}

// UnitStarted is a no-op for the plain renderer.
func (s *SimpleUI) UnitStarted(m.Path) {}

// UnitFinished prints one line per processed unit.
func (s *SimpleUI) UnitFinished(res m.UnitResult) {
	switch res.Outcome {
	case m.OutcomeCommitted, m.OutcomePlanned:
		s.printf("%-17s %s\n", res.Outcome, res.Path)

		for _, created := range res.Created {
			s.printf("%-17s %s\n", "", created)
		}
	case m.OutcomeFailed:
		s.printf("%-17s %s: %v\n", res.Outcome, res.Path, res.Err)
	}
}

// DisplaySummary prints dry-run diffs followed by the outcome table.
func (s *SimpleUI) DisplaySummary(run m.RunResult) error {
	for _, unit := range run.Units {
		if unit.Diff != "" {
			s.printf("\n%s\n", unit.Diff)
		}
	}

	s.printf("\n")
	renderSummary(s.cmd.OutOrStdout(), run)

	return nil
}

// DisplayPlan prints the per-candidate concern table.
func (s *SimpleUI) DisplayPlan(plans []m.CandidatePlan) error {
	renderPlan(s.cmd.OutOrStdout(), plans)

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// renderSummary writes the outcome counts as a table.
func renderSummary(w io.Writer, run m.RunResult) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Outcome", "Files"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	outcomes := []m.Outcome{
		m.OutcomeCommitted,
		m.OutcomePlanned,
		m.OutcomeAlreadyMigrated,
		m.OutcomeNoLiteral,
		m.OutcomeNotCandidate,
		m.OutcomeFailed,
	}

	for _, outcome := range outcomes {
		count := run.Count(outcome)
		if count == 0 {
			continue
		}

		table.Append([]string{outcome.String(), fmt.Sprintf("%d", count)})
	}

	table.SetFooter([]string{"Total", fmt.Sprintf("%d", len(run.Units))})
	table.Render()
}

// renderPlan writes the per-candidate concern states as a table.
func renderPlan(w io.Writer, plans []m.CandidatePlan) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Path", "Template", "Styles"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	for _, plan := range plans {
		table.Append([]string{string(plan.Path), plan.Template.String(), plan.Styles.String()})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Files %d", len(plans)), "", ""})
	table.Render()
}
