package controller

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	m "github.com/pale-fox/exline/internal/model"
)

// TUI implements UI with a Bubble Tea progress view. The tea program runs in
// its own goroutine while the migration proceeds; the two are joined when
// the summary is displayed.
type TUI struct {
	out     io.Writer
	program *tea.Program
	group   *errgroup.Group
	stopped bool
}

// NewTUI creates a new TUI writing to out.
func NewTUI(out io.Writer) *TUI {
	return &TUI{out: out}
}

// Start launches the progress view.
func (t *TUI) Start(total int) error {
	t.program = tea.NewProgram(newMigrateModel(total), tea.WithOutput(t.out))
	t.group = &errgroup.Group{}
	t.group.Go(func() error {
		_, err := t.program.Run()

		return err
	})

	return nil
}

// UnitStarted shows the unit currently being processed.
func (t *TUI) UnitStarted(path m.Path) {
	t.program.Send(unitStartedMsg{path: path})
}

// UnitFinished advances the progress bar and tallies the outcome.
func (t *TUI) UnitFinished(res m.UnitResult) {
	t.program.Send(unitFinishedMsg{res: res})
}

// DisplaySummary stops the progress view and prints the run summary below it.
func (t *TUI) DisplaySummary(run m.RunResult) error {
	if err := t.stop(); err != nil {
		return err
	}

	for _, unit := range run.Units {
		if unit.Diff != "" {
			_, _ = io.WriteString(t.out, "\n"+unit.Diff+"\n")
		}
	}

	_, _ = io.WriteString(t.out, "\n")
	renderSummary(t.out, run)

	return nil
}

// DisplayPlan renders the candidate table without a progress view.
func (t *TUI) DisplayPlan(plans []m.CandidatePlan) error {
	renderPlan(t.out, plans)

	return nil
}

// Close tears the program down if it is still running.
func (t *TUI) Close() {
	_ = t.stop()
}

func (t *TUI) stop() error {
	if t.program == nil || t.stopped {
		return nil
	}

	t.stopped = true
	t.program.Send(runDoneMsg{})

	return t.group.Wait()
}
