package controller

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/pale-fox/exline/internal/model"
)

type unitStartedMsg struct {
	path m.Path
}

type unitFinishedMsg struct {
	res m.UnitResult
}

type runDoneMsg struct{}

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	currentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	countStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// migrateModel is the Bubble Tea model for the migration progress view.
type migrateModel struct {
	total     int
	done      int
	committed int
	failed    int
	skipped   int
	current   string
	bar       progress.Model
	quitting  bool
}

func newMigrateModel(total int) migrateModel {
	return migrateModel{
		total: total,
		bar:   progress.New(progress.WithDefaultGradient()),
	}
}

// Init implements tea.Model.
func (migrateModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (mm migrateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			mm.quitting = true

			return mm, tea.Quit
		}
	case tea.WindowSizeMsg:
		width := msg.Width - 4
		if width > 0 {
			mm.bar.Width = width
		}
	case unitStartedMsg:
		mm.current = string(msg.path)
	case unitFinishedMsg:
		mm.done++

		switch msg.res.Outcome {
		case m.OutcomeCommitted, m.OutcomePlanned:
			mm.committed++
		case m.OutcomeFailed:
			mm.failed++
		default:
			mm.skipped++
		}
	case runDoneMsg:
		mm.quitting = true

		return mm, tea.Quit
	}

	return mm, nil
}

// View implements tea.Model.
func (mm migrateModel) View() string {
	if mm.quitting {
		return ""
	}

	percent := 1.0
	if mm.total > 0 {
		percent = float64(mm.done) / float64(mm.total)
	}

	view := titleStyle.Render("exline") + "\n\n"
	view += mm.bar.ViewAs(percent) + "\n\n"

	if mm.current != "" {
		view += currentStyle.Render(mm.current) + "\n"
	}

	view += countStyle.Render(
		fmt.Sprintf("%d/%d processed · %d migrated · %d skipped · %d failed",
			mm.done, mm.total, mm.committed, mm.skipped, mm.failed),
	) + "\n"

	return view
}
