package adapter

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	m "github.com/pale-fox/exline/internal/model"
)

// ConsoleSink prints diagnostics to a writer, colored by severity. Debug
// messages are suppressed unless verbose is set.
type ConsoleSink struct {
	out     io.Writer
	verbose bool
}

// NewConsoleSink constructs a ConsoleSink.
func NewConsoleSink(out io.Writer, verbose bool) *ConsoleSink {
	return &ConsoleSink{out: out, verbose: verbose}
}

var levelColors = map[m.Level]*color.Color{
	m.LevelDebug: color.New(color.FgHiBlack),
	m.LevelInfo:  color.New(color.FgCyan),
	m.LevelWarn:  color.New(color.FgYellow),
	m.LevelError: color.New(color.FgRed),
	m.LevelFatal: color.New(color.FgRed, color.Bold),
}

// Emit writes one diagnostic line.
func (s *ConsoleSink) Emit(d m.Diagnostic) {
	if d.Level == m.LevelDebug && !s.verbose {
		return
	}

	label := d.Level.String()
	if c, ok := levelColors[d.Level]; ok {
		label = c.Sprint(label)
	}

	if d.Path != "" {
		_, _ = fmt.Fprintf(s.out, "%s %s: %s\n", label, d.Path, d.Message)

		return
	}

	_, _ = fmt.Fprintf(s.out, "%s %s\n", label, d.Message)
}

// NopSink discards every diagnostic. Outcomes never depend on a sink being
// present.
type NopSink struct{}

// Emit discards the diagnostic.
func (NopSink) Emit(m.Diagnostic) {}
