package model

// Level is the severity of a diagnostic. Levels carry no semantics beyond
// severity ordering.
type Level int

const (
	// LevelDebug marks chatter useful only when tracing a run.
	LevelDebug Level = iota
	// LevelInfo marks normal progress messages.
	LevelInfo
	// LevelWarn marks recovered conditions worth the user's attention.
	LevelWarn
	// LevelError marks a per-unit fault that did not stop the run.
	LevelError
	// LevelFatal marks an enumeration fault that aborted the run.
	LevelFatal
)

// String returns the lowercase name of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Diagnostic is one leveled message produced while processing a unit.
type Diagnostic struct {
	Level   Level
	Path    Path
	Message string
}

// Sink receives diagnostics at the boundary. Absence of a sink must not
// change migration outcomes.
type Sink interface {
	Emit(d Diagnostic)
}
