package model

// Outcome is the terminal state of one candidate unit.
type Outcome int

const (
	// OutcomeNotCandidate means the file has no matching configuration block.
	OutcomeNotCandidate Outcome = iota
	// OutcomeAlreadyMigrated means the reference form is already present for
	// every concern that exists in the block.
	OutcomeAlreadyMigrated
	// OutcomeNoLiteral means the block carries no migratable literal entry.
	OutcomeNoLiteral
	// OutcomePlanned means edits were computed but not applied (dry run).
	OutcomePlanned
	// OutcomeCommitted means the unit's edits and external files were written.
	OutcomeCommitted
	// OutcomeFailed means a per-unit fault stopped this unit; the run continues.
	OutcomeFailed
)

// String returns a short human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNotCandidate:
		return "not a candidate"
	case OutcomeAlreadyMigrated:
		return "already migrated"
	case OutcomeNoLiteral:
		return "no literal"
	case OutcomePlanned:
		return "planned"
	case OutcomeCommitted:
		return "committed"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ConcernState is the per-concern decision for a candidate, used by plan
// listings where template and styles are evaluated independently.
type ConcernState int

const (
	// ConcernAbsent means the block has neither literal nor reference entry.
	ConcernAbsent ConcernState = iota
	// ConcernWillMigrate means a literal entry is present and usable.
	ConcernWillMigrate
	// ConcernAlreadyMigrated means the reference entry is present.
	ConcernAlreadyMigrated
	// ConcernUnusable means the entry is present but not a literal.
	ConcernUnusable
)

// String returns a short human-readable concern state.
func (c ConcernState) String() string {
	switch c {
	case ConcernAbsent:
		return "-"
	case ConcernWillMigrate:
		return "migrate"
	case ConcernAlreadyMigrated:
		return "migrated"
	case ConcernUnusable:
		return "unusable"
	default:
		return "unknown"
	}
}

// CandidatePlan is the dry inspection result for one candidate file.
type CandidatePlan struct {
	Path     Path
	Template ConcernState
	Styles   ConcernState
}

// UnitResult is the finalized outcome for one processed unit.
type UnitResult struct {
	Path    Path
	Outcome Outcome
	Created []Path
	Diff    string
	Err     error
}

// RunResult aggregates unit results and every diagnostic emitted by a run.
type RunResult struct {
	Units       []UnitResult
	Diagnostics []Diagnostic
}

// Count returns how many units finished with the given outcome.
func (r RunResult) Count(outcome Outcome) int {
	n := 0

	for _, unit := range r.Units {
		if unit.Outcome == outcome {
			n++
		}
	}

	return n
}
