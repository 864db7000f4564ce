package domain

import "errors"

// Sentinel errors for the recoverable fault taxonomy. Every one of these is
// handled locally: the affected entry or unit is skipped with a diagnostic
// and the run continues. Only an enumeration fault aborts a run, and that is
// reported as a plain wrapped error from Migrate.
var (
	// ErrUnusableLiteral marks an entry that is present but not a literal
	// the migration can extract; no guess is made about intended content.
	ErrUnusableLiteral = errors.New("entry value is not a usable literal")

	// ErrMissingNode marks an internal inconsistency where an entry located
	// earlier can no longer be resolved against the tree.
	ErrMissingNode = errors.New("entry node missing after extraction")
)
