// Package model defines the data structures for the inline-resource migration.
package model

// Path represents a file system path.
type Path string

// Range is a half-open byte span [Start, End) in a file's original text.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Contains reports whether pos falls inside the range.
func (r Range) Contains(pos int) bool {
	return pos >= r.Start && pos < r.End
}

// Overlaps reports whether two ranges share at least one byte.
func (r Range) Overlaps(other Range) bool {
	return r.Start < other.End && other.Start < r.End
}

// EntryKind classifies the value shape of a configuration entry.
type EntryKind int

const (
	// EntryScalarLiteral is a single literal string value.
	EntryScalarLiteral EntryKind = iota
	// EntryListLiteral is an ordered list whose every element is a literal string.
	EntryListLiteral
	// EntryOther is any value shape the migration will not touch
	// (identifier, call, spread, template interpolation).
	EntryOther
)

// Entry is a named key/value pair inside a configuration block.
// Full includes the entry's leading trivia; Core starts at the key token.
// Invariant: Core is contained in Full.
type Entry struct {
	Name   string
	Kind   EntryKind
	Values []string
	Full   Range
	Core   Range
}

// Edit is a staged text change expressed in original-text coordinates.
// Edits never assume a shifted offset from a prior edit.
type Edit struct {
	Remove   Range
	InsertAt int
	Text     string
}

// ExternalFileSpec describes one file to be emitted next to the source unit.
// Creation is skipped, not failed, when the path already exists.
type ExternalFileSpec struct {
	Path    Path
	Content string
}
