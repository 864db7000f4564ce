package domain

import m "github.com/pale-fox/exline/internal/model"

// ResolveEdit computes the exact removal span for one entry and builds the
// staged edit that replaces it with refText. The contract: for a block with
// N entries, after the splice the block still has N entries and exactly N-1
// separators between them, whatever position the replaced entry held.
//
// The entry's leading trivia is carried over into the replacement so the
// original indentation and any leading comment survive the splice.
//
// Separator ownership: an entry owns the separator that follows it, never
// the one before it. When the text after the entry matches "optional
// whitespace, then one separator", the span extends over that separator and
// the replacement re-emits it. When nothing follows (the entry is lexically
// last), the span stays at baseline and the preceding separator is left in
// place for the entry before it. This keeps every edit in a block disjoint
// even when both concerns migrate, and it keeps the separator count at N-1
// in the lexically-last case that the retract-the-preceding-separator
// policy gets wrong.
func ResolveEdit(src string, entry m.Entry, entryCount int, refText string) m.Edit {
	fs, fe := entry.Full.Start, entry.Full.End
	cs := entry.Core.Start
	lead := src[fs:cs]

	edit := m.Edit{
		Remove:   m.Range{Start: fs, End: fe},
		InsertAt: cs,
		Text:     lead + refText,
	}

	if entryCount <= 1 {
		return edit
	}

	if sep, ok := separatorAfter(src, fe); ok {
		edit.Remove.End = sep + 1
		edit.Text = lead + refText + ","
	}

	return edit
}

// separatorAfter matches "optional whitespace, then one separator" starting
// at pos and returns the separator's offset.
func separatorAfter(src string, pos int) (int, bool) {
	for pos < len(src) && isSpace(src[pos]) {
		pos++
	}

	if pos < len(src) && src[pos] == ',' {
		return pos, true
	}

	return 0, false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
