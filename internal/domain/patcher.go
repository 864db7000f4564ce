package domain

import (
	"fmt"
	"sort"

	m "github.com/pale-fox/exline/internal/model"
)

// Patcher stages edits against the original, unmodified text snapshot and
// commits them in one step. Every staged edit is expressed in original-text
// coordinates; nothing is visible to later steps until Apply.
type Patcher struct {
	src   string
	edits []m.Edit
}

// NewPatcher creates a Patcher over the unit's original text.
func NewPatcher(src string) *Patcher {
	return &Patcher{src: src}
}

// Stage validates an edit against the snapshot bounds and the edits already
// staged, then records it. A rejected edit leaves the patcher unchanged.
func (p *Patcher) Stage(edit m.Edit) error {
	r := edit.Remove

	if r.Start < 0 || r.End > len(p.src) || r.Start > r.End {
		return fmt.Errorf("edit range [%d,%d) out of bounds for %d bytes", r.Start, r.End, len(p.src))
	}

	if edit.InsertAt < r.Start || edit.InsertAt > r.End {
		return fmt.Errorf("insert position %d outside removal span [%d,%d)", edit.InsertAt, r.Start, r.End)
	}

	for _, staged := range p.edits {
		if staged.Remove.Overlaps(r) {
			return fmt.Errorf("edit range [%d,%d) overlaps a staged edit", r.Start, r.End)
		}
	}

	p.edits = append(p.edits, edit)

	return nil
}

// Empty reports whether nothing has been staged.
func (p *Patcher) Empty() bool {
	return len(p.edits) == 0
}

// Apply splices every staged edit into a new text. Edits are applied from
// the end of the file backwards so earlier original-text coordinates stay
// valid throughout; the original snapshot is never modified.
func (p *Patcher) Apply() string {
	ordered := make([]m.Edit, len(p.edits))
	copy(ordered, p.edits)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Remove.Start > ordered[j].Remove.Start
	})

	out := p.src
	for _, edit := range ordered {
		out = out[:edit.Remove.Start] + edit.Text + out[edit.Remove.End:]
	}

	return out
}
