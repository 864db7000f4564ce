package domain

import (
	m "github.com/pale-fox/exline/internal/model"
	"github.com/pale-fox/exline/internal/syntax"
)

// HasEntry reports whether the block carries a member with the given name,
// regardless of its value shape.
func HasEntry(block *syntax.Node, name string) bool {
	for i := range block.Children {
		if block.Children[i].Kind == syntax.KindProperty && block.Children[i].Name == name {
			return true
		}
	}

	return false
}

// InspectEntry scans the block for a member named name and classifies its
// value. Accepted shapes are a literal string and, for list entries, a
// literal list whose every element is a literal string; anything else is
// reported as present-but-unusable so the caller can skip it without
// guessing.
func InspectEntry(block *syntax.Node, name string) (m.Entry, bool) {
	for i := range block.Children {
		prop := &block.Children[i]

		if prop.Kind != syntax.KindProperty || prop.Name != name {
			continue
		}

		entry := m.Entry{
			Name: name,
			Full: m.Range{Start: prop.FullStart, End: prop.End},
			Core: m.Range{Start: prop.Start, End: prop.End},
		}

		value := prop.ValueNode()
		if value == nil {
			entry.Kind = m.EntryOther

			return entry, true
		}

		switch value.Kind {
		case syntax.KindString:
			entry.Kind = m.EntryScalarLiteral
			entry.Values = []string{value.Value}
		case syntax.KindArray:
			entry.Kind = m.EntryListLiteral

			for j := range value.Children {
				elem := &value.Children[j]
				if elem.Kind != syntax.KindString {
					entry.Kind = m.EntryOther
					entry.Values = nil

					return entry, true
				}

				entry.Values = append(entry.Values, elem.Value)
			}
		default:
			entry.Kind = m.EntryOther
		}

		return entry, true
	}

	return m.Entry{}, false
}
