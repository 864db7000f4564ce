package syntax

import "strings"

// Kind tags the closed set of node variants.
type Kind int

const (
	// KindString is a literal string in any notation, including a template
	// literal without interpolation. Value holds the decoded text.
	KindString Kind = iota
	// KindArray is a literal ordered list.
	KindArray
	// KindIdent is a bare identifier reference.
	KindIdent
	// KindCall is a call expression.
	KindCall
	// KindSpread is a spread element.
	KindSpread
	// KindRaw is any other expression, kept only as a span.
	KindRaw
	// KindObject is a literal object.
	KindObject
	// KindProperty is one key/value member of an object.
	KindProperty
)

// Node is one syntax tree node. FullStart is the first byte of the node's
// leading trivia, Start the first byte of its core token, End one past its
// last byte. Invariant: FullStart <= Start < End.
type Node struct {
	Kind      Kind
	FullStart int
	Start     int
	End       int
	Name      string // property key, for KindProperty
	Value     string // decoded literal text, for KindString
	Children  []Node // object properties, array elements, or the property value
}

// ValueNode returns the value of a KindProperty node, or nil when the
// property has no parsed value.
func (n *Node) ValueNode() *Node {
	if n.Kind != KindProperty || len(n.Children) == 0 {
		return nil
	}

	return &n.Children[0]
}

// Visit walks the node and its children depth-first in source order.
// Returning false from fn prunes descent into that node's children.
func (n *Node) Visit(fn func(*Node) bool) {
	if !fn(n) {
		return
	}

	for i := range n.Children {
		n.Children[i].Visit(fn)
	}
}

// decodeString strips the delimiters from a raw literal token and resolves
// the common escape sequences. Unknown escapes drop the backslash, matching
// how the host language evaluates them.
func decodeString(raw string) string {
	if len(raw) < 2 {
		return raw
	}

	quote := raw[0]
	body := raw[1:]

	if len(body) > 0 && body[len(body)-1] == quote {
		body = body[:len(body)-1]
	}

	if !strings.ContainsRune(body, '\\') {
		return body
	}

	var b strings.Builder

	b.Grow(len(body))

	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 >= len(body) {
			b.WriteByte(c)

			continue
		}

		i++

		switch body[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		case '0':
			b.WriteByte(0)
		case '\n':
			// line continuation
		case 'x':
			if i+2 < len(body) {
				if r, ok := hexRune(body[i+1 : i+3]); ok {
					b.WriteRune(r)
					i += 2

					continue
				}
			}

			b.WriteByte('x')
		case 'u':
			if n, r, ok := unicodeEscape(body[i+1:]); ok {
				b.WriteRune(r)
				i += n

				continue
			}

			b.WriteByte('u')
		default:
			b.WriteByte(body[i])
		}
	}

	return b.String()
}

// unicodeEscape decodes the part after \u: either XXXX or {X...}.
// It returns the number of consumed bytes and the rune.
func unicodeEscape(s string) (int, rune, bool) {
	if len(s) > 0 && s[0] == '{' {
		end := strings.IndexByte(s, '}')
		if end < 0 {
			return 0, 0, false
		}

		r, ok := hexRune(s[1:end])
		if !ok {
			return 0, 0, false
		}

		return end + 1, r, true
	}

	if len(s) < 4 {
		return 0, 0, false
	}

	r, ok := hexRune(s[:4])
	if !ok {
		return 0, 0, false
	}

	return 4, r, true
}

func hexRune(s string) (rune, bool) {
	var v rune

	if s == "" {
		return 0, false
	}

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch {
		case c >= '0' && c <= '9':
			v = v<<4 | rune(c-'0')
		case c >= 'a' && c <= 'f':
			v = v<<4 | rune(c-'a'+10)
		case c >= 'A' && c <= 'F':
			v = v<<4 | rune(c-'A'+10)
		default:
			return 0, false
		}
	}

	return v, true
}
