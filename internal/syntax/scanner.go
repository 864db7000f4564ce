// Package syntax builds a lightweight syntax tree from one component file's
// raw text. The tree is a closed tagged-variant type: the rest of the engine
// pattern-matches on Kind instead of probing arbitrary node shapes, and every
// node carries both its full start (including leading trivia) and its core
// start in original-text byte offsets.
package syntax

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokNumber
	tokString       // '...' or "..."
	tokTemplate     // `...` without interpolation
	tokTemplateExpr // `...` containing ${...}
	tokRegex
	tokPunct
)

// token is a core token plus the offset where its leading trivia begins.
// fullStart equals the end of the previous core token, so comments and
// whitespace between tokens belong to the token that follows them.
type token struct {
	kind      tokenKind
	fullStart int
	start     int
	end       int
	text      string
}

// scan tokenizes the whole source. The scanner is tolerant: unterminated
// strings or comments produce a best-effort token ending at end of input.
func scan(src string) []token {
	var tokens []token

	pos := 0
	fullStart := 0

	for {
		pos = skipTrivia(src, pos)
		if pos >= len(src) {
			tokens = append(tokens, token{kind: tokEOF, fullStart: fullStart, start: len(src), end: len(src)})

			return tokens
		}

		start := pos
		kind := tokPunct
		c := src[pos]

		switch {
		case isIdentStart(c):
			kind = tokIdent
			pos = scanIdent(src, pos)
		case c >= '0' && c <= '9':
			kind = tokNumber
			pos = scanNumber(src, pos)
		case c == '\'' || c == '"':
			kind = tokString
			pos = scanString(src, pos)
		case c == '`':
			var interp bool

			pos, interp = scanTemplate(src, pos)
			kind = tokTemplate

			if interp {
				kind = tokTemplateExpr
			}
		case c == '/' && regexAllowed(tokens):
			kind = tokRegex
			pos = scanRegex(src, pos)
		case c == '.' && pos+2 < len(src) && src[pos+1] == '.' && src[pos+2] == '.':
			pos += 3
		default:
			pos++
		}

		tokens = append(tokens, token{
			kind:      kind,
			fullStart: fullStart,
			start:     start,
			end:       pos,
			text:      src[start:pos],
		})
		fullStart = pos
	}
}

// skipTrivia advances past whitespace and comments.
func skipTrivia(src string, pos int) int {
	for pos < len(src) {
		c := src[pos]

		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v':
			pos++
		case c == '/' && pos+1 < len(src) && src[pos+1] == '/':
			for pos < len(src) && src[pos] != '\n' {
				pos++
			}
		case c == '/' && pos+1 < len(src) && src[pos+1] == '*':
			pos += 2
			for pos < len(src) {
				if src[pos] == '*' && pos+1 < len(src) && src[pos+1] == '/' {
					pos += 2

					break
				}

				pos++
			}
		default:
			return pos
		}
	}

	return pos
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= 0x80
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

func scanIdent(src string, pos int) int {
	for pos < len(src) && isIdentPart(src[pos]) {
		pos++
	}

	return pos
}

func scanNumber(src string, pos int) int {
	for pos < len(src) {
		c := src[pos]
		if c == '.' || c == '_' || isIdentPart(c) {
			pos++

			continue
		}

		break
	}

	return pos
}

// scanString consumes a single- or double-quoted string starting at pos.
// A bare newline terminates an unclosed string rather than swallowing the
// rest of the file.
func scanString(src string, pos int) int {
	quote := src[pos]
	pos++

	for pos < len(src) {
		switch src[pos] {
		case '\\':
			pos += 2
		case quote:
			return pos + 1
		case '\n':
			return pos
		default:
			pos++
		}
	}

	return pos
}

// scanTemplate consumes a backtick template literal, reporting whether it
// contains a ${...} interpolation. Nested templates inside interpolations
// are handled recursively.
func scanTemplate(src string, pos int) (int, bool) {
	pos++ // opening backtick
	interp := false

	for pos < len(src) {
		switch {
		case src[pos] == '\\':
			pos += 2
		case src[pos] == '`':
			return pos + 1, interp
		case src[pos] == '$' && pos+1 < len(src) && src[pos+1] == '{':
			interp = true
			pos = skipInterpolation(src, pos+2)
		default:
			pos++
		}
	}

	return pos, interp
}

// skipInterpolation advances past a ${...} body, respecting nested braces,
// strings, and templates.
func skipInterpolation(src string, pos int) int {
	depth := 1

	for pos < len(src) && depth > 0 {
		switch src[pos] {
		case '\'', '"':
			pos = scanString(src, pos)
		case '`':
			pos, _ = scanTemplate(src, pos)
		case '{':
			depth++
			pos++
		case '}':
			depth--
			pos++
		default:
			pos++
		}
	}

	return pos
}

// regexAllowed applies the standard operand-position heuristic: a slash
// starts a regex literal unless the previous core token could end an
// expression.
func regexAllowed(tokens []token) bool {
	if len(tokens) == 0 {
		return true
	}

	prev := tokens[len(tokens)-1]

	switch prev.kind {
	case tokIdent:
		switch prev.text {
		case "return", "typeof", "case", "in", "of", "new", "delete", "void", "instanceof", "do", "else", "yield", "await":
			return true
		}

		return false
	case tokNumber, tokString, tokTemplate, tokTemplateExpr, tokRegex:
		return false
	case tokPunct:
		switch prev.text {
		case ")", "]", "}":
			return false
		}

		return true
	default:
		return true
	}
}

func scanRegex(src string, pos int) int {
	pos++ // opening slash
	inClass := false

	for pos < len(src) {
		switch {
		case src[pos] == '\\':
			pos += 2
		case src[pos] == '[':
			inClass = true
			pos++
		case src[pos] == ']':
			inClass = false
			pos++
		case src[pos] == '/' && !inClass:
			pos++
			// flags
			for pos < len(src) && isIdentPart(src[pos]) {
				pos++
			}

			return pos
		case src[pos] == '\n':
			return pos
		default:
			pos++
		}
	}

	return pos
}
