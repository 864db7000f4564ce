package syntax

// File is the parse result for one source unit. Decorators appear in source
// order; everything between them is opaque to the migration.
type File struct {
	Src        string
	Decorators []Decorator
}

// Decorator is an annotation of the form @Name(...).
type Decorator struct {
	Name    string
	Start   int
	Arg     *Node // set only when the call has exactly one argument and it is a literal object
	OnClass bool  // a class declaration follows this decorator
}

// Parse tokenizes src and extracts every decorator together with its
// object-literal argument, when present. The parser never fails: malformed
// input yields fewer decorators, not an error, because files outside the
// recognized shape are left untouched by the caller.
func Parse(src string) *File {
	tokens := scan(src)
	file := &File{Src: src}

	var pending []int

	i := 0

	for at(tokens, i).kind != tokEOF {
		t := at(tokens, i)

		if t.kind == tokIdent && t.text == "class" {
			for _, idx := range pending {
				file.Decorators[idx].OnClass = true
			}

			pending = nil
			i++

			continue
		}

		if t.kind == tokPunct && t.text == "@" && at(tokens, i+1).kind == tokIdent {
			dec, next := parseDecorator(tokens, i)
			file.Decorators = append(file.Decorators, dec)
			pending = append(pending, len(file.Decorators)-1)
			i = next

			continue
		}

		i++
	}

	return file
}

// at returns the token at index i, or the trailing EOF token when i is out
// of range.
func at(tokens []token, i int) token {
	if i >= len(tokens) {
		return tokens[len(tokens)-1]
	}

	return tokens[i]
}

func parseDecorator(tokens []token, i int) (Decorator, int) {
	name := at(tokens, i+1)
	dec := Decorator{Name: name.text, Start: at(tokens, i).start}
	i += 2

	if !isPunct(at(tokens, i), "(") {
		return dec, i
	}

	if isPunct(at(tokens, i+1), "{") {
		obj, next := parseObject(tokens, i+1)
		if isPunct(at(tokens, next), ")") {
			dec.Arg = &obj

			return dec, next + 1
		}
	}

	return dec, skipBalanced(tokens, i)
}

func isPunct(t token, text string) bool {
	return t.kind == tokPunct && t.text == text
}

// skipBalanced advances from an opening bracket token past its matching
// close, or to EOF for unbalanced input.
func skipBalanced(tokens []token, i int) int {
	depth := 0

	for ; at(tokens, i).kind != tokEOF; i++ {
		switch at(tokens, i).text {
		case "(", "[", "{":
			depth++
		case ")", "]", "}":
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}

	return i
}

// parseObject parses a literal object starting at the '{' token.
func parseObject(tokens []token, i int) (Node, int) {
	open := at(tokens, i)
	obj := Node{Kind: KindObject, FullStart: open.fullStart, Start: open.start}
	i++

	for {
		t := at(tokens, i)

		if t.kind == tokEOF {
			obj.End = t.start

			return obj, i
		}

		if isPunct(t, "}") {
			obj.End = t.end

			return obj, i + 1
		}

		prop, next := parseProperty(tokens, i)
		obj.Children = append(obj.Children, prop)
		i = next

		if isPunct(at(tokens, i), ",") {
			i++
		}
	}
}

// parseProperty parses one object member: a key/value pair, a shorthand
// reference, a method, or a spread. The property's full range starts at its
// leading trivia; the core range starts at the key token.
func parseProperty(tokens []token, i int) (Node, int) {
	first := at(tokens, i)
	prop := Node{Kind: KindProperty, FullStart: first.fullStart, Start: first.start}

	if isPunct(first, "...") {
		value, next := parseRawUntil(tokens, i)
		value.Kind = KindSpread
		prop.Children = []Node{value}
		prop.End = value.End

		return prop, next
	}

	switch first.kind {
	case tokIdent, tokNumber:
		prop.Name = first.text
	case tokString:
		prop.Name = decodeString(first.text)
	default:
		// Computed key or something stranger; keep it as an opaque member.
		value, next := parseRawUntil(tokens, i)
		prop.Children = []Node{value}
		prop.End = value.End

		return prop, next
	}

	i++

	if isPunct(at(tokens, i), ":") {
		value, next := parseValue(tokens, i+1)
		prop.Children = []Node{value}
		prop.End = value.End

		return prop, next
	}

	if isPunct(at(tokens, i), ",") || isPunct(at(tokens, i), "}") || at(tokens, i).kind == tokEOF {
		// Shorthand property: the key is also the value.
		prop.Children = []Node{{Kind: KindIdent, FullStart: first.fullStart, Start: first.start, End: first.end}}
		prop.End = first.end

		return prop, i
	}

	// Method or accessor: swallow the whole member as an opaque span.
	value, next := parseRawUntil(tokens, i-1)
	value.Kind = KindRaw
	prop.Children = []Node{value}
	prop.End = value.End

	return prop, next
}

// parseValue parses one value expression. Simple shapes get a precise kind;
// anything composite collapses to KindRaw spanning the whole expression.
func parseValue(tokens []token, i int) (Node, int) {
	t := at(tokens, i)

	var node Node

	switch {
	case t.kind == tokString:
		node = Node{Kind: KindString, FullStart: t.fullStart, Start: t.start, End: t.end, Value: decodeString(t.text)}
		i++
	case t.kind == tokTemplate:
		node = Node{Kind: KindString, FullStart: t.fullStart, Start: t.start, End: t.end, Value: decodeString(t.text)}
		i++
	case t.kind == tokTemplateExpr, t.kind == tokNumber, t.kind == tokRegex:
		node = Node{Kind: KindRaw, FullStart: t.fullStart, Start: t.start, End: t.end}
		i++
	case isPunct(t, "["):
		return parseArray(tokens, i)
	case isPunct(t, "{"):
		return parseObject(tokens, i)
	case isPunct(t, "..."):
		node, i = parseRawUntil(tokens, i)
		node.Kind = KindSpread

		return node, i
	case t.kind == tokIdent:
		if isPunct(at(tokens, i+1), "(") {
			end := skipBalanced(tokens, i+1)
			node = Node{Kind: KindCall, FullStart: t.fullStart, Start: t.start, End: at(tokens, end-1).end}
			i = end
		} else {
			node = Node{Kind: KindIdent, FullStart: t.fullStart, Start: t.start, End: t.end}
			i++
		}
	default:
		return parseRawUntil(tokens, i)
	}

	if terminatesValue(at(tokens, i)) {
		return node, i
	}

	// The simple head is part of a larger expression (member access, binary
	// operator, ternary); widen to an opaque span.
	raw, next := parseRawUntil(tokens, i)
	node.Kind = KindRaw
	node.End = raw.End
	node.Value = ""
	node.Children = nil

	return node, next
}

// parseArray parses a literal list starting at the '[' token.
func parseArray(tokens []token, i int) (Node, int) {
	open := at(tokens, i)
	arr := Node{Kind: KindArray, FullStart: open.fullStart, Start: open.start}
	i++

	for {
		t := at(tokens, i)

		if t.kind == tokEOF {
			arr.End = t.start

			return arr, i
		}

		if isPunct(t, "]") {
			arr.End = t.end

			return arr, i + 1
		}

		if isPunct(t, ",") {
			i++

			continue
		}

		elem, next := parseValue(tokens, i)
		arr.Children = append(arr.Children, elem)
		i = next
	}
}

// parseRawUntil consumes tokens until a value terminator at bracket depth
// zero and returns the covered span as a single node.
func parseRawUntil(tokens []token, i int) (Node, int) {
	first := at(tokens, i)
	node := Node{Kind: KindRaw, FullStart: first.fullStart, Start: first.start, End: first.end}
	depth := 0

	for {
		t := at(tokens, i)

		if t.kind == tokEOF {
			return node, i
		}

		if depth == 0 && terminatesValue(t) {
			return node, i
		}

		switch t.text {
		case "(", "[", "{":
			depth++
		case ")", "]", "}":
			depth--
			if depth < 0 {
				return node, i
			}
		}

		node.End = t.end
		i++
	}
}

// terminatesValue reports whether the token ends a value at depth zero.
func terminatesValue(t token) bool {
	if t.kind == tokEOF {
		return true
	}

	return isPunct(t, ",") || isPunct(t, "}") || isPunct(t, "]") || isPunct(t, ")")
}
