package domain

import "github.com/pale-fox/exline/internal/syntax"

// LocateConfigBlock finds the single configuration block in a parsed file:
// the first decorator whose callee matches marker, whose lone argument is a
// literal object, and which is attached to a class declaration. A file
// without such a block is simply not a candidate, never an error.
func LocateConfigBlock(file *syntax.File, marker string) (*syntax.Node, bool) {
	for i := range file.Decorators {
		dec := &file.Decorators[i]

		if dec.Name != marker || !dec.OnClass || dec.Arg == nil {
			continue
		}

		if dec.Arg.Kind != syntax.KindObject {
			continue
		}

		return dec.Arg, true
	}

	return nil, false
}
