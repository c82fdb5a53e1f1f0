// Package printer renders runtime values back to text.
package printer

import (
	"strconv"
	"strings"

	"github.com/Looveh/lovisp/types"
)

// Print renders v to text. In readable mode the output is re-parseable by
// the reader (strings are quoted and escaped); in non-readable mode strings
// are emitted raw. The readable flag is threaded unchanged through every
// recursive call.
func Print(v *types.Value, readable bool) string {
	switch {
	case v == types.Nil:
		return "nil"
	case v == types.True:
		return "true"
	case v == types.False:
		return "false"
	case v.Number != nil:
		return strconv.Itoa(*v.Number)
	case v.Sym != nil:
		return *v.Sym
	case v.Kw != nil:
		return ":" + *v.Kw
	case v.Str != nil:
		return printStr(*v.Str, readable)
	case v.List != nil:
		return "(" + printSeq(*v.List, readable) + ")"
	case v.Vec != nil:
		return "[" + printSeq(*v.Vec, readable) + "]"
	case v.MapPairs != nil:
		return "{" + printSeq(*v.MapPairs, readable) + "}"
	case v.IsAtom():
		return "(atom " + Print(v.Atom, readable) + ")"
	case v.IsFn():
		return "#<function>"
	default:
		return "nil"
	}
}

func printStr(s string, readable bool) string {
	if !readable {
		return s
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, c := range []byte(s) {
		switch c {
		case '\\':
			b.WriteString("\\\\")
		case '"':
			b.WriteString("\\\"")
		case '\n':
			b.WriteString("\\n")
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func printSeq(xs []*types.Value, readable bool) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = Print(x, readable)
	}
	return strings.Join(parts, " ")
}
