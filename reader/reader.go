// Package reader turns source text into a single AST value: tokenizer.go
// implements the fixed lexical grammar, this file is the recursive-descent
// reader built on top of it.
package reader

import (
	"fmt"
	"strconv"

	"github.com/Looveh/lovisp/types"
)

// cursor walks a token slice one token at a time.
type cursor struct {
	tokens []string
	pos    int
}

func (c *cursor) peek() (string, bool) {
	if c.pos >= len(c.tokens) {
		return "", false
	}
	return c.tokens[c.pos], true
}

func (c *cursor) next() (string, bool) {
	t, ok := c.peek()
	if ok {
		c.pos++
	}
	return t, ok
}

// ReadStr tokenizes input and reads exactly one form from the front of it.
func ReadStr(input string) (*types.Value, error) {
	tokens, err := tokenize(input)
	if err != nil {
		return nil, fmt.Errorf("EOF")
	}
	c := &cursor{tokens: tokens}
	return readForm(c)
}

func readForm(c *cursor) (*types.Value, error) {
	t, ok := c.peek()
	if !ok {
		return nil, fmt.Errorf("EOF")
	}

	switch t {
	case "'":
		return readWrapped(c, "quote")
	case "`":
		return readWrapped(c, "quasiquote")
	case "~":
		return readWrapped(c, "unquote")
	case "~@":
		return readWrapped(c, "splice-unquote")
	case "@":
		return readWrapped(c, "deref")
	case "^":
		return readMetaForm(c)
	case "(":
		return readSeq(c, "(", ")", types.NewList)
	case "[":
		return readSeq(c, "[", "]", types.NewVec)
	case "{":
		return readMapForm(c)
	case ")", "]", "}":
		return nil, fmt.Errorf("unexpected '%s'", t)
	default:
		return readAtom(c)
	}
}

func readWrapped(c *cursor, wrapper string) (*types.Value, error) {
	c.next() // consume the reader-macro token itself
	inner, err := readForm(c)
	if err != nil {
		return nil, err
	}
	return types.NewList([]*types.Value{types.NewSym(wrapper), inner}), nil
}

// readMetaForm reads "^" followed by a metadata form and a value form,
// producing (with-meta value metadata): the metadata comes first in
// source but second in the expansion.
func readMetaForm(c *cursor) (*types.Value, error) {
	c.next() // consume "^"
	meta, err := readForm(c)
	if err != nil {
		return nil, err
	}
	value, err := readForm(c)
	if err != nil {
		return nil, err
	}
	return types.NewList([]*types.Value{types.NewSym("with-meta"), value, meta}), nil
}

func readSeq(c *cursor, open, close string, build func([]*types.Value) *types.Value) (*types.Value, error) {
	c.next() // consume the opening bracket
	items := []*types.Value{}
	for {
		t, ok := c.peek()
		if !ok {
			return nil, fmt.Errorf("EOF")
		}
		if t == close {
			c.next()
			return build(items), nil
		}
		item, err := readForm(c)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
}

func readMapForm(c *cursor) (*types.Value, error) {
	c.next() // consume "{"
	items := []*types.Value{}
	for {
		t, ok := c.peek()
		if !ok {
			return nil, fmt.Errorf("EOF")
		}
		if t == "}" {
			c.next()
			if len(items)%2 != 0 {
				return nil, fmt.Errorf("map literal must have an even number of forms")
			}
			return types.NewMap(items), nil
		}
		item, err := readForm(c)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
}

func readAtom(c *cursor) (*types.Value, error) {
	t, ok := c.next()
	if !ok {
		return nil, fmt.Errorf("EOF")
	}

	switch {
	case len(t) > 0 && t[0] == '"':
		s, err := decodeString(t)
		if err != nil {
			return nil, err
		}
		return types.NewStr(s), nil

	case len(t) > 0 && t[0] == ':':
		return types.NewKw(t[1:]), nil

	case isIntToken(t):
		n, err := strconv.Atoi(t)
		if err != nil {
			return nil, fmt.Errorf("badly formatted number: %s", t)
		}
		return types.NewInt(n), nil

	case t == "nil":
		return types.Nil, nil
	case t == "true":
		return types.True, nil
	case t == "false":
		return types.False, nil

	default:
		return types.NewSym(t), nil
	}
}

// isIntToken matches spec.md's reader rule: a token is an integer only if
// it re-prints to exactly itself, ruling out malformed forms like "-" or
// "007" silently meaning something else.
func isIntToken(t string) bool {
	if t == "" {
		return false
	}
	n, err := strconv.Atoi(t)
	if err != nil {
		return false
	}
	return strconv.Itoa(n) == t
}

// decodeString strips the surrounding quotes from a raw string token and
// resolves \\, \" and \n; any other \X is reported as EOF, matching the
// teacher's original tokenizer-level handling of the same three escapes.
func decodeString(tok string) (string, error) {
	if len(tok) < 2 || tok[0] != '"' || tok[len(tok)-1] != '"' {
		return "", fmt.Errorf("EOF")
	}
	body := tok[1 : len(tok)-1]
	out := make([]byte, 0, len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			out = append(out, c)
			continue
		}
		i++
		if i >= len(body) {
			return "", fmt.Errorf("EOF")
		}
		switch body[i] {
		case '\\':
			out = append(out, '\\')
		case '"':
			out = append(out, '"')
		case 'n':
			out = append(out, '\n')
		default:
			return "", fmt.Errorf("EOF")
		}
	}
	return string(out), nil
}
