package interp

import "github.com/Looveh/lovisp/types"

func coreArith() map[string]Builtin {
	return map[string]Builtin{
		"+": arithFold("+", 0, func(a, b int) int { return a + b }),
		"*": arithFold("*", 1, func(a, b int) int { return a * b }),
		"-": builtinMinus,
		"/": builtinDivide,

		"=":  builtinEqual,
		"<":  chainedCompare("<", func(a, b int) bool { return a < b }),
		"<=": chainedCompare("<=", func(a, b int) bool { return a <= b }),
		">":  chainedCompare(">", func(a, b int) bool { return a > b }),
		">=": chainedCompare(">=", func(a, b int) bool { return a >= b }),
	}
}

func asInt(v *types.Value, op string) (int, error) {
	if v == nil || v.Number == nil {
		return 0, types.NewLispError("%s: expected a number", op)
	}
	return *v.Number, nil
}

// arithFold implements the variadic left fold for + and *, where an empty
// argument list yields the operation's identity element.
func arithFold(op string, identity int, f func(a, b int) int) Builtin {
	return func(args []*types.Value) (*types.Value, error) {
		acc := identity
		for _, a := range args {
			n, err := asInt(a, op)
			if err != nil {
				return nil, err
			}
			acc = f(acc, n)
		}
		return types.NewInt(acc), nil
	}
}

func builtinMinus(args []*types.Value) (*types.Value, error) {
	if len(args) == 0 {
		return nil, types.NewLispError("- expects at least 1 argument")
	}
	acc, err := asInt(args[0], "-")
	if err != nil {
		return nil, err
	}
	for _, a := range args[1:] {
		n, err := asInt(a, "-")
		if err != nil {
			return nil, err
		}
		acc -= n
	}
	return types.NewInt(acc), nil
}

func builtinDivide(args []*types.Value) (*types.Value, error) {
	if len(args) == 0 {
		return nil, types.NewLispError("/ expects at least 1 argument")
	}
	acc, err := asInt(args[0], "/")
	if err != nil {
		return nil, err
	}
	for _, a := range args[1:] {
		n, err := asInt(a, "/")
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, types.NewLispError("/ by zero")
		}
		acc /= n // Go's integer division already truncates toward zero.
	}
	return types.NewInt(acc), nil
}

func chainedCompare(op string, ok func(a, b int) bool) Builtin {
	return func(args []*types.Value) (*types.Value, error) {
		if len(args) == 0 {
			return nil, types.NewLispError("%s expects at least 1 argument", op)
		}
		prev, err := asInt(args[0], op)
		if err != nil {
			return nil, err
		}
		for _, a := range args[1:] {
			cur, err := asInt(a, op)
			if err != nil {
				return nil, err
			}
			if !ok(prev, cur) {
				return types.False, nil
			}
			prev = cur
		}
		return types.True, nil
	}
}

func builtinEqual(args []*types.Value) (*types.Value, error) {
	if len(args) == 0 {
		return nil, types.NewLispError("= expects at least 1 argument")
	}
	for i := 1; i < len(args); i++ {
		if !types.Equal(args[i-1], args[i]) {
			return types.False, nil
		}
	}
	return types.True, nil
}
