package interp

import "github.com/Looveh/lovisp/types"

func coreCtor() map[string]Builtin {
	return map[string]Builtin{
		"symbol":  builtinSymbol,
		"keyword": builtinKeyword,
	}
}

func builtinSymbol(args []*types.Value) (*types.Value, error) {
	if len(args) != 1 || !args[0].IsStr() {
		return nil, types.NewLispError("symbol expects a string")
	}
	return types.NewSym(*args[0].Str), nil
}

// builtinKeyword is idempotent on an existing keyword, and otherwise
// expects a string.
func builtinKeyword(args []*types.Value) (*types.Value, error) {
	if len(args) != 1 {
		return nil, types.NewLispError("keyword expects exactly 1 argument")
	}
	if args[0].IsKw() {
		return args[0], nil
	}
	if !args[0].IsStr() {
		return nil, types.NewLispError("keyword expects a string or keyword")
	}
	return types.NewKw(*args[0].Str), nil
}
