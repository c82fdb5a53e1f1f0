package interp

import "github.com/Looveh/lovisp/types"

func coreMeta() map[string]Builtin {
	return map[string]Builtin{
		"meta":      builtinGetMeta,
		"with-meta": builtinWithMeta,
	}
}

func builtinGetMeta(args []*types.Value) (*types.Value, error) {
	if len(args) != 1 {
		return nil, types.NewLispError("meta expects exactly 1 argument")
	}
	return args[0].GetMeta(), nil
}

func builtinWithMeta(args []*types.Value) (*types.Value, error) {
	if len(args) != 2 {
		return nil, types.NewLispError("with-meta expects a value and a metadata value")
	}
	return args[0].WithMeta(args[1])
}
