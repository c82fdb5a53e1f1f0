package interp

import "github.com/Looveh/lovisp/types"

func coreMapOps() map[string]Builtin {
	return map[string]Builtin{
		"assoc":     builtinAssoc,
		"dissoc":    builtinDissoc,
		"get":       builtinGet,
		"contains?": builtinContains,
		"keys":      builtinKeys,
		"vals":      builtinVals,
	}
}

func builtinAssoc(args []*types.Value) (*types.Value, error) {
	if len(args) < 1 || !args[0].IsMap() {
		return nil, types.NewLispError("assoc expects a map")
	}
	return types.MapAssoc(args[0], args[1:])
}

func builtinDissoc(args []*types.Value) (*types.Value, error) {
	if len(args) < 1 || !args[0].IsMap() {
		return nil, types.NewLispError("dissoc expects a map")
	}
	return types.MapDissoc(args[0], args[1:]), nil
}

func builtinGet(args []*types.Value) (*types.Value, error) {
	if len(args) != 2 {
		return nil, types.NewLispError("get expects a map (or nil) and a key")
	}
	if args[0] == types.Nil {
		return types.Nil, nil
	}
	if !args[0].IsMap() {
		return nil, types.NewLispError("get expects a map or nil")
	}
	return types.MapGet(args[0], args[1]), nil
}

func builtinContains(args []*types.Value) (*types.Value, error) {
	if len(args) != 2 || !args[0].IsMap() {
		return nil, types.NewLispError("contains? expects a map and a key")
	}
	return types.Bool(types.MapContains(args[0], args[1])), nil
}

func builtinKeys(args []*types.Value) (*types.Value, error) {
	if len(args) != 1 || !args[0].IsMap() {
		return nil, types.NewLispError("keys expects a map")
	}
	return types.MapKeys(args[0]), nil
}

func builtinVals(args []*types.Value) (*types.Value, error) {
	if len(args) != 1 || !args[0].IsMap() {
		return nil, types.NewLispError("vals expects a map")
	}
	return types.MapVals(args[0]), nil
}
