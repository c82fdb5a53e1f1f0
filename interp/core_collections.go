package interp

import "github.com/Looveh/lovisp/types"

func coreCollections() map[string]Builtin {
	return map[string]Builtin{
		"list":        builtinList,
		"list?":       predicate(func(v *types.Value) bool { return v.IsList() }),
		"vec":         builtinVec,
		"vector":      builtinVector,
		"vector?":     predicate(func(v *types.Value) bool { return v.IsVec() }),
		"sequential?": predicate(func(v *types.Value) bool { return v.IsSequential() }),
		"hash-map":    builtinHashMap,
		"map?":        predicate(func(v *types.Value) bool { return v.IsMap() }),
		"empty?":      builtinEmpty,
		"count":       builtinCount,
		"nth":         builtinNth,
		"first":       builtinFirst,
		"rest":        builtinRest,
		"cons":        builtinCons,
		"concat":      builtinConcat,
		"seq":         builtinSeq,
		"conj":        builtinConj,
	}
}

func predicate(f func(v *types.Value) bool) Builtin {
	return func(args []*types.Value) (*types.Value, error) {
		if len(args) != 1 {
			return nil, types.NewLispError("predicate expects exactly 1 argument")
		}
		return types.Bool(f(args[0])), nil
	}
}

func builtinList(args []*types.Value) (*types.Value, error) {
	return types.NewList(append([]*types.Value{}, args...)), nil
}

func builtinVector(args []*types.Value) (*types.Value, error) {
	return types.NewVec(append([]*types.Value{}, args...)), nil
}

func builtinVec(args []*types.Value) (*types.Value, error) {
	if len(args) != 1 {
		return nil, types.NewLispError("vec expects exactly 1 argument")
	}
	if args[0] == types.Nil {
		return types.NewVec(nil), nil
	}
	if !args[0].IsSequential() {
		return nil, types.NewLispError("vec expects a list or vector")
	}
	return types.NewVec(append([]*types.Value{}, args[0].Seq()...)), nil
}

func builtinHashMap(args []*types.Value) (*types.Value, error) {
	if len(args)%2 != 0 {
		return nil, types.NewLispError("hash-map expects an even number of arguments")
	}
	return types.NewMap(append([]*types.Value{}, args...)), nil
}

func builtinEmpty(args []*types.Value) (*types.Value, error) {
	if len(args) != 1 {
		return nil, types.NewLispError("empty? expects exactly 1 argument")
	}
	v := args[0]
	if v == types.Nil {
		return types.True, nil
	}
	switch {
	case v.IsSequential():
		return types.Bool(len(v.Seq()) == 0), nil
	case v.IsMap():
		return types.Bool(len(*v.MapPairs) == 0), nil
	default:
		return nil, types.NewLispError("empty? expects a list, vector or map")
	}
}

func builtinCount(args []*types.Value) (*types.Value, error) {
	if len(args) != 1 {
		return nil, types.NewLispError("count expects exactly 1 argument")
	}
	v := args[0]
	switch {
	case v == types.Nil:
		return types.NewInt(0), nil
	case v.IsSequential():
		return types.NewInt(len(v.Seq())), nil
	case v.IsMap():
		return types.NewInt(len(*v.MapPairs) / 2), nil
	default:
		return nil, types.NewLispError("count expects a list, vector, map or nil")
	}
}

func builtinNth(args []*types.Value) (*types.Value, error) {
	if len(args) != 2 || !args[0].IsSequential() || !args[1].IsNumber() {
		return nil, types.NewLispError("nth expects a sequence and an index")
	}
	seq := args[0].Seq()
	idx := *args[1].Number
	if idx < 0 || idx >= len(seq) {
		return nil, types.NewLispError("nth: index %d out of range", idx)
	}
	return seq[idx], nil
}

func builtinFirst(args []*types.Value) (*types.Value, error) {
	if len(args) != 1 {
		return nil, types.NewLispError("first expects exactly 1 argument")
	}
	if args[0] == types.Nil {
		return types.Nil, nil
	}
	if !args[0].IsSequential() {
		return nil, types.NewLispError("first expects a list or vector")
	}
	seq := args[0].Seq()
	if len(seq) == 0 {
		return types.Nil, nil
	}
	return seq[0], nil
}

func builtinRest(args []*types.Value) (*types.Value, error) {
	if len(args) != 1 {
		return nil, types.NewLispError("rest expects exactly 1 argument")
	}
	if args[0] == types.Nil {
		return types.NewList(nil), nil
	}
	if !args[0].IsSequential() {
		return nil, types.NewLispError("rest expects a list or vector")
	}
	seq := args[0].Seq()
	if len(seq) == 0 {
		return types.NewList(nil), nil
	}
	return types.NewList(append([]*types.Value{}, seq[1:]...)), nil
}

func builtinCons(args []*types.Value) (*types.Value, error) {
	if len(args) != 2 || !(args[1].IsSequential() || args[1] == types.Nil) {
		return nil, types.NewLispError("cons expects a value and a list or vector")
	}
	var tail []*types.Value
	if args[1] != types.Nil {
		tail = args[1].Seq()
	}
	out := append([]*types.Value{args[0]}, tail...)
	return types.NewList(out), nil
}

func builtinConcat(args []*types.Value) (*types.Value, error) {
	out := []*types.Value{}
	for _, a := range args {
		if a == types.Nil {
			continue
		}
		if !a.IsSequential() {
			return nil, types.NewLispError("concat expects lists or vectors")
		}
		out = append(out, a.Seq()...)
	}
	return types.NewList(out), nil
}

func builtinSeq(args []*types.Value) (*types.Value, error) {
	if len(args) != 1 {
		return nil, types.NewLispError("seq expects exactly 1 argument")
	}
	v := args[0]
	switch {
	case v == types.Nil:
		return types.Nil, nil
	case v.IsSequential():
		if len(v.Seq()) == 0 {
			return types.Nil, nil
		}
		return types.NewList(append([]*types.Value{}, v.Seq()...)), nil
	case v.IsStr():
		if *v.Str == "" {
			return types.Nil, nil
		}
		chars := make([]*types.Value, 0, len(*v.Str))
		for _, c := range []byte(*v.Str) {
			chars = append(chars, types.NewStr(string(c)))
		}
		return types.NewList(chars), nil
	default:
		return nil, types.NewLispError("seq expects a list, vector, string or nil")
	}
}

func builtinConj(args []*types.Value) (*types.Value, error) {
	if len(args) < 1 || !args[0].IsSequential() {
		return nil, types.NewLispError("conj expects a list or vector followed by values")
	}
	coll, extra := args[0], args[1:]
	if coll.IsVec() {
		out := append([]*types.Value{}, coll.Seq()...)
		out = append(out, extra...)
		return types.NewVec(out), nil
	}
	out := append([]*types.Value{}, coll.Seq()...)
	for _, x := range extra {
		out = append([]*types.Value{x}, out...)
	}
	return types.NewList(out), nil
}
