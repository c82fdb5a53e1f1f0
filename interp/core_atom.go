package interp

import "github.com/Looveh/lovisp/types"

func coreAtom() map[string]Builtin {
	return map[string]Builtin{
		"atom":   builtinAtom,
		"atom?":  predicate(func(v *types.Value) bool { return v.IsAtom() }),
		"deref":  builtinDeref,
		"reset!": builtinReset,
		"swap!":  builtinSwap,
	}
}

func builtinAtom(args []*types.Value) (*types.Value, error) {
	if len(args) != 1 {
		return nil, types.NewLispError("atom expects exactly 1 argument")
	}
	return &types.Value{Atom: args[0]}, nil
}

func builtinDeref(args []*types.Value) (*types.Value, error) {
	if len(args) != 1 || !args[0].IsAtom() {
		return nil, types.NewLispError("deref expects an atom")
	}
	return args[0].Atom, nil
}

func builtinReset(args []*types.Value) (*types.Value, error) {
	if len(args) != 2 || !args[0].IsAtom() {
		return nil, types.NewLispError("reset! expects an atom and a value")
	}
	args[0].Atom = args[1]
	return args[1], nil
}

// builtinSwap applies its function argument to the atom's current value
// plus any extra arguments, stores the result, and returns it. The
// function may be a closure or a host primitive; both are normalized
// through Apply.
func builtinSwap(args []*types.Value) (*types.Value, error) {
	if len(args) < 2 || !args[0].IsAtom() || !args[1].IsFn() {
		return nil, types.NewLispError("swap! expects an atom and a function")
	}
	atom, fn := args[0], args[1]
	callArgs := append([]*types.Value{atom.Atom}, args[2:]...)
	result, err := Apply(fn, callArgs)
	if err != nil {
		return nil, err
	}
	atom.Atom = result
	return result, nil
}
