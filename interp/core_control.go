package interp

import "github.com/Looveh/lovisp/types"

func coreControl() map[string]Builtin {
	return map[string]Builtin{
		"throw": builtinThrow,
		"apply": builtinApply,
		"map":   builtinMap,
	}
}

func builtinThrow(args []*types.Value) (*types.Value, error) {
	if len(args) != 1 {
		return nil, types.NewLispError("throw expects exactly 1 argument")
	}
	return nil, types.NewThrownValue(args[0])
}

// builtinApply flattens exactly one level of its final argument before
// calling: (apply f a b (list c d)) calls f with (a b c d).
func builtinApply(args []*types.Value) (*types.Value, error) {
	if len(args) < 2 || !args[0].IsFn() {
		return nil, types.NewLispError("apply expects a function and at least one argument")
	}
	last := args[len(args)-1]
	if !last.IsSequential() {
		return nil, types.NewLispError("apply expects its final argument to be a list or vector")
	}
	callArgs := append([]*types.Value{}, args[1:len(args)-1]...)
	callArgs = append(callArgs, last.Seq()...)
	return Apply(args[0], callArgs)
}

func builtinMap(args []*types.Value) (*types.Value, error) {
	if len(args) != 2 || !args[0].IsFn() || !args[1].IsSequential() {
		return nil, types.NewLispError("map expects a function and a list or vector")
	}
	seq := args[1].Seq()
	out := make([]*types.Value, 0, len(seq))
	for _, x := range seq {
		v, err := Apply(args[0], []*types.Value{x})
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return types.NewList(out), nil
}
