package interp

import (
	"github.com/Looveh/lovisp/printer"
	"github.com/Looveh/lovisp/types"
)

// Apply calls fn (a closure or a host primitive) with args fully evaluated
// and returns its result. Unlike the trampoline case inside Eval, this
// recurses rather than looping in place — it's used by macro expansion and
// by higher-order built-ins (map, apply, swap!), none of which are in tail
// position with respect to the caller's own trampoline.
func Apply(fn *types.Value, args []*types.Value) (*types.Value, error) {
	if fn.Closure != nil {
		newEnv, err := types.NewEnv(fn.Closure.Env, fn.Closure.Params, args)
		if err != nil {
			return nil, err
		}
		return Eval(fn.Closure.Body, newEnv)
	}
	if fn.Native != nil {
		return fn.Native(args)
	}
	return nil, types.NewLispError("cannot call non-function: %s", printer.Print(fn, true))
}
