package interp

import (
	"time"

	"github.com/Looveh/lovisp/types"
)

// Builtin is the signature every host primitive satisfies: (*types.Value
// wraps it directly for Native).
type Builtin = func(args []*types.Value) (*types.Value, error)

// NewRootEnv builds the root environment with every built-in bound in, plus
// *host-language* and *ARGV* (the remaining CLI arguments, per spec.md §6).
func NewRootEnv(argv []string) (*types.Env, error) {
	root, err := types.NewEnv(nil, nil, nil)
	if err != nil {
		return nil, err
	}
	for name, fn := range coreBuiltins(root) {
		root.Set(name, &types.Value{Native: fn})
	}

	argvValues := make([]*types.Value, len(argv))
	for i, a := range argv {
		argvValues[i] = types.NewStr(a)
	}
	root.Set("*ARGV*", types.NewList(argvValues))
	root.Set("*host-language*", types.NewStr("go"))
	return root, nil
}

// coreBuiltins assembles the fixed primitive table. It is split across
// coreArith, corePrint, coreCollections, coreMapOps, coreAtom, coreControl,
// corePred, coreCtor and coreMeta (one file per concern, the way the rest of
// the retrieved pack splits its built-ins across builtin_*.go files) plus the
// reader-bridge, I/O and time built-ins registered directly here, next to
// eval, which needs the root env itself.
func coreBuiltins(root *types.Env) map[string]Builtin {
	out := map[string]Builtin{
		"read-string": builtinReadString,
		"slurp":       builtinSlurp,
		"time-ms":     builtinTimeMs,
		"readline":    builtinReadline,
		"eval": func(args []*types.Value) (*types.Value, error) {
			if len(args) != 1 {
				return nil, types.NewLispError("eval expects exactly 1 argument")
			}
			return Eval(args[0], root)
		},
	}
	merge(out, coreArith())
	merge(out, corePrint())
	merge(out, coreCollections())
	merge(out, coreMapOps())
	merge(out, coreAtom())
	merge(out, coreControl())
	merge(out, corePred())
	merge(out, coreCtor())
	merge(out, coreMeta())
	return out
}

func merge(dst, src map[string]Builtin) {
	for k, v := range src {
		dst[k] = v
	}
}

func builtinTimeMs(args []*types.Value) (*types.Value, error) {
	return types.NewInt(int(time.Now().UnixMilli())), nil
}
