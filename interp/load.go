package interp

import (
	"github.com/Looveh/lovisp/reader"
	"github.com/Looveh/lovisp/types"
)

// LoadSource wraps source the same way the bootstrap load-file function
// does — "(do <source> nil)" — and evaluates it against env. Used to load
// the embedded standard library; load-file itself does its own wrapping in
// the language and does not call this function.
func LoadSource(env *types.Env, source string) (*types.Value, error) {
	ast, err := reader.ReadStr("(do " + source + " nil)")
	if err != nil {
		return nil, err
	}
	return Eval(ast, env)
}
