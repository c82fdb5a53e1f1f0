package interp

import "github.com/Looveh/lovisp/types"

// isMacroCall reports whether ast is a List headed by a symbol bound in
// env to a closure with the macro flag set.
func isMacroCall(ast *types.Value, env *types.Env) bool {
	if !ast.IsList() {
		return false
	}
	list := *ast.List
	if len(list) == 0 || !list[0].IsSym() {
		return false
	}
	v := env.Find(*list[0].Sym)
	return v != nil && v.IsMacro()
}

// macroexpand repeatedly replaces ast with the result of calling the macro
// it names, stopping as soon as ast is no longer a macro call.
func macroexpand(ast *types.Value, env *types.Env) (*types.Value, error) {
	for isMacroCall(ast, env) {
		list := *ast.List
		macro, err := env.Get(*list[0].Sym)
		if err != nil {
			return nil, err
		}
		ast, err = Apply(macro, list[1:])
		if err != nil {
			return nil, err
		}
	}
	return ast, nil
}
