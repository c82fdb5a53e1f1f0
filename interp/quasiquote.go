package interp

import "github.com/Looveh/lovisp/types"

// quasiquote is the pure AST-to-AST rewrite described by the spec: lists
// expand element-by-element into cons/concat calls, unquote forms splice
// their operand in directly, and everything else — including Vec, which
// this implementation deliberately leaves unrewritten rather than wrapping
// as (vec ...) — passes through except Map and Sym, which get quoted so
// they evaluate back to themselves.
func quasiquote(ast *types.Value) *types.Value {
	if ast.IsList() {
		list := *ast.List
		if len(list) == 0 {
			return ast
		}
		if head := list[0]; head.IsSym() && *head.Sym == "unquote" {
			return list[1]
		}

		elt, rest := list[0], list[1:]
		if elt.IsList() {
			eltList := *elt.List
			if len(eltList) > 0 && eltList[0].IsSym() && *eltList[0].Sym == "splice-unquote" {
				return types.NewList([]*types.Value{
					types.NewSym("concat"),
					eltList[1],
					quasiquote(types.NewList(rest)),
				})
			}
		}
		return types.NewList([]*types.Value{
			types.NewSym("cons"),
			quasiquote(elt),
			quasiquote(types.NewList(rest)),
		})
	}

	if ast.IsMap() || ast.IsSym() {
		return types.NewList([]*types.Value{types.NewSym("quote"), ast})
	}

	return ast
}
