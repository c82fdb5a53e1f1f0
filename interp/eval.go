// Package interp implements the evaluator: the tail-call trampoline,
// special forms, quasiquote and macro expansion, and the built-in
// primitive table. Built-ins live alongside Eval in this package (not a
// separate one) because several of them — eval, map, apply, swap! — must
// call back into Eval (eval against the root environment, the others
// through Apply); splitting them apart would force an import cycle.
package interp

import (
	"github.com/Looveh/lovisp/printer"
	"github.com/Looveh/lovisp/types"
)

// Eval interprets ast against env. It is a loop with a trampoline: special
// forms and user-function calls in tail position mutate ast/env and loop
// instead of recursing, so deep tail recursion does not grow the Go call
// stack.
func Eval(ast *types.Value, env *types.Env) (*types.Value, error) {
	for {
		var err error
		ast, err = macroexpand(ast, env)
		if err != nil {
			return nil, err
		}

		if !ast.IsList() {
			return evalAst(ast, env)
		}

		list := *ast.List
		if len(list) == 0 {
			return ast, nil
		}

		if head := list[0]; head.IsSym() {
			switch *head.Sym {
			case "def!":
				return evalDef(list, env)

			case "defmacro!":
				return evalDefmacro(list, env)

			case "let*":
				letEnv, body, err := evalLetBindings(list, env)
				if err != nil {
					return nil, err
				}
				ast, env = body, letEnv
				continue

			case "do":
				if len(list) == 1 {
					return types.Nil, nil
				}
				if _, err := evalList(list[1:len(list)-1], env); err != nil {
					return nil, err
				}
				ast = list[len(list)-1]
				continue

			case "if":
				if len(list) < 3 {
					return nil, types.NewLispError("if expects a condition and a then-branch")
				}
				cond, err := Eval(list[1], env)
				if err != nil {
					return nil, err
				}
				if types.Truthy(cond) {
					ast = list[2]
				} else if len(list) > 3 {
					ast = list[3]
				} else {
					return types.Nil, nil
				}
				continue

			case "fn*":
				return buildClosure(list, env)

			case "quote":
				if len(list) < 2 {
					return nil, types.NewLispError("quote expects 1 argument")
				}
				return list[1], nil

			case "quasiquote":
				if len(list) < 2 {
					return nil, types.NewLispError("quasiquote expects 1 argument")
				}
				ast = quasiquote(list[1])
				continue

			case "quasiquoteexpand":
				if len(list) < 2 {
					return nil, types.NewLispError("quasiquoteexpand expects 1 argument")
				}
				return quasiquote(list[1]), nil

			case "macroexpand":
				if len(list) < 2 {
					return nil, types.NewLispError("macroexpand expects 1 argument")
				}
				return macroexpand(list[1], env)

			case "try*":
				nextAst, nextEnv, result, done, err := evalTry(list, env)
				if done {
					return result, err
				}
				ast, env = nextAst, nextEnv
				continue
			}
		}

		evaled, err := evalList(list, env)
		if err != nil {
			return nil, err
		}

		fn := evaled[0]
		if fn.Closure != nil {
			newEnv, err := types.NewEnv(fn.Closure.Env, fn.Closure.Params, evaled[1:])
			if err != nil {
				return nil, err
			}
			ast, env = fn.Closure.Body, newEnv
			continue
		}
		if fn.Native != nil {
			return fn.Native(evaled[1:])
		}
		return nil, types.NewLispError("cannot call non-function: %s", printer.Print(fn, true))
	}
}

// evalAst evaluates a non-List ast node: symbols look up in env; Vec and
// Map evaluate each child, producing a new value of the same variant;
// everything else is self-evaluating.
func evalAst(ast *types.Value, env *types.Env) (*types.Value, error) {
	switch {
	case ast.IsSym():
		return env.Get(*ast.Sym)

	case ast.IsVec():
		items, err := evalList(*ast.Vec, env)
		if err != nil {
			return nil, err
		}
		return types.NewVec(items), nil

	case ast.IsMap():
		items, err := evalList(*ast.MapPairs, env)
		if err != nil {
			return nil, err
		}
		return types.NewMap(items), nil

	default:
		return ast, nil
	}
}

// evalList evaluates each form left-to-right, matching the order required
// for do, let* and call-argument evaluation.
func evalList(forms []*types.Value, env *types.Env) ([]*types.Value, error) {
	out := make([]*types.Value, 0, len(forms))
	for _, f := range forms {
		v, err := Eval(f, env)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func evalDef(list []*types.Value, env *types.Env) (*types.Value, error) {
	if len(list) != 3 || !list[1].IsSym() {
		return nil, types.NewLispError("def! expects (def! symbol expr)")
	}
	val, err := Eval(list[2], env)
	if err != nil {
		return nil, err
	}
	env.SetRoot(*list[1].Sym, val)
	return val, nil
}

func evalDefmacro(list []*types.Value, env *types.Env) (*types.Value, error) {
	if len(list) != 3 || !list[1].IsSym() {
		return nil, types.NewLispError("defmacro! expects (defmacro! symbol expr)")
	}
	val, err := Eval(list[2], env)
	if err != nil {
		return nil, err
	}
	if val.Closure == nil {
		return nil, types.NewLispError("defmacro! expects its expression to evaluate to a closure")
	}
	macro := *val.Closure
	macro.IsMacro = true
	macroVal := &types.Value{Closure: &macro}
	env.SetRoot(*list[1].Sym, macroVal)
	return macroVal, nil
}

func evalLetBindings(list []*types.Value, env *types.Env) (*types.Env, *types.Value, error) {
	if len(list) != 3 || !list[1].IsList() {
		return nil, nil, types.NewLispError("let* expects (let* (bindings...) body)")
	}
	bindings := *list[1].List
	if len(bindings)%2 != 0 {
		return nil, nil, types.NewLispError("let* bindings must come in pairs; found %d", len(bindings))
	}

	letEnv, err := types.NewEnv(env, nil, nil)
	if err != nil {
		return nil, nil, err
	}
	for i := 0; i < len(bindings); i += 2 {
		if !bindings[i].IsSym() {
			return nil, nil, types.NewLispError("let* binding names must be symbols")
		}
		val, err := Eval(bindings[i+1], letEnv)
		if err != nil {
			return nil, nil, err
		}
		letEnv.Set(*bindings[i].Sym, val)
	}
	return letEnv, list[2], nil
}

func buildClosure(list []*types.Value, env *types.Env) (*types.Value, error) {
	if len(list) != 3 || !list[1].IsSequential() {
		return nil, types.NewLispError("fn* expects (fn* (params...) body)")
	}
	params := list[1].Seq()
	names := make([]string, 0, len(params))
	for i, p := range params {
		if !p.IsSym() {
			return nil, types.NewLispError("fn* parameters must be symbols")
		}
		name := *p.Sym
		names = append(names, name)
		if name == "&" && i != len(params)-2 {
			return nil, types.NewLispError("exactly one parameter must follow & in an fn* parameter list")
		}
	}
	return &types.Value{Closure: &types.Closure{Env: env, Params: names, Body: list[2]}}, nil
}

// evalTry implements try*/catch*. When the protected form fails and the
// second operand has the shape (catch* SYM BODY), it returns the next
// ast/env for the trampoline to continue evaluating BODY in tail position;
// otherwise it returns a final result (possibly the re-raised error).
func evalTry(list []*types.Value, env *types.Env) (*types.Value, *types.Env, *types.Value, bool, error) {
	if len(list) < 2 {
		return nil, nil, nil, true, types.NewLispError("try* expects at least a protected form")
	}
	result, err := Eval(list[1], env)
	if err == nil {
		return nil, nil, result, true, nil
	}
	if len(list) < 3 || !list[2].IsList() {
		return nil, nil, nil, true, err
	}
	catchList := *list[2].List
	if len(catchList) != 3 || !catchList[0].IsSym() || *catchList[0].Sym != "catch*" || !catchList[1].IsSym() {
		return nil, nil, nil, true, err
	}

	payload := types.CatchPayload(err)
	catchEnv, envErr := types.NewEnv(env, []string{*catchList[1].Sym}, []*types.Value{payload})
	if envErr != nil {
		return nil, nil, nil, true, envErr
	}
	return catchList[2], catchEnv, nil, false, nil
}
