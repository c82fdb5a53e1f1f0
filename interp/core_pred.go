package interp

import "github.com/Looveh/lovisp/types"

func corePred() map[string]Builtin {
	return map[string]Builtin{
		"nil?":     predicate(func(v *types.Value) bool { return v == types.Nil }),
		"true?":    predicate(func(v *types.Value) bool { return v == types.True }),
		"false?":   predicate(func(v *types.Value) bool { return v == types.False }),
		"symbol?":  predicate(func(v *types.Value) bool { return v.IsSym() }),
		"keyword?": predicate(func(v *types.Value) bool { return v.IsKw() }),
		"string?":  predicate(func(v *types.Value) bool { return v.IsStr() }),
		"number?":  predicate(func(v *types.Value) bool { return v.IsNumber() }),
		"fn?":      predicate(func(v *types.Value) bool { return v.IsFn() }),
	}
}
