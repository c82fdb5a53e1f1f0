// Package stdlib embeds the bootstrap standard library source: surface
// syntax, loaded into the root environment at startup through the
// evaluator itself (spec.md §1's "bootstrap standard library source").
package stdlib

import _ "embed"

//go:embed core.lisp
var Source string
