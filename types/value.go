// Package types holds the runtime value representation shared by the
// reader, printer, evaluator and built-ins: a single Value struct with one
// optional field per variant, plus the environment and error types that
// travel alongside it.
package types

const (
	specialNil = iota + 1
	specialTrue
	specialFalse
)

// Value is the tagged union described by the data model: exactly one of
// its variant fields is set (Special covers Nil/true/false, which need no
// payload). List, Vec, MapPairs and the callable fields additionally carry
// an optional Meta value.
type Value struct {
	Special int

	Number *int
	Str    *string
	Sym    *string
	Kw     *string

	List *[]*Value
	Vec  *[]*Value

	// MapPairs stores a map as a flat, order-preserving key/value slice
	// (key0, val0, key1, val1, ...). Keys are compared structurally, so a
	// linear scan is enough and there is no hashing concern: valid keys are
	// Str, Kw, Sym, Int, Nil or Bool, all cheap to compare.
	MapPairs *[]*Value

	// Atom marks its owning Value as a reference cell; the cell's current
	// contents live in this field and are rebound in place by reset!/swap!.
	// A *Value is only ever "the atom" through identity, never through a
	// copy, so mutating Atom here is visible to every holder of the cell.
	Atom *Value

	Native  func(args []*Value) (*Value, error)
	Closure *Closure

	Meta *Value
}

// Closure is a user-defined function: a parameter list, a body AST and the
// environment it closed over at fn* time. IsMacro is flipped exactly once,
// by defmacro!.
// Params may include the literal "&" marker described by NewEnv; there
// is no separate rest-parameter field because NewEnv already understands
// the marker directly.
type Closure struct {
	Env     *Env
	Params  []string
	Body    *Value
	IsMacro bool
}

var (
	Nil   = &Value{Special: specialNil}
	True  = &Value{Special: specialTrue}
	False = &Value{Special: specialFalse}
)

func NewInt(n int) *Value      { return &Value{Number: &n} }
func NewStr(s string) *Value   { return &Value{Str: &s} }
func NewSym(s string) *Value   { return &Value{Sym: &s} }
func NewKw(s string) *Value    { return &Value{Kw: &s} }
func NewList(xs []*Value) *Value {
	if xs == nil {
		xs = []*Value{}
	}
	return &Value{List: &xs}
}
func NewVec(xs []*Value) *Value {
	if xs == nil {
		xs = []*Value{}
	}
	return &Value{Vec: &xs}
}
func NewMap(pairs []*Value) *Value {
	if pairs == nil {
		pairs = []*Value{}
	}
	return &Value{MapPairs: &pairs}
}

func Bool(b bool) *Value {
	if b {
		return True
	}
	return False
}

// Truthy implements the language's notion of falsehood: everything but
// nil and false is truthy.
func Truthy(v *Value) bool {
	return v != Nil && v != False
}

func (v *Value) IsNil() bool    { return v == Nil }
func (v *Value) IsList() bool   { return v.List != nil }
func (v *Value) IsVec() bool    { return v.Vec != nil }
func (v *Value) IsMap() bool    { return v.MapPairs != nil }
func (v *Value) IsAtom() bool   { return v.Atom != nil }
func (v *Value) IsSym() bool    { return v.Sym != nil }
func (v *Value) IsKw() bool     { return v.Kw != nil }
func (v *Value) IsStr() bool    { return v.Str != nil }
func (v *Value) IsNumber() bool { return v.Number != nil }
func (v *Value) IsBool() bool   { return v == True || v == False }
func (v *Value) IsFn() bool     { return v.Native != nil || v.Closure != nil }
func (v *Value) IsMacro() bool  { return v.Closure != nil && v.Closure.IsMacro }

// IsSequential accepts either ordered-sequence variant, list or vector.
func (v *Value) IsSequential() bool { return v.IsList() || v.IsVec() }

// Seq returns the element slice shared by List and Vec, or nil if v is
// neither.
func (v *Value) Seq() []*Value {
	if v.List != nil {
		return *v.List
	}
	if v.Vec != nil {
		return *v.Vec
	}
	return nil
}

// WithMeta returns a shallow copy of v carrying the given metadata. Only
// List, Vec, Map and Fn values may carry metadata.
func (v *Value) WithMeta(meta *Value) (*Value, error) {
	if !(v.IsList() || v.IsVec() || v.IsMap() || v.IsFn()) {
		return nil, NewLispError("with-meta: value cannot carry metadata")
	}
	cp := *v
	cp.Meta = meta
	return &cp, nil
}

// GetMeta returns the stored metadata, or Nil if there is none.
func (v *Value) GetMeta() *Value {
	if v.Meta == nil {
		return Nil
	}
	return v.Meta
}

// Equal implements the structural equality law: List and Vec compare
// cross-variant by pairwise element equality, Map compares by matching
// keysets with pairwise-equal values, everything else (atoms, functions)
// compares by identity.
func Equal(x, y *Value) bool {
	if x == y {
		return true
	}
	if x == nil || y == nil {
		return false
	}
	switch {
	case x.Number != nil && y.Number != nil:
		return *x.Number == *y.Number
	case x.Str != nil && y.Str != nil:
		return *x.Str == *y.Str
	case x.Sym != nil && y.Sym != nil:
		return *x.Sym == *y.Sym
	case x.Kw != nil && y.Kw != nil:
		return *x.Kw == *y.Kw
	case x.IsSequential() && y.IsSequential():
		xs, ys := x.Seq(), y.Seq()
		if len(xs) != len(ys) {
			return false
		}
		for i := range xs {
			if !Equal(xs[i], ys[i]) {
				return false
			}
		}
		return true
	case x.IsMap() && y.IsMap():
		return mapEqual(x, y)
	default:
		return false
	}
}

func mapEqual(x, y *Value) bool {
	xp, yp := *x.MapPairs, *y.MapPairs
	if len(xp) != len(yp) {
		return false
	}
	for i := 0; i < len(xp); i += 2 {
		yv, ok := mapLookup(yp, xp[i])
		if !ok || !Equal(xp[i+1], yv) {
			return false
		}
	}
	return true
}

func mapLookup(pairs []*Value, key *Value) (*Value, bool) {
	for i := 0; i < len(pairs); i += 2 {
		if Equal(pairs[i], key) {
			return pairs[i+1], true
		}
	}
	return nil, false
}

// MapGet looks up key in m (a Map value), returning Nil when absent.
func MapGet(m *Value, key *Value) *Value {
	if m == nil || !m.IsMap() {
		return Nil
	}
	if v, ok := mapLookup(*m.MapPairs, key); ok {
		return v
	}
	return Nil
}

// MapContains reports whether key is present in m.
func MapContains(m *Value, key *Value) bool {
	if m == nil || !m.IsMap() {
		return false
	}
	_, ok := mapLookup(*m.MapPairs, key)
	return ok
}

// MapAssoc returns a shallow copy of m with each key/value pair in kvs
// added or overwritten, preserving m's original entries unchanged.
func MapAssoc(m *Value, kvs []*Value) (*Value, error) {
	if len(kvs)%2 != 0 {
		return nil, NewLispError("assoc: odd number of arguments")
	}
	out := append([]*Value{}, (*m.MapPairs)...)
	for i := 0; i < len(kvs); i += 2 {
		out = mapPut(out, kvs[i], kvs[i+1])
	}
	return NewMap(out), nil
}

func mapPut(pairs []*Value, key, val *Value) []*Value {
	for i := 0; i < len(pairs); i += 2 {
		if Equal(pairs[i], key) {
			pairs[i+1] = val
			return pairs
		}
	}
	return append(pairs, key, val)
}

// MapDissoc returns a shallow copy of m with the given keys removed.
func MapDissoc(m *Value, keys []*Value) *Value {
	out := []*Value{}
	for i := 0; i < len(*m.MapPairs); i += 2 {
		k, v := (*m.MapPairs)[i], (*m.MapPairs)[i+1]
		remove := false
		for _, rk := range keys {
			if Equal(k, rk) {
				remove = true
				break
			}
		}
		if !remove {
			out = append(out, k, v)
		}
	}
	return NewMap(out)
}

// MapKeys and MapVals return the map's keys/values as a List, in storage
// order (the data model requires no particular order).
func MapKeys(m *Value) *Value {
	out := []*Value{}
	for i := 0; i < len(*m.MapPairs); i += 2 {
		out = append(out, (*m.MapPairs)[i])
	}
	return NewList(out)
}

func MapVals(m *Value) *Value {
	out := []*Value{}
	for i := 1; i < len(*m.MapPairs); i += 2 {
		out = append(out, (*m.MapPairs)[i])
	}
	return NewList(out)
}
