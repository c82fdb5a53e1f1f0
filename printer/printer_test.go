package printer

import (
	"testing"

	"github.com/Looveh/lovisp/types"
)

func TestPrintScalars(t *testing.T) {
	tests := []struct {
		v    *types.Value
		want string
	}{
		{types.Nil, "nil"},
		{types.True, "true"},
		{types.False, "false"},
		{types.NewInt(42), "42"},
		{types.NewInt(-7), "-7"},
		{types.NewSym("foo"), "foo"},
		{types.NewKw("foo"), ":foo"},
	}
	for _, tt := range tests {
		if got := Print(tt.v, true); got != tt.want {
			t.Errorf("Print(%#v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestPrintStringReadableVsRaw(t *testing.T) {
	v := types.NewStr("a\"b\\c\nd")
	if got, want := Print(v, true), `"a\"b\\c\nd"`; got != want {
		t.Errorf("readable Print = %q, want %q", got, want)
	}
	if got, want := Print(v, false), "a\"b\\c\nd"; got != want {
		t.Errorf("non-readable Print = %q, want %q", got, want)
	}
}

func TestPrintCollections(t *testing.T) {
	list := types.NewList([]*types.Value{types.NewInt(1), types.NewInt(2)})
	if got, want := Print(list, true), "(1 2)"; got != want {
		t.Errorf("Print(list) = %q, want %q", got, want)
	}

	vec := types.NewVec([]*types.Value{types.NewInt(1), types.NewInt(2)})
	if got, want := Print(vec, true), "[1 2]"; got != want {
		t.Errorf("Print(vec) = %q, want %q", got, want)
	}

	m := types.NewMap([]*types.Value{types.NewKw("a"), types.NewInt(1)})
	if got, want := Print(m, true), "{:a 1}"; got != want {
		t.Errorf("Print(map) = %q, want %q", got, want)
	}
}

func TestPrintAtom(t *testing.T) {
	a := &types.Value{Atom: types.NewInt(5)}
	if got, want := Print(a, true), "(atom 5)"; got != want {
		t.Errorf("Print(atom) = %q, want %q", got, want)
	}
}

func TestPrintFn(t *testing.T) {
	native := &types.Value{Native: func(args []*types.Value) (*types.Value, error) { return types.Nil, nil }}
	if got := Print(native, true); got != "#<function>" {
		t.Errorf("Print(native fn) = %q, want #<function>", got)
	}
}
