package types

import "testing"

func TestEqualAcrossSequenceVariants(t *testing.T) {
	list := NewList([]*Value{NewInt(1), NewInt(2), NewInt(3)})
	vec := NewVec([]*Value{NewInt(1), NewInt(2), NewInt(3)})
	if !Equal(list, vec) {
		t.Errorf("(list 1 2 3) should equal [1 2 3], got unequal")
	}

	other := NewVec([]*Value{NewInt(1), NewInt(2)})
	if Equal(list, other) {
		t.Errorf("sequences of different length should not be equal")
	}
}

func TestEqualScalars(t *testing.T) {
	if !Equal(NewInt(5), NewInt(5)) {
		t.Errorf("equal ints should compare equal")
	}
	if Equal(NewInt(5), NewInt(6)) {
		t.Errorf("unequal ints should not compare equal")
	}
	if !Equal(NewStr("a"), NewStr("a")) {
		t.Errorf("equal strings should compare equal")
	}
	if Equal(NewStr("a"), NewSym("a")) {
		t.Errorf("a string and a symbol with the same text must not be equal")
	}
	if Equal(NewKw("a"), NewSym("a")) {
		t.Errorf("a keyword and a symbol with the same text must not be equal")
	}
	if !Equal(Nil, Nil) || !Equal(True, True) {
		t.Errorf("singletons should be equal to themselves")
	}
	if Equal(Nil, False) {
		t.Errorf("nil and false must not be equal")
	}
}

func TestEqualMaps(t *testing.T) {
	a := NewMap([]*Value{NewKw("x"), NewInt(1), NewKw("y"), NewInt(2)})
	b := NewMap([]*Value{NewKw("y"), NewInt(2), NewKw("x"), NewInt(1)})
	if !Equal(a, b) {
		t.Errorf("maps with the same entries in different orders should be equal")
	}

	c := NewMap([]*Value{NewKw("x"), NewInt(1)})
	if Equal(a, c) {
		t.Errorf("maps with different entry counts should not be equal")
	}
}

func TestMapAssocDissocGetContains(t *testing.T) {
	m := NewMap(nil)
	m2, err := MapAssoc(m, []*Value{NewKw("a"), NewInt(1)})
	if err != nil {
		t.Fatalf("MapAssoc: %v", err)
	}
	if !MapContains(m2, NewKw("a")) {
		t.Errorf("expected key :a to be present after assoc")
	}
	if MapContains(m, NewKw("a")) {
		t.Errorf("assoc must not mutate the original map")
	}
	if got := MapGet(m2, NewKw("a")); !Equal(got, NewInt(1)) {
		t.Errorf("MapGet(:a) = %#v, want 1", got)
	}
	if got := MapGet(m2, NewKw("missing")); got != Nil {
		t.Errorf("MapGet of a missing key should be Nil, got %#v", got)
	}

	m3 := MapDissoc(m2, []*Value{NewKw("a")})
	if MapContains(m3, NewKw("a")) {
		t.Errorf("expected key :a to be gone after dissoc")
	}
	if !MapContains(m2, NewKw("a")) {
		t.Errorf("dissoc must not mutate its argument")
	}
}

func TestMapAssocOddArgsIsError(t *testing.T) {
	if _, err := MapAssoc(NewMap(nil), []*Value{NewKw("a")}); err == nil {
		t.Errorf("expected an error for an odd number of assoc arguments")
	}
}

func TestWithMetaAndGetMeta(t *testing.T) {
	v := NewList([]*Value{NewInt(1)})
	meta := NewMap([]*Value{NewKw("doc"), NewStr("hi")})
	tagged, err := v.WithMeta(meta)
	if err != nil {
		t.Fatalf("WithMeta: %v", err)
	}
	if !Equal(tagged.GetMeta(), meta) {
		t.Errorf("GetMeta did not return the metadata that was attached")
	}
	if !Equal(v.GetMeta(), Nil) {
		t.Errorf("the original value must be unaffected by WithMeta")
	}
}

func TestWithMetaRejectsScalars(t *testing.T) {
	if _, err := NewInt(1).WithMeta(NewInt(2)); err == nil {
		t.Errorf("expected an error attaching metadata to a number")
	}
}

func TestTruthy(t *testing.T) {
	truthy := []*Value{True, NewInt(0), NewStr(""), NewList(nil)}
	for _, v := range truthy {
		if !Truthy(v) {
			t.Errorf("%#v should be truthy", v)
		}
	}
	falsy := []*Value{Nil, False}
	for _, v := range falsy {
		if Truthy(v) {
			t.Errorf("%#v should not be truthy", v)
		}
	}
}
