package types

import "testing"

func TestEnvGetFindsOuterScope(t *testing.T) {
	outer, err := NewEnv(nil, nil, nil)
	if err != nil {
		t.Fatalf("NewEnv: %v", err)
	}
	outer.Set("x", NewInt(1))

	inner, err := NewEnv(outer, nil, nil)
	if err != nil {
		t.Fatalf("NewEnv: %v", err)
	}
	v, err := inner.Get("x")
	if err != nil {
		t.Fatalf("Get(x): %v", err)
	}
	if !Equal(v, NewInt(1)) {
		t.Errorf("Get(x) = %#v, want 1", v)
	}
}

func TestEnvGetUnboundIsNotFoundError(t *testing.T) {
	env, _ := NewEnv(nil, nil, nil)
	_, err := env.Get("nope")
	if err == nil {
		t.Fatalf("expected an error for an unbound symbol")
	}
	if err.Error() != "'nope' not found" {
		t.Errorf("error = %q, want %q", err.Error(), "'nope' not found")
	}
}

func TestEnvSetShadowsOuter(t *testing.T) {
	outer, _ := NewEnv(nil, nil, nil)
	outer.Set("x", NewInt(1))
	inner, _ := NewEnv(outer, nil, nil)
	inner.Set("x", NewInt(2))

	innerVal, _ := inner.Get("x")
	outerVal, _ := outer.Get("x")
	if !Equal(innerVal, NewInt(2)) {
		t.Errorf("inner x = %#v, want 2", innerVal)
	}
	if !Equal(outerVal, NewInt(1)) {
		t.Errorf("outer x = %#v, want 1 (shadowing must not mutate the outer frame)", outerVal)
	}
}

func TestEnvSetRootWritesThroughToTop(t *testing.T) {
	root, _ := NewEnv(nil, nil, nil)
	mid, _ := NewEnv(root, nil, nil)
	leaf, _ := NewEnv(mid, nil, nil)

	leaf.SetRoot("g", NewInt(42))

	if v := root.Find("g"); v == nil || !Equal(v, NewInt(42)) {
		t.Errorf("SetRoot from a leaf frame did not land in the root frame")
	}
	if v := leaf.Find("g"); v == nil || !Equal(v, NewInt(42)) {
		t.Errorf("the root binding should be visible from a leaf frame via Find")
	}
}

func TestEnvNewBindsRestParameter(t *testing.T) {
	env, err := NewEnv(nil, []string{"a", "&", "rest"},
		[]*Value{NewInt(1), NewInt(2), NewInt(3)})
	if err != nil {
		t.Fatalf("NewEnv: %v", err)
	}
	a, _ := env.Get("a")
	if !Equal(a, NewInt(1)) {
		t.Errorf("a = %#v, want 1", a)
	}
	rest, _ := env.Get("rest")
	want := NewList([]*Value{NewInt(2), NewInt(3)})
	if !Equal(rest, want) {
		t.Errorf("rest = %#v, want %#v", rest, want)
	}
}

func TestEnvNewRestParameterWithNoExtraArgs(t *testing.T) {
	env, err := NewEnv(nil, []string{"&", "rest"}, nil)
	if err != nil {
		t.Fatalf("NewEnv: %v", err)
	}
	rest, _ := env.Get("rest")
	if !Equal(rest, NewList(nil)) {
		t.Errorf("rest = %#v, want an empty list", rest)
	}
}

func TestEnvNewTooFewArgsIsError(t *testing.T) {
	if _, err := NewEnv(nil, []string{"a", "b"}, []*Value{NewInt(1)}); err == nil {
		t.Errorf("expected an error when fewer expressions than parameters are given")
	}
}
