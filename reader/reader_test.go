package reader

import (
	"testing"

	"github.com/Looveh/lovisp/printer"
	"github.com/Looveh/lovisp/types"
)

func readOrFatal(t *testing.T, src string) *types.Value {
	t.Helper()
	v, err := ReadStr(src)
	if err != nil {
		t.Fatalf("ReadStr(%q): %v", src, err)
	}
	return v
}

func TestReadPrintRoundTrip(t *testing.T) {
	tests := []string{
		"nil", "true", "false", "0", "-5", "42",
		`"hello"`, `"line\nbreak"`,
		"sym", ":kw",
		"(1 2 3)", "[1 2 3]", "{:a 1 :b 2}",
		"(1 (2 3) [4 5])",
	}
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			v := readOrFatal(t, src)
			got := printer.Print(v, true)
			if got != src {
				t.Errorf("round trip: read(%q) -> print = %q, want %q", src, got, src)
			}
		})
	}
}

func TestReadAtoms(t *testing.T) {
	if v := readOrFatal(t, "nil"); v != types.Nil {
		t.Errorf("nil did not read to the Nil singleton: %#v", v)
	}
	if v := readOrFatal(t, "true"); v != types.True {
		t.Errorf("true did not read to the True singleton")
	}
	if v := readOrFatal(t, "false"); v != types.False {
		t.Errorf("false did not read to the False singleton")
	}
}

func TestReadIntegerTokenRule(t *testing.T) {
	// -0 and 007 don't re-print to themselves, so they read as symbols,
	// not numbers, per the reader's canonical-re-print rule.
	v := readOrFatal(t, "-0")
	if !v.IsSym() {
		t.Errorf("-0 should read as a symbol, got %#v", v)
	}
	v = readOrFatal(t, "007")
	if !v.IsSym() {
		t.Errorf("007 should read as a symbol, got %#v", v)
	}
	v = readOrFatal(t, "-5")
	if !v.IsNumber() || *v.Number != -5 {
		t.Errorf("-5 should read as the integer -5, got %#v", v)
	}
}

func TestReadQuoteFamily(t *testing.T) {
	tests := map[string]string{
		"'a":    "(quote a)",
		"`a":    "(quasiquote a)",
		"~a":    "(unquote a)",
		"~@a":   "(splice-unquote a)",
		"@a":    "(deref a)",
		"^{:x 1} [1]": "(with-meta [1] {:x 1})",
	}
	for src, want := range tests {
		t.Run(src, func(t *testing.T) {
			v := readOrFatal(t, src)
			got := printer.Print(v, true)
			if got != want {
				t.Errorf("read(%q) printed as %q, want %q", src, got, want)
			}
		})
	}
}

func TestReadStringEscapes(t *testing.T) {
	v := readOrFatal(t, `"a\"b\\c\nd"`)
	if !v.IsStr() {
		t.Fatalf("expected a string, got %#v", v)
	}
	want := "a\"b\\c\nd"
	if *v.Str != want {
		t.Errorf("decoded string = %q, want %q", *v.Str, want)
	}
}

func TestReadKeyword(t *testing.T) {
	v := readOrFatal(t, ":foo")
	if !v.IsKw() || *v.Kw != "foo" {
		t.Errorf("expected keyword foo, got %#v", v)
	}
}

func TestReadMapOddFormsIsError(t *testing.T) {
	if _, err := ReadStr("{:a}"); err == nil {
		t.Errorf("expected an error reading a map literal with an odd number of forms")
	}
}

func TestReadUnterminatedFormIsError(t *testing.T) {
	cases := []string{"(1 2", "[1 2", `"unterminated`, "{:a 1"}
	for _, src := range cases {
		if _, err := ReadStr(src); err == nil {
			t.Errorf("ReadStr(%q): expected an EOF error, got none", src)
		}
	}
}

func TestReadUnexpectedCloseIsError(t *testing.T) {
	cases := []string{")", "]", "}"}
	for _, src := range cases {
		if _, err := ReadStr(src); err == nil {
			t.Errorf("ReadStr(%q): expected an error, got none", src)
		}
	}
}

func TestReadCommentsAreSkipped(t *testing.T) {
	v := readOrFatal(t, "; a comment\n42 ; trailing")
	if !v.IsNumber() || *v.Number != 42 {
		t.Errorf("expected 42 past the leading comment, got %#v", v)
	}
}
