package types

import "fmt"

// LispError is a host-detected failure: a bad arity, a type mismatch, an
// out-of-range index, division by zero, an unbound symbol. It carries only
// a message, unlike ThrownValue below.
type LispError struct {
	Message string
}

func NewLispError(format string, args ...interface{}) *LispError {
	return &LispError{Message: fmt.Sprintf(format, args...)}
}

func (e *LispError) Error() string {
	return e.Message
}

// NotFoundError builds the exact lookup-failure message spec.md §4.4/§7
// requires: '<name>' not found.
func NotFoundError(name string) *LispError {
	return NewLispError("'%s' not found", name)
}

// ThrownValue wraps an arbitrary Value raised by the in-language throw
// primitive. try*/catch* recovers it and binds the catch variable to the
// original Payload rather than to a string description.
type ThrownValue struct {
	Payload *Value
}

func NewThrownValue(v *Value) *ThrownValue {
	return &ThrownValue{Payload: v}
}

func (e *ThrownValue) Error() string {
	return fmt.Sprintf("uncaught exception: %s", describe(e.Payload))
}

// describe gives a best-effort, printer-independent rendering for error
// messages; the real readable rendering lives in the printer package,
// which cannot be imported here without a cycle.
func describe(v *Value) string {
	switch {
	case v == nil:
		return "nil"
	case v.Str != nil:
		return *v.Str
	case v.Sym != nil:
		return *v.Sym
	case v.Number != nil:
		return fmt.Sprintf("%d", *v.Number)
	default:
		return "<value>"
	}
}

// CatchPayload returns the value a catch* clause should bind to: the
// original thrown value for a language-level throw, otherwise a Str
// wrapping the host error's message.
func CatchPayload(err error) *Value {
	if tv, ok := err.(*ThrownValue); ok {
		return tv.Payload
	}
	return NewStr(err.Error())
}
