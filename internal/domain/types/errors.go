package types

import (
	"errors"
	"fmt"
)

// EvalErrorKind classifies an evaluation failure.
type EvalErrorKind int

const (
	// InvalidCharacters: the input contains a symbol outside the allowed set.
	InvalidCharacters EvalErrorKind = iota + 1
	// EvaluationFailed: the input passes the character gate but is not valid arithmetic.
	EvaluationFailed
	// NonFinite: the arithmetic is valid but the result is infinite or NaN.
	NonFinite
)

var (
	ErrInvalidCharacters = errors.New("invalid characters")
	ErrEvaluationFailed  = errors.New("evaluation failed")
	ErrNonFinite         = errors.New("non-finite result")
)

// String returns the snake_case name used on the wire.
func (k EvalErrorKind) String() string {
	switch k {
	case InvalidCharacters:
		return "invalid_characters"
	case EvaluationFailed:
		return "evaluation_failed"
	case NonFinite:
		return "non_finite"
	default:
		return "unknown"
	}
}

// ParseEvalErrorKind is the inverse of EvalErrorKind.String.
func ParseEvalErrorKind(s string) (EvalErrorKind, bool) {
	for _, k := range []EvalErrorKind{InvalidCharacters, EvaluationFailed, NonFinite} {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

func (k EvalErrorKind) sentinel() error {
	switch k {
	case InvalidCharacters:
		return ErrInvalidCharacters
	case EvaluationFailed:
		return ErrEvaluationFailed
	case NonFinite:
		return ErrNonFinite
	default:
		return nil
	}
}

// EvalError reports why an expression could not be turned into a number.
// errors.Is matches it against the sentinel for its Kind.
type EvalError struct {
	Kind EvalErrorKind
	Expr string
	Err  error // optional detail, e.g. the parse position
}

func (e *EvalError) Error() string {
	msg := fmt.Sprintf("%s: %q", e.Kind.sentinel(), e.Expr)
	if e.Kind.sentinel() == nil {
		msg = fmt.Sprintf("evaluate %q", e.Expr)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *EvalError) Unwrap() error { return e.Err }

func (e *EvalError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// KindOf extracts the EvalErrorKind from err, if it carries one.
func KindOf(err error) (EvalErrorKind, bool) {
	var ee *EvalError
	if errors.As(err, &ee) {
		return ee.Kind, true
	}
	return 0, false
}
