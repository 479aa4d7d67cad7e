package arith

import (
	"math"
	"strings"

	"calcpad/internal/domain"
)

// Eval normalizes, gates and evaluates expr, returning the raw value.
func Eval(expr string) (float64, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return 0, &domain.EvalError{Kind: domain.EvaluationFailed, Expr: expr, Err: &SyntaxError{Msg: "empty expression"}}
	}
	norm := Normalize(trimmed)
	if !IsWellFormed(norm) {
		return 0, &domain.EvalError{Kind: domain.InvalidCharacters, Expr: expr}
	}
	v, err := Parse(norm)
	if err != nil {
		return 0, &domain.EvalError{Kind: domain.EvaluationFailed, Expr: expr, Err: err}
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, &domain.EvalError{Kind: domain.NonFinite, Expr: expr}
	}
	return v, nil
}

// Evaluate runs the full pipeline and returns the display string for expr.
func Evaluate(expr string) (string, error) {
	v, err := Eval(expr)
	if err != nil {
		return "", err
	}
	return Format(v), nil
}

// Evaluator is the local, in-process domain.Evaluator.
type Evaluator struct{}

// Evaluate implements domain.Evaluator.
func (Evaluator) Evaluate(expr string) (string, error) { return Evaluate(expr) }

var _ domain.Evaluator = Evaluator{}
