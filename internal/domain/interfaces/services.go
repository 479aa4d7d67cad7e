package interfaces

import types "calcpad/internal/domain/types"

// Evaluator turns an expression into its formatted numeric result.
// Failures are returned as *types.EvalError.
type Evaluator interface {
	Evaluate(expr string) (string, error)
}

// KeypadService applies user inputs to an explicit display buffer.
type KeypadService interface {
	Append(buf types.Buffer, s string) types.Buffer
	Clear(buf types.Buffer) types.Buffer
	Backspace(buf types.Buffer) types.Buffer
	Evaluate(buf types.Buffer) types.Buffer
	Dispatch(buf types.Buffer, in types.Input) (types.Buffer, bool)
}
