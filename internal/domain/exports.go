package domain

import (
	interfaces "calcpad/internal/domain/interfaces"
	types "calcpad/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Buffer        = types.Buffer
	Action        = types.Action
	ButtonAction  = types.ButtonAction
	Button        = types.Button
	Key           = types.Key
	Input         = types.Input
	Command       = types.Command
	EvalErrorKind = types.EvalErrorKind
	EvalError     = types.EvalError
	Settings      = types.Settings

	EvaluateRequest  = types.EvaluateRequest
	EvaluateResponse = types.EvaluateResponse
	ErrorResponse    = types.ErrorResponse
	PressRequest     = types.PressRequest
	PressResponse    = types.PressResponse
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Evaluator     = interfaces.Evaluator
	KeypadService = interfaces.KeypadService
	SettingsStore = interfaces.SettingsStore
)

const (
	ErrorMarker = types.ErrorMarker

	ActionNone      = types.ActionNone
	ActionAppend    = types.ActionAppend
	ActionClear     = types.ActionClear
	ActionBackspace = types.ActionBackspace
	ActionEvaluate  = types.ActionEvaluate

	ButtonDigit     = types.ButtonDigit
	ButtonOperator  = types.ButtonOperator
	ButtonDecimal   = types.ButtonDecimal
	ButtonEquals    = types.ButtonEquals
	ButtonClear     = types.ButtonClear
	ButtonBackspace = types.ButtonBackspace

	InvalidCharacters = types.InvalidCharacters
	EvaluationFailed  = types.EvaluationFailed
	NonFinite         = types.NonFinite
)

var (
	ErrInvalidCharacters = types.ErrInvalidCharacters
	ErrEvaluationFailed  = types.ErrEvaluationFailed
	ErrNonFinite         = types.ErrNonFinite
)

// Constructors and helpers re-exported from types.
var (
	ButtonInput        = types.ButtonInput
	KeyInput           = types.KeyInput
	KindOf             = types.KindOf
	ParseEvalErrorKind = types.ParseEvalErrorKind
)
