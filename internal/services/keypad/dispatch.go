package keypad

import (
	"strings"

	"calcpad/internal/domain"
)

// Key names for the non-character keys the keypad reacts to.
const (
	KeyEnter     domain.Key = "Enter"
	KeyBackspace domain.Key = "Backspace"
	KeyDelete    domain.Key = "Delete"
)

// appendKeys are the single-character keys typed straight into the buffer.
const appendKeys = "0123456789+-*/().%"

// Resolve maps a button or key input to the command it triggers.
func Resolve(in domain.Input) domain.Command {
	if in.Button != nil {
		return ResolveButton(*in.Button)
	}
	return ResolveKey(in.Key)
}

// ResolveButton maps an on-screen button to its command.
func ResolveButton(b domain.Button) domain.Command {
	switch b.Action {
	case domain.ButtonDigit, domain.ButtonOperator:
		return domain.Command{Action: domain.ActionAppend, Text: strings.TrimSpace(b.Text)}
	case domain.ButtonDecimal:
		return domain.Command{Action: domain.ActionAppend, Text: "."}
	case domain.ButtonEquals:
		return domain.Command{Action: domain.ActionEvaluate}
	case domain.ButtonClear:
		return domain.Command{Action: domain.ActionClear}
	case domain.ButtonBackspace:
		return domain.Command{Action: domain.ActionBackspace}
	}
	return domain.Command{}
}

// ResolveKey maps a keyboard key to its command.
func ResolveKey(k domain.Key) domain.Command {
	if len(k) == 1 && strings.Contains(appendKeys, string(k)) {
		return domain.Command{Action: domain.ActionAppend, Text: string(k)}
	}
	switch k {
	case KeyEnter, "=":
		return domain.Command{Action: domain.ActionEvaluate}
	case KeyBackspace:
		return domain.Command{Action: domain.ActionBackspace}
	case KeyDelete:
		return domain.Command{Action: domain.ActionClear}
	}
	if strings.ToLower(string(k)) == "c" {
		return domain.Command{Action: domain.ActionClear}
	}
	return domain.Command{}
}
