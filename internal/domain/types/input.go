package types

// Action is what an input does to the buffer.
type Action int

const (
	ActionNone Action = iota
	ActionAppend
	ActionClear
	ActionBackspace
	ActionEvaluate
)

// String returns the lower-case action name.
func (a Action) String() string {
	switch a {
	case ActionAppend:
		return "append"
	case ActionClear:
		return "clear"
	case ActionBackspace:
		return "backspace"
	case ActionEvaluate:
		return "evaluate"
	default:
		return "none"
	}
}

// ButtonAction is the role of an on-screen button.
type ButtonAction string

const (
	ButtonDigit     ButtonAction = "digit"
	ButtonOperator  ButtonAction = "operator"
	ButtonDecimal   ButtonAction = "decimal"
	ButtonEquals    ButtonAction = "equals"
	ButtonClear     ButtonAction = "clear"
	ButtonBackspace ButtonAction = "backspace"
)

// Button is an on-screen control. Text is the label, which is also the
// character appended for digit and operator buttons.
type Button struct {
	Action ButtonAction `json:"action"`
	Text   string       `json:"text"`
}

// Key is a keyboard key name, e.g. "7", "+", "Enter", "Backspace", "Delete".
type Key string

// Input is either a button press or a key press. Exactly one is set.
type Input struct {
	Button *Button `json:"button,omitempty"`
	Key    Key     `json:"key,omitempty"`
}

// ButtonInput wraps b as an Input.
func ButtonInput(b Button) Input { return Input{Button: &b} }

// KeyInput wraps k as an Input.
func KeyInput(k Key) Input { return Input{Key: k} }

// Command is a resolved action plus the text to append, if any.
type Command struct {
	Action Action
	Text   string
}
