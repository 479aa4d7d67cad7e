package types

// EvaluateRequest is the body of POST /v1/evaluate.
type EvaluateRequest struct {
	Expression string `json:"expression"`
}

// EvaluateResponse is a successful evaluation.
type EvaluateResponse struct {
	Result string `json:"result"`
}

// ErrorResponse is returned for every non-2xx status. Kind is set only for
// evaluation failures; Error then holds the display marker.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// PressRequest applies one input to an explicit buffer (POST /v1/press).
type PressRequest struct {
	Buffer Buffer  `json:"buffer"`
	Button *Button `json:"button,omitempty"`
	Key    Key     `json:"key,omitempty"`
}

// Input returns the request's input.
func (r PressRequest) Input() Input { return Input{Button: r.Button, Key: r.Key} }

// PressResponse carries the next buffer.
type PressResponse struct {
	Buffer  Buffer `json:"buffer"`
	Handled bool   `json:"handled"`
}
