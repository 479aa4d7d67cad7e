// Package keypad applies calculator inputs to the display buffer.
//
// The buffer is passed in and returned explicitly; the service keeps no
// display state of its own, so the same Service can back a terminal UI, a CLI
// key replay or a stateless HTTP endpoint.
//
// Inputs come from on-screen buttons or keyboard keys and resolve to one of
// Append, Clear, Backspace or Evaluate. A buffer holding the error marker is
// replaced, not extended, by the next Append, and Backspace on it clears it.
package keypad
