// Package tui is the terminal keypad for calcpad.
//
// It renders the display line above the standard button grid. Arrow keys move
// the focused button and space presses it; digits, operators, Enter, =,
// Backspace, Delete and c are handled exactly as keyboard input on the
// keypad service.
package tui
