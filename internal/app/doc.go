// Package app wires application dependencies for the calcpad binaries.
//
// It builds the settings store, the evaluator (local or remote), the keypad
// service and the logger from Config, exposing them via the Wire struct for
// commands to use.
package app
