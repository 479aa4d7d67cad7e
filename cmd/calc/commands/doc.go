// Package commands defines the calc CLI and wires dependencies for subcommands.
//
// Commands
//
//   - eval     Evaluate an expression (arguments, or one per stdin line)
//   - press    Replay keyboard keys against an empty display
//   - tui      Open the terminal keypad
//   - config   Show or change persisted settings
//
// # Implementation
//
// The root command builds the dependency graph (settings store, evaluator,
// keypad service, logger) before any subcommand runs. Flags override the
// persisted settings in ~/.calcpad/settings.json. When a remote URL is set,
// evaluation goes through calcd instead of the in-process evaluator.
package commands
