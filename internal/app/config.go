package app

import (
	"io"
	"net/http"
)

// Config holds runtime wiring options for building the app. Empty fields fall
// back to the persisted settings, then to defaults.
type Config struct {
	Home      string       // config directory, e.g. $HOME/.calcpad
	RemoteURL string       // calcd base URL; empty evaluates in-process
	LogLevel  string       // debug, info, warn, error
	LogOutput io.Writer    // optional; defaults to os.Stderr
	HTTP      *http.Client // optional; defaults to http.DefaultClient
}

// DefaultLogLevel keeps the CLI quiet unless asked otherwise.
const DefaultLogLevel = "warn"
