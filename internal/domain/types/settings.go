package types

// Settings are persisted CLI preferences. They are tool configuration, not
// calculator state.
type Settings struct {
	RemoteURL string `json:"remote_url,omitempty"` // calcd base URL, e.g. http://127.0.0.1:8080
	LogLevel  string `json:"log_level,omitempty"`  // debug, info, warn, error
}
