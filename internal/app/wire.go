package app

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"calcpad/internal/domain"
	"calcpad/internal/protocol/arith"
	"calcpad/internal/remote"
	"calcpad/internal/services/keypad"
	"calcpad/internal/store"
)

// Wire bundles the stores, services and clients for the CLI.
type Wire struct {
	Settings  domain.SettingsStore
	Evaluator domain.Evaluator
	Keypad    domain.KeypadService
	Remote    *remote.HTTP // nil when evaluating in-process
	Logger    *slog.Logger
	HTTP      *http.Client
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	settingsStore := store.NewSettingsFileStore(cfg.Home)
	settings, err := settingsStore.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	level := firstNonEmpty(cfg.LogLevel, settings.LogLevel, DefaultLogLevel)
	out := cfg.LogOutput
	if out == nil {
		out = os.Stderr
	}
	logger, err := NewLogger(out, level)
	if err != nil {
		return nil, err
	}

	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	w := &Wire{
		Settings: settingsStore,
		Logger:   logger,
		HTTP:     httpClient,
	}
	if url := firstNonEmpty(cfg.RemoteURL, settings.RemoteURL); url != "" {
		w.Remote = remote.NewHTTP(url, httpClient)
		w.Evaluator = w.Remote
		logger.Debug("using remote evaluator", "url", url)
	} else {
		w.Evaluator = arith.Evaluator{}
	}
	w.Keypad = keypad.New(w.Evaluator, logger)
	return w, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
