package store

import (
	"path/filepath"
	"sync"

	"calcpad/internal/domain"
)

const settingsFile = "settings.json"

// SettingsFileStore keeps domain.Settings in <dir>/settings.json.
type SettingsFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewSettingsFileStore returns a store rooted at dir.
func NewSettingsFileStore(dir string) *SettingsFileStore {
	return &SettingsFileStore{dir: dir}
}

// Path returns the settings file location.
func (s *SettingsFileStore) Path() string { return filepath.Join(s.dir, settingsFile) }

// SaveSettings overwrites the stored settings.
func (s *SettingsFileStore) SaveSettings(st domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSON(s.Path(), st, 0o600)
}

// LoadSettings returns the stored settings, or zero settings if none exist.
func (s *SettingsFileStore) LoadSettings() (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var st domain.Settings
	if err := readJSON(s.Path(), &st); err != nil {
		return domain.Settings{}, err
	}
	return st, nil
}

var _ domain.SettingsStore = (*SettingsFileStore)(nil)
