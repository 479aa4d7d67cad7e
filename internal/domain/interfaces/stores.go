package interfaces

import types "calcpad/internal/domain/types"

// SettingsStore persists CLI preferences.
type SettingsStore interface {
	SaveSettings(s types.Settings) error
	LoadSettings() (types.Settings, error)
}
