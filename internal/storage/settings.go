package storage

import "encoding/json"

// settingsKey is the key the settings blob lives under in the Store.
const settingsKey = "settings"

// Settings holds user-facing dashboard configuration. Persisted as an
// opaque blob; an absent key yields the defaults.
type Settings struct {
	TimeFormat    string `json:"timeFormat"`    // "24h" or "12h"
	Locale        string `json:"locale"`        // BCP 47 tag for folder sorting, "" = root collation
	ShowURLs      bool   `json:"showUrls"`      // render URLs under bookmark titles
	ConfirmDelete bool   `json:"confirmDelete"` // ask before deleting bookmarks
}

// DefaultSettings returns the default configuration.
func DefaultSettings() Settings {
	return Settings{
		TimeFormat:    "24h",
		ShowURLs:      true,
		ConfirmDelete: true,
	}
}

// LoadSettings reads settings from the store, applying defaults for a
// missing key or missing fields. A corrupt blob falls back to defaults
// rather than failing the caller.
func LoadSettings(store Store) (Settings, error) {
	defaults := DefaultSettings()

	data, ok, err := store.Get(settingsKey)
	if err != nil {
		return defaults, err
	}
	if !ok {
		return defaults, nil
	}

	settings := defaults
	if err := json.Unmarshal(data, &settings); err != nil {
		return defaults, nil
	}

	if settings.TimeFormat != "12h" && settings.TimeFormat != "24h" {
		settings.TimeFormat = defaults.TimeFormat
	}

	return settings, nil
}

// SaveSettings writes settings to the store.
func SaveSettings(store Store, settings Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return store.Set(settingsKey, data)
}
