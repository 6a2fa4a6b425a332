package systems

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/bombspot/config"
	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Debug      bool `json:"debug"`
	Fullscreen bool `json:"fullscreen"`
}

var gdataManager *gdata.Manager

// InitPersistence opens the settings store. The game runs without it.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		return fmt.Errorf("open settings store: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadSettings returns the saved settings, or nil when nothing was saved.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Settings.ItemKey)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings writes s to the settings store.
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := gdataManager.SaveItem(cfg.Settings.ItemKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// saveSettingsOrWarn persists without interrupting the game.
func saveSettingsOrWarn(s *SavedSettings) {
	if err := SaveSettings(s); err != nil {
		log.Warn("could not save settings", "err", err)
	}
}
