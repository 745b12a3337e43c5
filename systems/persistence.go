package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/trailgunner/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

const (
	settingsKey = "settings"
	statsKey    = "stats"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Debug      bool `json:"debug"`
	Fullscreen bool `json:"fullscreen"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// Last values read from or written to disk. New sessions start from these.
var (
	loadedSettings *SavedSettings
	loadedStats    *components.StatsData
)

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "trailgunner",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// loadItem decodes the JSON item at key into v. A missing item leaves v
// untouched and reports false.
func loadItem(key string, v any) (bool, error) {
	if !gdataInitialized || gdataManager == nil {
		return false, nil
	}

	data, err := gdataManager.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", key, err)
		return false, nil
	}
	if data == nil {
		return false, nil
	}

	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Warning: Could not parse saved %s: %v", key, err)
		return false, err
	}
	return true, nil
}

func saveItem(key string, v any) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Warning: Could not serialize %s: %v", key, err)
		return err
	}

	if err := gdataManager.SaveItem(key, data); err != nil {
		log.Printf("Warning: Could not save %s: %v", key, err)
		return err
	}
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	var settings SavedSettings
	ok, err := loadItem(settingsKey, &settings)
	if !ok {
		return nil, err
	}
	loadedSettings = &settings
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	loadedSettings = s
	return saveItem(settingsKey, s)
}

// SaveCurrentSettings saves the live settings component
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(&SavedSettings{
		Debug:      s.Debug,
		Fullscreen: s.Fullscreen,
	})
}

// ApplySavedSettingsGlobal applies settings that live outside the ECS.
// Used during initial game startup before scenes are created
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	ebiten.SetFullscreen(saved.Fullscreen)
}

// LoadStats loads lifetime stats from disk. It returns nil when nothing was saved yet.
func LoadStats() (*components.StatsData, error) {
	var stats components.StatsData
	ok, err := loadItem(statsKey, &stats)
	if !ok {
		return nil, err
	}
	loadedStats = &stats
	return &stats, nil
}

// SaveStats writes stats to disk and makes them the starting point of the
// next session.
func SaveStats(stats *components.StatsData) error {
	snapshot := *stats
	loadedStats = &snapshot
	return saveItem(statsKey, &snapshot)
}
