package systems

import (
	"github.com/automoto/trailgunner/archetypes"
	"github.com/automoto/trailgunner/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// getOrCreateSession returns the entry holding the pause, settings and stats
// singletons, creating it on first use.
func getOrCreateSession(ecs *ecs.ECS) *donburi.Entry {
	if entry, ok := components.Pause.First(ecs.World); ok {
		return entry
	}
	entry := archetypes.Session.Spawn(ecs)
	if saved := loadedSettings; saved != nil {
		components.Settings.SetValue(entry, components.SettingsData{
			Debug:      saved.Debug,
			Fullscreen: saved.Fullscreen,
		})
	}
	if stats := loadedStats; stats != nil {
		components.Stats.SetValue(entry, *stats)
	}
	return entry
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	return components.Pause.Get(getOrCreateSession(ecs))
}

// GetOrCreateSettings returns the singleton Settings component.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	return components.Settings.Get(getOrCreateSession(ecs))
}

// GetOrCreateStats returns the singleton Stats component.
func GetOrCreateStats(ecs *ecs.ECS) *components.StatsData {
	return components.Stats.Get(getOrCreateSession(ecs))
}
