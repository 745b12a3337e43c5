package components

import "github.com/yohamta/donburi"

// PauseData stores the pause state
type PauseData struct {
	IsPaused bool
}

var Pause = donburi.NewComponentType[PauseData]()

// SettingsData holds the player-facing toggles that are persisted between runs.
type SettingsData struct {
	Debug      bool
	Fullscreen bool
}

var Settings = donburi.NewComponentType[SettingsData]()
