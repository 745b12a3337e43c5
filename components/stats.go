package components

import "github.com/yohamta/donburi"

// StatsData counts what happened across runs. It is persisted between sessions.
type StatsData struct {
	Shots            int `json:"shots"`
	TargetsDestroyed int `json:"targetsDestroyed"`
	Jumps            int `json:"jumps"`
	Footsteps        int `json:"footsteps"`
	Runs             int `json:"runs"`
	LevelsCleared    int `json:"levelsCleared"`

	// BestClearSeconds is the fastest clear of any level, 0 until one is cleared.
	BestClearSeconds float64 `json:"bestClearSeconds"`
}

var Stats = donburi.NewComponentType[StatsData]()
