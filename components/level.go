package components

import (
	"github.com/automoto/trailgunner/assets"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *assets.Level
	LevelIndex   int
	Levels       []assets.Level
	Cleared      bool // every target in the current level is destroyed
	Elapsed      int  // frames played in the current level
}

var Level = donburi.NewComponentType[LevelData]()
