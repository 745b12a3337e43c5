package factory

import (
	"github.com/automoto/trailgunner/archetypes"
	"github.com/automoto/trailgunner/assets"
	"github.com/automoto/trailgunner/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevelAtIndex records levels[levelIndex] as the current level. An out
// of range index falls back to the first level.
func CreateLevelAtIndex(ecs *ecs.ECS, levels []assets.Level, levelIndex int) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	if len(levels) == 0 {
		panic("no levels loaded")
	}

	// Clamp index to valid range
	if levelIndex < 0 || levelIndex >= len(levels) {
		levelIndex = 0
	}

	components.Level.Set(level, &components.LevelData{
		Levels:       levels,
		LevelIndex:   levelIndex,
		CurrentLevel: &levels[levelIndex],
	})

	return level
}

// PopulateLevel creates the space, walls, gaps and targets of level. The
// player is created separately so the caller can attach its controller.
func PopulateLevel(ecs *ecs.ECS, level *assets.Level) {
	CreateSpace(ecs, level.Width, level.Height, 16, 16)

	for _, wall := range level.Walls {
		CreateWall(ecs, wall.X, wall.Y, wall.Width, wall.Height)
	}
	for _, gap := range level.Gaps {
		CreateGap(ecs, gap)
	}
	for _, target := range level.Targets {
		CreateTarget(ecs, target)
	}
}
