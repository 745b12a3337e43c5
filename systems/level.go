package systems

import (
	"github.com/automoto/trailgunner/components"
	cfg "github.com/automoto/trailgunner/config"
	"github.com/automoto/trailgunner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"
)

// UpdateLevel counts the time spent in the current level until it is cleared.
func UpdateLevel(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if !level.Cleared {
		level.Elapsed++
	}
}

// DrawLevel fills the floor and draws the walls.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(colornames.Black)

	camX, camY, ok := cameraOffset(ecs, screen.Bounds().Dx(), screen.Bounds().Dy())
	if !ok {
		return
	}

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	vector.FillRect(screen,
		float32(camX), float32(camY),
		float32(levelData.CurrentLevel.Width), float32(levelData.CurrentLevel.Height),
		cfg.Floor, false)

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.FillRect(screen,
			float32(o.X+camX), float32(o.Y+camY),
			float32(o.W), float32(o.H),
			cfg.WallColor, false)
	})
}
