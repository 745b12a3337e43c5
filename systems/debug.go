package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/trailgunner/components"
	"github.com/automoto/trailgunner/fonts"
	"github.com/automoto/trailgunner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision object and target trigger area.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	v, ok := newView(ecs, screen)
	if !ok {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)

		for _, obj := range space.Objects() {
			if !v.visible(obj.X, obj.Y, obj.W, obj.H) {
				continue
			}

			// Determine color based on tags
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{100, 100, 100, 255} // Grey
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			} else if obj.HasTags(tags.ResolvTarget) {
				c = color.RGBA{255, 0, 0, 255} // Red
			} else if obj.HasTags(tags.ResolvGap) {
				c = color.RGBA{255, 0, 255, 255} // Magenta
			}

			x, y := v.point(obj.X, obj.Y)
			vector.StrokeRect(screen, x, y, float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	tags.Target.Each(ecs.World, func(e *donburi.Entry) {
		box := triggerBox(components.Object.Get(e))
		x, y := v.point(box.minX, box.minY)
		vector.StrokeRect(screen, x, y, float32(box.maxX-box.minX), float32(box.maxY-box.minY), 1, color.RGBA{255, 200, 0, 160}, false)
	})

	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		player := components.Player.Get(playerEntry)
		if player.Controller != nil {
			line := fmt.Sprintf("cooldown %.2f  motion %.2f,%.2f  yaw %.2f",
				player.Controller.TimeSinceLastShot(),
				player.Controller.Motion().X, player.Controller.Motion().Y,
				player.Yaw)
			text.Draw(screen, line, fonts.Small.Get(), 10, screen.Bounds().Dy()-10, color.White)
		}
	}
}
