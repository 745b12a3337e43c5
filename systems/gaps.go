package systems

import (
	"math"

	"github.com/automoto/trailgunner/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateGaps advances running traversals. It runs before UpdatePlayer so a
// controller sees the landing on the same frame the hop ends.
func UpdateGaps(ecs *ecs.ECS) {
	dt := float32(frameSeconds())

	type landing struct {
		entry *donburi.Entry
		done  func()
	}
	var landed []landing

	components.Traversal.Each(ecs.World, func(e *donburi.Entry) {
		t := components.Traversal.Get(e)
		progress, finished := t.Tween.Update(dt)
		if finished {
			progress = 1
		}

		p := float64(progress)
		t.Subject.SetPosition(dmath.Vec2{
			X: t.From.X + (t.To.X-t.From.X)*p,
			Y: t.From.Y + (t.To.Y-t.From.Y)*p,
		})
		t.Subject.SetHop(math.Sin(math.Pi*p) * t.Height)

		if finished {
			t.Subject.SetHop(0)
			landed = append(landed, landing{entry: e, done: t.Done})
		}
	})

	for _, l := range landed {
		l.entry.RemoveComponent(components.Traversal)
		if l.done != nil {
			l.done()
		}
	}
}
