package factory

import (
	"github.com/automoto/trailgunner/archetypes"
	"github.com/automoto/trailgunner/assets"
	"github.com/automoto/trailgunner/components"
	"github.com/automoto/trailgunner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGap creates a gap area. Gaps are not solid; the player hops them.
func CreateGap(ecs *ecs.ECS, spawn assets.GapSpawn) *donburi.Entry {
	gap := archetypes.Gap.Spawn(ecs)

	a := spawn.Area
	obj := resolv.NewObject(a.X, a.Y, a.Width, a.Height, tags.ResolvGap)
	obj.SetShape(resolv.NewRectangle(0, 0, a.Width, a.Height))
	components.Object.SetValue(gap, components.ObjectData{Object: obj})
	addToSpace(ecs, gap, obj)

	components.Gap.SetValue(gap, components.GapData{
		Name:       spawn.Name,
		Duration:   spawn.Duration,
		Landing:    spawn.Landing,
		HasLanding: spawn.HasLanding,
	})

	return gap
}
