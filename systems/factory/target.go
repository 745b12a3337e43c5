package factory

import (
	"github.com/automoto/trailgunner/archetypes"
	"github.com/automoto/trailgunner/assets"
	"github.com/automoto/trailgunner/components"
	cfg "github.com/automoto/trailgunner/config"
	"github.com/automoto/trailgunner/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTarget creates a target centered on the spawn point. Spawns with a
// patrol path start at its first point and walk it back and forth.
func CreateTarget(ecs *ecs.ECS, spawn assets.TargetSpawn) *donburi.Entry {
	var target *donburi.Entry
	if len(spawn.Patrol) >= 2 {
		target = archetypes.Target.Spawn(ecs, components.Patrol)
	} else {
		target = archetypes.Target.Spawn(ecs)
	}

	size := cfg.Target.Size
	obj := resolv.NewObject(spawn.X-size/2, spawn.Y-size/2, size, size, tags.ResolvTarget)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	components.Object.SetValue(target, components.ObjectData{Object: obj})
	addToSpace(ecs, target, obj)

	health := spawn.Health
	if health <= 0 {
		health = cfg.Target.Health
	}
	components.Health.SetValue(target, components.HealthData{Current: health, Max: health})
	components.Target.SetValue(target, components.TargetData{
		Name:      spawn.Name,
		Destroyed: components.NewSignal(),
	})

	// Permanently attached to avoid archetype thrashing
	components.Flash.SetValue(target, components.FlashData{R: 1, G: 1, B: 1})

	if len(spawn.Patrol) >= 2 {
		duration := spawn.PatrolDuration
		if duration <= 0 {
			duration = cfg.Target.PatrolDuration
		}
		components.Patrol.SetValue(target, components.PatrolData{
			Points:   spawn.Patrol,
			Duration: float32(duration),
			Tween:    gween.New(0, 1, float32(duration), ease.InOutSine),
		})
		components.Object.Get(target).SetCenter(spawn.Patrol[0])
		obj.Update()
	}

	return target
}
