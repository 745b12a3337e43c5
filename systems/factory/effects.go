package factory

import (
	"github.com/automoto/trailgunner/archetypes"
	"github.com/automoto/trailgunner/components"
	cfg "github.com/automoto/trailgunner/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateShotEffect spawns a muzzle flash at the given position.
func CreateShotEffect(ecs *ecs.ECS, at math.Vec2) *donburi.Entry {
	return spawnEffect(ecs, at, components.EffectShot, cfg.Effects.ShotRadius, cfg.Effects.ShotFrames)
}

// CreateExplosionEffect spawns the burst left by a destroyed target.
func CreateExplosionEffect(ecs *ecs.ECS, at math.Vec2) *donburi.Entry {
	return spawnEffect(ecs, at, components.EffectExplosion, cfg.Effects.ExplosionRadius, cfg.Target.ExplosionFrames)
}

func spawnEffect(ecs *ecs.ECS, at math.Vec2, kind components.EffectKind, radius float64, frames int) *donburi.Entry {
	if frames <= 0 {
		frames = 1
	}
	effect := archetypes.Effect.Spawn(ecs)
	components.Effect.SetValue(effect, components.EffectData{
		Position:    at,
		Kind:        kind,
		Radius:      radius,
		TotalFrames: frames,
	})
	components.AutoDestroy.SetValue(effect, components.AutoDestroyData{FramesRemaining: frames})
	return effect
}

var footprintSerial int

// CreateFootprint leaves a print at the given position, facing yaw.
func CreateFootprint(ecs *ecs.ECS, at math.Vec2, yaw float64, right bool) *donburi.Entry {
	footprintSerial++
	footprint := archetypes.Footprint.Spawn(ecs)
	components.Footprint.SetValue(footprint, components.FootprintData{
		Position: at,
		Yaw:      yaw,
		Right:    right,
		Lifetime: cfg.Footsteps.FadeFrames,
		Serial:   footprintSerial,
	})
	return footprint
}
