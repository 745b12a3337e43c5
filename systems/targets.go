package systems

import (
	"log"

	"github.com/automoto/trailgunner/components"
	cfg "github.com/automoto/trailgunner/config"
	"github.com/automoto/trailgunner/systems/factory"
	"github.com/automoto/trailgunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateTargets moves patrolling targets, applies queued damage and removes
// destroyed targets.
func UpdateTargets(ecs *ecs.ECS) {
	updatePatrols(ecs)

	var toDestroy []*donburi.Entry
	var applied []*donburi.Entry

	components.DamageEvent.Each(ecs.World, func(e *donburi.Entry) {
		applied = append(applied, e)

		target := components.Target.Get(e)
		if target.Dead {
			return
		}

		dmg := components.DamageEvent.Get(e)
		health := components.Health.Get(e)
		health.Current -= dmg.Amount

		flash := components.Flash.Get(e)
		flash.Duration = cfg.Target.FlashFrames
		flash.R, flash.G, flash.B = 1, 0.5, 0.5

		if health.Current <= 0 {
			health.Current = 0
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range applied {
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)
	}

	for _, e := range toDestroy {
		destroyTarget(ecs, e)
	}

	if len(toDestroy) > 0 {
		checkLevelCleared(ecs)
	}
}

// destroyTarget notifies listeners once and removes the target from the world.
func destroyTarget(ecs *ecs.ECS, e *donburi.Entry) {
	target := components.Target.Get(e)
	if target.Dead {
		return
	}
	target.Dead = true

	obj := components.Object.Get(e)
	center := obj.Center()

	target.Destroyed.Emit()

	factory.CreateExplosionEffect(ecs, center)
	TriggerScreenShake(ecs, cfg.ScreenShake.DestroyedIntensity, cfg.ScreenShake.DestroyedDuration)
	GetOrCreateStats(ecs).TargetsDestroyed++

	if obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
	e.Remove()
}

func checkLevelCleared(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	if level.Cleared {
		return
	}
	if _, remaining := tags.Target.First(ecs.World); remaining {
		return
	}
	level.Cleared = true
	stats := GetOrCreateStats(ecs)
	stats.LevelsCleared++
	seconds := float64(level.Elapsed) * frameSeconds()
	if stats.BestClearSeconds == 0 || seconds < stats.BestClearSeconds {
		stats.BestClearSeconds = seconds
	}
	if level.CurrentLevel != nil {
		log.Printf("Level %s cleared in %.1fs", level.CurrentLevel.Name, seconds)
	}
	_ = SaveStats(stats)
}

// updatePatrols walks each patrolling target along its points and back.
func updatePatrols(ecs *ecs.ECS) {
	dt := float32(frameSeconds())

	components.Patrol.Each(ecs.World, func(e *donburi.Entry) {
		patrol := components.Patrol.Get(e)
		if len(patrol.Points) < 2 || patrol.Tween == nil {
			return
		}

		progress, finished := patrol.Tween.Update(dt)
		from, to := patrolLeg(patrol)
		if finished {
			progress = 1
		}

		p := float64(progress)
		obj := components.Object.Get(e)
		obj.SetCenter(dmath.Vec2{
			X: from.X + (to.X-from.X)*p,
			Y: from.Y + (to.Y-from.Y)*p,
		})
		obj.Update()

		if finished {
			advancePatrol(patrol)
			patrol.Tween.Reset()
		}
	})
}

// patrolLeg returns the endpoints of the current leg.
func patrolLeg(patrol *components.PatrolData) (from, to dmath.Vec2) {
	next := patrol.Leg + 1
	if patrol.Reverse {
		next = patrol.Leg - 1
	}
	return patrol.Points[patrol.Leg], patrol.Points[next]
}

// advancePatrol moves to the next leg, turning around at either end.
func advancePatrol(patrol *components.PatrolData) {
	if patrol.Reverse {
		patrol.Leg--
		if patrol.Leg == 0 {
			patrol.Reverse = false
		}
		return
	}
	patrol.Leg++
	if patrol.Leg == len(patrol.Points)-1 {
		patrol.Reverse = true
	}
}
