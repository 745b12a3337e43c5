package systems

import (
	"github.com/automoto/trailgunner/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects processes visual effect components (flash, auto-destroy)
func UpdateEffects(ecs *ecs.ECS) {
	updateFlashEffects(ecs)
	updateAutoDestroy(ecs)
}

// updateFlashEffects decrements flash timers
func updateFlashEffects(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}

// updateAutoDestroy removes entities whose countdown ran out
func updateAutoDestroy(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		ad.FramesRemaining--
		if ad.FramesRemaining <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		e.Remove()
	}
}

// effectProgress returns how far an effect is through its life, in [0, 1].
func effectProgress(effect *components.EffectData, ad *components.AutoDestroyData) float64 {
	if effect.TotalFrames <= 0 {
		return 1
	}
	p := 1 - float64(ad.FramesRemaining)/float64(effect.TotalFrames)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}
