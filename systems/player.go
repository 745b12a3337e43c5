package systems

import (
	"math"

	"github.com/automoto/trailgunner/components"
	cfg "github.com/automoto/trailgunner/config"
	"github.com/automoto/trailgunner/playercontrol"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// frameSeconds is the fixed simulation step.
func frameSeconds() float64 {
	return 1.0 / float64(cfg.C.TPS)
}

// UpdatePlayer runs each player's controller for one frame and advances the
// walk cycle by the distance actually covered.
func UpdatePlayer(ecs *ecs.ECS) {
	dt := frameSeconds()
	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		player := components.Player.Get(playerEntry)
		if player.Controller == nil {
			return
		}
		player.Controller.Update(dt)
		advanceWalkCycle(playerEntry, player)
	})
}

// advanceWalkCycle moves the walk animation one frame per quarter stride.
// Hops are carried by the gap and leave no prints.
func advanceWalkCycle(playerEntry *donburi.Entry, player *components.PlayerData) {
	center := components.Object.Get(playerEntry).Center()
	walked := math.Hypot(center.X-player.LastCenter.X, center.Y-player.LastCenter.Y)
	player.LastCenter = center

	if walked == 0 || player.Controller.State().Kind == playercontrol.Jumping {
		return
	}
	frameLength := cfg.Footsteps.StrideLength / 4
	if frameLength <= 0 {
		return
	}
	components.Animator.Get(playerEntry).Walk.Advance(float32(walked / frameLength))
}

// ApplyTuning pushes the live configuration into every controller. Used after
// the tuning file is reloaded.
func ApplyTuning(ecs *ecs.ECS) {
	c := ControllerConfig()
	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		if controller := components.Player.Get(playerEntry).Controller; controller != nil {
			controller.SetConfig(c)
		}
	})
}

// DetachControllers disables every controller so it releases its
// subscriptions. Called before a scene is torn down.
func DetachControllers(ecs *ecs.ECS) {
	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		if controller := components.Player.Get(playerEntry).Controller; controller != nil {
			controller.Disable()
		}
	})
}
