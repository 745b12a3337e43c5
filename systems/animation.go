package systems

import (
	"math"

	"github.com/automoto/trailgunner/components"
	cfg "github.com/automoto/trailgunner/config"
	"github.com/automoto/trailgunner/playercontrol"
	"github.com/automoto/trailgunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayerAnimation turns pulsed animator triggers into timed cues. Runs
// after the controller and trigger systems so a jump started this frame is
// picked up before drawing.
func UpdatePlayerAnimation(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Animator) {
			return
		}
		anim := components.Animator.Get(e)
		if anim.JumpCue > 0 {
			anim.JumpCue--
		}
		if anim.ConsumeTrigger(playercontrol.JumpParam) {
			anim.JumpCue = cfg.Player.JumpCueFrames
		}
	})
}

// pose is what the avatar looks like this frame, read from its animator.
type pose struct {
	Aim     float64 // aiming layer weight, the barrel is drawn above 0
	Bob     float64 // walk bob in pixels
	Stretch float64 // 1 at take-off, fading to 0 over the jump cue
}

func playerPose(e *donburi.Entry) pose {
	if !e.HasComponent(components.Animator) {
		return pose{}
	}
	anim := components.Animator.Get(e)

	p := pose{Aim: anim.LayerWeight(anim.LayerIndex(playercontrol.AimingLayerName))}

	// Peaks between foot contacts, twice per cycle.
	swing := math.Abs(math.Sin(2 * math.Pi * anim.Walk.Progress()))
	p.Bob = cfg.Player.BobHeight * anim.Float(playercontrol.SpeedParam) * swing

	if n := cfg.Player.JumpCueFrames; n > 0 && anim.JumpCue > 0 {
		p.Stretch = float64(anim.JumpCue) / float64(n)
	}
	return p
}
