package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames remaining
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// FlashData tracks sprite flash effect (hit flash, damage flash)
type FlashData struct {
	Duration int     // frames remaining
	R, G, B  float32 // color multipliers (1,1,1 = white, 1,0.5,0.5 = red tint)
}

var Flash = donburi.NewComponentType[FlashData]()

// AutoDestroyData marks entities that should be destroyed after a duration
type AutoDestroyData struct {
	FramesRemaining int
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()

type EffectKind int

const (
	EffectShot EffectKind = iota
	EffectExplosion
)

// EffectData is a short lived circle drawn at Position. It grows
// from nothing to Radius over TotalFrames.
type EffectData struct {
	Position    math.Vec2
	Kind        EffectKind
	Radius      float64
	TotalFrames int
}

var Effect = donburi.NewComponentType[EffectData]()
