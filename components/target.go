package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// TargetData describes a shootable target. Destroyed is shared by pointer so
// it survives the entry changing archetype.
type TargetData struct {
	Name      string
	Destroyed *Signal
	Dead      bool
}

var Target = donburi.NewComponentType[TargetData]()

// PatrolData moves a target back and forth along a list of points, one
// tween per leg.
type PatrolData struct {
	Points   []math.Vec2
	Leg      int  // index of the point the current leg starts from
	Reverse  bool // walking the points backwards
	Duration float32
	Tween    *gween.Tween // progress 0..1 along the current leg
}

var Patrol = donburi.NewComponentType[PatrolData]()
