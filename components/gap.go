package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type GapData struct {
	Name       string
	Duration   float64 // seconds
	Landing    math.Vec2
	HasLanding bool
}

var Gap = donburi.NewComponentType[GapData]()

// Placer is moved along a traversal. The player transform implements it.
type Placer interface {
	SetPosition(center math.Vec2)
	SetHop(height float64)
}

// TraversalData is attached to a gap entity while it carries the player
// across. Done runs once, when the tween finishes.
type TraversalData struct {
	Subject  Placer
	From, To math.Vec2
	Height   float64      // peak of the hop arc
	Tween    *gween.Tween // progress 0..1
	Done     func()
}

var Traversal = donburi.NewComponentType[TraversalData]()
