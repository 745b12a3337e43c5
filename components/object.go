package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type ObjectData struct {
	*resolv.Object
}

// Center returns the middle of the collision box.
func (o *ObjectData) Center() math.Vec2 {
	return math.Vec2{X: o.X + o.W/2, Y: o.Y + o.H/2}
}

// SetCenter moves the collision box so that its middle is at c.
func (o *ObjectData) SetCenter(c math.Vec2) {
	o.X = c.X - o.W/2
	o.Y = c.Y - o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the collision space shared by every object in the level.
var Space = donburi.NewComponentType[resolv.Space]()
