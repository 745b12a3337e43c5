package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2
	Shake    math.Vec2 // offset added on top of Position while a shake runs
}

var Camera = donburi.NewComponentType[CameraData]()
