package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// FootprintData is a mark left on the ground. It fades out over Lifetime frames.
type FootprintData struct {
	Position math.Vec2
	Yaw      float64
	Right    bool
	Age      int
	Lifetime int
	Serial   int // creation order, used to drop the oldest prints first
}

// Alpha returns the remaining opacity in [0, 1].
func (f *FootprintData) Alpha() float64 {
	if f.Lifetime <= 0 {
		return 0
	}
	a := 1 - float64(f.Age)/float64(f.Lifetime)
	if a < 0 {
		return 0
	}
	return a
}

var Footprint = donburi.NewComponentType[FootprintData]()
