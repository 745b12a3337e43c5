package components

import (
	"github.com/automoto/trailgunner/playercontrol"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	Controller *playercontrol.Controller

	Yaw   float64   // facing, radians from +X toward +Y
	Hop   float64   // height above ground during a gap traversal, for drawing
	Spawn math.Vec2 // center position the player was created at

	// Overlapping holds the trigger entities the player touched last frame.
	Overlapping map[donburi.Entity]struct{}

	// LastCenter is used to measure distance walked for the walk cycle.
	LastCenter math.Vec2
}

var Player = donburi.NewComponentType[PlayerData]()
