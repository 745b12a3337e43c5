package tags

import "github.com/yohamta/donburi"

var (
	Player    = donburi.NewTag().SetName("Player")
	Wall      = donburi.NewTag().SetName("Wall")
	Target    = donburi.NewTag().SetName("Target")
	Gap       = donburi.NewTag().SetName("Gap")
	Footprint = donburi.NewTag().SetName("Footprint")
	Effect    = donburi.NewTag().SetName("Effect")
)

// Resolv tags for collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
	ResolvTarget = "Target"
	ResolvGap    = "gap"
)
