package factory

import (
	"github.com/automoto/trailgunner/archetypes"
	"github.com/automoto/trailgunner/components"
	cfg "github.com/automoto/trailgunner/config"
	"github.com/automoto/trailgunner/playercontrol"
	"github.com/automoto/trailgunner/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Animator layers of the player avatar. The aiming layer sits on top of the
// base locomotion layer.
var playerLayers = []string{"BaseLayer", playercontrol.AimingLayerName}

// CreatePlayer creates the player with its top-left corner at x, y. It has no
// controller until one is attached.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, player, obj)

	center := math.Vec2{X: x + w/2, Y: y + h/2}
	components.Player.SetValue(player, components.PlayerData{
		Spawn:       center,
		LastCenter:  center,
		Overlapping: make(map[donburi.Entity]struct{}),
	})
	components.Animator.Set(player, components.NewAnimator(playerLayers...))

	return player
}
