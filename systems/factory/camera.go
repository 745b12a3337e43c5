package factory

import (
	"github.com/automoto/trailgunner/archetypes"
	"github.com/automoto/trailgunner/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera creates the camera centered on at.
func CreateCamera(ecs *ecs.ECS, at math.Vec2) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Position: at})
	return camera
}
