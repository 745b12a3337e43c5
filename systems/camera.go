package systems

import (
	"math"

	"github.com/automoto/trailgunner/components"
	"github.com/automoto/trailgunner/config"
	"github.com/automoto/trailgunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	// Process screen shake
	updateScreenShake(cameraEntry, camera)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	target := components.Object.Get(playerEntry).Center()

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	levelWidth := float64(levelData.CurrentLevel.Width)
	levelHeight := float64(levelData.CurrentLevel.Height)

	target.X = clampCameraAxis(target.X, screenWidth, levelWidth)
	target.Y = clampCameraAxis(target.Y, screenHeight, levelHeight)

	// Center the camera on the constrained target position, with some smoothing.
	camera.Position.X += (target.X - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (target.Y - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampCameraAxis keeps the view inside the level. A level smaller than the
// screen is centered.
func clampCameraAxis(pos, screen, level float64) float64 {
	if level <= screen {
		return level / 2
	}
	return math.Max(screen/2, math.Min(level-screen/2, pos))
}

// updateScreenShake sets the camera's shake offset and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		camera.Shake.X, camera.Shake.Y = 0, 0
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	// Calculate decaying intensity
	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	// Oscillating offset using sine/cosine for smooth shake
	camera.Shake.X = math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	camera.Shake.Y = math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect. A weaker shake never
// replaces a stronger one already running.
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	if intensity <= 0 || duration <= 0 {
		return
	}
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
	} else {
		cameraEntry.AddComponent(components.ScreenShake)
		components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
			Intensity: intensity,
			Duration:  duration,
			Elapsed:   0,
		})
	}
}

// cameraOffset converts world coordinates to screen coordinates: screen = world + offset.
func cameraOffset(e *ecs.ECS, screenWidth, screenHeight int) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0, false
	}
	camera := components.Camera.Get(cameraEntry)
	return float64(screenWidth)/2 - camera.Position.X - camera.Shake.X,
		float64(screenHeight)/2 - camera.Position.Y - camera.Shake.Y, true
}
