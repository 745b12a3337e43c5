package systems

import (
	cfg "github.com/automoto/trailgunner/config"
	"github.com/automoto/trailgunner/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles pause and the debug overlay.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := GetOrCreateInput(ecs)

	if GetAction(input, cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
	}

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings := GetOrCreateSettings(ecs)
		settings.Debug = !settings.Debug
		SaveCurrentSettings(settings)
	}
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	pause := GetOrCreatePause(ecs)

	if !pause.IsPaused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Pause.OverlayColor,
		false,
	)

	fontFace := fonts.HUD.Get()
	titleWidth := len(cfg.Pause.Title) * 12
	text.Draw(screen, cfg.Pause.Title, fontFace, int((width-float64(titleWidth))/2), int(height/2), cfg.Pause.TextColor)

	hintFont := fonts.Small.Get()
	hintWidth := len(cfg.Pause.Hint) * 6
	hintX := int((width - float64(hintWidth)) / 2)
	text.Draw(screen, cfg.Pause.Hint, hintFont, hintX, int(height)-12, cfg.Pause.TextColor)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused.
// This is an alias for WithPauseCheck for semantic clarity.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}
