package systems

import (
	"fmt"

	"github.com/automoto/trailgunner/components"
	cfg "github.com/automoto/trailgunner/config"
	"github.com/automoto/trailgunner/fonts"
	"github.com/automoto/trailgunner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the player state, cooldown bar and counters in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	controller := components.Player.Get(playerEntry).Controller
	if controller == nil {
		return
	}

	margin := cfg.UI.Margin
	face := fonts.HUD.Get()
	small := fonts.Small.Get()

	status := fmt.Sprintf("%s  targets in range: %d", controller.State(), len(controller.Targets()))
	text.Draw(screen, status, face, int(margin), int(margin+cfg.UI.HUDFontSize), cfg.UI.TextColor)

	// Cooldown fills up until the next shot can fire.
	barY := float32(margin + cfg.UI.HUDFontSize + 6)
	vector.FillRect(screen,
		float32(margin), barY,
		float32(cfg.UI.CooldownWidth), float32(cfg.UI.CooldownHeight),
		cfg.UI.CooldownBgColor, false)
	vector.FillRect(screen,
		float32(margin), barY,
		float32(cfg.UI.CooldownWidth*cooldownRatio(controller.TimeSinceLastShot(), controller.Config().ShootingCooldown)),
		float32(cfg.UI.CooldownHeight),
		cfg.UI.CooldownFgColor, false)

	stats := GetOrCreateStats(ecs)
	counters := fmt.Sprintf("destroyed: %d  shots: %d  jumps: %d", stats.TargetsDestroyed, stats.Shots, stats.Jumps)
	text.Draw(screen, counters, small, int(margin), int(barY)+int(cfg.UI.CooldownHeight)+int(cfg.UI.SmallFontSize)+4, cfg.UI.TextColor)

	if levelEntry, ok := components.Level.First(ecs.World); ok {
		level := components.Level.Get(levelEntry)
		if level.Cleared {
			title := fonts.Title.Get()
			msg := "ARENA CLEAR"
			x := (screen.Bounds().Dx() - len(msg)*int(cfg.UI.HUDFontSize*1.4)) / 2
			text.Draw(screen, msg, title, x, screen.Bounds().Dy()/2, cfg.Yellow)
			hint := fmt.Sprintf("%.1fs  (best %.1fs)  R: play again", float64(level.Elapsed)*frameSeconds(), stats.BestClearSeconds)
			hx := (screen.Bounds().Dx() - len(hint)*6) / 2
			text.Draw(screen, hint, small, hx, screen.Bounds().Dy()/2+24, cfg.UI.TextColor)
		}
	}
}

// cooldownRatio returns how full the cooldown bar is, in [0, 1].
func cooldownRatio(elapsed, cooldown float64) float64 {
	if cooldown <= 0 {
		return 1
	}
	r := elapsed / cooldown
	if r > 1 {
		return 1
	}
	if r < 0 {
		return 0
	}
	return r
}
