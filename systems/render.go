package systems

import (
	"image/color"
	"math"

	"github.com/automoto/trailgunner/components"
	cfg "github.com/automoto/trailgunner/config"
	"github.com/automoto/trailgunner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// view is the visible world rectangle plus the world-to-screen offset.
type view struct {
	camX, camY             float64
	minX, minY, maxX, maxY float64
}

// Culling padding keeps shapes from popping in at the screen edges.
const cullPadding = 64.0

func newView(ecs *ecs.ECS, screen *ebiten.Image) (view, bool) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY, ok := cameraOffset(ecs, width, height)
	if !ok {
		return view{}, false
	}
	return view{
		camX: camX,
		camY: camY,
		minX: -camX - cullPadding,
		minY: -camY - cullPadding,
		maxX: -camX + float64(width) + cullPadding,
		maxY: -camY + float64(height) + cullPadding,
	}, true
}

func (v view) visible(x, y, w, h float64) bool {
	return x+w >= v.minX && x <= v.maxX && y+h >= v.minY && y <= v.maxY
}

func (v view) point(x, y float64) (float32, float32) {
	return float32(x + v.camX), float32(y + v.camY)
}

// DrawFootprints draws fading prints as small ovals turned along the walk direction.
func DrawFootprints(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}

	components.Footprint.Each(ecs.World, func(e *donburi.Entry) {
		fp := components.Footprint.Get(e)
		if !v.visible(fp.Position.X-4, fp.Position.Y-4, 8, 8) {
			return
		}
		c := fadeColor(cfg.FootprintColor, fp.Alpha())
		// heel and toe along the facing direction
		dx, dy := math.Cos(fp.Yaw)*2, math.Sin(fp.Yaw)*2
		hx, hy := v.point(fp.Position.X-dx, fp.Position.Y-dy)
		tx, ty := v.point(fp.Position.X+dx, fp.Position.Y+dy)
		vector.FillCircle(screen, hx, hy, 1.5, c, true)
		vector.FillCircle(screen, tx, ty, 2, c, true)
	})
}

// DrawGaps draws gap areas.
func DrawGaps(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}

	tags.Gap.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if !v.visible(o.X, o.Y, o.W, o.H) {
			return
		}
		x, y := v.point(o.X, o.Y)
		vector.FillRect(screen, x, y, float32(o.W), float32(o.H), cfg.GapColor, false)
		vector.StrokeRect(screen, x, y, float32(o.W), float32(o.H), 1, cfg.GapEdgeColor, false)
	})
}

// DrawTargets draws every target with a health bar above it.
func DrawTargets(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}
	active := activeTargetEntity(ecs)

	tags.Target.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		if !v.visible(o.X, o.Y, o.W, o.H) {
			return
		}

		c := color.Color(cfg.TargetColor)
		if flash := components.Flash.Get(e); flash.Duration > 0 {
			c = tint(cfg.TargetColor, flash.R, flash.G, flash.B)
		}

		x, y := v.point(o.X, o.Y)
		vector.FillRect(screen, x, y, float32(o.W), float32(o.H), c, false)
		if e.Entity() == active {
			vector.StrokeRect(screen, x-2, y-2, float32(o.W)+4, float32(o.H)+4, 1, cfg.Yellow, false)
		}

		hp := components.Health.Get(e)
		barWidth := float32(o.W)
		barY := y - 6
		vector.FillRect(screen, x, barY, barWidth, 3, cfg.Red, false)
		vector.FillRect(screen, x, barY, barWidth*float32(hp.Ratio()), 3, cfg.Green, false)
	})
}

// DrawPlayer draws the player with a facing marker. The body is lifted by the
// hop height while a gap is being crossed.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		center := o.Center()

		// shadow stays on the ground
		sx, sy := v.point(center.X, center.Y+o.H/2)
		vector.FillCircle(screen, sx, sy, float32(o.W/2), cfg.Shadow, true)

		a := avatarOf(e)
		cx, cy := v.point(a.Center.X, a.Center.Y)
		vector.FillCircle(screen, cx, cy, float32(a.Radius), a.Body, true)

		width := float32(2)
		if a.Barrel {
			width = 3
		}
		tx, ty := v.point(a.Tip.X, a.Tip.Y)
		vector.StrokeLine(screen, cx, cy, tx, ty, width, cfg.White, true)
	})
}

// avatar is the player's body and facing marker in world space.
type avatar struct {
	Center dmath.Vec2
	Radius float64
	Body   color.Color
	Barrel bool       // aiming: the marker is a gun barrel out to the muzzle
	Tip    dmath.Vec2 // end of the facing marker
}

func avatarOf(e *donburi.Entry) avatar {
	o := components.Object.Get(e)
	player := components.Player.Get(e)
	p := playerPose(e)

	center := o.Center()
	a := avatar{
		Center: dmath.Vec2{X: center.X, Y: center.Y - player.Hop - p.Bob},
		Radius: o.W / 2 * (1 + 0.25*p.Stretch),
		Body:   cfg.PlayerColor,
	}

	reach := o.W/2 + 4
	if p.Aim > 0 {
		a.Body = cfg.PlayerAimColor
		a.Barrel = true
		reach = math.Max(reach, cfg.Player.MuzzleOffset)
	}
	a.Tip = dmath.Vec2{
		X: a.Center.X + math.Cos(player.Yaw)*reach,
		Y: a.Center.Y + math.Sin(player.Yaw)*reach,
	}
	return a
}

// DrawEffects draws shot flashes and explosions as expanding, fading circles.
func DrawEffects(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}

	components.Effect.Each(ecs.World, func(e *donburi.Entry) {
		effect := components.Effect.Get(e)
		p := effectProgress(effect, components.AutoDestroy.Get(e))

		radius := effect.Radius * (0.4 + 0.6*p)
		if !v.visible(effect.Position.X-radius, effect.Position.Y-radius, radius*2, radius*2) {
			return
		}

		base := cfg.ShotColor
		if effect.Kind == components.EffectExplosion {
			base = cfg.ExplosionColor
		}
		x, y := v.point(effect.Position.X, effect.Position.Y)
		vector.FillCircle(screen, x, y, float32(radius), fadeColor(base, 1-p), true)
	})
}

// activeTargetEntity returns the entity the first player is aiming at.
func activeTargetEntity(ecs *ecs.ECS) donburi.Entity {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return donburi.Null
	}
	controller := components.Player.Get(playerEntry).Controller
	if controller == nil {
		return donburi.Null
	}
	target, ok := controller.ActiveTarget()
	if !ok {
		return donburi.Null
	}
	if h, ok := target.(targetHandle); ok {
		return h.entity
	}
	return donburi.Null
}

func fadeColor(c color.RGBA, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	// premultiplied
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

func tint(c color.RGBA, r, g, b float32) color.RGBA {
	scale := func(v uint8, m float32) uint8 {
		return uint8(math.Min(255, float64(v)*float64(m)))
	}
	return color.RGBA{R: scale(c.R, r), G: scale(c.G, g), B: scale(c.B, b), A: c.A}
}
