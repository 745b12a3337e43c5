package systems

import (
	"log"
	"math"

	"github.com/automoto/trailgunner/components"
	cfg "github.com/automoto/trailgunner/config"
	"github.com/automoto/trailgunner/playercontrol"
	"github.com/automoto/trailgunner/systems/factory"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// Handles below refer to entities by id and look their components up on each
// call, so they stay valid when an entry changes archetype. They are plain
// values and compare equal when they name the same entity.

// playerHandle is the player's input source, transform, mover and animator.
type playerHandle struct {
	ecs    *ecs.ECS
	entity donburi.Entity
}

func (p playerHandle) entry() (*donburi.Entry, bool) {
	if !p.ecs.World.Valid(p.entity) {
		return nil, false
	}
	return p.ecs.World.Entry(p.entity), true
}

func (p playerHandle) Position() dmath.Vec2 {
	e, ok := p.entry()
	if !ok {
		return dmath.Vec2{}
	}
	return components.Object.Get(e).Center()
}

func (p playerHandle) Yaw() float64 {
	e, ok := p.entry()
	if !ok {
		return 0
	}
	return components.Player.Get(e).Yaw
}

func (p playerHandle) SetYaw(yaw float64) {
	if e, ok := p.entry(); ok {
		components.Player.Get(e).Yaw = yaw
	}
}

func (p playerHandle) SetPosition(center dmath.Vec2) {
	e, ok := p.entry()
	if !ok {
		return
	}
	obj := components.Object.Get(e)
	obj.SetCenter(center)
	obj.Update()
}

func (p playerHandle) SetHop(height float64) {
	if e, ok := p.entry(); ok {
		components.Player.Get(e).Hop = height
	}
}

func (p playerHandle) Axes() (horizontal, vertical float64) {
	e, ok := p.entry()
	if !ok {
		return 0, 0
	}
	return components.Input.Get(e).Axes()
}

func (p playerHandle) animator() (*components.AnimatorData, bool) {
	e, ok := p.entry()
	if !ok {
		return nil, false
	}
	return components.Animator.Get(e), true
}

func (p playerHandle) LayerIndex(name string) int {
	a, ok := p.animator()
	if !ok {
		return -1
	}
	return a.LayerIndex(name)
}

func (p playerHandle) SetFloat(name string, value float64) {
	if a, ok := p.animator(); ok {
		a.SetFloat(name, value)
	}
}

func (p playerHandle) SetTrigger(name string) {
	if a, ok := p.animator(); ok {
		a.SetTrigger(name)
	}
}

func (p playerHandle) SetLayerWeight(layer int, weight float64) {
	if a, ok := p.animator(); ok {
		a.SetLayerWeight(layer, weight)
	}
}

// Move slides the player by delta, stopping at solid objects one axis at a time.
func (p playerHandle) Move(delta dmath.Vec2) {
	e, ok := p.entry()
	if !ok {
		return
	}
	moveAndCollide(components.Object.Get(e).Object, delta)
}

// targetHandle exposes a target entity to the controller.
type targetHandle struct {
	ecs    *ecs.ECS
	entity donburi.Entity
}

func (t targetHandle) entry() (*donburi.Entry, bool) {
	if !t.ecs.World.Valid(t.entity) {
		return nil, false
	}
	return t.ecs.World.Entry(t.entity), true
}

func (t targetHandle) Position() dmath.Vec2 {
	e, ok := t.entry()
	if !ok {
		return dmath.Vec2{}
	}
	return components.Object.Get(e).Center()
}

// TakeDamage queues damage for the target system. Hits on a dead or removed
// target are dropped.
func (t targetHandle) TakeDamage(amount int) {
	e, ok := t.entry()
	if !ok || components.Target.Get(e).Dead {
		return
	}
	if !e.HasComponent(components.DamageEvent) {
		donburi.Add(e, components.DamageEvent, &components.DamageEventData{})
	}
	dmg := components.DamageEvent.Get(e)
	dmg.Amount += amount
	dmg.Hits++
}

func (t targetHandle) OnDestroyed(fn func()) playercontrol.Subscription {
	e, ok := t.entry()
	if !ok {
		return (*components.Subscription)(nil)
	}
	return components.Target.Get(e).Destroyed.Subscribe(fn)
}

// gapHandle starts scripted traversals across a gap entity.
type gapHandle struct {
	ecs    *ecs.ECS
	entity donburi.Entity
}

// Traverse carries t from its current position to the far side of the gap.
// The transform must also be a components.Placer; anything else lands
// immediately.
func (g gapHandle) Traverse(t playercontrol.Transform, done func()) {
	placer, ok := t.(components.Placer)
	if !ok || !g.ecs.World.Valid(g.entity) {
		log.Printf("Warning: gap traversal skipped for %T", t)
		done()
		return
	}
	e := g.ecs.World.Entry(g.entity)
	gap := components.Gap.Get(e)
	area := components.Object.Get(e)

	from := t.Position()
	to := landingPoint(gap, area.Object, from)

	duration := gap.Duration
	if duration <= 0 {
		duration = cfg.Gap.Duration
	}

	if !e.HasComponent(components.Traversal) {
		e.AddComponent(components.Traversal)
	}
	components.Traversal.SetValue(e, components.TraversalData{
		Subject: placer,
		From:    from,
		To:      to,
		Height:  cfg.Gap.HopHeight,
		Tween:   gween.New(0, 1, float32(duration), ease.InOutQuad),
		Done:    done,
	})

	GetOrCreateStats(g.ecs).Jumps++
}

// landingPoint returns where a hop entering at from comes down. Without an
// explicit landing the entry point is mirrored across the gap's short axis
// and pushed clear of the edge.
func landingPoint(gap *components.GapData, area *resolv.Object, from dmath.Vec2) dmath.Vec2 {
	if gap.HasLanding {
		return gap.Landing
	}

	clearance := math.Max(cfg.Player.CollisionWidth, cfg.Player.CollisionHeight)/2 + 1
	centerX := area.X + area.W/2
	centerY := area.Y + area.H/2

	to := from
	if area.W <= area.H {
		if from.X < centerX {
			to.X = area.X + area.W + clearance
		} else {
			to.X = area.X - clearance
		}
	} else {
		if from.Y < centerY {
			to.Y = area.Y + area.H + clearance
		} else {
			to.Y = area.Y - clearance
		}
	}
	return to
}

// effectsService spawns shot flashes.
type effectsService struct {
	ecs *ecs.ECS
}

func (s effectsService) SpawnShot(at dmath.Vec2) {
	factory.CreateShotEffect(s.ecs, at)
	TriggerScreenShake(s.ecs, cfg.ScreenShake.ShotIntensity, cfg.ScreenShake.ShotDuration)
	GetOrCreateStats(s.ecs).Shots++
}

// footstepTrail leaves prints on either side of the walking line.
type footstepTrail struct {
	ecs *ecs.ECS
}

func (f footstepTrail) LeaveFootstep(at dmath.Vec2, yaw float64, right bool) {
	side := -1.0
	if right {
		side = 1.0
	}
	offset := side * cfg.Footsteps.FootOffset
	pos := dmath.Vec2{
		X: at.X - math.Sin(yaw)*offset,
		Y: at.Y + math.Cos(yaw)*offset,
	}
	factory.CreateFootprint(f.ecs, pos, yaw, right)
	trimFootprints(f.ecs, cfg.Footsteps.MaxPrints)
	GetOrCreateStats(f.ecs).Footsteps++
}

// stepEvents forwards the walk cycle's foot contacts.
type stepEvents struct {
	ecs    *ecs.ECS
	entity donburi.Entity
}

func (s stepEvents) subscribe(pick func(*components.AnimatorData) *components.Signal, fn func()) playercontrol.Subscription {
	if !s.ecs.World.Valid(s.entity) {
		return (*components.Subscription)(nil)
	}
	return pick(components.Animator.Get(s.ecs.World.Entry(s.entity))).Subscribe(fn)
}

func (s stepEvents) OnLeftStep(fn func()) playercontrol.Subscription {
	return s.subscribe(func(a *components.AnimatorData) *components.Signal { return a.LeftStep }, fn)
}

func (s stepEvents) OnRightStep(fn func()) playercontrol.Subscription {
	return s.subscribe(func(a *components.AnimatorData) *components.Signal { return a.RightStep }, fn)
}

// ControllerConfig builds controller tuning from the live configuration.
func ControllerConfig() playercontrol.Config {
	c := playercontrol.Config{
		Speed:                   cfg.Player.Speed,
		ShootingCooldown:        cfg.Player.ShootingCooldown,
		ShotDamage:              cfg.Player.ShotDamage,
		MuzzleOffset:            cfg.Player.MuzzleOffset,
		ResumeShootingAfterJump: cfg.Player.ResumeShootingAfterJump,
	}
	if cfg.Player.LogController {
		c.Logger = log.New(log.Writer(), "player: ", log.Flags())
	}
	return c
}

// AttachController wires a controller to a player entity and enables it.
func AttachController(ecs *ecs.ECS, playerEntry *donburi.Entry) *playercontrol.Controller {
	handle := playerHandle{ecs: ecs, entity: playerEntry.Entity()}
	controller := playercontrol.NewController(ControllerConfig(), playercontrol.Deps{
		Input:     handle,
		Mover:     handle,
		Transform: handle,
		Animator:  handle,
		Effects:   effectsService{ecs: ecs},
		Trail:     footstepTrail{ecs: ecs},
		Steps:     stepEvents{ecs: ecs, entity: playerEntry.Entity()},
	})
	components.Player.Get(playerEntry).Controller = controller
	controller.Enable()
	return controller
}

// triggerHandle maps a trigger entity to what the controller understands.
func triggerHandle(ecs *ecs.ECS, entry *donburi.Entry) (any, bool) {
	switch {
	case entry.HasComponent(components.Target):
		return targetHandle{ecs: ecs, entity: entry.Entity()}, true
	case entry.HasComponent(components.Gap):
		return gapHandle{ecs: ecs, entity: entry.Entity()}, true
	}
	return nil, false
}
