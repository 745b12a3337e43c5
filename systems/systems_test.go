package systems

import (
	"math"
	"testing"

	"github.com/automoto/trailgunner/assets"
	"github.com/automoto/trailgunner/components"
	cfg "github.com/automoto/trailgunner/config"
	"github.com/automoto/trailgunner/playercontrol"
	"github.com/automoto/trailgunner/systems/factory"
	"github.com/automoto/trailgunner/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// newTestWorld builds a world from level and places the player at x, y with
// an enabled controller.
func newTestWorld(t *testing.T, level assets.Level, x, y float64) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	loadedStats, loadedSettings = nil, nil

	if level.Width == 0 {
		level.Width, level.Height = 640, 640
	}
	e := ecs.NewECS(donburi.NewWorld())
	levelEntry := factory.CreateLevelAtIndex(e, []assets.Level{level}, 0)
	factory.PopulateLevel(e, components.Level.Get(levelEntry).CurrentLevel)
	player := factory.CreatePlayer(e, x, y)
	AttachController(e, player)
	factory.CreateCamera(e, components.Object.Get(player).Center())
	return e, player
}

func controllerOf(player *donburi.Entry) *playercontrol.Controller {
	return components.Player.Get(player).Controller
}

func setControllerConfig(player *donburi.Entry, edit func(*playercontrol.Config)) {
	c := controllerOf(player).Config()
	edit(&c)
	controllerOf(player).SetConfig(c)
}

func countEntries(w donburi.World, c interface {
	Each(donburi.World, func(*donburi.Entry))
}) int {
	n := 0
	c.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func firstTarget(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := tags.Target.First(e.World)
	if !ok {
		t.Fatal("no target in world")
	}
	return entry
}

func TestTargetInRangeStartsShooting(t *testing.T) {
	e, player := newTestWorld(t, assets.Level{
		Targets: []assets.TargetSpawn{{Name: "near", X: 150, Y: 100}},
	}, 100, 100)

	UpdateTriggers(e)

	c := controllerOf(player)
	if got := c.State().Kind; got != playercontrol.Shooting {
		t.Fatalf("state = %s, want shooting", got)
	}
	if got := len(c.Targets()); got != 1 {
		t.Fatalf("tracked targets = %d, want 1", got)
	}

	// A second pass with nothing changed must not enter again.
	UpdateTriggers(e)
	if got := len(c.Targets()); got != 1 {
		t.Fatalf("tracked targets after second pass = %d, want 1", got)
	}
}

func TestTargetOutOfRangeIsIgnored(t *testing.T) {
	e, player := newTestWorld(t, assets.Level{
		Targets: []assets.TargetSpawn{{Name: "far", X: 500, Y: 500}},
	}, 100, 100)

	UpdateTriggers(e)

	if got := controllerOf(player).State().Kind; got != playercontrol.Walking {
		t.Fatalf("state = %s, want walking", got)
	}
}

func TestTargetLeavingRangeStopsShooting(t *testing.T) {
	e, player := newTestWorld(t, assets.Level{
		Targets: []assets.TargetSpawn{{Name: "runner", X: 150, Y: 100}},
	}, 100, 100)
	UpdateTriggers(e)

	obj := components.Object.Get(firstTarget(t, e))
	obj.SetCenter(dmath.Vec2{X: 600, Y: 600})
	obj.Update()
	UpdateTriggers(e)

	c := controllerOf(player)
	if got := c.State().Kind; got != playercontrol.Walking {
		t.Fatalf("state = %s, want walking", got)
	}
	if got := len(c.Targets()); got != 0 {
		t.Fatalf("tracked targets = %d, want 0", got)
	}
	if got := components.Target.Get(firstTarget(t, e)).Destroyed.Len(); got != 0 {
		t.Fatalf("destroyed listeners = %d, want 0 after exit", got)
	}
}

func TestShotDestroysTargetAndClearsLevel(t *testing.T) {
	e, player := newTestWorld(t, assets.Level{
		Name:    "test",
		Targets: []assets.TargetSpawn{{Name: "weak", X: 150, Y: 100, Health: 10}},
	}, 100, 100)
	setControllerConfig(player, func(c *playercontrol.Config) {
		c.ShootingCooldown = 0
		c.ShotDamage = 10
	})

	UpdateTriggers(e)
	UpdatePlayer(e)

	target := firstTarget(t, e)
	dmg := components.DamageEvent.Get(target)
	if dmg.Amount != 10 || dmg.Hits != 1 {
		t.Fatalf("queued damage = %+v, want 10 from 1 hit", *dmg)
	}

	UpdateTargets(e)

	if _, ok := tags.Target.First(e.World); ok {
		t.Fatal("target still in world after lethal damage")
	}
	if got := controllerOf(player).State().Kind; got != playercontrol.Walking {
		t.Fatalf("state = %s, want walking", got)
	}
	if got := countEntries(e.World, components.Effect); got != 2 {
		t.Fatalf("effects = %d, want shot and explosion", got)
	}

	stats := GetOrCreateStats(e)
	if stats.Shots != 1 || stats.TargetsDestroyed != 1 || stats.LevelsCleared != 1 {
		t.Fatalf("stats = %+v", *stats)
	}
	levelEntry, _ := components.Level.First(e.World)
	if !components.Level.Get(levelEntry).Cleared {
		t.Fatal("level not marked cleared")
	}

	// The removed target must not produce an exit or a panic.
	UpdateTriggers(e)
	if got := len(components.Player.Get(player).Overlapping); got != 0 {
		t.Fatalf("overlapping = %d, want 0", got)
	}
}

func TestDamageAccumulatesAndFlashes(t *testing.T) {
	e, _ := newTestWorld(t, assets.Level{
		Targets: []assets.TargetSpawn{{Name: "tank", X: 400, Y: 400, Health: 100}},
	}, 100, 100)

	target := firstTarget(t, e)
	handle := targetHandle{ecs: e, entity: target.Entity()}
	handle.TakeDamage(30)
	handle.TakeDamage(25)

	UpdateTargets(e)

	if got := components.Health.Get(target).Current; got != 45 {
		t.Fatalf("health = %d, want 45", got)
	}
	if target.HasComponent(components.DamageEvent) {
		t.Fatal("damage event not consumed")
	}
	if got := components.Flash.Get(target).Duration; got != cfg.Target.FlashFrames {
		t.Fatalf("flash = %d, want %d", got, cfg.Target.FlashFrames)
	}
}

func TestDestroyedSignalFiresOnce(t *testing.T) {
	e, _ := newTestWorld(t, assets.Level{
		Targets: []assets.TargetSpawn{
			{Name: "a", X: 400, Y: 400, Health: 5},
			{Name: "b", X: 500, Y: 500, Health: 5},
		},
	}, 100, 100)

	target := firstTarget(t, e)
	fired := 0
	components.Target.Get(target).Destroyed.Subscribe(func() { fired++ })

	handle := targetHandle{ecs: e, entity: target.Entity()}
	handle.TakeDamage(50)
	UpdateTargets(e)
	handle.TakeDamage(50)
	UpdateTargets(e)

	if fired != 1 {
		t.Fatalf("destroyed fired %d times, want 1", fired)
	}
	if e.World.Valid(handle.entity) {
		t.Fatal("destroyed target still valid")
	}
}

func TestTargetHandlesCompareByEntity(t *testing.T) {
	e, _ := newTestWorld(t, assets.Level{
		Targets: []assets.TargetSpawn{{Name: "a", X: 400, Y: 400}},
	}, 100, 100)
	target := firstTarget(t, e)

	a, _ := triggerHandle(e, target)
	b, _ := triggerHandle(e, target)
	if a != b {
		t.Fatal("handles for the same entity differ")
	}
	if _, ok := a.(playercontrol.Target); !ok {
		t.Fatalf("%T is not a playercontrol.Target", a)
	}
}

func TestGapHopCarriesPlayerAcross(t *testing.T) {
	e, player := newTestWorld(t, assets.Level{
		Gaps: []assets.GapSpawn{{
			Name:     "chasm",
			Area:     assets.Rect{X: 200, Y: 0, Width: 32, Height: 400},
			Duration: 0.5,
		}},
	}, 190, 100)
	startY := components.Object.Get(player).Center().Y

	UpdateTriggers(e)

	c := controllerOf(player)
	if got := c.State().Kind; got != playercontrol.Jumping {
		t.Fatalf("state = %s, want jumping", got)
	}
	gapEntry, _ := tags.Gap.First(e.World)
	if !gapEntry.HasComponent(components.Traversal) {
		t.Fatal("gap has no traversal")
	}

	sawHop := false
	for i := 0; i < 40; i++ {
		UpdateGaps(e)
		if components.Player.Get(player).Hop > 0 {
			sawHop = true
		}
	}

	if !sawHop {
		t.Fatal("player never left the ground")
	}
	if got := c.State().Kind; got != playercontrol.Walking {
		t.Fatalf("state after landing = %s, want walking", got)
	}
	center := components.Object.Get(player).Center()
	wantX := 232 + cfg.Player.CollisionWidth/2 + 1
	if math.Abs(center.X-wantX) > 1e-6 || center.Y != startY {
		t.Fatalf("landed at %v, want (%v, %v)", center, wantX, startY)
	}
	if components.Player.Get(player).Hop != 0 {
		t.Fatal("hop not reset on landing")
	}
	if gapEntry.HasComponent(components.Traversal) {
		t.Fatal("traversal not removed")
	}
	if got := GetOrCreateStats(e).Jumps; got != 1 {
		t.Fatalf("jumps = %d, want 1", got)
	}
}

func TestLandingPoint(t *testing.T) {
	clearance := math.Max(cfg.Player.CollisionWidth, cfg.Player.CollisionHeight)/2 + 1

	e, _ := newTestWorld(t, assets.Level{
		Gaps: []assets.GapSpawn{
			{Name: "tall", Area: assets.Rect{X: 100, Y: 300, Width: 20, Height: 200}},
			{Name: "wide", Area: assets.Rect{X: 300, Y: 100, Width: 200, Height: 20}},
		},
	}, 600, 600)

	areas := map[string]*components.ObjectData{}
	tags.Gap.Each(e.World, func(entry *donburi.Entry) {
		areas[components.Gap.Get(entry).Name] = components.Object.Get(entry)
	})

	tests := []struct {
		name string
		gap  components.GapData
		area string
		from dmath.Vec2
		want dmath.Vec2
	}{
		{"tall from left", components.GapData{}, "tall", dmath.Vec2{X: 95, Y: 350}, dmath.Vec2{X: 120 + clearance, Y: 350}},
		{"tall from right", components.GapData{}, "tall", dmath.Vec2{X: 125, Y: 350}, dmath.Vec2{X: 100 - clearance, Y: 350}},
		{"wide from above", components.GapData{}, "wide", dmath.Vec2{X: 400, Y: 95}, dmath.Vec2{X: 400, Y: 120 + clearance}},
		{"wide from below", components.GapData{}, "wide", dmath.Vec2{X: 400, Y: 125}, dmath.Vec2{X: 400, Y: 100 - clearance}},
		{"explicit landing", components.GapData{HasLanding: true, Landing: dmath.Vec2{X: 7, Y: 9}}, "wide", dmath.Vec2{X: 400, Y: 95}, dmath.Vec2{X: 7, Y: 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := landingPoint(&tt.gap, areas[tt.area].Object, tt.from)
			if got != tt.want {
				t.Fatalf("landingPoint = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMoveStopsAtWalls(t *testing.T) {
	_, player := newTestWorld(t, assets.Level{
		Walls: []assets.Rect{{X: 120, Y: 0, Width: 16, Height: 300}},
	}, 100, 100)
	obj := components.Object.Get(player)

	moveAndCollide(obj.Object, dmath.Vec2{X: 20, Y: 0})
	if got := obj.X + obj.W; got != 120 {
		t.Fatalf("right edge = %v, want flush with wall at 120", got)
	}

	// Sliding along the wall is unaffected.
	moveAndCollide(obj.Object, dmath.Vec2{X: 5, Y: 30})
	if obj.X+obj.W != 120 || obj.Y != 130 {
		t.Fatalf("after slide = (%v, %v), want (106, 130)", obj.X, obj.Y)
	}

	moveAndCollide(obj.Object, dmath.Vec2{X: -10, Y: 0})
	if obj.X != 96 {
		t.Fatalf("x = %v, want 96 after moving away", obj.X)
	}
}

func TestWalkingLeavesAlternatingFootprints(t *testing.T) {
	e, player := newTestWorld(t, assets.Level{}, 100, 100)
	components.Input.Get(player).Horizontal = 1

	for i := 0; i < 60; i++ {
		UpdatePlayer(e)
	}

	var left, right int
	components.Footprint.Each(e.World, func(entry *donburi.Entry) {
		if components.Footprint.Get(entry).Right {
			right++
		} else {
			left++
		}
	})
	if left == 0 || right == 0 {
		t.Fatalf("footprints left=%d right=%d, want both feet", left, right)
	}
	if diff := left - right; diff < -1 || diff > 1 {
		t.Fatalf("footprints left=%d right=%d do not alternate", left, right)
	}
	if got := GetOrCreateStats(e).Footsteps; got != left+right {
		t.Fatalf("footsteps stat = %d, want %d", got, left+right)
	}
}

func TestDisabledControllerLeavesNoFootprints(t *testing.T) {
	e, player := newTestWorld(t, assets.Level{}, 100, 100)
	components.Input.Get(player).Horizontal = 1
	DetachControllers(e)

	for i := 0; i < 60; i++ {
		UpdatePlayer(e)
	}

	if got := countEntries(e.World, components.Footprint); got != 0 {
		t.Fatalf("footprints = %d, want 0", got)
	}
	anim := components.Animator.Get(player)
	if anim.LeftStep.Len() != 0 || anim.RightStep.Len() != 0 {
		t.Fatal("step listeners still registered after disable")
	}
}

func TestFootprintsFadeAndTrim(t *testing.T) {
	e, _ := newTestWorld(t, assets.Level{}, 100, 100)

	for i := 0; i < 5; i++ {
		factory.CreateFootprint(e, dmath.Vec2{X: float64(i)}, 0, i%2 == 1)
	}
	trimFootprints(e, 3)

	var xs []float64
	components.Footprint.Each(e.World, func(entry *donburi.Entry) {
		xs = append(xs, components.Footprint.Get(entry).Position.X)
	})
	if len(xs) != 3 {
		t.Fatalf("footprints = %d, want 3", len(xs))
	}
	for _, x := range xs {
		if x < 2 {
			t.Fatalf("oldest print at x=%v survived the trim", x)
		}
	}

	for i := 0; i < cfg.Footsteps.FadeFrames; i++ {
		UpdateFootprints(e)
	}
	if got := countEntries(e.World, components.Footprint); got != 0 {
		t.Fatalf("footprints after fade = %d, want 0", got)
	}
}

func TestEffectsExpire(t *testing.T) {
	e, _ := newTestWorld(t, assets.Level{}, 100, 100)
	factory.CreateShotEffect(e, dmath.Vec2{X: 10, Y: 10})

	for i := 0; i < cfg.Effects.ShotFrames-1; i++ {
		UpdateEffects(e)
	}
	if got := countEntries(e.World, components.Effect); got != 1 {
		t.Fatalf("effects before expiry = %d, want 1", got)
	}
	UpdateEffects(e)
	if got := countEntries(e.World, components.Effect); got != 0 {
		t.Fatalf("effects after expiry = %d, want 0", got)
	}
}

func TestAdvancePatrolPingPongs(t *testing.T) {
	patrol := &components.PatrolData{Points: make([]dmath.Vec2, 3)}

	var legs []int
	for i := 0; i < 6; i++ {
		advancePatrol(patrol)
		legs = append(legs, patrol.Leg)
	}

	want := []int{1, 2, 1, 0, 1, 2}
	for i := range want {
		if legs[i] != want[i] {
			t.Fatalf("legs = %v, want %v", legs, want)
		}
	}
}

func TestPatrolMovesTarget(t *testing.T) {
	e, _ := newTestWorld(t, assets.Level{
		Targets: []assets.TargetSpawn{{
			Name:           "walker",
			X:              300,
			Y:              300,
			Patrol:         []dmath.Vec2{{X: 300, Y: 300}, {X: 360, Y: 300}},
			PatrolDuration: 0.5,
		}},
	}, 100, 100)
	target := firstTarget(t, e)
	patrol := components.Patrol.Get(target)

	frames := 0
	for !patrol.Reverse && frames < cfg.C.TPS {
		UpdateTargets(e)
		frames++
	}

	// Half a second at the fixed step reaches the far end.
	if !patrol.Reverse {
		t.Fatal("patrol did not turn around at the end")
	}
	if want := cfg.C.TPS / 2; frames < want-1 || frames > want+1 {
		t.Fatalf("leg took %d frames, want about %d", frames, want)
	}
	if got := components.Object.Get(target).Center().X; got != 360 {
		t.Fatalf("x after one leg = %v, want 360", got)
	}
}

func TestCooldownRatio(t *testing.T) {
	tests := []struct {
		elapsed, cooldown, want float64
	}{
		{0, 1, 0},
		{0.5, 1, 0.5},
		{2, 1, 1},
		{0.3, 0, 1},
	}
	for _, tt := range tests {
		if got := cooldownRatio(tt.elapsed, tt.cooldown); got != tt.want {
			t.Errorf("cooldownRatio(%v, %v) = %v, want %v", tt.elapsed, tt.cooldown, got, tt.want)
		}
	}
}

func TestApplyTuningUpdatesControllers(t *testing.T) {
	e, player := newTestWorld(t, assets.Level{}, 100, 100)
	t.Cleanup(func() { cfg.DefaultTuning().Apply() })

	cfg.Player.Speed = 42
	ApplyTuning(e)

	if got := controllerOf(player).Config().Speed; got != 42 {
		t.Fatalf("speed = %v, want 42", got)
	}
}

func TestAvatarBarrelFollowsAimingLayer(t *testing.T) {
	e, player := newTestWorld(t, assets.Level{
		Targets: []assets.TargetSpawn{{Name: "near", X: 150, Y: 100}},
	}, 100, 100)

	if a := avatarOf(player); a.Barrel || a.Body != cfg.PlayerColor {
		t.Fatalf("idle avatar = %+v, want no barrel", a)
	}

	UpdateTriggers(e)
	UpdatePlayerAnimation(e)

	a := avatarOf(player)
	if !a.Barrel || a.Body != cfg.PlayerAimColor {
		t.Fatalf("aiming avatar = %+v, want barrel in aim color", a)
	}
	if got := math.Hypot(a.Tip.X-a.Center.X, a.Tip.Y-a.Center.Y); got < cfg.Player.MuzzleOffset-1e-9 {
		t.Fatalf("barrel length = %v, want at least %v", got, cfg.Player.MuzzleOffset)
	}

	obj := components.Object.Get(firstTarget(t, e))
	obj.SetCenter(dmath.Vec2{X: 600, Y: 600})
	obj.Update()
	UpdateTriggers(e)

	if a := avatarOf(player); a.Barrel || a.Body != cfg.PlayerColor {
		t.Fatalf("avatar after target left = %+v, want no barrel", a)
	}
}

func TestJumpTriggerStartsStretchCue(t *testing.T) {
	e, player := newTestWorld(t, assets.Level{
		Gaps: []assets.GapSpawn{{
			Name:     "chasm",
			Area:     assets.Rect{X: 200, Y: 0, Width: 32, Height: 400},
			Duration: 0.5,
		}},
	}, 190, 100)
	rest := cfg.Player.CollisionWidth / 2

	UpdateTriggers(e)
	UpdatePlayerAnimation(e)

	anim := components.Animator.Get(player)
	if anim.JumpCue != cfg.Player.JumpCueFrames {
		t.Fatalf("jump cue = %d, want %d", anim.JumpCue, cfg.Player.JumpCueFrames)
	}
	if anim.ConsumeTrigger(playercontrol.JumpParam) {
		t.Fatal("jump trigger was left pending")
	}
	if got := avatarOf(player).Radius; got <= rest {
		t.Fatalf("radius at take-off = %v, want above %v", got, rest)
	}

	for i := 0; i < cfg.Player.JumpCueFrames; i++ {
		UpdatePlayerAnimation(e)
	}
	if anim.JumpCue != 0 {
		t.Fatalf("jump cue = %d after it ran out", anim.JumpCue)
	}
	if got := avatarOf(player).Radius; got != rest {
		t.Fatalf("radius after cue = %v, want %v", got, rest)
	}
}

func TestWalkBobScalesWithSpeed(t *testing.T) {
	_, player := newTestWorld(t, assets.Level{}, 100, 100)
	ground := components.Object.Get(player).Center().Y

	anim := components.Animator.Get(player)
	// Two frames in: a quarter of the cycle, midway between foot contacts.
	anim.Walk.Advance(3)

	anim.SetFloat(playercontrol.SpeedParam, 1)
	if got := ground - avatarOf(player).Center.Y; math.Abs(got-cfg.Player.BobHeight) > 1e-9 {
		t.Fatalf("bob at full speed = %v, want %v", got, cfg.Player.BobHeight)
	}

	anim.SetFloat(playercontrol.SpeedParam, 0.5)
	if got := ground - avatarOf(player).Center.Y; math.Abs(got-cfg.Player.BobHeight/2) > 1e-9 {
		t.Fatalf("bob at half speed = %v, want %v", got, cfg.Player.BobHeight/2)
	}

	anim.SetFloat(playercontrol.SpeedParam, 0)
	if got := avatarOf(player).Center.Y; got != ground {
		t.Fatalf("standing avatar at y=%v, want %v", got, ground)
	}
}
