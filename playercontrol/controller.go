// Package playercontrol implements the player avatar's per-frame behaviour:
// joystick movement, target tracking, cooldown-gated shooting and gap jumps.
//
// The controller never touches the engine directly. Everything it needs is
// passed in as a collaborator, and every callback it registers is owned by a
// Subscription that is released on the matching removal path.
package playercontrol

import (
	"log"
	"math"
)

// Animator parameter and layer names.
const (
	SpeedParam      = "Speed"
	JumpParam       = "Jump"
	AimingLayerName = "UpperAvatarLayer"
)

// Config holds the tunable values of a controller.
type Config struct {
	Speed            float64 // world units per second at full stick deflection
	ShootingCooldown float64 // seconds that must be exceeded between shots
	ShotDamage       int
	MuzzleOffset     float64 // distance in front of the avatar where shot effects spawn

	// ResumeShootingAfterJump returns to Shooting instead of Walking when a
	// traversal completes with targets still tracked.
	ResumeShootingAfterJump bool

	// Logger receives fire and state change messages. Nil disables logging.
	Logger *log.Logger
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		Speed:            120,
		ShootingCooldown: 1.0,
		ShotDamage:       35,
		MuzzleOffset:     14,
	}
}

// Deps are the collaborators of a controller. Trail and Steps are optional.
type Deps struct {
	Input     InputSource
	Mover     Mover
	Transform Transform
	Animator  Animator
	Effects   Effects
	Trail     FootstepTrail
	Steps     StepEvents
}

// Controller drives one avatar. It is not safe for concurrent use; the host
// calls it from the game loop only.
type Controller struct {
	cfg Config

	input     InputSource
	mover     Mover
	transform Transform
	animator  Animator
	effects   Effects
	trail     FootstepTrail
	steps     StepEvents

	aimLayer int
	state    State
	targets  targetList
	motion   Vec2

	sinceLastShot float64

	enabled   bool
	leftStep  Subscription
	rightStep Subscription
}

// NewController creates a disabled controller in the Walking state.
func NewController(cfg Config, deps Deps) *Controller {
	c := &Controller{
		cfg:       cfg,
		input:     deps.Input,
		mover:     deps.Mover,
		transform: deps.Transform,
		animator:  deps.Animator,
		effects:   deps.Effects,
		trail:     deps.Trail,
		steps:     deps.Steps,
		state:     walking(),
	}
	c.aimLayer = c.animator.LayerIndex(AimingLayerName)
	return c
}

// SetConfig swaps the tuning, e.g. after a hot reload. State is kept.
func (c *Controller) SetConfig(cfg Config) {
	c.cfg = cfg
}

// Config returns the active tuning.
func (c *Controller) Config() Config {
	return c.cfg
}

// Enable starts per-frame updates and subscribes to foot contact events.
func (c *Controller) Enable() {
	if c.enabled {
		return
	}
	c.enabled = true
	if c.steps != nil {
		c.leftStep = c.steps.OnLeftStep(c.leaveLeftFootstep)
		c.rightStep = c.steps.OnRightStep(c.leaveRightFootstep)
	}
}

// Disable stops updates and releases every subscription the controller holds.
func (c *Controller) Disable() {
	if !c.enabled {
		return
	}
	c.enabled = false
	release(c.leftStep)
	release(c.rightStep)
	c.leftStep, c.rightStep = nil, nil

	if c.targets.Len() > 0 {
		c.targets.Clear()
		c.stopShooting()
	}
}

// Enabled reports whether the controller is updating.
func (c *Controller) Enabled() bool {
	return c.enabled
}

// State returns the active state.
func (c *Controller) State() State {
	return c.state
}

// ActiveTarget returns the front of the target list.
func (c *Controller) ActiveTarget() (Target, bool) {
	return c.targets.Front()
}

// Targets returns the tracked targets in acquisition order.
func (c *Controller) Targets() []Target {
	return c.targets.Targets()
}

// TimeSinceLastShot returns the cooldown accumulator in seconds.
func (c *Controller) TimeSinceLastShot() float64 {
	return c.sinceLastShot
}

// Motion returns the displacement requested on the last update.
func (c *Controller) Motion() Vec2 {
	return c.motion
}

// Update runs one frame. dt is the frame time in seconds.
func (c *Controller) Update(dt float64) {
	if !c.enabled {
		return
	}

	switch c.state.Kind {
	case Walking:
		c.walk(dt)
	case Shooting:
		c.shoot(dt)
	case Jumping:
		// The gap owns the transform until its completion callback.
	}
}

// OnTriggerEnter is called by the host when the avatar starts overlapping
// other. Targets are acquired, gaps are jumped, anything else is ignored.
func (c *Controller) OnTriggerEnter(other any) {
	if target, ok := other.(Target); ok {
		c.addTarget(target)
		return
	}
	if gap, ok := other.(Gap); ok {
		c.jumpOver(gap)
	}
}

// OnTriggerExit is called by the host when the avatar stops overlapping other.
func (c *Controller) OnTriggerExit(other any) {
	target, ok := other.(Target)
	if !ok || !c.targets.Contains(target) {
		return
	}
	c.removeTarget(target)
}

func (c *Controller) walk(dt float64) {
	c.moveByJoystick(dt)

	if !isZero(c.motion) {
		c.transform.SetYaw(yawOf(c.motion))
	}
}

func (c *Controller) shoot(dt float64) {
	c.moveByJoystick(dt)

	target, ok := c.targets.Front()
	if !ok {
		return
	}

	if dir := sub(target.Position(), c.transform.Position()); !isZero(dir) {
		c.transform.SetYaw(yawOf(dir))
	}

	c.sinceLastShot += dt
	if c.sinceLastShot <= c.cfg.ShootingCooldown {
		return
	}

	c.sinceLastShot = 0
	c.logf("fire: %d damage, %d target(s) in range", c.cfg.ShotDamage, c.targets.Len())
	target.TakeDamage(c.cfg.ShotDamage)
	c.effects.SpawnShot(c.muzzle())
}

func (c *Controller) moveByJoystick(dt float64) {
	h, v := c.input.Axes()
	c.motion = Vec2{X: h * c.cfg.Speed * dt, Y: v * c.cfg.Speed * dt}
	c.mover.Move(c.motion)

	c.animator.SetFloat(SpeedParam, speedSignal(c.motion))
}

func (c *Controller) muzzle() Vec2 {
	pos := c.transform.Position()
	yaw := c.transform.Yaw()
	return Vec2{
		X: pos.X + math.Cos(yaw)*c.cfg.MuzzleOffset,
		Y: pos.Y + math.Sin(yaw)*c.cfg.MuzzleOffset,
	}
}

func (c *Controller) addTarget(target Target) {
	if c.targets.Contains(target) {
		return
	}

	sub := target.OnDestroyed(func() { c.targetDestroyed(target) })
	c.targets.PushBack(target, sub)

	if c.state.Kind == Walking {
		c.startShooting()
	}
}

// removeTarget handles a target leaving range. Losing the active target
// behaves exactly like its destruction.
func (c *Controller) removeTarget(target Target) {
	if front, ok := c.targets.Front(); ok && front == target {
		c.nextTarget()
		return
	}
	c.targets.Remove(target)
}

func (c *Controller) targetDestroyed(target Target) {
	if !c.targets.Contains(target) {
		return
	}
	c.removeTarget(target)
}

func (c *Controller) nextTarget() {
	c.targets.RemoveFront()

	if c.targets.Len() == 0 {
		c.stopShooting()
	}
}

func (c *Controller) startShooting() {
	c.setState(shooting())
	c.setAiming(true)
}

// stopShooting leaves Shooting. A running jump keeps its state; only the
// aiming layer is lowered.
func (c *Controller) stopShooting() {
	if c.state.Kind == Shooting {
		c.setState(walking())
	}
	c.setAiming(false)
}

func (c *Controller) setAiming(active bool) {
	weight := 0.0
	if active {
		weight = 1.0
	}
	c.animator.SetLayerWeight(c.aimLayer, weight)
}

func (c *Controller) jumpOver(gap Gap) {
	if c.state.Kind == Jumping {
		return
	}

	c.setState(jumping(gap))
	c.animator.SetTrigger(JumpParam)
	gap.Traverse(c.transform, func() { c.finishJump(gap) })
}

func (c *Controller) finishJump(gap Gap) {
	if c.state.Kind != Jumping || c.state.Gap != gap {
		return
	}

	if c.cfg.ResumeShootingAfterJump && c.targets.Len() > 0 {
		c.startShooting()
		return
	}

	c.setState(walking())
	c.setAiming(false)
}

func (c *Controller) setState(s State) {
	if c.state.Kind != s.Kind {
		c.logf("state: %s -> %s", c.state, s)
	}
	c.state = s
}

func (c *Controller) leaveLeftFootstep() {
	c.leaveFootstep(false)
}

func (c *Controller) leaveRightFootstep() {
	c.leaveFootstep(true)
}

func (c *Controller) leaveFootstep(right bool) {
	if c.trail == nil {
		return
	}
	c.trail.LeaveFootstep(c.transform.Position(), c.transform.Yaw(), right)
}

func (c *Controller) logf(format string, args ...any) {
	if c.cfg.Logger != nil {
		c.cfg.Logger.Printf(format, args...)
	}
}
