package playercontrol

import (
	"github.com/yohamta/donburi/features/math"
)

//go:generate go tool mockgen -destination=./mocks/collaborators_mock.go -package=mocks . InputSource,Mover,Transform,Animator,Target,Gap,Effects,FootstepTrail,StepEvents,Subscription

// Vec2 is a point or direction on the ground plane. X is world x, Y is world z.
type Vec2 = math.Vec2

// InputSource provides two normalized axis readings per frame.
type InputSource interface {
	Axes() (horizontal, vertical float64)
}

// Mover applies a displacement with collision resolution.
type Mover interface {
	Move(delta Vec2)
}

// Transform is the avatar's position and facing.
type Transform interface {
	Position() Vec2
	Yaw() float64
	SetYaw(yaw float64)
}

// Animator accepts named float parameters, trigger pulses and layer weights.
type Animator interface {
	LayerIndex(name string) int
	SetFloat(name string, value float64)
	SetTrigger(name string)
	SetLayerWeight(layer int, weight float64)
}

// Target is something the player can shoot at.
// Implementations must be comparable; the controller identifies targets with ==.
type Target interface {
	Position() Vec2
	TakeDamage(amount int)
	OnDestroyed(fn func()) Subscription
}

// Gap performs a scripted traversal of the transform and calls done when finished.
type Gap interface {
	Traverse(t Transform, done func())
}

// Effects spawns visual effects.
type Effects interface {
	SpawnShot(at Vec2)
}

// FootstepTrail leaves marks where a foot touched the ground.
type FootstepTrail interface {
	LeaveFootstep(at Vec2, yaw float64, right bool)
}

// StepEvents notifies foot contacts.
type StepEvents interface {
	OnLeftStep(fn func()) Subscription
	OnRightStep(fn func()) Subscription
}

// Subscription is a registration handle. Release is idempotent.
type Subscription interface {
	Release()
}
