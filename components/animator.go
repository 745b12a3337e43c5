package components

import (
	"github.com/automoto/trailgunner/assets/animations"
	"github.com/yohamta/donburi"
)

// Walk cycle frames on which a foot touches the ground.
const (
	WalkFrames     = 8
	LeftStepFrame  = 0
	RightStepFrame = WalkFrames / 2
)

// AnimatorData is the animation state of the player avatar: named float
// parameters, trigger pulses, layer weights and the walk cycle that raises
// foot contact events.
type AnimatorData struct {
	Layers   []string
	weights  []float64
	floats   map[string]float64
	triggers map[string]int

	Walk      *animations.Animation
	LeftStep  *Signal
	RightStep *Signal

	// JumpCue counts down the frames left of the take-off stretch.
	JumpCue int
}

// NewAnimator creates an animator with the given layers, all at weight 0
// except the base layer at index 0.
func NewAnimator(layers ...string) *AnimatorData {
	a := &AnimatorData{
		Layers:    layers,
		weights:   make([]float64, len(layers)),
		floats:    make(map[string]float64),
		triggers:  make(map[string]int),
		Walk:      animations.NewAnimation(0, WalkFrames-1, 1, 1),
		LeftStep:  NewSignal(),
		RightStep: NewSignal(),
	}
	if len(a.weights) > 0 {
		a.weights[0] = 1
	}
	a.Walk.OnFrame = func(frame int) {
		switch frame {
		case LeftStepFrame:
			a.LeftStep.Emit()
		case RightStepFrame:
			a.RightStep.Emit()
		}
	}
	return a
}

// LayerIndex returns the index of the named layer, or -1.
func (a *AnimatorData) LayerIndex(name string) int {
	for i, layer := range a.Layers {
		if layer == name {
			return i
		}
	}
	return -1
}

func (a *AnimatorData) SetFloat(name string, value float64) {
	a.floats[name] = value
}

// Float returns the named parameter, 0 if it was never set.
func (a *AnimatorData) Float(name string) float64 {
	return a.floats[name]
}

func (a *AnimatorData) SetTrigger(name string) {
	a.triggers[name]++
}

// ConsumeTrigger reports whether name was pulsed since the last call.
func (a *AnimatorData) ConsumeTrigger(name string) bool {
	if a.triggers[name] == 0 {
		return false
	}
	a.triggers[name] = 0
	return true
}

// SetLayerWeight ignores unknown layers.
func (a *AnimatorData) SetLayerWeight(layer int, weight float64) {
	if layer < 0 || layer >= len(a.weights) {
		return
	}
	a.weights[layer] = weight
}

func (a *AnimatorData) LayerWeight(layer int) float64 {
	if layer < 0 || layer >= len(a.weights) {
		return 0
	}
	return a.weights[layer]
}

var Animator = donburi.NewComponentType[AnimatorData]()
