package components

import (
	cfg "github.com/automoto/trailgunner/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions plus the movement axes. JustPressed/JustReleased are computed on
// demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	Horizontal      float64               // -1 (left) to 1 (right)
	Vertical        float64               // -1 (up) to 1 (down)
	LastInputMethod InputMethod           // Most recently used input method
}

// Axes returns the movement axes. It lets InputData act as the controller's
// input source directly.
func (i *InputData) Axes() (horizontal, vertical float64) {
	return i.Horizontal, i.Vertical
}

// Action returns the full ActionState for an action ID.
func (i *InputData) Action(id cfg.ActionID) ActionState {
	curr := i.Current[id]
	prev := i.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

var Input = donburi.NewComponentType[InputData]()
