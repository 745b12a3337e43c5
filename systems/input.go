package systems

import (
	"math"

	"github.com/automoto/trailgunner/components"
	cfg "github.com/automoto/trailgunner/config"
	"github.com/automoto/trailgunner/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the InputComponent on the player
// (or the session singleton when no player exists).
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	h, v, analog := readLeftStick(gamepadIDs)
	if analog {
		gamepadUsed = true
	} else {
		h, v = digitalAxes(input)
	}
	input.Horizontal, input.Vertical = clampAxes(h, v)

	// Update last input method - gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// readLeftStick returns the first left stick outside the deadzone.
func readLeftStick(gamepads []ebiten.GamepadID) (h, v float64, ok bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h = ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v = ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if h*h+v*v > deadzone*deadzone {
			return h, v, true
		}
	}
	return 0, 0, false
}

// digitalAxes builds axes from the directional actions.
func digitalAxes(input *components.InputData) (h, v float64) {
	if input.Current[cfg.ActionMoveLeft] {
		h--
	}
	if input.Current[cfg.ActionMoveRight] {
		h++
	}
	if input.Current[cfg.ActionMoveUp] {
		v--
	}
	if input.Current[cfg.ActionMoveDown] {
		v++
	}
	return h, v
}

// clampAxes limits the stick vector to length 1 so diagonals are not faster.
func clampAxes(h, v float64) (float64, float64) {
	if l2 := h*h + v*v; l2 > 1 {
		l := math.Sqrt(l2)
		return h / l, v / l
	}
	return h, v
}

// GetOrCreateInput returns the player's Input component, falling back to a
// standalone singleton while no player exists.
func GetOrCreateInput(ecs *ecs.ECS) *components.InputData {
	if player, ok := tags.Player.First(ecs.World); ok {
		return components.Input.Get(player)
	}
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	return input.Action(id)
}
