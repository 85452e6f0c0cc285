package systems

import (
	"math"

	"github.com/automoto/herotiles/components"
	cfg "github.com/automoto/herotiles/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the Input component.
// Must run before every system that reads actions or axes.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.Axes = [cfg.AxisCount]float64{}
	input.CloseRequested = ebiten.IsWindowBeingClosed()

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

	for axisID, binding := range cfg.Input.Axes {
		value := keyAxis(binding)
		if value != 0 {
			keyboardUsed = true
		}
		if stick, ok := stickAxis(binding, gamepadIDs); ok && math.Abs(stick) > math.Abs(value) {
			value = stick
			gamepadUsed = true
		}
		input.Axes[axisID] = value
	}

	// Gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// keyAxis is +1 while any positive key is held, -1 for negative keys, 0
// when both or neither are held.
func keyAxis(binding cfg.AxisBinding) float64 {
	var value float64
	for _, key := range binding.Positive {
		if ebiten.IsKeyPressed(key) {
			value++
			break
		}
	}
	for _, key := range binding.Negative {
		if ebiten.IsKeyPressed(key) {
			value--
			break
		}
	}
	return value
}

// stickAxis returns the strongest stick deflection past the deadzone,
// rescaled so the deadzone edge reads as 0.
func stickAxis(binding cfg.AxisBinding, gamepads []ebiten.GamepadID) (float64, bool) {
	if !binding.HasGamepad {
		return 0, false
	}
	deadzone := cfg.Input.AnalogDeadzone

	var best float64
	var found bool
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		v := ebiten.StandardGamepadAxisValue(gpID, binding.GamepadAxis)
		if math.Abs(v) <= deadzone {
			continue
		}
		if binding.InvertStick {
			v = -v
		}
		scaled := math.Copysign((math.Abs(v)-deadzone)/(1-deadzone), v)
		if !found || math.Abs(scaled) > math.Abs(best) {
			best = scaled
			found = true
		}
	}
	return best, found
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// GetAxis returns an axis value in [-1, 1] for this frame.
func GetAxis(input *components.InputData, id cfg.AxisID) float64 {
	return input.Axes[id]
}
