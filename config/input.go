package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical digital action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionQuit
	ActionResetCamera
	ActionToggleProjection
	ActionLayerUp
	ActionLayerDown
	ActionToggleHUD
	ActionToggleMinimap
	ActionToggleFullscreen
	ActionCycleResolution
	ActionCount // Must be last - used for array sizing
)

// AxisID represents a logical analog axis in [-1, 1]
type AxisID int

const (
	AxisCameraX AxisID = iota
	AxisCameraY
	AxisCameraZ
	AxisCameraScale
	AxisCount // Must be last - used for array sizing
)

// AxisNames are the names axes are reported under in the HUD
var AxisNames = [AxisCount]string{
	AxisCameraX:     "camera_x",
	AxisCameraY:     "camera_y",
	AxisCameraZ:     "camera_z",
	AxisCameraScale: "camera_scale",
}

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// AxisBinding maps two key sets and an optional stick axis onto an axis
type AxisBinding struct {
	Positive    []ebiten.Key
	Negative    []ebiten.Key
	GamepadAxis ebiten.StandardGamepadAxis
	HasGamepad  bool
	InvertStick bool // Stick up reports negative values
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	Axes     map[AxisID]AxisBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Axes: map[AxisID]AxisBinding{
			AxisCameraX: {
				Positive:    []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				Negative:    []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
				GamepadAxis: ebiten.StandardGamepadAxisLeftStickHorizontal,
				HasGamepad:  true,
			},
			AxisCameraY: {
				Positive:    []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				Negative:    []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				GamepadAxis: ebiten.StandardGamepadAxisLeftStickVertical,
				HasGamepad:  true,
				InvertStick: true,
			},
			AxisCameraZ: {
				Positive: []ebiten.Key{ebiten.KeyPageUp},
				Negative: []ebiten.Key{ebiten.KeyPageDown},
			},
			AxisCameraScale: {
				// Growing the scale zooms out
				Positive:    []ebiten.Key{ebiten.KeyMinus},
				Negative:    []ebiten.Key{ebiten.KeyEqual},
				GamepadAxis: ebiten.StandardGamepadAxisRightStickVertical,
				HasGamepad:  true,
			},
		},
		Bindings: map[ActionID]InputBinding{
			ActionQuit: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
				// Back / Share button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			ActionResetCamera: {
				Keys: []ebiten.Key{ebiten.KeyR, ebiten.KeyHome},
				// Right stick press
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightStick,
				},
			},
			ActionToggleProjection: {
				Keys: []ebiten.Key{ebiten.KeyP},
				// Y / Triangle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
			},
			ActionLayerUp: {
				Keys: []ebiten.Key{ebiten.KeyPeriod},
				// Right bumper
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopRight,
				},
			},
			ActionLayerDown: {
				Keys: []ebiten.Key{ebiten.KeyComma},
				// Left bumper
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopLeft,
				},
			},
			ActionToggleHUD: {
				Keys: []ebiten.Key{ebiten.KeyF1},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionToggleMinimap: {
				Keys: []ebiten.Key{ebiten.KeyF2, ebiten.KeyM},
			},
			ActionToggleFullscreen: {
				Keys: []ebiten.Key{ebiten.KeyF11},
			},
			ActionCycleResolution: {
				Keys: []ebiten.Key{ebiten.KeyF10},
			},
		},
	}
}
