package components

import (
	cfg "github.com/automoto/herotiles/config"
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
// actions plus the axis values for this frame.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool  // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool  // Previous frame's Pressed state
	Axes            [cfg.AxisCount]float64 // -1..1
	LastInputMethod InputMethod            // Most recently used input method
	CloseRequested  bool                   // Window close button pressed
}

var Input = donburi.NewComponentType[InputData]()
