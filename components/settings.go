package components

import "github.com/yohamta/donburi"

// SettingsData stores display toggles, persisted between runs
type SettingsData struct {
	Fullscreen      bool
	ShowHUD         bool
	ShowMinimap     bool
	ResolutionIndex int
	Dirty           bool // Changed since the last save
}

var Settings = donburi.NewComponentType[SettingsData]()
