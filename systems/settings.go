package systems

import (
	"log"

	"github.com/automoto/herotiles/components"
	cfg "github.com/automoto/herotiles/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton Settings component, seeded from
// saved settings or the display defaults.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if ok {
		return components.Settings.Get(entry)
	}

	entry = e.World.Entry(e.World.Create(components.Settings))
	settings := components.SettingsData{
		Fullscreen:      cfg.Display.Fullscreen || ebiten.IsFullscreen(),
		ShowHUD:         cfg.Display.ShowHUD,
		ShowMinimap:     cfg.Display.ShowMinimap,
		ResolutionIndex: cfg.Settings.DefaultResolutionIndex,
	}
	if startupSettings != nil {
		settings.Fullscreen = startupSettings.Fullscreen
		settings.ShowHUD = startupSettings.ShowHUD
		settings.ShowMinimap = startupSettings.ShowMinimap
		settings.ResolutionIndex = startupSettings.ResolutionIndex
	}
	components.Settings.SetValue(entry, settings)
	return components.Settings.Get(entry)
}

// UpdateSettings handles the display toggles and saves changes.
func UpdateSettings(e *ecs.ECS) {
	input := getOrCreateInput(e)
	settings := GetOrCreateSettings(e)

	if GetAction(input, cfg.ActionToggleHUD).JustPressed {
		settings.ShowHUD = !settings.ShowHUD
		settings.Dirty = true
	}
	if GetAction(input, cfg.ActionToggleMinimap).JustPressed {
		settings.ShowMinimap = !settings.ShowMinimap
		settings.Dirty = true
	}
	if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
		settings.Fullscreen = !settings.Fullscreen
		ebiten.SetFullscreen(settings.Fullscreen)
		settings.Dirty = true
	}
	if GetAction(input, cfg.ActionCycleResolution).JustPressed && !settings.Fullscreen {
		settings.ResolutionIndex = (settings.ResolutionIndex + 1) % len(cfg.Settings.Resolutions)
		res := cfg.Settings.Resolutions[settings.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
		log.Printf("Window size: %s", res.Label)
		settings.Dirty = true
	}

	if settings.Dirty {
		SaveCurrentSettings(settings)
		settings.Dirty = false
	}
}
