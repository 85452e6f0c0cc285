package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/herotiles/components"
	cfg "github.com/automoto/herotiles/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Fullscreen      bool `json:"fullscreen"`
	ShowHUD         bool `json:"showHud"`
	ShowMinimap     bool `json:"showMinimap"`
	ResolutionIndex int  `json:"resolutionIndex"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// startupSettings are applied before any scene exists and picked up by
// the first settings component
var startupSettings *SavedSettings

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. It returns nil without an error
// when nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Settings.StorageKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(cfg.Settings.StorageKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the current settings from the Settings component
func SaveCurrentSettings(s *components.SettingsData) {
	saved := &SavedSettings{
		Fullscreen:      s.Fullscreen,
		ShowHUD:         s.ShowHUD,
		ShowMinimap:     s.ShowMinimap,
		ResolutionIndex: s.ResolutionIndex,
	}
	_ = SaveSettings(saved)
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference.
// Used during startup before scenes are created.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	if saved.ResolutionIndex < 0 || saved.ResolutionIndex >= len(cfg.Settings.Resolutions) {
		log.Printf("Warning: Ignoring saved resolution index %d", saved.ResolutionIndex)
		saved.ResolutionIndex = cfg.Settings.DefaultResolutionIndex
	}
	startupSettings = saved

	ebiten.SetFullscreen(saved.Fullscreen)

	// Apply resolution (only if not fullscreen)
	if !saved.Fullscreen {
		res := cfg.Settings.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}
