package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single renderer layer the scene draws on.
const Default ecs.LayerID = iota

type Config struct {
	Width  int
	Height int
	Title  string
}

// CameraConfig contains camera movement configuration
type CameraConfig struct {
	StartZ     float64 // Camera height above the world origin
	PanSpeed   float64 // World units per frame at full axis deflection
	DepthSpeed float64 // World units per frame along Z
	ZoomStep   float64 // Scale change per frame at full axis deflection
	MinScale   float64
	MaxScale   float64

	// Reset easing
	ResetDuration float32 // seconds
}

// MapConfig selects the level and the starting layer
type MapConfig struct {
	LevelsDir    string
	DefaultLevel string // stem of the .tmx file to load
	StartLayer   int
	HeroSpawn    string // Spawns object name for the hero
}

// HeroConfig describes the hero prefab
type HeroConfig struct {
	SheetPath   string
	FrameWidth  int
	FrameHeight int
	Depth       float64 // Z offset above the drawing plane
}

// HUDConfig contains overlay configuration values
type HUDConfig struct {
	Margin          float64
	LineHeight      float64
	BackgroundColor color.RGBA
	TextColor       color.RGBA

	MinimapMaxSize  int // pixels, longest side
	MinimapMargin   float64
	MinimapOpacity  float32
	MinimapViewport color.RGBA
}

// DisplayConfig contains window/display defaults
type DisplayConfig struct {
	ClearColor  color.RGBA
	Fullscreen  bool
	ShowHUD     bool
	ShowMinimap bool
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	LogBounds bool // Log the visible region whenever it changes
}

// Global configuration instances
var C *Config
var Camera CameraConfig
var Map MapConfig
var Hero HeroConfig
var HUD HUDConfig
var Display DisplayConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "herotiles",
	}

	Camera = CameraConfig{
		StartZ:     5.0,
		PanSpeed:   5.0,
		DepthSpeed: 1.0,
		ZoomStep:   0.01,
		MinScale:   0.1,
		MaxScale:   8.0,

		ResetDuration: 0.5,
	}

	Map = MapConfig{
		LevelsDir:    "levels",
		DefaultLevel: "map",
		StartLayer:   0,
		HeroSpawn:    "hero",
	}

	Hero = HeroConfig{
		SheetPath:   "images/hero.png",
		FrameWidth:  32,
		FrameHeight: 32,
		Depth:       0.1,
	}

	HUD = HUDConfig{
		Margin:          6,
		LineHeight:      14,
		BackgroundColor: BlackOverlay,
		TextColor:       White,

		MinimapMaxSize:  120,
		MinimapMargin:   6,
		MinimapOpacity:  0.85,
		MinimapViewport: Yellow,
	}

	// Clear to white
	Display = DisplayConfig{
		ClearColor:  White,
		Fullscreen:  false,
		ShowHUD:     false,
		ShowMinimap: false,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		LogBounds: false,
	}
}
