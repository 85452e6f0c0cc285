package config

// Resolution represents a window size option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// SettingsConfig contains persisted display settings configuration
type SettingsConfig struct {
	AppName                string // gdata application directory
	StorageKey             string
	Resolutions            []Resolution
	DefaultResolutionIndex int
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName:    "herotiles",
		StorageKey: "display",
		Resolutions: []Resolution{
			{Width: 640, Height: 360, Label: "640 x 360"},
			{Width: 1280, Height: 720, Label: "1280 x 720"},
			{Width: 1600, Height: 900, Label: "1600 x 900"},
			{Width: 1920, Height: 1080, Label: "1920 x 1080"},
		},
		DefaultResolutionIndex: 1,
	}
}
