package systems

import (
	"fmt"

	"github.com/automoto/herotiles/components"
	cfg "github.com/automoto/herotiles/config"
	"github.com/automoto/herotiles/fonts"
	"github.com/automoto/herotiles/shared/view"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var hudLines []string

// DrawHUD renders the camera and visible region readout in the top-left
// corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.ShowHUD {
		return
	}

	hudLines = hudLines[:0]
	hudLines = append(hudLines, fmt.Sprintf("FPS %.0f  TPS %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()))

	if cameraEntry, ok := view.FindCamera(ecs.World); ok {
		camera := components.Camera.Get(cameraEntry)
		t := components.Transform.Get(cameraEntry)
		mode := components.ProjectionOrthographic
		if cameraEntry.HasComponent(components.CameraControl) {
			mode = components.CameraControl.Get(cameraEntry).Mode
		}
		hudLines = append(hudLines,
			fmt.Sprintf("camera %d %s", camera.ID, mode),
			fmt.Sprintf("pos %.1f, %.1f, %.1f", t.Translation.X, t.Translation.Y, t.Translation.Z),
			fmt.Sprintf("scale %.2f", t.Scale.X),
		)
	} else {
		hudLines = append(hudLines, "no camera")
	}

	if entry, tm, layer, ok := currentTileMap(ecs.World); ok {
		visible := components.VisibleRegion.Get(entry)
		name := ""
		if tm.Level != nil && layer < len(tm.Level.LayerNames) {
			name = tm.Level.LayerNames[layer]
		}
		hudLines = append(hudLines, fmt.Sprintf("layer %d/%d %s", layer, tm.Map.Dimensions().Z-1, name))
		if visible.Region.IsEmpty() {
			reason := "empty"
			if visible.Err != nil {
				reason = visible.Err.Error()
			}
			hudLines = append(hudLines, "region: "+reason)
		} else {
			r := visible.Region
			hudLines = append(hudLines,
				fmt.Sprintf("region %d,%d - %d,%d", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y),
				fmt.Sprintf("tiles %d drawn %d", r.Len(), visible.Drawn),
			)
		}
	}

	input := getOrCreateInput(ecs)
	axes := ""
	for id, name := range cfg.AxisNames {
		if v := input.Axes[id]; v != 0 {
			axes += fmt.Sprintf("%s %.2f ", name, v)
		}
	}
	if axes != "" {
		hudLines = append(hudLines, axes)
	}

	drawTextPanel(screen, hudLines, cfg.HUD.Margin, cfg.HUD.Margin)
}

func drawTextPanel(screen *ebiten.Image, lines []string, x, y float64) {
	face := fonts.Small.Get()

	width := 0
	for _, line := range lines {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}
	pad := cfg.HUD.Margin / 2
	height := float64(len(lines)) * cfg.HUD.LineHeight

	vector.DrawFilledRect(screen,
		float32(x-pad), float32(y-pad),
		float32(float64(width)+2*pad), float32(height+2*pad),
		cfg.HUD.BackgroundColor, false)

	for i, line := range lines {
		baseline := int(y + float64(i+1)*cfg.HUD.LineHeight - 3)
		text.Draw(screen, line, face, int(x), baseline, cfg.HUD.TextColor)
	}
}
