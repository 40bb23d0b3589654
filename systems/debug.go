package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/skydodge/components"
	cfg "github.com/automoto/skydodge/config"
	"github.com/automoto/skydodge/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every object in the collision space and prints frame
// and entity counters. Enabled with the -hitboxes flag.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawHitboxes {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		// Determine color based on tags
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255} // Blue
		} else if obj.HasTags(tags.ResolvEnemy) {
			c = color.RGBA{255, 0, 0, 255} // Red
		} else if obj.HasTags(tags.ResolvCollectible) {
			c = color.RGBA{255, 220, 0, 255} // Yellow
		}
		vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 3, c, false)
	}

	layout := "built-in"
	if pfEntry, ok := components.Playfield.First(ecs.World); ok {
		if pf := components.Playfield.Get(pfEntry); pf.Layout != nil {
			layout = pf.Layout.Name
		}
	}

	msg := fmt.Sprintf("TPS %.1f  FPS %.1f\nobjects %d  timers %d\nplayfield %s",
		ebiten.ActualTPS(), ebiten.ActualFPS(), len(space.Objects()), GetScheduler(ecs).Pending(), layout)
	ebitenutil.DebugPrintAt(screen, msg, int(cfg.HUD.Margin), int(cfg.Playfield.Height-cfg.HUD.Margin*4))
}
