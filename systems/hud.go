package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/skydodge/assets"
	"github.com/automoto/skydodge/components"
	cfg "github.com/automoto/skydodge/config"
	"github.com/automoto/skydodge/events"
	"github.com/automoto/skydodge/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

var hudDrawOp = &ebiten.DrawImageOptions{}

// SubscribeHUD keeps the HUD mirror in step with gameplay events.
func SubscribeHUD(w donburi.World) {
	events.LivesChangedEvent.Subscribe(w, func(w donburi.World, ev events.LivesChanged) {
		if hud := getHUD(w); hud != nil {
			hud.Lives = ev.Lives
		}
	})
	events.ScoreChangedEvent.Subscribe(w, func(w donburi.World, ev events.ScoreChanged) {
		if hud := getHUD(w); hud != nil {
			hud.Score = ev.Score
		}
	})
	events.TimeChangedEvent.Subscribe(w, func(w donburi.World, ev events.TimeChanged) {
		if hud := getHUD(w); hud != nil {
			hud.TimeLeft = ev.TimeLeft
		}
	})
	events.BestScoreChangedEvent.Subscribe(w, func(w donburi.World, ev events.BestScoreChanged) {
		if hud := getHUD(w); hud != nil {
			hud.Best = ev.Best
		}
	})
	events.RoundStateChangedEvent.Subscribe(w, func(w donburi.World, ev events.RoundStateChanged) {
		if hud := getHUD(w); hud != nil && ev.To.Ended() {
			hud.Final = ev.Score
		}
	})
}

func getHUD(w donburi.World) *components.HUDData {
	entry, ok := components.HUD.First(w)
	if !ok {
		return nil
	}
	return components.HUD.Get(entry)
}

// GetHUD returns the values currently shown by the HUD.
func GetHUD(e *ecs.ECS) *components.HUDData {
	return getHUD(e.World)
}

// DrawHUD renders score, lives and the game clock across the top of the playfield.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	hud := getHUD(e.World)
	if hud == nil || !fonts.Loaded(fonts.HUD) {
		return
	}
	face := fonts.HUD.Get()
	margin := cfg.HUD.Margin
	barHeight := cfg.HUD.HeartSize + margin

	vector.FillRect(screen, 0, 0, float32(cfg.Playfield.Width), float32(barHeight), cfg.HUD.PanelColor, false)

	baseline := int(margin + cfg.HUD.HeartSize*0.8)

	text.Draw(screen, fmt.Sprintf("Score: %d", hud.Score), face, int(margin), baseline, cfg.HUD.TextColor) //nolint:staticcheck

	timerColor := cfg.HUD.TimerColor
	if hud.TimeLeft <= cfg.HUD.LowTime {
		timerColor = cfg.HUD.LowTimeColor
	}
	drawCenteredText(screen, fmt.Sprintf("%ds", hud.TimeLeft), face, cfg.Playfield.Width/2, baseline, timerColor)

	drawHearts(screen, hud.Lives)
}

// drawHearts right-aligns one heart per remaining life.
func drawHearts(screen *ebiten.Image, lives int) {
	heart := assets.HeartImage()
	size := cfg.HUD.HeartSize
	scale := size / float64(heart.Bounds().Dx())
	step := size + cfg.HUD.HeartSpacing

	x := cfg.Playfield.Width - cfg.HUD.Margin - size
	for i := 0; i < lives; i++ {
		hudDrawOp.GeoM.Reset()
		hudDrawOp.GeoM.Scale(scale, scale)
		hudDrawOp.GeoM.Translate(x-float64(i)*step, cfg.HUD.Margin/2)
		screen.DrawImage(heart, hudDrawOp)
	}
}

func drawCenteredText(screen *ebiten.Image, s string, face font.Face, centerX float64, baseline int, clr color.Color) {
	width := font.MeasureString(face, s).Ceil()
	text.Draw(screen, s, face, int(centerX)-width/2, baseline, clr) //nolint:staticcheck
}
