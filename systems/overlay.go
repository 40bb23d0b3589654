package systems

import (
	"strconv"
	"time"

	"github.com/automoto/skydodge/components"
	cfg "github.com/automoto/skydodge/config"
	"github.com/automoto/skydodge/events"
	"github.com/automoto/skydodge/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var countdownDrawOp = &ebiten.DrawImageOptions{}

// SubscribeOverlay starts the transition tweens that accompany round events.
func SubscribeOverlay(w donburi.World) {
	events.RoundStateChangedEvent.Subscribe(w, func(w donburi.World, ev events.RoundStateChanged) {
		o := getOverlay(w)
		if o == nil {
			return
		}
		switch {
		case ev.To == cfg.RoundCountdown:
			o.StartFade = gween.New(o.StartAlpha, 0, seconds(cfg.Round.StartFade), ease.OutQuad)
		case ev.To.Ended():
			o.ShowCountdown = false
			o.PopupFade = gween.New(o.PopupAlpha, 1, seconds(cfg.Round.PopupFade), ease.OutQuad)
		case ev.To == cfg.RoundIdle:
			o.StartFade = nil
			o.StartAlpha = 1
			o.ShowCountdown = false
			o.PopupFade = gween.New(o.PopupAlpha, 0, seconds(cfg.Round.PopupFade), ease.InQuad)
		}
	})
	events.CountdownTickedEvent.Subscribe(w, func(w donburi.World, ev events.CountdownTicked) {
		o := getOverlay(w)
		if o == nil {
			return
		}
		o.CountdownValue = ev.Value
		if !o.ShowCountdown {
			o.ShowCountdown = true
			o.CountdownAlpha = 1
			return
		}
		o.Pop = gween.New(float32(cfg.Round.PopScale), 1, seconds(cfg.Round.PopDuration), ease.OutQuad)
		if ev.Value == 0 {
			o.CountdownFade = gween.New(1, 0, seconds(cfg.Round.CountdownFade), ease.Linear)
		}
	})
}

func getOverlay(w donburi.World) *components.OverlayData {
	entry, ok := components.Overlay.First(w)
	if !ok {
		return nil
	}
	return components.Overlay.Get(entry)
}

// GetOverlay returns the overlay animation state.
func GetOverlay(e *ecs.ECS) *components.OverlayData {
	return getOverlay(e.World)
}

func seconds(d time.Duration) float32 {
	return float32(d.Seconds())
}

// UpdateOverlay advances the overlay tweens by one tick.
func UpdateOverlay(e *ecs.ECS) {
	o := getOverlay(e.World)
	if o == nil {
		return
	}
	dt := float32(cfg.FrameDuration().Seconds())

	o.StartFade = stepTween(o.StartFade, dt, &o.StartAlpha)
	o.PopupFade = stepTween(o.PopupFade, dt, &o.PopupAlpha)
	o.Pop = stepTween(o.Pop, dt, &o.PopScale)
	if o.CountdownFade != nil {
		o.CountdownFade = stepTween(o.CountdownFade, dt, &o.CountdownAlpha)
		if o.CountdownFade == nil {
			o.ShowCountdown = false
		}
	}
}

// stepTween writes the tween's next value to out and returns nil once it has finished.
func stepTween(tw *gween.Tween, dt float32, out *float32) *gween.Tween {
	if tw == nil {
		return nil
	}
	v, done := tw.Update(dt)
	*out = v
	if done {
		return nil
	}
	return tw
}

// DrawOverlay dims the playfield behind the start panel and result popups
// and draws the countdown number.
func DrawOverlay(e *ecs.ECS, screen *ebiten.Image) {
	o := getOverlay(e.World)
	round := GetRound(e)
	if o == nil || round == nil {
		return
	}
	w, h := float32(cfg.Playfield.Width), float32(cfg.Playfield.Height)

	if startVisible(round.State, o) {
		vector.FillRect(screen, 0, 0, w, h, scaleAlpha(cfg.HUD.PanelColor, o.StartAlpha), false)
	}
	if o.PopupAlpha > 0 {
		vector.FillRect(screen, 0, 0, w, h, scaleAlpha(cfg.BlackOverlay, o.PopupAlpha), false)
	}

	if !o.ShowCountdown || !fonts.Loaded(fonts.Countdown) {
		return
	}
	vector.FillRect(screen, 0, 0, w, h, scaleAlpha(cfg.BlackOverlay, o.CountdownAlpha), false)

	face := fonts.Countdown.Get()
	s := strconv.Itoa(o.CountdownValue)
	bounds := text.BoundString(face, s) //nolint:staticcheck
	cx := float64(bounds.Min.X+bounds.Max.X) / 2
	cy := float64(bounds.Min.Y+bounds.Max.Y) / 2

	countdownDrawOp.GeoM.Reset()
	countdownDrawOp.GeoM.Translate(-cx, -cy)
	countdownDrawOp.GeoM.Scale(float64(o.PopScale), float64(o.PopScale))
	countdownDrawOp.GeoM.Translate(cfg.Playfield.Width/2, cfg.Playfield.Height/2)
	countdownDrawOp.ColorScale.Reset()
	countdownDrawOp.ColorScale.ScaleWithColor(cfg.White)
	countdownDrawOp.ColorScale.ScaleAlpha(o.CountdownAlpha)
	text.DrawWithOptions(screen, s, face, countdownDrawOp) //nolint:staticcheck
}

// StartPanelVisible reports whether the start panel should be on screen.
func StartPanelVisible(e *ecs.ECS) bool {
	o := getOverlay(e.World)
	round := GetRound(e)
	return o != nil && round != nil && startVisible(round.State, o)
}

func startVisible(state cfg.RoundStateID, o *components.OverlayData) bool {
	return state == cfg.RoundIdle || (state == cfg.RoundCountdown && o.StartFade != nil)
}
