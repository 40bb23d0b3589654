package systems

import (
	"image/color"
	"math"

	"github.com/automoto/skydodge/assets"
	"github.com/automoto/skydodge/components"
	cfg "github.com/automoto/skydodge/config"
	"github.com/automoto/skydodge/gamemath"
	"github.com/automoto/skydodge/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp     = &ebiten.DrawImageOptions{}
	background *ebiten.Image
)

// DrawBackground fills the playfield with the sky gradient.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	if background == nil {
		background = newSkyGradient(int(cfg.Playfield.Width), int(cfg.Playfield.Height))
	}
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	screen.DrawImage(background, drawOp)
}

// newSkyGradient renders a vertical gradient one row at a time.
func newSkyGradient(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	for y := 0; y < h; y++ {
		t := float64(y) / float64(h-1)
		vector.FillRect(img, 0, float32(y), float32(w), 1, lerpColor(cfg.SkyTop, cfg.SkyBottom, t), false)
	}
	return img
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// scaleAlpha scales a premultiplied colour's opacity.
func scaleAlpha(c color.RGBA, alpha float32) color.RGBA {
	if alpha <= 0 {
		return color.RGBA{}
	}
	if alpha >= 1 {
		return c
	}
	f := func(v uint8) uint8 { return uint8(float32(v) * alpha) }
	return color.RGBA{R: f(c.R), G: f(c.G), B: f(c.B), A: f(c.A)}
}

// DrawClouds draws the drifting background clouds.
func DrawClouds(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Cloud.Each(ecs.World, func(e *donburi.Entry) {
		cloud := components.Cloud.Get(e)
		drawSprite(screen, assets.CloudImage(cloud.Variant), cloud.X, cloud.Y, cfg.Cloud.Width, cfg.Cloud.Height, cfg.Cloud.Alpha)
	})
}

// DrawIdleDecor draws the drifting bubbles and the resting player shown
// outside of play.
func DrawIdleDecor(ecs *ecs.ECS, screen *ebiten.Image) {
	if IsPlaying(ecs) {
		return
	}

	t := float64(GetScheduler(ecs).Now().Milliseconds())
	d := cfg.IdleDecor
	for i := 0; i < d.Bubbles; i++ {
		fi := float64(i)
		x := (fi+1)*d.Spacing + math.Sin(t/d.SwayPeriodX+fi)*d.SwayX
		y := d.BaseY + math.Cos(t/d.SwayPeriodY+fi)*d.SwayY
		r := d.BaseRadius + float64(i%3)*d.RadiusStep
		vector.FillCircle(screen, float32(x), float32(y), float32(r), d.Color, true)
	}

	if playerEntry, ok := GetPlayer(ecs); ok {
		obj := components.Object.Get(playerEntry)
		drawSprite(screen, assets.PlayerImage(), obj.X, obj.Y, obj.W, obj.H, 1)
	}
}

// DrawCollectibles draws pickups over a glow that pulses in unison.
func DrawCollectibles(ecs *ecs.ECS, screen *ebiten.Image) {
	if !IsPlaying(ecs) {
		return
	}
	pulse := 0.0
	if round := GetRound(ecs); round != nil {
		pulse = gamemath.Pulse(round.Pulse)
	}
	c := cfg.Collectible
	glowSize := c.GlowMinSize + pulse*c.GlowSizeRange
	glowAlpha := float32(c.GlowMinAlpha + pulse*c.GlowAlphaRange)

	tags.Collectible.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		falling := components.Falling.Get(e)

		drawSprite(screen, assets.GlowImage(),
			obj.X-glowSize/2, obj.Y-glowSize/2, obj.W+glowSize, obj.H+glowSize, glowAlpha)
		drawSprite(screen, assets.CollectibleImage(falling.Variant), obj.X, obj.Y, obj.W, obj.H, 1)
	})
}

// DrawEnemies draws the falling hazards.
func DrawEnemies(ecs *ecs.ECS, screen *ebiten.Image) {
	if !IsPlaying(ecs) {
		return
	}
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		falling := components.Falling.Get(e)
		drawSprite(screen, assets.EnemyImage(falling.Variant), obj.X, obj.Y, obj.W, obj.H, 1)
	})
}

// DrawPlayer draws the player, flickering while invincible and offset while
// the hit shake runs.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	if !IsPlaying(ecs) {
		return
	}
	playerEntry, ok := GetPlayer(ecs)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	dx, dy := gamemath.ShakeOffset(player.ShakeTimer, cfg.ScreenShake.Intensity, cfg.ScreenShake.Frequency)
	drawSprite(screen, assets.PlayerImage(), obj.X+dx, obj.Y+dy, obj.W, obj.H, PlayerAlpha(player))
}

// PlayerAlpha is the player's opacity: dimmed on alternating blink phases
// while invincible.
func PlayerAlpha(player *components.PlayerData) float32 {
	if !player.Invincible {
		return 1
	}
	if (player.BlinkTimer/cfg.Player.BlinkFrames)%2 == 0 {
		return cfg.Player.BlinkAlpha
	}
	return 1
}

// drawSprite stretches img over the w x h box at (x, y).
func drawSprite(screen, img *ebiten.Image, x, y, w, h float64, alpha float32) {
	b := img.Bounds()
	drawOp.GeoM.Reset()
	drawOp.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	drawOp.GeoM.Translate(x, y)
	drawOp.ColorScale.Reset()
	drawOp.ColorScale.ScaleAlpha(alpha)
	drawOp.Filter = ebiten.FilterLinear
	screen.DrawImage(img, drawOp)
}
