package assets

import (
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Sprites are drawn procedurally at a fixed resolution and scaled to the
// entity size at draw time. They are built on first use because ebiten
// images need a running graphics driver before they can be rendered to.

const spriteRes = 256

var (
	spritesOnce sync.Once

	playerSprite      *ebiten.Image
	enemySprites      []*ebiten.Image
	collectibleSprite []*ebiten.Image
	cloudSprites      []*ebiten.Image
	heartSprite       *ebiten.Image
	glowSprite        *ebiten.Image
)

func buildSprites() {
	playerSprite = drawBalloon()
	enemySprites = []*ebiten.Image{drawStormCloud(), drawSpikeMine(), drawCrow()}
	collectibleSprite = []*ebiten.Image{drawStar(), drawGem()}
	cloudSprites = []*ebiten.Image{
		drawCloud([]puff{{0.30, 0.62, 0.22}, {0.52, 0.45, 0.28}, {0.72, 0.60, 0.22}}),
		drawCloud([]puff{{0.25, 0.60, 0.20}, {0.45, 0.50, 0.25}, {0.65, 0.45, 0.24}, {0.80, 0.62, 0.18}}),
		drawCloud([]puff{{0.35, 0.55, 0.25}, {0.62, 0.55, 0.27}}),
	}
	heartSprite = drawHeart()
	glowSprite = drawGlow()
}

func PlayerImage() *ebiten.Image {
	spritesOnce.Do(buildSprites)
	return playerSprite
}

// EnemyImage returns the sprite for an enemy variant, wrapping out-of-range indices.
func EnemyImage(variant int) *ebiten.Image {
	spritesOnce.Do(buildSprites)
	return enemySprites[wrapIndex(variant, len(enemySprites))]
}

func CollectibleImage(variant int) *ebiten.Image {
	spritesOnce.Do(buildSprites)
	return collectibleSprite[wrapIndex(variant, len(collectibleSprite))]
}

func CloudImage(variant int) *ebiten.Image {
	spritesOnce.Do(buildSprites)
	return cloudSprites[wrapIndex(variant, len(cloudSprites))]
}

func HeartImage() *ebiten.Image {
	spritesOnce.Do(buildSprites)
	return heartSprite
}

// GlowImage is a soft white disc used behind collectibles.
func GlowImage() *ebiten.Image {
	spritesOnce.Do(buildSprites)
	return glowSprite
}

// EnemyVariants and CollectibleVariants report how many distinct sprites exist.
const (
	EnemyVariants       = 3
	CollectibleVariants = 2
	CloudVariants       = 3
)

func wrapIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

func newCanvas() *ebiten.Image {
	return ebiten.NewImage(spriteRes, spriteRes)
}

// px converts a fraction of the sprite size into pixels.
func px(f float64) float32 {
	return float32(f * spriteRes)
}

func rgba(r, g, b, a uint8) color.RGBA {
	// vector expects premultiplied colours
	return color.RGBA{
		R: uint8(uint16(r) * uint16(a) / 255),
		G: uint8(uint16(g) * uint16(a) / 255),
		B: uint8(uint16(b) * uint16(a) / 255),
		A: a,
	}
}

func drawBalloon() *ebiten.Image {
	img := newCanvas()
	red := rgba(235, 70, 80, 255)
	cream := rgba(255, 240, 220, 255)
	rope := rgba(90, 60, 40, 255)

	const cx, cy, r = 0.5, 0.38, 0.32
	vector.FillCircle(img, px(cx), px(cy), px(r), red, true)
	// stripes follow the chord so they stay inside the envelope
	for _, dx := range []float64{-0.16, 0, 0.16} {
		h := math.Sqrt(r*r-dx*dx) - 0.01
		vector.StrokeLine(img, px(cx+dx), px(cy-h), px(cx+dx), px(cy+h), px(0.045), cream, true)
	}
	vector.StrokeCircle(img, px(cx), px(cy), px(r), px(0.02), rgba(150, 30, 40, 255), true)

	vector.StrokeLine(img, px(0.30), px(0.62), px(0.40), px(0.80), px(0.012), rope, true)
	vector.StrokeLine(img, px(0.70), px(0.62), px(0.60), px(0.80), px(0.012), rope, true)
	vector.FillRect(img, px(0.38), px(0.80), px(0.24), px(0.14), rgba(160, 110, 60, 255), true)
	vector.FillRect(img, px(0.38), px(0.80), px(0.24), px(0.025), rgba(120, 80, 40, 255), true)
	return img
}

func drawStormCloud() *ebiten.Image {
	img := newCanvas()
	grey := rgba(95, 100, 120, 255)
	dark := rgba(70, 72, 90, 255)
	bolt := rgba(255, 215, 40, 255)

	vector.FillCircle(img, px(0.32), px(0.42), px(0.20), dark, true)
	vector.FillCircle(img, px(0.55), px(0.34), px(0.25), grey, true)
	vector.FillCircle(img, px(0.74), px(0.46), px(0.18), dark, true)
	vector.FillRect(img, px(0.22), px(0.42), px(0.60), px(0.18), grey, true)

	w := px(0.05)
	vector.StrokeLine(img, px(0.52), px(0.60), px(0.42), px(0.76), w, bolt, true)
	vector.StrokeLine(img, px(0.42), px(0.76), px(0.56), px(0.76), w, bolt, true)
	vector.StrokeLine(img, px(0.56), px(0.76), px(0.46), px(0.94), w, bolt, true)
	return img
}

func drawSpikeMine() *ebiten.Image {
	img := newCanvas()
	body := rgba(55, 55, 70, 255)
	spike := rgba(40, 40, 50, 255)

	for i := 0; i < 10; i++ {
		a := float64(i) * 2 * math.Pi / 10
		x := 0.5 + math.Cos(a)*0.44
		y := 0.5 + math.Sin(a)*0.44
		vector.StrokeLine(img, px(0.5), px(0.5), px(x), px(y), px(0.06), spike, true)
	}
	vector.FillCircle(img, px(0.5), px(0.5), px(0.30), body, true)
	vector.FillCircle(img, px(0.40), px(0.40), px(0.07), rgba(140, 140, 160, 255), true)
	vector.FillCircle(img, px(0.5), px(0.5), px(0.06), rgba(230, 60, 60, 255), true)
	return img
}

func drawCrow() *ebiten.Image {
	img := newCanvas()
	black := rgba(35, 30, 45, 255)
	wing := rgba(55, 50, 70, 255)
	beak := rgba(250, 170, 40, 255)

	w := px(0.09)
	vector.StrokeLine(img, px(0.5), px(0.5), px(0.12), px(0.22), w, wing, true)
	vector.StrokeLine(img, px(0.12), px(0.22), px(0.04), px(0.42), w, wing, true)
	vector.StrokeLine(img, px(0.5), px(0.5), px(0.88), px(0.22), w, wing, true)
	vector.StrokeLine(img, px(0.88), px(0.22), px(0.96), px(0.42), w, wing, true)

	vector.FillCircle(img, px(0.5), px(0.56), px(0.20), black, true)
	vector.FillCircle(img, px(0.5), px(0.74), px(0.12), black, true)
	vector.StrokeLine(img, px(0.5), px(0.84), px(0.5), px(0.96), px(0.06), beak, true)
	vector.FillCircle(img, px(0.44), px(0.70), px(0.03), rgba(255, 255, 255, 255), true)
	vector.FillCircle(img, px(0.56), px(0.70), px(0.03), rgba(255, 255, 255, 255), true)
	return img
}

func drawStar() *ebiten.Image {
	img := newCanvas()
	gold := rgba(255, 205, 40, 255)
	light := rgba(255, 240, 150, 255)

	for i := 0; i < 5; i++ {
		a := -math.Pi/2 + float64(i)*2*math.Pi/5
		x := 0.5 + math.Cos(a)*0.42
		y := 0.52 + math.Sin(a)*0.42
		vector.StrokeLine(img, px(0.5), px(0.52), px(x), px(y), px(0.16), gold, true)
	}
	vector.FillCircle(img, px(0.5), px(0.52), px(0.20), gold, true)
	vector.FillCircle(img, px(0.45), px(0.46), px(0.07), light, true)
	return img
}

func drawGem() *ebiten.Image {
	img := newCanvas()
	teal := rgba(60, 200, 230, 255)
	deep := rgba(30, 130, 190, 255)

	// diamond built from shrinking horizontal bars
	for y := 0.12; y < 0.88; y += 1.0 / spriteRes {
		var half float64
		if y < 0.4 {
			half = 0.38 * (y - 0.12) / 0.28
		} else {
			half = 0.38 * (0.88 - y) / 0.48
		}
		c := teal
		if y > 0.4 {
			c = deep
		}
		vector.FillRect(img, px(0.5-half), px(y), px(2*half), 1, c, false)
	}
	vector.FillCircle(img, px(0.42), px(0.34), px(0.05), rgba(255, 255, 255, 220), true)
	return img
}

type puff struct{ x, y, r float64 }

func drawCloud(puffs []puff) *ebiten.Image {
	img := newCanvas()
	white := rgba(255, 255, 255, 255)
	shade := rgba(235, 240, 250, 255)
	for _, p := range puffs {
		vector.FillCircle(img, px(p.x), px(p.y+0.03), px(p.r), shade, true)
	}
	for _, p := range puffs {
		vector.FillCircle(img, px(p.x), px(p.y), px(p.r), white, true)
	}
	minX, maxX := 1.0, 0.0
	for _, p := range puffs {
		minX = math.Min(minX, p.x)
		maxX = math.Max(maxX, p.x)
	}
	vector.FillRect(img, px(minX), px(0.6), px(maxX-minX), px(0.14), white, true)
	return img
}

func drawHeart() *ebiten.Image {
	img := newCanvas()
	red := rgba(240, 60, 90, 255)

	vector.FillCircle(img, px(0.31), px(0.36), px(0.22), red, true)
	vector.FillCircle(img, px(0.69), px(0.36), px(0.22), red, true)
	for y := 0.40; y < 0.90; y += 1.0 / spriteRes {
		half := 0.46 * (0.90 - y) / 0.50
		vector.FillRect(img, px(0.5-half), px(y), px(2*half), 1, red, false)
	}
	return img
}

func drawGlow() *ebiten.Image {
	img := newCanvas()
	const rings = 24
	for i := 0; i < rings; i++ {
		f := float64(i) / rings
		a := uint8(18 + f*30)
		vector.FillCircle(img, px(0.5), px(0.5), px(0.5*(1-f)), rgba(255, 255, 255, a), true)
	}
	return img
}
