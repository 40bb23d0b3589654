package scenes

import (
	"image/color"
	"log"
	"math/rand/v2"
	"sync"

	"github.com/automoto/skydodge/assets"
	"github.com/automoto/skydodge/components"
	cfg "github.com/automoto/skydodge/config"
	"github.com/automoto/skydodge/events"
	"github.com/automoto/skydodge/gamemath"
	"github.com/automoto/skydodge/systems"
	"github.com/automoto/skydodge/systems/factory"
	"github.com/automoto/skydodge/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArcadeOptions is everything the arcade scene needs from startup.
type ArcadeOptions struct {
	Layout   *assets.Playfield
	Store    components.BestScoreStore
	Settings systems.SavedSettings
	Seed     uint64
}

// ArcadeScene runs the dodge game: one world, one round at a time.
type ArcadeScene struct {
	ecs     *ecs.ECS
	opts    ArcadeOptions
	screens *ui.ScreensUI
	canvas  *ebiten.Image
	drawOp  ebiten.DrawImageOptions
	once    sync.Once
}

func NewArcadeScene(opts ArcadeOptions) *ArcadeScene {
	return &ArcadeScene{opts: opts}
}

func (as *ArcadeScene) Update() {
	as.once.Do(as.configure)

	as.ecs.Update()
	as.screens.Update()

	// Deliver this frame's events after every system has published
	events.ProcessAll(as.ecs.World)
}

func (as *ArcadeScene) Draw(screen *ebiten.Image) {
	// Letterbox bars
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}

	if as.canvas == nil {
		as.canvas = ebiten.NewImage(int(cfg.Playfield.Width), int(cfg.Playfield.Height))
	}
	as.canvas.Clear()
	as.ecs.Draw(as.canvas)

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	vp := gamemath.FitViewport(float64(sw), float64(sh), cfg.Playfield.Width, cfg.Playfield.Height)
	if entry, ok := components.Viewport.First(as.ecs.World); ok {
		components.Viewport.SetValue(entry, components.ViewportData{
			Viewport:     vp,
			ScreenWidth:  sw,
			ScreenHeight: sh,
		})
	}

	as.drawOp.GeoM.Reset()
	as.drawOp.GeoM.Scale(vp.Scale, vp.Scale)
	as.drawOp.GeoM.Translate(vp.OffsetX, vp.OffsetY)
	as.drawOp.Filter = ebiten.FilterLinear
	screen.DrawImage(as.canvas, &as.drawOp)

	as.screens.Draw(screen)
}

func (as *ArcadeScene) configure() {
	// Synthesize audio up front so the first cue does not stall a frame
	systems.PreloadAllSFX()

	ecs := ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first so cues queued last frame play immediately)
	ecs.AddSystem(systems.UpdateAudio)

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateRound)
	ecs.AddSystem(systems.UpdateScheduler)
	ecs.AddSystem(systems.UpdateClouds)

	// Gameplay systems, in order: input target, spawn, move, collide
	ecs.AddSystem(systems.WithPlaying(systems.UpdatePointerTarget))
	ecs.AddSystem(systems.WithPlaying(systems.UpdateSpawner))
	ecs.AddSystem(systems.WithPlaying(systems.UpdatePlayer))
	ecs.AddSystem(systems.WithPlaying(systems.UpdateFalling))
	ecs.AddSystem(systems.WithPlaying(systems.UpdateCollisions))

	ecs.AddSystem(systems.UpdateOverlay)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawBackground)
	ecs.AddRenderer(cfg.Default, systems.DrawClouds)
	ecs.AddRenderer(cfg.Default, systems.DrawIdleDecor)
	ecs.AddRenderer(cfg.Default, systems.DrawCollectibles)
	ecs.AddRenderer(cfg.Default, systems.DrawEnemies)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawOverlay)

	as.ecs = ecs

	seed := as.opts.Seed
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	factory.PopulateWorld(as.ecs, as.opts.Layout, as.opts.Store, rng)

	systems.SubscribeHUD(as.ecs.World)
	systems.SubscribeOverlay(as.ecs.World)
	systems.ApplySettings(as.ecs, as.opts.Settings)

	as.screens = ui.NewScreensUI(as.ecs, as.play, as.restart, as.toggleMute)
}

func (as *ArcadeScene) play() {
	if round := systems.GetRound(as.ecs); round == nil || round.State != cfg.RoundIdle {
		return
	}
	if err := systems.StartRound(as.ecs); err != nil {
		log.Printf("Warning: %v", err)
	}
}

func (as *ArcadeScene) restart() {
	if err := systems.RestartRound(as.ecs); err != nil {
		log.Printf("Warning: %v", err)
	}
}

func (as *ArcadeScene) toggleMute() {
	systems.ToggleMute(as.ecs)
}
