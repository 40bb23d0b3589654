package main

import (
	"flag"
	"log"
	"time"

	"github.com/automoto/skydodge/assets"
	"github.com/automoto/skydodge/components"
	"github.com/automoto/skydodge/config"
	"github.com/automoto/skydodge/fonts"
	"github.com/automoto/skydodge/scenes"
	"github.com/automoto/skydodge/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(opts scenes.ArcadeOptions) *Game {
	return &Game{scene: scenes.NewArcadeScene(opts)}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout keeps the screen at window resolution; the scene letterboxes the
// playfield into it.
func (g *Game) Layout(width, height int) (int, int) {
	return width, height
}

func main() {
	tuningPath := flag.String("tuning", "", "YAML file overriding gameplay tuning")
	fullscreen := flag.Bool("fullscreen", false, "start in fullscreen")
	mute := flag.Bool("mute", false, "start with audio muted")
	resetBest := flag.Bool("reset-best", false, "forget the stored best score")
	hitboxes := flag.Bool("hitboxes", false, "draw collision boxes")
	flag.Parse()

	layout, err := assets.NewPlayfieldLoader().LoadPlayfield(assets.DefaultPlayfieldPath)
	if err != nil {
		log.Printf("Warning: Using built-in playfield: %v", err)
	} else {
		config.Playfield.Width = float64(layout.Width)
		config.Playfield.Height = float64(layout.Height)
	}

	if *tuningPath != "" {
		if err := config.LoadTuning(*tuningPath); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}
	config.Debug.DrawHitboxes = *hitboxes

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// Initialize persistence and load saved settings
	var store components.BestScoreStore = &systems.MemoryStore{}
	settings := systems.SavedSettings{}
	if gd, err := systems.InitPersistence(config.C.AppName); err == nil {
		store = gd
		systems.UseSettingsStore(gd)
		if saved := gd.LoadSettings(); saved != nil {
			settings = *saved
		}
		if *resetBest {
			_ = gd.ClearBestScore()
		}
	} else {
		log.Printf("Warning: Best score will not be kept between sessions")
	}
	if *fullscreen {
		settings.Fullscreen = true
	}
	if *mute {
		settings.Muted = true
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.WindowWidth, config.C.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	game := NewGame(scenes.ArcadeOptions{
		Layout:   layout,
		Store:    store,
		Settings: settings,
		Seed:     uint64(time.Now().UnixNano()),
	})
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
