package factory

import (
	"math/rand/v2"

	"github.com/automoto/skydodge/archetypes"
	"github.com/automoto/skydodge/assets"
	"github.com/automoto/skydodge/components"
	cfg "github.com/automoto/skydodge/config"
	"github.com/automoto/skydodge/schedule"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRound creates the round singleton in the Idle state. The best score
// is read from store exactly once, here.
func CreateRound(ecs *ecs.ECS, store components.BestScoreStore, rng *rand.Rand) *donburi.Entry {
	round := archetypes.Round.Spawn(ecs)

	best := 0
	if store != nil {
		best = store.LoadBestScore()
	}

	components.Round.SetValue(round, components.RoundData{
		State:     cfg.RoundIdle,
		BestScore: best,
		TimeLeft:  cfg.Round.Duration,
		Countdown: cfg.Round.CountdownFrom,
		Store:     store,
	})
	components.Spawner.SetValue(round, components.SpawnerData{
		Rand: rng,
	})
	components.Scheduler.SetValue(round, components.SchedulerData{
		Scheduler: schedule.New(),
	})
	return round
}

// CreateHUD creates the HUD mirror and overlay animation state.
func CreateHUD(ecs *ecs.ECS, best int) *donburi.Entry {
	hud := archetypes.HUD.Spawn(ecs)
	components.HUD.SetValue(hud, components.HUDData{
		Lives:    cfg.Player.StartingLives,
		TimeLeft: cfg.Round.Duration,
		Best:     best,
	})
	components.Overlay.SetValue(hud, components.OverlayData{
		StartAlpha: 1,
		PopScale:   1,
	})
	return hud
}

func CreatePlayfield(ecs *ecs.ECS, layout *assets.Playfield) *donburi.Entry {
	pf := archetypes.Playfield.Spawn(ecs)
	components.Playfield.SetValue(pf, components.PlayfieldData{Layout: layout})
	return pf
}

func CreateViewport(ecs *ecs.ECS) *donburi.Entry {
	vp := archetypes.Viewport.Spawn(ecs)
	components.Viewport.SetValue(vp, components.ViewportData{})
	return vp
}
