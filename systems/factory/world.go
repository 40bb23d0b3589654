package factory

import (
	"math/rand/v2"

	"github.com/automoto/skydodge/assets"
	"github.com/automoto/skydodge/components"
	cfg "github.com/automoto/skydodge/config"
	"github.com/yohamta/donburi/ecs"
)

// PopulateWorld creates every entity a round needs: the collision space,
// round state, HUD, viewport, player and clouds. layout may be nil, in which
// case the configured spawn is used and no clouds are created.
func PopulateWorld(ecs *ecs.ECS, layout *assets.Playfield, store components.BestScoreStore, rng *rand.Rand) {
	CreateSpace(ecs, int(cfg.Playfield.Width), int(cfg.Playfield.Height), cfg.Space.CellWidth, cfg.Space.CellHeight)

	round := CreateRound(ecs, store, rng)
	CreateHUD(ecs, components.Round.Get(round).BestScore)
	CreateViewport(ecs)

	spawnX, spawnY := cfg.Player.StartX, cfg.Player.StartY
	if layout != nil {
		CreatePlayfield(ecs, layout)
		spawnX, spawnY = layout.PlayerSpawn.X, layout.PlayerSpawn.Y
		CreateClouds(ecs, layout.Clouds)
	}
	CreatePlayer(ecs, spawnX, spawnY)
}
