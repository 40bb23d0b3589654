package systems

import (
	cfg "github.com/automoto/skydodge/config"
	"github.com/automoto/skydodge/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawner creates at most one enemy and one collectible per frame, each
// gated on its own interval since the previous spawn.
func UpdateSpawner(e *ecs.ECS) {
	spawner := GetSpawner(e)
	if spawner == nil || spawner.Rand == nil {
		return
	}
	now := GetScheduler(e).Now()
	rng := spawner.Rand

	if now-spawner.LastEnemy > cfg.Enemy.SpawnInterval {
		x := rng.Float64() * (cfg.Playfield.Width - cfg.Enemy.SpawnMarginX)
		speed := cfg.Enemy.MinSpeed + rng.Float64()*(cfg.Enemy.MaxSpeed-cfg.Enemy.MinSpeed)
		factory.CreateEnemy(e, x, cfg.Enemy.SpawnY, speed, rng.IntN(cfg.Enemy.Variants))
		spawner.LastEnemy = now
	}

	if now-spawner.LastCollectible > cfg.Collectible.SpawnInterval {
		x := rng.Float64() * (cfg.Playfield.Width - cfg.Collectible.SpawnMarginX)
		factory.CreateCollectible(e, x, cfg.Collectible.SpawnY, rng.IntN(cfg.Collectible.Variants))
		spawner.LastCollectible = now
	}
}
